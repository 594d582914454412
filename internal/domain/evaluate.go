package domain

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidObservation is returned when an observation violates the numeric
// preconditions of the engine. Decisions are safety relevant, so bad input is
// rejected rather than classified.
var ErrInvalidObservation = errors.New("invalid observation")

// Plausible reading limits. Values outside them are instrument or unit errors
// and would overflow the index formulas.
const (
	MinTemperatureF = -150.0
	MaxTemperatureF = 150.0
	MaxWindSpeedMPH = 300.0
)

// Observation is a normalized weather reading as delivered by the upstream
// collector.
type Observation struct {
	TemperatureF        float64 `json:"temp_f"`
	RelativeHumidityPct float64 `json:"humidity"`
	WindSpeedMPH        float64 `json:"wind_mph"`
	CloudCoverPct       float64 `json:"cloud"`
	ConditionText       string  `json:"condition"`
}

// Validate checks the engine preconditions. Humidity is only required to be
// finite because the WBGT estimator clamps it.
func (o Observation) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"temp_f", o.TemperatureF},
		{"humidity", o.RelativeHumidityPct},
		{"wind_mph", o.WindSpeedMPH},
		{"cloud", o.CloudCoverPct},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%w: %s is not a finite number", ErrInvalidObservation, f.name)
		}
	}
	if o.TemperatureF < MinTemperatureF || o.TemperatureF > MaxTemperatureF {
		return fmt.Errorf("%w: temp_f %g outside [%g, %g]", ErrInvalidObservation, o.TemperatureF, MinTemperatureF, MaxTemperatureF)
	}
	if o.WindSpeedMPH < 0 {
		return fmt.Errorf("%w: wind_mph %g is negative", ErrInvalidObservation, o.WindSpeedMPH)
	}
	if o.WindSpeedMPH > MaxWindSpeedMPH {
		return fmt.Errorf("%w: wind_mph %g exceeds %g", ErrInvalidObservation, o.WindSpeedMPH, MaxWindSpeedMPH)
	}
	if o.CloudCoverPct < 0 || o.CloudCoverPct > 100 {
		return fmt.Errorf("%w: cloud %g outside [0, 100]", ErrInvalidObservation, o.CloudCoverPct)
	}
	return nil
}

// Evaluation is every output the engine derives from one observation.
type Evaluation struct {
	WindChillF     *float64                `json:"wind_chill_f,omitempty"`
	WBGT           WBGTResult              `json:"wbgt"`
	WBGTF          float64                 `json:"wbgt_f"`
	WBGTApplicable bool                    `json:"wbgt_applicable"`
	HeatCategory   *HeatCategory           `json:"heat_category,omitempty"`
	Precipitation  PrecipitationAssessment `json:"precipitation"`
	DutyUniform    UniformRecommendation   `json:"duty_uniform"`
	PTUniform      string                  `json:"pt_uniform"`
	Decision       Decision                `json:"decision"`
	Status         Status                  `json:"status"`
}

// Evaluator runs the full decision chain. The zero value uses no globe offset;
// use NewEvaluator or the package-level Evaluate for the standard 3°C offset.
type Evaluator struct {
	GlobeOffsetC float64
}

// NewEvaluator returns an Evaluator with the given sun-load globe offset in °C.
func NewEvaluator(globeOffsetC float64) Evaluator {
	return Evaluator{GlobeOffsetC: globeOffsetC}
}

var defaultEvaluator = NewEvaluator(DefaultGlobeOffsetC)

// Evaluate runs the default evaluator.
func Evaluate(obs Observation) (Evaluation, error) {
	return defaultEvaluator.Evaluate(obs)
}

// Evaluate derives indices, classifications, uniforms and the training decision
// for obs. It holds no state and is safe for concurrent use.
func (e Evaluator) Evaluate(obs Observation) (Evaluation, error) {
	if err := obs.Validate(); err != nil {
		return Evaluation{}, err
	}

	var ev Evaluation
	if wc, ok := WindChillF(obs.TemperatureF, obs.WindSpeedMPH); ok {
		ev.WindChillF = &wc
	}

	ev.WBGT = EstimateWBGT(ToCelsius(obs.TemperatureF), obs.RelativeHumidityPct, IsSunny(obs.CloudCoverPct), e.GlobeOffsetC)
	ev.WBGTF = ev.WBGT.WBGTF()
	ev.WBGTApplicable = WBGTApplicable(obs.TemperatureF)
	if ev.WBGTApplicable {
		cat := ClassifyHeat(ev.WBGTF)
		ev.HeatCategory = &cat
	}

	ev.Precipitation = InterpretCondition(obs.ConditionText)
	ev.DutyUniform = RecommendDutyUniform(obs.TemperatureF, ev.WindChillF, ev.HeatCategory)
	ev.PTUniform = RecommendPTUniform(obs.TemperatureF)
	ev.Decision = DecideTraining(DecisionInputs{
		WindChillF:    ev.WindChillF,
		Heat:          ev.HeatCategory,
		Precipitation: ev.Precipitation,
	})
	ev.Status = ev.Decision.Status()
	return ev, nil
}
