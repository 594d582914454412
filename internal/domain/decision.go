package domain

import "strings"

// Decision is the final go/no-go guidance for outdoor training.
type Decision string

const (
	DecisionNoOutdoorTraining Decision = "NO OUTDOOR TRAINING"
	DecisionExtremeCold       Decision = "NO OUTDOOR TRAINING — EXTREME COLD"
	DecisionHighColdRisk      Decision = "MOVE TRAINING INDOORS / HIGH COLD RISK"
	DecisionColdCaution       Decision = "LIMIT OUTDOOR TRAINING / USE INDOORS WHEN POSSIBLE (COLD CAUTION)"
	DecisionPrecipitation     Decision = "LIMIT OUTDOOR TRAINING / USE INDOORS WHEN POSSIBLE (PRECIPITATION)"
	DecisionExtremeHeat       Decision = "NO OUTDOOR TRAINING — EXTREME HEAT (BLACK FLAG)"
	DecisionLimitHeat         Decision = "LIMIT OUTDOOR TRAINING / USE INDOORS WHEN POSSIBLE (HEAT)"
	DecisionHeatCaution       Decision = "TRAIN OUTDOORS WITH CAUTION (HEAT)"
	DecisionNoRestrictions    Decision = "TRAIN OUTDOORS (NO RESTRICTIONS)"
)

// Status buckets a decision for display and metrics. The ordering go < caution
// < limit < stop is only used for presentation.
type Status string

const (
	StatusGo      Status = "go"
	StatusCaution Status = "caution"
	StatusLimit   Status = "limit"
	StatusStop    Status = "stop"
)

// Rank orders statuses from least (0) to most (3) restrictive.
func (s Status) Rank() int {
	switch s {
	case StatusCaution:
		return 1
	case StatusLimit:
		return 2
	case StatusStop:
		return 3
	default:
		return 0
	}
}

// Status derives the display bucket from the decision text.
func (d Decision) Status() Status {
	s := string(d)
	switch {
	case strings.Contains(s, "NO OUTDOOR"), strings.Contains(s, "MOVE"):
		return StatusStop
	case strings.Contains(s, "LIMIT"):
		return StatusLimit
	case strings.Contains(s, "WITH CAUTION"):
		return StatusCaution
	default:
		return StatusGo
	}
}

// DecisionInputs carries the already-derived indices the decision engine combines.
// WindChillF is nil when wind chill does not apply; Heat is nil when WBGT is not
// applicable.
type DecisionInputs struct {
	WindChillF    *float64
	Heat          *HeatCategory
	Precipitation PrecipitationAssessment
}

type decisionRule struct {
	applies func(in DecisionInputs) bool
	decide  func(in DecisionInputs) Decision
}

func always(d Decision) func(DecisionInputs) Decision {
	return func(DecisionInputs) Decision { return d }
}

func windChillAtMost(limit float64) func(DecisionInputs) bool {
	return func(in DecisionInputs) bool {
		return in.WindChillF != nil && *in.WindChillF <= limit
	}
}

// decisionRules is strictly ordered: precipitation overrides, then cold, then
// heavy precipitation, then heat. Once a rule applies the rest are not consulted.
var decisionRules = []decisionRule{
	{
		applies: func(in DecisionInputs) bool { return in.Precipitation.Override != nil },
		decide:  func(in DecisionInputs) Decision { return *in.Precipitation.Override },
	},
	{applies: windChillAtMost(-20), decide: always(DecisionExtremeCold)},
	{applies: windChillAtMost(0), decide: always(DecisionHighColdRisk)},
	{applies: windChillAtMost(20), decide: always(DecisionColdCaution)},
	{
		applies: func(in DecisionInputs) bool { return in.Precipitation.Severity == PrecipHigh },
		decide:  always(DecisionPrecipitation),
	},
	{
		applies: func(in DecisionInputs) bool { return in.Heat != nil },
		decide:  func(in DecisionInputs) Decision { return heatDecision(in.Heat.Severity()) },
	},
}

// DecideTraining applies the decision rules in priority order and falls back to
// training without restrictions.
func DecideTraining(in DecisionInputs) Decision {
	for _, r := range decisionRules {
		if r.applies(in) {
			return r.decide(in)
		}
	}
	return DecisionNoRestrictions
}

func heatDecision(severity int) Decision {
	switch {
	case severity >= 5:
		return DecisionExtremeHeat
	case severity == 4:
		return DecisionLimitHeat
	case severity == 3:
		return DecisionHeatCaution
	default:
		return DecisionNoRestrictions
	}
}
