package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var (
	// assessmentNamespace scopes name-based (v5) assessment IDs.
	assessmentNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("urn:training-weather-etl:assessment"))

	validate = newValidator()
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		return name
	})
	_ = v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	})
	return v
}

// ParseRawObservation decodes and validates a collector message. The message
// timestamp stands in for observed_at when the record omits it.
func ParseRawObservation(raw RawEvent) (ObservationReport, error) {
	var rec RawObservationRecord
	if err := json.Unmarshal(raw.Value, &rec); err != nil {
		return ObservationReport{}, fmt.Errorf("parse raw observation: %w", err)
	}
	if err := validate.Struct(rec); err != nil {
		return ObservationReport{}, fmt.Errorf("%w: %w", ErrInvalidObservation, err)
	}

	observedAt := raw.Timestamp.UTC()
	if s := strings.TrimSpace(rec.ObservedAt); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return ObservationReport{}, fmt.Errorf("parse observed_at %q: %w", s, err)
		}
		observedAt = t.UTC()
	}

	return ObservationReport{
		Station:    strings.TrimSpace(rec.Station),
		ObservedAt: observedAt,
		Observation: Observation{
			TemperatureF:        *rec.TempF,
			RelativeHumidityPct: *rec.Humidity,
			WindSpeedMPH:        *rec.WindMPH,
			CloudCoverPct:       *rec.Cloud,
			ConditionText:       strings.TrimSpace(rec.Condition),
		},
	}, nil
}

// BuildAssessment pairs a report with its evaluation and stamps it.
func BuildAssessment(report ObservationReport, ev Evaluation) Assessment {
	return Assessment{
		ID:          assessmentID(report),
		Station:     report.Station,
		ObservedAt:  report.ObservedAt,
		Observation: report.Observation,
		Evaluation:  ev,
		ProcessedAt: Now(),
	}
}

// assessmentID is a v5 UUID over the report's identifying fields, so replaying
// the same observation yields the same ID and downstream upserts stay idempotent.
func assessmentID(r ObservationReport) string {
	o := r.Observation
	name := fmt.Sprintf("%s|%s|%g|%g|%g|%g|%s",
		r.Station, r.ObservedAt.Format(time.RFC3339),
		o.TemperatureF, o.RelativeHumidityPct, o.WindSpeedMPH, o.CloudCoverPct, o.ConditionText)
	return uuid.NewSHA1(assessmentNamespace, []byte(name)).String()
}

// SerializeAssessment marshals an assessment into a sink-topic message.
func SerializeAssessment(a Assessment) (OutputEvent, error) {
	data, err := json.Marshal(a)
	if err != nil {
		return OutputEvent{}, fmt.Errorf("serialize assessment: %w", err)
	}
	return OutputEvent{
		Key:   []byte(a.ID),
		Value: data,
		Headers: map[string]string{
			"decision_status": string(a.Evaluation.Status),
			"processed_at":    a.ProcessedAt.Format(time.RFC3339),
		},
	}, nil
}
