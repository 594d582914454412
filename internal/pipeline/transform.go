package pipeline

import (
	"context"
	"log/slog"

	"github.com/couchcryptid/training-weather-etl/internal/domain"
	"github.com/couchcryptid/training-weather-etl/internal/observability"
)

// AssessmentTransformer implements Transformer: parse, evaluate, stamp, serialize.
type AssessmentTransformer struct {
	evaluator domain.Evaluator
	metrics   *observability.Metrics
	logger    *slog.Logger
}

// NewTransformer creates an AssessmentTransformer around the given evaluator.
func NewTransformer(evaluator domain.Evaluator, metrics *observability.Metrics, logger *slog.Logger) *AssessmentTransformer {
	return &AssessmentTransformer{
		evaluator: evaluator,
		metrics:   metrics,
		logger:    logger,
	}
}

func (t *AssessmentTransformer) Transform(_ context.Context, raw domain.RawEvent) (domain.OutputEvent, error) {
	report, err := domain.ParseRawObservation(raw)
	if err != nil {
		return domain.OutputEvent{}, err
	}

	ev, err := t.evaluator.Evaluate(report.Observation)
	if err != nil {
		return domain.OutputEvent{}, err
	}

	assessment := domain.BuildAssessment(report, ev)
	out, err := domain.SerializeAssessment(assessment)
	if err != nil {
		return domain.OutputEvent{}, err
	}

	t.metrics.Decisions.WithLabelValues(string(ev.Status)).Inc()
	if ev.Status == domain.StatusStop {
		t.logger.Info("outdoor training stopped",
			"assessment_id", assessment.ID,
			"station", assessment.Station,
			"decision", ev.Decision,
		)
	}
	return out, nil
}
