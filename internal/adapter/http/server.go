package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/couchcryptid/training-weather-etl/internal/domain"
	"github.com/couchcryptid/training-weather-etl/internal/observability"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	maxEvaluateBody  = 1 << 20
	maxEvaluateBatch = 500
)

// ReadinessChecker reports whether the service is ready to serve traffic.
type ReadinessChecker interface {
	CheckReadiness(ctx context.Context) error
}

// Server exposes the evaluate API alongside health, readiness, and metrics endpoints.
type Server struct {
	httpServer *http.Server
	evaluator  domain.Evaluator
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewServer creates an HTTP server with /healthz, /readyz, /metrics and
// POST /v1/evaluate routes.
func NewServer(addr string, ready ReadinessChecker, evaluator domain.Evaluator, metrics *observability.Metrics, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		evaluator: evaluator,
		metrics:   metrics,
		logger:    logger,
	}

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", handleReady(ready))
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("POST /v1/evaluate", s.handleEvaluate)

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func handleReady(checker ReadinessChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := checker.CheckReadiness(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "not ready",
				"error":  err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

// evaluateResult is one entry of an evaluate response.
type evaluateResult struct {
	Station     string             `json:"station,omitempty"`
	ObservedAt  time.Time          `json:"observed_at"`
	Observation domain.Observation `json:"observation"`
	Evaluation  domain.Evaluation  `json:"evaluation"`
}

// handleEvaluate accepts one observation object or an array of them and
// answers with the matching evaluation object or array.
func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxEvaluateBody))
	if err != nil {
		s.reject(w, http.StatusRequestEntityTooLarge, "bad_request", fmt.Errorf("read body: %w", err))
		return
	}

	items, isArray, err := splitObservations(body)
	if err != nil {
		s.reject(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	now := domain.Now()
	results := make([]evaluateResult, 0, len(items))
	for i, item := range items {
		res, err := s.evaluateOne(item, now)
		if err != nil {
			status, outcome := http.StatusBadRequest, "bad_request"
			if errors.Is(err, domain.ErrInvalidObservation) {
				status, outcome = http.StatusUnprocessableEntity, "invalid"
			}
			if isArray {
				err = fmt.Errorf("observation %d: %w", i, err)
			}
			s.reject(w, status, outcome, err)
			return
		}
		results = append(results, res)
	}

	s.metrics.EvaluateRequests.WithLabelValues("ok").Inc()
	if isArray {
		writeJSON(w, http.StatusOK, results)
		return
	}
	writeJSON(w, http.StatusOK, results[0])
}

func (s *Server) evaluateOne(item json.RawMessage, now time.Time) (evaluateResult, error) {
	report, err := domain.ParseRawObservation(domain.RawEvent{Value: item, Timestamp: now})
	if err != nil {
		return evaluateResult{}, err
	}
	ev, err := s.evaluator.Evaluate(report.Observation)
	if err != nil {
		return evaluateResult{}, err
	}
	s.metrics.Decisions.WithLabelValues(string(ev.Status)).Inc()
	return evaluateResult{
		Station:     report.Station,
		ObservedAt:  report.ObservedAt,
		Observation: report.Observation,
		Evaluation:  ev,
	}, nil
}

func (s *Server) reject(w http.ResponseWriter, status int, outcome string, err error) {
	s.metrics.EvaluateRequests.WithLabelValues(outcome).Inc()
	s.logger.Debug("evaluate request rejected", "status", status, "error", err)
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// splitObservations returns the raw JSON of each observation in body and
// whether body was an array.
func splitObservations(body []byte) ([]json.RawMessage, bool, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, false, errors.New("empty request body")
	}

	if trimmed[0] != '[' {
		var probe map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &probe); err != nil {
			return nil, false, fmt.Errorf("decode observation: %w", err)
		}
		return []json.RawMessage{trimmed}, false, nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, true, fmt.Errorf("decode observations: %w", err)
	}
	switch {
	case len(items) == 0:
		return nil, true, errors.New("observation array is empty")
	case len(items) > maxEvaluateBatch:
		return nil, true, fmt.Errorf("observation array exceeds %d entries", maxEvaluateBatch)
	}
	return items, true, nil
}

// writeJSON encodes v before committing the status so an encoding failure
// surfaces as a 500 instead of an empty success response.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		status = http.StatusInternalServerError
		data, _ = json.Marshal(map[string]string{"error": "encode response: " + err.Error()})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(append(data, '\n')) //nolint:errcheck // client disconnects are not actionable
}
