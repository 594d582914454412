package pipeline_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/couchcryptid/training-weather-etl/internal/domain"
	"github.com/couchcryptid/training-weather-etl/internal/observability"
	"github.com/couchcryptid/training-weather-etl/internal/pipeline"
	"github.com/google/go-cmp/cmp"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- mocks ---

type mockExtractor struct {
	batches [][]domain.RawEvent
	index   atomic.Int64
	err     error
}

func (m *mockExtractor) ExtractBatch(ctx context.Context, _ int) ([]domain.RawEvent, error) {
	if m.err != nil {
		return nil, m.err
	}
	i := int(m.index.Add(1) - 1)
	if i >= len(m.batches) {
		// block until cancelled to simulate an idle topic
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return m.batches[i], nil
}

type mockTransformer struct {
	err error
}

func (m *mockTransformer) Transform(_ context.Context, raw domain.RawEvent) (domain.OutputEvent, error) {
	if m.err != nil {
		return domain.OutputEvent{}, m.err
	}
	return domain.OutputEvent{Key: raw.Key, Value: raw.Value}, nil
}

type mockLoader struct {
	mu     sync.Mutex
	loaded []domain.OutputEvent
	err    error
	calls  int
}

func (m *mockLoader) LoadBatch(_ context.Context, events []domain.OutputEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return m.err
	}
	m.loaded = append(m.loaded, events...)
	return nil
}

func (m *mockLoader) snapshot() []domain.OutputEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.OutputEvent(nil), m.loaded...)
}

func runFor(t *testing.T, p *pipeline.Pipeline, d time.Duration) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), d)
	defer cancel()
	require.NoError(t, p.Run(ctx))
}

// --- pipeline tests ---

func TestPipeline_Run_HappyPath(t *testing.T) {
	raw := makeRawEvent(t, "KDFW", 72, 40, 5, 20, "Sunny")

	ext := &mockExtractor{batches: [][]domain.RawEvent{{raw}}}
	ldr := &mockLoader{}
	p := pipeline.New(ext, &mockTransformer{}, ldr, slog.Default(), observability.NewMetricsForTesting(), 10)

	runFor(t, p, 300*time.Millisecond)

	loaded := ldr.snapshot()
	require.Len(t, loaded, 1)
	assert.Equal(t, raw.Value, loaded[0].Value)
	assert.NoError(t, p.CheckReadiness(context.Background()))
}

func TestPipeline_Run_ContextCancellation(t *testing.T) {
	ldr := &mockLoader{}
	p := pipeline.New(&mockExtractor{}, &mockTransformer{}, ldr, slog.Default(), observability.NewMetricsForTesting(), 10)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, p.Run(ctx))
	assert.Empty(t, ldr.snapshot())
	assert.Error(t, p.CheckReadiness(context.Background()))
}

func TestPipeline_Run_TransformErrorCommitsAndSkips(t *testing.T) {
	var committed atomic.Bool
	raw := makeRawEvent(t, "KDFW", 72, 40, 5, 20, "Sunny")
	raw.Commit = func(context.Context) error {
		committed.Store(true)
		return nil
	}

	ext := &mockExtractor{batches: [][]domain.RawEvent{{raw}}}
	ldr := &mockLoader{}
	metrics := observability.NewMetricsForTesting()
	p := pipeline.New(ext, &mockTransformer{err: errors.New("bad data")}, ldr, slog.Default(), metrics, 10)

	runFor(t, p, 300*time.Millisecond)

	assert.Empty(t, ldr.snapshot())
	assert.Error(t, p.CheckReadiness(context.Background()))
	assert.True(t, committed.Load())
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.TransformErrors), 0)
}

func TestPipeline_Run_CommitsAfterLoad(t *testing.T) {
	var commits atomic.Int32
	batch := make([]domain.RawEvent, 3)
	for i := range batch {
		batch[i] = makeRawEvent(t, "KOKC", 40, 50, 10, 80, "Cloudy")
		batch[i].Topic = "raw-weather-observations"
		batch[i].Offset = int64(i)
		batch[i].Commit = func(context.Context) error {
			commits.Add(1)
			return nil
		}
	}

	ext := &mockExtractor{batches: [][]domain.RawEvent{batch}}
	ldr := &mockLoader{}
	metrics := observability.NewMetricsForTesting()
	p := pipeline.New(ext, &mockTransformer{}, ldr, slog.Default(), metrics, 10)

	runFor(t, p, 300*time.Millisecond)

	assert.Len(t, ldr.snapshot(), 3)
	assert.Equal(t, int32(3), commits.Load())
	assert.InDelta(t, 3, testutil.ToFloat64(metrics.MessagesConsumed), 0)
	assert.InDelta(t, 3, testutil.ToFloat64(metrics.MessagesProduced), 0)
}

func TestPipeline_Run_LoadFailureDoesNotCommit(t *testing.T) {
	var committed atomic.Bool
	raw := makeRawEvent(t, "KOKC", 40, 50, 10, 80, "Cloudy")
	raw.Commit = func(context.Context) error {
		committed.Store(true)
		return nil
	}

	ext := &mockExtractor{batches: [][]domain.RawEvent{{raw}}}
	ldr := &mockLoader{err: errors.New("broker unavailable")}
	p := pipeline.New(ext, &mockTransformer{}, ldr, slog.Default(), observability.NewMetricsForTesting(), 10)

	runFor(t, p, 300*time.Millisecond)

	assert.False(t, committed.Load())
	assert.Error(t, p.CheckReadiness(context.Background()))
}

func TestPipeline_Run_ExtractErrorBacksOff(t *testing.T) {
	ldr := &mockLoader{}
	ext := &mockExtractor{err: errors.New("fetch failed")}
	p := pipeline.New(ext, &mockTransformer{}, ldr, slog.Default(), observability.NewMetricsForTesting(), 10)

	runFor(t, p, 300*time.Millisecond)

	assert.Zero(t, ldr.calls)
}

// --- transformer tests ---

func TestAssessmentTransformer_Transform(t *testing.T) {
	fakeClock := clockwork.NewFakeClockAt(time.Date(2025, time.July, 14, 18, 0, 0, 0, time.UTC))
	domain.SetClock(fakeClock)
	t.Cleanup(func() { domain.SetClock(nil) })

	metrics := observability.NewMetricsForTesting()
	tfm := pipeline.NewTransformer(domain.NewEvaluator(domain.DefaultGlobeOffsetC), metrics, slog.Default())

	raw := makeRawEvent(t, "KDFW", 95, 60, 5, 10, "Sunny")
	out, err := tfm.Transform(context.Background(), raw)
	require.NoError(t, err)

	var got domain.Assessment
	require.NoError(t, json.Unmarshal(out.Value, &got))

	assert.Equal(t, string(out.Key), got.ID)
	assert.Equal(t, "KDFW", got.Station)
	assert.Equal(t, domain.DecisionLimitHeat, got.Evaluation.Decision)
	assert.Equal(t, fakeClock.Now(), got.ProcessedAt)
	assert.Equal(t, string(domain.StatusLimit), out.Headers["decision_status"])
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.Decisions.WithLabelValues(string(domain.StatusLimit))), 0)
}

func TestAssessmentTransformer_Transform_Deterministic(t *testing.T) {
	tfm := pipeline.NewTransformer(domain.NewEvaluator(domain.DefaultGlobeOffsetC), observability.NewMetricsForTesting(), slog.Default())
	raw := makeRawEvent(t, "KMSP", 10, 70, 25, 90, "Heavy Snow")

	first, err := tfm.Transform(context.Background(), raw)
	require.NoError(t, err)
	second, err := tfm.Transform(context.Background(), raw)
	require.NoError(t, err)

	if diff := cmp.Diff(first.Key, second.Key); diff != "" {
		t.Fatalf("assessment key changed across replays (-first +second):\n%s", diff)
	}
	assert.Equal(t, string(domain.StatusStop), first.Headers["decision_status"])
}

func TestAssessmentTransformer_Transform_Rejects(t *testing.T) {
	tfm := pipeline.NewTransformer(domain.NewEvaluator(domain.DefaultGlobeOffsetC), observability.NewMetricsForTesting(), slog.Default())

	tests := []struct {
		name  string
		value string
	}{
		{"not json", "not json"},
		{"missing temperature", `{"station":"KDFW","humidity":50,"wind_mph":5,"cloud":10}`},
		{"negative wind", `{"station":"KDFW","temp_f":70,"humidity":50,"wind_mph":-1,"cloud":10}`},
		{"cloud over 100", `{"station":"KDFW","temp_f":70,"humidity":50,"wind_mph":1,"cloud":120}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tfm.Transform(context.Background(), domain.RawEvent{Value: []byte(tt.value)})
			assert.Error(t, err)
		})
	}
}

// --- helpers ---

func makeRawEvent(t *testing.T, station string, tempF, humidity, windMPH, cloud float64, condition string) domain.RawEvent {
	t.Helper()
	data, err := json.Marshal(domain.RawObservationRecord{
		Station:    station,
		ObservedAt: "2025-07-14T17:00:00Z",
		TempF:      &tempF,
		Humidity:   &humidity,
		WindMPH:    &windMPH,
		Cloud:      &cloud,
		Condition:  condition,
	})
	require.NoError(t, err)
	return domain.RawEvent{
		Key:       []byte(station),
		Value:     data,
		Timestamp: time.Date(2025, time.July, 14, 17, 0, 5, 0, time.UTC),
	}
}
