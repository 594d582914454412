package domain

import (
	"context"
	"time"
)

// RawObservationRecord is the flat JSON published by the weather collector for
// each observation. Pointers distinguish a missing reading from a zero reading.
type RawObservationRecord struct {
	Station    string   `json:"station"`
	ObservedAt string   `json:"observed_at"` // RFC 3339; falls back to the message timestamp
	TempF      *float64 `json:"temp_f" validate:"required,finite,gte=-150,lte=150"`
	Humidity   *float64 `json:"humidity" validate:"required,finite"`
	WindMPH    *float64 `json:"wind_mph" validate:"required,finite,gte=0,lte=300"`
	Cloud      *float64 `json:"cloud" validate:"required,finite,gte=0,lte=100"`
	Condition  string   `json:"condition" validate:"max=256"`
}

// RawEvent represents an unprocessed message from the source topic.
type RawEvent struct {
	Key       []byte
	Value     []byte
	Headers   map[string]string
	Topic     string
	Partition int
	Offset    int64
	Timestamp time.Time
	Commit    func(ctx context.Context) error
}

// ObservationReport is a parsed observation with its provenance.
type ObservationReport struct {
	Station     string
	ObservedAt  time.Time
	Observation Observation
}

// Assessment is the training-safety record published to the sink topic.
type Assessment struct {
	ID          string      `json:"id"`
	Station     string      `json:"station,omitempty"`
	ObservedAt  time.Time   `json:"observed_at"`
	Observation Observation `json:"observation"`
	Evaluation  Evaluation  `json:"evaluation"`
	ProcessedAt time.Time   `json:"processed_at"`
}

// OutputEvent is the serialized form destined for the sink topic.
type OutputEvent struct {
	Key     []byte
	Value   []byte
	Headers map[string]string
}
