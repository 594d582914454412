package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/couchcryptid/training-weather-etl/internal/domain"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
)

var (
	batchIn        string
	batchOut       string
	batchFixedTime string
	batchStrict    bool
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Evaluate a JSON file of collector observation records",
	Long: `Read a JSON array of collector observation records, evaluate each one and
write the resulting assessments as a JSON array. Invalid records are skipped
with a warning unless --strict is set.

--fixed-time pins processed_at (and the observed_at fallback) so fixtures are
reproducible.`,
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	f := batchCmd.Flags()
	f.StringVar(&batchIn, "in", "-", "input file of observation records, - for stdin")
	f.StringVar(&batchOut, "out", "-", "output file for assessments, - for stdout")
	f.StringVar(&batchFixedTime, "fixed-time", "", "RFC 3339 time used for processed_at")
	f.BoolVar(&batchStrict, "strict", false, "fail on the first invalid record")
}

func runBatch(cmd *cobra.Command, _ []string) error {
	logger := newLogger(cmd)
	evaluator, err := newEvaluator()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if batchFixedTime != "" {
		now, err = time.Parse(time.RFC3339, batchFixedTime)
		if err != nil {
			return fmt.Errorf("parse --fixed-time: %w", err)
		}
		domain.SetClock(clockwork.NewFakeClockAt(now))
		defer domain.SetClock(nil)
	}

	data, err := readInput(cmd.InOrStdin(), batchIn)
	if err != nil {
		return err
	}
	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("decode observation records: %w", err)
	}

	assessments := make([]domain.Assessment, 0, len(records))
	for i, rec := range records {
		report, err := domain.ParseRawObservation(domain.RawEvent{Value: rec, Timestamp: now})
		if err == nil {
			var ev domain.Evaluation
			if ev, err = evaluator.Evaluate(report.Observation); err == nil {
				assessments = append(assessments, domain.BuildAssessment(report, ev))
				continue
			}
		}
		if batchStrict {
			return fmt.Errorf("record %d: %w", i, err)
		}
		logger.Warn("skipping invalid record", "index", i, "error", err)
	}

	logger.Info("batch evaluated", "records", len(records), "assessments", len(assessments))
	return writeOutput(cmd.OutOrStdout(), batchOut, assessments)
}
