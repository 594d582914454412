package main

import (
	"encoding/json"
	"fmt"

	"github.com/couchcryptid/training-weather-etl/internal/domain"
	"github.com/spf13/cobra"
)

var (
	forecastIn   string
	forecastOut  string
	forecastDays int
)

var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Evaluate a provider forecast day by day",
	Long: `Read a JSON array of forecast samples, collapse them into one observation per
UTC day and evaluate each day.`,
	RunE: runForecast,
}

func init() {
	rootCmd.AddCommand(forecastCmd)

	f := forecastCmd.Flags()
	f.StringVar(&forecastIn, "in", "-", "input file of forecast samples, - for stdin")
	f.StringVar(&forecastOut, "out", "-", "output file for daily evaluations, - for stdout")
	f.IntVar(&forecastDays, "days", 5, "number of days to evaluate, negative for all")
}

// dailyEvaluation is one forecast day with its evaluation.
type dailyEvaluation struct {
	domain.DailySummary
	Evaluation domain.Evaluation `json:"evaluation"`
}

func runForecast(cmd *cobra.Command, _ []string) error {
	evaluator, err := newEvaluator()
	if err != nil {
		return err
	}

	data, err := readInput(cmd.InOrStdin(), forecastIn)
	if err != nil {
		return err
	}
	var samples []domain.ForecastSample
	if err := json.Unmarshal(data, &samples); err != nil {
		return fmt.Errorf("decode forecast samples: %w", err)
	}

	summaries := domain.SummarizeForecast(samples, forecastDays)
	out := make([]dailyEvaluation, 0, len(summaries))
	for _, s := range summaries {
		ev, err := evaluator.Evaluate(s.Observation)
		if err != nil {
			return fmt.Errorf("evaluate %s: %w", s.Date, err)
		}
		out = append(out, dailyEvaluation{DailySummary: s, Evaluation: ev})
	}

	newLogger(cmd).Info("forecast evaluated", "samples", len(samples), "days", len(out))
	return writeOutput(cmd.OutOrStdout(), forecastOut, out)
}
