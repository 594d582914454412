package main

import (
	"github.com/couchcryptid/training-weather-etl/internal/domain"
	"github.com/spf13/cobra"
)

var evalObs domain.Observation

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate a single observation",
	Long:  `Evaluate one observation given on the command line and print the evaluation as JSON.`,
	Example: `  trainwx evaluate --temp 95 --humidity 60 --wind 5 --cloud 10 --condition Sunny
  trainwx evaluate --temp 10 --humidity 50 --wind 25 --cloud 100`,
	RunE: runEvaluate,
}

func init() {
	rootCmd.AddCommand(evaluateCmd)

	f := evaluateCmd.Flags()
	f.Float64Var(&evalObs.TemperatureF, "temp", 0, "air temperature in °F")
	f.Float64Var(&evalObs.RelativeHumidityPct, "humidity", 0, "relative humidity in percent")
	f.Float64Var(&evalObs.WindSpeedMPH, "wind", 0, "wind speed in mph")
	f.Float64Var(&evalObs.CloudCoverPct, "cloud", 0, "cloud cover in percent")
	f.StringVar(&evalObs.ConditionText, "condition", "", "condition text, e.g. \"Light Rain\"")
	_ = evaluateCmd.MarkFlagRequired("temp")
	_ = evaluateCmd.MarkFlagRequired("humidity")
	_ = evaluateCmd.MarkFlagRequired("wind")
	_ = evaluateCmd.MarkFlagRequired("cloud")
}

func runEvaluate(cmd *cobra.Command, _ []string) error {
	evaluator, err := newEvaluator()
	if err != nil {
		return err
	}
	ev, err := evaluator.Evaluate(evalObs)
	if err != nil {
		return err
	}
	newLogger(cmd).Debug("observation evaluated", "decision", ev.Decision, "status", ev.Status)

	return writeOutput(cmd.OutOrStdout(), "-", struct {
		Observation domain.Observation `json:"observation"`
		Evaluation  domain.Evaluation  `json:"evaluation"`
	}{evalObs, ev})
}
