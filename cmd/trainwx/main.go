// Command trainwx evaluates weather observations for outdoor training safety
// without Kafka: single readings from flags, JSON files of collector records,
// or provider forecasts summarized per day.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/couchcryptid/training-weather-etl/internal/domain"
	"github.com/couchcryptid/training-weather-etl/internal/observability"
	"github.com/spf13/cobra"
)

var (
	logLevel     string
	globeOffsetC float64
)

var rootCmd = &cobra.Command{
	Use:   "trainwx",
	Short: "trainwx - outdoor training weather assessments",
	Long: `trainwx runs the training weather decision engine locally. It computes
wind chill, WBGT, heat category, precipitation hazards, uniform
recommendations and the training decision for each observation.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Float64Var(&globeOffsetC, "globe-offset", domain.DefaultGlobeOffsetC, "sun-load globe temperature offset in °C")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger(cmd *cobra.Command) *slog.Logger {
	return observability.NewWriterLogger(cmd.ErrOrStderr(), logLevel, "text")
}

func newEvaluator() (domain.Evaluator, error) {
	if globeOffsetC < 0 || globeOffsetC > 15 {
		return domain.Evaluator{}, fmt.Errorf("--globe-offset %g outside [0, 15]", globeOffsetC)
	}
	return domain.NewEvaluator(globeOffsetC), nil
}
