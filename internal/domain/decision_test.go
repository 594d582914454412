package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecideTraining(t *testing.T) {
	override := DecisionNoOutdoorTraining
	stormy := PrecipitationAssessment{Severity: PrecipExtreme, Override: &override}
	heavy := PrecipitationAssessment{Severity: PrecipHigh}
	dry := PrecipitationAssessment{Severity: PrecipLow}

	tests := []struct {
		name string
		in   DecisionInputs
		want Decision
	}{
		{"override beats extreme cold", DecisionInputs{WindChillF: ptr(-40.0), Precipitation: stormy}, DecisionNoOutdoorTraining},
		{"override beats black heat", DecisionInputs{Heat: ptr(HeatBlack), Precipitation: stormy}, DecisionNoOutdoorTraining},
		{"wind chill -20.000", DecisionInputs{WindChillF: ptr(-20.0), Precipitation: dry}, DecisionExtremeCold},
		{"wind chill -19.999", DecisionInputs{WindChillF: ptr(-19.999), Precipitation: dry}, DecisionHighColdRisk},
		{"wind chill 0.000", DecisionInputs{WindChillF: ptr(0.0), Precipitation: dry}, DecisionHighColdRisk},
		{"wind chill 0.001", DecisionInputs{WindChillF: ptr(0.001), Precipitation: dry}, DecisionColdCaution},
		{"wind chill 20.000", DecisionInputs{WindChillF: ptr(20.0), Precipitation: dry}, DecisionColdCaution},
		{"wind chill 20.001", DecisionInputs{WindChillF: ptr(20.001), Precipitation: dry}, DecisionNoRestrictions},
		{"wind chill 32.000", DecisionInputs{WindChillF: ptr(32.0), Precipitation: dry}, DecisionNoRestrictions},
		{"cold beats heavy precipitation", DecisionInputs{WindChillF: ptr(10.0), Precipitation: heavy}, DecisionColdCaution},
		{"heavy precipitation beats heat", DecisionInputs{Heat: ptr(HeatBlack), Precipitation: heavy}, DecisionPrecipitation},
		{"extreme cold beats black heat", DecisionInputs{WindChillF: ptr(-25.0), Heat: ptr(HeatBlack), Precipitation: dry}, DecisionExtremeCold},
		{"heat black", DecisionInputs{Heat: ptr(HeatBlack), Precipitation: dry}, DecisionExtremeHeat},
		{"heat red", DecisionInputs{Heat: ptr(HeatRed), Precipitation: dry}, DecisionLimitHeat},
		{"heat yellow", DecisionInputs{Heat: ptr(HeatYellow), Precipitation: dry}, DecisionHeatCaution},
		{"heat green", DecisionInputs{Heat: ptr(HeatGreen), Precipitation: dry}, DecisionNoRestrictions},
		{"heat below white", DecisionInputs{Heat: ptr(HeatBelowWhite), Precipitation: dry}, DecisionNoRestrictions},
		{"moderate precipitation alone", DecisionInputs{Precipitation: PrecipitationAssessment{Severity: PrecipModerate}}, DecisionNoRestrictions},
		{"nothing applies", DecisionInputs{}, DecisionNoRestrictions},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecideTraining(tt.in))
		})
	}
}

func TestDecision_Status(t *testing.T) {
	tests := []struct {
		decision Decision
		want     Status
	}{
		{DecisionNoOutdoorTraining, StatusStop},
		{DecisionExtremeCold, StatusStop},
		{DecisionHighColdRisk, StatusStop},
		{DecisionExtremeHeat, StatusStop},
		{DecisionColdCaution, StatusLimit},
		{DecisionPrecipitation, StatusLimit},
		{DecisionLimitHeat, StatusLimit},
		{DecisionHeatCaution, StatusCaution},
		{DecisionNoRestrictions, StatusGo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.decision.Status(), string(tt.decision))
	}

	assert.Less(t, StatusGo.Rank(), StatusCaution.Rank())
	assert.Less(t, StatusCaution.Rank(), StatusLimit.Rank())
	assert.Less(t, StatusLimit.Rank(), StatusStop.Rank())
}
