package domain

import "strings"

// PrecipSeverity grades the hazard implied by a weather condition description.
type PrecipSeverity string

const (
	PrecipLow      PrecipSeverity = "low"
	PrecipModerate PrecipSeverity = "moderate"
	PrecipHigh     PrecipSeverity = "high"
	PrecipExtreme  PrecipSeverity = "extreme"
)

// PrecipitationAssessment is the interpretation of a free-text condition.
// Override, when set, is a hard decision that wins over every thermal rule.
type PrecipitationAssessment struct {
	Severity PrecipSeverity `json:"severity"`
	Note     string         `json:"note"`
	Override *Decision      `json:"override,omitempty"`
}

type conditionRule struct {
	matches  func(c string) bool
	severity PrecipSeverity
	note     string
	override bool
}

// conditionRules is evaluated in order and the first match wins. Severe and
// specific phrases must stay ahead of generic ones ("freezing rain" before "rain",
// "heavy snow" before "snow").
var conditionRules = []conditionRule{
	{containsAny("thunder", "storm"), PrecipExtreme, "Thunderstorm / lightning risk", true},
	{func(c string) bool {
		return strings.Contains(c, "freezing rain") ||
			(strings.Contains(c, "freezing") && strings.Contains(c, "rain"))
	}, PrecipExtreme, "Freezing rain / ice risk", true},
	{containsAny("sleet", "ice", "icy"), PrecipExtreme, "Icy conditions", true},
	{containsAny("blizzard"), PrecipExtreme, "Blizzard / near-zero visibility", true},
	{containsAny("heavy snow"), PrecipHigh, "Heavy snow — visibility & slip risk", false},
	{containsAny("snow", "flurr"), PrecipModerate, "Snow present — traction/visibility caution", false},
	{containsAny("heavy rain", "torrential"), PrecipHigh, "Heavy rain — hypothermia & slip risk", false},
	{containsAny("rain", "shower"), PrecipModerate, "Rain — wet/hypothermia risk", false},
	{containsAny("drizzle", "light rain"), PrecipLow, "Light rain / drizzle", false},
	{containsAny("fog", "mist"), PrecipModerate, "Fog / reduced visibility", false},
}

var noPrecipitation = PrecipitationAssessment{Severity: PrecipLow, Note: "No precipitation hazards"}

// InterpretCondition classifies a condition description such as "Light Snow" or
// "Severe Thunderstorms Expected". Matching is case-insensitive substring
// matching; empty text yields the low-hazard default.
func InterpretCondition(text string) PrecipitationAssessment {
	c := strings.ToLower(text)
	for _, r := range conditionRules {
		if !r.matches(c) {
			continue
		}
		a := PrecipitationAssessment{Severity: r.severity, Note: r.note}
		if r.override {
			d := DecisionNoOutdoorTraining
			a.Override = &d
		}
		return a
	}
	return noPrecipitation
}

func containsAny(subs ...string) func(string) bool {
	return func(c string) bool {
		for _, s := range subs {
			if strings.Contains(c, s) {
				return true
			}
		}
		return false
	}
}
