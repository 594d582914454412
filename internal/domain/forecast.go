package domain

import (
	"sort"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ForecastSample is one interval (typically 3 h) of a provider forecast.
type ForecastSample struct {
	Time                time.Time `json:"time"`
	TemperatureF        float64   `json:"temp_f"`
	RelativeHumidityPct float64   `json:"humidity"`
	WindSpeedMPH        float64   `json:"wind_mph"`
	RainMM              float64   `json:"rain_mm"`
	SnowMM              float64   `json:"snow_mm"`
	ConditionText       string    `json:"condition"`
}

// DailySummary collapses a day of forecast samples into one observation.
type DailySummary struct {
	Date        string      `json:"date"` // YYYY-MM-DD, UTC
	Samples     int         `json:"samples"`
	Observation Observation `json:"observation"`
}

// SummarizeForecast groups samples by UTC date and returns at most days
// summaries in ascending date order. Each day uses mean temperature and
// humidity, peak wind, and the most frequent condition (earliest wins ties).
// Cloud cover is proxied from precipitation: 100 when any rain or snow is
// forecast, 0 otherwise.
func SummarizeForecast(samples []ForecastSample, days int) []DailySummary {
	type dayAcc struct {
		n          int
		sumTemp    float64
		sumRH      float64
		maxWind    float64
		precip     bool
		condCounts map[string]int
		condOrder  []string
	}

	byDate := make(map[string]*dayAcc)
	for _, s := range samples {
		key := s.Time.UTC().Format(time.DateOnly)
		acc, ok := byDate[key]
		if !ok {
			acc = &dayAcc{condCounts: make(map[string]int)}
			byDate[key] = acc
		}
		acc.n++
		acc.sumTemp += s.TemperatureF
		acc.sumRH += s.RelativeHumidityPct
		if acc.n == 1 || s.WindSpeedMPH > acc.maxWind {
			acc.maxWind = s.WindSpeedMPH
		}
		if s.RainMM > 0 || s.SnowMM > 0 {
			acc.precip = true
		}
		if _, seen := acc.condCounts[s.ConditionText]; !seen {
			acc.condOrder = append(acc.condOrder, s.ConditionText)
		}
		acc.condCounts[s.ConditionText]++
	}

	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	if days >= 0 && len(dates) > days {
		dates = dates[:days]
	}

	caser := cases.Title(language.English)
	out := make([]DailySummary, 0, len(dates))
	for _, d := range dates {
		acc := byDate[d]
		cloud := 0.0
		if acc.precip {
			cloud = 100
		}
		out = append(out, DailySummary{
			Date:    d,
			Samples: acc.n,
			Observation: Observation{
				TemperatureF:        acc.sumTemp / float64(acc.n),
				RelativeHumidityPct: acc.sumRH / float64(acc.n),
				WindSpeedMPH:        acc.maxWind,
				CloudCoverPct:       cloud,
				ConditionText:       caser.String(majority(acc.condOrder, acc.condCounts)),
			},
		})
	}
	return out
}

func majority(order []string, counts map[string]int) string {
	best, bestN := "", 0
	for _, c := range order {
		if counts[c] > bestN {
			best, bestN = c, counts[c]
		}
	}
	return best
}
