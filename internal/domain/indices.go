package domain

import "math"

const (
	// WindChillMaxTempF is the warmest air temperature for which wind chill is reported.
	WindChillMaxTempF = 50.0
	// WindChillMinWindMPH is the calm-air threshold; wind chill needs strictly more wind.
	WindChillMinWindMPH = 3.0

	// WBGTCutoffF gates heat classification: WBGT is only classified above this air temperature.
	WBGTCutoffF = 50.0
	// DefaultGlobeOffsetC approximates radiant load on the black globe in direct sun.
	DefaultGlobeOffsetC = 3.0
	// SunnyCloudCoverPct is the cloud cover below which the sky counts as sunny.
	SunnyCloudCoverPct = 30.0
)

// WindChillF returns the NWS wind chill in °F. The boolean is false when wind
// chill does not apply (air warmer than 50°F or wind at or below 3 mph).
//
// windMPH must be finite and non-negative; Evaluate enforces that, this does not.
func WindChillF(tempF, windMPH float64) (float64, bool) {
	if tempF > WindChillMaxTempF || windMPH <= WindChillMinWindMPH {
		return 0, false
	}
	v := math.Pow(windMPH, 0.16)
	return 35.74 + 0.6215*tempF - 35.75*v + 0.4275*tempF*v, true
}

// WBGTResult holds an outdoor WBGT estimate and the two temperatures it is built from.
type WBGTResult struct {
	WBGTC           float64 `json:"wbgt_c"`
	NaturalWetBulbC float64 `json:"natural_wet_bulb_c"`
	GlobeTempC      float64 `json:"globe_temp_c"`
}

// WBGTF returns the estimate in °F.
func (r WBGTResult) WBGTF() float64 {
	return ToFahrenheit(r.WBGTC)
}

// NaturalWetBulbC approximates natural wet-bulb temperature (Stull 2011) from
// air temperature in °C and relative humidity in percent. Humidity is clamped to [0, 100].
func NaturalWetBulbC(tempC, rh float64) float64 {
	rh = clampPct(rh)
	return tempC*math.Atan(0.151977*math.Sqrt(rh+8.313659)) +
		math.Atan(tempC+rh) - math.Atan(rh-1.676331) +
		0.00391838*math.Pow(rh, 1.5)*math.Atan(0.023101*rh) -
		4.686035
}

// EstimateWBGT weights natural wet bulb 70% and globe temperature 30%. The globe
// reads globeOffsetC above air temperature in sun and equals it otherwise.
func EstimateWBGT(tempC, rh float64, sunny bool, globeOffsetC float64) WBGTResult {
	tw := NaturalWetBulbC(tempC, rh)
	tg := tempC
	if sunny {
		tg += globeOffsetC
	}
	return WBGTResult{
		WBGTC:           0.7*tw + 0.3*tg,
		NaturalWetBulbC: tw,
		GlobeTempC:      tg,
	}
}

// IsSunny reports whether the given cloud cover counts as direct sun for the globe estimate.
func IsSunny(cloudCoverPct float64) bool {
	return cloudCoverPct < SunnyCloudCoverPct
}

// WBGTApplicable reports whether heat-stress classification applies at tempF.
func WBGTApplicable(tempF float64) bool {
	return tempF > WBGTCutoffF
}

func clampPct(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}
