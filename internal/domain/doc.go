// Package domain evaluates weather observations for military training safety.
//
// # Inputs
//
// Each observation carries air temperature (°F), relative humidity (%), wind
// speed (mph), cloud cover (%) and a free-text condition such as "Light Snow" or
// "Scattered Thunderstorms". The upstream collector publishes one flat JSON
// record per observation:
//
//	{"station":"Brookings, SD","observed_at":"2024-07-15T19:00:00Z",
//	 "temp_f":95,"humidity":60,"wind_mph":5,"cloud":10,"condition":"Clear Sky"}
//
// # Indices
//
// Wind chill uses the 2001 NWS formula and is only defined at or below 50°F with
// wind above 3 mph:
//
//	WC = 35.74 + 0.6215·T − 35.75·V^0.16 + 0.4275·T·V^0.16
//
// WBGT is an outdoor estimate from a Stull-style natural wet-bulb approximation
// and a globe temperature that reads 3°C above air temperature under sunny skies
// (cloud cover below 30%):
//
//	WBGT = 0.7·Tw + 0.3·Tg
//
// # Heat categories
//
// WBGT is classified only when air temperature exceeds 50°F. Bands are half-open
// upward so every value lands in exactly one category:
//
//	<78 Below White | 78–<82 White | 82–<85 Green | 85–<88 Yellow | 88–<90 Red | ≥90 Black
//
// # Decision priority
//
// Rules are evaluated in order and the first match wins:
//
//  1. hazardous condition text (thunder, freezing rain, ice, blizzard) → NO OUTDOOR TRAINING
//  2. wind chill ≤ −20 / ≤ 0 / ≤ 20
//  3. heavy precipitation
//  4. heat category
//  5. no restrictions
//
// Cold rules precede heat rules; condition overrides precede both.
//
// # IDs
//
// Assessment IDs are name-based UUIDs (v5) over station, observation time and
// inputs, so replays produce the same ID. See [assessmentID].
package domain
