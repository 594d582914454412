package domain

import "math"

// UniformRecommendation is duty-uniform guidance with a 0–3 protection level.
type UniformRecommendation struct {
	Text  string `json:"text"`
	Level int    `json:"level"`
}

var (
	uniformStandard = UniformRecommendation{"Standard OCP/PT uniform", 0}

	uniformHeatBlack  = UniformRecommendation{"Light clothing only; no armor; full hydration and move indoors", 3}
	uniformHeatRed    = UniformRecommendation{"Light OCP/PT, reduce load, hydrate frequently", 2}
	uniformHeatYellow = UniformRecommendation{"OCP, consider modified load and frequent water breaks", 1}

	uniformArctic = UniformRecommendation{"Arctic clothing / extreme cold gear. No exposed skin. No outdoor training.", 3}
	uniformParka  = UniformRecommendation{"Parka + layered clothing + gloves + balaclava. Move indoors for prolonged training.", 2}
	uniformCold   = UniformRecommendation{"OCP + parka + gloves + warm layers. Limit prolonged exposed activities.", 2}
	uniformCool   = UniformRecommendation{"OCP + fleece + gloves recommended.", 1}
	uniformMild   = UniformRecommendation{"OCP + fleece optional; monitor wind and wetness.", 1}
)

// RecommendDutyUniform picks duty-uniform guidance. When heat applies (heat is
// non-nil) the heat path decides regardless of wind chill; otherwise wind chill
// bands are consulted, then the mild 33–50°F band.
func RecommendDutyUniform(tempF float64, windChillF *float64, heat *HeatCategory) UniformRecommendation {
	if heat != nil {
		switch sev := heat.Severity(); {
		case sev >= 5:
			return uniformHeatBlack
		case sev == 4:
			return uniformHeatRed
		case sev == 3:
			return uniformHeatYellow
		default:
			return uniformStandard
		}
	}
	if windChillF != nil {
		switch wc := *windChillF; {
		case wc <= -20:
			return uniformArctic
		case wc <= 0:
			return uniformParka
		case wc <= 20:
			return uniformCold
		case wc <= 32:
			return uniformCool
		}
	}
	if tempF > 33 && tempF <= 50 {
		return uniformMild
	}
	return uniformStandard
}

const (
	ptUniformHot     = "APFU Short-sleeve + shorts"
	ptUniformWarm    = "APFU Short-sleeve shirt + APFU shorts"
	ptUniformCool    = "APFU Short-sleeve + APFU Long-sleeve + APFU shorts"
	ptUniformCold    = "APFU Short-sleeve + APFU Long-sleeve + APFU Pants + APFU Jacket + Fleece Cap"
	ptUniformFreeze  = "APFU Short-sleeve + APFU Long-sleeve + APFU Pants + APFU Jacket + Fleece Cap + Gloves"
	ptUniformDefault = "Standard PT uniform"
)

// RecommendPTUniform picks the physical-training uniform from air temperature
// alone. A NaN temperature (upstream data missing) yields the standard PT uniform
// rather than an error.
func RecommendPTUniform(tempF float64) string {
	switch {
	case math.IsNaN(tempF):
		return ptUniformDefault
	case tempF > 80:
		return ptUniformHot
	case tempF >= 60:
		return ptUniformWarm
	case tempF >= 40:
		return ptUniformCool
	case tempF >= 20:
		return ptUniformCold
	default:
		return ptUniformFreeze
	}
}
