package domain

import (
	"encoding/json"
	"fmt"
)

// HeatCategory is a TRADOC-style heat-stress tier derived from WBGT.
type HeatCategory int

const (
	HeatBelowWhite HeatCategory = iota
	HeatWhite
	HeatGreen
	HeatYellow
	HeatRed
	HeatBlack
)

// heatBands lists the lower WBGT (°F) bound of each category, hottest first.
// Bands are half-open upward: a value equal to a bound belongs to the hotter band.
var heatBands = []struct {
	minF     float64
	category HeatCategory
}{
	{90, HeatBlack},
	{88, HeatRed},
	{85, HeatYellow},
	{82, HeatGreen},
	{78, HeatWhite},
}

// ClassifyHeat maps a WBGT in °F to its heat category. Every real input maps to
// exactly one category; NaN falls through to Below White, so callers gate on
// finiteness before classifying.
func ClassifyHeat(wbgtF float64) HeatCategory {
	for _, b := range heatBands {
		if wbgtF >= b.minF {
			return b.category
		}
	}
	return HeatBelowWhite
}

// Severity returns the ordinal 1–5 used by the uniform and decision engines.
// Below White and White share severity 1.
func (c HeatCategory) Severity() int {
	switch c {
	case HeatGreen:
		return 2
	case HeatYellow:
		return 3
	case HeatRed:
		return 4
	case HeatBlack:
		return 5
	default:
		return 1
	}
}

func (c HeatCategory) String() string {
	switch c {
	case HeatBelowWhite:
		return "Below White"
	case HeatWhite:
		return "White (Cat 1)"
	case HeatGreen:
		return "Green (Cat 2)"
	case HeatYellow:
		return "Yellow (Cat 3)"
	case HeatRed:
		return "Red (Cat 4)"
	case HeatBlack:
		return "Black (Cat 5)"
	default:
		return fmt.Sprintf("HeatCategory(%d)", int(c))
	}
}

// MarshalJSON encodes the category as its label.
func (c HeatCategory) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON accepts the labels produced by MarshalJSON.
func (c *HeatCategory) UnmarshalJSON(data []byte) error {
	var label string
	if err := json.Unmarshal(data, &label); err != nil {
		return fmt.Errorf("heat category: %w", err)
	}
	for cat := HeatBelowWhite; cat <= HeatBlack; cat++ {
		if cat.String() == label {
			*c = cat
			return nil
		}
	}
	return fmt.Errorf("heat category: unknown label %q", label)
}
