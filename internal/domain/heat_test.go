package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyHeat_Boundaries(t *testing.T) {
	tests := []struct {
		wbgtF    float64
		want     HeatCategory
		severity int
	}{
		{60, HeatBelowWhite, 1},
		{77.9, HeatBelowWhite, 1},
		{78.0, HeatWhite, 1},
		{81.9, HeatWhite, 1},
		{81.95, HeatWhite, 1},
		{82.0, HeatGreen, 2},
		{84.9, HeatGreen, 2},
		{84.95, HeatGreen, 2},
		{85.0, HeatYellow, 3},
		{87.9, HeatYellow, 3},
		{88.0, HeatRed, 4},
		{89.9, HeatRed, 4},
		{89.99, HeatRed, 4},
		{90.0, HeatBlack, 5},
		{104, HeatBlack, 5},
	}
	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			got := ClassifyHeat(tt.wbgtF)
			assert.Equal(t, tt.want, got, "wbgt %g", tt.wbgtF)
			assert.Equal(t, tt.severity, got.Severity())
		})
	}
}

func TestClassifyHeat_Monotonic(t *testing.T) {
	prev := ClassifyHeat(50).Severity()
	for f := 50.0; f <= 100; f += 0.01 {
		sev := ClassifyHeat(f).Severity()
		assert.GreaterOrEqual(t, sev, prev, "wbgt %g", f)
		prev = sev
	}
}

func TestHeatCategory_JSON(t *testing.T) {
	data, err := json.Marshal(HeatYellow)
	require.NoError(t, err)
	assert.JSONEq(t, `"Yellow (Cat 3)"`, string(data))

	var c HeatCategory
	require.NoError(t, json.Unmarshal([]byte(`"Black (Cat 5)"`), &c))
	assert.Equal(t, HeatBlack, c)

	require.Error(t, json.Unmarshal([]byte(`"Purple"`), &c))
	assert.Equal(t, "HeatCategory(9)", HeatCategory(9).String())
}
