package units

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeConversions(t *testing.T) {
	tests := []struct {
		name   string
		amount any
		unit   string
		ing    string
		want   float64
	}{
		{"oz", 2.0, "oz", "gin", 59.147},
		{"oz fraction", 0.5, "oz", "lime juice", 14.78675},
		{"ml identity", 30.0, "ml", "vodka", 30.0},
		{"cl", 3.0, "cl", "campari", 30.0},
		{"dash", 2.0, "dash", "angostura bitters", 1.4},
		{"dashes alias", 2.0, "dashes", "angostura bitters", 1.4},
		{"tsp", 1.0, "tsp", "simple syrup", 5.0},
		{"barspoon", 1.0, "barspoon", "maraschino", 5.0},
		{"tablespoon", 1.0, "tablespoon", "cream", 15.0},
		{"shot", 1.0, "shot", "tequila", 44.0},
		{"case-insensitive unit", 1.0, "OZ", "rum", 29.5735},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.amount, tt.unit, tt.ing)
			require.NotNil(t, got)
			assert.InDelta(t, tt.want, *got, 1e-6)
		})
	}
}

func TestNormalizeJSONNumberAmount(t *testing.T) {
	// 交換檔經 UseNumber 解析後 amount 是 json.Number
	got := Normalize(json.Number("1.5"), "oz", "gin")
	require.NotNil(t, got)
	assert.InDelta(t, 44.36025, *got, 1e-6)
}

func TestNormalizeStringAmount(t *testing.T) {
	got := Normalize("1.5", "oz", "gin")
	require.NotNil(t, got)
	assert.InDelta(t, 44.36025, *got, 1e-6)
}

func TestNormalizeDescriptiveAmount(t *testing.T) {
	// 描述性數量無法換算成容量
	assert.Nil(t, Normalize("to taste", "oz", "sugar syrup"))
	assert.Nil(t, Normalize("a few", "dash", "bitters"))
	assert.Nil(t, Normalize("0.5-1", "oz", "lemon juice"))
}

func TestNormalizeMissingUnit(t *testing.T) {
	// 有數量但無單位：無法斷定容量
	assert.Nil(t, Normalize(1.0, "", "lime"))
	assert.Nil(t, Normalize("top with", "None", "soda water"))
}

func TestNormalizeUnknownUnit(t *testing.T) {
	assert.Nil(t, Normalize(1.0, "slice", "orange"))
	assert.Nil(t, Normalize(2.0, "sprig", "mint"))
}

func TestNormalizeBothMissing(t *testing.T) {
	tests := []struct {
		name string
		ing  string
		want *float64
	}{
		{"known liquid gets default", "orange juice", ptr(DefaultLiquidVolumeML)},
		{"spirit gets default", "vodka", ptr(DefaultLiquidVolumeML)},
		{"known non-liquid stays nil", "orange slice", nil},
		{"garnish stays nil", "mint garnish", nil},
		{"unknown name treated as liquid", "mystery elixir", ptr(DefaultLiquidVolumeML)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(nil, "", tt.ing)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestNormalizeNoneSentinels(t *testing.T) {
	// 抽取服務輸出的 "None" 字串等同缺值
	got := Normalize("None", "None", "gin")
	require.NotNil(t, got)
	assert.Equal(t, DefaultLiquidVolumeML, *got)
}

func TestConversionFactor(t *testing.T) {
	factor, ok := ConversionFactor("oz")
	require.True(t, ok)
	assert.Equal(t, 29.5735, factor)

	// "part" 是相對單位，換算表給佔位值 1.0
	factor, ok = ConversionFactor("part")
	require.True(t, ok)
	assert.Equal(t, 1.0, factor)

	_, ok = ConversionFactor("wedge")
	assert.False(t, ok)
}

func ptr(v float64) *float64 { return &v }
