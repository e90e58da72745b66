// Package units 把（數量、單位、原料名）三元組正規化成毫升容量。
package units

import (
	"strings"

	"cocktail-importer/internal/pkg/common"
)

// DefaultLiquidVolumeML 無數量、無單位的液體原料預設容量
const DefaultLiquidVolumeML = 5.0

// unitToML 標準酒吧量法對毫升的換算表
// "part"/"parts" 是相對單位，1.0 只是佔位值，呼叫端不可當成絕對容量
var unitToML = map[string]float64{
	"oz":         29.5735,
	"ml":         1.0,
	"cl":         10.0,
	"dash":       0.7,
	"dashes":     0.7,
	"drop":       0.05,
	"drops":      0.05,
	"tsp":        5.0,
	"teaspoon":   5.0,
	"tbs":        15.0,
	"tbsp":       15.0,
	"tablespoon": 15.0,
	"part":       1.0,
	"parts":      1.0,
	"shot":       44.0,
	"jigger":     44.0,
	"pony":       29.57,
	"cup":        236.588,
	"pint":       473.176,
	"quart":      946.353,
	"gallon":     3785.41,
	"barspoon":   5.0,
	"splash":     7.0,
	"pinch":      0.3,
}

// likelyLiquids 沒給數量與單位時應預設為 5ml 的液體關鍵字
var likelyLiquids = []string{
	"vodka", "gin", "rum", "tequila", "whiskey", "brandy", "liqueur", "vermouth", "absinthe",
	"juice", "syrup", "soda", "water", "milk", "cream", "bitters", "cordial", "cava",
	"wine", "champagne", "beer", "cider", "cola", "tonic", "ginger ale", "ginger beer",
	"cranberry", "pineapple", "grapefruit", "orange juice", "lemon-lime", "blue curaçao",
	"cointreau", "triple sec", "amaretto", "chartreuse", "campari", "aperol", "kahlua",
	"frangelico", "baileys", "drambuie", "schnapps", "pimento dram", "grenadine", "falernum",
	"prosecco", "sparkling wine",
}

// knownNonLiquids 明確不是液體、不應給預設容量的關鍵字
var knownNonLiquids = []string{
	"slice", "sprig", "wedge", "leaf", "cubes", "peel", "strip", "rim", "top", "fill",
	"egg", "sugar", "salt", "pepper", "nutmeg", "cinnamon", "berry", "cherry", "olive",
	"garnish", "ice", "chocolate", "to taste", "dust", "powder", "beans", "fruit",
}

// ConversionFactor 查詢單位的毫升換算係數
func ConversionFactor(unit string) (float64, bool) {
	factor, ok := unitToML[common.NormalizeName(unit)]
	return factor, ok
}

// isNone 判斷欄位是否為「缺值」——nil、空字串或抽取服務輸出的 "None"
func isNone(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	trimmed := common.NormalizeName(s)
	return trimmed == "" || trimmed == "none"
}

// Normalize 計算原料的正規化液體容量（毫升）
// 無法換算（描述性數量、非容量單位、未知單位）時回傳 nil。
// 數量與單位都缺值時依原料名分類：已知液體與未知名稱預設 5ml（寧可多算
// 也不要默默丟掉原料），已知非液體回傳 nil。
func Normalize(amount any, unit string, name string) *float64 {
	amountNone := isNone(amount)
	unitNone := isNone(unit)
	cleanedName := common.NormalizeName(name)

	if amountNone && unitNone {
		for _, item := range likelyLiquids {
			if strings.Contains(cleanedName, item) {
				v := DefaultLiquidVolumeML
				return &v
			}
		}
		for _, item := range knownNonLiquids {
			if strings.Contains(cleanedName, item) {
				return nil
			}
		}
		// 兩份清單都沒命中，保守起見當液體處理
		v := DefaultLiquidVolumeML
		return &v
	}

	// 單位缺值但數量存在：描述性數量（"top with soda"、"fill"）無法換算
	if unitNone {
		return nil
	}

	numeric, ok := common.AmountToFloat(amount)
	if !ok {
		// 數量是描述性字串（"to taste"）或範圍（"0.5-1"）
		return nil
	}

	factor, ok := ConversionFactor(unit)
	if !ok {
		// 單位不在換算表內或不是容量單位
		return nil
	}

	v := numeric * factor
	return &v
}
