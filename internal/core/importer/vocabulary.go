package importer

import (
	"sort"

	"cocktail-importer/internal/core/cocktailpi"
	"cocktail-importer/internal/pkg/common"

	"go.uber.org/zap"
)

// Vocabulary 目標伺服器的詞彙表快照：三組獨立的小寫名稱對 id 映射
// Ingredients 在執行期間是可變狀態——自動建立的原料會被寫回，
// 其餘映射在執行起點取得後不再變動
type Vocabulary struct {
	Ingredients map[string]int64 // 原料與群組（合併，供比對）
	Groups      map[string]int64 // 僅群組（供選擇預設父群組）
	Glasses     map[string]int64
	Categories  map[string]int64
}

// BuildVocabulary 由伺服器回應建立詞彙表
func BuildVocabulary(ingredients []cocktailpi.Ingredient, glasses []cocktailpi.Glass, categories []cocktailpi.Category) *Vocabulary {
	v := &Vocabulary{
		Ingredients: make(map[string]int64, len(ingredients)),
		Groups:      make(map[string]int64),
		Glasses:     make(map[string]int64, len(glasses)),
		Categories:  make(map[string]int64, len(categories)),
	}

	for _, item := range ingredients {
		name := common.NormalizeName(item.Name)
		v.Ingredients[name] = item.ID
		if item.Type == "group" {
			v.Groups[name] = item.ID
		}
	}
	for _, item := range glasses {
		v.Glasses[common.NormalizeName(item.Name)] = item.ID
	}
	for _, item := range categories {
		v.Categories[common.NormalizeName(item.Name)] = item.ID
	}

	common.LogInfo("已載入 CocktailPi 詞彙表",
		zap.Int("原料與群組", len(v.Ingredients)),
		zap.Int("群組", len(v.Groups)),
		zap.Int("杯具", len(v.Glasses)),
		zap.Int("分類", len(v.Categories)),
	)
	return v
}

// firstByName 取排序後第一個映射值，讓「取第一個可用」的退路是可重現的
func firstByName(m map[string]int64) (int64, bool) {
	if len(m) == 0 {
		return 0, false
	}
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return m[names[0]], true
}

// pickByPreference 依偏好順序挑選，全落空時退回第一個可用項
func pickByPreference(m map[string]int64, preferences ...string) (int64, bool) {
	for _, name := range preferences {
		if id, ok := m[name]; ok {
			return id, true
		}
	}
	return firstByName(m)
}

// DefaultParentGroupID 自動建立原料時使用的父群組
// 偏好 "other liquids" > "other" > "manual ingredients" > 第一個群組；沒有群組回傳 0
func (v *Vocabulary) DefaultParentGroupID() int64 {
	id, ok := pickByPreference(v.Groups, "other liquids", "other", "manual ingredients")
	if !ok {
		common.LogWarn("伺服器上沒有任何原料群組，自動建立原料將被略過")
		return 0
	}
	return id
}

// DefaultGlassID 預設杯具，偏好常見的雞尾酒杯名稱；全落空時退回 1
func (v *Vocabulary) DefaultGlassID() int64 {
	id, ok := pickByPreference(v.Glasses,
		"cocktail glass", "coupe", "old fashioned glass", "highball glass", "shot glass")
	if !ok {
		return 1
	}
	return id
}

// DefaultCategoryID 預設分類，偏好 "classic" > "other"；全落空時退回 7
func (v *Vocabulary) DefaultCategoryID() int64 {
	id, ok := pickByPreference(v.Categories, "classic", "other")
	if !ok {
		return 7
	}
	return id
}
