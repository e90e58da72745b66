package common

// ScrapedIngredient 從來源文字抽取出的單一原料行
// Amount 可能是數字（float64/json.Number）、描述性字串（"to taste"）或 nil/"None"
type ScrapedIngredient struct {
	Name     string   `json:"name"`
	Amount   any      `json:"amount"`
	Unit     string   `json:"unit"`
	VolumeML *float64 `json:"volume_ml"` // 正規化後的液體容量（毫升），無法換算時為 null
}

// ScrapedRecipe 一頁來源網頁對應一份抽取結果
// 兩條批次管線之間唯一的交換格式（JSON 陣列序列化）
type ScrapedRecipe struct {
	Name        string              `json:"name"`
	URL         string              `json:"url,omitempty"`
	Description string              `json:"description"`
	Ingredients []ScrapedIngredient `json:"ingredients"`
	Preparation []string            `json:"preparation"`
	Notes       []string            `json:"notes,omitempty"` // 抽取過程的診斷訊息（解析失敗等）
}

// Empty 判斷抽取結果是否沒有任何可用內容
func (r *ScrapedRecipe) Empty() bool {
	return len(r.Ingredients) == 0 && len(r.Preparation) == 0
}

// AddNote 附加一條診斷訊息
func (r *ScrapedRecipe) AddNote(note string) {
	r.Notes = append(r.Notes, note)
}

// CocktailRef 待抓取的雞尾酒清單項目（scraper 的輸入檔格式）
type CocktailRef struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}
