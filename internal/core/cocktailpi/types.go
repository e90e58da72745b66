package cocktailpi

// Ingredient 伺服器端的原料或原料群組
type Ingredient struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Type           string  `json:"type"` // automated | manual | group
	AlcoholContent float64 `json:"alcoholContent,omitempty"`
	InBar          bool    `json:"inBar,omitempty"`
	ParentGroupID  int64   `json:"parentGroupId,omitempty"`
}

// Glass 伺服器端的杯具
type Glass struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Category 伺服器端的配方分類
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// RecipeSummary 配方列表裡的單筆摘要
type RecipeSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// recipePage 配方列表回應（分頁包裝，內容在 content 欄位）
type recipePage struct {
	Content []RecipeSummary `json:"content"`
}

// loginResponse 登入回應
type loginResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
}

// createIngredientRequest 建立原料的請求
// OnPump 僅在 automated 型別時出現在 payload 中
type createIngredientRequest struct {
	Name           string  `json:"name"`
	Type           string  `json:"type"`
	AlcoholContent float64 `json:"alcoholContent"`
	InBar          bool    `json:"inBar"`
	OnPump         *bool   `json:"onPump,omitempty"`
	ParentGroupID  int64   `json:"parentGroupId,omitempty"`
}

// StepIngredient addIngredients 步驟裡的單一出酒項目
type StepIngredient struct {
	Amount       int   `json:"amount"` // 毫升，四捨五入到整數
	Scale        bool  `json:"scale"`
	Boostable    bool  `json:"boostable"`
	IngredientID int64 `json:"ingredientId"`
}

// 生產步驟型別標記
const (
	StepTypeWrittenInstruction = "writtenInstruction"
	StepTypeAddIngredients     = "addIngredients"
)

// ProductionStep 配方執行計畫中的一個有序單元
// 帶標記的變體：書面指示（Message）或自動加料（StepIngredients）
type ProductionStep struct {
	Type            string           `json:"type"`
	Message         string           `json:"message,omitempty"`
	StepIngredients []StepIngredient `json:"stepIngredients,omitempty"`
}

// WrittenInstruction 建立一個書面指示步驟
func WrittenInstruction(message string) ProductionStep {
	return ProductionStep{Type: StepTypeWrittenInstruction, Message: message}
}

// AddIngredients 建立一個自動加料步驟
func AddIngredients(ingredients []StepIngredient) ProductionStep {
	return ProductionStep{Type: StepTypeAddIngredients, StepIngredients: ingredients}
}

// RecipePayload 提交給伺服器的完整配方
type RecipePayload struct {
	Name            string           `json:"name"`
	OwnerID         int64            `json:"ownerId"`
	Description     string           `json:"description"`
	ProductionSteps []ProductionStep `json:"productionSteps"`
	DefaultGlassID  int64            `json:"defaultGlassId"`
	CategoryIDs     []int64          `json:"categoryIds"`
}
