// Package extract 將來源網頁內容交給 AI 提供者，取回結構化的配方抽取結果。
package extract

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"cocktail-importer/internal/core/ai/cache"
	"cocktail-importer/internal/core/ai/provider"
	"cocktail-importer/internal/core/scrape"
	"cocktail-importer/internal/core/units"
	"cocktail-importer/internal/pkg/common"
)

// extrapolatedNote AI 在自行推斷風味時附加於描述結尾的標記
const extrapolatedNote = "(Flavor profile extrapolated from ingredients.)"

// 基底描述超過此長度時視為足夠充實，移除推斷標記
const extrapolatedKeepThreshold = 75

// Service 抽取服務
// 單頁抽取失敗只記錄於 Notes，不中斷整批執行
type Service struct {
	provider      provider.Provider
	cache         *cache.Service
	maxTextLength int
}

// NewService 創建抽取服務
func NewService(p provider.Provider, c *cache.Service, maxTextLength int) *Service {
	return &Service{
		provider:      p,
		cache:         c,
		maxTextLength: maxTextLength,
	}
}

// extractedData AI 回應的預期結構
type extractedData struct {
	Description string                     `json:"description"`
	Ingredients []common.ScrapedIngredient `json:"ingredients"`
	Preparation []string                   `json:"preparation"`
}

// Extract 從單一網頁的 HTML 抽取配方
// 永遠回傳非 nil 結果：抽取失敗時內容為空、原因記於 Notes
func (s *Service) Extract(ctx context.Context, ref common.CocktailRef, html string) *common.ScrapedRecipe {
	recipe := &common.ScrapedRecipe{
		Name:        ref.Name,
		URL:         ref.URL,
		Ingredients: []common.ScrapedIngredient{},
		Preparation: []string{},
	}

	excerpt, err := scrape.Excerpt(html, s.maxTextLength)
	if err != nil {
		common.LogWarn("網頁內容解析失敗", zap.String("name", ref.Name), zap.Error(err))
		recipe.AddNote(fmt.Sprintf("Failed to parse page content: %v", err))
		return recipe
	}
	if strings.TrimSpace(excerpt) == "" {
		common.LogWarn("網頁沒有可用內容", zap.String("name", ref.Name), zap.String("url", ref.URL))
		recipe.AddNote("No relevant content found on page.")
		return recipe
	}

	prompt := BuildPrompt(excerpt)

	raw, err := s.cache.Get(ctx, ref.URL, prompt)
	if err != nil {
		raw, err = s.provider.Generate(ctx, prompt)
		if err != nil {
			common.LogError("AI 抽取呼叫失敗",
				zap.String("name", ref.Name),
				zap.String("model", s.provider.Model()),
				zap.Error(err),
			)
			recipe.AddNote(fmt.Sprintf("AI service call failed: %v", err))
			return recipe
		}
		if cacheErr := s.cache.Set(ctx, ref.URL, prompt, raw); cacheErr != nil {
			common.LogWarn("抽取結果寫入緩存失敗", zap.Error(cacheErr))
		}
	}

	s.parseResponse(ref, raw, recipe)
	s.normalize(recipe)
	return recipe
}

// parseResponse 容錯解析 AI 回應並填入配方內容
func (s *Service) parseResponse(ref common.CocktailRef, raw string, recipe *common.ScrapedRecipe) {
	jsonText := common.ExtractJSONObject(raw)
	if jsonText == "" {
		common.LogWarn("AI 回應不含 JSON 物件",
			zap.String("name", ref.Name),
			zap.Int("response_length", len(raw)),
		)
		recipe.AddNote("AI service returned empty or non-JSON response.")
		return
	}

	var data extractedData
	if err := common.ParseJSON(jsonText, &data); err != nil {
		snippet := jsonText
		if len(snippet) > 200 {
			snippet = snippet[:200]
		}
		common.LogWarn("AI 回應 JSON 解析失敗",
			zap.String("name", ref.Name),
			zap.String("snippet", snippet),
			zap.Error(err),
		)
		recipe.AddNote(fmt.Sprintf("JSON parse error: %v", err))
		return
	}

	recipe.Description = trimExtrapolatedNote(data.Description)
	if data.Ingredients != nil {
		recipe.Ingredients = data.Ingredients
	}
	if data.Preparation != nil {
		recipe.Preparation = data.Preparation
	}
}

// normalize 為每個原料計算正規化液體容量
func (s *Service) normalize(recipe *common.ScrapedRecipe) {
	for i := range recipe.Ingredients {
		ing := &recipe.Ingredients[i]
		ing.VolumeML = units.Normalize(ing.Amount, ing.Unit, ing.Name)
	}
}

// trimExtrapolatedNote 基底描述夠長時移除推斷標記，太短則整段保留
func trimExtrapolatedNote(description string) string {
	if !strings.HasSuffix(description, extrapolatedNote) {
		return description
	}
	base := strings.TrimSpace(strings.TrimSuffix(description, extrapolatedNote))
	if len(base) > extrapolatedKeepThreshold {
		return base
	}
	return description
}
