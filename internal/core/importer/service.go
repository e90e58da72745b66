// Package importer 實作匯入管線：讀交換檔、比對詞彙表、組裝並提交配方。
// 整條管線嚴格單執行緒循序處理，單筆失敗不會中止批次。
package importer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cocktail-importer/internal/core/classify"
	"cocktail-importer/internal/core/cocktailpi"
	"cocktail-importer/internal/infrastructure/config"
	"cocktail-importer/internal/pkg/common"

	"go.uber.org/zap"
)

// Catalog 匯入需要的目標伺服器操作
type Catalog interface {
	ListIngredients(ctx context.Context) ([]cocktailpi.Ingredient, error)
	ListGlasses(ctx context.Context) ([]cocktailpi.Glass, error)
	ListCategories(ctx context.Context) ([]cocktailpi.Category, error)
	ListRecipes(ctx context.Context) ([]cocktailpi.RecipeSummary, error)
	CreateManualIngredient(ctx context.Context, name string, parentGroupID int64) (int64, string, error)
	CreateRecipe(ctx context.Context, payload *cocktailpi.RecipePayload) error
}

// Summary 一次匯入批次的結果統計
type Summary struct {
	Total      int // 交換檔中的配方總數
	Imported   int // 成功匯入
	Skipped    int // 資料不足或提交失敗
	Duplicates int // 名稱已存在
}

// Service 匯入批次服務
type Service struct {
	catalog Catalog
	config  *config.CocktailPiConfig
}

// NewService 創建匯入服務
func NewService(catalog Catalog, cfg *config.CocktailPiConfig) *Service {
	return &Service{
		catalog: catalog,
		config:  cfg,
	}
}

// Run 執行匯入批次
// 詞彙表取不到任何原料時視為配置層級錯誤回傳；其餘錯誤逐筆記錄後繼續
func (s *Service) Run(ctx context.Context, recipes []common.ScrapedRecipe) (*Summary, error) {
	ingredients, err := s.catalog.ListIngredients(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch ingredients: %w", err)
	}
	if len(ingredients) == 0 {
		return nil, fmt.Errorf("no ingredients available on cocktailpi, cannot map recipes")
	}
	glasses, err := s.catalog.ListGlasses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch glasses: %w", err)
	}
	categories, err := s.catalog.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}

	vocab := BuildVocabulary(ingredients, glasses, categories)
	parentGroupID := vocab.DefaultParentGroupID()
	glassID := vocab.DefaultGlassID()
	categoryID := vocab.DefaultCategoryID()
	common.LogInfo("預設參照已選定",
		zap.Int64("父群組", parentGroupID),
		zap.Int64("杯具", glassID),
		zap.Int64("分類", categoryID),
	)

	existing, err := s.catalog.ListRecipes(ctx)
	if err != nil {
		// 拿不到現有配方仍可匯入，只是防重能力受限
		common.LogWarn("無法取得現有配方清單，防重檢查將只涵蓋本次執行", zap.Error(err))
	}
	guard := NewDuplicateGuard(existing)
	common.LogInfo("現有配方快照已載入", zap.Int("數量", guard.Size()))

	classifier := classify.New(vocab.Ingredients, s.catalog, parentGroupID)
	builder := NewPayloadBuilder(classifier, s.config.OwnerID, glassID, categoryID)

	summary := &Summary{Total: len(recipes)}
	for i := range recipes {
		recipe := &recipes[i]
		name := strings.TrimSpace(recipe.Name)
		common.LogInfo("處理配方",
			zap.Int("序號", i+1),
			zap.Int("總數", len(recipes)),
			zap.String("配方", name),
		)

		if name == "" || recipe.Empty() {
			common.LogWarn("配方缺少名稱或內容，略過", zap.String("配方", name))
			summary.Skipped++
			continue
		}

		if guard.Seen(name) {
			common.LogInfo("配方已存在，略過重複匯入", zap.String("配方", name))
			summary.Duplicates++
			continue
		}

		payload := builder.Build(ctx, recipe)
		if !HasMeaningfulSteps(payload) {
			common.LogWarn("配方組不出有意義的步驟，略過提交", zap.String("配方", name))
			summary.Skipped++
			continue
		}

		if err := s.catalog.CreateRecipe(ctx, payload); err != nil {
			common.LogError("配方提交失敗", zap.String("配方", name), zap.Error(err))
			summary.Skipped++
		} else {
			common.LogInfo("配方匯入成功", zap.String("配方", name))
			guard.Record(name)
			summary.Imported++
		}

		// 對伺服器的禮貌延遲，與正確性無關
		time.Sleep(s.config.RequestDelay)
	}

	common.LogInfo("匯入批次結束",
		zap.Int("總數", summary.Total),
		zap.Int("成功", summary.Imported),
		zap.Int("略過", summary.Skipped),
		zap.Int("重複", summary.Duplicates),
	)
	return summary, nil
}
