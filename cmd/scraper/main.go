package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"cocktail-importer/internal/core/ai/cache"
	"cocktail-importer/internal/core/ai/gemini"
	"cocktail-importer/internal/core/ai/openrouter"
	"cocktail-importer/internal/core/ai/provider"
	"cocktail-importer/internal/core/extract"
	"cocktail-importer/internal/core/scrape"
	"cocktail-importer/internal/infrastructure/config"
	"cocktail-importer/internal/pkg/common"
)

func main() {
	// 載入 .env
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found")
	}

	// 載入設定
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 初始化 logger（需在載入 config 後）
	if err := common.InitLogger(cfg.LogLevel, "scraper"); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer common.Sync()

	common.LogInfo("啟動抓取管線",
		zap.String("version", cfg.App.Version),
		zap.String("list_file", cfg.Scraper.ListFile),
		zap.String("output_file", cfg.Scraper.OutputFile),
	)

	ctx := context.Background()

	// 讀取雞尾酒清單
	refs, err := loadCocktailList(cfg.Scraper.ListFile)
	if err != nil {
		common.LogFatal("讀取雞尾酒清單失敗",
			zap.String("file", cfg.Scraper.ListFile),
			zap.Error(err),
		)
	}
	if cfg.Scraper.Limit > 0 && len(refs) > cfg.Scraper.Limit {
		refs = refs[:cfg.Scraper.Limit]
	}

	// 初始化快取（失敗時降級為無快取執行）
	cacheSvc, err := cache.NewService(&cfg.Cache)
	if err != nil {
		common.LogWarn("快取初始化失敗，改為無快取執行", zap.Error(err))
		cacheSvc, _ = cache.NewService(&config.CacheConfig{Enabled: false})
	}
	defer cacheSvc.Close()

	// 初始化 AI 提供者
	aiProvider, err := newProvider(ctx, cfg)
	if err != nil {
		common.LogFatal("AI 提供者初始化失敗", zap.Error(err))
	}
	defer aiProvider.Close()

	fetcher := scrape.NewFetcher(&cfg.Scraper)
	extractor := extract.NewService(aiProvider, cacheSvc, cfg.Scraper.MaxTextLength)

	// 逐頁抓取與抽取，單頁失敗不中斷整批
	results := make([]common.ScrapedRecipe, 0, len(refs))
	for i, ref := range refs {
		common.LogInfo("處理中",
			zap.Int("index", i+1),
			zap.Int("total", len(refs)),
			zap.String("name", ref.Name),
		)

		recipe := scrapeOne(ctx, fetcher, extractor, ref)
		results = append(results, *recipe)

		if i < len(refs)-1 {
			time.Sleep(cfg.Scraper.RequestDelay)
		}
	}

	if err := writeResults(cfg.Scraper.OutputFile, results); err != nil {
		common.LogFatal("寫入抽取結果失敗",
			zap.String("file", cfg.Scraper.OutputFile),
			zap.Error(err),
		)
	}

	common.LogInfo("抓取管線完成",
		zap.Int("total", len(results)),
		zap.String("output_file", cfg.Scraper.OutputFile),
	)
}

// scrapeOne 抓取並抽取單一雞尾酒頁面
func scrapeOne(ctx context.Context, fetcher *scrape.Fetcher, extractor *extract.Service, ref common.CocktailRef) *common.ScrapedRecipe {
	html, err := fetcher.Fetch(ctx, ref.URL)
	if err != nil {
		common.LogWarn("抓取頁面失敗",
			zap.String("name", ref.Name),
			zap.String("url", ref.URL),
			zap.Error(err),
		)
		recipe := &common.ScrapedRecipe{
			Name:        ref.Name,
			URL:         ref.URL,
			Ingredients: []common.ScrapedIngredient{},
			Preparation: []string{},
		}
		recipe.AddNote(fmt.Sprintf("Failed to fetch page: %v", err))
		return recipe
	}
	return extractor.Extract(ctx, ref, html)
}

// newProvider 依設定選擇抽取服務提供者
func newProvider(ctx context.Context, cfg *config.Config) (provider.Provider, error) {
	if cfg.OpenRouter.Enabled {
		return openrouter.NewClient(cfg.OpenRouter.APIKey, cfg.OpenRouter.Model, cfg.OpenRouter.MaxTokens)
	}
	return gemini.NewClient(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
}

// loadCocktailList 讀取待抓取的雞尾酒清單
func loadCocktailList(path string) ([]common.CocktailRef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var refs []common.CocktailRef
	if err := common.ParseJSONBytes(data, &refs); err != nil {
		return nil, err
	}
	return refs, nil
}

// writeResults 將抽取結果序列化為交換用 JSON
func writeResults(path string, results []common.ScrapedRecipe) error {
	data, err := json.MarshalIndent(results, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
