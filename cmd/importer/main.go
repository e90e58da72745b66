package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"cocktail-importer/internal/core/cocktailpi"
	"cocktail-importer/internal/core/importer"
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
	if err := common.InitLogger(cfg.LogLevel, "importer"); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer common.Sync()

	common.LogInfo("啟動匯入管線",
		zap.String("version", cfg.App.Version),
		zap.String("base_url", cfg.CocktailPi.BaseURL),
		zap.String("data_file", cfg.CocktailPi.DataFile),
	)

	ctx := context.Background()

	// 讀取抽取結果
	recipes, err := loadRecipes(cfg.CocktailPi.DataFile)
	if err != nil {
		common.LogFatal("讀取抽取結果失敗",
			zap.String("file", cfg.CocktailPi.DataFile),
			zap.Error(err),
		)
	}
	if len(recipes) == 0 {
		common.LogWarn("抽取結果為空，沒有可匯入的配方")
		return
	}

	// 登入目標伺服器
	client := cocktailpi.NewClient(&cfg.CocktailPi)
	if err := client.Login(ctx); err != nil {
		common.LogFatal("登入失敗",
			zap.String("base_url", cfg.CocktailPi.BaseURL),
			zap.String("username", cfg.CocktailPi.Username),
			zap.Error(err),
		)
	}

	// 執行匯入
	svc := importer.NewService(client, &cfg.CocktailPi)
	summary, err := svc.Run(ctx, recipes)
	if err != nil {
		common.LogFatal("匯入中止", zap.Error(err))
	}

	common.LogInfo("匯入管線完成",
		zap.Int("total", summary.Total),
		zap.Int("imported", summary.Imported),
		zap.Int("skipped", summary.Skipped),
		zap.Int("duplicates", summary.Duplicates),
	)
}

// loadRecipes 讀取抓取管線輸出的交換用 JSON
func loadRecipes(path string) ([]common.ScrapedRecipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var recipes []common.ScrapedRecipe
	if err := common.ParseJSONBytes(data, &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}
