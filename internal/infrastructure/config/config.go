package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config 應用配置
type Config struct {
	App        AppConfig        `mapstructure:"app"`
	Scraper    ScraperConfig    `mapstructure:"scraper"`
	Gemini     GeminiConfig     `mapstructure:"gemini"`
	OpenRouter OpenRouterConfig `mapstructure:"openrouter"`
	Cache      CacheConfig      `mapstructure:"cache"`
	CocktailPi CocktailPiConfig `mapstructure:"cocktailpi"`
	LogLevel   string           `mapstructure:"log_level"`
}

// AppConfig 應用程式設定
type AppConfig struct {
	Env     string `mapstructure:"env"`
	Debug   bool   `mapstructure:"debug"`
	Version string `mapstructure:"version"`
	Name    string `mapstructure:"name"`
}

// ScraperConfig 抓取管線設定
type ScraperConfig struct {
	ListFile      string        `mapstructure:"list_file"`      // 雞尾酒清單輸入檔
	OutputFile    string        `mapstructure:"output_file"`    // 交換用 JSON 輸出檔
	UserAgent     string        `mapstructure:"user_agent"`     // 對來源站台表明身份
	FetchTimeout  time.Duration `mapstructure:"fetch_timeout"`  // 單頁抓取逾時
	RequestDelay  time.Duration `mapstructure:"request_delay"`  // 連續外部呼叫間的禮貌延遲
	MaxTextLength int           `mapstructure:"max_text_length"` // 送交抽取服務的文字上限
	Limit         int           `mapstructure:"limit"`           // 本次處理的項目上限（0 表示全部）
}

// GeminiConfig Gemini 抽取服務配置
type GeminiConfig struct {
	APIKey  string        `mapstructure:"api_key"`
	Model   string        `mapstructure:"model"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// OpenRouterConfig OpenRouter 備援抽取服務配置
type OpenRouterConfig struct {
	Enabled   bool          `mapstructure:"enabled"`
	APIKey    string        `mapstructure:"api_key"`
	Model     string        `mapstructure:"model"`
	MaxTokens int           `mapstructure:"max_tokens"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

// CacheConfig 抽取結果快取配置（Redis）
type CacheConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	Addr    string        `mapstructure:"addr"`
	TTL     time.Duration `mapstructure:"ttl"`
}

// CocktailPiConfig 目標酒吧伺服器配置
type CocktailPiConfig struct {
	BaseURL      string        `mapstructure:"base_url"`
	Username     string        `mapstructure:"username"`
	Password     string        `mapstructure:"password"`
	OwnerID      int64         `mapstructure:"owner_id"`      // 匯入配方的擁有者
	DataFile     string        `mapstructure:"data_file"`     // 交換用 JSON 輸入檔
	RequestDelay time.Duration `mapstructure:"request_delay"` // 連續匯入間的禮貌延遲
}

// LoadConfig 載入設定
func LoadConfig() (*Config, error) {
	// 設定預設值
	setDefaults()

	// 設定環境變數前綴
	viper.SetEnvPrefix("APP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// 綁定環境變量
	viper.BindEnv("gemini.api_key", "GEMINI_API_KEY")
	viper.BindEnv("gemini.model", "GEMINI_MODEL")
	viper.BindEnv("openrouter.enabled", "OPENROUTER_ENABLED")
	viper.BindEnv("openrouter.api_key", "OPENROUTER_API_KEY")
	viper.BindEnv("openrouter.model", "OPENROUTER_MODEL")
	viper.BindEnv("cache.enabled", "CACHE_ENABLED")
	viper.BindEnv("cache.addr", "REDIS_ADDR")
	viper.BindEnv("cocktailpi.base_url", "COCKTAILPI_BASE_URL")
	viper.BindEnv("cocktailpi.username", "COCKTAILPI_USERNAME")
	viper.BindEnv("cocktailpi.password", "COCKTAILPI_PASSWORD")
	viper.BindEnv("log_level", "LOG_LEVEL")

	// 設定設定檔名稱和路徑
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	// 讀取設定檔
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// 解析設定
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 驗證必要設定
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// setDefaults 設定預設值
func setDefaults() {
	// 應用程式設定
	viper.SetDefault("app.env", "development")
	viper.SetDefault("app.debug", false)
	viper.SetDefault("app.version", "1.0.0")
	viper.SetDefault("app.name", "cocktail-importer")

	// 抓取管線設定
	viper.SetDefault("scraper.list_file", "cocktail_list.json")
	viper.SetDefault("scraper.output_file", "cocktails_with_details.json")
	viper.SetDefault("scraper.user_agent", "CocktailPiScraper/1.0 (contact: bar@example.com)")
	viper.SetDefault("scraper.fetch_timeout", "15s")
	viper.SetDefault("scraper.request_delay", "1500ms")
	viper.SetDefault("scraper.max_text_length", 15000)
	viper.SetDefault("scraper.limit", 0)

	// Gemini 設定
	viper.SetDefault("gemini.model", "gemini-1.5-pro-latest")
	viper.SetDefault("gemini.timeout", "60s")

	// OpenRouter 設定
	viper.SetDefault("openrouter.enabled", false)
	viper.SetDefault("openrouter.model", "qwen/qwen2.5-vl-72b-instruct:free")
	viper.SetDefault("openrouter.max_tokens", 2048)
	viper.SetDefault("openrouter.timeout", "60s")

	// 快取設定
	viper.SetDefault("cache.enabled", false)
	viper.SetDefault("cache.addr", "localhost:6379")
	viper.SetDefault("cache.ttl", "168h")

	// CocktailPi 設定
	viper.SetDefault("cocktailpi.base_url", "http://localhost")
	viper.SetDefault("cocktailpi.username", "Admin")
	viper.SetDefault("cocktailpi.owner_id", 1)
	viper.SetDefault("cocktailpi.data_file", "cocktails_with_details.json")
	viper.SetDefault("cocktailpi.request_delay", "500ms")

	// 日誌設定
	viper.SetDefault("log_level", "info")
}

// validateConfig 驗證設定
func validateConfig(config *Config) error {
	if config.Scraper.MaxTextLength <= 0 {
		return fmt.Errorf("invalid scraper max text length")
	}
	if config.Scraper.RequestDelay < 0 || config.CocktailPi.RequestDelay < 0 {
		return fmt.Errorf("invalid request delay")
	}
	if config.Cache.Enabled && config.Cache.TTL <= 0 {
		return fmt.Errorf("invalid cache ttl")
	}
	if config.CocktailPi.OwnerID <= 0 {
		return fmt.Errorf("invalid cocktailpi owner id")
	}
	return nil
}
