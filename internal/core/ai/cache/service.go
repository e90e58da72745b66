// Package cache 提供抽取結果的 Redis 緩存，避免重複呼叫 AI 服務。
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"cocktail-importer/internal/infrastructure/config"
	"cocktail-importer/internal/pkg/common"
)

// Service 緩存服務
type Service struct {
	client *redis.Client
	config *config.CacheConfig
}

// NewService 創建緩存服務
// 緩存未啟用時回傳可用的空服務，Get/Set 皆為 no-op
func NewService(cfg *config.CacheConfig) (*Service, error) {
	if !cfg.Enabled {
		return &Service{config: cfg}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
	})

	// 測試連接
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, common.NewError(common.ErrCodeCacheDisabled, "Redis 連線失敗", 0, err)
	}

	common.LogInfo("緩存服務初始化完成", zap.String("addr", cfg.Addr), zap.Duration("ttl", cfg.TTL))
	return &Service{
		client: client,
		config: cfg,
	}, nil
}

// Get 獲取緩存的原始 AI 回應文字
func (s *Service) Get(ctx context.Context, url, prompt string) (string, error) {
	if !s.config.Enabled || s.client == nil {
		return "", common.ErrCacheDisabled
	}

	key := generateKey(url, prompt)
	data, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return "", common.ErrNotFound
		}
		return "", common.NewError(common.ErrCodeCacheDisabled, "讀取緩存失敗", 0, err)
	}

	common.LogDebug("緩存命中", zap.String("url", url))
	return data, nil
}

// Set 設置緩存
func (s *Service) Set(ctx context.Context, url, prompt, response string) error {
	if !s.config.Enabled || s.client == nil {
		return nil
	}

	key := generateKey(url, prompt)
	if err := s.client.Set(ctx, key, response, s.config.TTL).Err(); err != nil {
		return common.NewError(common.ErrCodeCacheDisabled, "寫入緩存失敗", 0, err)
	}
	return nil
}

// Close 關閉 Redis 連線
func (s *Service) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Close()
}

// generateKey 生成緩存鍵
// 提示內容很長，以 SHA-256 摘要縮短鍵值
func generateKey(url, prompt string) string {
	sum := sha256.Sum256([]byte(url + "\x00" + prompt))
	return "extract:response:" + hex.EncodeToString(sum[:])
}
