// Package scrape 負責抓取來源網頁並剁成適合送交抽取服務的純文字摘錄。
package scrape

import (
	"context"
	"fmt"
	"net/http"

	"cocktail-importer/internal/infrastructure/config"

	"github.com/go-resty/resty/v2"
)

// Fetcher 來源網頁抓取器
type Fetcher struct {
	client *resty.Client
}

// NewFetcher 創建抓取器，帶上表明身份的 User-Agent
func NewFetcher(cfg *config.ScraperConfig) *Fetcher {
	client := resty.New().
		SetTimeout(cfg.FetchTimeout).
		SetHeader("User-Agent", cfg.UserAgent).
		SetHeader("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")

	return &Fetcher{client: client}
}

// Fetch 取回一頁原始標記；網路錯誤只影響該筆，批次繼續
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	resp, err := f.client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("fetching %s returned status %d", url, resp.StatusCode())
	}
	return resp.String(), nil
}
