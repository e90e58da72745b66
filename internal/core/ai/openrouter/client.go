// Package openrouter 實作 OpenRouter 相容提供者（OpenAI chat/completions 格式）。
package openrouter

import (
	"context"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"cocktail-importer/internal/pkg/common"
)

const baseURL = "https://openrouter.ai/api/v1"

// Message 消息結構
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request 表示 API 請求
type Request struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
	Temperature float64   `json:"temperature,omitempty"`
}

// Response OpenRouter 響應結構
type Response struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

// Client OpenRouter API 客戶端
type Client struct {
	client    *resty.Client
	model     string
	maxTokens int
}

// NewClient 建立 OpenRouter 客戶端
func NewClient(apiKey, model string, maxTokens int) (*Client, error) {
	if apiKey == "" {
		return nil, common.NewError(common.ErrCodeAIService, "OpenRouter API key 未設定", 0, nil)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(60 * time.Second).
		SetAuthToken(apiKey).
		SetHeader("HTTP-Referer", "https://cocktail-importer.local").
		SetHeader("X-Title", "Cocktail Importer")

	common.LogInfo("OpenRouter 客戶端初始化完成",
		zap.String("model", model),
		zap.String("api_key", common.MaskAPIKey(apiKey)),
	)

	return &Client{
		client:    client,
		model:     model,
		maxTokens: maxTokens,
	}, nil
}

// Generate 送出提示並取回原始回應文字
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	req := &Request{
		Model: c.model,
		Messages: []Message{
			{Role: "user", Content: prompt},
		},
		MaxTokens:   c.maxTokens,
		Temperature: 0.2,
	}

	var result Response
	start := time.Now()
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&result).
		Post("/chat/completions")
	common.LogAICall(c.model, time.Since(start), err)

	if err != nil {
		return "", common.NewError(common.ErrCodeAIService, "OpenRouter 請求失敗", 0, err)
	}
	if resp.StatusCode() != http.StatusOK {
		common.LogError("OpenRouter 回應錯誤狀態",
			zap.Int("status_code", resp.StatusCode()),
			zap.String("model", c.model),
			zap.String("response", resp.String()),
		)
		return "", common.NewError(common.ErrCodeAIService, "OpenRouter 回應錯誤狀態: "+resp.Status(), resp.StatusCode(), nil)
	}
	if len(result.Choices) == 0 || result.Choices[0].Message.Content == "" {
		return "", common.NewError(common.ErrCodeAIService, "OpenRouter 回應為空", 0, nil)
	}

	common.LogDebug("OpenRouter 回應成功",
		zap.String("model", c.model),
		zap.Int("content_length", len(result.Choices[0].Message.Content)),
		zap.Int("total_tokens", result.Usage.TotalTokens),
	)
	return result.Choices[0].Message.Content, nil
}

// Model 獲取當前使用的模型名稱
func (c *Client) Model() string {
	return c.model
}

// Close 關閉提供者連接
func (c *Client) Close() error {
	return nil
}
