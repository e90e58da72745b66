// Package gemini 實作 Google Gemini 提供者。
package gemini

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"cocktail-importer/internal/pkg/common"
)

// Client Gemini 客戶端
type Client struct {
	client *genai.Client
	model  *genai.GenerativeModel
	name   string
}

// NewClient 建立 Gemini 客戶端
func NewClient(ctx context.Context, apiKey, modelName string) (*Client, error) {
	if apiKey == "" {
		return nil, common.NewError(common.ErrCodeAIService, "Gemini API key 未設定", 0, nil)
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, common.NewError(common.ErrCodeAIService, "建立 Gemini 客戶端失敗", 0, err)
	}

	model := client.GenerativeModel(modelName)
	// 抽取結果要求 JSON，降低溫度避免模型自由發揮
	model.SetTemperature(0.2)
	model.ResponseMIMEType = "application/json"

	common.LogInfo("Gemini 客戶端初始化完成",
		zap.String("model", modelName),
		zap.String("api_key", common.MaskAPIKey(apiKey)),
	)

	return &Client{
		client: client,
		model:  model,
		name:   modelName,
	}, nil
}

// Generate 送出提示並取回原始回應文字
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	start := time.Now()

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	common.LogAICall(c.name, time.Since(start), err)
	if err != nil {
		return "", common.NewError(common.ErrCodeAIService, "Gemini 生成失敗", 0, err)
	}

	text, err := extractText(resp)
	if err != nil {
		return "", err
	}
	return text, nil
}

// Model 獲取當前使用的模型名稱
func (c *Client) Model() string {
	return c.name
}

// Close 關閉提供者連接
func (c *Client) Close() error {
	return c.client.Close()
}

// extractText 從回應中取出文字部分
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", common.NewError(common.ErrCodeAIService, "Gemini 回應為空", 0, nil)
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", common.NewError(common.ErrCodeAIService,
			fmt.Sprintf("Gemini 回應不含文字內容 (parts=%d)", len(resp.Candidates[0].Content.Parts)), 0, nil)
	}
	return sb.String(), nil
}
