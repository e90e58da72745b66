// Package provider 定義抽取服務（LLM）的提供者抽象。
package provider

import "context"

// Provider 定義 AI 提供者介面
// 抽取服務是外部黑盒：輸入提示、輸出文字，內容是否可解析由呼叫端處理
type Provider interface {
	// Generate 送出提示並取回原始回應文字
	Generate(ctx context.Context, prompt string) (string, error)

	// Model 獲取當前使用的模型名稱
	Model() string

	// Close 關閉提供者連接
	Close() error
}
