package common

import (
	"errors"
	"net/http"
)

// CustomError 定義自定義錯誤類型
type CustomError struct {
	Code    string // 錯誤代碼
	Message string // 錯誤信息
	Err     error  // 原始錯誤
	Status  int    // HTTP 狀態碼（來自遠端 API 時）
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// Unwrap 支援 errors.Is / errors.As 鏈
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewError 創建新的自定義錯誤
func NewError(code string, message string, status int, err error) *CustomError {
	return &CustomError{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

// ValidationError 表示驗證錯誤（配置層級，會中止整個執行）
type ValidationError struct {
	message string
}

// Error 實現 error 介面
func (e *ValidationError) Error() string {
	return e.message
}

// NewValidationError 創建新的驗證錯誤
func NewValidationError(message string) error {
	return &ValidationError{
		message: message,
	}
}

// IsValidationError 檢查是否為驗證錯誤
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// 預定義錯誤代碼
const (
	ErrCodeNetwork       = "NETWORK_ERROR"        // 連線失敗或逾時
	ErrCodeUnauthorized  = "UNAUTHORIZED"         // 401
	ErrCodeNotFound      = "NOT_FOUND"            // 404
	ErrCodeConflict      = "CONFLICT"             // 409（原料名稱已存在）
	ErrCodeParse         = "PARSE_ERROR"          // 回應內容無法解析
	ErrCodeAIService     = "AI_SERVICE_ERROR"     // 抽取服務錯誤
	ErrCodeCacheDisabled = "CACHE_DISABLED"       // 快取關閉或未命中
	ErrCodeImportFailed  = "IMPORT_FAILED"        // 配方提交被伺服器拒絕
	ErrCodeInternalError = "INTERNAL_ERROR"       // 500
	ErrCodeUnavailable   = "SERVICE_UNAVAILABLE"  // 503
)

// 預定義錯誤
var (
	ErrUnauthorized  = NewError(ErrCodeUnauthorized, "未授權的訪問", http.StatusUnauthorized, nil)
	ErrNotFound      = NewError(ErrCodeNotFound, "資源不存在", http.StatusNotFound, nil)
	ErrConflict      = NewError(ErrCodeConflict, "資源衝突", http.StatusConflict, nil)
	ErrParse         = NewError(ErrCodeParse, "內容無法解析", 0, nil)
	ErrAIService     = NewError(ErrCodeAIService, "AI 服務錯誤", http.StatusServiceUnavailable, nil)
	ErrCacheDisabled = NewError(ErrCodeCacheDisabled, "緩存已禁用", http.StatusServiceUnavailable, nil)
	ErrImportFailed  = NewError(ErrCodeImportFailed, "配方提交失敗", 0, nil)
)
