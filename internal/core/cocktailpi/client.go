// Package cocktailpi 包裝目標酒吧伺服器的 REST API。
// 所有呼叫都是同步阻塞、不重試；單筆失敗由呼叫端決定是否繼續批次。
package cocktailpi

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"cocktail-importer/internal/infrastructure/config"
	"cocktail-importer/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Client CocktailPi API 客戶端
type Client struct {
	client *resty.Client
	config *config.CocktailPiConfig
}

// NewClient 創建 CocktailPi 客戶端
func NewClient(cfg *config.CocktailPiConfig) *Client {
	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetHeader("Accept", "application/json")

	return &Client{
		client: client,
		config: cfg,
	}
}

// Login 以帳號密碼換取 bearer token，之後的請求自動帶上
func (c *Client) Login(ctx context.Context) error {
	payload := map[string]any{
		"username": c.config.Username,
		"password": c.config.Password,
		"remember": false,
	}

	var result loginResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(payload).
		SetResult(&result).
		Post("/api/auth/login")
	if err != nil {
		return fmt.Errorf("failed to reach cocktailpi at %s: %w", c.config.BaseURL, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return common.NewError(common.ErrCodeUnauthorized,
			fmt.Sprintf("login failed with status %d: %s", resp.StatusCode(), resp.String()),
			resp.StatusCode(), nil)
	}
	if result.AccessToken == "" {
		return common.NewError(common.ErrCodeUnauthorized, "no accessToken in login response", resp.StatusCode(), nil)
	}

	tokenType := result.TokenType
	if tokenType == "" {
		tokenType = "Bearer"
	}
	c.client.SetHeader("Authorization", fmt.Sprintf("%s %s", tokenType, result.AccessToken))

	common.LogInfo("已登入 CocktailPi",
		zap.String("token", common.MaskAPIKey(result.AccessToken)),
	)
	return nil
}

// get 已認證的 GET 請求，結果解到 out
func (c *Client) get(ctx context.Context, endpoint string, params map[string]string, out any) error {
	req := c.client.R().SetContext(ctx).SetResult(out)
	if params != nil {
		req.SetQueryParams(params)
	}

	resp, err := req.Get(endpoint)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", endpoint, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return common.NewError(common.ErrCodeInternalError,
			fmt.Sprintf("fetching %s returned status %d: %s", endpoint, resp.StatusCode(), resp.String()),
			resp.StatusCode(), nil)
	}
	return nil
}

// ListIngredients 列出所有原料與群組（含不在吧台上的，供名稱比對用）
func (c *Client) ListIngredients(ctx context.Context) ([]Ingredient, error) {
	params := map[string]string{
		"filterManualIngredients":    "true",
		"filterAutomaticIngredients": "true",
		"filterGroups":               "true",
		"inBar":                      "false",
	}
	var result []Ingredient
	if err := c.get(ctx, "/api/ingredient/", params, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// ListGlasses 列出所有杯具
func (c *Client) ListGlasses(ctx context.Context) ([]Glass, error) {
	var result []Glass
	if err := c.get(ctx, "/api/glass/", nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// ListCategories 列出所有分類
func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	var result []Category
	if err := c.get(ctx, "/api/category/", nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// ListRecipes 列出現有配方摘要（伺服器用分頁包裝回傳）
func (c *Client) ListRecipes(ctx context.Context) ([]RecipeSummary, error) {
	var page recipePage
	if err := c.get(ctx, "/api/recipe/", nil, &page); err != nil {
		return nil, err
	}
	return page.Content, nil
}

// CreateManualIngredient 建立手動型原料（不在吧台、酒精含量 0）
// 名稱已存在時伺服器回 409，轉成 common.ErrConflict 讓呼叫端當非致命略過
func (c *Client) CreateManualIngredient(ctx context.Context, name string, parentGroupID int64) (int64, string, error) {
	payload := createIngredientRequest{
		Name:           strings.TrimSpace(name),
		Type:           "manual",
		AlcoholContent: 0,
		InBar:          false,
		ParentGroupID:  parentGroupID,
	}

	var created Ingredient
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(payload).
		SetResult(&created).
		Post("/api/ingredient/")
	if err != nil {
		return 0, "", fmt.Errorf("failed to create ingredient %q: %w", name, err)
	}

	switch resp.StatusCode() {
	case http.StatusOK, http.StatusCreated:
		common.LogInfo("已建立原料",
			zap.String("原料", created.Name),
			zap.Int64("id", created.ID),
		)
		return created.ID, created.Name, nil
	case http.StatusConflict:
		return 0, "", fmt.Errorf("ingredient %q already exists: %w", name, common.ErrConflict)
	default:
		return 0, "", common.NewError(common.ErrCodeInternalError,
			fmt.Sprintf("creating ingredient %q returned status %d: %s", name, resp.StatusCode(), resp.String()),
			resp.StatusCode(), nil)
	}
}

// CreateRecipe 以 multipart 形式提交配方（欄位名 recipe、檔名 blob）
func (c *Client) CreateRecipe(ctx context.Context, payload *RecipePayload) error {
	body, err := common.ToJSON(payload)
	if err != nil {
		return fmt.Errorf("failed to encode recipe payload: %w", err)
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetMultipartField("recipe", "blob", "application/json", strings.NewReader(body)).
		Post("/api/recipe/")
	if err != nil {
		return fmt.Errorf("failed to submit recipe %q: %w", payload.Name, err)
	}

	if resp.StatusCode() != http.StatusOK && resp.StatusCode() != http.StatusCreated {
		return common.NewError(common.ErrCodeImportFailed,
			fmt.Sprintf("recipe %q rejected with status %d: %s", payload.Name, resp.StatusCode(), resp.String()),
			resp.StatusCode(), nil)
	}
	return nil
}
