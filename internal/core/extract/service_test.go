package extract

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cocktail-importer/internal/core/ai/cache"
	"cocktail-importer/internal/infrastructure/config"
	"cocktail-importer/internal/pkg/common"
)

// fakeProvider 回定值的假 AI 提供者
type fakeProvider struct {
	response string
	err      error
	calls    int
}

func (f *fakeProvider) Generate(context.Context, string) (string, error) {
	f.calls++
	return f.response, f.err
}

func (f *fakeProvider) Model() string { return "fake-model" }
func (f *fakeProvider) Close() error  { return nil }

func disabledCache(t *testing.T) *cache.Service {
	t.Helper()
	svc, err := cache.NewService(&config.CacheConfig{Enabled: false})
	require.NoError(t, err)
	return svc
}

const samplePage = `<html><body><div class="mw-parser-output">
<p>The Gimlet is a cocktail of gin and lime cordial.</p>
</div></body></html>`

var ref = common.CocktailRef{Name: "Gimlet", URL: "https://example.org/wiki/Gimlet"}

func TestExtractParsesResponse(t *testing.T) {
	provider := &fakeProvider{response: "```json\n" + `{
		"description": "Sharp, bracing and citrus-led.",
		"ingredients": [
			{"amount": 2, "unit": "oz", "name": "gin"},
			{"amount": "to taste", "unit": "None", "name": "lime cordial"}
		],
		"preparation": ["Stir with ice.", "Strain into a chilled glass."]
	}` + "\n```"}

	svc := NewService(provider, disabledCache(t), 15000)
	got := svc.Extract(context.Background(), ref, samplePage)

	assert.Equal(t, "Gimlet", got.Name)
	assert.Equal(t, ref.URL, got.URL)
	assert.Equal(t, "Sharp, bracing and citrus-led.", got.Description)
	assert.Empty(t, got.Notes)
	require.Len(t, got.Ingredients, 2)
	assert.Len(t, got.Preparation, 2)

	// 容量正規化緊接在解析之後：2 oz → 59.147 ml
	require.NotNil(t, got.Ingredients[0].VolumeML)
	assert.InDelta(t, 59.147, *got.Ingredients[0].VolumeML, 1e-6)
	// 描述性數量無法換算
	assert.Nil(t, got.Ingredients[1].VolumeML)
}

func TestExtractProviderFailureYieldsEmptyRecipe(t *testing.T) {
	provider := &fakeProvider{err: errors.New("quota exceeded")}
	svc := NewService(provider, disabledCache(t), 15000)

	got := svc.Extract(context.Background(), ref, samplePage)
	assert.True(t, got.Empty())
	require.NotEmpty(t, got.Notes)
	assert.Contains(t, got.Notes[0], "AI service call failed")
}

func TestExtractUnparsableResponseYieldsEmptyRecipe(t *testing.T) {
	provider := &fakeProvider{response: "I am sorry, I cannot find a recipe here."}
	svc := NewService(provider, disabledCache(t), 15000)

	got := svc.Extract(context.Background(), ref, samplePage)
	assert.True(t, got.Empty())
	require.NotEmpty(t, got.Notes)
	assert.Contains(t, got.Notes[0], "empty or non-JSON")
}

func TestExtractMalformedJSONYieldsEmptyRecipe(t *testing.T) {
	provider := &fakeProvider{response: `{"description": broken}`}
	svc := NewService(provider, disabledCache(t), 15000)

	got := svc.Extract(context.Background(), ref, samplePage)
	assert.True(t, got.Empty())
	require.NotEmpty(t, got.Notes)
	assert.Contains(t, got.Notes[0], "JSON parse error")
}

func TestExtractEmptyPageSkipsProvider(t *testing.T) {
	provider := &fakeProvider{response: "{}"}
	svc := NewService(provider, disabledCache(t), 15000)

	got := svc.Extract(context.Background(), ref, "<html><body></body></html>")
	assert.True(t, got.Empty())
	assert.Equal(t, 0, provider.calls)
	require.NotEmpty(t, got.Notes)
	assert.Contains(t, got.Notes[0], "No relevant content")
}

func TestTrimExtrapolatedNote(t *testing.T) {
	long := "A rich, layered profile of oak, citrus oil and gentle bitterness that lingers well past the finish. " + extrapolatedNote
	short := "Crisp and dry. " + extrapolatedNote

	// 基底描述夠長時移除標記
	assert.NotContains(t, trimExtrapolatedNote(long), extrapolatedNote)
	// 太短則整段保留
	assert.Equal(t, short, trimExtrapolatedNote(short))
	// 沒有標記時原樣返回
	assert.Equal(t, "Plain text.", trimExtrapolatedNote("Plain text."))
}
