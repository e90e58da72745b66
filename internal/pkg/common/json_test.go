package common

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"bare object", `{"a":1}`, `{"a":1}`},
		{"fenced", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"fence without language", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"leading prose", "Here is the result:\n{\"a\":1}", `{"a":1}`},
		{"trailing prose", "{\"a\":1}\nHope this helps!", `{"a":1}`},
		{"nested braces", `{"a":{"b":2}}`, `{"a":{"b":2}}`},
		{"no object", "sorry, I cannot help", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractJSONObject(tt.raw))
		})
	}
}

func TestParseJSONUsesNumbers(t *testing.T) {
	// amount 欄位既可能是數字也可能是字串，必須保留原始形態
	var out struct {
		Amount any `json:"amount"`
	}
	require.NoError(t, ParseJSON(`{"amount": 1.5}`, &out))
	num, ok := out.Amount.(json.Number)
	require.True(t, ok)
	assert.Equal(t, "1.5", num.String())

	require.NoError(t, ParseJSON(`{"amount": "to taste"}`, &out))
	assert.Equal(t, "to taste", out.Amount)
}

func TestParseJSONRejectsTrailingData(t *testing.T) {
	var out map[string]any
	assert.Error(t, ParseJSON(`{"a":1}{"b":2}`, &out))
}

func TestQuoteJSONKeys(t *testing.T) {
	assert.Equal(t, `{"a": 1, "b": "x"}`, QuoteJSONKeys(`{a: 1, b: "x"}`))
	// 已加引號的鍵保持原樣
	assert.Equal(t, `{"a": 1}`, QuoteJSONKeys(`{"a": 1}`))
}

func TestAmountToFloat(t *testing.T) {
	tests := []struct {
		name   string
		amount any
		want   float64
		ok     bool
	}{
		{"float", 1.5, 1.5, true},
		{"int", 2, 2.0, true},
		{"json number", json.Number("0.75"), 0.75, true},
		{"numeric string", "1.5", 1.5, true},
		{"padded string", " 2 ", 2.0, true},
		{"range string", "0.5-1", 0, false},
		{"descriptive", "to taste", 0, false},
		{"nil", nil, 0, false},
		{"bool", true, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := AmountToFloat(tt.amount)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "lemon juice", NormalizeName("  Lemon Juice "))
	assert.Equal(t, "", NormalizeName("   "))
}

func TestMaskAPIKey(t *testing.T) {
	assert.Equal(t, "****", MaskAPIKey("short"))
	assert.Equal(t, "sk-a...wxyz", MaskAPIKey("sk-abcdefghijklmnopqrstuvwxyz"))
}
