package cocktailpi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cocktail-importer/internal/infrastructure/config"
	"cocktail-importer/internal/pkg/common"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(&config.CocktailPiConfig{
		BaseURL:  server.URL,
		Username: "Admin",
		Password: "secret",
	})
	return client, server
}

func TestLoginSetsAuthorizationHeader(t *testing.T) {
	var gotAuth string
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Admin", body["username"])
		assert.Equal(t, "secret", body["password"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"accessToken": "token-123-abcdef",
			"tokenType":   "Bearer",
		})
	})
	mux.HandleFunc("/api/glass/", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	})

	client, _ := newTestClient(t, mux)
	ctx := context.Background()

	require.NoError(t, client.Login(ctx))
	_, err := client.ListGlasses(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Bearer token-123-abcdef", gotAuth)
}

func TestLoginRejected(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad credentials", http.StatusUnauthorized)
	})

	client, _ := newTestClient(t, mux)
	err := client.Login(context.Background())
	require.Error(t, err)

	var ce *common.CustomError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, common.ErrCodeUnauthorized, ce.Code)
}

func TestListIngredientsFilters(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/ingredient/", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "true", q.Get("filterManualIngredients"))
		assert.Equal(t, "true", q.Get("filterAutomaticIngredients"))
		assert.Equal(t, "true", q.Get("filterGroups"))
		assert.Equal(t, "false", q.Get("inBar"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"name":"Gin","type":"automated"},{"id":2,"name":"Spirits","type":"group"}]`))
	})

	client, _ := newTestClient(t, mux)
	got, err := client.ListIngredients(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Gin", got[0].Name)
	assert.Equal(t, "group", got[1].Type)
}

func TestListRecipesUnwrapsPage(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/recipe/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"content":[{"id":1,"name":"Margarita"},{"id":2,"name":"Daiquiri"}],"totalPages":1}`))
	})

	client, _ := newTestClient(t, mux)
	got, err := client.ListRecipes(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Margarita", got[0].Name)
}

func TestCreateManualIngredient(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/ingredient/", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Yuzu Sherbet", body["name"])
		assert.Equal(t, "manual", body["type"])
		assert.Equal(t, float64(0), body["alcoholContent"])
		assert.Equal(t, false, body["inBar"])
		assert.Equal(t, float64(4), body["parentGroupId"])
		// 手動原料不帶 onPump
		_, hasOnPump := body["onPump"]
		assert.False(t, hasOnPump)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{"id": 99, "name": "Yuzu Sherbet"})
	})

	client, _ := newTestClient(t, mux)
	id, name, err := client.CreateManualIngredient(context.Background(), " Yuzu Sherbet ", 4)
	require.NoError(t, err)
	assert.Equal(t, int64(99), id)
	assert.Equal(t, "Yuzu Sherbet", name)
}

func TestCreateManualIngredientConflict(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/ingredient/", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "name already taken", http.StatusConflict)
	})

	client, _ := newTestClient(t, mux)
	_, _, err := client.CreateManualIngredient(context.Background(), "Gin", 4)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrConflict))
}

func TestCreateRecipeMultipart(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/recipe/", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		file, header, err := r.FormFile("recipe")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "blob", header.Filename)
		assert.Equal(t, "application/json", header.Header.Get("Content-Type"))

		var payload RecipePayload
		require.NoError(t, json.NewDecoder(file).Decode(&payload))
		assert.Equal(t, "Test Sour", payload.Name)
		require.Len(t, payload.ProductionSteps, 2)
		assert.Equal(t, StepTypeAddIngredients, payload.ProductionSteps[0].Type)

		w.WriteHeader(http.StatusCreated)
	})

	client, _ := newTestClient(t, mux)
	payload := &RecipePayload{
		Name:    "Test Sour",
		OwnerID: 1,
		ProductionSteps: []ProductionStep{
			AddIngredients([]StepIngredient{{Amount: 59, Scale: true, Boostable: true, IngredientID: 1}}),
			WrittenInstruction("Shake and strain."),
		},
		DefaultGlassID: 10,
		CategoryIDs:    []int64{20},
	}
	require.NoError(t, client.CreateRecipe(context.Background(), payload))
}

func TestCreateRecipeRejected(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/recipe/", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "validation failed", http.StatusBadRequest)
	})

	client, _ := newTestClient(t, mux)
	err := client.CreateRecipe(context.Background(), &RecipePayload{Name: "Broken"})
	require.Error(t, err)

	var ce *common.CustomError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, common.ErrCodeImportFailed, ce.Code)
	assert.Equal(t, http.StatusBadRequest, ce.Status)
}
