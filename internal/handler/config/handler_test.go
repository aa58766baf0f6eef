package config

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/chameleonlabs/chameleon/backend/internal/model/chatbot"
)

func setupRouter() *chi.Mux {
	store := chatbot.NewMemoryStore([]chatbot.Config{
		{ID: "open-bot", AIName: "Open", IsPublic: true, CharacterPersonality: "sunny", CustomPrompt: "be helpful"},
		{ID: "closed-bot", AIName: "Closed", IsPublic: false, CharacterPersonality: "aloof", CustomPrompt: "be terse"},
	})

	r := chi.NewRouter()
	New(store).RegisterRoutes(r)
	return r
}

func TestListPublicConfigs(t *testing.T) {
	r := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/public", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var configs []chatbot.Config
	if err := json.Unmarshal(resp.Body.Bytes(), &configs); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(configs) != 1 || configs[0].ID != "open-bot" {
		t.Fatalf("expected only the public config, got %v", configs)
	}
}

func TestGetPublicConfig(t *testing.T) {
	r := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/public/open-bot", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}

func TestGetPrivateConfigLooksMissing(t *testing.T) {
	r := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/public/closed-bot", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}
