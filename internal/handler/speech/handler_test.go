package speech

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/chameleonlabs/chameleon/backend/internal/config"
	speechmodel "github.com/chameleonlabs/chameleon/backend/internal/model/speech"
	speechsvc "github.com/chameleonlabs/chameleon/backend/internal/service/speech"
)

type fileWritingEngine struct{}

func (fileWritingEngine) SynthesizeFile(text, _, dir, baseName string) error {
	return os.WriteFile(filepath.Join(dir, baseName+".mp3"), []byte(text), 0o644)
}

func setupRouter(t *testing.T) *chi.Mux {
	t.Helper()
	cfg := config.SpeechConfig{AudioDir: t.TempDir(), PublicPrefix: "/static/audio"}
	synthesizer := speechsvc.NewSynthesizer(cfg, speechsvc.DefaultCatalog(), nil, fileWritingEngine{})

	r := chi.NewRouter()
	New(synthesizer).RegisterRoutes(r)
	return r
}

func TestSynthesizeEndpoint(t *testing.T) {
	r := setupRouter(t)

	payload, _ := json.Marshal(map[string]string{
		"conversationId": "abc",
		"text":           "hello world",
		"voice":          "default",
	})
	req := httptest.NewRequest(http.MethodPost, "/speech/synthesize", bytes.NewReader(payload))
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var result speechmodel.TTSResult
	if err := json.Unmarshal(resp.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !strings.HasPrefix(result.AudioPath, "/static/audio/response_abc_") {
		t.Fatalf("unexpected audio path %q", result.AudioPath)
	}
}

func TestSynthesizeRequiresText(t *testing.T) {
	r := setupRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/speech/synthesize", strings.NewReader(`{"voice":"default"}`))
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestSynthesizeGeneratesConversationID(t *testing.T) {
	r := setupRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/speech/synthesize", strings.NewReader(`{"text":"hi"}`))
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var result speechmodel.TTSResult
	if err := json.Unmarshal(resp.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if result.ConversationID == "" {
		t.Fatal("expected generated conversation id")
	}
}

func TestListVoices(t *testing.T) {
	r := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/voices", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var payload map[string][]string
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	voices := payload["voices"]
	if len(voices) == 0 {
		t.Fatal("expected non-empty voice list")
	}

	hasDefault := false
	for _, name := range voices {
		if name == speechmodel.DefaultVoice {
			hasDefault = true
		}
	}
	if !hasDefault {
		t.Fatalf("voice list missing default entry: %v", voices)
	}
}
