package ai_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/chameleonlabs/chameleon/backend/internal/config"
	"github.com/chameleonlabs/chameleon/backend/internal/service/ai"
)

func clientFor(endpoint string) *ai.Client {
	return ai.NewClient(config.ModelConfig{
		Endpoint:    endpoint,
		MaxTokens:   256,
		Temperature: 0.7,
		TopP:        0.95,
		Sampling:    true,
		Instruction: mistralFormat(),
	})
}

func TestGenerateStripsEchoedInstruction(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		w.Write([]byte(`[{"generated_text": "<s>[INST] some instruction [/INST]  Hi there!  "}]`))
	}))
	defer srv.Close()

	reply := clientFor(srv.URL).Generate(context.Background(), "prompt", "abc")
	if reply != "Hi there!" {
		t.Fatalf("expected stripped reply, got %q", reply)
	}
}

func TestGenerateWithoutMarkerReturnsFullText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`[{"generated_text": "plain answer"}]`))
	}))
	defer srv.Close()

	reply := clientFor(srv.URL).Generate(context.Background(), "prompt", "abc")
	if reply != "plain answer" {
		t.Fatalf("expected full text, got %q", reply)
	}
}

func TestGenerateSurfacesProviderStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("internal"))
	}))
	defer srv.Close()

	reply := clientFor(srv.URL).Generate(context.Background(), "prompt", "abc")
	if reply != "Error 500: internal" {
		t.Fatalf("expected status-bearing reply, got %q", reply)
	}
}

func TestGenerateTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // refuse all connections

	reply := clientFor(srv.URL).Generate(context.Background(), "prompt", "abc")
	if reply != "Error in API request." {
		t.Fatalf("expected transport error reply, got %q", reply)
	}
}

func TestGenerateUnexpectedEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"error": "model loading"}`))
	}))
	defer srv.Close()

	reply := clientFor(srv.URL).Generate(context.Background(), "prompt", "abc")
	if reply != `{"error": "model loading"}` {
		t.Fatalf("expected raw envelope passthrough, got %q", reply)
	}
}
