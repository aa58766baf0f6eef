package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/chameleonlabs/chameleon/backend/internal/config"
	"github.com/chameleonlabs/chameleon/backend/internal/handler"
	"github.com/chameleonlabs/chameleon/backend/internal/model/chatbot"
	"github.com/chameleonlabs/chameleon/backend/internal/service/ai"
	chatservice "github.com/chameleonlabs/chameleon/backend/internal/service/chat"
	"github.com/chameleonlabs/chameleon/backend/internal/service/conversation"
	speechservice "github.com/chameleonlabs/chameleon/backend/internal/service/speech"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	if err := os.MkdirAll(cfg.Speech.AudioDir, 0o755); err != nil {
		log.Fatalf("failed to create audio directory: %v", err)
	}

	synthesizer, err := buildSynthesizer(ctx, cfg.Speech)
	if err != nil {
		log.Fatalf("failed to initialize speech synthesizer: %v", err)
	}

	conversationStore := conversation.NewMemoryStore()
	promptBuilder := ai.NewPromptBuilder(cfg.Model.Instruction, conversationStore)
	modelClient := ai.NewClient(cfg.Model)
	if cfg.Model.APIToken == "" {
		log.Println("warning: MODEL_API_TOKEN not set, generation calls may be rejected by the provider")
	}

	chatSvc := chatservice.NewService(conversationStore, promptBuilder, modelClient, synthesizer)
	configStore := chatbot.NewMemoryStore(chatbot.Seed())

	router := handler.NewRouter(configStore, chatSvc, synthesizer, handler.StaticConfig{
		AudioDir:     cfg.Speech.AudioDir,
		PublicPrefix: cfg.Speech.PublicPrefix,
	})

	startServer(ctx, cfg.Server, router)

	// Request handling has stopped; clear out the generated audio files.
	removed := speechservice.NewSweeper(cfg.Speech.AudioDir).Sweep()
	log.Printf("audio sweep removed %d file(s)", removed)
}

// buildSynthesizer resolves the premium-engine capability once and wires the
// synthesizer accordingly; availability is never checked again afterwards.
func buildSynthesizer(ctx context.Context, speechCfg config.SpeechConfig) (*speechservice.Synthesizer, error) {
	catalog := speechservice.DefaultCatalog()
	if speechCfg.VoicesFile != "" {
		if err := catalog.LoadFile(speechCfg.VoicesFile); err != nil {
			return nil, err
		}
		log.Printf("voice catalog extended from %s", speechCfg.VoicesFile)
	}
	if err := catalog.Validate(); err != nil {
		return nil, err
	}

	var cloud speechservice.CloudEngine
	if speechCfg.PremiumEnabled {
		engine, err := speechservice.NewPollyEngine(ctx, speechCfg.Region)
		if err != nil {
			log.Printf("warning: premium speech engine unavailable: %v", err)
			log.Println("continuing with the default engine only")
		} else {
			cloud = engine
			log.Println("premium speech engine initialized successfully")
		}
	} else {
		log.Println("premium speech engine disabled by configuration")
	}

	return speechservice.NewSynthesizer(speechCfg, catalog, cloud, speechservice.GoogleTranslateEngine{}), nil
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("Chameleon backend listening on %s", addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
