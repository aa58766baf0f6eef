package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/chameleonlabs/chameleon/backend/internal/config"
	speechmodel "github.com/chameleonlabs/chameleon/backend/internal/model/speech"
	speechservice "github.com/chameleonlabs/chameleon/backend/internal/service/speech"
)

// voicetester renders a single piece of text with a catalog voice so voice
// profiles and engine credentials can be checked without running the server.
func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env, using system environment: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	text := flag.String("text", "", "text to synthesize")
	voice := flag.String("voice", speechmodel.DefaultVoice, "voice name from the catalog")
	conversation := flag.String("conversation", "", "conversation id embedded in the filename (defaults to a timestamp)")
	listVoices := flag.Bool("voices", false, "list catalog voices and exit")
	flag.Parse()

	catalog := speechservice.DefaultCatalog()
	if cfg.Speech.VoicesFile != "" {
		if err := catalog.LoadFile(cfg.Speech.VoicesFile); err != nil {
			log.Fatalf("failed to load voices file: %v", err)
		}
	}
	if err := catalog.Validate(); err != nil {
		log.Fatalf("invalid voice catalog: %v", err)
	}

	if *listVoices {
		for _, name := range catalog.Names() {
			fmt.Println(name)
		}
		return
	}

	if *text == "" {
		flag.Usage()
		log.Fatal("provide the text to synthesize via -text")
	}

	conversationID := *conversation
	if conversationID == "" {
		conversationID = fmt.Sprintf("manual-%d", time.Now().UnixNano())
	}

	if err := os.MkdirAll(cfg.Speech.AudioDir, 0o755); err != nil {
		log.Fatalf("failed to create audio directory: %v", err)
	}

	ctx := context.Background()

	var cloud speechservice.CloudEngine
	if cfg.Speech.PremiumEnabled {
		engine, err := speechservice.NewPollyEngine(ctx, cfg.Speech.Region)
		if err != nil {
			log.Printf("premium engine unavailable, using the default engine: %v", err)
		} else {
			cloud = engine
		}
	}

	synthesizer := speechservice.NewSynthesizer(cfg.Speech, catalog, cloud, speechservice.GoogleTranslateEngine{})
	result := synthesizer.Synthesize(ctx, speechmodel.TTSRequest{
		ConversationID: conversationID,
		Text:           *text,
		Voice:          *voice,
	})

	log.Printf("synthesized with engine=%s path=%s", result.Engine, result.AudioPath)
}
