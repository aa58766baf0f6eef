package speech

import (
	"context"
	"fmt"
	"log"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/chameleonlabs/chameleon/backend/internal/config"
	speechmodel "github.com/chameleonlabs/chameleon/backend/internal/model/speech"
)

// Synthesizer turns reply text into an audio file under the served audio
// directory. It tries the premium cloud engine when the resolved voice asks
// for it and the engine is present, and otherwise falls back to the default
// engine. It never returns an error to a chat turn: the worst case is a
// best-effort path whose underlying write failed, which downstream playback
// treats the same as a missing file.
type Synthesizer struct {
	catalog      *Catalog
	cloud        CloudEngine // nil when the premium engine is unavailable
	local        LocalEngine
	audioDir     string
	publicPrefix string
}

// NewSynthesizer wires the synthesizer. Pass a nil cloud engine when the
// premium capability was not resolved at startup.
func NewSynthesizer(cfg config.SpeechConfig, catalog *Catalog, cloud CloudEngine, local LocalEngine) *Synthesizer {
	return &Synthesizer{
		catalog:      catalog,
		cloud:        cloud,
		local:        local,
		audioDir:     cfg.AudioDir,
		publicPrefix: cfg.PublicPrefix,
	}
}

// Catalog exposes the voice table for handlers that list voices.
func (s *Synthesizer) Catalog() *Catalog {
	return s.catalog
}

// Synthesize renders the request text and returns the public path of the
// generated file. The filename embeds the conversation id and a nanosecond
// timestamp so overlapping turns in one conversation never collide.
func (s *Synthesizer) Synthesize(ctx context.Context, req speechmodel.TTSRequest) speechmodel.TTSResult {
	profile := s.catalog.Resolve(req.Voice)

	if profile.Engine == speechmodel.EnginePolly && s.cloud != nil {
		if result, ok := s.synthesizeCloud(ctx, req, profile); ok {
			return result
		}
		log.Printf("[speech] premium synthesis failed for conversation=%s, falling back to default engine", req.ConversationID)
	}

	return s.synthesizeLocal(req, profile)
}

func (s *Synthesizer) synthesizeCloud(ctx context.Context, req speechmodel.TTSRequest, profile speechmodel.VoiceProfile) (speechmodel.TTSResult, bool) {
	audio, err := s.cloud.Synthesize(ctx, req.Text, profile.VoiceID)
	if err != nil {
		log.Printf("[speech] cloud engine error: %v", err)
		return speechmodel.TTSResult{}, false
	}

	baseName := s.baseName(req.ConversationID)
	if err := os.WriteFile(filepath.Join(s.audioDir, baseName+".mp3"), audio, 0o644); err != nil {
		log.Printf("[speech] failed to persist cloud audio: %v", err)
		return speechmodel.TTSResult{}, false
	}

	return speechmodel.TTSResult{
		ConversationID: req.ConversationID,
		AudioPath:      s.publicPath(baseName),
		Engine:         speechmodel.EnginePolly,
	}, true
}

func (s *Synthesizer) synthesizeLocal(req speechmodel.TTSRequest, profile speechmodel.VoiceProfile) speechmodel.TTSResult {
	language := profile.Language
	if language == "" {
		language = "en"
	}

	baseName := s.baseName(req.ConversationID)
	if err := s.local.SynthesizeFile(req.Text, language, s.audioDir, baseName); err != nil {
		// Best-effort contract: the caller still gets the intended path.
		log.Printf("[speech] default engine error: %v", err)
	}

	return speechmodel.TTSResult{
		ConversationID: req.ConversationID,
		AudioPath:      s.publicPath(baseName),
		Engine:         speechmodel.EngineGTTS,
	}
}

func (s *Synthesizer) baseName(conversationID string) string {
	return fmt.Sprintf("response_%s_%d", conversationID, time.Now().UnixNano())
}

func (s *Synthesizer) publicPath(baseName string) string {
	return path.Join(s.publicPrefix, baseName+".mp3")
}
