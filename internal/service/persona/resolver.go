package persona

import (
	"github.com/chameleonlabs/chameleon/backend/internal/model/chatbot"
	"github.com/chameleonlabs/chameleon/backend/internal/model/speech"
)

// Personalities is the built-in personality catalog. Keys double as the
// selectable personality names exposed to the customization UI.
var Personalities = map[string]string{
	"formal":   "You are a formal and professional assistant. Provide comprehensive and detailed answers.",
	"casual":   "You are a friendly and casual assistant. Use informal language and humor where appropriate.",
	"decisive": "Be very decisive with your responses. Just give a straight answer.",
	"cowboy":   "Act like a Texas Cowboy. Say YEHAW! often.",
	"smart":    "Be the smartest assistant possible with detailed responses.",
}

// DefaultPersonality names the catalog entry used when a caller owns no
// chatbot configuration.
const DefaultPersonality = "formal"

// Resolution is the effective persona for a single chat turn.
type Resolution struct {
	Persona   string
	Backstory string
	Voice     string
}

// Resolve produces the persona text, backstory and voice for a turn. A nil
// configuration is a valid input and falls back to the built-in defaults;
// a configuration with voice mode disabled always resolves the default voice.
func Resolve(cfg *chatbot.Config) Resolution {
	if cfg == nil {
		return Resolution{
			Persona:   Personalities[DefaultPersonality],
			Backstory: "",
			Voice:     speech.DefaultVoice,
		}
	}

	voice := speech.DefaultVoice
	if cfg.VoiceMode {
		voice = cfg.SelectedVoice
	}

	return Resolution{
		Persona:   cfg.CharacterPersonality + " | " + cfg.CustomPrompt,
		Backstory: cfg.CharacterBackstory,
		Voice:     voice,
	}
}
