package speech

// Synthesis engine tags accepted in a VoiceProfile.
const (
	EnginePolly = "polly"
	EngineGTTS  = "gtts"
)

// DefaultVoice names the catalog entry used whenever a configuration has
// voice mode disabled or selects an unknown voice.
const DefaultVoice = "default"

// VoiceProfile binds a named voice to a synthesis engine and its parameters.
// Profiles are static configuration validated at startup, not runtime state.
type VoiceProfile struct {
	Engine   string `toml:"engine" json:"engine"`
	Language string `toml:"language" json:"language"`
	VoiceID  string `toml:"voice_id" json:"voiceId,omitempty"`
}
