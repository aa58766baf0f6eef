package speech

import (
	"fmt"
	"os"
	"sort"

	"github.com/pelletier/go-toml/v2"

	speechmodel "github.com/chameleonlabs/chameleon/backend/internal/model/speech"
)

// Catalog maps voice names to synthesis profiles. It is assembled once at
// startup and read-only afterwards; unknown names resolve to the default
// entry so a misconfigured chatbot still speaks.
type Catalog struct {
	profiles map[string]speechmodel.VoiceProfile
}

// DefaultCatalog returns the built-in voice table.
func DefaultCatalog() *Catalog {
	return &Catalog{profiles: map[string]speechmodel.VoiceProfile{
		"default": {Engine: speechmodel.EngineGTTS, Language: "en"},
		"british": {Engine: speechmodel.EngineGTTS, Language: "en-uk"},
		"texas":   {Engine: speechmodel.EnginePolly, VoiceID: "Joey"},
		"ivy":     {Engine: speechmodel.EnginePolly, VoiceID: "Ivy"},
		"jasmine": {Engine: speechmodel.EnginePolly, VoiceID: "Jasmine", Language: "en-SG"},
		"bianca":  {Engine: speechmodel.EnginePolly, VoiceID: "Bianca", Language: "it-IT"},
		"matthew": {Engine: speechmodel.EnginePolly, VoiceID: "Matthew", Language: "en-US"},
	}}
}

// LoadFile merges voice profiles from a TOML file over the current catalog.
// Entries are validated before any of them are applied.
func (c *Catalog) LoadFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read voices file: %w", err)
	}

	var overrides map[string]speechmodel.VoiceProfile
	if err := toml.Unmarshal(raw, &overrides); err != nil {
		return fmt.Errorf("parse voices file: %w", err)
	}

	for name, profile := range overrides {
		if err := validateProfile(name, profile); err != nil {
			return err
		}
	}

	for name, profile := range overrides {
		c.profiles[name] = profile
	}
	return nil
}

// Validate checks every profile and the presence of the default entry.
func (c *Catalog) Validate() error {
	if _, ok := c.profiles[speechmodel.DefaultVoice]; !ok {
		return fmt.Errorf("voice catalog is missing the %q entry", speechmodel.DefaultVoice)
	}
	for name, profile := range c.profiles {
		if err := validateProfile(name, profile); err != nil {
			return err
		}
	}
	return nil
}

// Resolve returns the profile for a voice name, defaulting safely when the
// name is unknown or empty.
func (c *Catalog) Resolve(name string) speechmodel.VoiceProfile {
	if profile, ok := c.profiles[name]; ok {
		return profile
	}
	return c.profiles[speechmodel.DefaultVoice]
}

// Names lists the selectable voice names in stable order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.profiles))
	for name := range c.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func validateProfile(name string, profile speechmodel.VoiceProfile) error {
	switch profile.Engine {
	case speechmodel.EngineGTTS:
		if profile.Language == "" {
			return fmt.Errorf("voice %q: language is required for the %s engine", name, speechmodel.EngineGTTS)
		}
	case speechmodel.EnginePolly:
		if profile.VoiceID == "" {
			return fmt.Errorf("voice %q: voice_id is required for the %s engine", name, speechmodel.EnginePolly)
		}
	default:
		return fmt.Errorf("voice %q: unknown engine %q", name, profile.Engine)
	}
	return nil
}
