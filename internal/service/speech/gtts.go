package speech

import (
	htgotts "github.com/hegedustibor/htgo-tts"
)

// LocalEngine is the always-available fallback backend. Implementations write
// the audio file to disk themselves, mirroring the provider client's contract.
type LocalEngine interface {
	SynthesizeFile(text, language, dir, baseName string) error
}

// GoogleTranslateEngine renders text through the Google Translate TTS
// endpoint. It needs no credentials, which is what makes it a safe fallback.
type GoogleTranslateEngine struct{}

// SynthesizeFile writes <dir>/<baseName>.mp3 for the given text.
func (GoogleTranslateEngine) SynthesizeFile(text, language, dir, baseName string) error {
	speech := htgotts.Speech{Folder: dir, Language: language}
	_, err := speech.CreateSpeechFile(text, baseName)
	return err
}
