package chatbot

// Config captures a user-defined chatbot: display name, steering prompt,
// role-play attributes and voice selection. Records are owned by the external
// persistence collaborator and are read-only inputs during a chat turn.
type Config struct {
	ID                   string `json:"id"`
	OwnerID              string `json:"ownerId"`
	AIName               string `json:"aiName"`
	CustomPrompt         string `json:"customPrompt"`
	DisableFilters       bool   `json:"disableFilters"`
	VoiceMode            bool   `json:"voiceMode"`
	SelectedVoice        string `json:"selectedVoice"`
	IsPublic             bool   `json:"isPublic"`
	CharacterPersonality string `json:"characterPersonality"`
	CharacterBackstory   string `json:"characterBackstory"`
}

// Seed provides a few ready-made configurations so the service is usable
// before any user has customized a bot of their own.
func Seed() []Config {
	return []Config{
		{
			ID:                   "riley-cowpoke",
			OwnerID:              "seed",
			AIName:               "Riley",
			CustomPrompt:         "Answer every question with frontier practicality and keep things friendly.",
			VoiceMode:            true,
			SelectedVoice:        "texas",
			IsPublic:             true,
			CharacterPersonality: "Act like a Texas Cowboy. Say YEHAW! often.",
			CharacterBackstory:   "Grew up wrangling cattle outside Amarillo before becoming the town's favorite storyteller.",
		},
		{
			ID:                   "professor-quill",
			OwnerID:              "seed",
			AIName:               "Professor Quill",
			CustomPrompt:         "Give comprehensive, well-structured answers and cite the reasoning behind them.",
			VoiceMode:            true,
			SelectedVoice:        "british",
			IsPublic:             true,
			CharacterPersonality: "Be the smartest assistant possible with detailed responses.",
			CharacterBackstory:   "A retired literature professor who now tutors anyone curious enough to ask.",
		},
	}
}
