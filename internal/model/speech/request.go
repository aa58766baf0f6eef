package speech

// TTSRequest asks the synthesizer to render text for one conversation turn.
type TTSRequest struct {
	ConversationID string `json:"conversationId"`
	Text           string `json:"text"`
	Voice          string `json:"voice"`
}

// TTSResult reports where the rendered audio was written. AudioPath is the
// browser-facing path under the static content root; it is best-effort and
// may point at a file whose write failed.
type TTSResult struct {
	ConversationID string `json:"conversationId"`
	AudioPath      string `json:"audioPath"`
	Engine         string `json:"engine"`
}
