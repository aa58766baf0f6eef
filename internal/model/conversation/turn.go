package conversation

import "time"

// Turn captures one user-utterance/assistant-reply pair. Turns are created
// once and never mutated; the assistant field already carries the fixed
// follow-up line appended by the orchestrator.
type Turn struct {
	User      string    `json:"user"`
	Assistant string    `json:"assistant"`
	Topic     string    `json:"topic,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
