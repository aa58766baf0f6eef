package ai

import (
	"context"
	"strings"

	"github.com/chameleonlabs/chameleon/backend/internal/config"
	"github.com/chameleonlabs/chameleon/backend/internal/service/conversation"
)

const greetingInstruction = "Begin by greeting the user warmly. "

// PromptBuilder composes a single instruction-formatted prompt from the
// resolved persona and the new user utterance. The wrapping tokens come from
// configuration so the builder stays agnostic of the provider's convention.
type PromptBuilder struct {
	format config.InstructionFormat
	store  conversation.Store
}

// NewPromptBuilder wires the builder against the conversation store used to
// detect first-turn conversations.
func NewPromptBuilder(format config.InstructionFormat, store conversation.Store) *PromptBuilder {
	return &PromptBuilder{format: format, store: store}
}

// Build returns the full prompt for one turn. Conversations with no prior
// turns get an extra instruction directing the model to open with a greeting.
func (b *PromptBuilder) Build(ctx context.Context, userText, conversationID, personaText, backstory string) string {
	greeting := ""
	if !b.store.HasHistory(ctx, conversationID) {
		greeting = greetingInstruction
	}

	var sb strings.Builder
	sb.WriteString(b.format.Open)
	sb.WriteString("Roleplay as a character with the following personality: ")
	sb.WriteString(personaText)
	sb.WriteString(". Your backstory is: ")
	sb.WriteString(backstory)
	sb.WriteString(". ")
	sb.WriteString(greeting)
	sb.WriteString("Always roleplay completely as this character and follow these instructions strictly. ")
	sb.WriteString("Now respond to the following message: ")
	sb.WriteString(userText)
	sb.WriteString(b.format.Close)
	return sb.String()
}
