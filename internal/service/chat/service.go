package chat

import (
	"context"
	"log"

	"github.com/chameleonlabs/chameleon/backend/internal/analysis/topic"
	convmodel "github.com/chameleonlabs/chameleon/backend/internal/model/conversation"
	speechmodel "github.com/chameleonlabs/chameleon/backend/internal/model/speech"
	"github.com/chameleonlabs/chameleon/backend/internal/service/ai"
	"github.com/chameleonlabs/chameleon/backend/internal/service/conversation"
)

// FollowUpLine is appended to every reply and to the synthesized audio. It is
// part of the externally observable contract, not a model output.
const FollowUpLine = "What else would you like to discuss about this topic?"

// Generator produces the assistant reply for a prompt. It degrades failures
// into reply text and never returns an error.
type Generator interface {
	Generate(ctx context.Context, prompt, conversationID string) string
}

// Synthesizer renders reply text to a served audio file.
type Synthesizer interface {
	Synthesize(ctx context.Context, req speechmodel.TTSRequest) speechmodel.TTSResult
}

// TurnRequest carries everything the HTTP boundary resolved for one message.
type TurnRequest struct {
	UserText       string
	ConversationID string
	Persona        string
	Backstory      string
	Voice          string
}

// TurnResult is the structured outcome handed back to the boundary.
type TurnResult struct {
	Answer    string `json:"answer"`
	FollowUp  string `json:"followUp"`
	AudioPath string `json:"audioPath"`
	Topic     string `json:"topic"`
}

// Service orchestrates a single chat turn: prompt, generation, speech and
// transcript bookkeeping. Every internal failure degrades to a placeholder
// value; nothing raises past this boundary.
type Service struct {
	store       conversation.Store
	prompts     *ai.PromptBuilder
	generator   Generator
	synthesizer Synthesizer
}

// NewService wires the orchestrator against its collaborators.
func NewService(store conversation.Store, prompts *ai.PromptBuilder, generator Generator, synthesizer Synthesizer) *Service {
	return &Service{
		store:       store,
		prompts:     prompts,
		generator:   generator,
		synthesizer: synthesizer,
	}
}

// HandleTurn runs the full pipeline for one user message. Steps are blocking
// and sequential; the prompt must be built before the first append so the
// greeting instruction only ever covers a conversation's first turn.
func (s *Service) HandleTurn(ctx context.Context, req TurnRequest) TurnResult {
	prompt := s.prompts.Build(ctx, req.UserText, req.ConversationID, req.Persona, req.Backstory)
	reply := s.generator.Generate(ctx, prompt, req.ConversationID)

	audioText := reply + "\n" + FollowUpLine
	synthesized := s.synthesizer.Synthesize(ctx, speechmodel.TTSRequest{
		ConversationID: req.ConversationID,
		Text:           audioText,
		Voice:          req.Voice,
	})

	detected := string(topic.Detect(req.UserText))

	turn := convmodel.Turn{
		User:      req.UserText,
		Assistant: reply + "\nFollow-up: " + FollowUpLine,
		Topic:     detected,
	}
	if err := s.store.Append(ctx, req.ConversationID, turn); err != nil {
		log.Printf("[chat] failed to record turn for conversation=%s: %v", req.ConversationID, err)
	}

	return TurnResult{
		Answer:    reply,
		FollowUp:  FollowUpLine,
		AudioPath: synthesized.AudioPath,
		Topic:     detected,
	}
}
