package chat_test

import (
	"context"
	"strings"
	"testing"

	"github.com/chameleonlabs/chameleon/backend/internal/config"
	speechmodel "github.com/chameleonlabs/chameleon/backend/internal/model/speech"
	"github.com/chameleonlabs/chameleon/backend/internal/service/ai"
	"github.com/chameleonlabs/chameleon/backend/internal/service/chat"
	"github.com/chameleonlabs/chameleon/backend/internal/service/conversation"
)

type stubGenerator struct {
	reply   string
	prompts []string
}

func (g *stubGenerator) Generate(_ context.Context, prompt, _ string) string {
	g.prompts = append(g.prompts, prompt)
	return g.reply
}

type stubSynthesizer struct {
	texts []string
	path  string
}

func (s *stubSynthesizer) Synthesize(_ context.Context, req speechmodel.TTSRequest) speechmodel.TTSResult {
	s.texts = append(s.texts, req.Text)
	return speechmodel.TTSResult{ConversationID: req.ConversationID, AudioPath: s.path}
}

func newTestService(reply string) (*chat.Service, *conversation.MemoryStore, *stubGenerator, *stubSynthesizer) {
	store := conversation.NewMemoryStore()
	format := config.InstructionFormat{Open: "<s>[INST] ", Close: " [/INST]"}
	generator := &stubGenerator{reply: reply}
	synthesizer := &stubSynthesizer{path: "/static/audio/response_abc_1.mp3"}
	svc := chat.NewService(store, ai.NewPromptBuilder(format, store), generator, synthesizer)
	return svc, store, generator, synthesizer
}

func TestHandleTurnFirstMessage(t *testing.T) {
	svc, store, generator, synthesizer := newTestService("Hi there!")
	ctx := context.Background()

	result := svc.HandleTurn(ctx, chat.TurnRequest{
		UserText:       "Hello",
		ConversationID: "abc",
		Persona:        "You are a formal and professional assistant. Provide comprehensive and detailed answers.",
		Backstory:      "",
		Voice:          "default",
	})

	if result.Answer != "Hi there!" {
		t.Fatalf("unexpected answer %q", result.Answer)
	}
	if result.FollowUp != chat.FollowUpLine {
		t.Fatalf("unexpected follow-up %q", result.FollowUp)
	}
	if result.AudioPath == "" {
		t.Fatal("expected audio path")
	}

	if len(generator.prompts) != 1 || !strings.Contains(generator.prompts[0], "Begin by greeting the user warmly. ") {
		t.Fatalf("first prompt missing greeting instruction: %v", generator.prompts)
	}

	if len(synthesizer.texts) != 1 || synthesizer.texts[0] != "Hi there!\n"+chat.FollowUpLine {
		t.Fatalf("unexpected audio text: %v", synthesizer.texts)
	}

	history := store.History(ctx, "abc")
	if len(history) != 1 {
		t.Fatalf("expected 1 stored turn, got %d", len(history))
	}
	if history[0].User != "Hello" {
		t.Fatalf("unexpected stored user text %q", history[0].User)
	}
	if history[0].Assistant != "Hi there!\nFollow-up: "+chat.FollowUpLine {
		t.Fatalf("unexpected stored assistant text %q", history[0].Assistant)
	}
}

func TestHandleTurnSecondMessageHasNoGreeting(t *testing.T) {
	svc, _, generator, _ := newTestService("Sure thing.")
	ctx := context.Background()

	req := chat.TurnRequest{UserText: "Hello", ConversationID: "abc", Persona: "p", Backstory: "b", Voice: "default"}
	svc.HandleTurn(ctx, req)
	req.UserText = "Tell me more"
	svc.HandleTurn(ctx, req)

	if len(generator.prompts) != 2 {
		t.Fatalf("expected 2 prompts, got %d", len(generator.prompts))
	}
	if strings.Contains(generator.prompts[1], "Begin by greeting the user warmly.") {
		t.Fatalf("second prompt should not greet: %q", generator.prompts[1])
	}
}

func TestHandleTurnRecordsProviderErrorReply(t *testing.T) {
	svc, store, _, _ := newTestService("Error 500: internal")
	ctx := context.Background()

	result := svc.HandleTurn(ctx, chat.TurnRequest{
		UserText: "Hello", ConversationID: "abc", Persona: "p", Backstory: "b", Voice: "default",
	})

	if result.Answer != "Error 500: internal" {
		t.Fatalf("unexpected answer %q", result.Answer)
	}
	if result.AudioPath == "" {
		t.Fatal("error replies are still synthesized")
	}
	if len(store.History(ctx, "abc")) != 1 {
		t.Fatal("error turn must still be appended")
	}
}

func TestHandleTurnTagsTopic(t *testing.T) {
	svc, store, _, _ := newTestService("Let me calculate that.")
	ctx := context.Background()

	result := svc.HandleTurn(ctx, chat.TurnRequest{
		UserText: "can you solve this equation", ConversationID: "abc", Persona: "p", Backstory: "b", Voice: "default",
	})

	if result.Topic != "math" {
		t.Fatalf("expected math topic, got %q", result.Topic)
	}
	if got := store.History(ctx, "abc")[0].Topic; got != "math" {
		t.Fatalf("stored turn topic mismatch: %q", got)
	}
}
