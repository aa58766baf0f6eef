package conversation

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/chameleonlabs/chameleon/backend/internal/model/conversation"
)

var ErrConversationRequired = errors.New("conversation id is required")

// Store abstracts transcript persistence so handlers and the orchestrator can
// be tested against a substitute.
type Store interface {
	Append(ctx context.Context, conversationID string, turn conversation.Turn) error
	History(ctx context.Context, conversationID string) []conversation.Turn
	HasHistory(ctx context.Context, conversationID string) bool
}

// MemoryStore keeps transcripts in process memory for the process lifetime.
// Entries are created lazily on first append and never expire.
type MemoryStore struct {
	mu    sync.RWMutex
	turns map[string][]conversation.Turn
}

// NewMemoryStore bootstraps the in-memory conversation store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		turns: make(map[string][]conversation.Turn),
	}
}

// Append adds a turn to the transcript for the given conversation, creating
// the transcript if this is its first turn. The append is atomic with respect
// to concurrent appends on the same identifier.
func (s *MemoryStore) Append(_ context.Context, conversationID string, turn conversation.Turn) error {
	if conversationID == "" {
		return ErrConversationRequired
	}

	if turn.CreatedAt.IsZero() {
		turn.CreatedAt = time.Now().UTC()
	}

	s.mu.Lock()
	s.turns[conversationID] = append(s.turns[conversationID], turn)
	s.mu.Unlock()
	return nil
}

// History returns a copy of the stored turns in insertion order. Unknown
// identifiers yield an empty transcript.
func (s *MemoryStore) History(_ context.Context, conversationID string) []conversation.Turn {
	s.mu.RLock()
	defer s.mu.RUnlock()

	turns := s.turns[conversationID]
	copied := make([]conversation.Turn, len(turns))
	copy(copied, turns)
	return copied
}

// HasHistory reports whether at least one turn exists for the identifier.
func (s *MemoryStore) HasHistory(_ context.Context, conversationID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.turns[conversationID]) > 0
}
