// Package session owns the in-memory conversation state for one run.
//
// A session is an ordered, append-only sequence of messages. Every turn
// re-sends the entire accumulated history plus the new user message; there
// is no truncation, deduplication, or context-window management. History is
// discarded when the process exits.
package session

import (
	"context"
	"time"

	"github.com/google/uuid"

	"orchat/model"
)

// Session accumulates the conversation and mediates one request/response
// cycle per user turn.
type Session struct {
	ID        string
	CreatedAt time.Time

	provider model.Provider
	history  []model.Message
}

// New creates an empty session backed by the given provider. A non-empty
// systemPrompt seeds the history with a single system message.
func New(p model.Provider, systemPrompt string) *Session {
	s := &Session{
		ID:        uuid.New().String(),
		CreatedAt: time.Now(),
		provider:  p,
	}
	if systemPrompt != "" {
		s.history = append(s.history, model.Message{
			Role:      model.RoleSystem,
			Content:   systemPrompt,
			Timestamp: time.Now(),
		})
	}
	return s
}

// Submit runs one conversation turn: the user message is appended to the
// history, the entire history is sent to the provider, and on success the
// reply is appended and returned.
//
// On failure the user message stays in the history and no assistant message
// is added. The send may have succeeded server-side even when the reply
// could not be used, so the turn is considered consumed either way.
//
// The caller is responsible for rejecting empty input and the sentinel exit
// command before calling Submit.
func (s *Session) Submit(ctx context.Context, userText string) (string, error) {
	s.history = append(s.history, model.Message{
		Role:      model.RoleUser,
		Content:   userText,
		Timestamp: time.Now(),
	})

	reply, err := s.provider.Chat(ctx, s.history)
	if err != nil {
		return "", err
	}

	s.history = append(s.history, model.Message{
		Role:      model.RoleAssistant,
		Content:   reply,
		Timestamp: time.Now(),
	})

	return reply, nil
}

// History returns a copy of the conversation in chronological order,
// oldest first.
func (s *Session) History() []model.Message {
	out := make([]model.Message, len(s.history))
	copy(out, s.history)
	return out
}

// Len returns the number of messages accumulated so far.
func (s *Session) Len() int {
	return len(s.history)
}
