package session

import (
	"context"
	"fmt"
	"testing"

	"orchat/model"
)

// echoProvider replies with "echo:" plus the newest user message.
type echoProvider struct {
	calls int
}

func (p *echoProvider) Chat(_ context.Context, messages []model.Message) (string, error) {
	p.calls++
	if len(messages) == 0 {
		return "", fmt.Errorf("no messages")
	}
	return "echo:" + messages[len(messages)-1].Content, nil
}

func (p *echoProvider) GetModel() string             { return "test/echo-model" }
func (p *echoProvider) GetDisplayName() string       { return "echo-model" }
func (p *echoProvider) SetModel(string)              {}
func (p *echoProvider) Ping(_ context.Context) error { return nil }

// flakyProvider succeeds for succeedTurns calls, then fails every call.
type flakyProvider struct {
	echoProvider
	succeedTurns int
}

func (p *flakyProvider) Chat(ctx context.Context, messages []model.Message) (string, error) {
	if p.calls >= p.succeedTurns {
		p.calls++
		return "", fmt.Errorf("connection refused")
	}
	return p.echoProvider.Chat(ctx, messages)
}

func TestSubmitRoundTrip(t *testing.T) {
	p := &echoProvider{}
	s := New(p, "")

	reply, err := s.Submit(context.Background(), "hi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply != "echo:hi" {
		t.Errorf("expected reply %q, got %q", "echo:hi", reply)
	}

	history := s.History()
	if len(history) != 2 {
		t.Fatalf("expected 2 history entries, got %d", len(history))
	}
	last := history[len(history)-1]
	if last.Role != model.RoleAssistant || last.Content != "echo:hi" {
		t.Errorf("expected most recent entry {assistant, echo:hi}, got {%s, %s}", last.Role, last.Content)
	}
}

func TestHistoryGrowsTwoPerTurn(t *testing.T) {
	p := &echoProvider{}
	s := New(p, "")

	const turns = 5
	for i := 0; i < turns; i++ {
		if _, err := s.Submit(context.Background(), fmt.Sprintf("msg-%d", i)); err != nil {
			t.Fatalf("turn %d: unexpected error: %v", i, err)
		}
	}

	history := s.History()
	if len(history) != 2*turns {
		t.Fatalf("expected %d history entries after %d turns, got %d", 2*turns, turns, len(history))
	}

	// Strict chronological order: user then assistant per turn
	for i := 0; i < turns; i++ {
		user := history[2*i]
		assistant := history[2*i+1]
		if user.Role != model.RoleUser || user.Content != fmt.Sprintf("msg-%d", i) {
			t.Errorf("entry %d: expected {user, msg-%d}, got {%s, %s}", 2*i, i, user.Role, user.Content)
		}
		if assistant.Role != model.RoleAssistant || assistant.Content != fmt.Sprintf("echo:msg-%d", i) {
			t.Errorf("entry %d: expected {assistant, echo:msg-%d}, got {%s, %s}", 2*i+1, i, assistant.Role, assistant.Content)
		}
	}
}

func TestFailedTurnKeepsUserMessage(t *testing.T) {
	p := &flakyProvider{succeedTurns: 2}
	s := New(p, "")

	for i := 0; i < 2; i++ {
		if _, err := s.Submit(context.Background(), fmt.Sprintf("ok-%d", i)); err != nil {
			t.Fatalf("turn %d: unexpected error: %v", i, err)
		}
	}

	if _, err := s.Submit(context.Background(), "doomed"); err == nil {
		t.Fatal("expected error on failing turn, got nil")
	}

	history := s.History()
	if len(history) != 5 {
		t.Fatalf("expected 5 history entries (2 full turns + 1 orphaned user message), got %d", len(history))
	}

	// Earlier turns untouched
	for i := 0; i < 2; i++ {
		if history[2*i].Content != fmt.Sprintf("ok-%d", i) {
			t.Errorf("turn %d user message corrupted: %q", i, history[2*i].Content)
		}
		if history[2*i+1].Content != fmt.Sprintf("echo:ok-%d", i) {
			t.Errorf("turn %d assistant message corrupted: %q", i, history[2*i+1].Content)
		}
	}

	last := history[4]
	if last.Role != model.RoleUser || last.Content != "doomed" {
		t.Errorf("expected orphaned user message {user, doomed}, got {%s, %s}", last.Role, last.Content)
	}
}

func TestSystemPromptSeedsHistory(t *testing.T) {
	p := &echoProvider{}
	s := New(p, "You are terse.")

	if s.Len() != 1 {
		t.Fatalf("expected 1 seeded entry, got %d", s.Len())
	}
	first := s.History()[0]
	if first.Role != model.RoleSystem || first.Content != "You are terse." {
		t.Errorf("expected {system, You are terse.}, got {%s, %s}", first.Role, first.Content)
	}

	if _, err := s.Submit(context.Background(), "hi"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Len() != 3 {
		t.Errorf("expected 3 entries after one turn with system prompt, got %d", s.Len())
	}
}

func TestEmptySystemPromptMeansEmptySession(t *testing.T) {
	s := New(&echoProvider{}, "")
	if s.Len() != 0 {
		t.Errorf("expected empty session, got %d entries", s.Len())
	}
	if s.ID == "" {
		t.Error("expected a session ID")
	}
}

func TestHistoryReturnsCopy(t *testing.T) {
	p := &echoProvider{}
	s := New(p, "")

	if _, err := s.Submit(context.Background(), "hi"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	history := s.History()
	history[0].Content = "mutated"

	if got := s.History()[0].Content; got != "hi" {
		t.Errorf("mutating the returned slice leaked into the session: %q", got)
	}
}
