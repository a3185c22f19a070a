// Package chatui holds the chat transcript state machine driven by the
// frontend: idle -> awaiting response -> idle, with the user's message
// appended optimistically and failures rendered as error bubbles.
package chatui

import (
	"context"
	"strings"
	"time"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Greeting opens every new session.
const Greeting = "Hi! I'm your WellMind AI coach. I'm here to help you with physical health, mental wellbeing, motivation, and overall wellness. What would you like to talk about today?"

// Sender is the round trip to the AI coach (implemented by client.Client).
type Sender interface {
	Chat(ctx context.Context, message string) (string, error)
}

type Message struct {
	Role      string
	Content   string
	Timestamp time.Time
	Error     bool
}

// Session owns the ordered in-memory transcript of one chat. It is meant
// to be driven from a single goroutine; a Send issued while a turn is in
// flight is ignored.
type Session struct {
	sender   Sender
	messages []Message
	awaiting bool
	now      func() time.Time
}

func NewSession(sender Sender) *Session {
	s := &Session{
		sender: sender,
		now:    time.Now,
	}
	s.messages = append(s.messages, Message{
		Role:      RoleAssistant,
		Content:   Greeting,
		Timestamp: s.now(),
	})
	return s
}

// Send runs one turn to completion: the trimmed input is appended to the
// transcript immediately, then either the assistant reply or an error
// bubble follows. Returns false when the send was ignored (blank input or
// a turn already in flight). There is no retry and no cancellation.
func (s *Session) Send(ctx context.Context, input string) bool {
	input = strings.TrimSpace(input)
	if input == "" || s.awaiting {
		return false
	}

	s.awaiting = true
	defer func() { s.awaiting = false }()

	s.messages = append(s.messages, Message{
		Role:      RoleUser,
		Content:   input,
		Timestamp: s.now(),
	})

	reply, err := s.sender.Chat(ctx, input)
	if err != nil {
		s.messages = append(s.messages, Message{
			Role:      RoleAssistant,
			Content:   "I apologize, but I encountered an error: " + err.Error() + ". Please try again.",
			Timestamp: s.now(),
			Error:     true,
		})
		return true
	}

	s.messages = append(s.messages, Message{
		Role:      RoleAssistant,
		Content:   reply,
		Timestamp: s.now(),
	})
	return true
}

// Awaiting reports whether a turn is in flight.
func (s *Session) Awaiting() bool { return s.awaiting }

// Messages returns the transcript, oldest first.
func (s *Session) Messages() []Message { return s.messages }
