package chat

import (
	"context"
	"errors"
	"strings"
	"sync"
)

// Greeting opens every chat session.
const Greeting = "Hi! I'm Rishi's AI assistant. Ask me anything about his skills, experience, or projects!"

// ApologyAnswer replaces the assistant reply when the engine cannot be
// reached. Failures never propagate past the transcript.
const ApologyAnswer = "Sorry, I couldn't connect. Please try again!"

// ErrBusy is returned while a previous question is still being answered.
// Submissions are rejected, never queued, and the in-flight request is never
// cancelled.
var ErrBusy = errors.New("an answer is already in progress")

// ErrEmptyQuestion is returned for a blank submission.
var ErrEmptyQuestion = errors.New("question is empty")

// Conversation is one visitor's in-memory chat transcript plus the
// Idle/Sending state gate around the engine.
type Conversation struct {
	engine Engine

	mu       sync.Mutex
	messages []Message
	busy     bool
}

// NewConversation starts a transcript seeded with the greeting.
func NewConversation(engine Engine) *Conversation {
	return &Conversation{
		engine:   engine,
		messages: []Message{{Role: RoleAssistant, Content: Greeting}},
	}
}

// Messages returns a copy of the transcript so far.
func (c *Conversation) Messages() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// Send submits a question and blocks until the full answer has streamed in,
// invoking onChunk for every chunk in arrival order (onChunk may be nil).
// The accumulated answer is appended to the transcript and returned. An
// engine failure is absorbed as the apology answer rather than an error.
func (c *Conversation) Send(ctx context.Context, question string, onChunk func(string)) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", ErrEmptyQuestion
	}

	c.mu.Lock()
	if c.busy {
		c.mu.Unlock()
		return "", ErrBusy
	}
	c.busy = true
	c.messages = append(c.messages, Message{Role: RoleUser, Content: question})
	history := make([]Message, len(c.messages))
	copy(history, c.messages)
	c.mu.Unlock()

	answer := c.stream(ctx, history, onChunk)

	c.mu.Lock()
	c.messages = append(c.messages, Message{Role: RoleAssistant, Content: answer})
	c.busy = false
	c.mu.Unlock()

	return answer, nil
}

func (c *Conversation) stream(ctx context.Context, history []Message, onChunk func(string)) string {
	chunks, err := c.engine.Answer(ctx, history)
	if err != nil {
		return ApologyAnswer
	}

	var b strings.Builder
	for chunk := range chunks {
		b.WriteString(chunk)
		if onChunk != nil {
			onChunk(chunk)
		}
	}
	if b.Len() == 0 {
		return ApologyAnswer
	}
	return b.String()
}

// Busy reports whether an answer is currently in flight.
func (c *Conversation) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busy
}
