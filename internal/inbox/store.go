// Package inbox persists contact-form submissions for the site owner.
package inbox

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/rishi-212005/portfolio-server/internal/content"
)

// storageName is the content key suffix; the full durable key is
// portfolio_messages, holding the whole inbox as one JSON array.
const storageName = "messages"

// ErrNotFound is returned by ReplyLink for an unknown message id.
var ErrNotFound = errors.New("message not found")

// Message is one contact-form submission.
type Message struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Message string    `json:"message"`
	Date    time.Time `json:"date"`
	Read    bool      `json:"read"`
}

// Store provides the inbox operations. Every mutation rewrites the whole
// list in a single write, so the stored array can never be partially
// updated. List order is most-recent-first.
type Store struct {
	content *content.Store
	now     func() time.Time
}

// NewStore creates an inbox over the given content store.
func NewStore(cs *content.Store) *Store {
	return &Store{content: cs, now: time.Now}
}

func (s *Store) key() string { return content.Key(storageName) }

// List returns all messages, newest first.
func (s *Store) List(ctx context.Context) []Message {
	return content.Get(ctx, s.content, s.key(), []Message{})
}

func (s *Store) persist(ctx context.Context, messages []Message) error {
	return content.Set(ctx, s.content, s.key(), messages)
}

// Append records a new submission: fresh id, current timestamp, unread,
// prepended to the list.
func (s *Store) Append(ctx context.Context, name, email, body string) (Message, error) {
	msg := Message{
		ID:      uuid.New().String(),
		Name:    name,
		Email:   email,
		Message: body,
		Date:    s.now().UTC(),
		Read:    false,
	}
	messages := append([]Message{msg}, s.List(ctx)...)
	if err := s.persist(ctx, messages); err != nil {
		return Message{}, err
	}
	return msg, nil
}

// MarkRead flags exactly the one matching message as read. An absent id is a
// no-op.
func (s *Store) MarkRead(ctx context.Context, id string) error {
	messages := s.List(ctx)
	for i := range messages {
		if messages[i].ID == id {
			if messages[i].Read {
				return nil
			}
			messages[i].Read = true
			return s.persist(ctx, messages)
		}
	}
	return nil
}

// Remove deletes exactly the one matching message. An absent id is a no-op.
func (s *Store) Remove(ctx context.Context, id string) error {
	messages := s.List(ctx)
	kept := messages[:0:0]
	for _, m := range messages {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	if len(kept) == len(messages) {
		return nil
	}
	return s.persist(ctx, kept)
}

// Clear empties the inbox.
func (s *Store) Clear(ctx context.Context) error {
	return s.persist(ctx, []Message{})
}

// UnreadCount recomputes the number of unread messages from the list; it is
// never stored separately, so it cannot drift.
func (s *Store) UnreadCount(ctx context.Context) int {
	var n int
	for _, m := range s.List(ctx) {
		if !m.Read {
			n++
		}
	}
	return n
}

// ReplyLink builds the mailto URL for replying to a message. The reply is a
// plain mail link; nothing is sent programmatically.
func (s *Store) ReplyLink(ctx context.Context, id string) (string, error) {
	for _, m := range s.List(ctx) {
		if m.ID == id {
			return "mailto:" + m.Email, nil
		}
	}
	return "", ErrNotFound
}
