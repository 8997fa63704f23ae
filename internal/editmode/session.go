// Package editmode gates the content store's write path behind an
// admin-only editing session and exposes the editable field bindings.
package editmode

import (
	"sync"

	"github.com/rishi-212005/portfolio-server/internal/auth"
)

// Session tracks whether edit mode is on. The effective state is always
// "admin AND toggled on": a non-admin session can never observe edit mode,
// and the internal flag force-resets when the admin session ends.
type Session struct {
	gate *auth.Gate

	mu      sync.Mutex
	enabled bool
}

// NewSession creates an edit-mode session tied to the credential gate.
func NewSession(gate *auth.Gate) *Session {
	s := &Session{gate: gate}
	gate.OnSignOut(func() {
		s.mu.Lock()
		s.enabled = false
		s.mu.Unlock()
	})
	return s
}

// Toggle flips the editing flag if the current session is admin, and is a
// silent no-op otherwise. It returns the resulting effective edit-mode state.
// Toggling off is only a UI commit point: every field write already persisted
// at edit time, so there is nothing to roll back or flush here.
func (s *Session) Toggle() bool {
	if !s.gate.IsAdmin() {
		return false
	}
	s.mu.Lock()
	s.enabled = !s.enabled
	s.mu.Unlock()
	return s.EditMode()
}

// EditMode reports the effective edit-mode state.
func (s *Session) EditMode() bool {
	s.mu.Lock()
	enabled := s.enabled
	s.mu.Unlock()
	return s.gate.IsAdmin() && enabled
}
