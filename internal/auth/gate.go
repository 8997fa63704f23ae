package auth

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"

	"github.com/rishi-212005/portfolio-server/internal/content"
)

// ErrInvalidCredentials is returned by SignIn when the identifier/secret pair
// does not match the configured admin identity. It is the gate's only
// failure mode and is never retried automatically.
var ErrInvalidCredentials = errors.New("invalid credentials")

// SessionKey is the durable storage key for the admin flag. It predates the
// portfolio_ namespace and stays unprefixed for compatibility with existing
// stored sessions.
const SessionKey = "isAdmin"

// Gate validates the single configured admin identity and owns the session
// admin flag. The flag is restored from durable storage on construction, so
// an admin session survives a restart until an explicit sign-out.
type Gate struct {
	store    *content.Store
	email    string
	password string

	mu        sync.RWMutex
	isAdmin   bool
	onSignOut []func()
}

// NewGate creates a gate for the configured admin email/password and restores
// any persisted session.
func NewGate(ctx context.Context, store *content.Store, email, password string) *Gate {
	g := &Gate{
		store:    store,
		email:    email,
		password: password,
	}
	g.isAdmin = content.Get(ctx, store, SessionKey, false)
	return g
}

// SignIn succeeds iff email matches the configured admin email
// case-insensitively and password matches exactly. The flag is persisted
// first and only then set in memory, so a failed write leaves the session
// signed out rather than half admin.
func (g *Gate) SignIn(ctx context.Context, email, password string) error {
	if !strings.EqualFold(email, g.email) || password != g.password {
		return ErrInvalidCredentials
	}

	if err := content.Set(ctx, g.store, SessionKey, true); err != nil {
		return err
	}

	g.mu.Lock()
	g.isAdmin = true
	g.mu.Unlock()
	return nil
}

// SignOut clears the admin flag from memory and durable storage. It always
// succeeds from the caller's perspective; a storage failure is logged but the
// in-memory session is already over.
func (g *Gate) SignOut(ctx context.Context) {
	g.mu.Lock()
	g.isAdmin = false
	hooks := make([]func(), len(g.onSignOut))
	copy(hooks, g.onSignOut)
	g.mu.Unlock()

	if err := g.store.Delete(ctx, SessionKey); err != nil {
		log.Printf("auth: clearing persisted session: %v", err)
	}

	for _, fn := range hooks {
		fn()
	}
}

// IsAdmin reports whether the current session is the admin.
func (g *Gate) IsAdmin() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.isAdmin
}

// OnSignOut registers a hook invoked whenever the admin session ends. Edit
// mode uses this to force-reset its flag.
func (g *Gate) OnSignOut(fn func()) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.onSignOut = append(g.onSignOut, fn)
}
