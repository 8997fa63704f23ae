package auth

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/rishi-212005/portfolio-server/internal/content"
	"github.com/rishi-212005/portfolio-server/internal/db"
)

const (
	testEmail    = "admin@example.com"
	testPassword = "s3cret"
)

func setupGate(t *testing.T) (*Gate, *content.Store) {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	store := content.NewStore(database)
	return NewGate(context.Background(), store, testEmail, testPassword), store
}

func TestSignInSuccess(t *testing.T) {
	gate, store := setupGate(t)
	ctx := context.Background()

	if err := gate.SignIn(ctx, testEmail, testPassword); err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if !gate.IsAdmin() {
		t.Error("IsAdmin = false after successful sign-in")
	}
	if !content.Get(ctx, store, SessionKey, false) {
		t.Error("admin flag not persisted")
	}
}

func TestSignInEmailCaseInsensitive(t *testing.T) {
	gate, _ := setupGate(t)

	if err := gate.SignIn(context.Background(), "ADMIN@Example.COM", testPassword); err != nil {
		t.Fatalf("SignIn with uppercased email: %v", err)
	}
	if !gate.IsAdmin() {
		t.Error("IsAdmin = false")
	}
}

func TestSignInWrongCredentials(t *testing.T) {
	gate, store := setupGate(t)
	ctx := context.Background()

	cases := []struct {
		name, email, password string
	}{
		{"wrong email", "WRONG@x.com", "bad"},
		{"wrong password", testEmail, "S3CRET"},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := gate.SignIn(ctx, tc.email, tc.password)
			if !errors.Is(err, ErrInvalidCredentials) {
				t.Fatalf("SignIn error = %v, want ErrInvalidCredentials", err)
			}
			if gate.IsAdmin() {
				t.Error("IsAdmin = true after failed sign-in")
			}
			if store.Has(ctx, SessionKey) {
				t.Error("failed sign-in wrote session state")
			}
		})
	}
}

func TestSignOut(t *testing.T) {
	gate, store := setupGate(t)
	ctx := context.Background()

	if err := gate.SignIn(ctx, testEmail, testPassword); err != nil {
		t.Fatalf("SignIn: %v", err)
	}

	var hookCalled bool
	gate.OnSignOut(func() { hookCalled = true })

	gate.SignOut(ctx)
	if gate.IsAdmin() {
		t.Error("IsAdmin = true after sign-out")
	}
	if store.Has(ctx, SessionKey) {
		t.Error("persisted session not removed")
	}
	if !hookCalled {
		t.Error("sign-out hook not invoked")
	}

	// Signing out again is harmless.
	gate.SignOut(ctx)
}

func TestSessionRestoredFromStorage(t *testing.T) {
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	store := content.NewStore(database)
	ctx := context.Background()

	if err := content.Set(ctx, store, SessionKey, true); err != nil {
		t.Fatalf("Set: %v", err)
	}

	gate := NewGate(ctx, store, testEmail, testPassword)
	if !gate.IsAdmin() {
		t.Error("persisted admin session not restored")
	}
}

func TestSignInRoute(t *testing.T) {
	gate, _ := setupGate(t)
	r := chi.NewRouter()
	RegisterRoutes(r, gate)

	body := bytes.NewBufferString(`{"email":"admin@example.com","password":"s3cret"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signin", body)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	// Bad credentials get a 401 and leave the session untouched.
	gate.SignOut(context.Background())
	body = bytes.NewBufferString(`{"email":"admin@example.com","password":"nope"}`)
	req = httptest.NewRequest(http.MethodPost, "/api/auth/signin", body)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if gate.IsAdmin() {
		t.Error("IsAdmin = true after rejected sign-in")
	}
}

func TestRequireAdmin(t *testing.T) {
	gate, _ := setupGate(t)

	handler := RequireAdmin(gate, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403 without session", rec.Code)
	}

	if err := gate.SignIn(context.Background(), testEmail, testPassword); err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	rec = httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204 with session", rec.Code)
	}
}

func TestSignInStorageFailureStaysSignedOut(t *testing.T) {
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	store := content.NewStore(database)
	gate := NewGate(context.Background(), store, testEmail, testPassword)

	// A closed database makes the persist step fail.
	database.Close()

	if err := gate.SignIn(context.Background(), testEmail, testPassword); err == nil {
		t.Fatal("expected an error when the session cannot be persisted")
	}
	if gate.IsAdmin() {
		t.Error("session became admin despite the failed write")
	}
}
