package inbox

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rishi-212005/portfolio-server/internal/auth"
	"github.com/rishi-212005/portfolio-server/internal/content"
	"github.com/rishi-212005/portfolio-server/internal/db"
)

func setupInbox(t *testing.T) (*Store, *content.Store) {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	cs := content.NewStore(database)
	return NewStore(cs), cs
}

func TestAppendPrependsNewestFirst(t *testing.T) {
	store, _ := setupInbox(t)
	ctx := context.Background()

	// Deterministic clock so ordering is attributable to prepending, not
	// timestamp sorting.
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return base }

	if _, err := store.Append(ctx, "A", "a@x.com", "hi"); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if _, err := store.Append(ctx, "B", "b@x.com", "yo"); err != nil {
		t.Fatalf("Append: %v", err)
	}

	msgs := store.List(ctx)
	if len(msgs) != 2 {
		t.Fatalf("len = %d, want 2", len(msgs))
	}
	if msgs[0].Name != "B" || msgs[1].Name != "A" {
		t.Errorf("order = [%s %s], want [B A]", msgs[0].Name, msgs[1].Name)
	}
	if store.UnreadCount(ctx) != 2 {
		t.Errorf("UnreadCount = %d, want 2", store.UnreadCount(ctx))
	}
	if msgs[0].Read {
		t.Error("new message created as read")
	}
	if msgs[0].ID == msgs[1].ID {
		t.Error("duplicate message ids")
	}
}

func TestMarkRead(t *testing.T) {
	store, _ := setupInbox(t)
	ctx := context.Background()

	a, _ := store.Append(ctx, "A", "a@x.com", "hi")
	b, _ := store.Append(ctx, "B", "b@x.com", "yo")

	if err := store.MarkRead(ctx, a.ID); err != nil {
		t.Fatalf("MarkRead: %v", err)
	}

	msgs := store.List(ctx)
	for _, m := range msgs {
		want := m.ID == a.ID
		if m.Read != want {
			t.Errorf("message %s read = %v, want %v", m.Name, m.Read, want)
		}
	}
	if store.UnreadCount(ctx) != 1 {
		t.Errorf("UnreadCount = %d, want 1", store.UnreadCount(ctx))
	}

	// Marking an absent id changes nothing.
	if err := store.MarkRead(ctx, "no-such-id"); err != nil {
		t.Fatalf("MarkRead absent: %v", err)
	}
	if store.UnreadCount(ctx) != 1 {
		t.Error("UnreadCount drifted after no-op mark")
	}
	_ = b
}

func TestRemoveAndClear(t *testing.T) {
	store, _ := setupInbox(t)
	ctx := context.Background()

	a, _ := store.Append(ctx, "A", "a@x.com", "hi")
	store.Append(ctx, "B", "b@x.com", "yo")

	if err := store.Remove(ctx, a.ID); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	msgs := store.List(ctx)
	if len(msgs) != 1 || msgs[0].Name != "B" {
		t.Errorf("after remove: %+v", msgs)
	}

	// Absent id is a no-op.
	if err := store.Remove(ctx, a.ID); err != nil {
		t.Fatalf("Remove absent: %v", err)
	}
	if len(store.List(ctx)) != 1 {
		t.Error("no-op remove changed the list")
	}

	if err := store.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if len(store.List(ctx)) != 0 {
		t.Error("Clear left messages behind")
	}
	if store.UnreadCount(ctx) != 0 {
		t.Error("UnreadCount nonzero after Clear")
	}
}

func TestReplyLink(t *testing.T) {
	store, _ := setupInbox(t)
	ctx := context.Background()

	a, _ := store.Append(ctx, "A", "a@x.com", "hi")

	link, err := store.ReplyLink(ctx, a.ID)
	if err != nil {
		t.Fatalf("ReplyLink: %v", err)
	}
	if link != "mailto:a@x.com" {
		t.Errorf("link = %q", link)
	}

	if _, err := store.ReplyLink(ctx, "nope"); err != ErrNotFound {
		t.Errorf("ReplyLink absent = %v, want ErrNotFound", err)
	}
}

func TestRoutes(t *testing.T) {
	store, cs := setupInbox(t)
	ctx := context.Background()
	gate := auth.NewGate(ctx, cs, "admin@example.com", "pw")

	r := chi.NewRouter()
	RegisterRoutes(r, store, gate)

	// Anyone can submit the contact form.
	body := bytes.NewBufferString(`{"name":"A","email":"a@x.com","message":"hi"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/contact", body)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("contact status = %d", rec.Code)
	}

	// Empty fields are rejected.
	req = httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewBufferString(`{"name":"","email":"","message":""}`))
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("empty contact status = %d, want 400", rec.Code)
	}

	// The inbox itself is admin-only.
	req = httptest.NewRequest(http.MethodGet, "/api/inbox/", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("inbox status = %d, want 403", rec.Code)
	}

	if err := gate.SignIn(ctx, "admin@example.com", "pw"); err != nil {
		t.Fatalf("SignIn: %v", err)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/inbox/", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("inbox status = %d", rec.Code)
	}
	if !bytes.Contains(rec.Body.Bytes(), []byte("a@x.com")) {
		t.Errorf("inbox body = %s", rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/api/inbox/unread", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if !bytes.Contains(rec.Body.Bytes(), []byte(`"unread":1`)) {
		t.Errorf("unread body = %s", rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodDelete, "/api/inbox/", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("clear status = %d", rec.Code)
	}
	if len(store.List(ctx)) != 0 {
		t.Error("clear route left messages")
	}
}
