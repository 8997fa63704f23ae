package inbox

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rishi-212005/portfolio-server/internal/auth"
)

// RegisterRoutes mounts the public contact endpoint and the admin-only inbox
// endpoints.
func RegisterRoutes(r chi.Router, store *Store, gate *auth.Gate) {
	r.Post("/api/contact", handleContact(store))

	r.Route("/api/inbox", func(r chi.Router) {
		r.Get("/", auth.RequireAdmin(gate, handleList(store)))
		r.Get("/unread", auth.RequireAdmin(gate, handleUnread(store)))
		r.Delete("/", auth.RequireAdmin(gate, handleClear(store)))
		r.Post("/{id}/read", auth.RequireAdmin(gate, handleMarkRead(store)))
		r.Get("/{id}/reply", auth.RequireAdmin(gate, handleReply(store)))
		r.Delete("/{id}", auth.RequireAdmin(gate, handleRemove(store)))
	})
}

func handleContact(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Name    string `json:"name"`
			Email   string `json:"email"`
			Message string `json:"message"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		if body.Name == "" || body.Email == "" || body.Message == "" {
			http.Error(w, "name, email and message are required", http.StatusBadRequest)
			return
		}

		msg, err := store.Append(r.Context(), body.Name, body.Email, body.Message)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusCreated, msg)
	}
}

func handleList(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, store.List(r.Context()))
	}
}

func handleUnread(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]int{"unread": store.UnreadCount(r.Context())})
	}
}

func handleMarkRead(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := store.MarkRead(r.Context(), chi.URLParam(r, "id")); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleReply(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		link, err := store.ReplyLink(r.Context(), chi.URLParam(r, "id"))
		if errors.Is(err, ErrNotFound) {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"mailto": link})
	}
}

func handleRemove(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := store.Remove(r.Context(), chi.URLParam(r, "id")); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleClear(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := store.Clear(r.Context()); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
