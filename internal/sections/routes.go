package sections

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rishi-212005/portfolio-server/internal/editmode"
)

// RegisterRoutes mounts section endpoints under /api/sections. Reads are
// public; mutations require an active edit-mode session.
func RegisterRoutes(r chi.Router, registry *Registry, session *editmode.Session) {
	r.Route("/api/sections", func(r chi.Router) {
		r.Get("/", handleListSections(registry))
		r.Route("/{section}", func(r chi.Router) {
			r.Get("/", handleList(registry))
			r.Post("/", requireEditMode(session, handleAdd(registry)))
			r.Patch("/{id}", requireEditMode(session, handleUpdate(registry)))
			r.Delete("/{id}", requireEditMode(session, handleRemove(registry)))
		})
	})
}

func requireEditMode(session *editmode.Session, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !session.EditMode() {
			http.Error(w, "edit mode is off", http.StatusForbidden)
			return
		}
		next(w, r)
	}
}

func lookup(registry *Registry, w http.ResponseWriter, r *http.Request) (Section, bool) {
	name := chi.URLParam(r, "section")
	s, ok := registry.Get(name)
	if !ok {
		http.Error(w, "unknown section", http.StatusNotFound)
		return nil, false
	}
	return s, true
}

func handleListSections(registry *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, registry.Names())
	}
}

func handleList(registry *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := lookup(registry, w, r)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, s.Items(r.Context()))
	}
}

func handleAdd(registry *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := lookup(registry, w, r)
		if !ok {
			return
		}
		item, err := s.AddItem(r.Context())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusCreated, item)
	}
}

func handleUpdate(registry *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := lookup(registry, w, r)
		if !ok {
			return
		}

		var body struct {
			Field string `json:"field"`
			Value string `json:"value"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		// An unknown id or field is a no-op by contract, not an error.
		if err := s.UpdateItem(r.Context(), chi.URLParam(r, "id"), body.Field, body.Value); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, s.Items(r.Context()))
	}
}

func handleRemove(registry *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := lookup(registry, w, r)
		if !ok {
			return
		}
		if err := s.RemoveItem(r.Context(), chi.URLParam(r, "id")); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, s.Items(r.Context()))
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
