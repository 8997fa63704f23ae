package editmode

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type stateResponse struct {
	EditMode bool `json:"edit_mode"`
}

type fieldResponse struct {
	Name      string `json:"name"`
	Value     string `json:"value"`
	Multiline bool   `json:"multiline"`
}

// RegisterRoutes mounts edit-mode and editable-field endpoints.
func RegisterRoutes(r chi.Router, session *Session, registry *Registry) {
	r.Route("/api/editmode", func(r chi.Router) {
		r.Get("/", handleState(session))
		r.Post("/toggle", handleToggle(session))
	})
	r.Route("/api/fields", func(r chi.Router) {
		r.Get("/", handleListFields(registry))
		r.Get("/{name}", handleGetField(registry))
		r.Put("/{name}", handleApplyField(registry))
	})
}

func handleState(session *Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, stateResponse{EditMode: session.EditMode()})
	}
}

func handleToggle(session *Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// A non-admin toggle is a silent no-op, not an error.
		writeJSON(w, http.StatusOK, stateResponse{EditMode: session.Toggle()})
	}
}

func handleListFields(registry *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fields := registry.Fields()
		out := make([]fieldResponse, 0, len(fields))
		for _, f := range fields {
			v, err := registry.Value(r.Context(), f.Name)
			if err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			out = append(out, fieldResponse{Name: f.Name, Value: v, Multiline: f.Multiline})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func handleGetField(registry *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		v, err := registry.Value(r.Context(), name)
		if err != nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		f := registry.fields[name]
		writeJSON(w, http.StatusOK, fieldResponse{Name: name, Value: v, Multiline: f.Multiline})
	}
}

func handleApplyField(registry *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")

		var body struct {
			Value string `json:"value"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		err := registry.Apply(r.Context(), name, body.Value)
		switch {
		case errors.Is(err, ErrUnknownField):
			http.Error(w, "not found", http.StatusNotFound)
		case errors.Is(err, ErrEditModeOff):
			http.Error(w, "edit mode is off", http.StatusForbidden)
		case err != nil:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		default:
			writeJSON(w, http.StatusOK, fieldResponse{Name: name, Value: body.Value, Multiline: registry.fields[name].Multiline})
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
