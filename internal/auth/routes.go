package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	IsAdmin bool `json:"is_admin"`
}

// RegisterRoutes mounts auth endpoints under /api/auth on the given router.
func RegisterRoutes(r chi.Router, gate *Gate) {
	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/signin", handleSignIn(gate))
		r.Post("/signout", handleSignOut(gate))
		r.Get("/session", handleSession(gate))
	})
}

func handleSignIn(gate *Gate) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var creds credentials
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		if err := gate.SignIn(r.Context(), creds.Email, creds.Password); err != nil {
			if errors.Is(err, ErrInvalidCredentials) {
				writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Invalid credentials"})
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, sessionResponse{IsAdmin: true})
	}
}

func handleSignOut(gate *Gate) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gate.SignOut(r.Context())
		writeJSON(w, http.StatusOK, sessionResponse{IsAdmin: false})
	}
}

func handleSession(gate *Gate) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, sessionResponse{IsAdmin: gate.IsAdmin()})
	}
}

// RequireAdmin wraps a handler, rejecting requests when no admin session is
// active.
func RequireAdmin(gate *Gate, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !gate.IsAdmin() {
			http.Error(w, "admin session required", http.StatusForbidden)
			return
		}
		next(w, r)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
