package chat

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the chat endpoint. The handler accepts the visitor's
// message history and re-emits the engine's answer as a server-sent event
// stream in the same delta format the browser already parses.
func RegisterRoutes(r chi.Router, engine Engine) {
	r.Route("/api/chat", func(r chi.Router) {
		r.Post("/", handleChat(engine))
	})
}

type chatRequest struct {
	Messages []Message `json:"messages"`
}

func handleChat(engine Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if len(req.Messages) == 0 {
			writeError(w, http.StatusBadRequest, "messages are required")
			return
		}

		flusher, ok := w.(http.Flusher)
		if !ok {
			writeError(w, http.StatusInternalServerError, "streaming unsupported")
			return
		}

		chunks, err := engine.Answer(r.Context(), req.Messages)
		if err != nil {
			log.Printf("chat: engine %s failed: %v", engine.Name(), err)
			writeError(w, http.StatusBadGateway, "chat engine unavailable")
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.WriteHeader(http.StatusOK)

		for chunk := range chunks {
			payload, err := json.Marshal(map[string]any{
				"choices": []map[string]any{
					{"delta": map[string]string{"content": chunk}},
				},
			})
			if err != nil {
				log.Printf("chat: encoding chunk: %v", err)
				return
			}
			fmt.Fprintf(w, "%s%s\n\n", dataPrefix, payload)
			flusher.Flush()
		}

		fmt.Fprintf(w, "%s%s\n\n", dataPrefix, doneSentinel)
		flusher.Flush()
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]string{"error": msg}); err != nil {
		log.Printf("writing error response: %v", err)
	}
}
