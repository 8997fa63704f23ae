package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRemoteAnswerStreams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("authorization = %q", got)
		}

		var req completionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decoding request: %v", err)
		}
		if !req.Stream {
			t.Error("stream flag should be set")
		}
		if len(req.Messages) == 0 || req.Messages[0].Role != RoleSystem {
			t.Error("first message should be the system instruction")
		}
		if !strings.Contains(req.Messages[0].Content, "Sai Rishi Kumar Vedi") {
			t.Error("system instruction should embed the knowledge base")
		}

		w.Header().Set("Content-Type", "text/event-stream")
		flusher := w.(http.Flusher)
		for _, frame := range []string{
			`data: {"choices":[{"delta":{"content":"Hel"}}]}`,
			`data: {"choices":[{"delta":{"content":"lo!"}}]}`,
			"data: [DONE]",
		} {
			w.Write([]byte(frame + "\n\n"))
			flusher.Flush()
		}
	}))
	defer srv.Close()

	e := NewRemoteEngine(srv.URL, "test-key", "gpt-4o-mini", DefaultKnowledgeBase())
	chunks, err := e.Answer(context.Background(), []Message{
		{Role: RoleUser, Content: "hi"},
	})
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}

	var got []string
	for c := range chunks {
		got = append(got, c)
	}
	if strings.Join(got, "") != "Hello!" {
		t.Errorf("chunks = %v, want Hel + lo!", got)
	}
}

func TestRemoteAnswerSplitFrame(t *testing.T) {
	// One JSON frame arrives in two flushes. The first half has no newline,
	// so the reader must hold it until the rest shows up.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		flusher := w.(http.Flusher)
		w.Write([]byte(`data: {"choices":[{"delta":{"content":"whole`))
		flusher.Flush()
		w.Write([]byte("\"}}]}\n\ndata: [DONE]\n\n"))
		flusher.Flush()
	}))
	defer srv.Close()

	e := NewRemoteEngine(srv.URL, "k", "m", DefaultKnowledgeBase())
	chunks, err := e.Answer(context.Background(), nil)
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}

	var got string
	for c := range chunks {
		got += c
	}
	if got != "whole" {
		t.Errorf("got %q, want the reassembled frame content", got)
	}
}

func TestRemoteAnswerStopsAtSentinel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		w.Write([]byte("data: {\"choices\":[{\"delta\":{\"content\":\"before\"}}]}\n\n" +
			"data: [DONE]\n\n" +
			"data: {\"choices\":[{\"delta\":{\"content\":\"after\"}}]}\n\n"))
	}))
	defer srv.Close()

	e := NewRemoteEngine(srv.URL, "k", "m", DefaultKnowledgeBase())
	chunks, err := e.Answer(context.Background(), nil)
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}

	var got string
	for c := range chunks {
		got += c
	}
	if got != "before" {
		t.Errorf("got %q, nothing past the done sentinel should be emitted", got)
	}
}

func TestRemoteAnswerGatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	e := NewRemoteEngine(srv.URL, "k", "m", DefaultKnowledgeBase())
	if _, err := e.Answer(context.Background(), nil); err == nil {
		t.Fatal("expected an error for a non-200 response")
	} else if !strings.Contains(err.Error(), "429") {
		t.Errorf("error should carry the status code, got %v", err)
	}
}

func TestRemoteAnswerUnreachable(t *testing.T) {
	e := NewRemoteEngine("http://127.0.0.1:1/v1/chat", "k", "m", DefaultKnowledgeBase())
	if _, err := e.Answer(context.Background(), nil); err == nil {
		t.Fatal("expected a connection error")
	}
}
