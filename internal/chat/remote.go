package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// RemoteEngine delegates answering to an OpenAI-compatible chat completion
// gateway, streaming the reply token by token. The knowledge base travels as
// a fixed system instruction prepended to the visitor's history.
type RemoteEngine struct {
	url    string
	apiKey string
	model  string
	system string
	client *http.Client
}

// NewRemoteEngine creates a remote engine for the given gateway.
func NewRemoteEngine(url, apiKey, model string, kb KnowledgeBase) *RemoteEngine {
	return &RemoteEngine{
		url:    url,
		apiKey: apiKey,
		model:  model,
		system: kb.SystemPrompt(),
		client: &http.Client{},
	}
}

func (e *RemoteEngine) Name() string { return "remote" }

type completionRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
	Stream   bool      `json:"stream"`
}

// Answer forwards the history to the gateway and streams delta content from
// the SSE response. There is no timeout and no cancellation beyond ctx: a
// hung connection holds the stream open until the transport gives up.
func (e *RemoteEngine) Answer(ctx context.Context, history []Message) (<-chan string, error) {
	reqBody := completionRequest{
		Model:    e.model,
		Messages: append([]Message{{Role: RoleSystem, Content: e.system}}, history...),
		Stream:   true,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshalling chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+e.apiKey)

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("chat request failed: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("chat gateway returned status %d: %s", resp.StatusCode, string(msg))
	}

	out := make(chan string)
	go func() {
		defer close(out)
		defer resp.Body.Close()

		var buf LineBuffer
		chunk := make([]byte, 4096)
		for {
			n, readErr := resp.Body.Read(chunk)
			if n > 0 {
				buf.Feed(string(chunk[:n]))
				if done := drainLines(ctx, &buf, out); done {
					return
				}
			}
			if readErr != nil {
				// Connection closed; anything still pending was an
				// incomplete frame we can no longer finish.
				return
			}
		}
	}()
	return out, nil
}

// drainLines emits the content of every complete event currently buffered.
// An unparsable payload is requeued and draining stops until more bytes
// arrive. Returns true once the done sentinel was seen.
func drainLines(ctx context.Context, buf *LineBuffer, out chan<- string) bool {
	for {
		line, ok := buf.ConsumeLine()
		if !ok {
			return false
		}

		content, done, ok, err := decodeEventLine(line)
		if err != nil {
			buf.Requeue(line)
			return false
		}
		if !ok {
			continue
		}
		if done {
			return true
		}
		if content == "" {
			continue
		}

		select {
		case out <- content:
		case <-ctx.Done():
			return true
		}
	}
}
