package chat

import (
	"encoding/json"
	"strings"
)

// dataPrefix marks an event line; doneSentinel ends the stream.
const (
	dataPrefix   = "data: "
	doneSentinel = "[DONE]"
)

// LineBuffer reassembles newline-delimited event-stream lines from arbitrary
// network chunks. A line that fails to parse downstream is requeued so the
// next chunk can complete it; a partial JSON frame split across two reads is
// therefore never dropped. Byte order is preserved exactly.
type LineBuffer struct {
	pending string
}

// Feed appends a raw chunk to the pending buffer.
func (b *LineBuffer) Feed(chunk string) {
	b.pending += chunk
}

// ConsumeLine pops the next complete line, stripping the trailing \n and an
// optional \r. It returns false when no full line is buffered yet.
func (b *LineBuffer) ConsumeLine() (string, bool) {
	i := strings.Index(b.pending, "\n")
	if i < 0 {
		return "", false
	}
	line := b.pending[:i]
	b.pending = b.pending[i+1:]
	line = strings.TrimSuffix(line, "\r")
	return line, true
}

// Requeue pushes an unparsable line back to the front of the buffer so it is
// reassembled with the next chunk.
func (b *LineBuffer) Requeue(line string) {
	b.pending = line + "\n" + b.pending
}

// Pending returns the unconsumed tail, for tests.
func (b *LineBuffer) Pending() string {
	return b.pending
}

// streamEvent is one decoded SSE frame in the OpenAI-compatible chat
// completion format.
type streamEvent struct {
	Choices []struct {
		Delta struct {
			Content string `json:"content"`
		} `json:"delta"`
	} `json:"choices"`
}

// decodeEventLine interprets one stream line. done reports the end-of-stream
// sentinel; ok is false for non-event lines (comments, keep-alives), which
// are skipped; err means the payload did not parse and the caller should
// requeue the line.
func decodeEventLine(line string) (content string, done, ok bool, err error) {
	if !strings.HasPrefix(line, dataPrefix) {
		return "", false, false, nil
	}
	payload := strings.TrimSpace(strings.TrimPrefix(line, dataPrefix))
	if payload == doneSentinel {
		return "", true, true, nil
	}

	var ev streamEvent
	if err := json.Unmarshal([]byte(payload), &ev); err != nil {
		return "", false, false, err
	}
	if len(ev.Choices) > 0 {
		content = ev.Choices[0].Delta.Content
	}
	return content, false, true, nil
}
