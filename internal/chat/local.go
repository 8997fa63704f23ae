package chat

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// FallbackAnswer is returned when no topic predicate matches the question.
const FallbackAnswer = "I'm not sure about that one! Ask me about Rishi's skills, projects, education, achievements, or how to reach him."

// LocalEngine answers questions by keyword-matching them against the static
// knowledge base. Respond is a pure function of the question text, so every
// answer is deterministic and needs no network.
type LocalEngine struct {
	kb    KnowledgeBase
	delay time.Duration
}

// NewLocalEngine creates a local engine. delay paces the streamed answer for
// UI feel only; correctness never depends on it.
func NewLocalEngine(kb KnowledgeBase, delay time.Duration) *LocalEngine {
	return &LocalEngine{kb: kb, delay: delay}
}

func (e *LocalEngine) Name() string { return "local" }

// Respond maps a question to a canned answer. Topic predicates run in a
// fixed priority order and the first match wins; nothing falls through to a
// later predicate.
func (e *LocalEngine) Respond(question string) string {
	q := strings.ToLower(question)
	contains := func(keywords ...string) bool {
		for _, k := range keywords {
			if strings.Contains(q, k) {
				return true
			}
		}
		return false
	}

	switch {
	case contains("nic", "intern"):
		return e.kb.Internship
	case contains("skill"):
		return fmt.Sprintf("Rishi's core skills are %s. He is especially interested in %s.",
			strings.Join(e.kb.Skills, ", "), strings.Join(e.kb.Interests, ", "))
	case contains("project", "portfolio", "build"):
		return e.projectAnswer(q)
	case contains("education", "college", "b.tech"):
		return "Rishi is pursuing a " + strings.Join(e.kb.Education, ". Before that: ") + "."
	case contains("achievement", "award", "jee"):
		return "A few highlights: " + strings.Join(e.kb.Achievements, "; ") + "."
	case contains("contact", "email", "reach"):
		return fmt.Sprintf("You can reach Rishi at %s or %s. He is based in %s.", e.kb.Email, e.kb.Phone, e.kb.Location)
	default:
		return FallbackAnswer
	}
}

// projectAnswer lists projects, narrowed to a technology when the question
// names one.
func (e *LocalEngine) projectAnswer(q string) string {
	var matched []ProjectFact
	for _, p := range e.kb.Projects {
		for _, tech := range p.Tech {
			if strings.Contains(q, strings.ToLower(tech)) {
				matched = append(matched, p)
				break
			}
		}
	}

	projects := e.kb.Projects
	intro := "Rishi has built 10+ projects. Some favorites:"
	if len(matched) > 0 {
		projects = matched
		intro = "Projects matching that technology:"
	}

	var lines []string
	for _, p := range projects {
		lines = append(lines, fmt.Sprintf("%s — %s", p.Title, p.Description))
	}
	return intro + " " + strings.Join(lines, "; ") + "."
}

// Answer streams the canned response as a single chunk after the configured
// delay.
func (e *LocalEngine) Answer(ctx context.Context, history []Message) (<-chan string, error) {
	question := ""
	if len(history) > 0 {
		question = history[len(history)-1].Content
	}
	answer := e.Respond(question)

	out := make(chan string, 1)
	go func() {
		defer close(out)
		if e.delay > 0 {
			select {
			case <-time.After(e.delay):
			case <-ctx.Done():
				return
			}
		}
		select {
		case out <- answer:
		case <-ctx.Done():
		}
	}()
	return out, nil
}
