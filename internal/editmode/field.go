package editmode

import (
	"context"
	"errors"
	"fmt"

	"github.com/rishi-212005/portfolio-server/internal/content"
)

// ErrEditModeOff is returned by Apply when no editing session is active.
var ErrEditModeOff = errors.New("edit mode is off")

// ErrUnknownField is returned for a field name with no binding.
var ErrUnknownField = errors.New("unknown field")

// Field binds one editable text node to a record field under a content key.
// Reads are always allowed and fall back to the default; writes go through
// Apply and are gated on the edit-mode session. Multiline only controls which
// input control the client renders, never the stored value.
type Field struct {
	Name      string `json:"name"`      // binding name, e.g. "contact.email"
	Key       string `json:"key"`       // content key, e.g. "contact"
	RecordKey string `json:"record_key"`
	Default   string `json:"default"`
	Multiline bool   `json:"multiline"`
}

// Registry holds all field bindings and the per-key default records they
// assemble into.
type Registry struct {
	session  *Session
	store    *content.Store
	fields   map[string]Field
	order    []string
	defaults map[string]map[string]string
}

// NewRegistry creates a registry over the given bindings.
func NewRegistry(session *Session, store *content.Store, fields []Field) *Registry {
	r := &Registry{
		session:  session,
		store:    store,
		fields:   make(map[string]Field, len(fields)),
		defaults: make(map[string]map[string]string),
	}
	for _, f := range fields {
		r.fields[f.Name] = f
		r.order = append(r.order, f.Name)
		if r.defaults[f.Key] == nil {
			r.defaults[f.Key] = make(map[string]string)
		}
		r.defaults[f.Key][f.RecordKey] = f.Default
	}
	return r
}

// Fields returns all bindings in registration order.
func (r *Registry) Fields() []Field {
	out := make([]Field, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.fields[name])
	}
	return out
}

// Value reads the current value of a binding. Missing or unparsable stored
// records yield the binding's default.
func (r *Registry) Value(ctx context.Context, name string) (string, error) {
	f, ok := r.fields[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	rec := content.Get(ctx, r.store, content.Key(f.Key), r.defaults[f.Key])
	if v, ok := rec[f.RecordKey]; ok {
		return v, nil
	}
	return f.Default, nil
}

// Apply persists a new value for a binding. Each call is a whole-record
// read-modify-write under the binding's key, committed immediately: there is
// no draft state, so a mid-edit toggle-off can never lose changes.
func (r *Registry) Apply(ctx context.Context, name, value string) error {
	f, ok := r.fields[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	if !r.session.EditMode() {
		return ErrEditModeOff
	}

	stored := content.Get(ctx, r.store, content.Key(f.Key), map[string]string(nil))
	if stored == nil {
		stored = r.defaults[f.Key]
	}
	// Write into a copy: assigning through the shared default map would
	// silently rewrite the registry's fallback values.
	rec := make(map[string]string, len(stored)+1)
	for k, v := range stored {
		rec[k] = v
	}
	rec[f.RecordKey] = value
	return content.Set(ctx, r.store, content.Key(f.Key), rec)
}

// DefaultFields returns the site's editable text bindings with their seed
// content.
func DefaultFields() []Field {
	return []Field{
		{Name: "hero.name", Key: "hero", RecordKey: "name", Default: "Sai Rishi Kumar Vedi"},
		{Name: "hero.tagline", Key: "hero", RecordKey: "tagline", Default: "Full Stack Developer & Software Engineer Intern"},
		{Name: "about.bio", Key: "about", RecordKey: "bio", Multiline: true, Default: "I am a passionate Full Stack Web Developer and Software Engineer Intern with experience building secure, database-driven web applications using React, Node.js, PHP, and MySQL. I worked at the National Informatics Centre contributing to e-Governance systems, implementing authentication and role-based access control. I am deeply interested in cybersecurity and secure system design."},
		{Name: "contact.intro", Key: "contact", RecordKey: "intro", Multiline: true, Default: "I'm always open to discussing new projects, creative ideas, or opportunities to be part of your vision."},
		{Name: "contact.email", Key: "contact", RecordKey: "email", Default: "Sairishikumar.2005@gmail.com"},
		{Name: "contact.phone", Key: "contact", RecordKey: "phone", Default: "+91 9390455681"},
		{Name: "contact.location", Key: "contact", RecordKey: "location", Default: "Anantapur, India"},
		{Name: "contact.github", Key: "contact", RecordKey: "github", Default: "https://github.com"},
		{Name: "contact.linkedin", Key: "contact", RecordKey: "linkedin", Default: "https://linkedin.com"},
	}
}
