package sections

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/rishi-212005/portfolio-server/internal/content"
)

// Item is any collection record with a unique string id.
type Item interface {
	ItemID() string
}

// Editor applies the uniform add/update/remove contract to one ordered
// collection, persisting the whole collection to its content key after every
// operation. Ordering is insertion order: add appends, remove filters in
// place.
type Editor[T Item] struct {
	store    *content.Store
	name     string
	defaults []T
	newItem  func(id string) T
	setField func(item *T, field, value string) bool
}

// NewEditor creates an editor for the collection stored under
// portfolio_<name>. newItem builds a freshly-added item's default field
// values; setField applies one named field to an item, returning false for
// an unrecognized field name.
func NewEditor[T Item](store *content.Store, name string, defaults []T, newItem func(id string) T, setField func(item *T, field, value string) bool) *Editor[T] {
	return &Editor[T]{
		store:    store,
		name:     name,
		defaults: defaults,
		newItem:  newItem,
		setField: setField,
	}
}

// Name returns the collection's section name.
func (e *Editor[T]) Name() string { return e.name }

// Key returns the collection's durable storage key.
func (e *Editor[T]) Key() string { return content.Key(e.name) }

// List returns the current collection, falling back to the seed defaults
// when nothing has been stored yet.
func (e *Editor[T]) List(ctx context.Context) []T {
	return content.Get(ctx, e.store, e.Key(), e.seedCopy())
}

// seedCopy deep-copies the seed defaults. Callers mutate the returned items
// in place, so handing out the shared seed slice would let the first edit of
// a never-stored collection rewrite the seeds for the whole process.
func (e *Editor[T]) seedCopy() []T {
	b, err := json.Marshal(e.defaults)
	if err != nil {
		return nil
	}
	var out []T
	if err := json.Unmarshal(b, &out); err != nil {
		return nil
	}
	return out
}

// Add appends one new item with a fresh id and the section's default field
// values, then persists the whole collection.
func (e *Editor[T]) Add(ctx context.Context) (T, error) {
	item := e.newItem(uuid.New().String())
	items := append(e.List(ctx), item)
	if err := content.Set(ctx, e.store, e.Key(), items); err != nil {
		var zero T
		return zero, err
	}
	return item, nil
}

// Update replaces exactly the one field of the one item whose id matches.
// An absent id or an unrecognized field leaves the collection unchanged and
// is not an error.
func (e *Editor[T]) Update(ctx context.Context, id, field, value string) error {
	items := e.List(ctx)
	for i := range items {
		if items[i].ItemID() != id {
			continue
		}
		if !e.setField(&items[i], field, value) {
			return nil
		}
		return content.Set(ctx, e.store, e.Key(), items)
	}
	return nil
}

// Remove filters out the one item whose id matches. An absent id is a no-op.
func (e *Editor[T]) Remove(ctx context.Context, id string) error {
	items := e.List(ctx)
	kept := items[:0:0]
	for _, it := range items {
		if it.ItemID() != id {
			kept = append(kept, it)
		}
	}
	if len(kept) == len(items) {
		return nil
	}
	return content.Set(ctx, e.store, e.Key(), kept)
}

// Section is the type-erased editor surface the routes dispatch on.
type Section interface {
	Name() string
	Items(ctx context.Context) any
	AddItem(ctx context.Context) (any, error)
	UpdateItem(ctx context.Context, id, field, value string) error
	RemoveItem(ctx context.Context, id string) error
}

func (e *Editor[T]) Items(ctx context.Context) any { return e.List(ctx) }

func (e *Editor[T]) AddItem(ctx context.Context) (any, error) { return e.Add(ctx) }

func (e *Editor[T]) UpdateItem(ctx context.Context, id, field, value string) error {
	return e.Update(ctx, id, field, value)
}

func (e *Editor[T]) RemoveItem(ctx context.Context, id string) error {
	return e.Remove(ctx, id)
}

// Registry holds every section editor, keyed by section name.
type Registry struct {
	sections map[string]Section
	order    []string
}

// NewRegistry builds the full set of section editors over one content store.
func NewRegistry(store *content.Store) *Registry {
	r := &Registry{sections: make(map[string]Section)}
	for _, s := range []Section{
		newProjectEditor(store),
		newExperienceEditor(store),
		newEducationEditor(store),
		newCertificationEditor(store),
		newAchievementEditor(store),
		newSkillBarEditor(store),
		newTechStackEditor(store),
		newHighlightEditor(store),
	} {
		r.sections[s.Name()] = s
		r.order = append(r.order, s.Name())
	}
	return r
}

// Get returns the editor for a section name.
func (r *Registry) Get(name string) (Section, bool) {
	s, ok := r.sections[name]
	return s, ok
}

// Names returns all section names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}
