package content

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rishi-212005/portfolio-server/internal/db"
)

// Prefix namespaces every portfolio content key. The admin session flag is
// the one deliberately unprefixed key (see internal/auth).
const Prefix = "portfolio_"

// Key returns the durable storage key for a named piece of content.
func Key(name string) string {
	return Prefix + name
}

// Store is the keyed JSON content store backing all editable content.
// Values are whole JSON documents: Set replaces the entire value under a key,
// there is no partial merge.
type Store struct {
	db *db.DB
}

// NewStore creates a content store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// getRaw returns the raw stored JSON for a key. The second return is false
// when the key is absent or the read fails.
func (s *Store) getRaw(ctx context.Context, key string) (string, bool) {
	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM content WHERE key = ?`, key).Scan(&raw)
	if err != nil {
		return "", false
	}
	return raw, true
}

// setRaw upserts the raw JSON for a key.
func (s *Store) setRaw(ctx context.Context, key, raw string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO content (key, value, updated_at) VALUES (?, ?, datetime('now'))
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, raw,
	)
	if err != nil {
		return fmt.Errorf("writing content key %q: %w", key, err)
	}
	return nil
}

// Delete removes a key. Deleting an absent key is a no-op.
func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM content WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("deleting content key %q: %w", key, err)
	}
	return nil
}

// Has reports whether a key currently holds a value.
func (s *Store) Has(ctx context.Context, key string) bool {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM content WHERE key = ?`, key).Scan(&n)
	return err == nil && n > 0
}

// Keys returns all stored keys, for admin inspection.
func (s *Store) Keys(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key FROM content ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("listing content keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("scanning content key: %w", err)
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

// Get reads the value stored under key into a value of type T. It never
// fails: a missing key, a read error, or malformed stored JSON all yield the
// caller-supplied fallback, and nothing is written back.
func Get[T any](ctx context.Context, s *Store, key string, fallback T) T {
	raw, ok := s.getRaw(ctx, key)
	if !ok {
		return fallback
	}
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return fallback
	}
	return v
}

// Set serializes value as JSON and persists it under key, replacing any
// previous value. Unlike Get, write failures are surfaced to the caller.
func Set[T any](ctx context.Context, s *Store, key string, value T) error {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshalling content key %q: %w", key, err)
	}
	return s.setRaw(ctx, key, string(b))
}
