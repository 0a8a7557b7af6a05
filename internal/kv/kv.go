// Package kv contains the persistence boundary for the TripSync backend: a
// durable key→value store with JSON-encoded values. Entity stores write full
// collections through on every mutation (no deltas) and read them back once
// at first access, so the adapter is last-write-wins and holds no state of
// its own beyond the most recent snapshot per key.
//
// Each backend lives in its own file with a constructor; no business logic
// lives here — only storage and type mapping.
package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNoRecord is returned by Get when no value has ever been saved under the
// key. Callers treat it as "start from an empty collection", never a failure.
var ErrNoRecord = errors.New("no record")

// Store is the key-value boundary every entity store writes through.
// Implementations must be safe for concurrent use.
type Store interface {
	// Get returns the last value saved under key, or ErrNoRecord.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put replaces the value under key. The write must be atomic: readers
	// never observe a partially written value.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes the record under key. Deleting an absent key is a no-op.
	Delete(ctx context.Context, key string) error
}

// GetJSON loads and decodes the record under key into a T.
// Returns ErrNoRecord untouched so callers can fall back to an empty value.
func GetJSON[T any](ctx context.Context, s Store, key string) (T, error) {
	var v T
	raw, err := s.Get(ctx, key)
	if err != nil {
		return v, err
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, fmt.Errorf("kv.GetJSON: decode %q: %w", key, err)
	}
	return v, nil
}

// PutJSON encodes v and saves it under key.
func PutJSON(ctx context.Context, s Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("kv.PutJSON: encode %q: %w", key, err)
	}
	if err := s.Put(ctx, key, raw); err != nil {
		return fmt.Errorf("kv.PutJSON: put %q: %w", key, err)
	}
	return nil
}
