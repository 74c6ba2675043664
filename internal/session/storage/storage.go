// Package storage holds the key-value boundary the session record is
// persisted through. Absence of the key is a first-class result, never an
// error, so callers can treat a missing record as "signed out".
package storage

import "context"

// Recorder stores one opaque record per key.
type Recorder interface {
	// Get returns the record and true when present.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	// Remove deletes the record; removing an absent key is a no-op.
	Remove(ctx context.Context, key string) error
}
