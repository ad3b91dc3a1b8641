// Package kv defines the key-value persistence contract: logical keys
// mapping to JSON-encoded typed collections. The same repositories run
// unchanged against the in-memory and PostgreSQL implementations.
package kv

import (
	"context"

	"github.com/go-faster/errors"
)

// ErrKeyNotFound is returned by Get when the key has never been written.
var ErrKeyNotFound = errors.New("key not found")

// Store is a typed key-value store. Values are JSON-encoded whole
// collections; writes replace the previous value (last write wins, no
// version checks).
type Store interface {
	// Get decodes the value under key into dest.
	Get(ctx context.Context, key string, dest any) error
	// Put encodes value and stores it under key, replacing any prior value.
	Put(ctx context.Context, key string, value any) error
	// Delete removes the key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
