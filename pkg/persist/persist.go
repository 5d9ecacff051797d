// Package persist implements the persistence medium for diagram documents.
//
// # Overview
//
// The serialized document is stored under one well-known key in a key/value
// store. The [KV] interface abstracts the medium; implementations exist for
// the local filesystem ([FileKV]), memory ([MemoryKV]), Redis ([RedisKV]),
// MongoDB ([MongoKV]), and a no-op ([NullKV]) for disabling persistence.
//
// # Coalescing
//
// Interactive editing produces high-frequency mutations, so writes go
// through a [Writer]: a cancellable scheduled task where resubmission
// cancels and reschedules, collapsing bursts into a single deferred
// last-state-wins write.
//
// # Degradation
//
// Storage failures never propagate into interactive operations. The first
// failed write latches the writer into degraded in-memory-only mode and
// suppresses further attempts rather than retrying in a loop; the worst
// outcome is an unpersisted session, never corruption.
package persist

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

// DocumentKey is the well-known key the editor stores its document under.
const DocumentKey = "flowcanvas:document"

// Sentinel errors for persistence operations.
var (
	// ErrNotFound is returned when a requested key does not exist.
	ErrNotFound = errors.New("not found")

	// ErrClosed is returned when an operation is attempted on a closed store.
	ErrClosed = errors.New("store closed")
)

// KV is the interface to the persistence medium: a key/value store holding
// serialized payloads.
type KV interface {
	// Get retrieves the value for key.
	// Returns ok=false with a nil error when the key doesn't exist.
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)

	// Set stores a value under key, replacing any previous value.
	Set(ctx context.Context, key string, data []byte) error

	// Delete removes a key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the store.
	Close() error
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
