package storage

import "context"

// KVStorage is the lowest storage layer of the client: it keeps opaque
// serialized values under string keys and knows nothing about their shape.
// Encoding and decoding happen one layer up, in persist.Mirror.
type KVStorage interface {
	// Get returns the raw value stored under key.
	// Returns ErrKeyNotFound if nothing was stored yet.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error

	// Close releases the underlying medium. Calling Close twice is allowed.
	Close() error
}
