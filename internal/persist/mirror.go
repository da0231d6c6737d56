// Package persist mirrors in-memory values to a storage.KVStorage.
//
// Storage problems never reach the caller: a failed read yields the
// caller-supplied default, a failed write leaves the previously stored bytes
// untouched. Both are logged. Each key is mirrored on its own, there is no
// transaction spanning several keys.
package persist

import (
	"context"
	"errors"
	"log/slog"

	"github.com/iudanet/fiches/internal/storage"
)

// Mirror wraps a key-value medium with fallback-on-failure semantics.
type Mirror struct {
	storage storage.KVStorage
	logger  *slog.Logger
}

// NewMirror creates a Mirror over s. A nil logger means slog.Default().
func NewMirror(s storage.KVStorage, logger *slog.Logger) *Mirror {
	if logger == nil {
		logger = slog.Default()
	}
	return &Mirror{
		storage: s,
		logger:  logger,
	}
}

// Read loads and decodes the value stored under key. Any failure (missing
// key, unreadable medium, undecodable content) returns def.
func Read[T any](ctx context.Context, m *Mirror, key string, def T, codec Codec[T]) T {
	data, err := m.storage.Get(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			m.logger.DebugContext(ctx, "no stored value, using default", "key", key)
		} else {
			m.logger.ErrorContext(ctx, "failed to load stored value", "key", key, "error", err)
		}
		return def
	}

	value, err := codec.Decode(data)
	if err != nil {
		m.logger.ErrorContext(ctx, "failed to decode stored value", "key", key, "error", err)
		return def
	}

	return value
}

// Write encodes value and stores it under key. Failures are logged only.
func Write[T any](ctx context.Context, m *Mirror, key string, value T, codec Codec[T]) {
	data, err := codec.Encode(value)
	if err != nil {
		m.logger.ErrorContext(ctx, "failed to encode value", "key", key, "error", err)
		return
	}

	if err := m.storage.Put(ctx, key, data); err != nil {
		m.logger.ErrorContext(ctx, "failed to save value", "key", key, "error", err)
		return
	}

	m.logger.DebugContext(ctx, "value saved", "key", key, "bytes", len(data))
}
