package persist

import (
	"context"
	"sync"
)

// Value keeps one in-memory value mirrored under one storage key.
// Every Set or Update replaces the value and performs exactly one write.
type Value[T any] struct {
	mirror    *Mirror
	codec     Codec[T]
	value     T
	listeners map[int]func(T)
	key       string
	nextID    int
	mu        sync.Mutex
}

// NewValue creates a Value and performs the single initial read.
func NewValue[T any](ctx context.Context, mirror *Mirror, key string, def T, codec Codec[T]) *Value[T] {
	return &Value[T]{
		mirror:    mirror,
		codec:     codec,
		key:       key,
		value:     Read(ctx, mirror, key, def, codec),
		listeners: make(map[int]func(T)),
	}
}

// Key returns the storage key the value is mirrored under
func (v *Value[T]) Key() string {
	return v.key
}

// Get returns the current in-memory value
func (v *Value[T]) Get() T {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.value
}

// Set replaces the value and mirrors it
func (v *Value[T]) Set(ctx context.Context, next T) {
	v.Update(ctx, func(T) T { return next })
}

// Update replaces the value with fn(previous) and mirrors it.
// fn must not call back into the same Value.
func (v *Value[T]) Update(ctx context.Context, fn func(prev T) T) {
	v.mu.Lock()
	next := fn(v.value)
	v.value = next
	Write(ctx, v.mirror, v.key, next, v.codec)
	listeners := make([]func(T), 0, len(v.listeners))
	for _, l := range v.listeners {
		listeners = append(listeners, l)
	}
	v.mu.Unlock()

	for _, l := range listeners {
		l(next)
	}
}

// Subscribe registers fn to be called with the new value after every change.
// The returned function removes the subscription.
func (v *Value[T]) Subscribe(fn func(T)) func() {
	v.mu.Lock()
	defer v.mu.Unlock()

	id := v.nextID
	v.nextID++
	v.listeners[id] = fn

	return func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		delete(v.listeners, id)
	}
}
