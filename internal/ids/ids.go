// Package ids generates fiche identifiers.
package ids

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Supported id schemes
const (
	SchemeTimestamp = "timestamp"
	SchemeUUID      = "uuid"
)

// Generator issues new unique identifiers
type Generator interface {
	NewID() string
	// Observe tells the generator about an id already in use
	Observe(id string)
}

// New returns the generator for scheme. now may be nil (time.Now).
func New(scheme string, now func() time.Time) (Generator, error) {
	switch scheme {
	case "", SchemeTimestamp:
		return NewTimestampGenerator(now), nil
	case SchemeUUID:
		return UUIDGenerator{}, nil
	default:
		return nil, fmt.Errorf("unknown id scheme %q", scheme)
	}
}

// TimestampGenerator выдаёт идентификаторы из миллисекунд wall-clock.
// Счётчик монотонный: если часы не ушли вперёд
// (или ушли назад), берётся последнее значение + 1, по аналогии с часами Лампорта.
type TimestampGenerator struct {
	now  func() time.Time
	last int64 // последний выданный или замеченный идентификатор
	mu   sync.Mutex
}

// NewTimestampGenerator creates a generator reading the given clock
func NewTimestampGenerator(now func() time.Time) *TimestampGenerator {
	if now == nil {
		now = time.Now
	}
	return &TimestampGenerator{now: now}
}

// NewID returns the current millisecond timestamp, bumped past any id
// issued or observed before.
func (g *TimestampGenerator) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	next := g.now().UnixMilli()
	if next <= g.last {
		next = g.last + 1
	}
	g.last = next

	return strconv.FormatInt(next, 10)
}

// Observe advances the counter past a numeric id already in use.
// Non-numeric ids are ignored.
func (g *TimestampGenerator) Observe(id string) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if n > g.last {
		g.last = n
	}
}

// UUIDGenerator issues random UUIDv4 strings
type UUIDGenerator struct{}

// NewID returns a new random UUID
func (UUIDGenerator) NewID() string {
	return uuid.New().String()
}

// Observe is a no-op: random ids need no coordination
func (UUIDGenerator) Observe(string) {}
