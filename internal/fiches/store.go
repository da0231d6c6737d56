// Package fiches holds the ordered, persisted sequence of fiches and the
// currently selected fiche id.
//
// Every operation replaces the whole sequence with a new slice; slices
// handed out by the store are copies and may be modified freely. Operations
// addressing an id or index that does not exist are no-ops reported through
// their boolean result, never errors: the caller's view of the sequence may be
// stale (a deletion racing a drag, for instance).
package fiches

import (
	"context"
	"log/slog"
	"time"

	"github.com/iudanet/fiches/internal/ids"
	"github.com/iudanet/fiches/internal/models"
	"github.com/iudanet/fiches/internal/persist"
)

// Storage keys
const (
	KeyFiches    = "formulaires"
	KeyCurrentID = "currentId"
)

// Store is the persisted ordered fiche sequence plus the selected id.
// The two are mirrored under distinct keys and are not kept consistent with
// each other: the selected id may name a fiche that no longer exists.
type Store struct {
	fiches  *persist.Value[[]models.Fiche]
	current *persist.Value[*string]
	ids     ids.Generator
	now     func() time.Time
}

// Option configures a Store
type Option func(*Store)

// WithIDGenerator sets the generator used by Create
func WithIDGenerator(g ids.Generator) Option {
	return func(s *Store) { s.ids = g }
}

// WithClock sets the clock used to stamp new fiches
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore loads both values through mirror. A nil logger means slog.Default().
func NewStore(ctx context.Context, mirror *persist.Mirror, logger *slog.Logger, opts ...Option) *Store {
	s := &Store{
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.ids == nil {
		s.ids = ids.NewTimestampGenerator(s.now)
	}

	s.fiches = persist.NewValue(ctx, mirror, KeyFiches, []models.Fiche{}, models.FichesCodec{Logger: logger})
	s.current = persist.NewValue[*string](ctx, mirror, KeyCurrentID, nil, persist.JSONCodec[*string]{})

	for _, f := range s.fiches.Get() {
		s.ids.Observe(f.ID)
	}

	return s
}

// List returns a copy of the sequence in display order
func (s *Store) List() []models.Fiche {
	return clone(s.fiches.Get())
}

// Len returns the number of fiches
func (s *Store) Len() int {
	return len(s.fiches.Get())
}

// Get returns the fiche with id
func (s *Store) Get(id string) (models.Fiche, bool) {
	fiches := s.fiches.Get()
	if i := indexOf(fiches, id); i >= 0 {
		return fiches[i], true
	}
	return models.Fiche{}, false
}

// Index returns the position of id in the sequence, or -1
func (s *Store) Index(id string) int {
	return indexOf(s.fiches.Get(), id)
}

// Append puts f at the front of the sequence. The caller owns id uniqueness.
func (s *Store) Append(ctx context.Context, f models.Fiche) {
	s.ids.Observe(f.ID)
	s.fiches.Update(ctx, func(prev []models.Fiche) []models.Fiche {
		next := make([]models.Fiche, 0, len(prev)+1)
		next = append(next, f)
		return append(next, prev...)
	})
}

// Create appends a new default fiche with a generated id and returns it
func (s *Store) Create(ctx context.Context) models.Fiche {
	f := models.NewFiche(s.ids.NewID(), s.now().UTC())
	s.Append(ctx, f)
	return f
}

// Patch merges p over the fiche with id, keeping its position.
// Reports false, leaving the sequence untouched, when id is unknown.
func (s *Store) Patch(ctx context.Context, id string, p models.FichePatch) bool {
	if s.Index(id) < 0 {
		return false
	}

	s.fiches.Update(ctx, func(prev []models.Fiche) []models.Fiche {
		next := clone(prev)
		for i := range next {
			if next[i].ID == id {
				next[i] = next[i].Apply(p)
			}
		}
		return next
	})
	return true
}

// Remove deletes the fiche with id. Removal is permanent.
func (s *Store) Remove(ctx context.Context, id string) bool {
	if s.Index(id) < 0 {
		return false
	}

	s.fiches.Update(ctx, func(prev []models.Fiche) []models.Fiche {
		next := make([]models.Fiche, 0, len(prev))
		for _, f := range prev {
			if f.ID != id {
				next = append(next, f)
			}
		}
		return next
	})
	return true
}

// Reorder moves the fiche at oldIndex to newIndex, shifting the ones in
// between. Out-of-range indices leave the sequence untouched.
func (s *Store) Reorder(ctx context.Context, oldIndex, newIndex int) bool {
	n := s.Len()
	if oldIndex < 0 || oldIndex >= n || newIndex < 0 || newIndex >= n {
		return false
	}
	if oldIndex == newIndex {
		return true
	}

	s.fiches.Update(ctx, func(prev []models.Fiche) []models.Fiche {
		return move(prev, oldIndex, newIndex)
	})
	return true
}

// Move is the drag-end gesture: the fiche activeID takes the place of overID.
// Dropping on itself or on an id no longer present cancels the reorder.
func (s *Store) Move(ctx context.Context, activeID, overID string) bool {
	if activeID == overID {
		return false
	}

	fiches := s.fiches.Get()
	oldIndex := indexOf(fiches, activeID)
	newIndex := indexOf(fiches, overID)
	if oldIndex < 0 || newIndex < 0 {
		return false
	}

	return s.Reorder(ctx, oldIndex, newIndex)
}

// Select records id as the selected fiche without checking it exists
func (s *Store) Select(ctx context.Context, id string) {
	s.current.Set(ctx, &id)
}

// ClearSelection stores a null selection
func (s *Store) ClearSelection(ctx context.Context) {
	s.current.Set(ctx, nil)
}

// SelectedID returns the stored selection, which may be stale
func (s *Store) SelectedID() (string, bool) {
	id := s.current.Get()
	if id == nil {
		return "", false
	}
	return *id, true
}

// Selected resolves the selection. A stale id means nothing is selected.
func (s *Store) Selected() (models.Fiche, bool) {
	id, ok := s.SelectedID()
	if !ok {
		return models.Fiche{}, false
	}
	return s.Get(id)
}

// Subscribe calls fn with the new sequence after every change
func (s *Store) Subscribe(fn func([]models.Fiche)) func() {
	return s.fiches.Subscribe(func(fiches []models.Fiche) {
		fn(clone(fiches))
	})
}

func indexOf(fiches []models.Fiche, id string) int {
	for i, f := range fiches {
		if f.ID == id {
			return i
		}
	}
	return -1
}

func clone(fiches []models.Fiche) []models.Fiche {
	out := make([]models.Fiche, len(fiches))
	copy(out, fiches)
	return out
}

// move returns a new slice with the element at from reinserted at to
func move(fiches []models.Fiche, from, to int) []models.Fiche {
	item := fiches[from]

	rest := make([]models.Fiche, 0, len(fiches)-1)
	rest = append(rest, fiches[:from]...)
	rest = append(rest, fiches[from+1:]...)

	out := make([]models.Fiche, 0, len(fiches))
	out = append(out, rest[:to]...)
	out = append(out, item)
	return append(out, rest[to:]...)
}
