package fiches

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/fiches/internal/models"
)

func TestNameEditor_Commit(t *testing.T) {
	ctx := context.Background()
	s, _ := seeded(t, "a", "b")
	e := NewNameEditor(s)
	assert.Equal(t, StateIdle, e.State())

	target, _ := s.Get("b")
	require.NoError(t, e.Start(target))
	assert.Equal(t, StateEditing, e.State())
	assert.Equal(t, "editing", e.State().String())

	require.NoError(t, e.SetName("Groupe Dupont"))
	draft, ok := e.Draft()
	require.True(t, ok)
	assert.Equal(t, "Groupe Dupont", draft.Nom)

	// Пока правка не подтверждена, хранилище не меняется
	stored, _ := s.Get("b")
	assert.Equal(t, "nb", stored.Nom)

	assert.True(t, e.Commit(ctx))
	assert.Equal(t, StateIdle, e.State())

	stored, _ = s.Get("b")
	assert.Equal(t, "Groupe Dupont", stored.Nom)
}

func TestNameEditor_Cancel(t *testing.T) {
	s, kv := seeded(t, "a")
	e := NewNameEditor(s)
	puts := kv.Puts()

	target, _ := s.Get("a")
	require.NoError(t, e.Start(target))
	require.NoError(t, e.SetName("discarded"))
	e.Cancel()

	assert.Equal(t, StateIdle, e.State())
	stored, _ := s.Get("a")
	assert.Equal(t, "na", stored.Nom)
	assert.Equal(t, puts, kv.Puts())
}

func TestNameEditor_SingleDraftSlot(t *testing.T) {
	s, _ := seeded(t, "a", "b")
	e := NewNameEditor(s)

	a, _ := s.Get("a")
	b, _ := s.Get("b")
	require.NoError(t, e.Start(a))
	assert.ErrorIs(t, e.Start(b), ErrEditInProgress)

	draft, _ := e.Draft()
	assert.Equal(t, "a", draft.ID)
}

func TestNameEditor_IdleOperations(t *testing.T) {
	s, _ := seeded(t, "a")
	e := NewNameEditor(s)

	assert.ErrorIs(t, e.SetName("x"), ErrNotEditing)
	assert.False(t, e.Commit(context.Background()))
	e.Cancel()
	_, ok := e.Draft()
	assert.False(t, ok)
}

func TestNameEditor_CommitAfterRemoval(t *testing.T) {
	ctx := context.Background()
	s, _ := seeded(t, "a")
	e := NewNameEditor(s)

	a, _ := s.Get("a")
	require.NoError(t, e.Start(a))
	require.True(t, s.Remove(ctx, "a"))

	assert.False(t, e.Commit(ctx))
	assert.Equal(t, StateIdle, e.State())
	assert.Empty(t, s.List())
}

// Commit writes the whole draft: the last write wins over edits made since Start.
func TestNameEditor_CommitWritesWholeDraft(t *testing.T) {
	ctx := context.Background()
	s, _ := seeded(t, "a")
	e := NewNameEditor(s)

	a, _ := s.Get("a")
	require.NoError(t, e.Start(a))

	data := models.DefaultFormData()
	data.RoomPayment.Individual = true
	require.True(t, s.Patch(ctx, "a", models.FichePatch{Data: &data}))

	require.NoError(t, e.SetName("renamed"))
	require.True(t, e.Commit(ctx))

	stored, _ := s.Get("a")
	assert.Equal(t, "renamed", stored.Nom)
	assert.False(t, stored.Data.RoomPayment.Individual)
}
