package fiches

import (
	"context"

	"github.com/iudanet/fiches/internal/models"
)

// EditState is the state of a NameEditor
type EditState int

const (
	StateIdle EditState = iota
	StateEditing
)

func (s EditState) String() string {
	if s == StateEditing {
		return "editing"
	}
	return "idle"
}

// NameEditor holds the single draft of a fiche being renamed.
//
//	Idle --Start(f)--> Editing(copy of f)
//	Editing --Commit--> Idle   (draft patched into the store)
//	Editing --Cancel--> Idle   (draft discarded)
type NameEditor struct {
	store *Store
	draft *models.Fiche
}

// NewNameEditor creates an idle editor patching into store
func NewNameEditor(store *Store) *NameEditor {
	return &NameEditor{store: store}
}

// State returns the current state
func (e *NameEditor) State() EditState {
	if e.draft != nil {
		return StateEditing
	}
	return StateIdle
}

// Draft returns the fiche being edited
func (e *NameEditor) Draft() (models.Fiche, bool) {
	if e.draft == nil {
		return models.Fiche{}, false
	}
	return *e.draft, true
}

// Start opens a draft copy of f
func (e *NameEditor) Start(f models.Fiche) error {
	if e.draft != nil {
		return ErrEditInProgress
	}
	draft := f
	e.draft = &draft
	return nil
}

// SetName changes the draft name
func (e *NameEditor) SetName(name string) error {
	if e.draft == nil {
		return ErrNotEditing
	}
	e.draft.Nom = name
	return nil
}

// Commit patches the draft into the store and returns to Idle.
// Reports whether the fiche still existed; Commit while Idle does nothing.
func (e *NameEditor) Commit(ctx context.Context) bool {
	if e.draft == nil {
		return false
	}
	draft := *e.draft
	e.draft = nil

	return e.store.Patch(ctx, draft.ID, models.PatchFrom(draft))
}

// Cancel discards the draft
func (e *NameEditor) Cancel() {
	e.draft = nil
}
