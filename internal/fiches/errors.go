package fiches

import "errors"

var (
	// ErrNotFound is returned by callers that need a fiche the store does not hold
	ErrNotFound = errors.New("fiche not found")

	// ErrEditInProgress is returned when a name edit starts while another is open
	ErrEditInProgress = errors.New("another fiche is being edited")

	// ErrNotEditing is returned when the draft is changed outside an edit
	ErrNotEditing = errors.New("no fiche is being edited")
)
