package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFiche(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	f := NewFiche("1714557600000", now)

	assert.Equal(t, "1714557600000", f.ID)
	assert.Equal(t, now, f.DateCreation)
	assert.Empty(t, f.Nom)
	assert.Empty(t, f.Contenu)
	assert.Equal(t, DefaultFormData(), f.Data)
}

func TestFiche_DisplayName(t *testing.T) {
	assert.Equal(t, DefaultDisplayName, Fiche{}.DisplayName())
	assert.Equal(t, DefaultDisplayName, Fiche{Nom: "   "}.DisplayName())
	assert.Equal(t, "Groupe Dupont", Fiche{Nom: " Groupe Dupont "}.DisplayName())
}

func TestFiche_Apply(t *testing.T) {
	original := NewFiche("1", time.Unix(0, 0).UTC())
	original.Contenu = "keep"
	original.Data.Dinner.Remarks = "keep too"

	name := "X"
	patched := original.Apply(FichePatch{Nom: &name})

	assert.Equal(t, "X", patched.Nom)
	assert.Equal(t, "keep", patched.Contenu)
	assert.Equal(t, original.Data, patched.Data)
	assert.Equal(t, original.ID, patched.ID)
	assert.Equal(t, original.DateCreation, patched.DateCreation)
	// Оригинал не изменился
	assert.Empty(t, original.Nom)
}

func TestFiche_ApplyReplacesWholeData(t *testing.T) {
	original := NewFiche("1", time.Unix(0, 0).UTC())
	original.Data.RoomPayment.Individual = true

	data := DefaultFormData()
	data.Dinner.Type = DinnerEveryNight
	patched := original.Apply(FichePatch{Data: &data})

	assert.False(t, patched.Data.RoomPayment.Individual)
	assert.Equal(t, DinnerEveryNight, patched.Data.Dinner.Type)
}

func TestPatchFrom(t *testing.T) {
	draft := NewFiche("1", time.Unix(0, 0).UTC())
	draft.Nom = "draft"
	draft.Contenu = "body"

	patched := NewFiche("1", time.Unix(0, 0).UTC()).Apply(PatchFrom(draft))
	assert.Equal(t, draft, patched)
}

func TestFiche_JSONShape(t *testing.T) {
	f := NewFiche("1", time.Date(2024, 1, 2, 3, 4, 5, 678000000, time.UTC))
	f.Nom = "A"

	data, err := json.Marshal(f)
	require.NoError(t, err)

	var shape map[string]any
	require.NoError(t, json.Unmarshal(data, &shape))

	assert.Equal(t, "1", shape["id"])
	assert.Equal(t, "A", shape["nom"])
	assert.Equal(t, "", shape["contenu"])
	assert.Equal(t, "2024-01-02T03:04:05.678Z", shape["dateCreation"])

	formData := shape["data"].(map[string]any)
	assert.Nil(t, formData["guaranteePayment"])
	assert.Equal(t, map[string]any{"type": nil, "remarks": ""}, formData["dinner"])
	assert.Equal(t, map[string]any{
		"hasBaggageService": false,
		"arrivalTime":       nil,
		"departureTime":     nil,
	}, formData["baggageService"])
}
