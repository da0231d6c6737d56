package models

import (
	"strings"
	"time"
)

// DefaultDisplayName is shown in place of a blank fiche name
const DefaultDisplayName = "Nouvelle fiche"

// Fiche представляет одну сохранённую карточку (чек-лист) группы гостей.
// JSON-имена полей совпадают с форматом, который уже лежит в хранилище.
type Fiche struct {
	DateCreation time.Time `json:"dateCreation"` // DateCreation время создания, не изменяется
	ID           string    `json:"id"`           // ID уникальный идентификатор, стабилен всё время жизни
	Nom          string    `json:"nom"`          // Nom отображаемое имя, может быть пустым
	Contenu      string    `json:"contenu"`      // Contenu свободный текст, хранится как есть
	Data         FormData  `json:"data"`         // Data содержимое чек-листа
}

// NewFiche creates a fiche with the default checklist
func NewFiche(id string, createdAt time.Time) Fiche {
	return Fiche{
		ID:           id,
		DateCreation: createdAt,
		Data:         DefaultFormData(),
	}
}

// DisplayName returns the trimmed name, or DefaultDisplayName when blank
func (f Fiche) DisplayName() string {
	if name := strings.TrimSpace(f.Nom); name != "" {
		return name
	}
	return DefaultDisplayName
}

// FichePatch is a shallow, top-level patch. A nil field is left unchanged;
// Data replaces the whole checklist.
type FichePatch struct {
	Nom     *string
	Contenu *string
	Data    *FormData
}

// Apply returns a copy of f with the patch fields replaced
func (f Fiche) Apply(p FichePatch) Fiche {
	if p.Nom != nil {
		f.Nom = *p.Nom
	}
	if p.Contenu != nil {
		f.Contenu = *p.Contenu
	}
	if p.Data != nil {
		f.Data = *p.Data
	}
	return f
}

// PatchFrom builds a patch replacing every mutable field with draft's
func PatchFrom(draft Fiche) FichePatch {
	return FichePatch{
		Nom:     &draft.Nom,
		Contenu: &draft.Contenu,
		Data:    &draft.Data,
	}
}
