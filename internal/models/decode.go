package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
)

// ficheWire is the stored shape before defaults and upgrades are applied
type ficheWire struct {
	DateCreation time.Time       `json:"dateCreation"`
	ID           string          `json:"id"`
	Nom          string          `json:"nom"`
	Contenu      string          `json:"contenu"`
	Data         json.RawMessage `json:"data"`
}

// DecodeReport lists the repairs made while decoding stored fiches
type DecodeReport struct {
	// LegacyDinner holds ids whose scalar dinner field was upgraded
	LegacyDinner []string
	// Reset maps fiche id to the field paths reset to null
	Reset map[string][]string
}

// DecodeFiches decodes a stored fiche sequence. Missing checklist leaves are
// taken from DefaultFormData, the legacy scalar dinner shape is upgraded, and
// unknown tags or malformed times are reset to null. Any structural problem
// fails the whole decode: no partially decoded sequence is ever returned.
func DecodeFiches(data []byte) ([]Fiche, DecodeReport, error) {
	report := DecodeReport{Reset: make(map[string][]string)}

	var wire []ficheWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, report, fmt.Errorf("failed to unmarshal fiches: %w", err)
	}

	fiches := make([]Fiche, 0, len(wire))
	for i, w := range wire {
		formData, legacy, err := decodeFormData(w.Data)
		if err != nil {
			return nil, report, fmt.Errorf("fiche %d (%q): %w", i, w.ID, err)
		}
		if legacy {
			report.LegacyDinner = append(report.LegacyDinner, w.ID)
		}
		if reset := formData.normalize(); len(reset) > 0 {
			report.Reset[w.ID] = reset
		}

		fiches = append(fiches, Fiche{
			ID:           w.ID,
			Nom:          w.Nom,
			Contenu:      w.Contenu,
			DateCreation: w.DateCreation,
			Data:         formData,
		})
	}

	return fiches, report, nil
}

// decodeFormData overlays the stored checklist on the default one
func decodeFormData(raw json.RawMessage) (FormData, bool, error) {
	formData := DefaultFormData()

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return formData, false, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return formData, false, fmt.Errorf("failed to unmarshal form data: %w", err)
	}

	legacy := false
	if dinner, ok := fields["dinner"]; ok && isJSONString(dinner) {
		var plan string
		if err := json.Unmarshal(dinner, &plan); err != nil {
			return formData, false, fmt.Errorf("failed to unmarshal legacy dinner: %w", err)
		}
		delete(fields, "dinner")
		formData.Dinner = UpgradeLegacyDinner(plan)
		legacy = true
	}

	rest, err := json.Marshal(fields)
	if err != nil {
		return formData, false, fmt.Errorf("failed to re-encode form data: %w", err)
	}
	if err := json.Unmarshal(rest, &formData); err != nil {
		return formData, false, fmt.Errorf("failed to unmarshal form data: %w", err)
	}

	return formData, legacy, nil
}

// UpgradeLegacyDinner converts the old scalar dinner field into the nested
// shape. Only known plans survive; anything else becomes a null plan.
func UpgradeLegacyDinner(plan string) Dinner {
	upgraded := Dinner{Type: DinnerPlan(plan)}
	if !upgraded.Type.Valid() {
		upgraded.Type = ""
	}
	return upgraded
}

func isJSONString(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && raw[0] == '"'
}

// FichesCodec stores fiche sequences as JSON and decodes them through
// DecodeFiches. It satisfies persist.Codec[[]Fiche].
type FichesCodec struct {
	Logger *slog.Logger
}

// Encode marshals the sequence; a nil sequence is stored as an empty array
func (c FichesCodec) Encode(fiches []Fiche) ([]byte, error) {
	if fiches == nil {
		fiches = []Fiche{}
	}
	return json.Marshal(fiches)
}

// Decode decodes and repairs a stored sequence, logging the repairs
func (c FichesCodec) Decode(data []byte) ([]Fiche, error) {
	fiches, report, err := DecodeFiches(data)
	if err != nil {
		return nil, err
	}

	logger := c.Logger
	if logger == nil {
		logger = slog.Default()
	}
	for _, id := range report.LegacyDinner {
		logger.Info("upgraded legacy dinner field", "id", id)
	}
	for id, paths := range report.Reset {
		logger.Warn("reset invalid checklist values", "id", id, "fields", paths)
	}

	return fiches, nil
}
