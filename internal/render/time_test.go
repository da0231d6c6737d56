package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iudanet/fiches/internal/models"
)

func TestPrettifyTime(t *testing.T) {
	tests := []struct {
		input models.TimeOfDay
		want  string
	}{
		{"09:05", "9h05"},
		{"14:30", "14h30"},
		{"00:00", "0h00"},
		{"", ""},
		{"0930", ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.input), func(t *testing.T) {
			assert.Equal(t, tt.want, PrettifyTime(tt.input))
		})
	}
}
