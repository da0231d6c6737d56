package render

import (
	"strings"

	"github.com/iudanet/fiches/internal/models"
)

// PrettifyTime turns "09:05" into "9h05". Empty or malformed input gives "".
func PrettifyTime(t models.TimeOfDay) string {
	hours, minutes, ok := strings.Cut(string(t), ":")
	if !ok || hours == "" || minutes == "" {
		return ""
	}
	return strings.TrimPrefix(hours, "0") + "h" + minutes
}
