package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// TimeOfDayPattern определяет формат времени суток HH:MM (24 часа)
var TimeOfDayPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// ValidateTimeOfDay проверяет, что строка является временем в формате HH:MM
func ValidateTimeOfDay(value string) error {
	if value == "" {
		return fmt.Errorf("time cannot be empty")
	}

	if !TimeOfDayPattern.MatchString(value) {
		return fmt.Errorf("time %q must use the HH:MM format (00:00 to 23:59)", value)
	}

	return nil
}

// ValidateID проверяет идентификатор фиши, переданный из командной строки
func ValidateID(id string) error {
	if id == "" {
		return fmt.Errorf("id cannot be empty")
	}

	if strings.ContainsAny(id, " \t\r\n") {
		return fmt.Errorf("id %q must not contain whitespace", id)
	}

	return nil
}
