package errors

import (
	"strconv"
	"strings"
	"unicode"
)

// ParseYear parses a model year given on the command line or in a query
// string. Only the syntax is checked; range checks are left to the remote API.
func ParseYear(s string) (int, error) {
	year, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, New(ErrCodeInvalidYear, "year must be an integer, got %q", s)
	}
	return year, nil
}

// ParseModelID parses a numeric model identifier.
func ParseModelID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, New(ErrCodeInvalidModel, "model id must be an integer, got %q", s)
	}
	return id, nil
}

// ParseOptionalInt parses an optional integer query value.
// An empty string yields 0, which the trim search treats as "not set".
func ParseOptionalInt(name, s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, New(ErrCodeInvalidInput, "%s must be an integer, got %q", name, s)
	}
	return n, nil
}

// ParseOptionalFloat parses an optional decimal query value.
// An empty string yields 0.
func ParseOptionalFloat(name, s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, New(ErrCodeInvalidInput, "%s must be a number, got %q", name, s)
	}
	return f, nil
}

// ParseFlag reports whether a query flag is set. "1", "true" and "yes"
// (any case) are true; everything else, including "", is false.
func ParseFlag(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes":
		return true
	}
	return false
}

// ValidateMake validates a make identifier such as "ford" or "Alfa Romeo".
//
// The rules are conservative:
//   - No empty names
//   - No control characters
//   - Maximum length of 64 characters
func ValidateMake(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidMake, "make cannot be empty")
	}
	if len(name) > 64 {
		return New(ErrCodeInvalidMake, "make too long (max 64 characters)")
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidMake, "make contains invalid control characters")
		}
	}
	return nil
}
