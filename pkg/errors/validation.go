package errors

import (
	"math"
	"strings"
)

// ValidateRange checks that v lies in the closed interval [lo, hi].
// NaN is always rejected. field names the value in the error message.
func ValidateRange(field string, v, lo, hi float64) error {
	if math.IsNaN(v) {
		return New(ErrCodeOutOfRange, "%s is not a number", field)
	}
	if v < lo || v > hi {
		return New(ErrCodeOutOfRange, "%s %g out of range [%g, %g]", field, v, lo, hi)
	}
	return nil
}

// ValidateDimension checks that a size is a finite, strictly positive value.
func ValidateDimension(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return New(ErrCodeInvalidConfig, "%s must be a positive number, got %g", field, v)
	}
	return nil
}

// ValidateChoice checks that s (case-insensitive, trimmed) is one of choices.
// It returns the normalized value on success.
func ValidateChoice(code Code, field, s string, choices ...string) (string, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	for _, c := range choices {
		if norm == c {
			return norm, nil
		}
	}
	return "", New(code, "invalid %s %q (want one of: %s)", field, s, strings.Join(choices, ", "))
}
