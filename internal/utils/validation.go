package utils

import (
	"errors"
	"math"
	"regexp"
	"strings"
)

// Month bounds enforced at the input boundary. The classifier itself only
// knows which months have reference rows.
const (
	MinMonth = 1
	MaxMonth = 9
	// MaxAmount guards against absurd inputs; it is far above any threshold.
	MaxAmount = 1e12
)

var (
	// Allow alphanumeric, underscore, hyphen, dot
	validIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

	// Detect HTML/script tags
	htmlTagPattern = regexp.MustCompile(`<[^>]*>`)
)

// ValidateID validates that a path identifier is safe and within reasonable limits
func ValidateID(id string) error {
	if id == "" {
		return errors.New("id cannot be empty")
	}

	if len(id) > 100 {
		return errors.New("id too long (max 100 characters)")
	}

	if !validIDPattern.MatchString(id) {
		return errors.New("id contains invalid characters")
	}

	return nil
}

// ValidateMonth validates the fellowship month entered by a user
func ValidateMonth(month int) error {
	if month < MinMonth || month > MaxMonth {
		return errors.New("month must be between 1 and 9")
	}
	return nil
}

// ValidateAmount validates a collection amount entered by a user
func ValidateAmount(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return errors.New("amount must be a finite number")
	}

	if amount < 0 {
		return errors.New("amount must be non-negative")
	}

	if amount > MaxAmount {
		return errors.New("amount too large")
	}

	return nil
}

// SanitizeInput removes HTML tags and surrounding whitespace
func SanitizeInput(input string) string {
	sanitized := htmlTagPattern.ReplaceAllString(input, "")
	return strings.TrimSpace(sanitized)
}

