package errors

import (
	"math"
	"regexp"
	"strings"
	"time"
	"unicode"
)

// DateLayout is the calendar date format accepted on every input surface
// (flags, config files, query parameters).
const DateLayout = "2006-01-02"

// ParseDate parses a calendar date in [DateLayout] form.
// Surrounding whitespace is ignored. The result is at midnight UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, New(ErrCodeInvalidDate, "date cannot be empty")
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, Wrap(ErrCodeInvalidDate, err, "invalid date %q (want YYYY-MM-DD)", s)
	}
	return t, nil
}

// ValidatePositive rejects zero, negative, NaN and infinite values.
// name is used in the error message (e.g. "column width").
func ValidatePositive(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return New(ErrCodeInvalidConfig, "%s must be a positive number, got %v", name, v)
	}
	return nil
}

// ValidateFontFamily validates a CSS font-family list before it is written
// into an SVG attribute.
//
// The rules are conservative:
//   - Maximum length of 200 characters
//   - No control characters
//   - No markup or attribute delimiters (<, >, ", &)
//
// An empty value is accepted and means "renderer default".
func ValidateFontFamily(family string) error {
	if len(family) > 200 {
		return New(ErrCodeInvalidStyle, "font family too long (max 200 characters)")
	}
	for _, r := range family {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidStyle, "font family contains control characters")
		}
	}
	if strings.ContainsAny(family, `<>"&`) {
		return New(ErrCodeInvalidStyle, "font family contains invalid characters: %q", family)
	}
	return nil
}

// colorRegex matches #rgb, #rrggbb and plain CSS color keywords.
var colorRegex = regexp.MustCompile(`^(#[0-9a-fA-F]{3}|#[0-9a-fA-F]{6}|[a-zA-Z]{3,20})$`)

// ValidateColor validates a color value for SVG fill/stroke attributes.
func ValidateColor(c string) error {
	if c == "" {
		return nil
	}
	if !colorRegex.MatchString(c) {
		return New(ErrCodeInvalidStyle, "invalid color: %q (want #rgb, #rrggbb or a CSS color name)", c)
	}
	return nil
}

// ValidatePath validates a relative output path for safety.
// It prevents path traversal when the path comes from an untrusted source
// such as a config file shared between users.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No absolute paths (must be relative)
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.HasPrefix(path, "/") {
		return New(ErrCodeInvalidPath, "path must be relative (cannot start with /)")
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}
