package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// maxLabelLength bounds category names so a single cell cannot blow up the
// rendered document.
const maxLabelLength = 256

// ValidateLabel validates a category label read from an input row.
//
// The validation rules are intentionally conservative:
//   - No control characters (including null bytes)
//   - Maximum length of 256 characters
//
// Empty labels are not rejected here; a blank cell means "carry forward".
func ValidateLabel(label string) error {
	if len(label) > maxLabelLength {
		return New(ErrCodeInvalidInput, "label too long (max %d characters)", maxLabelLength)
	}
	for _, r := range label {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "label %q contains control characters", label)
		}
	}
	return nil
}

// colorRegex matches the color forms accepted in SVG presentation attributes:
// named colors, #rgb/#rrggbb hex, rgb(r,g,b) and the keyword "none".
var colorRegex = regexp.MustCompile(`^(#[0-9a-fA-F]{3}|#[0-9a-fA-F]{6}|[a-zA-Z]+|rgb\(\s*\d{1,3}\s*,\s*\d{1,3}\s*,\s*\d{1,3}\s*\))$`)

// ValidateColor validates a color string that is written verbatim into an
// SVG attribute. It rejects anything that could break out of the attribute.
func ValidateColor(name, color string) error {
	if color == "" {
		return New(ErrCodeInvalidConfig, "%s cannot be empty", name)
	}
	if !colorRegex.MatchString(color) {
		return New(ErrCodeInvalidConfig, "invalid %s: %q", name, color)
	}
	return nil
}

// ValidateFontFamily validates a CSS font-family list such as
// "Helvetica, Arial, sans-serif".
func ValidateFontFamily(family string) error {
	if strings.TrimSpace(family) == "" {
		return New(ErrCodeInvalidConfig, "font family cannot be empty")
	}
	if strings.ContainsAny(family, `"<>&`) {
		return New(ErrCodeInvalidConfig, "font family contains invalid characters: %q", family)
	}
	for _, r := range family {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidConfig, "font family contains control characters")
		}
	}
	return nil
}

// ValidatePath validates an input or output file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidInput, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "path contains invalid characters")
		}
	}
	return nil
}
