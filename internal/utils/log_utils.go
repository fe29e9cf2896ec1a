package utils

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxLogStringLength caps user-provided values (event names, request
// paths) before they reach the log.
const MaxLogStringLength = 160

// SanitizeLogString makes a user-controlled string safe for logging.
// Control characters collapse to a single space, format verbs are
// escaped, and overlong values are truncated.
func SanitizeLogString(input string) string {
	if input == "" {
		return ""
	}

	if len(input) > MaxLogStringLength {
		cut := MaxLogStringLength
		for cut > 0 && !utf8.RuneStart(input[cut]) {
			cut--
		}
		input = input[:cut] + "... (truncated)"
	}

	var b strings.Builder
	b.Grow(len(input))
	lastWasSpace := false
	for _, r := range input {
		switch {
		case r == '%':
			b.WriteString("%%")
			lastWasSpace = false
		case unicode.IsControl(r) || !utf8.ValidRune(r) || r == utf8.RuneError:
			// Log injection via embedded newlines or escapes turns
			// into at most one space.
			if !lastWasSpace {
				b.WriteByte(' ')
				lastWasSpace = true
			}
		default:
			b.WriteRune(r)
			lastWasSpace = false
		}
	}

	return b.String()
}
