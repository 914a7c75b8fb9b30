package widget

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// DefaultMaxInputSize bounds a single sanitized input value.
var DefaultMaxInputSize = 4096

var (
	ErrInputTooLarge = errors.New("input exceeds maximum allowed size")
	ErrInvalidUTF8   = errors.New("input contains invalid UTF-8 sequences")
)

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
	"/", "&#x2F;",
)

// SanitizeInput cleans a user-supplied string before it is echoed back inside
// a widget: enforces a size limit, validates UTF-8, and escapes HTML
// metacharacters. Oversized input is rejected, not truncated, to keep the
// resulting state deterministic.
func SanitizeInput(input string) (string, error) {
	if len(input) > DefaultMaxInputSize {
		return "", fmt.Errorf("%w: size=%d limit=%d", ErrInputTooLarge, len(input), DefaultMaxInputSize)
	}
	if !utf8.ValidString(input) {
		return "", ErrInvalidUTF8
	}
	return strings.TrimSpace(htmlEscaper.Replace(input)), nil
}
