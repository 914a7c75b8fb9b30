package widget

import (
	"regexp"
	"strings"
)

var (
	hexColorRe = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)
	rgbColorRe = regexp.MustCompile(`^rgba?\(\s*\d{1,3}\s*,\s*\d{1,3}\s*,\s*\d{1,3}\s*(,\s*[01]?\.?\d*)?\s*\)$`)
)

var cssColorNames = map[string]struct{}{
	"black": {}, "white": {}, "red": {}, "green": {}, "blue": {},
	"yellow": {}, "orange": {}, "purple": {}, "pink": {}, "brown": {},
	"gray": {}, "grey": {}, "transparent": {},
}

// ValidColor reports whether a color hint is renderable: hex, rgb/rgba, or a
// basic CSS color name. The empty string is valid (no hint).
func ValidColor(color string) bool {
	if color == "" {
		return true
	}
	if hexColorRe.MatchString(color) || rgbColorRe.MatchString(color) {
		return true
	}
	_, ok := cssColorNames[strings.ToLower(color)]
	return ok
}

// ThemeColor is a theme-aware color pair.
type ThemeColor struct {
	Light string `json:"light"`
	Dark  string `json:"dark"`
}

// Valid reports whether both halves of the pair are renderable colors.
func (c ThemeColor) Valid() bool {
	return ValidColor(c.Light) && ValidColor(c.Dark)
}
