package styles

import "unicode"

// IsNameRune reports whether r may appear in a tag name.
func IsNameRune(r rune) bool {
	return r == '_' || r == ':' || unicode.IsLetter(r) || unicode.IsNumber(r)
}
