// Package words splits text into whitespace-delimited words.
package words

import (
	"strings"
	"unicode"
)

// IsSpace reports whether r separates words. It extends unicode.IsSpace with
// the ASCII file, group, record and unit separators (U+001C to U+001F).
func IsSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= '\x1c' && r <= '\x1f')
}

// Split returns the words of s, with empty words dropped
func Split(s string) []string {
	return strings.FieldsFunc(s, IsSpace)
}
