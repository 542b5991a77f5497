package domain

import (
	"strings"
	"unicode"
)

// Normalize lowercases a string and strips all whitespace (including
// full-width spaces). Every name, label, and keyword comparison in the
// sorter goes through this one function; matching stages that normalized
// independently is exactly how substring and cache lookups drift apart.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
