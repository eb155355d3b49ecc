// Package slug normalizes and validates URL slugs for blog posts.
package slug

import (
	"regexp"
	"strings"
)

var (
	whitespace = regexp.MustCompile(`\s+`)
	valid      = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// Normalize lowercases the input and replaces runs of whitespace with a
// single hyphen. Applied at input time, so Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	return whitespace.ReplaceAllString(strings.ToLower(s), "-")
}

// IsValid reports whether s contains only lowercase letters, digits and
// single interior hyphens.
func IsValid(s string) bool {
	return valid.MatchString(s)
}
