// Package slug generates the short public identifiers used in share links.
package slug

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Length of every generated slug.
const Length = 8

// New returns a random URL-safe slug of Length characters drawn from the
// nanoid alphabet (A-Za-z0-9_-).
func New() (string, error) {
	return gonanoid.New(Length)
}

// Valid reports whether s could have been produced by New.
func Valid(s string) bool {
	if len(s) != Length {
		return false
	}
	for _, c := range s {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '_', c == '-':
		default:
			return false
		}
	}
	return true
}
