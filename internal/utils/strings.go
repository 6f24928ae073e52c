package utils

import (
	"strings"
)

// NormalizeSpace collapses repeated whitespace into a single space.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// SameText compares two user-typed values ignoring case and extra whitespace.
func SameText(a, b string) bool {
	return strings.EqualFold(NormalizeSpace(a), NormalizeSpace(b))
}
