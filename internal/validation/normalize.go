package validation

import "strings"

// NormalizeEmail trims surrounding whitespace and lower-cases the address.
// The empty value is returned unchanged.
func NormalizeEmail(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(strings.TrimSpace(s))
}

// NormalizeDisplayName trims surrounding whitespace.
func NormalizeDisplayName(s string) string {
	if s == "" {
		return s
	}
	return strings.TrimSpace(s)
}
