package domain

import (
	"strings"
)

// NormalizeText prepares names and titles for case-insensitive comparison:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - collapses any run of whitespace (spaces, tabs, newlines) into one space
//
// Punctuation is preserved, so "Go: closures" and "Go closures" stay distinct.
func NormalizeText(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}
