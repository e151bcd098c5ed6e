// Package garden maps free-text season and plant choices to canned
// gardening advice. It normalizes raw input, resolves aliases to
// canonical keys, and renders tips and recommendations from the static
// tables.
package garden

import "strings"

// Normalize lowercases text, trims leading/trailing whitespace, and
// collapses internal whitespace runs to single spaces. Idempotent.
func Normalize(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}
