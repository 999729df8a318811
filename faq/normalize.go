package faq

import "strings"

// Normalize joins extracted text fragments into a single clean string:
// each fragment is trimmed, empty fragments are dropped, runs of
// whitespace (including newlines) collapse to one space, and surviving
// fragments are joined with a single space. Idempotent:
// Normalize([]string{Normalize(f)}) == Normalize(f).
func Normalize(fragments []string) string {
	var words []string
	for _, fragment := range fragments {
		words = append(words, strings.Fields(fragment)...)
	}
	return strings.Join(words, " ")
}
