package quizgen

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// maxConcepts caps the extracted concept list.
const maxConcepts = 15

// conceptExclusions are sentence-position capitalized words that look like
// concepts but are determiners, demonstratives, or WH-words.
var conceptExclusions = map[string]bool{
	"The": true, "This": true, "That": true, "These": true, "Those": true,
	"When": true, "Where": true, "What": true, "Which": true, "Who": true,
	"How": true, "Why": true,
}

// Concepts scans each candidate sentence for salient terms: words longer
// than 5 characters that begin with an uppercase letter and are not on the
// exclusion list. Duplicates are dropped, first-seen order is preserved,
// and the result is capped at 15 entries.
func Concepts(text string) []string {
	var out []string
	seen := make(map[string]bool)

	for _, sentence := range Sentences(text) {
		for _, raw := range strings.Split(sentence, " ") {
			w := cleanWord(raw)
			if len(w) <= 5 || conceptExclusions[w] {
				continue
			}
			r, _ := utf8.DecodeRuneInString(w)
			if !unicode.IsUpper(r) {
				continue
			}
			if seen[w] {
				continue
			}
			seen[w] = true
			out = append(out, w)
			if len(out) == maxConcepts {
				return out
			}
		}
	}
	return out
}

// conceptFor returns the first extracted concept textually contained in the
// sentence, or fallback when none matches.
func conceptFor(concepts []string, sentence, fallback string) string {
	for _, c := range concepts {
		if strings.Contains(sentence, c) {
			return c
		}
	}
	return fallback
}
