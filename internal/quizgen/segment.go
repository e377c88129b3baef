package quizgen

import (
	"regexp"
	"strings"
)

// Sentence length bounds after trimming. Shorter sentences carry no
// testable fact; longer ones make unreadable prompts.
const (
	minSentenceLen = 20
	maxSentenceLen = 500
)

var sentenceBoundary = regexp.MustCompile(`[.!?]+`)

// Sentences splits raw text into candidate sentences on ., ! and ?
// boundaries, trims them, and keeps only those whose length falls strictly
// between 20 and 500 characters. Returns an empty slice when no sentence
// is in range; the orchestrator detects that upstream.
func Sentences(text string) []string {
	parts := sentenceBoundary.Split(text, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		s := strings.TrimSpace(p)
		if len(s) > minSentenceLen && len(s) < maxSentenceLen {
			out = append(out, s)
		}
	}
	return out
}

// cleanWord strips every non-word character from a token, leaving letters,
// digits and underscores. "Plants," becomes "Plants".
func cleanWord(w string) string {
	var b strings.Builder
	b.Grow(len(w))
	for _, r := range w {
		if isWordRune(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isWordRune(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}
