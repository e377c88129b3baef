package quizgen

import "strings"

// stopWords is the fixed set of common function words removed from keyword
// candidates. Keywords feed both the distractor pool and concept detection.
var stopWords = map[string]bool{}

func init() {
	for _, w := range []string{
		"the", "and", "for", "are", "but", "not", "you", "all", "can",
		"had", "her", "was", "one", "our", "out", "day", "get", "has",
		"him", "his", "how", "its", "may", "new", "now", "old", "see",
		"two", "who", "boy", "did", "does", "let", "man", "she", "too",
		"use", "will", "with", "have", "this", "that", "they", "from",
		"been", "said", "each", "which", "their", "time", "would",
		"there", "could", "other", "after", "first", "well", "water",
		"very", "what", "know", "just", "where", "much", "before",
		"move", "right", "think", "also", "around", "another", "came",
		"come", "work", "three", "must", "because", "part",
	} {
		stopWords[w] = true
	}
}

// isStopWord reports whether the lowercased token is a common function word.
func isStopWord(w string) bool {
	return stopWords[strings.ToLower(w)]
}

// Keywords tokenizes text on non-word characters, lowercases the tokens,
// and returns the distinct words longer than 3 characters that are not
// stop words, in first-seen order. Deterministic for identical input.
func Keywords(text string) []string {
	var out []string
	seen := make(map[string]bool)

	word := func(w string) {
		if len(w) <= 3 || stopWords[w] || seen[w] {
			return
		}
		seen[w] = true
		out = append(out, w)
	}

	var b strings.Builder
	for _, r := range strings.ToLower(text) {
		if isWordRune(r) {
			b.WriteRune(r)
			continue
		}
		if b.Len() > 0 {
			word(b.String())
			b.Reset()
		}
	}
	if b.Len() > 0 {
		word(b.String())
	}
	return out
}
