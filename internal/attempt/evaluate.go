// Package attempt scores submitted answers against a generated quiz and
// produces per-attempt summaries.
package attempt

import (
	"strings"

	"quizforge/internal/quizgen"
)

// Evaluate reports whether a submitted answer matches the question's
// correct answer. Whitespace is trimmed and comparison is
// case-insensitive; the rule is the same for every question type.
func Evaluate(q quizgen.Question, submitted string) bool {
	return strings.EqualFold(
		strings.TrimSpace(submitted),
		strings.TrimSpace(q.CorrectAnswer),
	)
}
