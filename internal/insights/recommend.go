package insights

import "fmt"

// Headline returns the overall verdict line for a score percentage.
func Headline(percentage int) string {
	switch {
	case percentage >= 80:
		return "Excellent Work!"
	case percentage >= 60:
		return "Good Job!"
	default:
		return "Keep Practicing!"
	}
}

// Recommendations turns concept stats into study suggestions, weakest
// areas first.
func Recommendations(stats []ConceptStat) []string {
	var out []string
	for _, s := range Weak(stats) {
		out = append(out, fmt.Sprintf("Focus on %s - scored %d%%", s.Concept, s.Percentage))
	}
	if len(out) == 0 {
		out = append(out, "Great job! You performed well across all concepts.")
	}
	return out
}

// Strengths lists the concepts the learner has mastered.
func Strengths(stats []ConceptStat) []string {
	var out []string
	for _, s := range Strong(stats) {
		out = append(out, fmt.Sprintf("Excellent understanding of %s", s.Concept))
	}
	if len(out) == 0 {
		out = append(out, "Keep practicing to build stronger foundations.")
	}
	return out
}
