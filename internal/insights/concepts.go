// Package insights aggregates graded feedback into per-concept
// performance figures and study recommendations.
package insights

import (
	"math"

	"quizforge/internal/attempt"
)

const (
	weakBelow     = 70
	strongAtLeast = 80
)

// ConceptStat is the accuracy of one concept across graded questions.
type ConceptStat struct {
	Concept    string `json:"concept"`
	Correct    int    `json:"correct"`
	Total      int    `json:"total"`
	Percentage int    `json:"percentage"`
}

// ConceptStats groups feedback by concept and computes per-concept
// accuracy. Concepts appear in first-seen order; feedback with an
// empty concept label is counted under "General".
func ConceptStats(feedback []attempt.Feedback) []ConceptStat {
	var order []string
	byConcept := make(map[string]*ConceptStat)

	for _, fb := range feedback {
		concept := fb.Concept
		if concept == "" {
			concept = "General"
		}
		stat, ok := byConcept[concept]
		if !ok {
			stat = &ConceptStat{Concept: concept}
			byConcept[concept] = stat
			order = append(order, concept)
		}
		stat.Total++
		if fb.Correct {
			stat.Correct++
		}
	}

	stats := make([]ConceptStat, 0, len(order))
	for _, concept := range order {
		stat := byConcept[concept]
		stat.Percentage = int(math.Round(100 * float64(stat.Correct) / float64(stat.Total)))
		stats = append(stats, *stat)
	}
	return stats
}

// Weak returns the concepts scoring below 70 percent.
func Weak(stats []ConceptStat) []ConceptStat {
	var out []ConceptStat
	for _, s := range stats {
		if s.Percentage < weakBelow {
			out = append(out, s)
		}
	}
	return out
}

// Strong returns the concepts scoring at least 80 percent.
func Strong(stats []ConceptStat) []ConceptStat {
	var out []ConceptStat
	for _, s := range stats {
		if s.Percentage >= strongAtLeast {
			out = append(out, s)
		}
	}
	return out
}
