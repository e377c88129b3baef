package quizgen

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

const fillupBlank = "_______"

// fillupMinSentenceLen gates fill-in-the-blank sentences; removing several
// words from a short sentence leaves nothing to anchor the answer on.
const fillupMinSentenceLen = 50

// blankCount returns how many words a fillup question removes.
func blankCount(d Difficulty) int {
	switch d {
	case DifficultyEasy:
		return 1
	case DifficultyHard:
		return 3
	default:
		return 2
	}
}

// buildFillup builds up to req.Count fill-in-the-blank questions. Each
// draws a long sentence, blanks 1/2/3 capitalized words depending on
// difficulty, and uses the comma-joined removed words, in their original
// sentence order, as the canonical answer.
func (g *Generator) buildFillup(req Request) []Question {
	sentences := Sentences(req.Text)
	if len(sentences) == 0 {
		return nil
	}
	concepts := Concepts(req.Text)

	var out []Question
	used := make(map[string]bool)

	for attempts := 0; len(out) < req.Count && attempts < g.maxAttempts(req.Count); attempts++ {
		sentence := pick(g.rng, sentences)
		if used[sentence] || len(sentence) < fillupMinSentenceLen {
			continue
		}
		used[sentence] = true

		words := strings.Split(sentence, " ")
		if len(words) < 12 {
			continue
		}

		indices := fillupCandidates(words)
		if len(indices) == 0 {
			continue
		}
		g.rng.Shuffle(len(indices), func(i, j int) {
			indices[i], indices[j] = indices[j], indices[i]
		})
		if n := blankCount(req.Difficulty); len(indices) > n {
			indices = indices[:n]
		}
		// Answer lists the removed words in original sentence order, not
		// selection order.
		sort.Ints(indices)

		blanked := make([]string, 0, len(indices))
		promptWords := append([]string(nil), words...)
		for _, idx := range indices {
			blanked = append(blanked, cleanWord(words[idx]))
			promptWords[idx] = fillupBlank
		}

		concept := conceptFor(concepts, sentence, "General Knowledge")
		answer := strings.Join(blanked, ", ")

		explanation := fmt.Sprintf("The missing words are: %s.", answer)
		if req.Role == RoleTeacher {
			explanation += fmt.Sprintf(" This %s level question tests understanding of %s.", req.Difficulty, concept)
		}

		out = append(out, Question{
			ID:            fmt.Sprintf("fillup-%d", len(out)+1),
			Type:          TypeFillup,
			Prompt:        "Fill in the blanks: " + strings.Join(promptWords, " "),
			CorrectAnswer: answer,
			Explanation:   explanation,
			Difficulty:    req.Difficulty,
			Concept:       concept,
			Points:        points(TypeFillup, req.Difficulty),
		})
	}
	return out
}

// fillupCandidates returns the word positions eligible for blanking:
// cleaned words longer than 4 characters that do not start with a
// lowercase letter and are not determiners or WH-words.
func fillupCandidates(words []string) []int {
	var out []int
	for i, raw := range words {
		w := cleanWord(raw)
		if len(w) <= 4 || conceptExclusions[w] {
			continue
		}
		r, _ := utf8.DecodeRuneInString(w)
		if unicode.IsLower(r) {
			continue
		}
		out = append(out, i)
	}
	return out
}
