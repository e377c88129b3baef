package quizgen

import (
	"fmt"
	"strings"
)

// fallbackMinWords is the relaxed sentence gate for fallback generation.
const fallbackMinWords = 5

// buildFallback generates up to deficit extra questions with relaxed
// constraints after a primary builder under-produced. It iterates the
// sentence pool positionally rather than drawing at random, so it
// terminates in O(deficit) regardless of text shape. The generic ids are
// tagged "fallback" and never collide with primary-builder ids.
func (g *Generator) buildFallback(req Request, deficit int) []Question {
	sentences := Sentences(req.Text)

	var out []Question
	for i := 0; len(out) < deficit && i < len(sentences); i++ {
		sentence := sentences[i]
		words := strings.Split(sentence, " ")
		if len(words) < fallbackMinWords {
			continue
		}

		id := fmt.Sprintf("%s-fallback-%d", req.Type, len(out)+1)

		switch req.Type {
		case TypeMCQ:
			target := fallbackTarget(words)
			prompt, ok := blankOut(sentence, target, mcqBlank)
			if !ok {
				continue
			}
			out = append(out, Question{
				ID:            id,
				Type:          TypeMCQ,
				Prompt:        fmt.Sprintf("Complete: %q", prompt),
				Options:       optionSet(g.rng, target, []string{"option1", "option2", "option3"}),
				CorrectAnswer: target,
				Explanation:   fmt.Sprintf("The correct answer is %q.", target),
				Difficulty:    req.Difficulty,
				Concept:       "General",
				Points:        1,
			})

		case TypeFillup:
			target := cleanWord(words[len(words)/2])
			prompt, ok := blankOut(sentence, target, fillupBlank)
			if !ok {
				continue
			}
			out = append(out, Question{
				ID:            id,
				Type:          TypeFillup,
				Prompt:        "Fill in the blank: " + prompt,
				CorrectAnswer: target,
				Explanation:   fmt.Sprintf("The missing word is %q.", target),
				Difficulty:    req.Difficulty,
				Concept:       "General",
				Points:        1,
			})

		case TypeQA:
			out = append(out, Question{
				ID:            id,
				Type:          TypeQA,
				Prompt:        fmt.Sprintf("What does this sentence convey: %q?", truncate(sentence, 50)+"..."),
				CorrectAnswer: sentence,
				Explanation:   "This answer is based on the provided text.",
				Difficulty:    req.Difficulty,
				Concept:       "General",
				Points:        2,
			})
		}
	}
	return out
}

// fallbackTarget picks the first word longer than 4 characters, falling
// back to the middle word of the sentence.
func fallbackTarget(words []string) string {
	for _, raw := range words {
		if w := cleanWord(raw); len(w) > 4 {
			return w
		}
	}
	return cleanWord(words[len(words)/2])
}
