package quizgen

import (
	"fmt"
	"regexp"
	"strings"
)

const mcqBlank = "______"

// mcqMinSentenceLen is a stricter per-builder gate than the segmenter's:
// blanking a word in a very short sentence leaves no context to reason from.
const mcqMinSentenceLen = 30

// buildMCQ builds up to req.Count multiple-choice questions by blanking a
// difficulty-appropriate word out of a randomly drawn sentence and
// surrounding the removed word with three distractors.
//
// The loop is bounded at AttemptFactor × count sentence draws; sentences
// already used or failing the length and word-count gates are skipped. On
// sparse text the result may be shorter than req.Count — the orchestrator
// tops it up, never this builder.
func (g *Generator) buildMCQ(req Request) []Question {
	sentences := Sentences(req.Text)
	if len(sentences) == 0 {
		return nil
	}
	concepts := Concepts(req.Text)
	pool := Keywords(req.Text)

	var out []Question
	used := make(map[string]bool)

	for attempts := 0; len(out) < req.Count && attempts < g.maxAttempts(req.Count); attempts++ {
		sentence := pick(g.rng, sentences)
		if used[sentence] || len(sentence) < mcqMinSentenceLen {
			continue
		}
		used[sentence] = true

		words := strings.Split(sentence, " ")
		if len(words) < 8 {
			continue
		}

		candidates := mcqTargets(words, req.Difficulty)
		if len(candidates) == 0 {
			continue
		}
		target := pick(g.rng, candidates)

		prompt, ok := blankOut(sentence, target, mcqBlank)
		if !ok {
			continue
		}

		distractors := g.distractors(target, req.Difficulty, pool)
		concept := conceptFor(concepts, sentence, "General Knowledge")

		explanation := fmt.Sprintf("The correct answer is %q as mentioned in the original text.", target)
		if req.Role == RoleTeacher {
			explanation += fmt.Sprintf(" This question tests %s level comprehension of the concept: %s.", req.Difficulty, concept)
		}

		out = append(out, Question{
			ID:            fmt.Sprintf("mcq-%d", len(out)+1),
			Type:          TypeMCQ,
			Prompt:        fmt.Sprintf("Complete the sentence: %q", prompt),
			Options:       optionSet(g.rng, target, distractors),
			CorrectAnswer: target,
			Explanation:   explanation,
			Difficulty:    req.Difficulty,
			Concept:       concept,
			Points:        points(TypeMCQ, req.Difficulty),
		})
	}
	return out
}

// mcqTargets returns the blankable words of a sentence: non-stopwords
// longer than 3 characters, narrowed by difficulty — hard quizzes blank
// only long words, easy quizzes only short ones.
func mcqTargets(words []string, difficulty Difficulty) []string {
	var out []string
	for _, raw := range words {
		w := cleanWord(raw)
		if len(w) <= 3 || isStopWord(w) {
			continue
		}
		switch difficulty {
		case DifficultyHard:
			if len(w) <= 6 {
				continue
			}
		case DifficultyEasy:
			if len(w) > 8 {
				continue
			}
		}
		out = append(out, w)
	}
	return out
}

// blankOut replaces every word-bounded occurrence of target in sentence
// with the blank marker, case-insensitively. Reports false when the target
// could not be matched, which means the sentence cannot carry the blank.
func blankOut(sentence, target, marker string) (string, bool) {
	if target == "" {
		return "", false
	}
	re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(target) + `\b`)
	if err != nil {
		return "", false
	}
	blanked := re.ReplaceAllString(sentence, marker)
	if blanked == sentence {
		return "", false
	}
	return blanked, true
}
