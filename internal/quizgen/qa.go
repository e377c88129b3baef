package quizgen

import (
	"fmt"
	"strings"
)

// qaMinSentenceLen gates short-answer source sentences: the sentence
// itself is the canonical answer, so it has to carry a full statement.
const qaMinSentenceLen = 60

// qaTemplates are the question stems per difficulty: easy asks for recall,
// medium for relations and inference, hard for evaluation and synthesis.
var qaTemplates = map[Difficulty][]string{
	DifficultyEasy: {
		"What is mentioned about",
		"According to the text, what",
		"The text states that",
		"What does the text say about",
		"How is {concept} described",
	},
	DifficultyMedium: {
		"Explain the relationship between",
		"How does the text describe",
		"What can be inferred about",
		"Analyze the role of",
		"Compare the significance of",
	},
	DifficultyHard: {
		"Critically evaluate the implications of",
		"Synthesize the key arguments regarding",
		"Assess the validity of claims about",
		"Examine the underlying assumptions of",
		"Construct an argument for",
	},
}

// qaSkillLabel describes what a QA question assesses at each difficulty,
// used in teacher-facing explanations.
func qaSkillLabel(d Difficulty) string {
	switch d {
	case DifficultyEasy:
		return "basic recall"
	case DifficultyHard:
		return "critical thinking and analysis"
	default:
		return "comprehension and application"
	}
}

// buildQA builds up to req.Count short question/answer items. Each pairs a
// difficulty-specific stem with an extracted concept; the canonical answer
// is the full source sentence, graded lexically by the evaluator.
func (g *Generator) buildQA(req Request) []Question {
	sentences := Sentences(req.Text)
	if len(sentences) == 0 {
		return nil
	}
	concepts := Concepts(req.Text)

	templates := qaTemplates[req.Difficulty]
	if templates == nil {
		templates = qaTemplates[DifficultyMedium]
	}

	var out []Question
	used := make(map[string]bool)

	for attempts := 0; len(out) < req.Count && attempts < g.maxAttempts(req.Count); attempts++ {
		sentence := pick(g.rng, sentences)
		if used[sentence] || len(sentence) < qaMinSentenceLen {
			continue
		}
		used[sentence] = true

		template := pick(g.rng, templates)

		concept := "General"
		promptConcept := "the main topic"
		if len(concepts) > 0 {
			concept = pick(g.rng, concepts)
			promptConcept = strings.ToLower(concept)
		}

		prompt := qaPrompt(g, template, promptConcept, concept, concepts, sentence)

		explanation := "This answer is based on the information provided in the text."
		if req.Role == RoleTeacher {
			explanation += fmt.Sprintf(" This %s level question assesses %s skills related to %s.",
				req.Difficulty, qaSkillLabel(req.Difficulty), concept)
		}

		out = append(out, Question{
			ID:            fmt.Sprintf("qa-%d", len(out)+1),
			Type:          TypeQA,
			Prompt:        prompt,
			CorrectAnswer: sentence,
			Explanation:   explanation,
			Difficulty:    req.Difficulty,
			Concept:       concept,
			Points:        points(TypeQA, req.Difficulty),
		})
	}
	return out
}

// qaPrompt combines a stem template with the chosen concept. Comparative
// and relational stems draw a second, distinct concept; the "states that"
// stem quotes the opening of the source sentence instead.
func qaPrompt(g *Generator, template, promptConcept, concept string, concepts []string, sentence string) string {
	switch {
	case strings.Contains(template, "{concept}"):
		return strings.ReplaceAll(template, "{concept}", promptConcept) + "?"

	case strings.Contains(template, "mentioned about") || strings.Contains(template, "describe"):
		return fmt.Sprintf("%s %s based on this passage?", template, promptConcept)

	case strings.Contains(template, "states that"):
		return fmt.Sprintf("Complete this statement from the text: %q", truncate(sentence, 40)+"...")

	case strings.Contains(template, "relationship") || strings.Contains(template, "Compare"):
		second := "related concepts"
		var others []string
		for _, c := range concepts {
			if c != concept {
				others = append(others, c)
			}
		}
		if len(others) > 0 {
			second = strings.ToLower(pick(g.rng, others))
		}
		return fmt.Sprintf("%s %s and %s as discussed in the text?", template, promptConcept, second)

	default:
		return fmt.Sprintf("%s %s as presented in the text?", template, promptConcept)
	}
}

// truncate returns the first n bytes of s, or s itself when shorter.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
