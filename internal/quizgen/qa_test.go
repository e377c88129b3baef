package quizgen

import (
	"strings"
	"testing"
)

func TestBuildQA_AnswerIsSourceSentence(t *testing.T) {
	g := testGenerator(30)
	questions := g.buildQA(Request{Text: plantText, Count: 3, Difficulty: DifficultyEasy})
	if len(questions) == 0 {
		t.Fatal("no questions built")
	}

	sentences := Sentences(plantText)
	for _, q := range questions {
		if q.Type != TypeQA {
			t.Errorf("%s: type = %q", q.ID, q.Type)
		}
		found := false
		for _, s := range sentences {
			if q.CorrectAnswer == s {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("%s: answer is not a source sentence: %q", q.ID, q.CorrectAnswer)
		}
		if q.Points != 2 {
			t.Errorf("%s: points = %d, want 2 for easy", q.ID, q.Points)
		}
		if q.Prompt == "" {
			t.Errorf("%s: empty prompt", q.ID)
		}
	}
}

func TestBuildQA_HardUsesEvaluativeStems(t *testing.T) {
	g := testGenerator(31)
	questions := g.buildQA(Request{Text: plantText, Count: 3, Difficulty: DifficultyHard})
	if len(questions) == 0 {
		t.Fatal("no questions built")
	}

	for _, q := range questions {
		matched := false
		for _, stem := range qaTemplates[DifficultyHard] {
			if strings.HasPrefix(q.Prompt, stem) {
				matched = true
				break
			}
		}
		if !matched {
			t.Errorf("%s: prompt %q does not start with a hard stem", q.ID, q.Prompt)
		}
		if q.Points != 5 {
			t.Errorf("%s: points = %d, want 5 for hard", q.ID, q.Points)
		}
	}
}

func TestQAPrompt_Branches(t *testing.T) {
	g := testGenerator(32)
	concepts := []string{"Photosynthesis", "Chlorophyll"}
	sentence := strings.Repeat("x", 70)

	got := qaPrompt(g, "How is {concept} described", "photosynthesis", "Photosynthesis", concepts, sentence)
	if got != "How is photosynthesis described?" {
		t.Errorf("{concept} branch = %q", got)
	}

	got = qaPrompt(g, "What is mentioned about", "photosynthesis", "Photosynthesis", concepts, sentence)
	if got != "What is mentioned about photosynthesis based on this passage?" {
		t.Errorf("mentioned-about branch = %q", got)
	}

	got = qaPrompt(g, "The text states that", "photosynthesis", "Photosynthesis", concepts, sentence)
	if !strings.HasPrefix(got, "Complete this statement from the text: ") || !strings.Contains(got, "...") {
		t.Errorf("states-that branch = %q", got)
	}

	got = qaPrompt(g, "Explain the relationship between", "photosynthesis", "Photosynthesis", concepts, sentence)
	if got != "Explain the relationship between photosynthesis and chlorophyll as discussed in the text?" {
		t.Errorf("relationship branch = %q", got)
	}

	got = qaPrompt(g, "Analyze the role of", "photosynthesis", "Photosynthesis", concepts, sentence)
	if got != "Analyze the role of photosynthesis as presented in the text?" {
		t.Errorf("default branch = %q", got)
	}
}

func TestQAPrompt_ComparativeWithSingleConcept(t *testing.T) {
	g := testGenerator(33)
	concepts := []string{"Photosynthesis"}
	got := qaPrompt(g, "Compare the significance of", "photosynthesis", "Photosynthesis", concepts, "sentence")
	want := "Compare the significance of photosynthesis and related concepts as discussed in the text?"
	if got != want {
		t.Errorf("comparative fallback = %q, want %q", got, want)
	}
}

func TestBuildQA_NoConceptsFallsBackToGeneral(t *testing.T) {
	// Sentences long enough for QA but with no capitalized concept terms.
	text := "the quick moving river carries sediment downstream across wide valleys every single year without fail. " +
		"erosion gradually reshapes the entire landscape through constant pressure and enormous amounts of flowing water."
	g := testGenerator(34)
	questions := g.buildQA(Request{Text: text, Count: 1, Difficulty: DifficultyEasy})
	if len(questions) == 0 {
		t.Fatal("no questions built")
	}
	for _, q := range questions {
		if q.Concept != "General" {
			t.Errorf("%s: concept = %q, want General", q.ID, q.Concept)
		}
	}
}
