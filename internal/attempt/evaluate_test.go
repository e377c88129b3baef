package attempt

import (
	"testing"

	"quizforge/internal/quizgen"
)

func TestEvaluate(t *testing.T) {
	q := quizgen.Question{ID: "q1", CorrectAnswer: "Paris"}

	tests := []struct {
		name      string
		submitted string
		want      bool
	}{
		{"exact", "Paris", true},
		{"lowercase", "paris", true},
		{"uppercase", "PARIS", true},
		{"surrounding whitespace", "  Paris  ", true},
		{"whitespace and case", " paris ", true},
		{"wrong answer", "London", false},
		{"empty", "", false},
		{"whitespace only", "   ", false},
		{"partial", "Par", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Evaluate(q, tt.submitted); got != tt.want {
				t.Errorf("Evaluate(%q) = %v, want %v", tt.submitted, got, tt.want)
			}
		})
	}
}

func TestEvaluate_SameRuleForAllTypes(t *testing.T) {
	for _, typ := range []quizgen.QuizType{quizgen.TypeMCQ, quizgen.TypeFillup, quizgen.TypeQA} {
		q := quizgen.Question{Type: typ, CorrectAnswer: "chlorophyll, stomata"}
		if !Evaluate(q, " Chlorophyll, Stomata ") {
			t.Errorf("%s: normalized match rejected", typ)
		}
	}
}

func TestEvaluate_Idempotent(t *testing.T) {
	q := quizgen.Question{CorrectAnswer: "Oxygen"}
	first := Evaluate(q, " oxygen ")
	for i := 0; i < 3; i++ {
		if Evaluate(q, " oxygen ") != first {
			t.Fatal("repeated evaluation changed result")
		}
	}
}
