package summary

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"quizforge/internal/attempt"
	"quizforge/internal/quizgen"
)

func testSummary() *attempt.Summary {
	return &attempt.Summary{
		AttemptID:      "test-attempt",
		QuizType:       quizgen.TypeMCQ,
		Score:          3,
		TotalQuestions: 5,
		Percentage:     60,
		PointsEarned:   6,
		PointsTotal:    10,
		TimeSpent:      4 * time.Minute,
		Feedback: []attempt.Feedback{
			{QuestionID: "mcq-1", Concept: "Photosynthesis", Correct: true},
			{QuestionID: "mcq-2", Concept: "Photosynthesis", Correct: true},
			{QuestionID: "mcq-3", Concept: "Oxygen", Correct: true},
			{QuestionID: "mcq-4", Concept: "Oxygen", Correct: false},
			{QuestionID: "mcq-5", Concept: "Stomata", Correct: false},
		},
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testSummary(), nil)
	if s.Title() != "Results" {
		t.Errorf("Title = %q, want %q", s.Title(), "Results")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testSummary(), nil)
	view := s.View(80, 24)
	if view == "" {
		t.Fatal("expected non-empty summary view")
	}
	for _, want := range []string{"Good Job!", "3/5", "60%", "Photosynthesis", "Stomata", "4:00"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSummaryScreen_ShowsSaveError(t *testing.T) {
	s := New(testSummary(), errors.New("disk full"))
	view := s.View(80, 24)
	if !strings.Contains(view, "disk full") {
		t.Error("save error not surfaced in view")
	}
}

func TestSummaryScreen_QuitsOnEnter(t *testing.T) {
	s := New(testSummary(), nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Error("expected a command on Enter (quit)")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testSummary(), nil)
	hints := s.KeyHints()
	if len(hints) != 1 {
		t.Errorf("KeyHints length = %d, want 1", len(hints))
	}
}
