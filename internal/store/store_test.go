package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"quizforge/internal/attempt"
	"quizforge/internal/quizgen"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testSummary(id string, completedAt time.Time) *attempt.Summary {
	return &attempt.Summary{
		AttemptID:      id,
		QuizType:       quizgen.TypeMCQ,
		Score:          2,
		TotalQuestions: 3,
		Percentage:     67,
		PointsEarned:   4,
		PointsTotal:    6,
		TimeSpent:      90 * time.Second,
		CompletedAt:    completedAt,
		Feedback: []attempt.Feedback{
			{QuestionID: "mcq-1", Concept: "Photosynthesis", Correct: true, Points: 2},
			{QuestionID: "mcq-2", Concept: "Oxygen", Correct: true, Points: 2},
			{QuestionID: "mcq-3", Concept: "Oxygen", Correct: false, Points: 2},
		},
	}
}

func TestSaveAndList(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	now := time.Now().Truncate(time.Second)

	if err := s.Attempts().Save(ctx, testSummary("a1", now)); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Attempts().List(ctx, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	a := got[0]
	if a.AttemptID != "a1" || a.QuizType != quizgen.TypeMCQ {
		t.Errorf("identity fields = %q %q", a.AttemptID, a.QuizType)
	}
	if a.Score != 2 || a.TotalQuestions != 3 || a.Percentage != 67 {
		t.Errorf("score fields = %d/%d at %d%%", a.Score, a.TotalQuestions, a.Percentage)
	}
	if a.PointsEarned != 4 || a.PointsTotal != 6 {
		t.Errorf("points = %d/%d, want 4/6", a.PointsEarned, a.PointsTotal)
	}
	if a.TimeSpent != 90*time.Second {
		t.Errorf("TimeSpent = %v, want 90s", a.TimeSpent)
	}
	if !a.CompletedAt.Equal(now) {
		t.Errorf("CompletedAt = %v, want %v", a.CompletedAt, now)
	}
	if len(a.Feedback) != 3 || a.Feedback[0].Concept != "Photosynthesis" {
		t.Errorf("feedback not preserved: %+v", a.Feedback)
	}
}

func TestList_NewestFirstAndLimit(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	base := time.Now().Truncate(time.Second)

	for i, id := range []string{"a1", "a2", "a3"} {
		sum := testSummary(id, base.Add(time.Duration(i)*time.Minute))
		if err := s.Attempts().Save(ctx, sum); err != nil {
			t.Fatalf("Save %s: %v", id, err)
		}
	}

	got, err := s.Attempts().List(ctx, 2)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].AttemptID != "a3" || got[1].AttemptID != "a2" {
		t.Errorf("order = %s, %s; want a3, a2", got[0].AttemptID, got[1].AttemptID)
	}
}

func TestAllFeedback(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	base := time.Now().Truncate(time.Second)

	if err := s.Attempts().Save(ctx, testSummary("a1", base)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Attempts().Save(ctx, testSummary("a2", base.Add(time.Minute))); err != nil {
		t.Fatalf("Save: %v", err)
	}

	fb, err := s.Attempts().AllFeedback(ctx)
	if err != nil {
		t.Fatalf("AllFeedback: %v", err)
	}
	if len(fb) != 6 {
		t.Fatalf("len = %d, want 6", len(fb))
	}
	// Oldest attempt's feedback comes first, question order intact.
	if fb[0].QuestionID != "mcq-1" || fb[2].QuestionID != "mcq-3" {
		t.Errorf("feedback order broken: %s, %s", fb[0].QuestionID, fb[2].QuestionID)
	}
}

func TestCount(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	n, err := s.Attempts().Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 0 {
		t.Errorf("Count = %d, want 0", n)
	}

	if err := s.Attempts().Save(ctx, testSummary("a1", time.Now())); err != nil {
		t.Fatalf("Save: %v", err)
	}
	n, err = s.Attempts().Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 1 {
		t.Errorf("Count = %d, want 1", n)
	}
}

func TestOpen_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.Attempts().Save(ctx, testSummary("a1", time.Now())); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()
	n, err := s2.Attempts().Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 1 {
		t.Errorf("Count after reopen = %d, want 1", n)
	}
}

func TestDefaultDBPath_EnvOverride(t *testing.T) {
	want := filepath.Join(t.TempDir(), "custom", "q.db")
	t.Setenv("QUIZFORGE_DB", want)

	got, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("DefaultDBPath: %v", err)
	}
	if got != want {
		t.Errorf("path = %q, want %q", got, want)
	}
}

func TestDefaultDBPath_XDGFallback(t *testing.T) {
	t.Setenv("QUIZFORGE_DB", "")
	dataHome := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataHome)

	got, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("DefaultDBPath: %v", err)
	}
	want := filepath.Join(dataHome, "quizforge", "quizforge.db")
	if got != want {
		t.Errorf("path = %q, want %q", got, want)
	}
}
