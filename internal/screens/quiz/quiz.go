// Package quiz implements the interactive quiz-taking screen.
package quiz

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"quizforge/internal/attempt"
	"quizforge/internal/quizgen"
	"quizforge/internal/router"
	"quizforge/internal/screen"
	"quizforge/internal/screens/summary"
	"quizforge/internal/store"
	"quizforge/internal/ui/components"
	"quizforge/internal/ui/layout"
)

type phase int

const (
	phaseAnswering phase = iota
	phaseFeedback
	phaseQuitConfirm
)

// Screen runs one quiz attempt question by question.
type Screen struct {
	quiz    *quizgen.QuizSet
	repo    *store.AttemptRepo
	answers attempt.AnswerRecord

	index   int
	correct int
	phase   phase

	started time.Time
	elapsed time.Duration

	mc          components.MultiChoice
	input       components.TextInput
	lastCorrect bool
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.StatusProvider = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates a quiz screen for the given set. repo may be nil, in
// which case the attempt is not persisted.
func New(quiz *quizgen.QuizSet, repo *store.AttemptRepo) *Screen {
	s := &Screen{
		quiz:    quiz,
		repo:    repo,
		answers: make(attempt.AnswerRecord),
		started: time.Now(),
	}
	s.setupQuestion()
	return s
}

func (s *Screen) Init() tea.Cmd {
	return tea.Batch(s.input.Init(), tickCmd())
}

func (s *Screen) Title() string {
	if s.quiz.Title != "" {
		return s.quiz.Title
	}
	switch s.quiz.Type {
	case quizgen.TypeMCQ:
		return "Multiple Choice"
	case quizgen.TypeFillup:
		return "Fill in the Blanks"
	default:
		return "Short Answer"
	}
}

func (s *Screen) Status() string {
	mins := int(s.elapsed.Minutes())
	secs := int(s.elapsed.Seconds()) % 60
	return timerStatus(s.index, len(s.quiz.Questions), s.correct, mins, secs)
}

func (s *Screen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseQuitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "Abandon quiz"},
			{Key: "N", Description: "Keep going"},
		}
	case phaseFeedback:
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	default:
		if s.current().Type == quizgen.TypeMCQ {
			return []layout.KeyHint{
				{Key: "↑↓/1-4", Description: "Choose"},
				{Key: "Enter", Description: "Submit"},
				{Key: "Esc", Description: "Quit"},
			}
		}
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Quit"},
		}
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		s.elapsed = time.Since(s.started)
		return s, tickCmd()

	case feedbackDoneMsg:
		return s.advance()

	case quizDoneMsg:
		return s.finish()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.phase == phaseAnswering && s.current().Type != quizgen.TypeMCQ {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *Screen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch s.phase {
	case phaseQuitConfirm:
		switch key {
		case "y", "Y":
			return s, tea.Quit
		case "n", "N", "esc":
			s.phase = phaseAnswering
		}
		return s, nil

	case phaseFeedback:
		return s, func() tea.Msg { return feedbackDoneMsg{} }
	}

	// Answering.
	if key == "esc" {
		s.phase = phaseQuitConfirm
		return s, nil
	}

	if s.current().Type == quizgen.TypeMCQ {
		var cmd tea.Cmd
		s.mc, cmd = s.mc.Update(msg)
		if s.mc.Submitted {
			return s.submit(s.mc.Value())
		}
		return s, cmd
	}

	if key == "enter" {
		if s.input.Value() == "" {
			return s, nil
		}
		return s.submit(s.input.Value())
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// submit records the answer and switches to the feedback phase.
func (s *Screen) submit(answer string) (screen.Screen, tea.Cmd) {
	q := s.current()
	s.answers[q.ID] = answer
	s.lastCorrect = attempt.Evaluate(q, answer)
	if s.lastCorrect {
		s.correct++
	}
	s.input.Submit(s.lastCorrect)
	s.phase = phaseFeedback
	return s, nil
}

// advance moves to the next question, or finishes after the last one.
func (s *Screen) advance() (screen.Screen, tea.Cmd) {
	if s.index+1 >= len(s.quiz.Questions) {
		return s, func() tea.Msg { return quizDoneMsg{} }
	}
	s.index++
	s.phase = phaseAnswering
	s.setupQuestion()
	return s, s.input.Init()
}

// finish grades the attempt, persists it, and hands off to the summary.
func (s *Screen) finish() (screen.Screen, tea.Cmd) {
	sum := attempt.Grade(s.quiz, s.answers, time.Since(s.started))

	var saveErr error
	if s.repo != nil {
		saveErr = s.repo.Save(context.Background(), sum)
	}

	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(sum, saveErr)}
	}
}

// setupQuestion prepares the input component for the current question.
func (s *Screen) setupQuestion() {
	q := s.current()
	if q.Type == quizgen.TypeMCQ {
		correctIdx := 0
		for i, opt := range q.Options {
			if opt == q.CorrectAnswer {
				correctIdx = i
				break
			}
		}
		s.mc = components.NewMultiChoice(q.Prompt, q.Options, correctIdx)
	} else {
		s.input = components.NewTextInput("Type your answer...", 120)
	}
}

func (s *Screen) current() quizgen.Question {
	return s.quiz.Questions[s.index]
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
