package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"quizforge/internal/quizgen"
	"quizforge/internal/ui/theme"
)

func timerStatus(index, total, correct, mins, secs int) string {
	return fmt.Sprintf("Q %d/%d  ✔ %d  %d:%02d", index+1, total, correct, mins, secs)
}

func (s *Screen) View(width, height int) string {
	switch s.phase {
	case phaseQuitConfirm:
		return renderQuitConfirm(width)
	case phaseFeedback:
		return s.renderFeedback(width)
	default:
		return s.renderQuestion(width)
	}
}

// renderQuestion renders the active question with its input component.
func (s *Screen) renderQuestion(width int) string {
	q := s.current()

	var b strings.Builder

	conceptLine := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Concept: %s", q.Concept))
	b.WriteString(conceptLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	if q.Type == quizgen.TypeMCQ {
		b.WriteString(lipgloss.NewStyle().Width(width).Padding(0, 2).Render(s.mc.View()))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Select (1-4) or use arrows + Enter"))
		return b.String()
	}

	promptStyle := lipgloss.NewStyle().
		Width(width).
		Padding(0, 2).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(promptStyle.Render(q.Prompt))
	b.WriteString("\n\n")

	answerLine := lipgloss.NewStyle().
		Width(width).
		Padding(0, 2).
		Render("Answer: " + s.input.View())
	b.WriteString(answerLine)

	if q.Type == quizgen.TypeFillup {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Separate multiple blanks with commas, in sentence order"))
	}

	return b.String()
}

// renderFeedback shows the verdict, the correct answer, and the
// explanation for the question just answered.
func (s *Screen) renderFeedback(width int) string {
	q := s.current()

	var b strings.Builder
	b.WriteString("\n")

	if s.lastCorrect {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("Correct!"))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("Not quite."))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Render(fmt.Sprintf("Correct answer: %s", q.CorrectAnswer)))
	}

	if q.Explanation != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Padding(0, 4).
			Foreground(theme.TextDim).
			Render(q.Explanation))
	}

	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Italic(true).
		Render("Press any key to continue"))

	return b.String()
}

func renderQuitConfirm(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render("\n\nAbandon this quiz?\n\nProgress will not be saved.  (y/n)")
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
