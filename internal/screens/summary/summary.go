// Package summary displays the graded result of a quiz attempt.
package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"quizforge/internal/attempt"
	"quizforge/internal/insights"
	"quizforge/internal/screen"
	"quizforge/internal/ui/components"
	"quizforge/internal/ui/layout"
	"quizforge/internal/ui/theme"
)

// SummaryScreen displays the attempt summary with concept breakdown.
type SummaryScreen struct {
	summary *attempt.Summary
	stats   []insights.ConceptStat
	saveErr error
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen. saveErr, when non-nil, is surfaced
// as a warning line so a failed history write is not silent.
func New(summary *attempt.Summary, saveErr error) *SummaryScreen {
	return &SummaryScreen{
		summary: summary,
		stats:   insights.ConceptStats(summary.Feedback),
		saveErr: saveErr,
	}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Results"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Done"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc", "q":
			return s, tea.Quit
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(insights.Headline(sum.Percentage)))
	b.WriteString("\n\n")

	mins := int(sum.TimeSpent.Minutes())
	secs := int(sum.TimeSpent.Seconds()) % 60
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Time: %d:%02d", mins, secs)))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Score: %d/%d        Accuracy: %d%%        Points: %d/%d",
		sum.Score, sum.TotalQuestions, sum.Percentage, sum.PointsEarned, sum.PointsTotal)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Concepts")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	barWidth := min(width-8, 60)
	labelWidth := 0
	for _, cs := range s.stats {
		if len(cs.Concept) > labelWidth {
			labelWidth = len(cs.Concept)
		}
	}
	for _, cs := range s.stats {
		label := fmt.Sprintf("%-*s %d/%d", labelWidth, cs.Concept, cs.Correct, cs.Total)
		bar := components.NewProgressBar(label, float64(cs.Percentage)/100, true, barWidth)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	for _, rec := range insights.Recommendations(s.stats) {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Accent).Render("• "+rec)))
		b.WriteString("\n")
	}
	for _, line := range insights.Strengths(s.stats) {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Success).Render("• "+line)))
		b.WriteString("\n")
	}

	if s.saveErr != nil {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).
				Render(fmt.Sprintf("Could not save attempt: %v", s.saveErr))))
		b.WriteString("\n")
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
