package question

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/pathcheck/internal/catalog"
	"github.com/abhisek/pathcheck/internal/ui/components"
	"github.com/abhisek/pathcheck/internal/ui/theme"
)

func (s *QuestionScreen) View(width, height int) string {
	q, ok := s.state.CurrentQuestion()
	if !ok {
		return ""
	}
	sec := s.state.CurrentSection()
	colWidth := min(width-4, 90)

	var b strings.Builder
	b.WriteString(theme.Heading.Render(sec.Name))
	b.WriteString("  ")
	b.WriteString(theme.Hint.Render("Est. time: " + sec.TimeEstimate))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render(sec.Description))
	b.WriteString("\n\n")

	progress := float64(s.state.Position()) / float64(s.state.TotalQuestions())
	b.WriteString(components.NewProgressBar(s.Status(), progress, true, colWidth).View())
	b.WriteString("\n\n")

	b.WriteString(s.card(q, colWidth))
	b.WriteString("\n\n")

	b.WriteString(s.buttons())
	if s.notice != "" {
		b.WriteString("\n")
		b.WriteString(theme.ErrorText.Render(s.notice))
	}
	if s.confirmQuit {
		b.WriteString("\n\n")
		b.WriteString(theme.Chosen.Render("Abandon this assessment? Your answers will be discarded. (y/n)"))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Width(colWidth).Render(b.String()))
}

func (s *QuestionScreen) card(q catalog.Question, width int) string {
	var b strings.Builder
	b.WriteString(theme.Category.Render(q.Category))
	b.WriteString("\n")
	b.WriteString(theme.Body.Bold(true).Render(q.Title))
	if q.Description != "" {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render(q.Description))
	}
	b.WriteString("\n\n")

	if q.Kind == catalog.KindScale {
		b.WriteString(s.scale.View())
	} else {
		b.WriteString(s.choices.View())
	}

	return theme.Card.Width(width).Render(b.String())
}

func (s *QuestionScreen) buttons() string {
	label := "Next →"
	if s.state.IsLastQuestion() {
		label = "Complete Assessment"
	}
	answered := true
	if s.isScale() {
		answered = s.scale.Set
	}

	prev := components.NewButton("← Previous", s.state.CanRetreat())
	next := components.NewButton(label, answered)
	return lipgloss.JoinHorizontal(lipgloss.Center, prev.View(), "  ", next.View())
}
