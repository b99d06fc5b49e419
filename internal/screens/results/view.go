package results

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/pathcheck/internal/scoring"
	"github.com/abhisek/pathcheck/internal/ui/components"
	"github.com/abhisek/pathcheck/internal/ui/theme"
)

func (s *ResultsScreen) View(width, height int) string {
	colWidth := min(width-4, 96)

	bottom := s.bottomBar()
	vpHeight := max(height-lipgloss.Height(bottom)-1, 1)

	s.viewport.SetWidth(colWidth)
	s.viewport.SetHeight(vpHeight)
	s.viewport.SetContent(s.content(colWidth))

	body := s.viewport.View() + "\n" + bottom
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, body)
}

func (s *ResultsScreen) bottomBar() string {
	switch {
	case s.saving:
		return s.input.View()
	case s.savedPath != "":
		return lipgloss.NewStyle().Foreground(theme.Success).Render("Report saved to " + s.savedPath)
	default:
		return theme.Hint.Render(fmt.Sprintf("%3.0f%%", s.viewport.ScrollPercent()*100))
	}
}

func (s *ResultsScreen) content(width int) string {
	r := s.opts.Results
	var b strings.Builder

	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	b.WriteString(center.Render(theme.ScoreColor(r.OverallScore).Render(r.Headline)))
	b.WriteString("\n")
	b.WriteString(center.Render(theme.Body.Render(fmt.Sprintf("Overall Score: %d/100   Recommendation: %s", r.OverallScore, r.Recommendation))))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Width(width).Foreground(theme.Text).Render(r.Summary))
	b.WriteString("\n\n")

	cardWidth := (width - 4) / 3
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		scoreCard("Psychometric Fit", fmt.Sprintf("%d", r.PsychometricScore), r.PsychometricScore*10, r.PsychometricInterpretation, cardWidth),
		"  ",
		scoreCard("Technical Readiness", fmt.Sprintf("%d%%", r.TechnicalScore), r.TechnicalScore, r.TechnicalInterpretation, cardWidth),
		"  ",
		scoreCard("Overall Confidence", fmt.Sprintf("%d", r.OverallScore), r.OverallScore, r.OverallInterpretation, cardWidth),
	)
	b.WriteString(cards)
	b.WriteString("\n\n")

	b.WriteString(theme.Heading.Render("WISCAR Analysis"))
	b.WriteString("\n")
	for _, d := range scoring.AllDimensions() {
		v := r.WISCAR.Get(d)
		bar := components.NewProgressBar(d.Label(), float64(v)/100, true, width)
		bar.LabelWidth = 18
		bar.Fill = theme.ScoreColor(v).GetForeground()
		b.WriteString(bar.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	writeList(&b, "Key Insights", r.Insights, "• ", width)
	s.writeCoach(&b, width)
	writeList(&b, "Career Paths", r.CareerPaths, "• ", width)

	b.WriteString(theme.Heading.Render("Learning Path"))
	b.WriteString("\n")
	for i, step := range r.LearningPath {
		b.WriteString(lipgloss.NewStyle().Width(width).Foreground(theme.Text).Render(fmt.Sprintf("%d. %s", i+1, step)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if len(r.Alternatives) > 0 {
		writeList(&b, "Alternative Careers to Consider", r.Alternatives, "• ", width)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (s *ResultsScreen) writeCoach(b *strings.Builder, width int) {
	switch s.phase {
	case coachOff:
		return
	case coachLoading:
		b.WriteString(theme.Heading.Render("Coach Notes"))
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("Asking your coach for a personal reading..."))
		b.WriteString("\n\n")
	case coachFailed:
		b.WriteString(theme.Heading.Render("Coach Notes"))
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("The coach is unavailable right now. The insights above still apply."))
		b.WriteString("\n\n")
	case coachReady:
		n := s.narrative
		b.WriteString(theme.Heading.Render("Coach Notes"))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Width(width).Foreground(theme.Text).Render(n.Summary))
		b.WriteString("\n\n")
		writeList(b, "Strengths", n.Strengths, "+ ", width)
		writeList(b, "Areas to Develop", n.Gaps, "* ", width)
		writeList(b, "Next Steps", n.NextSteps, "→ ", width)
	}
}

func writeList(b *strings.Builder, title string, items []string, bullet string, width int) {
	if len(items) == 0 {
		return
	}
	b.WriteString(theme.Heading.Render(title))
	b.WriteString("\n")
	item := lipgloss.NewStyle().Width(width).Foreground(theme.Text)
	for _, it := range items {
		b.WriteString(item.Render(bullet + it))
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

// scoreCard renders one score box. level picks the color on a 0-100 scale.
func scoreCard(title, value string, level int, interpretation string, width int) string {
	body := theme.Category.Render(title) + "\n" +
		theme.ScoreColor(level).Render(value) + "\n" +
		theme.Hint.Render(interpretation)
	return theme.Card.Width(width).Render(body)
}
