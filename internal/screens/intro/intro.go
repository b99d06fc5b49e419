// Package intro is the landing screen: what the role is and what the
// assessment covers.
package intro

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pathcheck/internal/catalog"
	"github.com/abhisek/pathcheck/internal/router"
	"github.com/abhisek/pathcheck/internal/screen"
	"github.com/abhisek/pathcheck/internal/ui/components"
	"github.com/abhisek/pathcheck/internal/ui/layout"
	"github.com/abhisek/pathcheck/internal/ui/theme"
)

var careerPaths = []string{
	"Investment Analyst",
	"Budget Analyst",
	"Corporate Finance Associate",
	"Portfolio Analyst",
	"Equity Research Associate",
}

var idealTraits = []string{
	"High analytical reasoning",
	"Attention to detail",
	"Comfort with numbers and datasets",
	"Curiosity about markets",
	"Persistence and growth mindset",
}

// IntroScreen explains the assessment and starts it.
type IntroScreen struct {
	start func() screen.Screen
	menu  components.Menu
}

var _ screen.Screen = (*IntroScreen)(nil)
var _ screen.KeyHintProvider = (*IntroScreen)(nil)

// New creates the intro. start builds the first question screen.
func New(start func() screen.Screen) *IntroScreen {
	s := &IntroScreen{start: start}
	s.menu = components.NewMenu([]components.MenuItem{
		{Label: "Start Assessment", Action: s.begin},
		{Label: "Quit", Action: func() tea.Cmd { return tea.Quit }},
	})
	return s
}

func (s *IntroScreen) begin() tea.Cmd {
	next := s.start()
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

func (s *IntroScreen) Init() tea.Cmd { return nil }

func (s *IntroScreen) Title() string { return "Readiness & Fit Assessment" }

func (s *IntroScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "q", Description: "Quit"},
	}
}

func (s *IntroScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "q", "esc":
			return s, tea.Quit
		case "s":
			return s, s.begin()
		}
	}
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *IntroScreen) View(width, height int) string {
	colWidth := min(width-4, 96)
	var b strings.Builder

	b.WriteString(theme.Title.Render("PathCheck: Financial Analyst"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render("Discover if you're well-suited, psychologically, cognitively and technically, to pursue a career in Financial Analysis."))
	b.WriteString("\n\n")

	b.WriteString(theme.Heading.Render("What is Financial Analysis?"))
	b.WriteString("\n")
	b.WriteString(theme.Body.Render("Financial Analysts assess economic trends, analyze financial statements, and make recommendations for investments, budgeting, and forecasting."))
	b.WriteString("\n\n")

	half := (colWidth - 4) / 2
	paths := column("Typical Career Paths", careerPaths, half)
	traits := column("Ideal Traits for Success", idealTraits, half)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, paths, "    ", traits))
	b.WriteString("\n\n")

	if !layout.IsCompactHeight(height) {
		b.WriteString(theme.Heading.Render("Assessment Overview"))
		b.WriteString("\n")
		for i, sec := range catalog.Sections() {
			fmt.Fprintf(&b, "%s  %s\n",
				theme.Body.Render(fmt.Sprintf("%d. %-24s", i+1, sec.Name)),
				theme.Hint.Render(fmt.Sprintf("%d questions, %s", sec.Len(), sec.TimeEstimate)))
		}
		b.WriteString(theme.Hint.Render(fmt.Sprintf("%d questions in total", catalog.TotalQuestions())))
		b.WriteString("\n\n")
	}

	b.WriteString(s.menu.View())

	content := lipgloss.NewStyle().Width(colWidth).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func column(title string, items []string, width int) string {
	lines := []string{theme.Category.Render(title)}
	for _, it := range items {
		lines = append(lines, theme.Body.Render("• "+it))
	}
	return lipgloss.NewStyle().Width(width).Render(strings.Join(lines, "\n"))
}
