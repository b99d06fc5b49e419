// Package welcome is the splash shown before the intro screen.
package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pathcheck/internal/router"
	"github.com/abhisek/pathcheck/internal/screen"
	"github.com/abhisek/pathcheck/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	chartEnd     = 1000 * time.Millisecond
	bannerAt     = 1200 * time.Millisecond
	totalDur     = 2000 * time.Millisecond
)

// chartHeights is the rising bar chart drawn above the banner.
var chartHeights = []int{2, 3, 2, 4, 3, 5, 4, 6, 7}

type tickMsg time.Time

// WelcomeScreen animates a small chart and the banner. Any key moves on.
type WelcomeScreen struct {
	next         func() screen.Screen
	elapsed      time.Duration
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that hands over to the screen built by next.
func New(next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{next: next}
}

func (w *WelcomeScreen) Title() string { return "" }

func (w *WelcomeScreen) Init() tea.Cmd { return tick() }

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.elapsed >= totalDur {
			return w, nil
		}
		w.elapsed += tickInterval
		return w, tick()
	case tea.KeyPressMsg:
		return w, w.transition()
	}
	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	next := w.next()
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

// chart draws the bars grown to the current point of the animation.
func (w *WelcomeScreen) chart() string {
	frac := min(float64(w.elapsed)/float64(chartEnd), 1)
	top := chartHeights[len(chartHeights)-1]

	rows := make([]string, top)
	for r := range top {
		level := top - r
		var b strings.Builder
		for i, h := range chartHeights {
			shown := int(float64(h)*frac + 0.5)
			if shown >= level {
				style := lipgloss.NewStyle().Foreground(theme.Secondary)
				if i == len(chartHeights)-1 {
					style = lipgloss.NewStyle().Foreground(theme.Accent)
				}
				b.WriteString(style.Render("██"))
			} else {
				b.WriteString("  ")
			}
			b.WriteString(" ")
		}
		rows[r] = b.String()
	}
	return strings.Join(rows, "\n")
}

func (w *WelcomeScreen) View(width, height int) string {
	parts := []string{w.chart()}

	if w.elapsed >= bannerAt {
		parts = append(parts,
			"",
			RenderBanner(width),
			"",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
				Render("Is a career in financial analysis right for you?"),
			"",
			theme.Hint.Render("press any key to begin"),
		)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(parts, "\n"))
}
