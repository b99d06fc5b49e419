package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/pathcheck/internal/ui/theme"
)

// ProgressBar is a horizontal bar filled to Percent (0..1).
type ProgressBar struct {
	Label       string
	LabelWidth  int
	Percent     float64
	ShowPercent bool
	Width       int
	Fill        color.Color
}

// NewProgressBar creates a bar filled with the secondary color.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
		Fill:        theme.Secondary,
	}
}

// View renders the bar.
func (p ProgressBar) View() string {
	var out string
	if p.Label != "" {
		out = lipgloss.NewStyle().
			Foreground(theme.Text).
			Width(max(p.LabelWidth, lipgloss.Width(p.Label))).
			Render(p.Label) + "  "
	}

	suffix := ""
	if p.ShowPercent {
		suffix = fmt.Sprintf("  %3d%%", int(clamp01(p.Percent)*100+0.5))
	}

	bar := max(p.Width-lipgloss.Width(out)-len(suffix), 4)
	filled := int(float64(bar) * clamp01(p.Percent))

	out += lipgloss.NewStyle().Background(p.Fill).Render(strings.Repeat(" ", filled)) +
		lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", bar-filled))
	if suffix != "" {
		out += lipgloss.NewStyle().Foreground(theme.TextDim).Render(suffix)
	}
	return out
}

func clamp01(f float64) float64 {
	return min(max(f, 0), 1)
}
