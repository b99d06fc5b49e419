package components

import (
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pathcheck/internal/ui/theme"
)

// Scale picks an integer in [Min, Max]. Set stays false until the user
// touches it.
type Scale struct {
	Min, Max  int
	Value     int
	Set       bool
	LowLabel  string
	HighLabel string
}

// NewScale creates a scale. When current is non-nil the scale starts on it.
func NewScale(lo, hi int, lowLabel, highLabel string, current *int) Scale {
	s := Scale{
		Min:       lo,
		Max:       hi,
		Value:     lo + (hi-lo)/2,
		LowLabel:  lowLabel,
		HighLabel: highLabel,
	}
	if current != nil && *current >= lo && *current <= hi {
		s.Value, s.Set = *current, true
	}
	return s
}

// Update handles left/right (h/l) and digit keys, where 0 means 10. The
// first arrow press on an untouched scale selects the starting value. It
// reports whether this message set the value.
func (s Scale) Update(msg tea.Msg) (Scale, bool) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, false
	}

	switch k := kmsg.String(); k {
	case "left", "h":
		if s.Set && s.Value > s.Min {
			s.Value--
		}
	case "right", "l":
		if s.Set && s.Value < s.Max {
			s.Value++
		}
	default:
		if len(k) != 1 || k[0] < '0' || k[0] > '9' {
			return s, false
		}
		v := int(k[0] - '0')
		if v == 0 {
			v = 10
		}
		if v < s.Min || v > s.Max {
			return s, false
		}
		s.Value = v
	}
	s.Set = true
	return s, true
}

// View renders the row of values with the end-point labels underneath.
func (s Scale) View() string {
	cells := make([]string, 0, s.Max-s.Min+1)
	for v := s.Min; v <= s.Max; v++ {
		label := " " + strconv.Itoa(v) + " "
		switch {
		case s.Set && v == s.Value:
			cells = append(cells, theme.ButtonActive.Padding(0).Render(label))
		case v == s.Value:
			cells = append(cells, theme.Selected.Render(label))
		default:
			cells = append(cells, theme.Unselected.Render(label))
		}
	}
	row := strings.Join(cells, " ")

	width := lipgloss.Width(row)
	low := theme.Hint.Render(s.LowLabel)
	high := theme.Hint.Render(s.HighLabel)
	gap := max(width-lipgloss.Width(low)-lipgloss.Width(high), 1)

	return row + "\n" + low + strings.Repeat(" ", gap) + high
}
