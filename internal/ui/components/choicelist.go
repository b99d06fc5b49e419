package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pathcheck/internal/ui/theme"
)

// ChoiceList is a vertical list of options with a cursor. Cursor and Chosen
// are -1 until an option is highlighted or recorded.
type ChoiceList struct {
	Options []string
	Cursor  int
	Chosen  int
}

// NewChoiceList creates a list. When chosen matches an option the cursor
// starts on it; otherwise nothing is highlighted.
func NewChoiceList(options []string, chosen string) ChoiceList {
	c := ChoiceList{Options: options, Cursor: -1, Chosen: -1}
	for i, opt := range options {
		if opt == chosen {
			c.Cursor, c.Chosen = i, i
			break
		}
	}
	return c
}

// Update moves the cursor with up/down (or k/j) and jumps with number keys.
func (c ChoiceList) Update(msg tea.Msg) ChoiceList {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return c
	}

	switch s := kmsg.String(); s {
	case "up", "k":
		if c.Cursor < 0 {
			c.Cursor = 0
		} else if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Options)-1 {
			c.Cursor++
		}
	default:
		if len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
			if i := int(s[0] - '1'); i < len(c.Options) {
				c.Cursor = i
			}
		}
	}
	return c
}

// HasHighlight reports whether an option is under the cursor.
func (c ChoiceList) HasHighlight() bool {
	return c.Cursor >= 0 && c.Cursor < len(c.Options)
}

// Highlighted returns the option under the cursor, or "" when none is.
func (c ChoiceList) Highlighted() string {
	if !c.HasHighlight() {
		return ""
	}
	return c.Options[c.Cursor]
}

// View renders the options, one per line.
func (c ChoiceList) View() string {
	var b strings.Builder
	for i, opt := range c.Options {
		prefix := "  "
		if i == c.Cursor {
			prefix = "▸ "
		}
		mark := " "
		if i == c.Chosen {
			mark = "●"
		}
		line := fmt.Sprintf("%s%d) %s %s", prefix, i+1, mark, opt)

		switch {
		case i == c.Cursor:
			b.WriteString(theme.Selected.Render(line))
		case i == c.Chosen:
			b.WriteString(theme.Chosen.Render(line))
		default:
			b.WriteString(theme.Unselected.Render(line))
		}
		b.WriteByte('\n')
	}
	return strings.TrimSuffix(b.String(), "\n")
}
