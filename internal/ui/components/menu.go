package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pathcheck/internal/ui/theme"
)

// MenuItem is one entry in a Menu.
type MenuItem struct {
	Label  string
	Action func() tea.Cmd
}

// Menu is a vertical list of actions.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a menu with the first item selected.
func NewMenu(items []MenuItem) Menu {
	return Menu{Items: items}
}

// Update moves the selection and runs the selected action on Enter.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Items)-1 {
			m.Selected++
		}
	case "enter":
		if m.Selected < len(m.Items) && m.Items[m.Selected].Action != nil {
			return m, m.Items[m.Selected].Action()
		}
	}
	return m, nil
}

// View renders the menu.
func (m Menu) View() string {
	lines := make([]string, len(m.Items))
	for i, item := range m.Items {
		if i == m.Selected {
			lines[i] = theme.Selected.Render("▸ " + item.Label)
		} else {
			lines[i] = theme.Unselected.Render("  " + item.Label)
		}
	}
	return strings.Join(lines, "\n")
}
