package components

import (
	"github.com/abhisek/pathcheck/internal/ui/theme"
)

// Button is a label rendered as enabled or disabled.
type Button struct {
	Label   string
	Enabled bool
}

// NewButton creates a button.
func NewButton(label string, enabled bool) Button {
	return Button{Label: label, Enabled: enabled}
}

// View renders the button.
func (b Button) View() string {
	if b.Enabled {
		return theme.ButtonActive.Render(b.Label)
	}
	return theme.ButtonInactive.Render(b.Label)
}
