package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pathcheck/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with a label and an error line.
type TextInput struct {
	Label string
	Model textinput.Model
	Err   string
}

// NewTextInput creates a focused input prefilled with value.
func NewTextInput(label, placeholder, value string, charLimit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = charLimit
	ti.SetValue(value)
	ti.Focus()
	return TextInput{Label: label, Model: ti}
}

// Init starts the cursor blinking.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update forwards messages to the underlying input and clears any error
// once the user edits.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if _, ok := msg.(tea.KeyPressMsg); ok {
		t.Err = ""
	}
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// Value returns the trimmed input.
func (t TextInput) Value() string {
	return strings.TrimSpace(t.Model.Value())
}

// View renders label, input and error.
func (t TextInput) View() string {
	out := theme.Body.Render(t.Label) + "\n" + t.Model.View()
	if t.Err != "" {
		out += "\n" + theme.ErrorText.Render(t.Err)
	}
	return out
}
