// Package app hosts the root Bubble Tea model and wires screens together.
package app

import (
	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/pathcheck/internal/assessment"
	"github.com/abhisek/pathcheck/internal/router"
	"github.com/abhisek/pathcheck/internal/screen"
	"github.com/abhisek/pathcheck/internal/screens/intro"
	"github.com/abhisek/pathcheck/internal/screens/question"
	"github.com/abhisek/pathcheck/internal/screens/results"
	"github.com/abhisek/pathcheck/internal/screens/welcome"
	"github.com/abhisek/pathcheck/internal/ui/layout"
)

// Options holds the dependencies of the TUI.
type Options struct {
	Logger     *zap.Logger
	Assessment assessment.Options

	// Narrator is optional; nil disables the coach.
	Narrator results.Narrator

	ReportDir string

	// SkipSplash starts directly on the intro screen.
	SkipSplash bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	opts   Options
	width  int
	height int
}

func newAppModel(opts Options) AppModel {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	m := AppModel{opts: opts}
	if opts.SkipSplash {
		m.router = router.New(m.newIntro())
	} else {
		m.router = router.New(welcome.New(m.newIntro))
	}
	return m
}

func (m AppModel) newIntro() screen.Screen {
	return intro.New(m.newQuestion)
}

// newQuestion starts a fresh assessment. Restarting always discards the
// previous state.
func (m AppModel) newQuestion() screen.Screen {
	st := assessment.New(m.opts.Assessment)
	return question.New(st, m.opts.Logger, m.newResults, m.newIntro)
}

func (m AppModel) newResults(st *assessment.State) screen.Screen {
	return results.New(results.Options{
		Results:   st.Results(),
		Answers:   st.Answers(),
		SessionID: st.SessionID(),
		Narrator:  m.opts.Narrator,
		Logger:    m.opts.Logger,
		ReportDir: m.opts.ReportDir,
		Restart:   m.newQuestion,
	})
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	return m, m.router.Update(msg)
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render draws the full frame for the current window size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	var title, status string
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
		if hp, ok := active.(screen.KeyHintProvider); ok {
			hints = hp.KeyHints()
		}
	}

	header := layout.RenderHeader(title, status, m.width)
	footer := layout.RenderFooter(hints, m.width)
	content := m.router.View(m.width, layout.ContentHeight(header, footer, m.height))
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	_, err := tea.NewProgram(newAppModel(opts)).Run()
	return err
}
