// Package results shows the scores, the recommendation and, when a coach
// is configured, a personalised narrative.
package results

import (
	"context"
	"path/filepath"
	"time"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/pathcheck/internal/answers"
	"github.com/abhisek/pathcheck/internal/coach"
	"github.com/abhisek/pathcheck/internal/report"
	"github.com/abhisek/pathcheck/internal/router"
	"github.com/abhisek/pathcheck/internal/scoring"
	"github.com/abhisek/pathcheck/internal/screen"
	"github.com/abhisek/pathcheck/internal/ui/components"
	"github.com/abhisek/pathcheck/internal/ui/layout"
)

// Narrator produces a coach narrative for finished results.
type Narrator interface {
	Narrate(ctx context.Context, in coach.Input) (*coach.Narrative, error)
}

type coachPhase int

const (
	coachOff coachPhase = iota
	coachLoading
	coachReady
	coachFailed
)

type narrativeMsg struct {
	narrative *coach.Narrative
	err       error
}

// Options configures a ResultsScreen.
type Options struct {
	Results   scoring.Results
	Answers   answers.Sets
	SessionID string

	// Narrator is optional; nil hides the coach section.
	Narrator Narrator
	Logger   *zap.Logger

	// ReportDir is the directory suggested when saving.
	ReportDir string

	// Restart builds the screen shown when the user starts over.
	Restart func() screen.Screen

	// Now defaults to time.Now.
	Now func() time.Time
}

// ResultsScreen renders Results in a scrollable viewport.
type ResultsScreen struct {
	opts   Options
	logger *zap.Logger

	phase     coachPhase
	narrative *coach.Narrative

	viewport viewport.Model

	saving    bool
	input     components.TextInput
	savedPath string
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)
var _ screen.StatusProvider = (*ResultsScreen)(nil)

// New creates a results screen.
func New(opts Options) *ResultsScreen {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.ReportDir == "" {
		opts.ReportDir = "."
	}
	s := &ResultsScreen{
		opts:     opts,
		logger:   opts.Logger.With(zap.String("session", opts.SessionID)),
		viewport: viewport.New(),
	}
	if opts.Narrator != nil {
		s.phase = coachLoading
	}
	return s
}

func (s *ResultsScreen) Init() tea.Cmd {
	if s.phase != coachLoading {
		return nil
	}
	narrator, in := s.opts.Narrator, coach.Input{Results: s.opts.Results, Answers: s.opts.Answers}
	return func() tea.Msg {
		n, err := narrator.Narrate(context.Background(), in)
		return narrativeMsg{narrative: n, err: err}
	}
}

func (s *ResultsScreen) Title() string { return "Your Results" }

func (s *ResultsScreen) Status() string {
	return "Recommendation: " + string(s.opts.Results.Recommendation)
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	if s.saving {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Save"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "s", Description: "Save report"},
		{Key: "r", Description: "Retake"},
		{Key: "q", Description: "Quit"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case narrativeMsg:
		s.handleNarrative(msg)
		return s, nil
	case tea.KeyPressMsg:
		if s.saving {
			return s, s.handleSaveKey(msg)
		}
		switch msg.String() {
		case "q", "esc":
			return s, tea.Quit
		case "r":
			s.logger.Info("assessment restarted")
			next := s.opts.Restart()
			return s, func() tea.Msg { return router.ResetScreenMsg{Screen: next} }
		case "s":
			return s, s.startSave()
		}
	}

	var cmd tea.Cmd
	s.viewport, cmd = s.viewport.Update(msg)
	return s, cmd
}

func (s *ResultsScreen) handleNarrative(msg narrativeMsg) {
	if msg.err != nil || msg.narrative == nil {
		s.phase = coachFailed
		s.logger.Warn("coach narrative unavailable", zap.Error(msg.err))
		return
	}
	s.phase = coachReady
	s.narrative = msg.narrative
}

func (s *ResultsScreen) startSave() tea.Cmd {
	s.saving = true
	def := filepath.Join(s.opts.ReportDir, report.Filename(s.opts.Now()))
	s.input = components.NewTextInput("Save report to:", "path/to/report.txt", def, 512)
	return s.input.Init()
}

func (s *ResultsScreen) handleSaveKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		s.saving = false
		return nil
	case "enter":
		path, err := report.Save(s.input.Value(), s.report())
		if err != nil {
			s.input.Err = err.Error()
			s.logger.Warn("report save failed", zap.Error(err))
			return nil
		}
		s.saving = false
		s.savedPath = path
		s.logger.Info("report saved", zap.String("path", path))
		return nil
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return cmd
}

func (s *ResultsScreen) report() report.Report {
	return report.Report{
		GeneratedAt: s.opts.Now(),
		SessionID:   s.opts.SessionID,
		Results:     s.opts.Results,
		Narrative:   s.narrative,
	}
}
