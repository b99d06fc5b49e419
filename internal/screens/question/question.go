// Package question walks the user through the catalog one question at a
// time.
package question

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/pathcheck/internal/answers"
	"github.com/abhisek/pathcheck/internal/assessment"
	"github.com/abhisek/pathcheck/internal/catalog"
	"github.com/abhisek/pathcheck/internal/router"
	"github.com/abhisek/pathcheck/internal/screen"
	"github.com/abhisek/pathcheck/internal/ui/components"
	"github.com/abhisek/pathcheck/internal/ui/layout"
)

// QuestionScreen renders the current question and drives the flow
// controller from key presses.
type QuestionScreen struct {
	state      *assessment.State
	logger     *zap.Logger
	onComplete func(*assessment.State) screen.Screen
	onAbandon  func() screen.Screen

	choices components.ChoiceList
	scale   components.Scale

	confirmQuit bool
	notice      string
}

var _ screen.Screen = (*QuestionScreen)(nil)
var _ screen.KeyHintProvider = (*QuestionScreen)(nil)
var _ screen.StatusProvider = (*QuestionScreen)(nil)

// New creates the screen for a fresh or in-progress state. onComplete
// builds the screen shown after the last question; onAbandon builds the
// screen shown when the user quits midway.
func New(state *assessment.State, logger *zap.Logger,
	onComplete func(*assessment.State) screen.Screen, onAbandon func() screen.Screen) *QuestionScreen {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &QuestionScreen{
		state:      state,
		logger:     logger.With(zap.String("session", state.SessionID())),
		onComplete: onComplete,
		onAbandon:  onAbandon,
	}
	s.sync()
	return s
}

func (s *QuestionScreen) Init() tea.Cmd {
	s.logger.Info("assessment started", zap.Int("questions", s.state.TotalQuestions()))
	return nil
}

func (s *QuestionScreen) Title() string {
	return s.state.CurrentSection().Name
}

func (s *QuestionScreen) Status() string {
	return fmt.Sprintf("Question %d of %d", s.state.Position(), s.state.TotalQuestions())
}

func (s *QuestionScreen) KeyHints() []layout.KeyHint {
	if s.confirmQuit {
		return []layout.KeyHint{
			{Key: "y", Description: "Abandon"},
			{Key: "n", Description: "Keep going"},
		}
	}

	next := "Next"
	if s.state.IsLastQuestion() {
		next = "Complete"
	}
	var hints []layout.KeyHint
	if s.isScale() {
		hints = []layout.KeyHint{
			{Key: "←→/1-0", Description: "Rate"},
			{Key: "Enter", Description: next},
		}
	} else {
		hints = []layout.KeyHint{
			{Key: "↑↓/1-9", Description: "Choose"},
			{Key: "Enter", Description: "Answer & " + next},
		}
	}
	if s.state.CanRetreat() {
		hints = append(hints, layout.KeyHint{Key: "Bksp", Description: "Previous"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Quit"})
}

// sync rebuilds the input widgets for the current question, restoring any
// answer already recorded.
func (s *QuestionScreen) sync() {
	s.notice = ""
	q, ok := s.state.CurrentQuestion()
	if !ok {
		return
	}
	current, answered := s.state.CurrentAnswer()

	if q.Kind == catalog.KindScale {
		var v *int
		if f, ok := current.Float(); answered && ok {
			n := int(f)
			v = &n
		}
		s.scale = components.NewScale(q.ScaleMin(), q.ScaleMax(), q.ScaleLabels[0], q.ScaleLabels[1], v)
		return
	}

	text, _ := current.Text()
	s.choices = components.NewChoiceList(q.Choices(), text)
}

func (s *QuestionScreen) isScale() bool {
	q, ok := s.state.CurrentQuestion()
	return ok && q.Kind == catalog.KindScale
}

func (s *QuestionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	if s.confirmQuit {
		switch kmsg.String() {
		case "y":
			s.logger.Info("assessment abandoned", zap.Int("position", s.state.Position()))
			next := s.onAbandon()
			return s, func() tea.Msg { return router.ResetScreenMsg{Screen: next} }
		case "n", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}

	switch kmsg.String() {
	case "esc":
		s.confirmQuit = true
		return s, nil
	case "backspace", "p":
		s.previous()
		return s, nil
	case "enter":
		return s, s.submit()
	}

	if s.isScale() {
		var changed bool
		s.scale, changed = s.scale.Update(msg)
		if changed {
			s.record(answers.Number(float64(s.scale.Value)))
		}
		return s, nil
	}

	if kmsg.String() == "left" {
		s.previous()
		return s, nil
	}
	s.choices = s.choices.Update(msg)
	if s.choices.HasHighlight() {
		s.notice = ""
	}
	return s, nil
}

func (s *QuestionScreen) previous() {
	if !s.state.CanRetreat() {
		return
	}
	s.state.Retreat()
	s.sync()
}

func (s *QuestionScreen) record(a answers.Answer) {
	q, _ := s.state.CurrentQuestion()
	s.state.AnswerCurrent(a)
	s.notice = ""
	s.logger.Debug("answer recorded", zap.String("question", q.ID), zap.Stringer("value", a))
}

// submit records the highlighted choice, or checks that the scale was
// touched, then advances. Nothing advances until the question has a value.
func (s *QuestionScreen) submit() tea.Cmd {
	if s.isScale() {
		if !s.scale.Set {
			s.notice = "Pick a value before continuing."
			return nil
		}
	} else {
		if !s.choices.HasHighlight() {
			s.notice = "Choose an option before continuing."
			return nil
		}
		s.record(answers.Text(s.choices.Highlighted()))
	}

	s.state.Advance()
	if !s.state.IsComplete() {
		s.sync()
		return nil
	}

	res := s.state.Results()
	s.logger.Info("assessment complete",
		zap.Int("overall", res.OverallScore),
		zap.String("recommendation", string(res.Recommendation)),
		zap.Duration("elapsed", time.Since(s.state.StartedAt())))
	next := s.onComplete(s.state)
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}
