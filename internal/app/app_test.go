package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/pathcheck/internal/router"
	"github.com/abhisek/pathcheck/internal/screens/intro"
	"github.com/abhisek/pathcheck/internal/screens/question"
	"github.com/abhisek/pathcheck/internal/screens/results"
	"github.com/abhisek/pathcheck/internal/screens/welcome"
)

// drive feeds msg to the model and follows any command that produces a
// router message, the way the runtime would.
func drive(t *testing.T, m AppModel, msg tea.Msg) AppModel {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(AppModel)
	if cmd == nil {
		return m
	}
	switch out := cmd().(type) {
	case router.ReplaceScreenMsg, router.ResetScreenMsg, router.PushScreenMsg, router.PopScreenMsg:
		next, _ = m.Update(out)
		m = next.(AppModel)
	}
	return m
}

func TestStartsOnSplash(t *testing.T) {
	m := newAppModel(Options{})
	_, ok := m.router.Active().(*welcome.WelcomeScreen)
	require.True(t, ok)

	m = drive(t, m, tea.KeyPressMsg{Code: ' ', Text: " "})
	_, ok = m.router.Active().(*intro.IntroScreen)
	assert.True(t, ok, "any key leaves the splash")
	assert.Equal(t, 1, m.router.Depth())
}

func TestSkipSplashStartsOnIntro(t *testing.T) {
	m := newAppModel(Options{SkipSplash: true})
	_, ok := m.router.Active().(*intro.IntroScreen)
	assert.True(t, ok)
}

func TestFullWalkReachesResults(t *testing.T) {
	m := newAppModel(Options{ReportDir: t.TempDir()})
	m = drive(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	m = drive(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	_, ok := m.router.Active().(*intro.IntroScreen)
	require.True(t, ok, "splash hands over to intro")
	m = drive(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})

	_, ok = m.router.Active().(*question.QuestionScreen)
	require.True(t, ok, "enter on intro starts the assessment")

	for i := 0; i < 21; i++ {
		m = drive(t, m, tea.KeyPressMsg{Code: '5', Text: "5"})
		m = drive(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	}

	_, ok = m.router.Active().(*results.ResultsScreen)
	require.True(t, ok, "completion shows results")
	assert.Equal(t, 1, m.router.Depth())

	assert.True(t, strings.Contains(m.render(), "Your Results"))

	m = drive(t, m, tea.KeyPressMsg{Code: 'r', Text: "r"})
	qs, ok := m.router.Active().(*question.QuestionScreen)
	require.True(t, ok, "retake starts a fresh assessment")
	assert.Equal(t, "Question 1 of 21", qs.Status())
}

func TestCtrlCQuits(t *testing.T) {
	m := newAppModel(Options{})
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestTooSmall(t *testing.T) {
	m := newAppModel(Options{})
	m = drive(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	assert.Contains(t, m.render(), "Terminal too small")
}
