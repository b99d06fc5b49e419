package welcome

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pathcheck/internal/router"
	"github.com/abhisek/pathcheck/internal/screen"
)

type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                          { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                   { return "intro" }
func (s *stubScreen) Title() string                          { return "Intro" }

func newTestWelcome() (*WelcomeScreen, *int) {
	calls := 0
	return New(func() screen.Screen {
		calls++
		return &stubScreen{}
	}), &calls
}

func sendTicks(w *WelcomeScreen, n int) tea.Cmd {
	var cmd tea.Cmd
	for i := 0; i < n; i++ {
		_, cmd = w.Update(tickMsg(time.Now()))
	}
	return cmd
}

func TestBannerAppearsAfterChart(t *testing.T) {
	w, _ := newTestWelcome()

	if strings.Contains(w.View(100, 30), "press any key") {
		t.Error("banner should not be visible at start")
	}

	sendTicks(w, 12)
	if !strings.Contains(w.View(100, 30), "press any key") {
		t.Error("banner should be visible after 1.2s")
	}
}

func TestTicksStopAtEnd(t *testing.T) {
	w, _ := newTestWelcome()

	if cmd := sendTicks(w, 19); cmd == nil {
		t.Error("ticks should continue during the animation")
	}
	sendTicks(w, 10)
	if w.elapsed != totalDur {
		t.Errorf("elapsed = %v, want capped at %v", w.elapsed, totalDur)
	}
	if cmd := sendTicks(w, 1); cmd != nil {
		t.Error("no more ticks once the animation is done")
	}
}

func TestKeypressTransitionsOnce(t *testing.T) {
	w, calls := newTestWelcome()
	sendTicks(w, 3)

	_, cmd := w.Update(tea.KeyPressMsg{Code: ' '})
	if cmd == nil {
		t.Fatal("keypress should trigger transition")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Fatal("expected ReplaceScreenMsg")
	}

	_, cmd = w.Update(tea.KeyPressMsg{Code: 'a'})
	if cmd != nil {
		t.Error("second keypress should not produce a command")
	}
	if *calls != 1 {
		t.Errorf("factory called %d times, want 1", *calls)
	}
}

func TestCompactBanner(t *testing.T) {
	if !strings.Contains(RenderBanner(40), "P A T H C H E C K") {
		t.Error("narrow terminals should get the compact banner")
	}
}
