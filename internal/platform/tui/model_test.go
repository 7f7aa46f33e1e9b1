package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flap/internal/config"
	"github.com/vovakirdan/flap/internal/core"
	"github.com/vovakirdan/flap/internal/games/flappy"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapAction(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"space flaps", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionFlap},
		{"up flaps", tea.KeyMsg{Type: tea.KeyUp}, core.ActionFlap},
		{"enter plays", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionPlay},
		{"1 plays", runes("1"), core.ActionPlay},
		{"s opens settings", runes("s"), core.ActionSettings},
		{"esc goes back", tea.KeyMsg{Type: tea.KeyEscape}, core.ActionBack},
		{"b goes back", runes("b"), core.ActionBack},
		{"r restarts", runes("r"), core.ActionRestart},
		{"q quits", runes("q"), core.ActionQuit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"help is frontend only", runes("?"), core.ActionNone},
		{"unbound key", runes("x"), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.Action(tc.msg); got != tc.want {
				t.Errorf("Action(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
			}
		})
	}
}

func TestMouseAction(t *testing.T) {
	tests := []struct {
		msg  tea.MouseMsg
		want core.Action
	}{
		{tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, core.ActionFlap},
		{tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}, core.ActionNone},
		{tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, core.ActionNone},
		{tea.MouseMsg{Action: tea.MouseActionMotion}, core.ActionNone},
	}

	for _, tc := range tests {
		if got := MouseAction(tc.msg); got != tc.want {
			t.Errorf("MouseAction(%+v) = %v, expected %v", tc.msg, got, tc.want)
		}
	}
}

func TestFrameDelta(t *testing.T) {
	base := time.Unix(1000, 0)

	tests := []struct {
		name      string
		last, now time.Time
		want      time.Duration
	}{
		{"first tick", time.Time{}, base, 0},
		{"regular tick", base, base.Add(16 * time.Millisecond), 16 * time.Millisecond},
		{"stall is clamped", base, base.Add(2 * time.Second), maxFrame},
		{"clock went back", base, base.Add(-time.Second), 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := frameDelta(tc.last, tc.now); got != tc.want {
				t.Errorf("frameDelta() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	m, err := NewModel(config.Default(), Options{Seed: 1, Width: 80, Height: 25})
	if err != nil {
		t.Fatalf("NewModel() error = %v", err)
	}
	return m
}

func send(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func TestModelQueuesActionsUntilTick(t *testing.T) {
	m := newTestModel(t)
	now := time.Unix(1000, 0)

	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Game().Phase() != flappy.PhaseMainTitle {
		t.Fatal("key should not act before the tick")
	}

	m = send(m, TickMsg(now))
	if m.Game().Phase() != flappy.PhaseTapTap {
		t.Fatalf("phase = %v, expected TapTap", m.Game().Phase())
	}

	m = send(m,
		tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
		TickMsg(now.Add(16*time.Millisecond)),
	)
	if m.Game().Phase() != flappy.PhaseInGame {
		t.Errorf("phase = %v, expected InGame after a click", m.Game().Phase())
	}
}

func TestModelInputClearedAfterTick(t *testing.T) {
	m := newTestModel(t)
	now := time.Unix(1000, 0)

	m = send(m, runes("s"), TickMsg(now), runes("b"), TickMsg(now))
	if m.Game().Phase() != flappy.PhaseMainTitle {
		t.Fatalf("phase = %v, expected MainTitle", m.Game().Phase())
	}

	m = send(m, TickMsg(now))
	if m.Game().Phase() != flappy.PhaseMainTitle {
		t.Errorf("a consumed action was replayed: phase = %v", m.Game().Phase())
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)

	next, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quitting")
	}
}

type recordingSound struct {
	muted bool
}

func (s *recordingSound) Play(string) {}
func (s *recordingSound) SetMuted(muted bool) { s.muted = muted }

func TestModelMuteToggle(t *testing.T) {
	sound := &recordingSound{}
	m, err := NewModel(config.Default(), Options{Seed: 1, Sound: sound, Width: 80, Height: 25})
	if err != nil {
		t.Fatalf("NewModel() error = %v", err)
	}

	m = send(m, runes("m"))
	if !sound.muted {
		t.Error("m should mute")
	}
	send(m, runes("m"))
	if sound.muted {
		t.Error("second m should unmute")
	}
}

func TestModelViewFitsTerminal(t *testing.T) {
	m := newTestModel(t)
	m = send(m, tea.WindowSizeMsg{Width: 60, Height: 20})

	view := m.View()
	if lines := strings.Count(view, "\n") + 1; lines != 20 {
		t.Errorf("view has %d lines, expected 20", lines)
	}
	if !strings.Contains(view, "F L A P") {
		t.Error("title overlay missing from view")
	}
	if !strings.Contains(view, "flap") {
		t.Error("help footer missing from view")
	}
}

func TestModelHelpToggleShrinksScreen(t *testing.T) {
	m := newTestModel(t)
	m = send(m, tea.WindowSizeMsg{Width: 80, Height: 24})
	short := m.screen.Height()

	m = send(m, runes("?"))
	if m.screen.Height() >= short {
		t.Errorf("screen height %d, expected less than %d with full help", m.screen.Height(), short)
	}
}
