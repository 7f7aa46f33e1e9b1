package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame // zero value must be usable

	if f.Has(ActionFlap) {
		t.Error("empty frame should not report Flap")
	}

	f.Set(ActionFlap)
	f.Set(ActionPlay)
	if !f.Has(ActionFlap) || !f.Has(ActionPlay) {
		t.Error("Set actions should be reported by Has")
	}

	f.Clear()
	if f.Has(ActionFlap) || f.Has(ActionPlay) {
		t.Error("Clear should remove all actions")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionFlap, "Flap"},
		{ActionPlay, "Play"},
		{ActionSettings, "Settings"},
		{ActionBack, "Back"},
		{ActionRestart, "Restart"},
		{ActionQuit, "Quit"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.action, got, tc.expected)
		}
	}
}
