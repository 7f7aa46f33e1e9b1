package hud

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/flap/internal/core"
	"github.com/vovakirdan/flap/internal/registry"
)

func TestOverlaySingletons(t *testing.T) {
	o := New()

	if err := o.Spawn(core.ElementTitle); err != nil {
		t.Fatalf("Spawn() error = %v", err)
	}
	if err := o.Spawn(core.ElementTitle); !errors.Is(err, registry.ErrAlreadyActive) {
		t.Errorf("second Spawn() = %v, expected ErrAlreadyActive", err)
	}
	if err := o.Despawn(core.ElementReady); !errors.Is(err, registry.ErrNotActive) {
		t.Errorf("Despawn() of inactive element = %v, expected ErrNotActive", err)
	}
	if err := o.SetText(core.ElementScore, "3"); !errors.Is(err, registry.ErrNotActive) {
		t.Errorf("SetText() of inactive element = %v, expected ErrNotActive", err)
	}
}

func TestOverlayPanelsInElementOrder(t *testing.T) {
	o := New()
	_ = o.Spawn(core.ElementReady)
	_ = o.Spawn(core.ElementScore)
	_ = o.SetText(core.ElementScore, "12")

	panels := o.Panels()
	if len(panels) != 2 {
		t.Fatalf("Panels() returned %d panels, expected 2", len(panels))
	}
	if panels[0].Element != core.ElementReady || panels[1].Element != core.ElementScore {
		t.Errorf("panel order = %v, %v", panels[0].Element, panels[1].Element)
	}
	if panels[1].Lines[0] != "12" {
		t.Errorf("score panel line = %q, expected %q", panels[1].Lines[0], "12")
	}
}

func TestOverlayClear(t *testing.T) {
	o := New()
	_ = o.Spawn(core.ElementTitle)
	_ = o.Spawn(core.ElementSettings)
	o.Clear()

	if o.Active(core.ElementTitle) || o.Active(core.ElementSettings) {
		t.Error("Clear should deactivate every element")
	}
}

func TestDrawTitle(t *testing.T) {
	o := New()
	_ = o.Spawn(core.ElementTitle)

	s := core.NewScreen(60, 20)
	o.Draw(s)

	if !strings.Contains(s.String(), "F L A P") {
		t.Errorf("title not drawn:\n%s", s.String())
	}
	if !strings.Contains(s.String(), "┌") {
		t.Errorf("title box not drawn:\n%s", s.String())
	}
}

func TestDrawSettingsText(t *testing.T) {
	o := New()
	_ = o.Spawn(core.ElementSettings)
	_ = o.SetText(core.ElementSettings, "gravity -981\nspeed 150")

	s := core.NewScreen(60, 24)
	o.Draw(s)

	out := s.String()
	for _, want := range []string{"Settings", "gravity -981", "speed 150", "[Esc] Back"} {
		if !strings.Contains(out, want) {
			t.Errorf("settings panel missing %q:\n%s", want, out)
		}
	}
}
