// Package hud implements the overlay widgets the game spawns and despawns:
// title, tap-to-start prompt, score, settings panel and game over banner.
// The same Overlay backs the terminal and the window frontends; each draws
// its Panels in its own way.
package hud

import (
	"strings"

	"github.com/vovakirdan/flap/internal/core"
	"github.com/vovakirdan/flap/internal/registry"
)

// Panel is a drawable widget.
type Panel struct {
	Element core.Element
	Lines   []string
	Boxed   bool    // Draw a frame around the lines
	Anchor  float64 // Vertical center as a fraction of the screen height
	Color   core.Color
}

// Overlay tracks the active widgets. Each element is a singleton, enforced
// by the underlying registry.
type Overlay struct {
	widgets *registry.Registry[core.Element, string]
}

// New creates an overlay with no active widgets.
func New() *Overlay {
	return &Overlay{widgets: registry.New[core.Element, string]()}
}

// Spawn activates an element with empty text.
func (o *Overlay) Spawn(el core.Element) error {
	return o.widgets.Register(el, "")
}

// Despawn deactivates an element.
func (o *Overlay) Despawn(el core.Element) error {
	return o.widgets.Remove(el)
}

// SetText sets the variable text of an active element.
func (o *Overlay) SetText(el core.Element, text string) error {
	return o.widgets.Update(el, text)
}

// Clear deactivates every element.
func (o *Overlay) Clear() {
	o.widgets.Clear()
}

// Active reports whether el is shown.
func (o *Overlay) Active(el core.Element) bool {
	return o.widgets.Has(el)
}

// Text returns the variable text of el.
func (o *Overlay) Text(el core.Element) (string, bool) {
	return o.widgets.Get(el)
}

// Panels returns the active widgets in element order.
func (o *Overlay) Panels() []Panel {
	keys := o.widgets.Keys()
	panels := make([]Panel, 0, len(keys))
	for _, el := range keys {
		text, _ := o.widgets.Get(el)
		panels = append(panels, layout(el, text))
	}
	return panels
}

// layout builds the fixed content of each widget around its text.
func layout(el core.Element, text string) Panel {
	switch el {
	case core.ElementTitle:
		return Panel{
			Element: el,
			Lines:   []string{"F L A P", "", "[Enter] Play    [S] Settings"},
			Boxed:   true,
			Anchor:  0.3,
			Color:   core.ColorBrightYellow,
		}
	case core.ElementReady:
		return Panel{
			Element: el,
			Lines:   []string{"Get ready!", "tap space or click to flap"},
			Anchor:  0.35,
			Color:   core.ColorBrightWhite,
		}
	case core.ElementScore:
		return Panel{
			Element: el,
			Lines:   []string{text},
			Anchor:  0.08,
			Color:   core.ColorBrightWhite,
		}
	case core.ElementSettings:
		lines := append([]string{"Settings", ""}, strings.Split(text, "\n")...)
		lines = append(lines, "", "[Esc] Back")
		return Panel{
			Element: el,
			Lines:   lines,
			Boxed:   true,
			Anchor:  0.45,
			Color:   core.ColorCyan,
		}
	case core.ElementGameOver:
		return Panel{
			Element: el,
			Lines:   []string{"GAME OVER", text, "", "[R] Restart    [Esc] Title"},
			Boxed:   true,
			Anchor:  0.4,
			Color:   core.ColorRed,
		}
	default:
		return Panel{Element: el, Lines: []string{text}, Anchor: 0.5}
	}
}
