package flappy

import "github.com/vovakirdan/flap/internal/core"

// Audio cue names requested by the game.
const (
	CueWing   = "wing"   // Flap
	CuePoint  = "point"  // Obstacle passed
	CueHit    = "hit"    // Fatal collision
	CueSwoosh = "swoosh" // Title button pressed
)

// UI shows and hides the overlay widgets. Each element is a singleton;
// implementations report spawning an active element or touching an
// inactive one as an error.
type UI interface {
	Spawn(el core.Element) error
	Despawn(el core.Element) error
	SetText(el core.Element, text string) error
	// Clear hides every element.
	Clear()
}

// Audio plays named cues. Play must not block the tick.
type Audio interface {
	Play(cue string)
}

type nopUI struct{}

func (nopUI) Spawn(core.Element) error { return nil }
func (nopUI) Despawn(core.Element) error { return nil }
func (nopUI) SetText(core.Element, string) error { return nil }
func (nopUI) Clear() {}

type nopAudio struct{}

func (nopAudio) Play(string) {}
