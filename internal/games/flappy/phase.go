package flappy

// Phase is the top-level state of the game.
type Phase int

const (
	PhaseMainTitle Phase = iota // Title screen, initial phase
	PhaseTapTap                 // Waiting for the first flap
	PhaseInGame                 // Playing
	PhaseGameOver               // Run ended, world frozen
	PhaseSettings               // Settings panel
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseMainTitle:
		return "MainTitle"
	case PhaseTapTap:
		return "TapTap"
	case PhaseInGame:
		return "InGame"
	case PhaseGameOver:
		return "GameOver"
	case PhaseSettings:
		return "Settings"
	default:
		return "Unknown"
	}
}

// edges lists the valid transitions. Leaving GameOver is not an edge: it
// happens only through Reset.
var edges = map[Phase][]Phase{
	PhaseMainTitle: {PhaseTapTap, PhaseSettings},
	PhaseSettings:  {PhaseMainTitle},
	PhaseTapTap:    {PhaseInGame},
	PhaseInGame:    {PhaseGameOver},
}

// CanTransition reports whether from -> to is a valid edge.
func CanTransition(from, to Phase) bool {
	for _, p := range edges[from] {
		if p == to {
			return true
		}
	}
	return false
}

// scrollsSky reports whether the sky strip moves in phase p.
func (p Phase) scrollsSky() bool {
	return p != PhaseGameOver
}

// scrollsGround reports whether the ground strip moves in phase p.
func (p Phase) scrollsGround() bool {
	return p == PhaseTapTap || p == PhaseInGame
}

// controllable reports whether the player reacts to flaps and the
// velocity limits in phase p.
func (p Phase) controllable() bool {
	return p == PhaseTapTap || p == PhaseInGame
}
