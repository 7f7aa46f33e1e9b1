package core

// Element identifies one of the overlay widgets the game asks the UI to show.
// Each element is a singleton: it is either active once or not at all.
type Element int

const (
	ElementTitle    Element = iota // Title screen with the Play and Settings buttons
	ElementReady                   // "Tap to start" prompt
	ElementScore                   // Running score counter
	ElementSettings                // Settings panel
	ElementGameOver                // Game over banner
)

// String returns the element name used in logs.
func (e Element) String() string {
	switch e {
	case ElementTitle:
		return "title"
	case ElementReady:
		return "ready"
	case ElementScore:
		return "score"
	case ElementSettings:
		return "settings"
	case ElementGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}
