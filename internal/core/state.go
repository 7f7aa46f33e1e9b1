package core

// GameState represents the current state of a run.
// Returned by State() to communicate status to the platform.
type GameState struct {
	Score    int    // Current score
	GameOver bool   // Whether the run has ended
	Phase    string // Name of the active phase
}

// StepResult is returned by Step() after each simulation tick.
type StepResult struct {
	State GameState
}
