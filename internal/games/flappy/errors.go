package flappy

import "errors"

// ErrNoPlayer is returned when an operation needs the player and the run
// has none.
var ErrNoPlayer = errors.New("flappy: no player")
