package flappy

import (
	"math/rand"

	"github.com/vovakirdan/flap/internal/core"
	"github.com/vovakirdan/flap/internal/physics"
)

// Clock tracks run time in seconds.
type Clock struct {
	Elapsed float64 // Seconds since the run started
	Delta   float64 // Seconds covered by the current tick
}

// Advance moves the clock forward by dt seconds.
func (c *Clock) Advance(dt float64) {
	c.Delta = dt
	c.Elapsed += dt
}

// Timer is a repeating timer.
type Timer struct {
	Period  float64
	elapsed float64
}

// Tick advances the timer and reports whether it fired. It fires at most
// once per call, and only the elapsed time modulo Period carries over.
func (t *Timer) Tick(dt float64) bool {
	if t.Period <= 0 {
		return false
	}
	t.elapsed += dt
	if t.elapsed < t.Period {
		return false
	}
	for t.elapsed >= t.Period {
		t.elapsed -= t.Period
	}
	return true
}

// Reset rewinds the timer to the start of a period.
func (t *Timer) Reset() {
	t.elapsed = 0
}

// Cooldown accepts an event only if Period seconds have passed since the
// last accepted one. The first event after a reset is always accepted.
type Cooldown struct {
	Period float64
	last   float64
	armed  bool
}

// Accept reports whether an event at time now passes the cooldown and, if
// so, records it.
func (c *Cooldown) Accept(now float64) bool {
	if c.armed && now-c.last < c.Period {
		return false
	}
	c.last = now
	c.armed = true
	return true
}

// Last returns the time of the last accepted event and whether there is one.
func (c *Cooldown) Last() (float64, bool) {
	return c.last, c.armed
}

// Reset forgets the last accepted event.
func (c *Cooldown) Reset() {
	c.last = 0
	c.armed = false
}

// Player is the single controllable entity of a run.
type Player struct {
	ID        physics.EntityID
	Name      string
	Score     int
	Body      physics.Body
	Rotation  float64 // Nose pitch in degrees, positive is up
	Frame     int     // Wing animation frame
	frameTime float64
}

// Obstacle is a pipe pair: a scoring sensor between two solid bars.
type Obstacle struct {
	ID    physics.EntityID
	X, Y  float64 // Center of the opening
	Speed float64
	Body  physics.Body
}

// Tile is one segment of a scrolling strip.
type Tile struct {
	X, Y float64 // Center
	Body physics.Body
}

// TilePool is a fixed set of tiles that scroll left and wrap around.
type TilePool struct {
	Width  float64 // Effective tile width
	Height float64
	Speed  float64
	Tiles  []Tile  // Sorted by ascending X
	Offset float64 // Total distance scrolled this run
}

// RunContext holds all state of one run. Systems receive it explicitly;
// Reset returns it to the state of a fresh run.
type RunContext struct {
	Phase     Phase
	Clock     Clock
	Spawn     Timer
	Cooldown  Cooldown
	Player    *Player // nil until the run creates one
	Obstacles []*Obstacle
	Ground    TilePool
	Sky       TilePool
	Viewport  core.Vec2

	rng        *rand.Rand
	nextID     physics.EntityID
	scoreDirty bool
}

// newRunContext creates a context for the given viewport.
func newRunContext(viewport core.Vec2, seed int64, spawnPeriod, cooldown float64) *RunContext {
	return &RunContext{
		Phase:    PhaseMainTitle,
		Spawn:    Timer{Period: spawnPeriod},
		Cooldown: Cooldown{Period: cooldown},
		Viewport: viewport,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

// Reset clears per-run state. Bodies must already be despawned.
func (r *RunContext) Reset() {
	r.Phase = PhaseMainTitle
	r.Clock = Clock{}
	r.Spawn.Reset()
	r.Cooldown.Reset()
	r.Player = nil
	r.Obstacles = r.Obstacles[:0]
	r.Ground.Tiles = r.Ground.Tiles[:0]
	r.Ground.Offset = 0
	r.Sky.Tiles = r.Sky.Tiles[:0]
	r.Sky.Offset = 0
	r.scoreDirty = false
}

// newID returns a fresh entity identity.
func (r *RunContext) newID() physics.EntityID {
	r.nextID++
	return r.nextID
}

// Score returns the player's score, or 0 without a player.
func (r *RunContext) Score() int {
	if r.Player == nil {
		return 0
	}
	return r.Player.Score
}
