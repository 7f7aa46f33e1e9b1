package flappy

import (
	"testing"
	"time"

	"github.com/vovakirdan/flap/internal/config"
	"github.com/vovakirdan/flap/internal/core"
	"github.com/vovakirdan/flap/internal/physics"
	"github.com/vovakirdan/flap/internal/platform/hud"
)

// fakeBody is a point mass integrated by fakeWorld.
type fakeBody struct {
	id      physics.EntityID
	pos     core.Vec2
	vel     core.Vec2
	mass    float64
	dynamic bool
}

func (b *fakeBody) Entity() physics.EntityID { return b.id }
func (b *fakeBody) Position() core.Vec2 { return b.pos }
func (b *fakeBody) SetPosition(p core.Vec2) { b.pos = p }
func (b *fakeBody) Velocity() core.Vec2 { return b.vel }
func (b *fakeBody) SetVelocity(v core.Vec2) { b.vel = v }
func (b *fakeBody) Dynamic() bool { return b.dynamic }
func (b *fakeBody) MakeDynamic() { b.dynamic = true }
func (b *fakeBody) ApplyImpulse(j core.Vec2) {
	if b.dynamic {
		b.vel = b.vel.Add(j.Scale(1 / b.mass))
	}
}

// fakeWorld integrates dynamic bodies without collision detection.
// Contacts are scripted with push and surface on the next Drain.
type fakeWorld struct {
	gravity float64
	bodies  map[physics.EntityID]*fakeBody
	pending []physics.Contact
	steps   int
}

func newFakeWorld() *fakeWorld {
	return &fakeWorld{bodies: make(map[physics.EntityID]*fakeBody)}
}

func (w *fakeWorld) Spawn(def physics.BodyDef) physics.Body {
	b := &fakeBody{id: def.Entity, pos: def.Position, mass: def.Mass, dynamic: def.Dynamic}
	w.bodies[def.Entity] = b
	return b
}

func (w *fakeWorld) Despawn(b physics.Body) {
	delete(w.bodies, b.Entity())
}

func (w *fakeWorld) Step(dt float64) {
	w.steps++
	for _, b := range w.bodies {
		if !b.dynamic {
			continue
		}
		b.vel.Y += w.gravity * dt
		b.pos = b.pos.Add(b.vel.Scale(dt))
	}
}

func (w *fakeWorld) Drain(dst []physics.Contact) []physics.Contact {
	dst = append(dst, w.pending...)
	w.pending = w.pending[:0]
	return dst
}

func (w *fakeWorld) Clear() {
	w.pending = w.pending[:0]
}

func (w *fakeWorld) push(phase physics.ContactPhase, other physics.Tag) {
	w.pending = append(w.pending, physics.Contact{
		Phase: phase,
		A:     other,
		B:     physics.Tag{Entity: 1, Kind: physics.KindPlayer},
	})
}

var (
	gapTag    = physics.Tag{Entity: 100, Kind: physics.KindGap, Sensor: true}
	barTag    = physics.Tag{Entity: 100, Kind: physics.KindBar}
	groundTag = physics.Tag{Entity: 2, Kind: physics.KindGround}
)

// recordingAudio remembers every cue played.
type recordingAudio struct {
	cues []string
}

func (a *recordingAudio) Play(cue string) {
	a.cues = append(a.cues, cue)
}

func (a *recordingAudio) count(cue string) int {
	n := 0
	for _, c := range a.cues {
		if c == cue {
			n++
		}
	}
	return n
}

type harness struct {
	game  *Game
	world *fakeWorld
	ui    *hud.Overlay
	audio *recordingAudio
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	h := &harness{
		world: newFakeWorld(),
		ui:    hud.New(),
		audio: &recordingAudio{},
	}
	g, err := New(config.Default(), Options{
		World: h.world,
		UI:    h.ui,
		Audio: h.audio,
		Seed:  42,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	h.game = g
	return h
}

// press runs a zero-length tick with a single action.
func (h *harness) press(a core.Action) core.StepResult {
	in := core.NewInputFrame()
	in.Set(a)
	return h.game.Step(0, in)
}

// idle runs one tick of length dt without input.
func (h *harness) idle(dt time.Duration) core.StepResult {
	return h.game.Step(dt, core.NewInputFrame())
}

// playing moves the harness to InGame.
func (h *harness) playing(t *testing.T) {
	t.Helper()
	h.press(core.ActionPlay)
	h.press(core.ActionFlap)
	if h.game.Phase() != PhaseInGame {
		t.Fatalf("expected InGame, got %v", h.game.Phase())
	}
}

func (h *harness) player() *Player {
	return h.game.Run().Player
}
