package flappy

import (
	"math"

	"github.com/vovakirdan/flap/internal/config"
	"github.com/vovakirdan/flap/internal/core"
)

// flap gives the player an upward kick. The first flap of a run also
// leaves TapTap, which promotes the player body so the kick applies.
func (g *Game) flap() {
	run := g.run
	if !run.Phase.controllable() {
		return
	}
	p := run.Player
	if p == nil {
		g.logger.Error("flap", "error", ErrNoPlayer)
		return
	}
	if p.Body.Position().Y >= run.Viewport.Y {
		return
	}

	g.audio.Play(CueWing)
	if run.Phase == PhaseTapTap && !g.transition(PhaseInGame) {
		return
	}

	v := p.Body.Velocity()
	if v.Y < 0 {
		v.Y = 0
		p.Body.SetVelocity(v)
	}
	p.Body.ApplyImpulse(core.V(0, g.cfg.Player.FlapImpulse))
	p.Rotation = g.cfg.Player.NoseUp
}

// limitSystem caps the rise speed while the player is controllable and
// locks horizontal drift until the run is reset. A dead bird only falls.
func limitSystem(run *RunContext, maxRise float64) {
	if run.Player == nil {
		return
	}
	b := run.Player.Body
	v := b.Velocity()
	limited := core.V(0, v.Y)
	switch {
	case run.Phase.controllable():
		limited.Y = math.Min(v.Y, maxRise)
	case run.Phase != PhaseGameOver:
		return
	}
	if limited != v {
		b.SetVelocity(limited)
	}
}

// pitchSystem eases the nose toward up while climbing or gliding and
// toward a dive once falling fast. Runs only while InGame.
func pitchSystem(run *RunContext, pc config.Player, dt float64) {
	if run.Phase != PhaseInGame || run.Player == nil {
		return
	}
	p := run.Player
	vy := p.Body.Velocity().Y

	target := pc.NoseDown
	if vy > pc.DiveThreshold {
		target = pc.NoseUp
	}
	rate := pc.RotationRate + math.Abs(vy)*dt
	p.Rotation += (target - p.Rotation) * core.ClampF(rate*dt, 0, 1)
}

// animateSystem advances the wing animation. The bird stops flapping once
// the run is over.
func animateSystem(run *RunContext, pc config.Player, dt float64) {
	if run.Phase == PhaseGameOver || run.Player == nil {
		return
	}
	p := run.Player
	p.frameTime += dt
	for p.frameTime >= pc.FrameDuration {
		p.frameTime -= pc.FrameDuration
		p.Frame = (p.Frame + 1) % pc.Frames
	}
}
