package flappy

import (
	"github.com/vovakirdan/flap/internal/core"
	"github.com/vovakirdan/flap/internal/physics"
)

// spawnerSystem moves obstacles, removes the ones that left the screen and
// spawns a new one when the timer fires. Runs only while InGame.
func (g *Game) spawnerSystem(dt float64) {
	run := g.run
	if run.Phase != PhaseInGame {
		return
	}

	moveObstacles(run, dt)
	g.despawnObstacles()

	if run.Spawn.Tick(dt) {
		g.spawnObstacle()
	}
}

// moveObstacles scrolls every obstacle left by its own speed.
func moveObstacles(run *RunContext, dt float64) {
	for _, o := range run.Obstacles {
		o.X -= o.Speed * dt
		if o.Body != nil {
			o.Body.SetPosition(core.V(o.X, o.Y))
		}
	}
}

// despawnObstacles removes obstacles whose center is further left of
// x = 0 than the despawn distance.
func (g *Game) despawnObstacles() {
	run := g.run
	limit := -g.cfg.Obstacles.DespawnAfter

	kept := run.Obstacles[:0]
	for _, o := range run.Obstacles {
		if o.X < limit {
			if o.Body != nil {
				g.world.Despawn(o.Body)
			}
			g.logger.Debug("obstacle despawned", "id", o.ID, "x", o.X)
			continue
		}
		kept = append(kept, o)
	}
	for i := len(kept); i < len(run.Obstacles); i++ {
		run.Obstacles[i] = nil
	}
	run.Obstacles = kept
}

// spawnObstacle creates a pipe pair right of the screen with a random
// vertical offset of the opening.
func (g *Game) spawnObstacle() *Obstacle {
	run := g.run
	oc := g.cfg.Obstacles

	steps := oc.MinSteps + run.rng.Intn(oc.MaxSteps-oc.MinSteps+1)
	o := &Obstacle{
		ID:    run.newID(),
		X:     run.Viewport.X + oc.SpawnMargin,
		Y:     run.Viewport.Y/2 + float64(steps)*oc.OffsetStep,
		Speed: g.cfg.Ground.Speed,
	}

	barOffset := oc.HalfGap + oc.BarHeight/2
	o.Body = g.world.Spawn(physics.BodyDef{
		Entity:   o.ID,
		Position: core.V(o.X, o.Y),
		Colliders: []physics.Collider{
			{Kind: physics.KindGap, Sensor: true, Size: core.V(oc.SensorWidth, 2*oc.HalfGap)},
			{Kind: physics.KindBar, Offset: core.V(0, barOffset), Size: core.V(oc.Width, oc.BarHeight)},
			{Kind: physics.KindBar, Offset: core.V(0, -barOffset), Size: core.V(oc.Width, oc.BarHeight)},
		},
	})

	run.Obstacles = append(run.Obstacles, o)
	g.logger.Debug("obstacle spawned", "id", o.ID, "y", o.Y, "steps", steps)
	return o
}
