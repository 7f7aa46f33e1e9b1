package flappy

import "github.com/vovakirdan/flap/internal/physics"

// resolveSystem drains the contacts of this tick and turns them into score
// and death. Contacts are always drained so none leak into a later tick;
// they only count while InGame.
func (g *Game) resolveSystem() {
	g.contacts = g.world.Drain(g.contacts[:0])

	for _, c := range g.contacts {
		if g.run.Phase != PhaseInGame {
			return
		}
		_, other, ok := c.Involving(physics.KindPlayer)
		if !ok {
			continue
		}

		switch {
		case c.Phase == physics.Ended && other.Kind == physics.KindGap:
			g.scorePoint()
		case c.Phase == physics.Began && !other.Sensor:
			g.logger.Debug("fatal contact", "with", other.Kind, "entity", other.Entity)
			g.transition(PhaseGameOver)
		}
	}
}

// scorePoint credits one passed obstacle unless it falls inside the
// cooldown of the previous one.
func (g *Game) scorePoint() {
	run := g.run
	p := run.Player
	if p == nil {
		g.logger.Error("score", "error", ErrNoPlayer)
		return
	}

	now := run.Clock.Elapsed
	if !run.Cooldown.Accept(now) {
		last, _ := run.Cooldown.Last()
		g.logger.Debug("score suppressed by cooldown", "at", now, "last", last)
		return
	}
	p.Score++
	run.scoreDirty = true
	g.audio.Play(CuePoint)
	g.logger.Debug("score", "player", p.Name, "score", p.Score)
}
