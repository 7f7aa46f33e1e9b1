package flappy

import (
	"sort"

	"github.com/vovakirdan/flap/internal/core"
)

// layout places n tiles edge to edge, the first one flush with x = 0.
// Existing tiles are replaced.
func (p *TilePool) layout(n int, y float64) {
	p.Tiles = p.Tiles[:0]
	for i := 0; i < n; i++ {
		p.Tiles = append(p.Tiles, Tile{X: p.Width/2 + float64(i)*p.Width, Y: y})
	}
	p.Offset = 0
}

// Advance scrolls every tile left by dx and wraps tiles that left the
// screen to the right of the rightmost one. Returns the number of wraps.
func (p *TilePool) Advance(dx float64) int {
	n := len(p.Tiles)
	if n == 0 {
		return 0
	}

	for i := range p.Tiles {
		p.Tiles[i].X -= dx
	}
	p.Offset += dx
	sort.Slice(p.Tiles, func(i, j int) bool { return p.Tiles[i].X < p.Tiles[j].X })

	// Tiles are wrapped in ascending order; each lands after the tile that
	// is rightmost at that moment, so several wraps in one tick stay contiguous.
	wrapped := 0
	for p.Tiles[0].X <= -p.Width/2 {
		t := p.Tiles[0]
		t.X = p.Tiles[n-1].X + p.Width
		copy(p.Tiles, p.Tiles[1:])
		p.Tiles[n-1] = t
		wrapped++
	}

	for _, t := range p.Tiles {
		if t.Body != nil {
			t.Body.SetPosition(core.V(t.X, t.Y))
		}
	}
	return wrapped
}

// scrollSystem advances the sky and ground strips according to the phase.
func scrollSystem(run *RunContext, dt float64) {
	if run.Phase.scrollsSky() {
		run.Sky.Advance(run.Sky.Speed * dt)
	}
	if run.Phase.scrollsGround() {
		run.Ground.Advance(run.Ground.Speed * dt)
	}
}
