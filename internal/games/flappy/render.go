package flappy

import (
	"math"

	"github.com/vovakirdan/flap/internal/core"
)

// Visual characters for rendering
const (
	BarChar      = '█'
	BarCapTop    = '▄' // Lower end of the upper bar
	BarCapBottom = '▀' // Upper end of the lower bar
	GroundChar   = '▓'
	CloudChar    = '░'
)

// grassRunes alternate along the top of the ground; the pattern follows
// the scrolled distance so the ground visibly moves.
var grassRunes = [2]rune{'▀', '▔'}

// wingRunes is the wing glyph per animation frame.
var wingRunes = []rune{'^', '-', 'v', '-'}

// Render draws the world into dst, scaled from world units to cells.
// World y points up, screen rows point down. The overlay is drawn by the
// platform on top of this.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}
	v := viewTransform{
		cols: dst.Width(),
		rows: dst.Height(),
		w:    g.run.Viewport.X,
		h:    g.run.Viewport.Y,
	}

	g.drawSky(dst, v)
	for _, o := range g.run.Obstacles {
		g.drawObstacle(dst, v, o)
	}
	g.drawGround(dst, v)
	g.drawPlayer(dst, v)
}

// viewTransform maps world coordinates to screen cells.
type viewTransform struct {
	cols, rows int
	w, h       float64
}

func (v viewTransform) col(x float64) int {
	return int(math.Floor(x / v.w * float64(v.cols)))
}

func (v viewTransform) row(y float64) int {
	return v.rows - 1 - int(math.Floor(y/v.h*float64(v.rows)))
}

func (g *Game) drawSky(dst *core.Screen, v viewTransform) {
	q := g.run.Sky.Width / 4
	for _, t := range g.run.Sky.Tiles {
		// Two clouds per tile, so wrapping tiles keep the pattern seamless.
		for _, c := range [2]core.Vec2{
			core.V(t.X-q, v.h*0.8),
			core.V(t.X+q, v.h*0.65),
		} {
			x, y := v.col(c.X), v.row(c.Y)
			dst.DrawHLine(x-2, y, 5, CloudChar, core.ColorWhite)
			dst.DrawHLine(x-1, y-1, 3, CloudChar, core.ColorWhite)
		}
	}
}

func (g *Game) drawObstacle(dst *core.Screen, v viewTransform, o *Obstacle) {
	oc := g.cfg.Obstacles
	left := v.col(o.X - oc.Width/2)
	right := v.col(o.X + oc.Width/2)
	gapTop := v.row(o.Y + oc.HalfGap)
	gapBottom := v.row(o.Y - oc.HalfGap)

	for x := left; x <= right; x++ {
		for y := 0; y < gapTop; y++ {
			dst.SetColored(x, y, BarChar, core.ColorGreen)
		}
		dst.SetColored(x, gapTop, BarCapTop, core.ColorBrightGreen)
		dst.SetColored(x, gapBottom, BarCapBottom, core.ColorBrightGreen)
		for y := gapBottom + 1; y < v.rows; y++ {
			dst.SetColored(x, y, BarChar, core.ColorGreen)
		}
	}
}

func (g *Game) drawGround(dst *core.Screen, v viewTransform) {
	ground := g.run.Ground
	top := v.row(g.cfg.Ground.Y + ground.Height/2)
	if top < 0 {
		top = 0
	}

	for x := 0; x < v.cols; x++ {
		worldX := (float64(x)+0.5)/float64(v.cols)*v.w + ground.Offset
		stripe := int(math.Floor(worldX/24)) & 1
		dst.SetColored(x, top, grassRunes[stripe], core.ColorBrightGreen)
		for y := top + 1; y < v.rows; y++ {
			dst.SetColored(x, y, GroundChar, core.ColorBrown)
		}
	}
}

func (g *Game) drawPlayer(dst *core.Screen, v viewTransform) {
	p := g.run.Player
	if p == nil {
		return
	}
	pos := p.Body.Position()
	x, y := v.col(pos.X), v.row(pos.Y)

	color := core.ColorBrightYellow
	if g.run.Phase == PhaseGameOver {
		color = core.ColorRed
	}
	dst.SetColored(x-1, y, wingRunes[p.Frame%len(wingRunes)], core.ColorOrange)
	dst.SetColored(x, y, noseRune(p.Rotation), color)
}

// noseRune picks a glyph for the pitch in degrees.
func noseRune(deg float64) rune {
	switch {
	case deg >= 10:
		return '↗'
	case deg > -30:
		return '→'
	case deg > -70:
		return '↘'
	default:
		return '↓'
	}
}
