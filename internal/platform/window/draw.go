package window

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/flap/internal/core"
	"github.com/vovakirdan/flap/internal/games/flappy"
	"github.com/vovakirdan/flap/internal/platform/hud"
)

// Size of a glyph of the debug font.
const (
	glyphW = 6
	glyphH = 16
)

// flipY converts a world y (up) to a screen y (down).
func (f *Frontend) flipY(y float64) float32 {
	return float32(f.cfg.Window.Height - y)
}

func (f *Frontend) drawWorld(dst *ebiten.Image) {
	dst.Fill(skyColor)
	run := f.game.Run()

	f.drawSky(dst, run)
	for _, o := range run.Obstacles {
		f.drawObstacle(dst, o)
	}
	f.drawGround(dst, run)
	f.drawPlayer(dst, run)
}

func (f *Frontend) drawSky(dst *ebiten.Image, run *flappy.RunContext) {
	h := f.cfg.Window.Height
	q := run.Sky.Width / 4
	for _, t := range run.Sky.Tiles {
		for _, c := range [2]core.Vec2{core.V(t.X-q, h*0.8), core.V(t.X+q, h*0.65)} {
			x, y := float32(c.X), f.flipY(c.Y)
			vector.DrawFilledCircle(dst, x-22, y+6, 18, cloudColor, true)
			vector.DrawFilledCircle(dst, x, y, 26, cloudColor, true)
			vector.DrawFilledCircle(dst, x+24, y+8, 16, cloudColor, true)
		}
	}
}

func (f *Frontend) drawObstacle(dst *ebiten.Image, o *flappy.Obstacle) {
	oc := f.cfg.Obstacles
	x := float32(o.X - oc.Width/2)
	w := float32(oc.Width)
	gapTop := f.flipY(o.Y + oc.HalfGap)
	gapBottom := f.flipY(o.Y - oc.HalfGap)
	bottom := float32(f.cfg.Window.Height)

	vector.DrawFilledRect(dst, x, 0, w, gapTop, pipeColor, false)
	vector.StrokeRect(dst, x, -2, w, gapTop+2, 2, pipeEdge, false)
	vector.DrawFilledRect(dst, x, gapBottom, w, bottom-gapBottom, pipeColor, false)
	vector.StrokeRect(dst, x, gapBottom, w, bottom-gapBottom+2, 2, pipeEdge, false)
}

func (f *Frontend) drawGround(dst *ebiten.Image, run *flappy.RunContext) {
	g := run.Ground
	for _, t := range g.Tiles {
		x := float32(t.X - g.Width/2)
		top := f.flipY(t.Y + g.Height/2)
		vector.DrawFilledRect(dst, x, top, float32(g.Width)+1, float32(g.Height), dirtColor, false)
		vector.DrawFilledRect(dst, x, top, float32(g.Width)+1, 10, grassColor, false)

		// Stripes travel with the tile, so wrapping is invisible.
		for sx := 0.0; sx < g.Width; sx += 24 {
			vector.DrawFilledRect(dst, x+float32(sx), top, 12, 10, grassStripe, false)
		}
	}
}

func (f *Frontend) drawPlayer(dst *ebiten.Image, run *flappy.RunContext) {
	p := run.Player
	if p == nil {
		return
	}
	pos := p.Body.Position()
	x, y := float32(pos.X), f.flipY(pos.Y)
	r := float32(f.cfg.Player.Radius)

	body := birdColor
	if run.Phase == flappy.PhaseGameOver {
		body = birdDead
	}
	vector.DrawFilledCircle(dst, x, y, r, body, true)

	// Screen y points down, so a positive pitch rotates counterclockwise.
	a := core.Radians(p.Rotation)
	nx, ny := float32(math.Cos(a)), float32(-math.Sin(a))
	vector.StrokeLine(dst, x, y, x+nx*(r+8), y+ny*(r+8), 6, beakColor, true)
	vector.DrawFilledCircle(dst, x+nx*r*0.4-ny*r*0.3, y+ny*r*0.4+nx*r*0.3, 3, pipeEdge, true)

	// Wing flaps through up, level, down and level.
	wing := [4]float32{-0.5, 0, 0.5, 0}[p.Frame%4]
	vector.StrokeLine(dst, x-r*0.2, y, x-r*1.1, y+wing*r, 5, cloudColor, true)
}

func (f *Frontend) drawOverlay(dst *ebiten.Image) {
	for _, p := range f.overlay.Panels() {
		f.drawPanel(dst, p)
	}
}

func (f *Frontend) drawPanel(dst *ebiten.Image, p hud.Panel) {
	width := 0
	for _, l := range p.Lines {
		width = core.Max(width, len([]rune(l)))
	}
	w := float32(width * glyphW)
	h := float32(len(p.Lines) * glyphH)
	cx := float32(f.cfg.Window.Width / 2)
	top := float32(p.Anchor*f.cfg.Window.Height) - h/2

	if p.Boxed {
		vector.DrawFilledRect(dst, cx-w/2-16, top-12, w+32, h+24, panelFill, false)
		vector.StrokeRect(dst, cx-w/2-16, top-12, w+32, h+24, 2, rgba(p.Color), false)
	}
	for i, l := range p.Lines {
		lx := int(cx) - len([]rune(l))*glyphW/2
		ebitenutil.DebugPrintAt(dst, l, lx, int(top)+i*glyphH)
	}
}
