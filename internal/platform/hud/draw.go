package hud

import (
	"unicode/utf8"

	"github.com/vovakirdan/flap/internal/core"
)

// Draw renders the active panels into a character screen.
func (o *Overlay) Draw(dst *core.Screen) {
	for _, p := range o.Panels() {
		drawPanel(dst, p)
	}
}

func drawPanel(dst *core.Screen, p Panel) {
	width := 0
	for _, l := range p.Lines {
		width = core.Max(width, utf8.RuneCountInString(l))
	}
	height := len(p.Lines)

	top := int(p.Anchor*float64(dst.Height())) - height/2
	if p.Boxed {
		box := core.NewRect((dst.Width()-width-4)/2, top-1, width+4, height+2)
		dst.DrawRect(box, ' ', core.ColorDefault)
		dst.DrawBox(box, p.Color)
	}
	for i, l := range p.Lines {
		dst.DrawTextCentered(top+i, l, p.Color)
	}
}
