package window

import (
	"image/color"

	"github.com/vovakirdan/flap/internal/core"
)

var (
	skyColor    = color.RGBA{R: 78, G: 192, B: 202, A: 255}
	cloudColor  = color.RGBA{R: 234, G: 252, B: 219, A: 255}
	pipeColor   = color.RGBA{R: 115, G: 191, B: 46, A: 255}
	pipeEdge    = color.RGBA{R: 84, G: 56, B: 71, A: 255}
	dirtColor   = color.RGBA{R: 222, G: 216, B: 149, A: 255}
	grassColor  = color.RGBA{R: 156, G: 230, B: 89, A: 255}
	grassStripe = color.RGBA{R: 115, G: 191, B: 46, A: 255}
	birdColor   = color.RGBA{R: 248, G: 192, B: 42, A: 255}
	birdDead    = color.RGBA{R: 200, G: 60, B: 40, A: 255}
	beakColor   = color.RGBA{R: 240, G: 100, B: 30, A: 255}
	panelFill   = color.RGBA{R: 0, G: 0, B: 0, A: 150}
)

// rgba maps a cell color of the shared overlay to a window color.
func rgba(c core.Color) color.RGBA {
	switch c {
	case core.ColorRed:
		return color.RGBA{R: 220, G: 60, B: 50, A: 255}
	case core.ColorGreen, core.ColorBrightGreen:
		return grassColor
	case core.ColorYellow, core.ColorBrightYellow:
		return birdColor
	case core.ColorBlue, core.ColorBrightBlue:
		return color.RGBA{R: 70, G: 120, B: 230, A: 255}
	case core.ColorCyan:
		return color.RGBA{R: 90, G: 220, B: 230, A: 255}
	case core.ColorOrange:
		return beakColor
	case core.ColorGray:
		return color.RGBA{R: 150, G: 150, B: 150, A: 255}
	case core.ColorBrown:
		return pipeEdge
	default:
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
}
