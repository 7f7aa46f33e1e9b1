package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/flap/internal/core"
)

// binding maps keys to one action.
type binding struct {
	keys   []ebiten.Key
	action core.Action
}

var bindings = []binding{
	{[]ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW}, core.ActionFlap},
	{[]ebiten.Key{ebiten.KeyEnter, ebiten.KeyDigit1}, core.ActionPlay},
	{[]ebiten.Key{ebiten.KeyS}, core.ActionSettings},
	{[]ebiten.Key{ebiten.KeyEscape, ebiten.KeyB}, core.ActionBack},
	{[]ebiten.Key{ebiten.KeyR}, core.ActionRestart},
	{[]ebiten.Key{ebiten.KeyQ}, core.ActionQuit},
}

// inputSource reports presses that started this tick.
type inputSource interface {
	KeyJustPressed(k ebiten.Key) bool
	PointerJustPressed() bool
}

// readInput collects the actions of one tick.
func readInput(src inputSource) core.InputFrame {
	frame := core.NewInputFrame()
	for _, b := range bindings {
		for _, k := range b.keys {
			if src.KeyJustPressed(k) {
				frame.Set(b.action)
				break
			}
		}
	}
	if src.PointerJustPressed() {
		frame.Set(core.ActionFlap)
	}
	return frame
}

// ebitenInput reads the live keyboard, mouse and touch state.
type ebitenInput struct {
	touches []ebiten.TouchID
}

func (e *ebitenInput) KeyJustPressed(k ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(k)
}

func (e *ebitenInput) PointerJustPressed() bool {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	e.touches = inpututil.AppendJustPressedTouchIDs(e.touches[:0])
	return len(e.touches) > 0
}
