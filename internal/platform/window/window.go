// Package window runs the game in a desktop window with Ebitengine. The
// logical screen matches the world size, so one world unit is one pixel.
package window

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/flap/internal/config"
	"github.com/vovakirdan/flap/internal/core"
	"github.com/vovakirdan/flap/internal/games/flappy"
	"github.com/vovakirdan/flap/internal/platform/hud"
)

// Options configures a Frontend.
type Options struct {
	Seed   int64        // 0 picks a time-based seed
	Logger *log.Logger  // nil discards logs
	Audio  flappy.Audio // nil plays nothing
}

// Frontend adapts a Game to ebiten.Game.
type Frontend struct {
	cfg     config.Config
	game    *flappy.Game
	overlay *hud.Overlay
	input   inputSource
	dt      time.Duration
	logger  *log.Logger
}

// New creates a frontend with a fresh game on the title screen.
func New(cfg config.Config, opts Options) (*Frontend, error) {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	overlay := hud.New()
	game, err := flappy.New(cfg, flappy.Options{
		UI:     overlay,
		Audio:  opts.Audio,
		Logger: opts.Logger,
		Seed:   opts.Seed,
	})
	if err != nil {
		return nil, err
	}

	return &Frontend{
		cfg:     cfg,
		game:    game,
		overlay: overlay,
		input:   &ebitenInput{},
		dt:      time.Second / time.Duration(cfg.TickRate),
		logger:  opts.Logger,
	}, nil
}

// Update advances the game by one fixed tick.
func (f *Frontend) Update() error {
	in := readInput(f.input)
	if in.Has(core.ActionQuit) {
		return ebiten.Termination
	}
	f.game.Step(f.dt, in)
	return nil
}

// Draw renders the world and the overlay.
func (f *Frontend) Draw(screen *ebiten.Image) {
	f.drawWorld(screen)
	f.drawOverlay(screen)
}

// Layout fixes the logical screen to the world size; ebiten scales it to
// the window.
func (f *Frontend) Layout(_, _ int) (int, int) {
	return int(f.cfg.Window.Width), int(f.cfg.Window.Height)
}

// Run opens the window and blocks until it is closed.
func Run(cfg config.Config, opts Options) error {
	f, err := New(cfg, opts)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(int(cfg.Window.Width), int(cfg.Window.Height))
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TickRate)

	f.logger.Debug("window opened", "width", cfg.Window.Width, "height", cfg.Window.Height, "tps", cfg.TickRate)
	if err := ebiten.RunGame(f); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
