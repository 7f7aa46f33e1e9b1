// Package flappy implements the game loop of a side-scrolling flap-to-ascend
// arcade game: the phase machine, the scrolling world, the obstacle
// spawner, the player controller and the contact resolver.
//
// The package holds no frontend code. Physics, overlay widgets and sound
// are collaborators behind small interfaces; the platform layer owns
// timing, input mapping and drawing of the overlay.
package flappy

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flap/internal/config"
	"github.com/vovakirdan/flap/internal/core"
	"github.com/vovakirdan/flap/internal/physics"
)

// restFriction lets a dead bird come to rest on the ground.
const restFriction = 0.8

// Options wires the collaborators of a Game. Zero values are replaced by
// defaults: a Chipmunk space, a UI and audio that do nothing, and a
// logger that discards output.
type Options struct {
	World  physics.World
	UI     UI
	Audio  Audio
	Logger *log.Logger
	Seed   int64
}

// Game is one running instance of the game.
type Game struct {
	cfg      config.Config
	run      *RunContext
	world    physics.World
	ui       UI
	audio    Audio
	logger   *log.Logger
	contacts []physics.Contact
}

// New creates a game and prepares a fresh run on the title screen.
func New(cfg config.Config, opts Options) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("flappy: %w", err)
	}

	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.World == nil {
		opts.World = physics.NewSpace(cfg.World.Gravity, opts.Logger)
	}
	if opts.UI == nil {
		opts.UI = nopUI{}
	}
	if opts.Audio == nil {
		opts.Audio = nopAudio{}
	}

	viewport := core.V(cfg.Window.Width, cfg.Window.Height)
	g := &Game{
		cfg:      cfg,
		run:      newRunContext(viewport, opts.Seed, cfg.Obstacles.SpawnPeriod, cfg.Scoring.Cooldown),
		world:    opts.World,
		ui:       opts.UI,
		audio:    opts.Audio,
		logger:   opts.Logger,
		contacts: make([]physics.Contact, 0, 8),
	}
	g.Reset()
	return g, nil
}

// Run exposes the state of the current run for rendering and inspection.
func (g *Game) Run() *RunContext {
	return g.run
}

// Config returns the configuration the game was created with.
func (g *Game) Config() config.Config {
	return g.cfg
}

// Phase returns the active phase.
func (g *Game) Phase() Phase {
	return g.run.Phase
}

// Reset tears the current run down and prepares a fresh one on the title
// screen. It may be called from any phase.
func (g *Game) Reset() {
	run := g.run

	for _, o := range run.Obstacles {
		if o.Body != nil {
			g.world.Despawn(o.Body)
		}
	}
	for _, t := range run.Ground.Tiles {
		if t.Body != nil {
			g.world.Despawn(t.Body)
		}
	}
	if run.Player != nil && run.Player.Body != nil {
		g.world.Despawn(run.Player.Body)
	}

	run.Reset()
	// Removing bodies can report ended contacts; they belong to the old run.
	g.world.Clear()
	g.contacts = g.contacts[:0]

	g.layoutStrips()
	g.spawnPlayer()

	g.ui.Clear()
	g.spawnUI(core.ElementTitle)
	g.logger.Debug("run reset", "phase", run.Phase)
}

// layoutStrips fills the sky and ground pools for the viewport width.
func (g *Game) layoutStrips() {
	run := g.run
	width := run.Viewport.X

	run.Sky.Width = g.cfg.Sky.EffectiveWidth()
	run.Sky.Height = g.cfg.Sky.TileHeight * g.cfg.Sky.Scale
	run.Sky.Speed = g.cfg.Sky.Speed
	skyY := g.cfg.Sky.Y
	if skyY == 0 {
		skyY = run.Viewport.Y / 2
	}
	run.Sky.layout(g.cfg.Sky.PoolSize(width), skyY)

	run.Ground.Width = g.cfg.Ground.EffectiveWidth()
	run.Ground.Height = g.cfg.Ground.TileHeight
	run.Ground.Speed = g.cfg.Ground.Speed
	run.Ground.layout(g.cfg.Ground.PoolSize(width), g.cfg.Ground.Y)
	for i := range run.Ground.Tiles {
		t := &run.Ground.Tiles[i]
		t.Body = g.world.Spawn(physics.BodyDef{
			Entity:   run.newID(),
			Position: core.V(t.X, t.Y),
			Colliders: []physics.Collider{
				{Kind: physics.KindGround, Size: core.V(run.Ground.Width, run.Ground.Height), Friction: restFriction},
			},
		})
	}
}

// spawnPlayer creates the player as a kinematic body on the title screen.
func (g *Game) spawnPlayer() {
	run := g.run
	pc := g.cfg.Player

	p := &Player{
		ID:   run.newID(),
		Name: pc.Name,
	}
	p.Body = g.world.Spawn(physics.BodyDef{
		Entity:   p.ID,
		Position: g.titleSpawn(),
		Mass:     pc.Mass,
		Colliders: []physics.Collider{
			{Kind: physics.KindPlayer, Radius: pc.Radius, Friction: restFriction},
		},
	})
	run.Player = p
}

func (g *Game) titleSpawn() core.Vec2 {
	return core.V(g.run.Viewport.X/2, g.run.Viewport.Y/2+g.cfg.Player.TitleOffset)
}

func (g *Game) gameplaySpawn() core.Vec2 {
	return core.V(g.run.Viewport.X/g.cfg.Player.SpawnDivisor, g.run.Viewport.Y/2)
}

// Step advances the game by dt.
func (g *Game) Step(dt time.Duration, in core.InputFrame) core.StepResult {
	sec := dt.Seconds()
	if sec < 0 {
		sec = 0
	}
	run := g.run

	run.Clock.Advance(sec)
	g.handleInput(in)
	scrollSystem(run, sec)
	g.spawnerSystem(sec)
	limitSystem(run, g.cfg.Player.MaxRiseSpeed)
	g.world.Step(sec)
	g.resolveSystem()
	pitchSystem(run, g.cfg.Player, sec)
	animateSystem(run, g.cfg.Player, sec)
	g.syncUI()

	return core.StepResult{State: g.State()}
}

// handleInput turns the actions of this tick into transitions and flaps.
func (g *Game) handleInput(in core.InputFrame) {
	run := g.run

	switch {
	case in.Has(core.ActionRestart) && run.Phase == PhaseGameOver:
		g.Reset()
		g.transition(PhaseTapTap)
	case in.Has(core.ActionBack) && run.Phase == PhaseGameOver:
		g.Reset()
	case in.Has(core.ActionBack):
		g.transition(PhaseMainTitle)
	case in.Has(core.ActionPlay):
		g.transition(PhaseTapTap)
	case in.Has(core.ActionSettings):
		g.transition(PhaseSettings)
	}

	if in.Has(core.ActionFlap) {
		g.flap()
	}
}

// transition moves to phase to along a valid edge and applies its side
// effects. Invalid edges and failed side effects leave the phase unchanged.
func (g *Game) transition(to Phase) bool {
	from := g.run.Phase
	if !CanTransition(from, to) {
		g.logger.Debug("ignored transition", "from", from, "to", to)
		return false
	}
	if err := g.enter(from, to); err != nil {
		g.logger.Error("transition aborted", "from", from, "to", to, "error", err)
		return false
	}
	g.run.Phase = to
	g.logger.Debug("transition", "from", from, "to", to)
	return true
}

// enter performs the side effects of the edge from -> to. Singletons that
// must exist are checked before anything changes.
func (g *Game) enter(from, to Phase) error {
	run := g.run

	switch {
	case from == PhaseMainTitle && to == PhaseTapTap:
		if run.Player == nil {
			return ErrNoPlayer
		}
		if err := g.ui.Despawn(core.ElementTitle); err != nil {
			return err
		}
		g.audio.Play(CueSwoosh)
		run.Player.Body.SetPosition(g.gameplaySpawn())
		g.spawnUI(core.ElementScore)
		g.setText(core.ElementScore, strconv.Itoa(run.Score()))
		g.spawnUI(core.ElementReady)

	case from == PhaseMainTitle && to == PhaseSettings:
		if err := g.ui.Despawn(core.ElementTitle); err != nil {
			return err
		}
		g.audio.Play(CueSwoosh)
		g.spawnUI(core.ElementSettings)
		g.setText(core.ElementSettings, g.settingsText())

	case from == PhaseSettings && to == PhaseMainTitle:
		if err := g.ui.Despawn(core.ElementSettings); err != nil {
			return err
		}
		g.spawnUI(core.ElementTitle)

	case from == PhaseTapTap && to == PhaseInGame:
		if run.Player == nil {
			return ErrNoPlayer
		}
		if err := g.ui.Despawn(core.ElementReady); err != nil {
			return err
		}
		run.Player.Body.MakeDynamic()

	case from == PhaseInGame && to == PhaseGameOver:
		g.audio.Play(CueHit)
		g.spawnUI(core.ElementGameOver)
		g.setText(core.ElementGameOver, "score "+strconv.Itoa(run.Score()))
	}
	return nil
}

// spawnUI shows an element. A duplicate is logged and otherwise harmless.
func (g *Game) spawnUI(el core.Element) {
	if err := g.ui.Spawn(el); err != nil {
		g.logger.Error("spawn ui", "element", el, "error", err)
	}
}

func (g *Game) setText(el core.Element, text string) {
	if err := g.ui.SetText(el, text); err != nil {
		g.logger.Error("set ui text", "element", el, "error", err)
	}
}

// syncUI pushes a changed score to the score widget.
func (g *Game) syncUI() {
	if !g.run.scoreDirty {
		return
	}
	g.run.scoreDirty = false
	g.setText(core.ElementScore, strconv.Itoa(g.run.Score()))
}

// settingsText lists the tunables shown on the settings panel.
func (g *Game) settingsText() string {
	c := g.cfg
	lines := []string{
		fmt.Sprintf("gravity        %.0f", c.World.Gravity),
		fmt.Sprintf("scroll speed   %.0f", c.Ground.Speed),
		fmt.Sprintf("spawn period   %.2fs", c.Obstacles.SpawnPeriod),
		fmt.Sprintf("gap            %.0f", 2*c.Obstacles.HalfGap),
		fmt.Sprintf("flap impulse   %.0f", c.Player.FlapImpulse),
		fmt.Sprintf("score cooldown %.2fs", c.Scoring.Cooldown),
		fmt.Sprintf("audio          %t", c.Audio.Enabled),
	}
	return strings.Join(lines, "\n")
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.run.Score(),
		GameOver: g.run.Phase == PhaseGameOver,
		Phase:    g.run.Phase.String(),
	}
}
