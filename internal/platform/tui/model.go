package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flap/internal/config"
	"github.com/vovakirdan/flap/internal/core"
	"github.com/vovakirdan/flap/internal/games/flappy"
	"github.com/vovakirdan/flap/internal/platform/hud"
)

// Sound is the audio backend of a model.
type Sound interface {
	flappy.Audio
	SetMuted(muted bool)
}

// Options configures a Model.
type Options struct {
	Seed   int64       // 0 picks a time-based seed
	Logger *log.Logger // nil discards logs
	Sound  Sound       // nil plays nothing
	Width  int         // Initial terminal size, updated on resize
	Height int
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model running one game.
type Model struct {
	game       *flappy.Game
	overlay    *hud.Overlay
	screen     *core.Screen
	sound      Sound
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	tickRate   int
	width      int
	height     int
	inputFrame core.InputFrame
	lastTick   time.Time
	muted      bool
	quitting   bool
}

// NewModel creates a model with a fresh game on the title screen.
func NewModel(cfg config.Config, opts Options) (Model, error) {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	overlay := hud.New()
	gameOpts := flappy.Options{
		UI:     overlay,
		Logger: opts.Logger,
		Seed:   opts.Seed,
	}
	if opts.Sound != nil {
		gameOpts.Audio = opts.Sound
	}
	game, err := flappy.New(cfg, gameOpts)
	if err != nil {
		return Model{}, err
	}

	h := help.New()
	h.ShowAll = false

	m := Model{
		game:       game,
		overlay:    overlay,
		screen:     core.NewScreen(0, 0),
		sound:      opts.Sound,
		keys:       DefaultKeyMap(),
		help:       h,
		logger:     opts.Logger,
		tickRate:   cfg.TickRate,
		inputFrame: core.NewInputFrame(),
	}
	m.resize(opts.Width, opts.Height)
	return m, nil
}

// Game returns the running game.
func (m Model) Game() *flappy.Game {
	return m.game
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if a := MouseAction(msg); a != core.ActionNone {
			m.inputFrame.Set(a)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input. Actions are queued for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize(m.width, m.height)
		return m, nil
	case key.Matches(msg, m.keys.Mute):
		m.muted = !m.muted
		if m.sound != nil {
			m.sound.SetMuted(m.muted)
		}
		return m, nil
	case msg.String() == "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleTick advances the game by the wall time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastTick, now)
	m.lastTick = now

	m.game.Step(dt, m.inputFrame)
	m.inputFrame.Clear()

	return m, tickCmd(m.tickRate)
}

// resize fits the game screen between the top of the terminal and the
// help footer.
func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.help.Width = width
	footer := lipgloss.Height(m.help.View(m.keys))
	m.screen.Resize(width, core.Max(height-footer, 0))
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() {
	m.draw()

	dir := filepath.Join(os.Getenv("HOME"), ".flap", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot", "error", err)
		return
	}

	name := fmt.Sprintf("flap_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// draw renders the world and the overlay into the screen buffer.
func (m Model) draw() {
	m.game.Render(m.screen)
	m.overlay.Draw(m.screen)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.draw()
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program with a new model.
func Run(cfg config.Config, opts Options) error {
	model, err := NewModel(cfg, opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()
	return err
}
