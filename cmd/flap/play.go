package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flap/internal/audio"
	"github.com/vovakirdan/flap/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal.

Controls:
  Space/Up/Click - Flap
  Enter          - Play
  S              - Settings
  Esc/B          - Back
  R              - Restart (after game over)
  M              - Mute
  ?              - More keys
  Q/Ctrl+C       - Quit

Examples:
  flap play
  flap play --seed 42
  flap play --config ./my-flappy.yaml --log-file flap.log --debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger("flap")
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	sound := audio.NewPlayer(cfg.Audio, logger)
	defer sound.Close()

	err = tui.Run(cfg, tui.Options{
		Seed:   flagSeed,
		Logger: logger,
		Sound:  sound,
		Width:  width,
		Height: height,
	})
	if err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
