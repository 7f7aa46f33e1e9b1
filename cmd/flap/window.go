package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flap/internal/audio"
	"github.com/vovakirdan/flap/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the game in a desktop window.

Controls:
  Space/Up/Click/Tap - Flap
  Enter              - Play
  S                  - Settings
  Esc/B              - Back
  R                  - Restart (after game over)
  Q                  - Quit

Examples:
  flap window
  flap window --fps 120 --mute`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger("flap")
	if err != nil {
		return err
	}
	defer closeLog()

	sound := audio.NewPlayer(cfg.Audio, logger)
	defer sound.Close()

	err = window.Run(cfg, window.Options{
		Seed:   flagSeed,
		Logger: logger,
		Audio:  sound,
	})
	if err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
