package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration. It matches the
// embedded defaults/flappy.yaml and is used when that cannot be parsed.
func Default() Config {
	return Config{
		Window: Window{
			Width:  800,
			Height: 600,
			Title:  "flap",
		},
		World: World{
			Gravity: -981,
		},
		Ground: Strip{
			TileWidth:  168,
			TileHeight: 56,
			Scale:      3,
			Speed:      150,
			Y:          28,
		},
		Sky: Strip{
			TileWidth:  144,
			TileHeight: 256,
			Scale:      3,
			Speed:      20,
		},
		Obstacles: Obstacles{
			SpawnPeriod:  1.5,
			SpawnMargin:  50,
			OffsetStep:   40,
			MinSteps:     -3,
			MaxSteps:     5,
			HalfGap:      80,
			Width:        60,
			BarHeight:    1024,
			SensorWidth:  30,
			DespawnAfter: 60,
		},
		Player: Player{
			Name:          "player",
			Mass:          10,
			Radius:        18,
			FlapImpulse:   4000,
			MaxRiseSpeed:  500,
			DiveThreshold: -300,
			NoseUp:        25,
			NoseDown:      -90,
			RotationRate:  2,
			TitleOffset:   70,
			SpawnDivisor:  6,
			FrameDuration: 0.1,
			Frames:        4,
		},
		Scoring: Scoring{
			Cooldown: 1.0,
		},
		Audio: Audio{
			Enabled:    true,
			Volume:     0.6,
			SampleRate: 44100,
		},
		TickRate: 60,
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultYAML
}
