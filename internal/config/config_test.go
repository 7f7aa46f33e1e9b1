package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("embedded defaults differ from Default():\n got %+v\nwant %+v", cfg, Default())
	}
}

func TestPoolSize(t *testing.T) {
	tests := []struct {
		name   string
		strip  Strip
		width  float64
		expect int
	}{
		{"ground on 800", Strip{TileWidth: 168, Scale: 3}, 800, 3},
		{"sky on 800", Strip{TileWidth: 144, Scale: 3}, 800, 3},
		{"exact fit", Strip{TileWidth: 100, Scale: 2}, 800, 5},
		{"wide tile", Strip{TileWidth: 1000, Scale: 1}, 800, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.strip.PoolSize(tc.width); got != tc.expect {
				t.Errorf("PoolSize(%v) = %d, expected %d", tc.width, got, tc.expect)
			}
		})
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("scoring:\n  cooldown: 0.5\nground:\n  speed: 200\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.Scoring.Cooldown != 0.5 {
		t.Errorf("cooldown = %v, expected 0.5", cfg.Scoring.Cooldown)
	}
	if cfg.Ground.Speed != 200 {
		t.Errorf("ground speed = %v, expected 200", cfg.Ground.Speed)
	}
	if cfg.Ground.TileWidth != 168 {
		t.Errorf("untouched keys should keep defaults, tile width = %v", cfg.Ground.TileWidth)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero window", func(c *Config) { c.Window.Width = 0 }},
		{"zero tile", func(c *Config) { c.Ground.TileWidth = 0 }},
		{"negative speed", func(c *Config) { c.Sky.Speed = -1 }},
		{"zero period", func(c *Config) { c.Obstacles.SpawnPeriod = 0 }},
		{"empty step range", func(c *Config) { c.Obstacles.MinSteps = 6 }},
		{"zero mass", func(c *Config) { c.Player.Mass = 0 }},
		{"no frames", func(c *Config) { c.Player.Frames = 0 }},
		{"zero tick rate", func(c *Config) { c.TickRate = 0 }},
	}

	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("obstacles:\n  spawn_period: 2\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Obstacles.SpawnPeriod != 2 {
		t.Errorf("spawn period = %v, expected 2", cfg.Obstacles.SpawnPeriod)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom path should fail")
	}
}

func TestMarshalRoundTripsThroughParse(t *testing.T) {
	data, err := Marshal(Default())
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Marshal(Default())) error = %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Error("marshalled defaults should parse back unchanged")
	}
}
