// Package config provides YAML-based configuration loading for the game.
// All distances are world units (one unit is one pixel of the reference
// 800x600 viewport), speeds are units per second and times are seconds.
package config

import (
	"errors"
	"fmt"
	"math"
)

// Config contains all tunables of the game.
type Config struct {
	Window    Window    `yaml:"window"`
	World     World     `yaml:"world"`
	Ground    Strip     `yaml:"ground"`
	Sky       Strip     `yaml:"sky"`
	Obstacles Obstacles `yaml:"obstacles"`
	Player    Player    `yaml:"player"`
	Scoring   Scoring   `yaml:"scoring"`
	Audio     Audio     `yaml:"audio"`
	TickRate  int       `yaml:"tick_rate"` // Simulation ticks per second
}

// Window defines the logical viewport.
type Window struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Title  string  `yaml:"title"`
}

// World defines global physics parameters.
type World struct {
	Gravity float64 `yaml:"gravity"` // Vertical acceleration, negative is down
}

// Strip defines a category of scrolling tiles (ground or sky).
type Strip struct {
	TileWidth  float64 `yaml:"tile_width"`  // Texture width before scaling
	TileHeight float64 `yaml:"tile_height"` // Texture height before scaling
	Scale      float64 `yaml:"scale"`
	Speed      float64 `yaml:"speed"`
	Y          float64 `yaml:"y"` // Center height; 0 means the middle of the window
}

// EffectiveWidth returns the on-screen width of one tile.
func (s Strip) EffectiveWidth() float64 {
	return s.TileWidth * s.Scale
}

// PoolSize returns how many tiles are needed to cover the given width
// without a visible seam while one tile wraps around.
func (s Strip) PoolSize(screenWidth float64) int {
	return int(math.Ceil(screenWidth/s.EffectiveWidth())) + 1
}

// Obstacles defines obstacle generation parameters.
type Obstacles struct {
	SpawnPeriod  float64 `yaml:"spawn_period"`  // Seconds between spawns
	SpawnMargin  float64 `yaml:"spawn_margin"`  // Spawn distance right of the window edge
	OffsetStep   float64 `yaml:"offset_step"`   // Vertical distance per random step
	MinSteps     int     `yaml:"min_steps"`     // Lowest random step (inclusive)
	MaxSteps     int     `yaml:"max_steps"`     // Highest random step (inclusive)
	HalfGap      float64 `yaml:"half_gap"`      // Half of the vertical opening
	Width        float64 `yaml:"width"`         // Width of the solid bars
	BarHeight    float64 `yaml:"bar_height"`    // Height of each solid bar
	SensorWidth  float64 `yaml:"sensor_width"`  // Width of the scoring region inside the gap
	DespawnAfter float64 `yaml:"despawn_after"` // Distance left of x=0 past which obstacles are removed
}

// Player defines the player body and controller parameters.
type Player struct {
	Name          string  `yaml:"name"`
	Mass          float64 `yaml:"mass"`
	Radius        float64 `yaml:"radius"`
	FlapImpulse   float64 `yaml:"flap_impulse"`   // Upward impulse per flap
	MaxRiseSpeed  float64 `yaml:"max_rise_speed"` // Upper bound of vertical velocity
	DiveThreshold float64 `yaml:"dive_threshold"` // Below this vertical velocity the nose points down
	NoseUp        float64 `yaml:"nose_up"`        // Degrees
	NoseDown      float64 `yaml:"nose_down"`      // Degrees
	RotationRate  float64 `yaml:"rotation_rate"`  // Base pitch smoothing rate
	TitleOffset   float64 `yaml:"title_offset"`   // Height above center on the title screen
	SpawnDivisor  float64 `yaml:"spawn_divisor"`  // Gameplay x is window width / divisor
	FrameDuration float64 `yaml:"frame_duration"` // Seconds per wing animation frame
	Frames        int     `yaml:"frames"`
}

// Scoring defines score acceptance parameters.
type Scoring struct {
	Cooldown float64 `yaml:"cooldown"` // Minimum seconds between two accepted scores
}

// Audio defines cue playback parameters.
type Audio struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"` // Linear gain, 1.0 is unchanged
	SampleRate int     `yaml:"sample_rate"`
}

// ErrInvalid is returned by Validate for unusable configurations.
var ErrInvalid = errors.New("config: invalid")

// Validate checks that the configuration can drive a run.
func (c Config) Validate() error {
	checks := []struct {
		ok   bool
		what string
	}{
		{c.Window.Width > 0 && c.Window.Height > 0, "window size must be positive"},
		{c.Ground.EffectiveWidth() > 0, "ground tile width and scale must be positive"},
		{c.Sky.EffectiveWidth() > 0, "sky tile width and scale must be positive"},
		{c.Ground.Speed >= 0 && c.Sky.Speed >= 0, "scroll speeds must not be negative"},
		{c.Obstacles.SpawnPeriod > 0, "obstacles.spawn_period must be positive"},
		{c.Obstacles.MinSteps <= c.Obstacles.MaxSteps, "obstacles.min_steps must not exceed max_steps"},
		{c.Obstacles.HalfGap > 0, "obstacles.half_gap must be positive"},
		{c.Obstacles.Width > 0, "obstacles.width must be positive"},
		{c.Player.Mass > 0, "player.mass must be positive"},
		{c.Player.Radius > 0, "player.radius must be positive"},
		{c.Player.SpawnDivisor > 0, "player.spawn_divisor must be positive"},
		{c.Player.Frames > 0 && c.Player.FrameDuration > 0, "player animation must have frames"},
		{c.Scoring.Cooldown >= 0, "scoring.cooldown must not be negative"},
		{c.TickRate > 0, "tick_rate must be positive"},
	}
	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("%w: %s", ErrInvalid, chk.what)
		}
	}
	return nil
}
