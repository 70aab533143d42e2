// Package config provides YAML-based game configuration loading and
// validation for Floppy Monster.
package config

import "time"

// GameConfig contains all configuration for the game simulation and its controls.
type GameConfig struct {
	Window    WindowConfig   `yaml:"window"`
	Physics   PhysicsConfig  `yaml:"physics"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Player    PlayerConfig   `yaml:"player"`
	Timing    TimingConfig   `yaml:"timing"`
	Keys      KeyBindings    `yaml:"keys"`
}

// WindowConfig defines the logical playfield in world units.
// Rendering scales it to whatever terminal size is available.
type WindowConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines the kinematics of the monster.
type PhysicsConfig struct {
	Gravity         float64 `yaml:"gravity"`          // Added to vertical velocity every tick
	FallSpeed       float64 `yaml:"fall_speed"`       // Baseline velocity at spawn and after touching the ceiling
	JumpSpeed       float64 `yaml:"jump_speed"`       // Velocity set by a jump (negative = up)
	MaxFallSpeed    float64 `yaml:"max_fall_speed"`   // 0 = uncapped
	Ceiling         float64 `yaml:"ceiling"`          // Y at or above which the monster bounces down
	HorizontalSpeed float64 `yaml:"horizontal_speed"` // Constant X velocity of the monster
}

// ObstacleConfig defines obstacle pair geometry and cadence.
type ObstacleConfig struct {
	Width           float64 `yaml:"width"`
	GapHeight       float64 `yaml:"gap_height"`
	MinOffset       float64 `yaml:"min_offset"`        // Minimum barrier length from the window top and bottom
	Speed           float64 `yaml:"speed"`             // X velocity per tick (negative = leftward)
	SpawnIntervalMS int     `yaml:"spawn_interval_ms"` // Simulated time between spawns
}

// SpawnInterval returns the spawn cadence as a duration.
func (o ObstacleConfig) SpawnInterval() time.Duration {
	return time.Duration(o.SpawnIntervalMS) * time.Millisecond
}

// PlayerConfig defines the monster's hit box and the floor.
type PlayerConfig struct {
	HitBox      HitBox  `yaml:"hitbox"`
	FloorMargin float64 `yaml:"floor_margin"` // Y beyond window.height - floor_margin is a floor collision
}

// HitBox holds the distances from the monster's position to each edge of
// its collision box.
type HitBox struct {
	Left   float64 `yaml:"left"`
	Top    float64 `yaml:"top"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
}

// TimingConfig defines the tick cadence.
type TimingConfig struct {
	TickMS int `yaml:"tick_ms"`
}

// TickInterval returns the tick cadence as a duration.
func (t TimingConfig) TickInterval() time.Duration {
	return time.Duration(t.TickMS) * time.Millisecond
}

// KeyBindings lists the key names bound to each control.
// Names follow Bubble Tea's key strings ("space", "up", "ctrl+c", ...).
type KeyBindings struct {
	Jump    []string `yaml:"jump"`
	Restart []string `yaml:"restart"`
	Confirm []string `yaml:"confirm"`
	History []string `yaml:"history"`
	Quit    []string `yaml:"quit"`
	Mouse   bool     `yaml:"mouse"` // Primary button jumps and presses on-screen buttons
}

// FloorY returns the y-coordinate below which the monster hits the floor.
func (c GameConfig) FloorY() float64 {
	return c.Window.Height - c.Player.FloorMargin
}

// GapRange returns the half-open range [lo, hi) gap starts are drawn from.
func (c GameConfig) GapRange() (lo, hi float64) {
	lo = c.Obstacles.MinOffset
	hi = c.Window.Height - c.Obstacles.MinOffset - c.Obstacles.GapHeight
	return lo, hi
}
