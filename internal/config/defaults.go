package config

import (
	_ "embed"
)

//go:embed defaults/floppy.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the built-in configuration. It mirrors
// defaults/floppy.yaml and is used when the embedded file cannot be parsed.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Window: WindowConfig{
			Width:  485,
			Height: 640,
		},
		Physics: PhysicsConfig{
			Gravity:         0.25,
			FallSpeed:       4,
			JumpSpeed:       -5,
			MaxFallSpeed:    0,
			Ceiling:         20,
			HorizontalSpeed: 0,
		},
		Obstacles: ObstacleConfig{
			Width:           85,
			GapHeight:       140,
			MinOffset:       90,
			Speed:           -8,
			SpawnIntervalMS: 1500,
		},
		Player: PlayerConfig{
			HitBox: HitBox{
				Left:   18,
				Top:    18,
				Right:  22,
				Bottom: 20,
			},
			FloorMargin: 31,
		},
		Timing: TimingConfig{
			TickMS: 15,
		},
		Keys: KeyBindings{
			Jump:    []string{"space", "up", "w"},
			Restart: []string{"space", "r"},
			Confirm: []string{"enter"},
			History: []string{"tab", "h"},
			Quit:    []string{"q", "ctrl+c"},
			Mouse:   true,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultGameYAML
}
