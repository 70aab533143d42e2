package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Validate checks the invariants the simulation relies on. All violations
// are reported together.
func Validate(cfg GameConfig) error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		fail("window must have positive size, got %vx%v", cfg.Window.Width, cfg.Window.Height)
	}

	o := cfg.Obstacles
	if o.Width <= 0 {
		fail("obstacles.width must be positive, got %v", o.Width)
	}
	if o.GapHeight <= 0 {
		fail("obstacles.gap_height must be positive, got %v", o.GapHeight)
	}
	if o.MinOffset < 0 {
		fail("obstacles.min_offset must not be negative, got %v", o.MinOffset)
	}
	if lo, hi := cfg.GapRange(); hi <= lo {
		fail("gap range is empty: 2*min_offset (%v) + gap_height (%v) must be below window.height (%v)",
			2*o.MinOffset, o.GapHeight, cfg.Window.Height)
	}
	if o.Speed >= 0 {
		fail("obstacles.speed must be negative (leftward), got %v", o.Speed)
	}
	if o.SpawnIntervalMS <= 0 {
		fail("obstacles.spawn_interval_ms must be positive, got %d", o.SpawnIntervalMS)
	}

	p := cfg.Physics
	if p.JumpSpeed >= 0 {
		fail("physics.jump_speed must be negative (upward), got %v", p.JumpSpeed)
	}
	if p.Gravity < 0 {
		fail("physics.gravity must not be negative, got %v", p.Gravity)
	}
	if p.MaxFallSpeed < 0 {
		fail("physics.max_fall_speed must not be negative, got %v", p.MaxFallSpeed)
	}
	if p.MaxFallSpeed > 0 && p.MaxFallSpeed < p.FallSpeed {
		fail("physics.max_fall_speed (%v) is below fall_speed (%v)", p.MaxFallSpeed, p.FallSpeed)
	}

	if m := cfg.Player.FloorMargin; m < 0 || m >= cfg.Window.Height {
		fail("player.floor_margin must be within the window, got %v", m)
	}
	h := cfg.Player.HitBox
	if h.Left+h.Right <= 0 || h.Top+h.Bottom <= 0 {
		fail("player.hitbox must have positive size")
	}

	if cfg.Timing.TickMS <= 0 {
		fail("timing.tick_ms must be positive, got %d", cfg.Timing.TickMS)
	}

	k := cfg.Keys
	if len(k.Jump) == 0 && !k.Mouse {
		fail("keys.jump is empty and mouse is disabled: the game cannot be played")
	}
	if len(k.Restart) == 0 && len(k.Confirm) == 0 {
		fail("keys.restart and keys.confirm are both empty: a finished run cannot be restarted")
	}
	if len(k.Confirm) == 0 && !k.Mouse {
		fail("keys.confirm is empty and mouse is disabled: the start button cannot be pressed")
	}
	if len(k.Quit) == 0 {
		fail("keys.quit must not be empty")
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}
