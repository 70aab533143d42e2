// Package game implements Floppy Monster: a monster falls under gravity and
// must fly through gaps between obstacle pairs that scroll in from the right.
// The package is pure simulation plus drawing into a core.Screen; timing and
// input decoding belong to the platform layer.
package game

import (
	"github.com/vovakirdan/floppy-monster/internal/config"
	"github.com/vovakirdan/floppy-monster/internal/core"
)

// Body is the monster: a point with a constant horizontal velocity and a
// vertical velocity driven by gravity and jumps.
type Body struct {
	pos    core.Vec
	vx, vy float64
	phys   config.PhysicsConfig
	hitbox config.HitBox
}

// NewBody creates a body at (x, y) falling at the baseline speed.
func NewBody(x, y float64, phys config.PhysicsConfig, hitbox config.HitBox) *Body {
	return &Body{
		pos:    core.Vec{X: x, Y: y},
		vx:     phys.HorizontalSpeed,
		vy:     phys.FallSpeed,
		phys:   phys,
		hitbox: hitbox,
	}
}

// Step advances the body by one tick. Touching the ceiling resets the
// vertical velocity to the baseline fall speed before moving, so the body
// bounces softly instead of stopping.
func (b *Body) Step() {
	if b.pos.Y <= b.phys.Ceiling {
		b.vy = b.phys.FallSpeed
	}

	b.pos.X += b.vx
	b.pos.Y += b.vy

	b.vy += b.phys.Gravity
	if b.phys.MaxFallSpeed > 0 && b.vy > b.phys.MaxFallSpeed {
		b.vy = b.phys.MaxFallSpeed
	}
}

// Jump replaces the vertical velocity with the jump speed.
func (b *Body) Jump() {
	b.vy = b.phys.JumpSpeed
}

// Position returns the current position.
func (b *Body) Position() (x, y float64) {
	return b.pos.X, b.pos.Y
}

// Velocity returns the current horizontal and vertical velocity.
func (b *Body) Velocity() (vx, vy float64) {
	return b.vx, b.vy
}

// HitBox returns the collision box around the current position.
func (b *Body) HitBox() core.Rect {
	return core.RectFromEdges(
		b.pos.X-b.hitbox.Left,
		b.pos.Y-b.hitbox.Top,
		b.pos.X+b.hitbox.Right,
		b.pos.Y+b.hitbox.Bottom,
	)
}
