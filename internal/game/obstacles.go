package game

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/floppy-monster/internal/config"
	"github.com/vovakirdan/floppy-monster/internal/core"
)

// ObstaclePair is an upper and a lower barrier sharing one horizontal
// position, separated by a gap of fixed height.
type ObstaclePair struct {
	ID        uint64
	X         float64 // Left edge of both barriers
	Width     float64
	GapStart  float64 // Y where the gap begins (bottom of the top barrier)
	GapHeight float64
	windowH   float64
}

// Top returns the upper barrier: window top down to the gap.
func (p ObstaclePair) Top() core.Rect {
	return core.RectFromEdges(p.X, 0, p.X+p.Width, p.GapStart)
}

// Bottom returns the lower barrier: end of the gap down to the window bottom.
func (p ObstaclePair) Bottom() core.Rect {
	return core.RectFromEdges(p.X, p.GapStart+p.GapHeight, p.X+p.Width, p.windowH)
}

// Right returns the x-coordinate of the pair's right edge.
func (p ObstaclePair) Right() float64 {
	return p.X + p.Width
}

// Generator spawns obstacle pairs on a fixed cadence of simulated time and
// moves them left every tick.
type Generator struct {
	pairs    []ObstaclePair
	rng      *rand.Rand
	nextID   uint64
	elapsed  time.Duration // Simulated time since the last spawn
	interval time.Duration
	cfg      config.ObstacleConfig
	windowW  float64
	windowH  float64
}

// NewGenerator creates a generator for the given configuration and RNG seed.
func NewGenerator(cfg config.GameConfig, seed int64) *Generator {
	g := &Generator{
		pairs:    make([]ObstaclePair, 0, 8),
		interval: cfg.Obstacles.SpawnInterval(),
		cfg:      cfg.Obstacles,
		windowW:  cfg.Window.Width,
		windowH:  cfg.Window.Height,
	}
	g.Reset(seed)
	return g
}

// Reset clears all pairs, the spawn accumulator and the ID counter, and
// reseeds the RNG.
func (g *Generator) Reset(seed int64) {
	g.pairs = g.pairs[:0]
	g.rng = rand.New(rand.NewSource(seed))
	g.nextID = 0
	g.elapsed = 0
}

// Advance accounts for dt of simulated time and spawns one pair for every
// full interval that has elapsed. The interval is subtracted rather than the
// accumulator being zeroed, so spawns do not drift. Returns how many pairs
// were spawned.
func (g *Generator) Advance(dt time.Duration) int {
	if g.interval <= 0 {
		return 0
	}
	g.elapsed += dt

	spawned := 0
	for g.elapsed >= g.interval {
		g.elapsed -= g.interval
		g.spawn()
		spawned++
	}
	return spawned
}

// spawn creates a pair at the right edge of the window. The gap start is
// uniform in [minOffset, windowH - minOffset - gapHeight).
func (g *Generator) spawn() ObstaclePair {
	lo := g.cfg.MinOffset
	hi := g.windowH - g.cfg.MinOffset - g.cfg.GapHeight
	gapStart := lo
	if hi > lo {
		gapStart = lo + g.rng.Float64()*(hi-lo)
	}
	return g.spawnAt(g.windowW, gapStart)
}

// spawnAt appends a pair with explicit geometry.
func (g *Generator) spawnAt(x, gapStart float64) ObstaclePair {
	g.nextID++
	p := ObstaclePair{
		ID:        g.nextID,
		X:         x,
		Width:     g.cfg.Width,
		GapStart:  gapStart,
		GapHeight: g.cfg.GapHeight,
		windowH:   g.windowH,
	}
	g.pairs = append(g.pairs, p)
	return p
}

// MoveAll translates every live pair by the obstacle speed.
func (g *Generator) MoveAll() {
	for i := range g.pairs {
		g.pairs[i].X += g.cfg.Speed
	}
}

// Pairs returns the live pairs, oldest first. The slice is owned by the
// generator and valid until the next mutating call.
func (g *Generator) Pairs() []ObstaclePair {
	return g.pairs
}

// Len returns the number of live pairs.
func (g *Generator) Len() int {
	return len(g.pairs)
}

// RemoveIf deletes every pair for which expired returns true and returns
// the IDs that were removed.
func (g *Generator) RemoveIf(expired func(ObstaclePair) bool) []uint64 {
	var removed []uint64
	kept := g.pairs[:0]
	for _, p := range g.pairs {
		if expired(p) {
			removed = append(removed, p.ID)
			continue
		}
		kept = append(kept, p)
	}
	g.pairs = kept
	return removed
}
