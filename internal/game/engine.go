package game

import "github.com/vovakirdan/floppy-monster/internal/config"

// ScoredSet holds the IDs of pairs already credited to the current run.
type ScoredSet map[uint64]struct{}

// NewScoredSet creates an empty scored set.
func NewScoredSet() ScoredSet {
	return make(ScoredSet)
}

// Add marks id as credited.
func (s ScoredSet) Add(id uint64) {
	s[id] = struct{}{}
}

// Has reports whether id has been credited.
func (s ScoredSet) Has(id uint64) bool {
	_, ok := s[id]
	return ok
}

// Remove forgets id. Removing an absent id is a no-op.
func (s ScoredSet) Remove(id uint64) {
	delete(s, id)
}

// Len returns the number of credited IDs.
func (s ScoredSet) Len() int {
	return len(s)
}

// Clear forgets every ID.
func (s ScoredSet) Clear() {
	for id := range s {
		delete(s, id)
	}
}

// ScoreState is the current run score and the best score of the process.
type ScoreState struct {
	Run  int
	Best int
}

// Finish folds the run score into the best score and returns true if the
// run set a new best.
func (s *ScoreState) Finish() bool {
	if s.Run > s.Best {
		s.Best = s.Run
		return true
	}
	return false
}

// CollisionCause says what ended a run.
type CollisionCause int

const (
	CauseNone CollisionCause = iota
	CauseObstacle
	CauseFloor
)

// String returns a human-readable name for the cause.
func (c CollisionCause) String() string {
	switch c {
	case CauseNone:
		return "none"
	case CauseObstacle:
		return "obstacle"
	case CauseFloor:
		return "floor"
	default:
		return "unknown"
	}
}

// Verdict is the outcome of one detection pass.
type Verdict struct {
	Collided bool
	Cause    CollisionCause
	PairID   uint64 // Pair hit when Cause is CauseObstacle
	Scored   int    // Points credited during this pass
	Expired  int    // Pairs removed during this pass
}

// Engine detects collisions and pass-through events.
type Engine struct {
	floorY float64
}

// NewEngine creates an engine for the given configuration.
func NewEngine(cfg config.GameConfig) *Engine {
	return &Engine{floorY: cfg.FloorY()}
}

// FloorY returns the y-coordinate past which the body hits the floor.
func (e *Engine) FloorY() float64 {
	return e.floorY
}

// Detect runs one detection pass. In order it:
//  1. removes pairs whose right edge is left of the window and forgets
//     their scored entries,
//  2. credits one point for every pair whose right edge has passed the
//     body and is not yet in scored,
//  3. checks the body hit box against both barriers of every live pair,
//  4. checks the body against the floor.
func (e *Engine) Detect(body *Body, gen *Generator, scored ScoredSet, score *ScoreState) Verdict {
	var v Verdict

	for _, id := range gen.RemoveIf(func(p ObstaclePair) bool { return p.Right() < 0 }) {
		scored.Remove(id)
		v.Expired++
	}

	x, y := body.Position()
	box := body.HitBox()

	for _, p := range gen.Pairs() {
		if p.Bottom().Right() < x && !scored.Has(p.ID) {
			scored.Add(p.ID)
			score.Run++
			v.Scored++
		}

		if !v.Collided && (box.Intersects(p.Top()) || box.Intersects(p.Bottom())) {
			v.Collided = true
			v.Cause = CauseObstacle
			v.PairID = p.ID
		}
	}

	if !v.Collided && y > e.floorY {
		v.Collided = true
		v.Cause = CauseFloor
	}

	return v
}
