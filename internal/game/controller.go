package game

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/floppy-monster/internal/config"
	"github.com/vovakirdan/floppy-monster/internal/core"
)

// Phase is the controller's state.
type Phase int

const (
	PhaseMenu               Phase = iota // Start button shown, nothing simulated
	PhaseAwaitingFirstInput              // Body shown but frozen until the first jump
	PhaseRunning                         // Ticks advance the world
	PhaseGameOver                        // Results panel shown
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "Menu"
	case PhaseAwaitingFirstInput:
		return "AwaitingFirstInput"
	case PhaseRunning:
		return "Running"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// RunResult describes a finished run.
type RunResult struct {
	Score   int
	Best    int // Best score after this run was folded in
	NewBest bool
	Ticks   int
	Cause   CollisionCause
	Seed    int64
}

// RunRecorder receives every finished run.
type RunRecorder interface {
	RecordRun(RunResult) error
}

// Snapshot is a read-only view of the controller for rendering.
type Snapshot struct {
	Phase   Phase
	BodyX   float64
	BodyY   float64
	HitBox  core.Rect
	Pairs   []ObstaclePair
	Score   int
	Best    int
	NewBest bool
	Ticks   int
	Cause   CollisionCause
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for phase transitions and run results.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithRecorder sets the recorder notified when a run ends.
func WithRecorder(r RunRecorder) Option {
	return func(c *Controller) {
		c.recorder = r
	}
}

// WithSeedSource sets the function that supplies the RNG seed of each run.
func WithSeedSource(fn func() int64) Option {
	return func(c *Controller) {
		if fn != nil {
			c.seedSource = fn
		}
	}
}

// WithSeed makes every run use the same obstacle sequence.
func WithSeed(seed int64) Option {
	return WithSeedSource(func() int64 { return seed })
}

// Controller drives one game session through its phases.
type Controller struct {
	cfg    config.GameConfig
	phase  Phase
	body   *Body
	gen    *Generator
	engine *Engine
	scored ScoredSet
	score  ScoreState

	dt         time.Duration // Simulated time per tick
	ticks      int           // Ticks of the current run
	seed       int64         // Seed of the current run
	generation uint64        // Incremented every time a run starts ticking
	last       Verdict
	newBest    bool

	logger     *log.Logger
	recorder   RunRecorder
	seedSource func() int64
}

// NewController creates a controller in the Menu phase.
func NewController(cfg config.GameConfig, opts ...Option) *Controller {
	c := &Controller{
		cfg:        cfg,
		phase:      PhaseMenu,
		engine:     NewEngine(cfg),
		scored:     NewScoredSet(),
		dt:         cfg.Timing.TickInterval(),
		logger:     log.New(io.Discard),
		seedSource: func() int64 { return time.Now().UnixNano() },
	}
	for _, opt := range opts {
		opt(c)
	}
	c.gen = NewGenerator(cfg, 0)
	c.body = c.spawnBody()
	return c
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Generation identifies the current tick chain. It changes whenever a run
// starts ticking, so ticks scheduled for an earlier run can be recognised.
func (c *Controller) Generation() uint64 {
	return c.generation
}

// Score returns the current score state.
func (c *Controller) Score() ScoreState {
	return c.score
}

// Last returns the verdict of the most recent tick.
func (c *Controller) Last() Verdict {
	return c.last
}

// Body returns the current body.
func (c *Controller) Body() *Body {
	return c.body
}

// Generator returns the obstacle generator.
func (c *Controller) Generator() *Generator {
	return c.gen
}

// Scored returns the IDs credited in the current run.
func (c *Controller) Scored() ScoredSet {
	return c.scored
}

// HandleInput applies one input frame. The action that applies to the
// current phase is picked from the frame; everything else is ignored.
// Returns true if the tick chain must be started.
func (c *Controller) HandleInput(in core.InputFrame) bool {
	switch c.phase {
	case PhaseMenu:
		if in.Has(core.ActionConfirm) {
			c.reset()
		}
	case PhaseAwaitingFirstInput:
		if in.Has(core.ActionJump) {
			c.body.Jump()
			c.generation++
			c.setPhase(PhaseRunning)
			return true
		}
	case PhaseRunning:
		if in.Has(core.ActionJump) {
			c.body.Jump()
		}
	case PhaseGameOver:
		if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
			c.reset()
		}
	}
	return false
}

// Tick advances a running game by one step: spawn, detect, move the body,
// move the obstacles. A collision ends the run. Outside the Running phase
// Tick does nothing. Returns true while further ticks should be scheduled.
func (c *Controller) Tick() bool {
	if c.phase != PhaseRunning {
		return false
	}

	c.ticks++
	c.gen.Advance(c.dt)
	c.last = c.engine.Detect(c.body, c.gen, c.scored, &c.score)
	c.body.Step()
	c.gen.MoveAll()

	if c.last.Scored > 0 {
		c.logger.Debug("scored", "score", c.score.Run, "tick", c.ticks)
	}

	if c.last.Collided {
		c.gameOver()
		return false
	}
	return true
}

// Snapshot returns the state needed to draw the current frame.
func (c *Controller) Snapshot() Snapshot {
	x, y := c.body.Position()
	pairs := make([]ObstaclePair, len(c.gen.Pairs()))
	copy(pairs, c.gen.Pairs())

	return Snapshot{
		Phase:   c.phase,
		BodyX:   x,
		BodyY:   y,
		HitBox:  c.body.HitBox(),
		Pairs:   pairs,
		Score:   c.score.Run,
		Best:    c.score.Best,
		NewBest: c.newBest,
		Ticks:   c.ticks,
		Cause:   c.last.Cause,
	}
}

// reset prepares a fresh run and waits for the first jump.
func (c *Controller) reset() {
	c.seed = c.seedSource()
	c.body = c.spawnBody()
	c.gen.Reset(c.seed)
	c.scored.Clear()
	c.score.Run = 0
	c.ticks = 0
	c.last = Verdict{}
	c.newBest = false
	c.setPhase(PhaseAwaitingFirstInput)
}

// gameOver folds the run into the best score and reports it.
func (c *Controller) gameOver() {
	c.newBest = c.score.Finish()
	c.setPhase(PhaseGameOver)

	res := RunResult{
		Score:   c.score.Run,
		Best:    c.score.Best,
		NewBest: c.newBest,
		Ticks:   c.ticks,
		Cause:   c.last.Cause,
		Seed:    c.seed,
	}
	c.logger.Info("run finished",
		"score", res.Score,
		"best", res.Best,
		"ticks", res.Ticks,
		"cause", res.Cause,
	)

	if c.recorder != nil {
		if err := c.recorder.RecordRun(res); err != nil {
			c.logger.Warn("could not record run", "error", err)
		}
	}
}

func (c *Controller) setPhase(p Phase) {
	c.logger.Debug("phase change", "from", c.phase, "to", p)
	c.phase = p
}

// spawnBody creates a body at the window center.
func (c *Controller) spawnBody() *Body {
	return NewBody(
		c.cfg.Window.Width/2,
		c.cfg.Window.Height/2,
		c.cfg.Physics,
		c.cfg.Player.HitBox,
	)
}
