package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/floppy-monster/internal/assets"
	"github.com/vovakirdan/floppy-monster/internal/config"
	"github.com/vovakirdan/floppy-monster/internal/core"
	"github.com/vovakirdan/floppy-monster/internal/game"
	"github.com/vovakirdan/floppy-monster/internal/storage"
)

// Options holds everything needed to run the game in a terminal.
type Options struct {
	Game    config.GameConfig
	Runtime core.RuntimeConfig
	Assets  *assets.Assets
	Store   *storage.Store // Optional run log
	Logger  *log.Logger
}

// Model is the Bubble Tea model for Floppy Monster.
type Model struct {
	ctrl        *game.Controller
	renderer    *game.Renderer
	screen      *core.Screen
	keys        *KeyMapper
	help        help.Model
	history     HistoryModel
	showHistory bool
	config      core.RuntimeConfig
	logger      *log.Logger
	quitting    bool
}

// NewModel creates a new Bubble Tea model.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	art := opts.Assets
	if art == nil {
		art = assets.Default()
	}
	cfg := opts.Runtime
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = opts.Game.Timing.TickInterval()
	}

	ctrlOpts := []game.Option{game.WithLogger(logger)}
	if opts.Store != nil {
		ctrlOpts = append(ctrlOpts, game.WithRecorder(opts.Store))
	}
	if cfg.Seed != 0 {
		ctrlOpts = append(ctrlOpts, game.WithSeed(cfg.Seed))
	}

	keys := NewKeyMapper(opts.Game.Keys)
	renderer := game.NewRenderer(opts.Game, art)
	km := keys.Keys()
	renderer.SetHints(game.Hints{
		Jump:    helpKey(km.Jump, "click"),
		Restart: helpKey(km.Restart, "enter"),
		Confirm: helpKey(km.Confirm, "click"),
	})

	h := help.New()
	h.ShowAll = false

	return Model{
		ctrl:     game.NewController(opts.Game, ctrlOpts...),
		renderer: renderer,
		screen:   core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 0)),
		keys:     keys,
		help:     h,
		history:  NewHistoryModel(opts.Store, km, cfg.ScreenW, cfg.ScreenH),
		config:   cfg,
		logger:   logger,
	}
}

// Controller returns the game controller.
func (m Model) Controller() *game.Controller {
	return m.ctrl
}

// Init initializes the model. Nothing ticks until the first jump.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showHistory {
			return m.handleHistoryKey(msg)
		}
		return m.handleInput(m.keys.MapKey(msg))

	case tea.MouseMsg:
		if m.showHistory {
			return m, nil
		}
		lay := game.Layout(m.screen.Width(), m.screen.Height())
		return m.handleInput(m.keys.MapMouse(msg, lay, m.ctrl.Phase()))

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleInput applies one input frame to the controller.
func (m Model) handleInput(frame core.InputFrame) (tea.Model, tea.Cmd) {
	if frame.Empty() {
		return m, nil
	}
	if frame.Has(core.ActionQuit) {
		m.quitting = true
		return m, tea.Quit
	}

	phase := m.ctrl.Phase()
	if frame.Has(core.ActionHistory) && (phase == game.PhaseMenu || phase == game.PhaseGameOver) {
		m.history.Reload()
		m.showHistory = true
		return m, nil
	}

	if m.ctrl.HandleInput(frame) {
		return m, tickCmd(m.config.TickInterval, m.ctrl.Generation())
	}
	return m, nil
}

// handleHistoryKey processes keys while the run history is shown.
func (m Model) handleHistoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	frame := m.keys.MapKey(msg)
	if frame.Has(core.ActionQuit) {
		m.quitting = true
		return m, tea.Quit
	}
	if key.Matches(msg, m.keys.Keys().Back) {
		m.showHistory = false
		return m, nil
	}

	var cmd tea.Cmd
	m.history, cmd = m.history.Update(msg)
	return m, cmd
}

// handleResize processes window resize events. The world is drawn in
// logical units, so a resize never resets the run.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 0))
	m.history.SetSize(msg.Width, msg.Height)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks. Ticks scheduled for an earlier
// run are dropped, and the chain is only re-armed while the run goes on.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.ctrl.Generation() {
		m.logger.Debug("dropping stale tick", "gen", msg.Gen, "current", m.ctrl.Generation())
		return m, nil
	}
	if !m.ctrl.Tick() {
		return m, nil
	}
	return m, tickCmd(m.config.TickInterval, msg.Gen)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showHistory {
		return m.history.View()
	}

	m.renderer.Draw(m.screen, m.ctrl.Snapshot())

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys.Keys()))
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Primary clicks jump and press buttons
	)

	start := time.Now()
	_, err := p.Run()
	model.logger.Info("session ended", "duration", time.Since(start).Round(time.Second), "best", model.ctrl.Score().Best)
	return err
}
