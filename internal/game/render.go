package game

import (
	"fmt"
	"math"

	"github.com/vovakirdan/floppy-monster/internal/assets"
	"github.com/vovakirdan/floppy-monster/internal/config"
	"github.com/vovakirdan/floppy-monster/internal/core"
)

// Visual characters for rendering
const (
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
	GroundTopChar = '▀'
	GroundChar    = '░'
)

// Panel geometry shared by the menu and game-over panels.
const (
	panelW = 28
	panelH = 9
)

// Hints names the keys shown in on-screen prompts.
type Hints struct {
	Jump    string
	Restart string
	Confirm string
}

// DefaultHints matches the default key bindings.
func DefaultHints() Hints {
	return Hints{Jump: "space", Restart: "space/r", Confirm: "enter"}
}

// ButtonLayout holds the on-screen controls for a screen size. The
// platform uses it to hit-test pointer clicks.
type ButtonLayout struct {
	Panel   core.CellRect
	Start   core.CellRect
	Restart core.CellRect
}

// Layout computes where the panels and buttons are drawn on a w x h screen.
func Layout(w, h int) ButtonLayout {
	panel := core.NewCellRect((w-panelW)/2, (h-panelH)/2, panelW, panelH)
	button := func(label string) core.CellRect {
		bw := len(label)
		return core.NewCellRect(panel.X+(panel.W-bw)/2, panel.Bottom()-3, bw, 1)
	}
	return ButtonLayout{
		Panel:   panel,
		Start:   button(startLabel),
		Restart: button(restartLabel),
	}
}

const (
	startLabel   = "[ Start ]"
	restartLabel = "[ Restart ]"
)

// Renderer draws snapshots into a screen, scaling the logical window onto
// whatever number of cells the screen has.
type Renderer struct {
	worldW float64
	worldH float64
	floorY float64
	art    *assets.Assets
	hints  Hints
}

// NewRenderer creates a renderer for the given configuration and assets.
func NewRenderer(cfg config.GameConfig, art *assets.Assets) *Renderer {
	return &Renderer{
		worldW: cfg.Window.Width,
		worldH: cfg.Window.Height,
		floorY: cfg.FloorY(),
		art:    art,
		hints:  DefaultHints(),
	}
}

// SetHints changes the key names shown in prompts.
func (r *Renderer) SetHints(h Hints) {
	r.hints = h
}

// Draw renders one frame.
func (r *Renderer) Draw(dst *core.Screen, snap Snapshot) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	scroll := 0
	if snap.Phase == PhaseRunning || snap.Phase == PhaseGameOver {
		scroll = snap.Ticks / 4
	}
	r.drawBackground(dst, scroll)
	r.drawFloor(dst)

	if snap.Phase == PhaseMenu {
		r.drawMenu(dst)
		return
	}

	for _, p := range snap.Pairs {
		r.drawPair(dst, p)
	}
	r.drawSprite(dst, snap.BodyX, snap.BodyY)

	dst.DrawTextColored(2, 0, fmt.Sprintf(" Score: %d ", snap.Score), core.ColorBrightYellow)

	switch snap.Phase {
	case PhaseAwaitingFirstInput:
		msg := fmt.Sprintf("Press %s or click to fly", r.hints.Jump)
		dst.DrawTextCentered(dst.Height()/4, msg)
	case PhaseGameOver:
		r.drawGameOver(dst, snap)
	}
}

// cellX maps a world x-coordinate to a column.
func (r *Renderer) cellX(dst *core.Screen, x float64) int {
	return int(math.Floor(x * float64(dst.Width()) / r.worldW))
}

// cellY maps a world y-coordinate to a row.
func (r *Renderer) cellY(dst *core.Screen, y float64) int {
	return int(math.Floor(y * float64(dst.Height()) / r.worldH))
}

// toCells converts a world rectangle to the cells it covers.
func (r *Renderer) toCells(dst *core.Screen, rect core.Rect) core.CellRect {
	x0, y0 := r.cellX(dst, rect.X), r.cellY(dst, rect.Y)
	x1 := int(math.Ceil(rect.Right() * float64(dst.Width()) / r.worldW))
	y1 := int(math.Ceil(rect.Bottom() * float64(dst.Height()) / r.worldH))
	return core.NewCellRect(x0, y0, x1-x0, y1-y0)
}

func (r *Renderer) drawBackground(dst *core.Screen, scroll int) {
	bg := r.art.Background
	if bg.Width == 0 {
		return
	}
	top := r.cellY(dst, r.floorY) - bg.Height
	for y := 0; y < bg.Height; y++ {
		for x := 0; x < dst.Width(); x++ {
			ch := bg.At((x+scroll)%bg.Width, y)
			if ch != ' ' {
				dst.SetColored(x, top+y, ch, core.ColorDarkGray)
			}
		}
	}
}

func (r *Renderer) drawFloor(dst *core.Screen) {
	y := r.cellY(dst, r.floorY)
	dst.DrawHLine(0, y, dst.Width(), GroundTopChar, core.ColorYellow)
	for row := y + 1; row < dst.Height(); row++ {
		dst.DrawHLine(0, row, dst.Width(), GroundChar, core.ColorOrange)
	}
}

// drawPair renders both barriers with caps facing the gap.
func (r *Renderer) drawPair(dst *core.Screen, p ObstaclePair) {
	top := r.toCells(dst, p.Top())
	dst.DrawRectColored(top, PipeChar, core.ColorGreen)
	if top.H > 0 {
		dst.DrawHLine(top.X, top.Bottom()-1, top.W, PipeCapTop, core.ColorBrightGreen)
	}

	bottom := r.toCells(dst, p.Bottom())
	floorRow := r.cellY(dst, r.floorY)
	if bottom.Bottom() > floorRow {
		bottom.H = floorRow - bottom.Y
	}
	dst.DrawRectColored(bottom, PipeChar, core.ColorGreen)
	if bottom.H > 0 {
		dst.DrawHLine(bottom.X, bottom.Y, bottom.W, PipeCapBottom, core.ColorBrightGreen)
	}
}

// drawSprite centers the monster on the body position. Spaces in the
// sprite are transparent.
func (r *Renderer) drawSprite(dst *core.Screen, x, y float64) {
	sp := r.art.Sprite
	left := r.cellX(dst, x) - sp.Width/2
	top := r.cellY(dst, y) - sp.Height/2
	for sy := 0; sy < sp.Height; sy++ {
		for sx := 0; sx < sp.Width; sx++ {
			if ch := sp.At(sx, sy); ch != ' ' {
				dst.SetColored(left+sx, top+sy, ch, core.ColorOrange)
			}
		}
	}
}

func (r *Renderer) drawPanel(dst *core.Screen, panel core.CellRect) {
	dst.DrawRect(panel, ' ')
	dst.DrawBoxColored(panel, core.ColorCyan)
}

func (r *Renderer) drawMenu(dst *core.Screen) {
	lay := Layout(dst.Width(), dst.Height())
	r.drawPanel(dst, lay.Panel)

	title := "FLOPPY MONSTER"
	dst.DrawTextColored(lay.Panel.X+(lay.Panel.W-len(title))/2, lay.Panel.Y+2, title, core.ColorBrightYellow)
	dst.DrawTextColored(lay.Start.X, lay.Start.Y, startLabel, core.ColorBrightGreen)

	hint := fmt.Sprintf("%s or click", r.hints.Confirm)
	dst.DrawTextColored(lay.Panel.X+(lay.Panel.W-len(hint))/2, lay.Panel.Bottom()-2, hint, core.ColorGray)
}

func (r *Renderer) drawGameOver(dst *core.Screen, snap Snapshot) {
	lay := Layout(dst.Width(), dst.Height())
	r.drawPanel(dst, lay.Panel)

	lines := []struct {
		text  string
		color core.Color
	}{
		{"GAME OVER", core.ColorRed},
		{fmt.Sprintf("Score: %d", snap.Score), core.ColorWhite},
		{fmt.Sprintf("Best:  %d", snap.Best), core.ColorWhite},
	}
	if snap.NewBest {
		lines[2].text += "  new!"
		lines[2].color = core.ColorBrightYellow
	}
	for i, l := range lines {
		dst.DrawTextColored(lay.Panel.X+(lay.Panel.W-len(l.text))/2, lay.Panel.Y+1+i, l.text, l.color)
	}

	dst.DrawTextColored(lay.Restart.X, lay.Restart.Y, restartLabel, core.ColorBrightGreen)
	hint := fmt.Sprintf("%s to restart", r.hints.Restart)
	dst.DrawTextColored(lay.Panel.X+(lay.Panel.W-len(hint))/2, lay.Panel.Bottom()-2, hint, core.ColorGray)
}
