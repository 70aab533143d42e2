package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/floppy-monster/internal/config"
	"github.com/vovakirdan/floppy-monster/internal/core"
	"github.com/vovakirdan/floppy-monster/internal/game"
)

// KeyMap defines the key bindings built from the configuration.
type KeyMap struct {
	Jump    key.Binding
	Restart key.Binding
	Confirm key.Binding
	History key.Binding
	Quit    key.Binding
	Back    key.Binding
	Up      key.Binding
	Down    key.Binding
	Order   key.Binding // Switch between newest and best runs
	Clear   key.Binding // Empty the run log
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Jump, k.Restart, k.Confirm, k.History, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Jump, k.Restart, k.Confirm},
		{k.History, k.Back, k.Quit},
	}
}

// HistoryHelp returns the bindings shown under the run history table.
func (k KeyMap) HistoryHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Order, k.Clear, k.Back, k.Quit}
}

// NewKeyMap creates bindings from the configured key names.
func NewKeyMap(kb config.KeyBindings) KeyMap {
	return KeyMap{
		Jump:    binding(kb.Jump, "fly"),
		Restart: binding(kb.Restart, "restart"),
		Confirm: binding(kb.Confirm, "start"),
		History: binding(kb.History, "history"),
		Quit:    binding(kb.Quit, "quit"),
		Back: key.NewBinding(
			key.WithKeys(append([]string{"esc", "b"}, expandKeys(kb.History)...)...),
			key.WithHelp("esc/b", "back"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Order: key.NewBinding(
			key.WithKeys("left", "right", "s"),
			key.WithHelp("←/→", "recent/best"),
		),
		Clear: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear log"),
		),
	}
}

// binding creates a key binding. An empty key list yields a disabled binding.
func binding(names []string, desc string) key.Binding {
	if len(names) == 0 {
		b := key.NewBinding(key.WithHelp("", desc))
		b.SetEnabled(false)
		return b
	}
	return key.NewBinding(
		key.WithKeys(expandKeys(names)...),
		key.WithHelp(strings.Join(names, "/"), desc),
	)
}

// expandKeys maps configured names to the strings Bubble Tea reports.
// The space bar arrives as " ", so "space" matches it too.
func expandKeys(names []string) []string {
	keys := make([]string, 0, len(names)+1)
	for _, n := range names {
		keys = append(keys, n)
		if n == "space" {
			keys = append(keys, " ")
		}
	}
	return keys
}

// helpKey returns the first configured name of a binding for on-screen
// prompts, falling back to def when the binding is disabled.
func helpKey(b key.Binding, def string) string {
	if !b.Enabled() {
		return def
	}
	return b.Help().Key
}

// KeyMapper translates Bubble Tea key and mouse messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys  KeyMap
	mouse bool
}

// NewKeyMapper creates a key mapper for the configured bindings.
func NewKeyMapper(kb config.KeyBindings) *KeyMapper {
	return &KeyMapper{
		keys:  NewKeyMap(kb),
		mouse: kb.Mouse,
	}
}

// Keys returns the bindings in use.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey returns every action bound to the key. One key may carry several
// actions; the controller picks the one that applies to its phase.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.InputFrame {
	frame := core.NewInputFrame()
	bound := []struct {
		b      key.Binding
		action core.Action
	}{
		{km.keys.Jump, core.ActionJump},
		{km.keys.Restart, core.ActionRestart},
		{km.keys.Confirm, core.ActionConfirm},
		{km.keys.History, core.ActionHistory},
		{km.keys.Quit, core.ActionQuit},
	}
	for _, kb := range bound {
		if key.Matches(msg, kb.b) {
			frame.Set(kb.action)
		}
	}
	return frame
}

// MapMouse translates a primary button press. A press on the on-screen
// button of the current phase activates it; any other press is a jump.
// The pointer never produces a restart.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg, lay game.ButtonLayout, phase game.Phase) core.InputFrame {
	frame := core.NewInputFrame()
	if !km.mouse || msg.Button != tea.MouseButtonLeft || msg.Action != tea.MouseActionPress {
		return frame
	}

	switch {
	case phase == game.PhaseMenu && lay.Start.Contains(msg.X, msg.Y):
		frame.Set(core.ActionConfirm)
	case phase == game.PhaseGameOver && lay.Restart.Contains(msg.X, msg.Y):
		frame.Set(core.ActionConfirm)
	default:
		frame.Set(core.ActionJump)
	}
	return frame
}
