package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-kitchen/internal/core"
)

// KeyMap defines the key bindings for the kitchen.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	PickUp  key.Binding
	PutDown key.Binding
	Use     key.Binding
	Swap    key.Binding
	Pause   key.Binding
	Restart key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PickUp, k.PutDown, k.Use, k.Swap, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.PickUp, k.PutDown, k.Use, k.Swap},
		{k.Pause, k.Restart, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("w", "up"),
			key.WithHelp("w/↑", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("s", "down"),
			key.WithHelp("s/↓", "move down"),
		),
		Left: key.NewBinding(
			key.WithKeys("a", "left"),
			key.WithHelp("a/←", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("d", "right"),
			key.WithHelp("d/→", "move right"),
		),
		PickUp: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "pick up"),
		),
		PutDown: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "put down"),
		),
		Use: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "use"),
		),
		Swap: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "swap cook"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p/esc", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Bindings returns every binding with the action it produces, in help order.
// Help has no game action and maps to ActionNone.
func (k KeyMap) Bindings() []ActionBinding {
	return []ActionBinding{
		{core.ActionUp, k.Up},
		{core.ActionDown, k.Down},
		{core.ActionLeft, k.Left},
		{core.ActionRight, k.Right},
		{core.ActionPickUp, k.PickUp},
		{core.ActionPutDown, k.PutDown},
		{core.ActionUse, k.Use},
		{core.ActionSwap, k.Swap},
		{core.ActionPause, k.Pause},
		{core.ActionRestart, k.Restart},
		{core.ActionNone, k.Help},
		{core.ActionQuit, k.Quit},
	}
}

// ActionBinding pairs a key binding with its game action.
type ActionBinding struct {
	Action  core.Action
	Binding key.Binding
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a key mapper for the given bindings.
func NewKeyMapper(keys KeyMap) *KeyMapper {
	return &KeyMapper{keys: keys}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	for _, b := range km.keys.Bindings() {
		if b.Action == core.ActionNone || !key.Matches(msg, b.Binding) {
			continue
		}
		return b.Action, b.Action == core.ActionQuit
	}
	return core.ActionNone, false
}

// IsDirection reports whether the action moves the cook and so is tracked as
// a held key.
func IsDirection(a core.Action) bool {
	switch a {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		return true
	default:
		return false
	}
}

// oppositeDirection returns the direction pointing the other way, or
// ActionNone for non-direction actions.
func oppositeDirection(a core.Action) core.Action {
	switch a {
	case core.ActionUp:
		return core.ActionDown
	case core.ActionDown:
		return core.ActionUp
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	default:
		return core.ActionNone
	}
}
