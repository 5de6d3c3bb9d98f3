package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-arcade-tiles/internal/core"
)

// SeatKeys are the bindings of one seat on a shared keyboard.
type SeatKeys struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Reveal key.Binding
	Ready  key.Binding
}

// GameKeyMap defines the key bindings while a game runs.
type GameKeyMap struct {
	A       SeatKeys
	B       SeatKeys
	Deal    key.Binding
	Restart key.Binding
	Shot    key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.A.Reveal, k.B.Reveal, k.Deal, k.Restart, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.A.Up, k.A.Left, k.A.Reveal, k.A.Ready},
		{k.B.Up, k.B.Left, k.B.Reveal, k.B.Ready},
		{k.Deal, k.Restart, k.Shot, k.Quit},
	}
}

// DefaultGameKeyMap returns WASD bindings for the chicken seat and arrow
// keys for the banana seat.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		A: SeatKeys{
			Up:     key.NewBinding(key.WithKeys("w"), key.WithHelp("w/s", "chicken up/down")),
			Down:   key.NewBinding(key.WithKeys("s")),
			Left:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a/d", "chicken left/right")),
			Right:  key.NewBinding(key.WithKeys("d")),
			Reveal: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "chicken reveal")),
			Ready:  key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "chicken ready")),
		},
		B: SeatKeys{
			Up:     key.NewBinding(key.WithKeys("up"), key.WithHelp("↑/↓", "banana up/down")),
			Down:   key.NewBinding(key.WithKeys("down")),
			Left:   key.NewBinding(key.WithKeys("left"), key.WithHelp("←/→", "banana left/right")),
			Right:  key.NewBinding(key.WithKeys("right")),
			Reveal: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "banana reveal")),
			Ready:  key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "banana ready")),
		},
		Deal:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "deal board")),
		Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Shot:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "screenshot")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
type KeyMapper struct {
	keys GameKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultGameKeyMap()}
}

// Keys returns the bindings, for the help view.
func (km *KeyMapper) Keys() GameKeyMap {
	return km.keys
}

// MapKey translates a key to the seat it belongs to and its action.
// Shared keys (deal, restart) map to RoleNone.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (core.Role, core.Action) {
	if key.Matches(msg, km.keys.Quit) {
		return core.RoleNone, core.ActionQuit
	}
	if key.Matches(msg, km.keys.Deal) {
		return core.RoleNone, core.ActionStart
	}
	if key.Matches(msg, km.keys.Restart) {
		return core.RoleNone, core.ActionRestart
	}
	for _, seat := range []struct {
		role core.Role
		keys SeatKeys
	}{{core.RoleA, km.keys.A}, {core.RoleB, km.keys.B}} {
		switch {
		case key.Matches(msg, seat.keys.Up):
			return seat.role, core.ActionUp
		case key.Matches(msg, seat.keys.Down):
			return seat.role, core.ActionDown
		case key.Matches(msg, seat.keys.Left):
			return seat.role, core.ActionLeft
		case key.Matches(msg, seat.keys.Right):
			return seat.role, core.ActionRight
		case key.Matches(msg, seat.keys.Reveal):
			return seat.role, core.ActionReveal
		case key.Matches(msg, seat.keys.Ready):
			return seat.role, core.ActionReady
		}
	}
	return core.RoleNone, core.ActionNone
}

// MapKeyToMultiFrame records a key in the frame of its seat. Shared keys
// go to seat A. Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToMultiFrame(msg tea.KeyMsg, frame *core.MultiInputFrame) bool {
	role, action := km.MapKey(msg)
	switch action {
	case core.ActionQuit:
		return true
	case core.ActionNone:
		return false
	}
	if role == core.RoleNone {
		role = core.RoleA
	}
	f := frame.Role(role)
	f.Set(action)
	frame.SetRole(role, f)
	return false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	}
	return MenuActionNone
}
