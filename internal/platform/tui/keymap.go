package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cavern/internal/core"
)

// GameKeyMap defines the in-game key bindings.
type GameKeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Jump       key.Binding
	FireUp     key.Binding
	FireDown   key.Binding
	FireLeft   key.Binding
	FireRight  key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Jump, k.FireDown, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Jump},
		{k.FireUp, k.FireDown, k.FireLeft, k.FireRight},
		{k.Pause, k.Restart, k.Screenshot, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Left: key.NewBinding(
			key.WithKeys("a", "left"),
			key.WithHelp("a/left", "walk left"),
		),
		Right: key.NewBinding(
			key.WithKeys("d", "right"),
			key.WithHelp("d/right", "walk right"),
		),
		Jump: key.NewBinding(
			key.WithKeys("w", "up", " "),
			key.WithHelp("w/space", "jump/swim"),
		),
		FireUp: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "fire up"),
		),
		FireDown: key.NewBinding(
			key.WithKeys("k"),
			key.WithHelp("ijkl", "fire"),
		),
		FireLeft: key.NewBinding(
			key.WithKeys("j"),
			key.WithHelp("j", "fire left"),
		),
		FireRight: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "fire right"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// Terminals report presses but not releases, so movement keys stay held
// for a fixed number of ticks after their last press.
type KeyMapper struct {
	keys    GameKeyMap
	hold    int
	held    map[core.Action]int
	pending core.InputFrame
}

// NewKeyMapper creates a key mapper that holds movement for hold ticks.
func NewKeyMapper(keys GameKeyMap, hold int) *KeyMapper {
	if hold < 1 {
		hold = 1
	}
	return &KeyMapper{
		keys:    keys,
		hold:    hold,
		held:    make(map[core.Action]int),
		pending: core.NewInputFrame(),
	}
}

// Keys returns the bindings in use.
func (km *KeyMapper) Keys() GameKeyMap {
	return km.keys
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, km.keys.Left):
		return core.ActionLeft, false
	case key.Matches(msg, km.keys.Right):
		return core.ActionRight, false
	case key.Matches(msg, km.keys.Jump):
		return core.ActionJump, false
	case key.Matches(msg, km.keys.FireUp, km.keys.FireDown, km.keys.FireLeft, km.keys.FireRight):
		return core.ActionFire, false
	case key.Matches(msg, km.keys.Pause):
		return core.ActionPause, false
	case key.Matches(msg, km.keys.Restart):
		return core.ActionRestart, false
	}
	return core.ActionNone, false
}

// Press records a key message. Returns true if it was a quit request.
func (km *KeyMapper) Press(msg tea.KeyMsg) bool {
	action, isQuit := km.MapKey(msg)
	switch action {
	case core.ActionLeft:
		delete(km.held, core.ActionRight)
		km.held[action] = km.hold
	case core.ActionRight:
		delete(km.held, core.ActionLeft)
		km.held[action] = km.hold
	case core.ActionJump:
		km.held[action] = km.hold
	case core.ActionFire:
		km.Aim(fireAngle(km.keys, msg))
	case core.ActionPause, core.ActionRestart:
		km.pending.Set(action)
	}
	return isQuit
}

// Aim queues a shot along theta radians for the next tick.
func (km *KeyMapper) Aim(theta float64) {
	km.pending.Fire(theta)
}

// Fill writes the actions for the next tick into frame and ages held keys.
func (km *KeyMapper) Fill(frame *core.InputFrame) {
	for action, left := range km.held {
		frame.Set(action)
		if left <= 1 {
			delete(km.held, action)
		} else {
			km.held[action] = left - 1
		}
	}
	for action, on := range km.pending.Actions {
		if on {
			frame.Set(action)
		}
	}
	if km.pending.Has(core.ActionFire) {
		frame.Aim = km.pending.Aim
	}
	km.pending.Clear()
}

// Release drops every held key.
func (km *KeyMapper) Release() {
	clear(km.held)
	km.pending.Clear()
}

func fireAngle(keys GameKeyMap, msg tea.KeyMsg) float64 {
	switch {
	case key.Matches(msg, keys.FireUp):
		return core.AimUp
	case key.Matches(msg, keys.FireLeft):
		return core.AimLeft
	case key.Matches(msg, keys.FireRight):
		return core.AimRight
	default:
		return core.AimDown
	}
}
