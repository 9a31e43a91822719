package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/paintball-slug/internal/core"
)

// keyHoldWindow is how long a key counts as held after its last press or
// repeat. Terminals report no key-up events, so holding is inferred from
// auto-repeat.
const keyHoldWindow = 180 * time.Millisecond

// KeyMapper translates Bubble Tea key messages to simulation keys.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a simulation key.
// Returns the key (may be KeyNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (k core.Key, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.KeyNone, true
	case "a", "left":
		return core.KeyLeft, false
	case "d", "right":
		return core.KeyRight, false
	case "w", "up", " ":
		return core.KeyUp, false
	case "s", "down":
		return core.KeyDown, false
	case "c", "shift+left", "shift+right":
		return core.KeyRoll, false
	case "x", "f":
		return core.KeyShoot, false
	case "p", "esc":
		return core.KeyPause, false
	case "r":
		return core.KeyRestart, false
	}
	return core.KeyNone, false
}

// KeyHold turns discrete key presses into a held-key set.
type KeyHold struct {
	window time.Duration
	until  map[core.Key]time.Time
}

// NewKeyHold creates a tracker with the given hold window.
func NewKeyHold(window time.Duration) *KeyHold {
	return &KeyHold{window: window, until: make(map[core.Key]time.Time)}
}

// Press marks k as held until now plus the window.
func (h *KeyHold) Press(k core.Key, now time.Time) {
	if k == core.KeyNone {
		return
	}
	h.until[k] = now.Add(h.window)
}

// Frame returns the keys still held at now and forgets expired ones.
func (h *KeyHold) Frame(now time.Time) core.InputFrame {
	in := core.NewInputFrame()
	for k, until := range h.until {
		if now.Before(until) {
			in.Set(k)
		} else {
			delete(h.until, k)
		}
	}
	return in
}

// Release forgets every held key.
func (h *KeyHold) Release() {
	clear(h.until)
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}
