package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/paintball-slug/internal/core"
)

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want core.Key
		quit bool
	}{
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")}, core.KeyLeft, false},
		{tea.KeyMsg{Type: tea.KeyRight}, core.KeyRight, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(" ")}, core.KeyUp, false},
		{tea.KeyMsg{Type: tea.KeyDown}, core.KeyDown, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")}, core.KeyRoll, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, core.KeyShoot, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")}, core.KeyPause, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")}, core.KeyRestart, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, core.KeyNone, true},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.KeyNone, true},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("z")}, core.KeyNone, false},
	}

	for _, tt := range tests {
		got, quit := km.MapKey(tt.msg)
		if got != tt.want || quit != tt.quit {
			t.Errorf("MapKey(%q) = (%v, %v), expected (%v, %v)", tt.msg.String(), got, quit, tt.want, tt.quit)
		}
	}
}

func TestKeyHoldWindow(t *testing.T) {
	h := NewKeyHold(100 * time.Millisecond)
	start := time.Unix(1000, 0)

	h.Press(core.KeyRight, start)
	h.Press(core.KeyNone, start)

	if in := h.Frame(start.Add(50 * time.Millisecond)); !in.Has(core.KeyRight) {
		t.Error("key should still be held inside the window")
	}

	// Auto-repeat extends the hold.
	h.Press(core.KeyRight, start.Add(90*time.Millisecond))
	if in := h.Frame(start.Add(150 * time.Millisecond)); !in.Has(core.KeyRight) {
		t.Error("repeat should extend the hold")
	}

	in := h.Frame(start.Add(200 * time.Millisecond))
	if in.Has(core.KeyRight) {
		t.Error("key should be released after the window")
	}
	if in.Has(core.KeyNone) {
		t.Error("KeyNone must never be held")
	}
}

func TestKeyHoldRelease(t *testing.T) {
	h := NewKeyHold(time.Second)
	now := time.Unix(1000, 0)
	h.Press(core.KeyLeft, now)
	h.Press(core.KeyShoot, now)
	h.Release()

	in := h.Frame(now)
	if in.Has(core.KeyLeft) || in.Has(core.KeyShoot) {
		t.Error("Release should drop every key")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")}, MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyLeft}, MenuActionLeft},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("l")}, MenuActionRight},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b")}, MenuActionBack},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, MenuActionQuit},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("z")}, MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
		}
	}
}
