package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/paintball-slug/internal/config"
	"github.com/vovakirdan/paintball-slug/internal/core"
	"github.com/vovakirdan/paintball-slug/internal/engine"
	"github.com/vovakirdan/paintball-slug/internal/level"
)

func TestViewportScaling(t *testing.T) {
	world := config.WorldConfig{Width: 800, Height: 600}
	v := newViewport(world, 80, 32)

	tests := []struct {
		x, y   float64
		cx, cy int
	}{
		{0, 0, 0, 1},
		{799, 599, 79, 30},
		{405, 310, 40, 16},
	}
	for _, tt := range tests {
		cx, cy := v.cell(tt.x, tt.y)
		if cx != tt.cx || cy != tt.cy {
			t.Errorf("cell(%v, %v) = (%d, %d), expected (%d, %d)", tt.x, tt.y, cx, cy, tt.cx, tt.cy)
		}
	}

	if v.inField(0) || !v.inField(1) || !v.inField(30) || v.inField(31) {
		t.Error("play field should span rows 1..30")
	}
}

func TestViewportToWorldRoundTrip(t *testing.T) {
	v := newViewport(config.WorldConfig{Width: 800, Height: 600}, 100, 40)
	v.offX, v.offY = 3, -2

	for _, c := range [][2]int{{0, 1}, {50, 20}, {99, 38}} {
		x, y := v.toWorld(c[0], c[1])
		cx, cy := v.cell(x, y)
		if cx != c[0] || cy != c[1] {
			t.Errorf("cell(toWorld(%d, %d)) = (%d, %d)", c[0], c[1], cx, cy)
		}
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		sec  float64
		want string
	}{
		{300, "5:00"},
		{59.2, "1:00"},
		{61, "1:01"},
		{0, "0:00"},
		{-4, "0:00"},
	}
	for _, tt := range tests {
		if got := formatClock(tt.sec); got != tt.want {
			t.Errorf("formatClock(%v) = %q, expected %q", tt.sec, got, tt.want)
		}
	}
}

func TestDrawSimulation(t *testing.T) {
	sim := engine.New(level.MustEmbedded(), engine.WithSeed(7))
	screen := core.NewScreen(80, 32)

	drawSimulation(screen, sim)

	hud := screen.Row(0)
	if !strings.Contains(hud, "L1") || !strings.Contains(hud, "Normal") {
		t.Errorf("HUD line = %q", hud)
	}

	// The ground platform spans the level bottom.
	if got := screen.GetCell(0, 29).Rune; got != '█' {
		t.Errorf("ground cell = %q, expected platform", got)
	}

	if !strings.Contains(screen.String(), "@") {
		t.Error("player glyph missing")
	}
}

func TestDrawPausedOverlay(t *testing.T) {
	sim := engine.New(level.MustEmbedded(), engine.WithSeed(7))
	in := core.NewInputFrame()
	in.Set(core.KeyPause)
	sim.Step(1.0/60, in)

	screen := core.NewScreen(80, 32)
	drawSimulation(screen, sim)

	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("paused overlay missing")
	}
}
