package tui

import (
	"fmt"
	"math"

	"github.com/vovakirdan/paintball-slug/internal/config"
	"github.com/vovakirdan/paintball-slug/internal/core"
	"github.com/vovakirdan/paintball-slug/internal/engine"
	"github.com/vovakirdan/paintball-slug/internal/level"
)

// hudRows are the screen rows not used by the play field: the status line
// on top and the message line at the bottom.
const hudRows = 2

// channelColors maps gate channels to screen colors.
var channelColors = map[level.Channel]core.Color{
	level.ChannelRed:   core.ColorChannelRed,
	level.ChannelBlue:  core.ColorChannelBlue,
	level.ChannelGreen: core.ColorChannelGreen,
	level.ChannelCyan:  core.ColorChannelCyan,
}

// viewport scales world pixels into terminal cells.
type viewport struct {
	sx, sy float64
	offX   float64
	offY   float64
	top    int
	w, h   int
}

func newViewport(world config.WorldConfig, screenW, screenH int) viewport {
	h := max(screenH-hudRows, 1)
	return viewport{
		sx:  float64(screenW) / world.Width,
		sy:  float64(h) / world.Height,
		top: 1,
		w:   screenW,
		h:   h,
	}
}

// cell returns the screen cell holding world point (x, y).
func (v viewport) cell(x, y float64) (int, int) {
	cx := int(math.Floor((x + v.offX) * v.sx))
	cy := int(math.Floor((y+v.offY)*v.sy)) + v.top
	return cx, cy
}

// inField reports whether a screen row belongs to the play field.
func (v viewport) inField(cy int) bool {
	return cy >= v.top && cy < v.top+v.h
}

// toWorld returns the world point at the center of screen cell (cx, cy).
func (v viewport) toWorld(cx, cy int) (float64, float64) {
	x := (float64(cx)+0.5)/v.sx - v.offX
	y := (float64(cy-v.top)+0.5)/v.sy - v.offY
	return x, y
}

func (v viewport) set(s *core.Screen, x, y float64, r rune, c core.Color) {
	cx, cy := v.cell(x, y)
	if v.inField(cy) {
		s.SetColored(cx, cy, r, c)
	}
}

// fill paints every cell the rect touches, at least one.
func (v viewport) fill(s *core.Screen, rect core.Rect, r rune, c core.Color) {
	x0, y0 := v.cell(rect.X, rect.Y)
	x1, y1 := v.cell(rect.Right(), rect.Bottom())
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	for y := y0; y < y1; y++ {
		if v.inField(y) {
			s.DrawRect(x0, y, x1-x0, 1, r, c)
		}
	}
}

// drawSimulation renders the world, HUD and overlays of sim onto s.
func drawSimulation(s *core.Screen, sim *engine.Simulation) {
	s.Clear()
	v := newViewport(sim.Config().World, s.Width(), s.Height())
	shake := sim.Shake()
	v.offX, v.offY = shake.OffX, shake.OffY

	w := sim.World()
	for _, p := range w.Platforms {
		v.fill(s, p, '█', core.ColorPlatform)
	}
	drawTraps(s, v, w.Traps)
	for _, p := range w.Plates {
		r := '▬'
		if p.Pressed {
			r = '▁'
		}
		v.fill(s, p.Rect, r, channelColors[p.Channel])
	}
	for _, g := range w.Gates {
		if g.CurrentHeight < 1 {
			continue
		}
		r := '║'
		if !g.Solid() {
			r = '┊'
		}
		v.fill(s, g.SolidRect(), r, channelColors[g.Channel])
	}
	for _, p := range w.Potions {
		if p.Active {
			c := p.Rect.Center()
			v.set(s, c.X, c.Y, '♥', core.ColorPotion)
		}
	}
	for _, cp := range w.Checkpoints {
		c := core.ColorWarning
		if cp.Activated {
			c = core.ColorReached
		}
		r := '⚑'
		if cp.Kind == level.CheckpointNext || cp.Kind == level.CheckpointWin {
			r = '⌂'
		}
		v.set(s, cp.Rect.X+cp.Rect.W/2, cp.Rect.Y+cp.Rect.H/2, r, c)
	}
	drawEnemies(s, v, w.Enemies)
	for _, p := range w.Projectiles {
		if p.Active {
			v.set(s, p.CenterX(), p.Y+p.H/2, '•', core.ColorPaint)
		}
	}
	for _, p := range w.Particles {
		v.set(s, p.X, p.Y, '.', p.Color)
	}
	drawPlayer(s, v, sim.Player())

	st := sim.Status()
	drawHUD(s, st, sim.Difficulty())
	drawOverlay(s, st)
}

func drawTraps(s *core.Screen, v viewport, traps []engine.Hazard) {
	for _, t := range traps {
		if sl, ok := t.(*engine.SlicerTrap); ok {
			v.set(s, sl.Bounds().X, sl.Bounds().Y, '┬', core.ColorPlatform)
			c := core.ColorPlatform
			switch {
			case sl.IsActive():
				c = core.ColorDanger
			case sl.IsWarning():
				c = core.ColorWarning
			}
			v.fill(s, sl.BladeRect(), '═', c)
			continue
		}
		r, c := '_', core.ColorPlatform
		switch {
		case t.IsActive():
			r, c = '▲', core.ColorDanger
		case t.IsWarning():
			r, c = '^', core.ColorWarning
		}
		v.fill(s, t.Bounds(), r, c)
	}
}

func drawEnemies(s *core.Screen, v viewport, enemies []engine.Enemy) {
	for _, e := range enemies {
		r, c := 'G', core.ColorOrange
		switch e.Kind() {
		case engine.KindPatrol:
			r, c = 'P', core.ColorMagenta
		case engine.KindChase:
			r, c = 'C', core.ColorRed
		}
		switch {
		case e.Dying():
			r, c = 'x', core.ColorGray
		case e.Flash() > 0:
			c = core.ColorFlash
		}
		v.fill(s, e.Body().Rect(), r, c)
	}
}

func drawPlayer(s *core.Screen, v viewport, p *engine.Player) {
	r := '@'
	if p.Rolling || p.Crouching {
		r = 'o'
	}
	c := core.ColorPlayer
	if p.Invincible {
		c = core.ColorInvincible
	}
	v.fill(s, p.Rect(), r, c)
}

func drawHUD(s *core.Screen, st engine.StepResult, diff config.DifficultyProfile) {
	hearts := ""
	for i := range st.MaxHealth {
		if i < st.Health {
			hearts += "♥"
		} else {
			hearts += "♡"
		}
	}
	line := fmt.Sprintf(" L%d %s  Lives %d  Ammo %d/%d  Score %d  Total %d  Time %s  %s",
		st.Level, hearts, st.Lives, st.Ammo, st.MaxAmmo, st.Score, st.TotalScore,
		formatClock(st.TimeRemaining), diff.Label)
	if st.Combo > 1 {
		line += fmt.Sprintf("  x%d", st.Multiplier)
	}
	s.DrawTextColored(0, 0, line, core.ColorHUD)

	if len(st.Messages) > 0 {
		s.DrawTextColored(1, s.Height()-1, st.Messages[len(st.Messages)-1], core.ColorMessage)
	}
}

func drawOverlay(s *core.Screen, st engine.StepResult) {
	mid := s.Height() / 2
	switch st.State {
	case engine.StatePaused:
		s.DrawTextCenteredColored(mid, "PAUSED", core.ColorHUD)
		s.DrawTextCentered(mid+1, "P resume   R restart   B menu")
	case engine.StateGameOver:
		if st.Reason == engine.ReasonTimeout {
			s.DrawTextCenteredColored(mid, "TIME'S UP", core.ColorDanger)
			s.DrawTextCentered(mid+1, fmt.Sprintf("Score %d", st.Score))
			s.DrawTextCentered(mid+2, "R restart   B menu")
			return
		}
		s.DrawTextCenteredColored(mid, "GAME OVER", core.ColorDanger)
		s.DrawTextCentered(mid+1, "Rebuilding level...")
	case engine.StateWon:
		s.DrawTextCenteredColored(mid, "YOU WIN!", core.ColorReached)
		s.DrawTextCentered(mid+1, fmt.Sprintf("Score %d   Total %d", st.Score, st.TotalScore))
		s.DrawTextCentered(mid+2, "R play again   B menu")
	}
}

// formatClock renders seconds as m:ss.
func formatClock(sec float64) string {
	if sec < 0 {
		sec = 0
	}
	total := int(math.Ceil(sec))
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
