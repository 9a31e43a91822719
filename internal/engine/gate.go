package engine

import (
	"github.com/vovakirdan/paintball-slug/internal/config"
	"github.com/vovakirdan/paintball-slug/internal/core"
	"github.com/vovakirdan/paintball-slug/internal/level"
)

// PressurePlate holds its channel open while pressed and for HoldDuration
// after the player steps off.
type PressurePlate struct {
	Rect         core.Rect
	Channel      level.Channel
	Pressed      bool
	Timer        float64
	HoldDuration float64
}

// NewPressurePlate creates an unpressed plate.
func NewPressurePlate(x, y float64, ch level.Channel, cfg config.GateConfig) *PressurePlate {
	return &PressurePlate{
		Rect:         core.NewRect(x, y, cfg.PlateWidth, cfg.PlateHeight),
		Channel:      ch,
		HoldDuration: cfg.HoldDuration,
	}
}

// Press marks the plate pressed. The hold timer restarts on the
// unpressed to pressed transition, which Press reports.
func (p *PressurePlate) Press() bool {
	if p.Pressed {
		return false
	}
	p.Pressed = true
	p.Timer = p.HoldDuration
	return true
}

// Release marks the plate unpressed.
func (p *PressurePlate) Release() {
	p.Pressed = false
}

// Update counts the hold timer down while unpressed.
func (p *PressurePlate) Update(dt float64) {
	if !p.Pressed && p.Timer > 0 {
		p.Timer -= dt
		if p.Timer < 0 {
			p.Timer = 0
		}
	}
}

// ShouldKeepOpen is the only predicate gates consult.
func (p *PressurePlate) ShouldKeepOpen() bool {
	return p.Pressed || p.Timer > 0
}

// Gate is a bottom-anchored barrier whose height eases toward 0 when open
// and BaseHeight when closed.
type Gate struct {
	Rect           core.Rect // closed extent
	Channel        level.Channel
	IsOpen         bool
	BaseHeight     float64
	CurrentHeight  float64
	Smoothing      float64
	SolidThreshold float64
}

// NewGate creates a closed gate of the given height.
func NewGate(x, y, height float64, ch level.Channel, cfg config.GateConfig) *Gate {
	return &Gate{
		Rect:           core.NewRect(x, y, cfg.GateWidth, height),
		Channel:        ch,
		BaseHeight:     height,
		CurrentHeight:  height,
		Smoothing:      cfg.Smoothing,
		SolidThreshold: cfg.SolidThreshold,
	}
}

// Open commands the gate open.
func (g *Gate) Open() {
	g.IsOpen = true
}

// Close commands the gate closed.
func (g *Gate) Close() {
	g.IsOpen = false
}

// Target returns the height the gate is moving toward.
func (g *Gate) Target() float64 {
	if g.IsOpen {
		return 0
	}
	return g.BaseHeight
}

// Update eases CurrentHeight toward the target. With 0 < k*dt < 1 the
// approach is monotonic and never overshoots.
func (g *Gate) Update(dt float64) {
	g.CurrentHeight += (g.Target() - g.CurrentHeight) * g.Smoothing * dt
}

// Solid reports whether the gate still blocks, based on its animated
// height rather than IsOpen.
func (g *Gate) Solid() bool {
	return g.CurrentHeight > g.SolidThreshold
}

// SolidRect returns the blocking region, anchored to the gate bottom.
func (g *Gate) SolidRect() core.Rect {
	bottom := g.Rect.Y + g.BaseHeight
	return core.NewRect(g.Rect.X, bottom-g.CurrentHeight, g.Rect.W, g.CurrentHeight)
}

// Blocks reports whether r runs into the solid part of the gate.
func (g *Gate) Blocks(r core.Rect) bool {
	return g.Solid() && g.SolidRect().Intersects(r)
}

// linkChannels commands every gate from the OR of its channel's plates.
// Gates on a channel without plates are left alone.
func linkChannels(plates []*PressurePlate, gates []*Gate) {
	open := make(map[level.Channel]bool, 4)
	for _, p := range plates {
		open[p.Channel] = open[p.Channel] || p.ShouldKeepOpen()
	}
	for _, g := range gates {
		keep, wired := open[g.Channel]
		if !wired {
			continue
		}
		if keep {
			g.Open()
		} else {
			g.Close()
		}
	}
}
