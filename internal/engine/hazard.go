package engine

import (
	"math"

	"github.com/vovakirdan/paintball-slug/internal/config"
	"github.com/vovakirdan/paintball-slug/internal/core"
)

// Hazard is a cyclic trap that damages the player while active.
type Hazard interface {
	Update(dt float64)
	IsActive() bool
	IsWarning() bool
	Overlaps(r core.Rect) bool
	Bounds() core.Rect
	Phase() float64
}

// cycle is the shared wrap-around timer of every trap.
// Invariant: 0 <= Timer < CycleTime and ActiveTime < CycleTime.
type cycle struct {
	CycleTime   float64
	ActiveTime  float64
	WarningTime float64
	Timer       float64
}

func (c *cycle) advance(dt float64) {
	c.Timer += dt
	if c.Timer >= c.CycleTime {
		c.Timer = math.Mod(c.Timer, c.CycleTime)
	}
}

// IsActive holds exactly when the timer is inside [0, ActiveTime).
func (c *cycle) IsActive() bool {
	return c.Timer < c.ActiveTime
}

// IsWarning holds in the tail window [CycleTime-WarningTime, CycleTime).
func (c *cycle) IsWarning() bool {
	return c.Timer >= c.CycleTime-c.WarningTime && c.Timer < c.CycleTime
}

// Phase returns the current timer value.
func (c *cycle) Phase() float64 {
	return c.Timer
}

// SpikeTrap is a floor trap that is dangerous while active.
type SpikeTrap struct {
	cycle
	Rect core.Rect
}

// NewSpikeTrap creates a spike trap at (x, y) with times in seconds.
func NewSpikeTrap(x, y, cycleTime, activeTime float64, cfg config.HazardConfig) *SpikeTrap {
	return &SpikeTrap{
		cycle: cycle{CycleTime: cycleTime, ActiveTime: activeTime, WarningTime: cfg.WarningTime},
		Rect:  core.NewRect(x, y, cfg.SpikeWidth, cfg.SpikeHeight),
	}
}

// Update advances the trap clock.
func (t *SpikeTrap) Update(dt float64) {
	t.advance(dt)
}

// Overlaps reports whether an active trap touches r.
func (t *SpikeTrap) Overlaps(r core.Rect) bool {
	return t.IsActive() && t.Rect.Intersects(r)
}

// Bounds returns the trap rectangle.
func (t *SpikeTrap) Bounds() core.Rect {
	return t.Rect
}

// SlicerTrap drops a blade through its frame while active.
type SlicerTrap struct {
	cycle
	Rect       core.Rect
	Travel     float64
	BladeThick float64
}

// NewSlicerTrap creates a slicer anchored at (x, y); the frame hangs
// SlicerOffsetUp pixels above the anchor.
func NewSlicerTrap(x, y, cycleTime, activeTime float64, cfg config.HazardConfig) *SlicerTrap {
	return &SlicerTrap{
		cycle:      cycle{CycleTime: cycleTime, ActiveTime: activeTime, WarningTime: cfg.WarningTime},
		Rect:       core.NewRect(x, y-cfg.SlicerOffsetUp, cfg.SlicerWidth, cfg.SlicerHeight),
		Travel:     cfg.SlicerTravel,
		BladeThick: cfg.SlicerBlade,
	}
}

// Update advances the trap clock.
func (t *SlicerTrap) Update(dt float64) {
	t.advance(dt)
}

// BladeY interpolates the blade from the frame top over the active window
// and snaps it back while inactive.
func (t *SlicerTrap) BladeY() float64 {
	if !t.IsActive() {
		return t.Rect.Y
	}
	return t.Rect.Y + t.Timer/t.ActiveTime*t.Travel
}

// BladeRect is the damaging region.
func (t *SlicerTrap) BladeRect() core.Rect {
	return core.NewRect(t.Rect.X, t.BladeY(), t.Rect.W, t.BladeThick)
}

// Overlaps reports whether an active blade touches r.
func (t *SlicerTrap) Overlaps(r core.Rect) bool {
	return t.IsActive() && t.BladeRect().Intersects(r)
}

// Bounds returns the slicer frame.
func (t *SlicerTrap) Bounds() core.Rect {
	return t.Rect
}
