// Package engine implements the deterministic per-frame platformer
// simulation: body physics, hazards, gates, enemies, projectiles, combo
// scoring and the level/lives state machine that ties them together.
//
// The engine has no I/O. A front-end feeds it core.InputFrame values and a
// wall-clock delta, reads StepResult and Snapshot, and receives events
// through an optional EventSink.
package engine

import (
	"github.com/vovakirdan/paintball-slug/internal/config"
	"github.com/vovakirdan/paintball-slug/internal/core"
)

// Body is a gravity-integrated rectangle.
type Body struct {
	X, Y     float64
	W, H     float64
	VX, VY   float64
	Grounded bool
}

// Rect returns the body's bounding box.
func (b *Body) Rect() core.Rect {
	return core.NewRect(b.X, b.Y, b.W, b.H)
}

// CenterX returns the horizontal center.
func (b *Body) CenterX() float64 {
	return b.X + b.W/2
}

func (b *Body) applyGravity(phys config.PhysicsConfig, dt float64) {
	b.VY += phys.Gravity * phys.GravityScale * dt
}

// landOn snaps a downward-moving body onto a platform top. It reports
// whether the body landed.
func (b *Body) landOn(p core.Rect, slop float64) bool {
	if !b.Rect().Intersects(p) {
		return false
	}
	if b.VY > 0 && b.Y+b.H-slop < p.Y {
		b.Y = p.Y - b.H
		b.VY = 0
		b.Grounded = true
		return true
	}
	return false
}

// resolvePlatform pushes the body out of a platform: landing first, then
// the ceiling, then either side.
func (b *Body) resolvePlatform(p core.Rect, slop float64) bool {
	if !b.Rect().Intersects(p) {
		return false
	}
	switch {
	case b.VY > 0 && b.Y+b.H-slop < p.Y:
		b.Y = p.Y - b.H
		b.VY = 0
		b.Grounded = true
		return true
	case b.VY < 0 && b.Y > p.Bottom()-slop:
		b.Y = p.Bottom()
		b.VY = 0
	case b.VX > 0 && b.X < p.X:
		b.X = p.X - b.W
		b.VX = 0
	case b.VX < 0 && b.X+b.W > p.Right():
		b.X = p.Right()
		b.VX = 0
	}
	return false
}
