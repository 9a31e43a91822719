package engine

import (
	"github.com/vovakirdan/paintball-slug/internal/config"
	"github.com/vovakirdan/paintball-slug/internal/core"
)

// Player is the controllable body.
type Player struct {
	Body
	Health         int
	MaxHealth      int
	Invincible     bool
	InvincibleTime float64
	CanJump        bool
	Crouching      bool
	Rolling        bool
	RollTime       float64
	LastDirection  int

	upHeld bool
	cfg    config.PlayerConfig
}

// playerStep reports what happened during Player.Update.
type playerStep struct {
	Jumped  bool
	FellOut bool
}

// NewPlayer creates a full-health player at (x, y).
func NewPlayer(x, y float64, cfg config.PlayerConfig) *Player {
	return &Player{
		Body:          Body{X: x, Y: y, W: cfg.Width, H: cfg.Height},
		Health:        cfg.MaxHealth,
		MaxHealth:     cfg.MaxHealth,
		CanJump:       true,
		LastDirection: 1,
		cfg:           cfg,
	}
}

// Update applies input, integrates, runs timers and clamps to the world.
// Grounded is cleared here and re-asserted by the collision pass.
func (p *Player) Update(dt float64, in core.InputFrame, phys config.PhysicsConfig, world config.WorldConfig) playerStep {
	var step playerStep
	step.Jumped = p.handleInput(in, dt)

	p.applyGravity(phys, dt)
	p.X += p.VX * dt
	p.Y += p.VY * dt
	if p.Grounded {
		p.VX *= phys.Friction
	}

	if p.Invincible {
		p.InvincibleTime -= dt
		if p.InvincibleTime <= 0 {
			p.Invincible = false
			p.InvincibleTime = 0
		}
	}
	if p.Rolling {
		p.RollTime -= dt
		if p.RollTime <= 0 {
			p.Rolling = false
			p.RollTime = 0
			if !p.Crouching {
				p.setHeight(p.cfg.Height)
			}
		}
	}

	p.Grounded = false
	p.X = core.ClampF(p.X, 0, world.Width-p.W)
	step.FellOut = p.Y > world.Height
	return step
}

func (p *Player) handleInput(in core.InputFrame, dt float64) bool {
	accel := p.cfg.Speed * p.cfg.AccelFactor * dt
	if in.Has(core.KeyLeft) {
		p.VX -= accel
		p.LastDirection = -1
	}
	if in.Has(core.KeyRight) {
		p.VX += accel
		p.LastDirection = 1
	}

	up := in.Has(core.KeyUp)
	jumped := false
	if up && !p.upHeld && p.CanJump && p.Grounded {
		p.VY = -p.cfg.JumpPower
		p.CanJump = false
		p.Grounded = false
		jumped = true
	}
	p.upHeld = up

	if in.Has(core.KeyDown) {
		p.Crouching = true
		p.setHeight(p.cfg.CrouchHeight)
	} else {
		p.Crouching = false
		if !p.Rolling {
			p.setHeight(p.cfg.Height)
		}
	}

	if in.Has(core.KeyRoll) && p.Grounded && !p.Rolling {
		p.Rolling = true
		p.RollTime = p.cfg.RollDuration
		p.setHeight(p.cfg.RollHeight)
		dir := float64(p.LastDirection)
		if p.VX > 0 {
			dir = 1
		} else if p.VX < 0 {
			dir = -1
		}
		p.VX = dir * p.cfg.RollSpeed
	}

	p.VX = core.ClampF(p.VX, -p.cfg.MaxSpeed, p.cfg.MaxSpeed)
	return jumped
}

// setHeight resizes the hitbox keeping the feet in place.
func (p *Player) setHeight(h float64) {
	p.Y += p.H - h
	p.H = h
}

// TakeDamage removes amount health unless invincible and starts the
// invincibility window. It reports whether damage was applied.
func (p *Player) TakeDamage(amount int) bool {
	if p.Invincible || p.Health <= 0 {
		return false
	}
	p.Health -= amount
	p.Invincible = true
	p.InvincibleTime = p.cfg.InvincibleTime
	return true
}

// Kill drops health to zero regardless of invincibility.
func (p *Player) Kill() {
	p.Health = 0
}

// Dead reports whether health is exhausted.
func (p *Player) Dead() bool {
	return p.Health <= 0
}

// Heal restores one point up to MaxHealth and reports whether it helped.
func (p *Player) Heal() bool {
	if p.Health >= p.MaxHealth {
		return false
	}
	p.Health++
	return true
}

// Shield grants invincibility for d seconds.
func (p *Player) Shield(d float64) {
	p.Invincible = true
	p.InvincibleTime = d
}

// Respawn moves the player to (x, y) with full health and no momentum.
func (p *Player) Respawn(x, y float64) {
	p.H = p.cfg.Height
	p.X, p.Y = x, y
	p.VX, p.VY = 0, 0
	p.Health = p.MaxHealth
	p.Invincible = false
	p.InvincibleTime = 0
	p.Rolling = false
	p.RollTime = 0
	p.Crouching = false
}

// Center returns the body center.
func (p *Player) Center() core.Vec {
	return p.Rect().Center()
}
