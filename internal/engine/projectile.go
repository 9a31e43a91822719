package engine

import (
	"math"

	"github.com/vovakirdan/paintball-slug/internal/config"
	"github.com/vovakirdan/paintball-slug/internal/core"
)

// Projectile is a straight-line paintball.
type Projectile struct {
	Body
	Active   bool
	Lifetime float64
}

// newProjectileToward aims from origin at target. It returns nil when the
// target coincides with the origin.
func newProjectileToward(origin, target core.Vec, cfg config.CombatConfig) *Projectile {
	dx, dy := target.X-origin.X, target.Y-origin.Y
	dist := math.Hypot(dx, dy)
	if dist <= 0 {
		return nil
	}
	return &Projectile{
		Body: Body{
			X: origin.X, Y: origin.Y,
			W: cfg.ProjectileWidth, H: cfg.ProjectileHeight,
			VX: dx / dist * cfg.ProjectileSpeed,
			VY: dy / dist * cfg.ProjectileSpeed,
		},
		Active:   true,
		Lifetime: cfg.ProjectileLifetime,
	}
}

// Update moves the projectile and deactivates it on expiry or when it
// leaves the world rectangle.
func (p *Projectile) Update(dt float64, world config.WorldConfig) {
	if !p.Active {
		return
	}
	p.X += p.VX * dt
	p.Y += p.VY * dt
	p.Lifetime -= dt
	if p.Lifetime <= 0 || p.X < 0 || p.X > world.Width || p.Y < 0 || p.Y > world.Height {
		p.Active = false
	}
}

// Particle is a cosmetic spark. It never affects gameplay.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   float64
	Color  core.Color
}

// emitParticles appends count sparks at (x, y) with seeded spread.
func emitParticles(ps []Particle, rng *core.RNG, x, y float64, c core.Color, count int, life float64) []Particle {
	for range count {
		ps = append(ps, Particle{
			X:     x,
			Y:     y,
			VX:    rng.Spread(100),
			VY:    rng.Spread(100) - 100,
			Life:  life,
			Color: c,
		})
	}
	return ps
}

func (p *Particle) update(dt, gravity float64) {
	p.X += p.VX * dt
	p.Y += p.VY * dt
	p.VY += gravity * dt
	p.Life -= dt * 2
}
