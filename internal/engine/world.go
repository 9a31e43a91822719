package engine

import (
	"github.com/vovakirdan/paintball-slug/internal/config"
	"github.com/vovakirdan/paintball-slug/internal/core"
	"github.com/vovakirdan/paintball-slug/internal/level"
)

// World owns every per-level entity collection. It is rebuilt wholesale
// whenever a level starts or restarts.
type World struct {
	Number      int
	Name        string
	Start       core.Vec
	Platforms   []core.Rect
	Traps       []Hazard
	Plates      []*PressurePlate
	Gates       []*Gate
	Potions     []*HealthPotion
	Checkpoints []*Checkpoint
	Enemies     []Enemy
	Projectiles []*Projectile
	Particles   []Particle
}

// BuildWorld instantiates a level definition under the given config and
// difficulty profile. Trap times are converted from milliseconds and sped
// up by the trap scalar; enemy speeds are scaled by the enemy scalar.
// Respawn checkpoints are omitted when the profile disables them.
func BuildWorld(def level.Definition, cfg config.EngineConfig, diff config.DifficultyProfile) *World {
	start := def.Start(level.Point{X: cfg.Player.StartX, Y: cfg.Player.StartY})
	w := &World{
		Number: def.Number,
		Name:   def.Name,
		Start:  core.Vec{X: start.X, Y: start.Y},
	}

	for _, p := range def.Platforms {
		w.Platforms = append(w.Platforms, core.NewRect(p.X, p.Y, p.W, p.H))
	}

	trap := diff.TrapScalar()
	for _, t := range def.Traps {
		cycleTime := t.CycleMS / 1000 / trap
		activeTime := t.ActiveMS / 1000 / trap
		switch t.Kind {
		case level.TrapSlicer:
			w.Traps = append(w.Traps, NewSlicerTrap(t.X, t.Y, cycleTime, activeTime, cfg.Hazards))
		default:
			w.Traps = append(w.Traps, NewSpikeTrap(t.X, t.Y, cycleTime, activeTime, cfg.Hazards))
		}
	}

	for _, p := range def.Plates {
		w.Plates = append(w.Plates, NewPressurePlate(p.X, p.Y, p.Channel, cfg.Gates))
	}
	for _, g := range def.Gates {
		w.Gates = append(w.Gates, NewGate(g.X, g.Y, g.Height, g.Channel, cfg.Gates))
	}
	for _, p := range def.Potions {
		w.Potions = append(w.Potions, NewHealthPotion(p.X, p.Y, cfg.Pickups))
	}
	for _, c := range def.Checkpoints {
		kind, err := level.ClassifyTag(c.Tag)
		if err != nil {
			continue
		}
		if diff.NoCheckpoints && kind.Respawn() {
			continue
		}
		w.Checkpoints = append(w.Checkpoints, NewCheckpoint(c.X, c.Y, c.Tag, kind, cfg.Pickups))
	}

	speed := diff.EnemyScalar()
	for _, e := range def.Enemies {
		w.Enemies = append(w.Enemies, newEnemy(e, cfg.Enemies, speed))
	}
	return w
}

// prune drops expired enemies, inactive projectiles and dead particles.
func (w *World) prune() {
	enemies := w.Enemies[:0]
	for _, e := range w.Enemies {
		if !e.Expired() {
			enemies = append(enemies, e)
		}
	}
	clear(w.Enemies[len(enemies):])
	w.Enemies = enemies

	projectiles := w.Projectiles[:0]
	for _, p := range w.Projectiles {
		if p.Active {
			projectiles = append(projectiles, p)
		}
	}
	clear(w.Projectiles[len(projectiles):])
	w.Projectiles = projectiles

	particles := w.Particles[:0]
	for _, p := range w.Particles {
		if p.Life > 0 {
			particles = append(particles, p)
		}
	}
	w.Particles = particles
}
