package engine

import (
	"github.com/vovakirdan/paintball-slug/internal/config"
	"github.com/vovakirdan/paintball-slug/internal/core"
	"github.com/vovakirdan/paintball-slug/internal/level"
)

// HealthPotion restores one health point, once.
type HealthPotion struct {
	Rect   core.Rect
	Active bool
}

// NewHealthPotion creates an uncollected potion.
func NewHealthPotion(x, y float64, cfg config.PickupConfig) *HealthPotion {
	return &HealthPotion{
		Rect:   core.NewRect(x, y, cfg.PotionWidth, cfg.PotionHeight),
		Active: true,
	}
}

// Collect deactivates the potion and reports whether it was still active.
func (p *HealthPotion) Collect() bool {
	if !p.Active {
		return false
	}
	p.Active = false
	return true
}

// Checkpoint is a respawn marker or a level exit.
type Checkpoint struct {
	Rect      core.Rect
	Tag       string
	Kind      level.CheckpointKind
	Activated bool
}

// NewCheckpoint creates an inactive checkpoint.
func NewCheckpoint(x, y float64, tag string, kind level.CheckpointKind, cfg config.PickupConfig) *Checkpoint {
	return &Checkpoint{
		Rect: core.NewRect(x, y, cfg.CheckpointWidth, cfg.CheckpointHeight),
		Tag:  tag,
		Kind: kind,
	}
}

// Activate is idempotent; it reports true only on the first call.
func (c *Checkpoint) Activate() bool {
	if c.Activated {
		return false
	}
	c.Activated = true
	return true
}

// SpawnPoint is where the player reappears after a death.
func (c *Checkpoint) SpawnPoint() core.Vec {
	return core.Vec{X: c.Rect.X + c.Rect.W/2, Y: c.Rect.Y}
}
