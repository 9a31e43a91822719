package engine

import "github.com/vovakirdan/paintball-slug/internal/config"

// Combo tracks kills inside a rolling window.
type Combo struct {
	Count      int
	Timer      float64
	Multiplier int

	window float64
	tier2  int
	tier3  int
}

// NewCombo creates an idle combo with the configured window and tiers.
func NewCombo(cfg config.ComboConfig) Combo {
	return Combo{
		Multiplier: 1,
		window:     cfg.Window,
		tier2:      cfg.Tier2Kills,
		tier3:      cfg.Tier3Kills,
	}
}

// RegisterKill counts a kill, restarts the window and returns the new
// multiplier.
func (c *Combo) RegisterKill() int {
	c.Count++
	c.Timer = c.window
	switch {
	case c.Count >= c.tier3:
		c.Multiplier = 3
	case c.Count >= c.tier2:
		c.Multiplier = 2
	default:
		c.Multiplier = 1
	}
	return c.Multiplier
}

// Update decays the window. Expiry is the only way the combo resets.
func (c *Combo) Update(dt float64) {
	if c.Timer <= 0 {
		return
	}
	c.Timer -= dt
	if c.Timer <= 0 {
		c.Timer = 0
		c.Count = 0
		c.Multiplier = 1
	}
}
