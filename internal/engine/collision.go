package engine

// collisionRules are the per-run parameters the pass needs.
type collisionRules struct {
	LandingSlop  float64
	DamagePerHit int
	Knockback    float64
	GateDamage   bool
}

// resolveCollisions runs the ordered collision pass over w and p. It moves
// bodies, applies damage and flips entity flags in place, and returns the
// events the orchestrator must act on (score, lives, level flow).
//
// Order: platform->player, platform->enemy, hazard->player, plate->gate,
// gate->player, potion->player, enemy->player, projectile->{platform,enemy},
// checkpoint->player.
//
// The player takes at most one damage instance per pass.
func resolveCollisions(w *World, p *Player, r collisionRules) []Event {
	var events []Event
	damaged := false
	hurt := func() {
		if damaged || p.Dead() {
			return
		}
		if !p.TakeDamage(r.DamagePerHit) {
			return
		}
		damaged = true
		c := p.Center()
		events = append(events, Event{Kind: EventHit, X: c.X, Y: c.Y})
		if p.Dead() {
			events = append(events, Event{Kind: EventPlayerDied, X: c.X, Y: c.Y})
		}
	}

	alive := !p.Dead()

	if alive {
		for _, plat := range w.Platforms {
			if p.resolvePlatform(plat, r.LandingSlop) {
				p.CanJump = true
			}
		}
	}

	for _, e := range w.Enemies {
		b := e.Body()
		for _, plat := range w.Platforms {
			b.landOn(plat, r.LandingSlop)
		}
	}

	if alive {
		for _, t := range w.Traps {
			if t.Overlaps(p.Rect()) {
				hurt()
			}
		}
	}

	for _, plate := range w.Plates {
		if alive && plate.Rect.Intersects(p.Rect()) {
			if plate.Press() {
				c := plate.Rect.Center()
				events = append(events, Event{Kind: EventPlateActivate, X: c.X, Y: c.Y, Detail: string(plate.Channel)})
			}
		} else {
			plate.Release()
		}
	}
	linkChannels(w.Plates, w.Gates)

	if alive {
		for _, g := range w.Gates {
			if !g.Blocks(p.Rect()) {
				continue
			}
			if p.X < g.Rect.X {
				p.X = g.Rect.X - p.W
			} else {
				p.X = g.Rect.Right()
			}
			p.VX = 0
			if r.GateDamage {
				hurt()
			}
		}
	}

	for _, potion := range w.Potions {
		if p.Dead() || !potion.Active || !potion.Rect.Intersects(p.Rect()) {
			continue
		}
		potion.Collect()
		p.Heal()
		events = append(events, Event{Kind: EventCollect, X: potion.Rect.X, Y: potion.Rect.Y})
	}

	for _, e := range w.Enemies {
		if p.Dead() || e.Dying() || !e.Body().Rect().Intersects(p.Rect()) {
			continue
		}
		hurt()
		push := 1.0
		if p.X < e.Body().X {
			push = -1
		}
		p.VX += push * r.Knockback
	}

	for _, proj := range w.Projectiles {
		if !proj.Active {
			continue
		}
		pr := proj.Rect()
		for _, plat := range w.Platforms {
			if pr.Intersects(plat) {
				proj.Active = false
				events = append(events, Event{Kind: EventProjectileSplat, X: proj.X, Y: proj.Y})
				break
			}
		}
		if !proj.Active {
			continue
		}
		for _, e := range w.Enemies {
			if e.Dying() || !pr.Intersects(e.Body().Rect()) {
				continue
			}
			proj.Active = false
			killed := e.TakeDamage(1)
			b := e.Body()
			events = append(events, Event{Kind: EventEnemyHit, X: b.CenterX(), Y: b.Y + b.H/2, Detail: e.Kind().String()})
			if killed {
				events = append(events, Event{Kind: EventEnemyDeath, X: b.CenterX(), Y: b.Y + b.H/2, Detail: e.Kind().String()})
			}
			break
		}
	}

	for _, cp := range w.Checkpoints {
		if p.Dead() || !cp.Rect.Intersects(p.Rect()) || !cp.Activate() {
			continue
		}
		sp := cp.SpawnPoint()
		if cp.Kind.Respawn() {
			events = append(events, Event{Kind: EventCheckpoint, X: sp.X, Y: sp.Y, Detail: cp.Tag})
			continue
		}
		events = append(events, Event{Kind: EventLevelComplete, X: sp.X, Y: sp.Y, Detail: cp.Kind.String()})
		break
	}

	return events
}
