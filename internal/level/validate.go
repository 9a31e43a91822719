package level

import (
	"errors"
	"fmt"
)

// Validate checks a definition for authoring mistakes the engine would
// otherwise silently accept.
func (d Definition) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if d.Number <= 0 {
		add("number must be positive, got %d", d.Number)
	}
	if len(d.Platforms) == 0 {
		add("level has no platforms")
	}
	for i, p := range d.Platforms {
		if p.W <= 0 || p.H <= 0 {
			add("platform %d: size must be positive", i)
		}
	}
	for i, t := range d.Traps {
		if t.Kind != TrapSpike && t.Kind != TrapSlicer {
			add("trap %d: unknown kind %q", i, t.Kind)
		}
		if t.ActiveMS <= 0 || t.CycleMS <= 0 {
			add("trap %d: times must be positive", i)
		}
		if t.ActiveMS >= t.CycleMS {
			add("trap %d: active_ms %v must be less than cycle_ms %v", i, t.ActiveMS, t.CycleMS)
		}
	}
	for i, p := range d.Plates {
		if !p.Channel.Valid() {
			add("plate %d: unknown channel %q", i, p.Channel)
		}
	}
	for i, g := range d.Gates {
		if !g.Channel.Valid() {
			add("gate %d: unknown channel %q", i, g.Channel)
		}
		if g.Height <= 0 {
			add("gate %d: height must be positive", i)
		}
	}
	for i, c := range d.Checkpoints {
		if _, err := ClassifyTag(c.Tag); err != nil {
			add("checkpoint %d: %w", i, err)
		}
	}
	for i, e := range d.Enemies {
		switch e.Kind {
		case EnemyGuard:
		case EnemyPatrol:
			if e.Left >= e.Right {
				add("enemy %d: patrol bounds must satisfy left < right", i)
			}
		case EnemyChase:
			if e.Detection < 0 {
				add("enemy %d: detection must not be negative", i)
			}
		default:
			add("enemy %d: unknown kind %q", i, e.Kind)
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("level %q: %w", d.ID, errors.Join(errs...))
}
