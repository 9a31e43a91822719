package engine

import "github.com/vovakirdan/paintball-slug/internal/core"

// Shake is a decaying camera offset. Offsets are recomputed each frame
// from the seeded RNG.
type Shake struct {
	Intensity float64
	Duration  float64
	OffX      float64
	OffY      float64
}

// Trigger starts a shake, replacing any current one.
func (s *Shake) Trigger(intensity, duration float64) {
	s.Intensity = intensity
	s.Duration = duration
}

func (s *Shake) update(realDt float64, rng *core.RNG) {
	if s.Duration > 0 {
		s.Duration -= realDt
		s.OffX = rng.Spread(s.Intensity / 2)
		s.OffY = rng.Spread(s.Intensity / 2)
		return
	}
	s.Duration = 0
	s.OffX, s.OffY = 0, 0
}

// timeScale is the slow-motion controller. It decays in real time.
type timeScale struct {
	scale float64
	timer float64
}

func (t *timeScale) trigger(scale, duration float64) {
	t.scale = scale
	t.timer = duration
}

func (t *timeScale) factor() float64 {
	if t.scale <= 0 {
		return 1
	}
	return t.scale
}

func (t *timeScale) update(realDt float64) {
	if t.timer <= 0 {
		return
	}
	t.timer -= realDt
	if t.timer <= 0 {
		t.timer = 0
		t.scale = 1
	}
}

// Message is a transient line of text for the HUD.
type Message struct {
	Text string
	TTL  float64
}
