package engine

import "math"

// Snapshot captures the simulation state for replay checks and the
// headless runner. Floats are kept as-is; Hash folds their bit patterns.
type Snapshot struct {
	Frame         uint64
	State         string
	Level         int
	Lives         int
	Ammo          int
	Score         int
	TotalScore    int
	TimeRemaining float64
	ComboCount    int

	// Player: X, Y, VX, VY, then Health and the Grounded flag.
	PlayerBody   [4]float64
	PlayerHealth int
	Grounded     bool

	// Each enemy is 4 floats: X, Y, VX, Health.
	EnemyData []float64
	// Each trap is its cycle timer.
	TrapData []float64
	// Each gate is its current height.
	GateData []float64
	// Each projectile is 4 floats: X, Y, VX, VY.
	ProjectileData []float64

	ParticleCount int
	RNGState      uint64
}

// Snapshot returns the current state as a Snapshot.
func (s *Simulation) Snapshot() Snapshot {
	w := s.world
	snap := Snapshot{
		Frame:         s.frame,
		State:         string(s.state),
		Level:         s.levelNum,
		Lives:         s.lives,
		Ammo:          s.ammo,
		Score:         s.runScore,
		TotalScore:    s.save.TotalScore,
		TimeRemaining: s.timeRemaining,
		ComboCount:    s.combo.Count,
		PlayerBody:    [4]float64{s.player.X, s.player.Y, s.player.VX, s.player.VY},
		PlayerHealth:  s.player.Health,
		Grounded:      s.player.Grounded,
		ParticleCount: len(w.Particles),
		RNGState:      s.rng.State(),
	}

	snap.EnemyData = make([]float64, 0, len(w.Enemies)*4)
	for _, e := range w.Enemies {
		b := e.Body()
		snap.EnemyData = append(snap.EnemyData, b.X, b.Y, b.VX, float64(e.Health()))
	}
	snap.TrapData = make([]float64, 0, len(w.Traps))
	for _, t := range w.Traps {
		snap.TrapData = append(snap.TrapData, t.Phase())
	}
	snap.GateData = make([]float64, 0, len(w.Gates))
	for _, g := range w.Gates {
		snap.GateData = append(snap.GateData, g.CurrentHeight)
	}
	snap.ProjectileData = make([]float64, 0, len(w.Projectiles)*4)
	for _, p := range w.Projectiles {
		snap.ProjectileData = append(snap.ProjectileData, p.X, p.Y, p.VX, p.VY)
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Frame
	for _, c := range snap.State {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(snap.Level)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Ammo)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.TotalScore)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ComboCount)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerHealth) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.TimeRemaining)
	if snap.Grounded {
		h = h*31 + 1
	}

	for _, v := range snap.PlayerBody {
		h = h*31 + math.Float64bits(v)
	}
	for _, data := range [][]float64{snap.EnemyData, snap.TrapData, snap.GateData, snap.ProjectileData} {
		h = h*31 + uint64(len(data))
		for _, v := range data {
			h = h*31 + math.Float64bits(v)
		}
	}

	h = h*31 + uint64(snap.ParticleCount) //#nosec G115 -- hash computation
	h = h*31 + snap.RNGState

	return h
}
