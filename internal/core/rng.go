package core

// RNG is a deterministic 64-bit LCG. The simulation only uses it for
// cosmetic spread (particles, screen shake) so replays stay identical.
type RNG struct {
	state uint64
}

// NewRNG creates a generator from seed. Zero is remapped to 1.
func NewRNG(seed uint64) *RNG {
	if seed == 0 {
		seed = 1
	}
	return &RNG{state: seed}
}

// Next advances the generator.
func (r *RNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Float64 returns a value in [0, 1).
func (r *RNG) Float64() float64 {
	return float64(r.Next()>>11) / float64(1<<53)
}

// Spread returns a value in [-half, half).
func (r *RNG) Spread(half float64) float64 {
	return (r.Float64() - 0.5) * 2 * half
}

// State exposes the generator state for snapshots.
func (r *RNG) State() uint64 {
	return r.state
}
