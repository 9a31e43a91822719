package config

import "math"

// DifficultyPreset represents a named difficulty profile.
type DifficultyPreset string

const (
	DifficultyEasy      DifficultyPreset = "easy"
	DifficultyNormal    DifficultyPreset = "normal"
	DifficultyHard      DifficultyPreset = "hard"
	DifficultyChallenge DifficultyPreset = "challenge"
)

// Presets lists the known presets in menu order.
var Presets = []DifficultyPreset{
	DifficultyEasy,
	DifficultyNormal,
	DifficultyHard,
	DifficultyChallenge,
}

// DifficultyProfile holds the multiplicative scalars a preset applies at
// level-build, damage and score time.
type DifficultyProfile struct {
	Preset        DifficultyPreset
	Label         string
	Damage        float64 // health lost per damage instance (floored, at least 1)
	Ammo          float64 // starting ammo multiplier
	TrapSpeed     float64 // trap cycles run this many times faster
	EnemySpeed    float64 // patrol/chase speed multiplier
	Score         float64 // awarded points multiplier
	NoCheckpoints bool    // drop respawn checkpoints at level build
}

var profiles = map[DifficultyPreset]DifficultyProfile{
	DifficultyEasy: {
		Preset: DifficultyEasy, Label: "Easy",
		Damage: 0.5, Ammo: 2, TrapSpeed: 0.5, EnemySpeed: 0.75, Score: 0.5,
	},
	DifficultyNormal: {
		Preset: DifficultyNormal, Label: "Normal",
		Damage: 1, Ammo: 1, TrapSpeed: 1, EnemySpeed: 1, Score: 1,
	},
	DifficultyHard: {
		Preset: DifficultyHard, Label: "Hard",
		Damage: 1.5, Ammo: 0.75, TrapSpeed: 1.25, EnemySpeed: 1.5, Score: 2,
	},
	DifficultyChallenge: {
		Preset: DifficultyChallenge, Label: "Challenge",
		Damage: 2, Ammo: 0.5, TrapSpeed: 1.5, EnemySpeed: 1.5, Score: 3,
		NoCheckpoints: true,
	},
}

// ParsePreset maps a flag value to a preset. Unknown values yield normal.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyChallenge:
		return DifficultyPreset(s)
	default:
		return DifficultyNormal
	}
}

// ProfileFor returns the profile for a preset, falling back to normal.
func ProfileFor(preset DifficultyPreset) DifficultyProfile {
	if p, ok := profiles[preset]; ok {
		return p
	}
	return profiles[DifficultyNormal]
}

// DamagePerHit returns the health removed by one damage instance.
func (p DifficultyProfile) DamagePerHit() int {
	return max(1, int(math.Floor(p.Damage)))
}

// ScaleAmmo applies the ammo multiplier to a max-ammo value.
func (p DifficultyProfile) ScaleAmmo(maxAmmo int) int {
	return int(math.Floor(float64(maxAmmo) * p.ammoScalar()))
}

// ScaleScore applies the score multiplier and floors to whole points.
func (p DifficultyProfile) ScaleScore(points float64) int {
	return int(math.Floor(points * p.scoreScalar()))
}

func (p DifficultyProfile) ammoScalar() float64 {
	if p.Ammo <= 0 {
		return 1
	}
	return p.Ammo
}

func (p DifficultyProfile) scoreScalar() float64 {
	if p.Score <= 0 {
		return 1
	}
	return p.Score
}

// TrapScalar returns the trap speed multiplier, guarding against zero.
func (p DifficultyProfile) TrapScalar() float64 {
	if p.TrapSpeed <= 0 {
		return 1
	}
	return p.TrapSpeed
}

// EnemyScalar returns the enemy speed multiplier, guarding against zero.
func (p DifficultyProfile) EnemyScalar() float64 {
	if p.EnemySpeed <= 0 {
		return 1
	}
	return p.EnemySpeed
}
