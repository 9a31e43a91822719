package config

import (
	_ "embed"
)

//go:embed defaults/engine.yaml
var defaultEngineYAML []byte

// DefaultEngineConfig returns the default engine configuration.
// It mirrors defaults/engine.yaml and is used when the embedded file
// cannot be parsed.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		World: WorldConfig{
			Width:  800,
			Height: 600,
		},
		Physics: PhysicsConfig{
			Gravity:      1.2,
			GravityScale: 600,
			Friction:     0.99,
			MaxFrameDT:   0.05,
			LandingSlop:  10,
		},
		Player: PlayerConfig{
			StartX:          100,
			StartY:          400,
			Width:           24,
			Height:          32,
			CrouchHeight:    22,
			RollHeight:      15,
			Speed:           200,
			AccelFactor:     4,
			MaxSpeed:        300,
			JumpPower:       400,
			RollDuration:    0.5,
			RollSpeed:       300,
			MaxHealth:       5,
			InvincibleTime:  1.5,
			ShieldTime:      3,
			EnemyKnockback:  200,
			ShootAheadReach: 50,
		},
		Combat: CombatConfig{
			BaseAmmo:           20,
			DoubledAmmo:        40,
			ShootCooldown:      0.3,
			ProjectileSpeed:    600,
			ProjectileLifetime: 3,
			ProjectileWidth:    8,
			ProjectileHeight:   4,
			HitPoints:          10,
			KillPoints:         50,
		},
		Combo: ComboConfig{
			Window:     3,
			Tier2Kills: 3,
			Tier3Kills: 5,
		},
		Hazards: HazardConfig{
			SpikeWidth:     40,
			SpikeHeight:    20,
			WarningTime:    1,
			SlicerWidth:    60,
			SlicerHeight:   100,
			SlicerTravel:   100,
			SlicerBlade:    20,
			SlicerOffsetUp: 100,
		},
		Gates: GateConfig{
			PlateWidth:     60,
			PlateHeight:    10,
			HoldDuration:   8,
			GateWidth:      20,
			Smoothing:      5,
			SolidThreshold: 10,
			ContactDamage:  true,
		},
		Pickups: PickupConfig{
			PotionWidth:      15,
			PotionHeight:     20,
			CheckpointWidth:  30,
			CheckpointHeight: 40,
		},
		Enemies: EnemiesConfig{
			DamageFlash: 0.3,
			DeathGrace:  0.5,
			Guard:       EnemyVariant{Width: 25, Height: 30, Health: 2},
			Patrol:      EnemyVariant{Width: 22, Height: 28, Health: 3, Speed: 50},
			Chase: ChaseEnemyVariant{
				EnemyVariant:   EnemyVariant{Width: 24, Height: 32, Health: 4, Speed: 80},
				DetectionRange: 100,
				AggroDecay:     2,
				AggroOnDamage:  3,
			},
		},
		Lives: LivesConfig{
			PerLevel:     3,
			RebuildDelay: 2,
		},
		Feedback: FeedbackConfig{
			HitStopFrames:   3,
			SlowMotionScale: 0.3,
			SlowMotionTime:  0.15,
			ParticleLife:    1,
			ParticleGravity: 200,
		},
		Timer: TimerConfig{
			RunTime: 300,
		},
	}
}

// DefaultYAML returns the embedded default engine YAML.
func DefaultYAML() []byte {
	return defaultEngineYAML
}
