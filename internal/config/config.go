// Package config provides YAML-based engine configuration loading and
// difficulty profiles for the simulation.
package config

// EngineConfig contains every tunable of the simulation engine.
type EngineConfig struct {
	World    WorldConfig    `yaml:"world"`
	Physics  PhysicsConfig  `yaml:"physics"`
	Player   PlayerConfig   `yaml:"player"`
	Combat   CombatConfig   `yaml:"combat"`
	Combo    ComboConfig    `yaml:"combo"`
	Hazards  HazardConfig   `yaml:"hazards"`
	Gates    GateConfig     `yaml:"gates"`
	Pickups  PickupConfig   `yaml:"pickups"`
	Enemies  EnemiesConfig  `yaml:"enemies"`
	Lives    LivesConfig    `yaml:"lives"`
	Feedback FeedbackConfig `yaml:"feedback"`
	Timer    TimerConfig    `yaml:"timer"`
}

// WorldConfig defines the level bounds in world pixels.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines shared body integration parameters.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`       // base gravity constant
	GravityScale float64 `yaml:"gravity_scale"` // pixels-per-unit scale factor
	Friction     float64 `yaml:"friction"`      // per-step horizontal damping while grounded
	MaxFrameDT   float64 `yaml:"max_frame_dt"`  // wall-clock delta cap in seconds
	LandingSlop  float64 `yaml:"landing_slop"`  // how far a body may sink before a landing counts as a side hit
}

// PlayerConfig defines player body and movement parameters.
type PlayerConfig struct {
	StartX          float64 `yaml:"start_x"`
	StartY          float64 `yaml:"start_y"`
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	CrouchHeight    float64 `yaml:"crouch_height"`
	RollHeight      float64 `yaml:"roll_height"`
	Speed           float64 `yaml:"speed"`
	AccelFactor     float64 `yaml:"accel_factor"`
	MaxSpeed        float64 `yaml:"max_speed"`
	JumpPower       float64 `yaml:"jump_power"`
	RollDuration    float64 `yaml:"roll_duration"`
	RollSpeed       float64 `yaml:"roll_speed"`
	MaxHealth       int     `yaml:"max_health"`
	InvincibleTime  float64 `yaml:"invincible_time"`
	ShieldTime      float64 `yaml:"shield_time"` // startingShield upgrade duration
	EnemyKnockback  float64 `yaml:"enemy_knockback"`
	ShootAheadReach float64 `yaml:"shoot_ahead_reach"` // aim distance for keyboard shots
}

// CombatConfig defines shooting and projectile parameters.
type CombatConfig struct {
	BaseAmmo           int     `yaml:"base_ammo"`
	DoubledAmmo        int     `yaml:"doubled_ammo"`
	ShootCooldown      float64 `yaml:"shoot_cooldown"`
	ProjectileSpeed    float64 `yaml:"projectile_speed"`
	ProjectileLifetime float64 `yaml:"projectile_lifetime"`
	ProjectileWidth    float64 `yaml:"projectile_width"`
	ProjectileHeight   float64 `yaml:"projectile_height"`
	HitPoints          int     `yaml:"hit_points"`
	KillPoints         int     `yaml:"kill_points"`
}

// ComboConfig defines the kill-combo window and multiplier tiers.
type ComboConfig struct {
	Window     float64 `yaml:"window"`
	Tier2Kills int     `yaml:"tier2_kills"`
	Tier3Kills int     `yaml:"tier3_kills"`
}

// HazardConfig defines trap dimensions and timing constants.
type HazardConfig struct {
	SpikeWidth     float64 `yaml:"spike_width"`
	SpikeHeight    float64 `yaml:"spike_height"`
	WarningTime    float64 `yaml:"warning_time"`
	SlicerWidth    float64 `yaml:"slicer_width"`
	SlicerHeight   float64 `yaml:"slicer_height"`
	SlicerTravel   float64 `yaml:"slicer_travel"`
	SlicerBlade    float64 `yaml:"slicer_blade"`
	SlicerOffsetUp float64 `yaml:"slicer_offset_up"`
}

// GateConfig defines pressure plate and gate parameters.
type GateConfig struct {
	PlateWidth     float64 `yaml:"plate_width"`
	PlateHeight    float64 `yaml:"plate_height"`
	HoldDuration   float64 `yaml:"hold_duration"`
	GateWidth      float64 `yaml:"gate_width"`
	Smoothing      float64 `yaml:"smoothing"`
	SolidThreshold float64 `yaml:"solid_threshold"`
	ContactDamage  bool    `yaml:"contact_damage"`
}

// PickupConfig defines potion and checkpoint sizes.
type PickupConfig struct {
	PotionWidth      float64 `yaml:"potion_width"`
	PotionHeight     float64 `yaml:"potion_height"`
	CheckpointWidth  float64 `yaml:"checkpoint_width"`
	CheckpointHeight float64 `yaml:"checkpoint_height"`
}

// EnemiesConfig groups per-variant enemy parameters.
type EnemiesConfig struct {
	DamageFlash float64           `yaml:"damage_flash"`
	DeathGrace  float64           `yaml:"death_grace"`
	Guard       EnemyVariant      `yaml:"guard"`
	Patrol      EnemyVariant      `yaml:"patrol"`
	Chase       ChaseEnemyVariant `yaml:"chase"`
}

// EnemyVariant defines body size, health and speed for an enemy type.
type EnemyVariant struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Health int     `yaml:"health"`
	Speed  float64 `yaml:"speed"`
}

// ChaseEnemyVariant extends EnemyVariant with aggro timing.
type ChaseEnemyVariant struct {
	EnemyVariant   `yaml:",inline"`
	DetectionRange float64 `yaml:"detection_range"`
	AggroDecay     float64 `yaml:"aggro_decay"`
	AggroOnDamage  float64 `yaml:"aggro_on_damage"`
}

// LivesConfig defines the lives and respawn rules.
type LivesConfig struct {
	PerLevel     int     `yaml:"per_level"`
	RebuildDelay float64 `yaml:"rebuild_delay"`
}

// FeedbackConfig defines game-feel timers: hit-stop, slow motion, shake.
type FeedbackConfig struct {
	HitStopFrames   int     `yaml:"hit_stop_frames"`
	SlowMotionScale float64 `yaml:"slow_motion_scale"`
	SlowMotionTime  float64 `yaml:"slow_motion_time"`
	ParticleLife    float64 `yaml:"particle_life"`
	ParticleGravity float64 `yaml:"particle_gravity"`
}

// TimerConfig defines the run clock.
type TimerConfig struct {
	RunTime float64 `yaml:"run_time"` // seconds for the whole run, 0 disables
}
