package engine

import (
	"math"

	"github.com/vovakirdan/paintball-slug/internal/config"
	"github.com/vovakirdan/paintball-slug/internal/level"
)

// EnemyKind tags the enemy variant.
type EnemyKind int

const (
	KindGuard EnemyKind = iota
	KindPatrol
	KindChase
)

// String returns the variant name.
func (k EnemyKind) String() string {
	switch k {
	case KindGuard:
		return "guard"
	case KindPatrol:
		return "patrol"
	case KindChase:
		return "chase"
	default:
		return "unknown"
	}
}

// enemyEnv is what enemy behaviors may read from the rest of the world.
type enemyEnv struct {
	Physics       config.PhysicsConfig
	PlayerCenterX float64
}

// Enemy is the capability shared by every enemy variant.
type Enemy interface {
	Kind() EnemyKind
	Body() *Body
	Update(dt float64, env enemyEnv)
	// TakeDamage reports whether this hit started the death sequence.
	TakeDamage(n int) bool
	Health() int
	MaxHealth() int
	Dying() bool
	// Expired is true once the death grace period has run out.
	Expired() bool
	Flash() float64
}

// enemyBase carries the shared alive -> dying -> removed machine.
type enemyBase struct {
	body        Body
	health      int
	maxHealth   int
	dying       bool
	deathTimer  float64
	damageFlash float64
	flashTime   float64
	grace       float64
}

func newEnemyBase(x, y float64, v config.EnemyVariant, cfg config.EnemiesConfig) enemyBase {
	return enemyBase{
		body:      Body{X: x, Y: y, W: v.Width, H: v.Height},
		health:    v.Health,
		maxHealth: v.Health,
		flashTime: cfg.DamageFlash,
		grace:     cfg.DeathGrace,
	}
}

func (e *enemyBase) Body() *Body    { return &e.body }
func (e *enemyBase) Health() int    { return e.health }
func (e *enemyBase) MaxHealth() int { return e.maxHealth }
func (e *enemyBase) Dying() bool    { return e.dying }
func (e *enemyBase) Flash() float64 { return e.damageFlash }

func (e *enemyBase) Expired() bool {
	return e.dying && e.deathTimer > e.grace
}

// tick decays the flash and, while dying, runs only the death timer.
// It reports whether normal behavior should be skipped.
func (e *enemyBase) tick(dt float64) bool {
	if e.damageFlash > 0 {
		e.damageFlash = math.Max(0, e.damageFlash-dt)
	}
	if !e.dying {
		return false
	}
	e.deathTimer += dt
	if e.deathTimer > e.grace {
		e.health = 0
	}
	return true
}

func (e *enemyBase) damage(n int) bool {
	if e.dying {
		return false
	}
	e.health -= n
	e.damageFlash = e.flashTime
	if e.health <= 0 {
		e.dying = true
		e.deathTimer = 0
		return true
	}
	return false
}

func (e *enemyBase) fall(dt float64, phys config.PhysicsConfig) {
	e.body.applyGravity(phys, dt)
	e.body.Y += e.body.VY * dt
}

// BasicGuard stands still.
type BasicGuard struct {
	enemyBase
}

// NewBasicGuard creates a guard at (x, y).
func NewBasicGuard(x, y float64, cfg config.EnemiesConfig) *BasicGuard {
	return &BasicGuard{enemyBase: newEnemyBase(x, y, cfg.Guard, cfg)}
}

func (g *BasicGuard) Kind() EnemyKind { return KindGuard }

func (g *BasicGuard) Update(dt float64, env enemyEnv) {
	if g.tick(dt) {
		return
	}
	g.fall(dt, env.Physics)
	g.body.Grounded = false
}

func (g *BasicGuard) TakeDamage(n int) bool { return g.damage(n) }

// PatrolEnemy walks between two bounds while grounded.
type PatrolEnemy struct {
	enemyBase
	Speed      float64
	LeftBound  float64
	RightBound float64
	Direction  float64
}

// NewPatrolEnemy creates a patroller moving right.
func NewPatrolEnemy(x, y, left, right, speed float64, cfg config.EnemiesConfig) *PatrolEnemy {
	return &PatrolEnemy{
		enemyBase:  newEnemyBase(x, y, cfg.Patrol, cfg),
		Speed:      speed,
		LeftBound:  left,
		RightBound: right,
		Direction:  1,
	}
}

func (p *PatrolEnemy) Kind() EnemyKind { return KindPatrol }

func (p *PatrolEnemy) Update(dt float64, env enemyEnv) {
	if p.tick(dt) {
		return
	}
	p.body.applyGravity(env.Physics, dt)
	if p.body.Grounded {
		p.body.VX = p.Speed * p.Direction
		p.body.X += p.body.VX * dt
		// Reverse only when heading into a bound.
		if p.Direction < 0 && p.body.X <= p.LeftBound {
			p.Direction = 1
		} else if p.Direction > 0 && p.body.X+p.body.W >= p.RightBound {
			p.Direction = -1
		}
	}
	p.body.Y += p.body.VY * dt
	p.body.Grounded = false
}

func (p *PatrolEnemy) TakeDamage(n int) bool { return p.damage(n) }

// ChaseEnemy pursues the player once within range and keeps chasing for
// an aggro window after losing proximity.
type ChaseEnemy struct {
	enemyBase
	Speed          float64
	DetectionRange float64
	Chasing        bool
	AggroTimer     float64
	aggroDecay     float64
	aggroOnDamage  float64
}

// NewChaseEnemy creates a chaser. A zero detection uses the configured default.
func NewChaseEnemy(x, y, detection, speed float64, cfg config.EnemiesConfig) *ChaseEnemy {
	if detection <= 0 {
		detection = cfg.Chase.DetectionRange
	}
	return &ChaseEnemy{
		enemyBase:      newEnemyBase(x, y, cfg.Chase.EnemyVariant, cfg),
		Speed:          speed,
		DetectionRange: detection,
		aggroDecay:     cfg.Chase.AggroDecay,
		aggroOnDamage:  cfg.Chase.AggroOnDamage,
	}
}

func (c *ChaseEnemy) Kind() EnemyKind { return KindChase }

func (c *ChaseEnemy) Update(dt float64, env enemyEnv) {
	if c.tick(dt) {
		return
	}
	c.body.applyGravity(env.Physics, dt)

	ecx := c.body.CenterX()
	if math.Abs(env.PlayerCenterX-ecx) < c.DetectionRange {
		c.Chasing = true
		c.AggroTimer = c.aggroDecay
	} else if c.AggroTimer > 0 {
		c.AggroTimer -= dt
		if c.AggroTimer <= 0 {
			c.AggroTimer = 0
			c.Chasing = false
		}
	}

	if c.Chasing && c.body.Grounded {
		dir := -1.0
		if env.PlayerCenterX > ecx {
			dir = 1
		}
		c.body.VX = c.Speed * dir
		c.body.X += c.body.VX * dt
	} else {
		c.body.VX = 0
	}

	c.body.Y += c.body.VY * dt
	c.body.Grounded = false
}

// TakeDamage also provokes the chaser for the longer aggro window.
func (c *ChaseEnemy) TakeDamage(n int) bool {
	if c.dying {
		return false
	}
	c.Chasing = true
	c.AggroTimer = c.aggroOnDamage
	return c.damage(n)
}

// newEnemy builds the variant named by def with difficulty speed scaling.
func newEnemy(def level.EnemyDef, cfg config.EnemiesConfig, speedScale float64) Enemy {
	switch def.Kind {
	case level.EnemyPatrol:
		return NewPatrolEnemy(def.X, def.Y, def.Left, def.Right, cfg.Patrol.Speed*speedScale, cfg)
	case level.EnemyChase:
		return NewChaseEnemy(def.X, def.Y, def.Detection, cfg.Chase.Speed*speedScale, cfg)
	default:
		return NewBasicGuard(def.X, def.Y, cfg)
	}
}
