package engine

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/paintball-slug/internal/config"
	"github.com/vovakirdan/paintball-slug/internal/core"
	"github.com/vovakirdan/paintball-slug/internal/level"
	"github.com/vovakirdan/paintball-slug/internal/profile"
)

// State is the run state.
type State string

const (
	StatePlaying  State = "playing"
	StatePaused   State = "paused"
	StateGameOver State = "gameover"
	StateWon      State = "won"
)

// GameOverReason explains a StateGameOver.
type GameOverReason string

const (
	ReasonNone    GameOverReason = ""
	ReasonLives   GameOverReason = "out_of_lives"
	ReasonTimeout GameOverReason = "timeout"
)

// Tutorial hint ids.
const (
	TutorialMove       = "move"
	TutorialShoot      = "shoot"
	TutorialPlates     = "plates"
	TutorialCheckpoint = "checkpoint"
	TutorialLevel2     = "level2"
)

const (
	tutorialTTL     = 4.0
	levelMessageTTL = 2.0
	shootHintDelay  = 3.0
)

// StepResult is the externally visible state after one Step.
type StepResult struct {
	Frame         uint64
	State         State
	Reason        GameOverReason
	Skipped       bool // hit-stop swallowed this frame
	Level         int
	Lives         int
	Health        int
	MaxHealth     int
	Ammo          int
	MaxAmmo       int
	Score         int // score of the current run
	TotalScore    int // banked score from the save record
	TimeRemaining float64
	Combo         int
	Multiplier    int
	Events        []Event
	Messages      []string
}

// Simulation is the orchestrator. It owns the world, the player and every
// run-level counter, and advances them once per Step.
type Simulation struct {
	cfg        config.EngineConfig
	diff       config.DifficultyProfile
	levels     *level.Catalog
	save       profile.SaveData
	logger     *log.Logger
	sink       EventSink
	seed       uint64
	startLevel int

	rng     *core.RNG
	world   *World
	player  *Player
	combo   Combo
	shake   Shake
	slowmo  timeScale
	hitStop int

	state        State
	reason       GameOverReason
	rebuildTimer float64
	rebuildDue   bool

	levelNum      int
	lives         int
	ammo          int
	maxAmmo       int
	shootCooldown float64
	checkpoint    core.Vec
	runScore      int
	banked        int
	timeRemaining float64
	elapsed       float64
	frame         uint64

	messages  []Message
	pending   []Event
	prevPause bool
	prevReset bool
}

// Option configures a Simulation.
type Option func(*Simulation)

// WithConfig replaces the default engine configuration.
func WithConfig(cfg config.EngineConfig) Option {
	return func(s *Simulation) { s.cfg = cfg }
}

// WithDifficulty sets the difficulty profile.
func WithDifficulty(p config.DifficultyProfile) Option {
	return func(s *Simulation) { s.diff = p }
}

// WithSave supplies the persistent record whose upgrades apply to the run.
func WithSave(save profile.SaveData) Option {
	return func(s *Simulation) { s.save = save.Clone() }
}

// WithSeed seeds the cosmetic RNG.
func WithSeed(seed uint64) Option {
	return func(s *Simulation) { s.seed = seed }
}

// WithLogger attaches a logger. Without one the simulation is silent.
func WithLogger(l *log.Logger) Option {
	return func(s *Simulation) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithEventSink forwards every frame event to sink.
func WithEventSink(sink EventSink) Option {
	return func(s *Simulation) { s.sink = sink }
}

// WithStartLevel starts runs at level number n instead of the first one.
func WithStartLevel(n int) Option {
	return func(s *Simulation) { s.startLevel = n }
}

// New creates a simulation over levels and starts a run.
func New(levels *level.Catalog, opts ...Option) *Simulation {
	s := &Simulation{
		cfg:    config.DefaultEngineConfig(),
		diff:   config.ProfileFor(config.DifficultyNormal),
		levels: levels,
		save:   profile.Default(),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Reset()
	return s
}

// Reset restarts the run from the start level with fresh score, combo,
// clock and player. Upgrades from the save record are re-applied.
func (s *Simulation) Reset() {
	s.rng = core.NewRNG(s.seed)
	s.frame = 0
	s.state = StatePlaying
	s.reason = ReasonNone
	s.rebuildDue = false
	s.timeRemaining = s.cfg.Timer.RunTime
	s.elapsed = 0
	s.runScore = 0
	s.banked = 0
	s.combo = NewCombo(s.cfg.Combo)
	s.shake = Shake{}
	s.slowmo = timeScale{scale: 1}
	s.hitStop = 0
	s.messages = nil
	s.pending = nil

	def, ok := s.levels.Get(s.startLevel)
	if !ok {
		def = s.levels.Levels()[0]
	}
	s.buildLevel(def)
	s.player = NewPlayer(s.world.Start.X, s.world.Start.Y, s.cfg.Player)
	if s.save.Upgrades.StartingShield {
		s.player.Shield(s.cfg.Player.ShieldTime)
	}

	s.tutorial(TutorialMove, "Use A/D or arrow keys to move, W to jump!")
	s.pending = append(s.pending, Event{Kind: EventLevelStarted, Detail: def.ID})
	s.logger.Debug("run started", "level", s.levelNum, "difficulty", s.diff.Preset, "lives", s.lives, "ammo", s.ammo)
}

// buildLevel rebuilds every per-level collection and resets the counters
// that belong to a level: ammo, lives and the respawn point.
func (s *Simulation) buildLevel(def level.Definition) {
	s.levelNum = def.Number
	s.world = BuildWorld(def, s.cfg, s.diff)

	s.maxAmmo = s.cfg.Combat.BaseAmmo
	if s.save.Upgrades.DoubleAmmo {
		s.maxAmmo = s.cfg.Combat.DoubledAmmo
	}
	s.ammo = s.diff.ScaleAmmo(s.maxAmmo)
	s.shootCooldown = 0

	s.lives = s.cfg.Lives.PerLevel
	if s.save.Upgrades.ExtraLife {
		s.lives++
	}
	s.checkpoint = s.world.Start
	s.logger.Debug("level built", "level", def.Number, "id", def.ID,
		"traps", len(s.world.Traps), "enemies", len(s.world.Enemies), "checkpoints", len(s.world.Checkpoints))
}

// Step advances the simulation by one frame of realDt seconds of wall
// clock time under input in.
func (s *Simulation) Step(realDt float64, in core.InputFrame) StepResult {
	events := s.pending
	s.pending = nil
	s.frame++

	reset := in.Has(core.KeyRestart)
	resetEdge := reset && !s.prevReset
	s.prevReset = reset
	pause := in.Has(core.KeyPause)
	pauseEdge := pause && !s.prevPause
	s.prevPause = pause

	if resetEdge {
		s.Reset()
		events = append(events, s.pending...)
		s.pending = nil
		return s.finish(events, false)
	}
	if pauseEdge {
		switch s.state {
		case StatePlaying:
			s.state = StatePaused
		case StatePaused:
			s.state = StatePlaying
		}
	}

	switch s.state {
	case StateGameOver:
		if s.rebuildDue {
			s.rebuildTimer -= max(realDt, 0)
			if s.rebuildTimer <= 0 {
				events = s.rebuild(events)
			}
		}
		return s.finish(events, false)
	case StatePaused, StateWon:
		return s.finish(events, false)
	}

	if s.hitStop > 0 {
		s.hitStop--
		return s.finish(events, true)
	}

	dt := core.ClampF(realDt, 0, s.cfg.Physics.MaxFrameDT)
	scaled := dt * s.slowmo.factor()

	// Global timers run on real time.
	s.slowmo.update(dt)
	s.shake.update(dt, s.rng)
	s.combo.Update(dt)
	s.decayMessages(dt)

	if s.cfg.Timer.RunTime > 0 {
		s.timeRemaining -= dt
		if s.timeRemaining <= 0 {
			s.timeRemaining = 0
			events = s.gameOver(ReasonTimeout, events)
			return s.finish(events, false)
		}
	}
	s.elapsed += dt
	if s.elapsed >= shootHintDelay {
		s.tutorial(TutorialShoot, "Press X or click to shoot enemies!")
	}

	if in.ShootTarget != nil {
		events = s.shoot(*in.ShootTarget, events)
	} else if in.Has(core.KeyShoot) {
		events = s.shoot(s.aimAhead(), events)
	}

	events = s.updateEntities(scaled, in, events)

	collisions := resolveCollisions(s.world, s.player, collisionRules{
		LandingSlop:  s.cfg.Physics.LandingSlop,
		DamagePerHit: s.diff.DamagePerHit(),
		Knockback:    s.cfg.Player.EnemyKnockback,
		GateDamage:   s.cfg.Gates.ContactDamage,
	})
	events = append(events, collisions...)
	events = s.applyEvents(events)

	s.world.prune()
	return s.finish(events, false)
}

func (s *Simulation) updateEntities(dt float64, in core.InputFrame, events []Event) []Event {
	ps := s.player.Update(dt, in, s.cfg.Physics, s.cfg.World)
	if ps.Jumped {
		c := s.player.Center()
		events = append(events, Event{Kind: EventJump, X: c.X, Y: c.Y})
	}
	if ps.FellOut && !s.player.Dead() {
		s.player.Kill()
		c := s.player.Center()
		events = append(events, Event{Kind: EventPlayerDied, X: c.X, Y: c.Y, Detail: "fell"})
	}

	for _, t := range s.world.Traps {
		t.Update(dt)
	}
	for _, p := range s.world.Plates {
		p.Update(dt)
	}
	for _, g := range s.world.Gates {
		g.Update(dt)
	}
	env := enemyEnv{Physics: s.cfg.Physics, PlayerCenterX: s.player.CenterX()}
	for _, e := range s.world.Enemies {
		e.Update(dt, env)
	}
	for _, p := range s.world.Projectiles {
		p.Update(dt, s.cfg.World)
	}
	for i := range s.world.Particles {
		s.world.Particles[i].update(dt, s.cfg.Feedback.ParticleGravity)
	}
	if s.shootCooldown > 0 {
		s.shootCooldown = max(0, s.shootCooldown-dt)
	}
	return events
}

// applyEvents turns collision outcomes into score, lives and level flow.
// Events appended while applying (respawn, game over, level start) are
// reported but not re-applied.
func (s *Simulation) applyEvents(events []Event) []Event {
	n := len(events)
	died := false
	levelDone := false
	for i := 0; i < n; i++ {
		if s.state != StatePlaying {
			break
		}
		ev := &events[i]
		switch ev.Kind {
		case EventHit:
			s.shake.Trigger(6, 0.2)
		case EventPlayerDied:
			if died {
				continue
			}
			died = true
			events = s.handleDeath(events)
		case EventEnemyHit:
			ev.Points = s.diff.ScaleScore(float64(s.cfg.Combat.HitPoints))
			s.addScore(ev.Points)
			s.hitStop = s.cfg.Feedback.HitStopFrames
			s.shake.Trigger(3, 0.1)
			s.particles(ev.X, ev.Y, core.ColorPaint, 5)
		case EventEnemyDeath:
			mult := s.combo.RegisterKill()
			ev.Points = s.diff.ScaleScore(float64(s.cfg.Combat.KillPoints * mult))
			s.addScore(ev.Points)
			if s.combo.Count >= s.cfg.Combo.Tier2Kills {
				s.message(fmt.Sprintf("%dx COMBO!", s.combo.Count), 1)
			}
			s.slowmo.trigger(s.cfg.Feedback.SlowMotionScale, s.cfg.Feedback.SlowMotionTime)
			s.shake.Trigger(4, 0.15)
			s.particles(ev.X, ev.Y, core.ColorYellow, 10)
		case EventCollect:
			s.particles(ev.X, ev.Y, core.ColorCyan, 8)
		case EventProjectileSplat:
			s.particles(ev.X, ev.Y, core.ColorPaint, 2)
		case EventPlateActivate:
			s.tutorial(TutorialPlates, "Pressure plates open matching colored gates!")
		case EventCheckpoint:
			s.checkpoint = core.Vec{X: ev.X, Y: ev.Y}
			if s.save.Upgrades.CheckpointHeal {
				s.player.Heal()
			}
			s.tutorial(TutorialCheckpoint, "Checkpoint reached! You will respawn here.")
			s.logger.Debug("checkpoint", "level", s.levelNum, "tag", ev.Detail)
		case EventLevelComplete:
			if levelDone {
				continue
			}
			levelDone = true
			if ev.Detail == level.CheckpointWin.String() {
				events = s.win(events)
			} else {
				events = s.advanceLevel(events)
			}
		}
	}
	return events
}

func (s *Simulation) handleDeath(events []Event) []Event {
	s.lives--
	s.shake.Trigger(10, 0.4)
	if s.lives > 0 {
		s.player.Respawn(s.checkpoint.X, s.checkpoint.Y)
		s.message(fmt.Sprintf("Lives remaining: %d", s.lives), levelMessageTTL)
		s.logger.Debug("player respawned", "level", s.levelNum, "lives", s.lives, "x", s.checkpoint.X, "y", s.checkpoint.Y)
		return append(events, Event{Kind: EventRespawn, X: s.checkpoint.X, Y: s.checkpoint.Y})
	}
	return s.gameOver(ReasonLives, events)
}

// gameOver banks the run score. Running out of lives schedules a full
// rebuild of the current level; a timeout ends the run.
func (s *Simulation) gameOver(reason GameOverReason, events []Event) []Event {
	s.state = StateGameOver
	s.reason = reason
	s.bank()
	if reason == ReasonLives {
		s.rebuildDue = true
		s.rebuildTimer = s.cfg.Lives.RebuildDelay
	}
	s.logger.Debug("game over", "reason", reason, "level", s.levelNum, "score", s.runScore, "total", s.save.TotalScore)
	return append(events, Event{Kind: EventGameOver, Detail: string(reason)})
}

func (s *Simulation) rebuild(events []Event) []Event {
	def, ok := s.levels.Get(s.levelNum)
	if !ok {
		def = s.levels.Levels()[0]
	}
	s.buildLevel(def)
	s.player = NewPlayer(s.world.Start.X, s.world.Start.Y, s.cfg.Player)
	s.state = StatePlaying
	s.reason = ReasonNone
	s.rebuildDue = false
	s.logger.Debug("level rebuilt", "level", s.levelNum)
	return append(events, Event{Kind: EventLevelStarted, Detail: def.ID})
}

func (s *Simulation) advanceLevel(events []Event) []Event {
	next, ok := s.levels.Next(s.levelNum)
	if !ok {
		return s.win(events)
	}
	s.buildLevel(next)
	s.player.X, s.player.Y = s.world.Start.X, s.world.Start.Y
	s.player.VX, s.player.VY = 0, 0
	s.player.Grounded = false
	s.particles(s.cfg.World.Width/2, s.cfg.World.Height/2, core.ColorBrightYellow, 15)
	s.message(fmt.Sprintf("Level %d!", s.levelNum), levelMessageTTL)
	if s.levelNum == 2 {
		s.tutorial(TutorialLevel2, "Harder enemies ahead! Watch for chasers!")
	}
	s.logger.Debug("level advanced", "level", s.levelNum)
	return append(events, Event{Kind: EventLevelStarted, Detail: next.ID})
}

func (s *Simulation) win(events []Event) []Event {
	s.state = StateWon
	s.bank()
	s.save.RecordBestTime(string(s.diff.Preset), s.timeRemaining)
	s.particles(s.cfg.World.Width/2, s.cfg.World.Height/2, core.ColorYellow, 20)
	s.logger.Debug("game won", "score", s.runScore, "total", s.save.TotalScore, "time_left", s.timeRemaining)
	return append(events, Event{Kind: EventGameWon})
}

// bank moves the unbanked part of the run score into the save record.
func (s *Simulation) bank() {
	s.save.TotalScore += s.runScore - s.banked
	s.banked = s.runScore
}

func (s *Simulation) addScore(points int) {
	s.runScore += points
}

// Shoot fires toward a world point. It is a no-op while not playing, on
// cooldown, out of ammo, or when the target is the player's center. The
// shoot event is reported by the next Step.
func (s *Simulation) Shoot(x, y float64) bool {
	before := len(s.pending)
	s.pending = s.shoot(core.Vec{X: x, Y: y}, s.pending)
	return len(s.pending) > before
}

func (s *Simulation) shoot(target core.Vec, events []Event) []Event {
	if s.state != StatePlaying || s.shootCooldown > 0 || s.ammo <= 0 {
		return events
	}
	origin := s.player.Center()
	proj := newProjectileToward(origin, target, s.cfg.Combat)
	if proj == nil {
		return events
	}
	s.world.Projectiles = append(s.world.Projectiles, proj)
	s.ammo--
	s.shootCooldown = s.cfg.Combat.ShootCooldown
	s.particles(origin.X, origin.Y, core.ColorPaint, 3)
	return append(events, Event{Kind: EventShoot, X: origin.X, Y: origin.Y})
}

// aimAhead is the keyboard shot target: a fixed reach ahead of the
// player's center on the facing side.
func (s *Simulation) aimAhead() core.Vec {
	c := s.player.Center()
	dir := float64(s.player.LastDirection)
	if dir == 0 {
		dir = 1
	}
	return core.Vec{X: c.X + dir*s.cfg.Player.ShootAheadReach, Y: c.Y}
}

func (s *Simulation) particles(x, y float64, c core.Color, count int) {
	s.world.Particles = emitParticles(s.world.Particles, s.rng, x, y, c, count, s.cfg.Feedback.ParticleLife)
}

func (s *Simulation) tutorial(id, text string) {
	if s.save.MarkTutorial(id) {
		s.message(text, tutorialTTL)
	}
}

func (s *Simulation) message(text string, ttl float64) {
	s.messages = append(s.messages, Message{Text: text, TTL: ttl})
}

func (s *Simulation) decayMessages(dt float64) {
	kept := s.messages[:0]
	for _, m := range s.messages {
		m.TTL -= dt
		if m.TTL > 0 {
			kept = append(kept, m)
		}
	}
	s.messages = kept
}

func (s *Simulation) finish(events []Event, skipped bool) StepResult {
	if s.sink != nil {
		for _, ev := range events {
			s.sink.Emit(ev)
		}
	}
	res := s.result()
	res.Events = events
	res.Skipped = skipped
	return res
}

func (s *Simulation) result() StepResult {
	msgs := make([]string, 0, len(s.messages))
	for _, m := range s.messages {
		msgs = append(msgs, m.Text)
	}
	return StepResult{
		Frame:         s.frame,
		State:         s.state,
		Reason:        s.reason,
		Level:         s.levelNum,
		Lives:         s.lives,
		Health:        s.player.Health,
		MaxHealth:     s.player.MaxHealth,
		Ammo:          s.ammo,
		MaxAmmo:       s.maxAmmo,
		Score:         s.runScore,
		TotalScore:    s.save.TotalScore,
		TimeRemaining: s.timeRemaining,
		Combo:         s.combo.Count,
		Multiplier:    s.combo.Multiplier,
		Messages:      msgs,
	}
}

// State returns the current run state.
func (s *Simulation) State() State { return s.state }

// Reason returns why the run is over, if it is.
func (s *Simulation) Reason() GameOverReason { return s.reason }

// World returns the live world for rendering. Callers must not mutate it.
func (s *Simulation) World() *World { return s.world }

// Player returns the live player for rendering.
func (s *Simulation) Player() *Player { return s.player }

// Shake returns the current camera shake.
func (s *Simulation) Shake() Shake { return s.shake }

// Combo returns the combo state.
func (s *Simulation) Combo() Combo { return s.combo }

// Difficulty returns the active profile.
func (s *Simulation) Difficulty() config.DifficultyProfile { return s.diff }

// Config returns the engine configuration.
func (s *Simulation) Config() config.EngineConfig { return s.cfg }

// Save returns a copy of the save record including banked score and
// tutorials seen during this run.
func (s *Simulation) Save() profile.SaveData { return s.save.Clone() }

// SetSave replaces the save record, for example with the copy storage
// returned after merging it. Run score already banked stays banked.
func (s *Simulation) SetSave(save profile.SaveData) { s.save = save.Clone() }

// Continue carries the run of prev into s: the run score, the part of it
// already banked and the remaining time. Used when a level is rebuilt from
// reloaded data mid-run.
func (s *Simulation) Continue(prev *Simulation) {
	s.runScore = prev.runScore
	s.banked = prev.banked
	s.timeRemaining = prev.timeRemaining
	s.elapsed = prev.elapsed
}

// Status returns the current StepResult without advancing.
func (s *Simulation) Status() StepResult { return s.result() }
