package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/paintball-slug/internal/config"
	"github.com/vovakirdan/paintball-slug/internal/core"
	"github.com/vovakirdan/paintball-slug/internal/level"
)

const frameDT = 1.0 / 60

func TestHazardActiveMatchesModulo(t *testing.T) {
	cfg := config.DefaultEngineConfig().Hazards
	trap := NewSpikeTrap(0, 0, 3, 1, cfg)

	// 0.125 is exact in binary so elapsed time is exact too.
	elapsed := 0.0
	for i := range 200 {
		trap.Update(0.125)
		elapsed += 0.125
		phase := math.Mod(elapsed, 3)
		assert.Equal(t, phase < 1, trap.IsActive(), "step %d at t=%v", i, elapsed)
		assert.Equal(t, phase >= 2, trap.IsWarning(), "step %d at t=%v", i, elapsed)
		assert.Less(t, trap.Phase(), 3.0)
	}
}

func TestSlicerBladeTravel(t *testing.T) {
	cfg := config.DefaultEngineConfig().Hazards
	s := NewSlicerTrap(100, 300, 4, 0.5, cfg)
	require.Equal(t, 200.0, s.Rect.Y)

	assert.Equal(t, 200.0, s.BladeY())
	s.Update(0.25)
	assert.InDelta(t, 250.0, s.BladeY(), 1e-9)
	assert.Equal(t, cfg.SlicerBlade, s.BladeRect().H)

	victim := core.NewRect(110, 255, 10, 10)
	assert.True(t, s.Overlaps(victim))

	s.Update(0.25)
	assert.False(t, s.IsActive())
	assert.Equal(t, 200.0, s.BladeY())
	assert.False(t, s.Overlaps(victim))
}

func TestGateConvergesMonotonically(t *testing.T) {
	cfg := config.DefaultEngineConfig().Gates
	g := NewGate(100, 100, 100, level.ChannelRed, cfg)
	require.True(t, g.Solid())

	g.Open()
	prev := g.CurrentHeight
	for range 180 {
		g.Update(frameDT)
		assert.Less(t, g.CurrentHeight, prev)
		assert.GreaterOrEqual(t, g.CurrentHeight, 0.0)
		prev = g.CurrentHeight
	}
	assert.False(t, g.Solid())

	g.Close()
	for range 180 {
		g.Update(frameDT)
		assert.Greater(t, g.CurrentHeight, prev)
		assert.LessOrEqual(t, g.CurrentHeight, g.BaseHeight)
		prev = g.CurrentHeight
	}
	assert.True(t, g.Solid())
}

func TestGateSolidRectIsBottomAnchored(t *testing.T) {
	g := NewGate(100, 100, 100, level.ChannelRed, config.DefaultEngineConfig().Gates)
	g.CurrentHeight = 40
	r := g.SolidRect()
	assert.Equal(t, 160.0, r.Y)
	assert.Equal(t, 200.0, r.Bottom())
}

func TestPlateHold(t *testing.T) {
	p := NewPressurePlate(0, 0, level.ChannelRed, config.DefaultEngineConfig().Gates)
	assert.False(t, p.ShouldKeepOpen())

	assert.True(t, p.Press())
	assert.False(t, p.Press(), "holding is not a new press")

	p.Update(20)
	assert.Equal(t, p.HoldDuration, p.Timer, "timer is frozen while pressed")

	p.Release()
	p.Update(p.HoldDuration - 0.5)
	assert.True(t, p.ShouldKeepOpen())
	p.Update(1)
	assert.False(t, p.ShouldKeepOpen())
	assert.Equal(t, 0.0, p.Timer)
}

func TestLinkChannels(t *testing.T) {
	cfg := config.DefaultEngineConfig().Gates
	idle := NewPressurePlate(0, 0, level.ChannelRed, cfg)
	held := NewPressurePlate(100, 0, level.ChannelRed, cfg)
	red := NewGate(200, 0, 100, level.ChannelRed, cfg)
	blue := NewGate(300, 0, 100, level.ChannelBlue, cfg)
	blue.Open()

	plates := []*PressurePlate{idle, held}
	gates := []*Gate{red, blue}

	linkChannels(plates, gates)
	assert.False(t, red.IsOpen)
	assert.True(t, blue.IsOpen, "unwired channel keeps its state")

	held.Press()
	linkChannels(plates, gates)
	assert.True(t, red.IsOpen, "any plate on the channel opens it")
	assert.True(t, blue.IsOpen)
}

func TestComboTiers(t *testing.T) {
	c := NewCombo(config.DefaultEngineConfig().Combo)
	assert.Equal(t, 1, c.Multiplier)

	assert.Equal(t, 1, c.RegisterKill())
	assert.Equal(t, 1, c.RegisterKill())
	assert.Equal(t, 2, c.RegisterKill())
	assert.Equal(t, 2, c.RegisterKill())
	assert.Equal(t, 3, c.RegisterKill())

	c.Update(2.9)
	assert.Equal(t, 5, c.Count)

	c.Update(0.2)
	assert.Equal(t, 0, c.Count)
	assert.Equal(t, 1, c.Multiplier)
}

func TestPlayerJumpNeedsRisingEdge(t *testing.T) {
	cfg := config.DefaultEngineConfig()
	p := NewPlayer(100, 100, cfg.Player)
	up := core.NewInputFrame()
	up.Set(core.KeyUp)

	ground := func() {
		p.Grounded = true
		p.CanJump = true
		p.VY = 0
	}

	ground()
	assert.True(t, p.Update(frameDT, up, cfg.Physics, cfg.World).Jumped)
	assert.Less(t, p.VY, 0.0)

	ground()
	assert.False(t, p.Update(frameDT, up, cfg.Physics, cfg.World).Jumped, "held key must not jump again")

	ground()
	p.Update(frameDT, core.NewInputFrame(), cfg.Physics, cfg.World)
	ground()
	assert.True(t, p.Update(frameDT, up, cfg.Physics, cfg.World).Jumped)
}

func TestPlayerRollDirection(t *testing.T) {
	cfg := config.DefaultEngineConfig()
	p := NewPlayer(100, 100, cfg.Player)
	p.LastDirection = -1
	p.Grounded = true

	roll := core.NewInputFrame()
	roll.Set(core.KeyRoll)
	p.Update(frameDT, roll, cfg.Physics, cfg.World)

	assert.True(t, p.Rolling)
	assert.Equal(t, cfg.Player.RollHeight, p.H)
	assert.Less(t, p.VX, 0.0, "standing roll follows the last facing")
}

func TestPlayerDamageAndInvincibility(t *testing.T) {
	cfg := config.DefaultEngineConfig()
	p := NewPlayer(0, 0, cfg.Player)

	assert.True(t, p.TakeDamage(2))
	assert.Equal(t, 3, p.Health)
	assert.False(t, p.TakeDamage(2), "invincible")
	assert.Equal(t, 3, p.Health)

	assert.True(t, p.Heal())
	assert.Equal(t, 4, p.Health)

	p.Kill()
	assert.True(t, p.Dead())

	p.Respawn(50, 60)
	assert.Equal(t, p.MaxHealth, p.Health)
	assert.False(t, p.Invincible)
	assert.Equal(t, 50.0, p.X)
}

func TestPlayerFallsOutOfWorld(t *testing.T) {
	cfg := config.DefaultEngineConfig()
	p := NewPlayer(100, cfg.World.Height-1, cfg.Player)
	p.VY = 300
	step := p.Update(frameDT, core.NewInputFrame(), cfg.Physics, cfg.World)
	assert.True(t, step.FellOut)
}

func TestEnemyDeathGrace(t *testing.T) {
	cfg := config.DefaultEngineConfig().Enemies
	g := NewBasicGuard(0, 0, cfg)
	env := enemyEnv{Physics: config.DefaultEngineConfig().Physics}

	assert.False(t, g.TakeDamage(1))
	assert.Greater(t, g.Flash(), 0.0)
	assert.True(t, g.TakeDamage(1))
	assert.True(t, g.Dying())
	assert.False(t, g.TakeDamage(1), "dying enemies ignore hits")

	g.Update(0.3, env)
	assert.False(t, g.Expired())
	g.Update(0.3, env)
	assert.True(t, g.Expired())
	assert.Equal(t, 0, g.Health())
}

func TestPatrolReversesOnlyIntoBounds(t *testing.T) {
	cfg := config.DefaultEngineConfig()
	env := enemyEnv{Physics: cfg.Physics}

	outside := NewPatrolEnemy(400, 0, 500, 650, 50, cfg.Enemies)
	outside.body.Grounded = true
	outside.Update(frameDT, env)
	assert.Equal(t, 1.0, outside.Direction, "walks back toward its interval")

	edge := NewPatrolEnemy(628, 0, 500, 650, 50, cfg.Enemies)
	edge.body.Grounded = true
	edge.Update(frameDT, env)
	assert.Equal(t, -1.0, edge.Direction)
}

func TestChaseAggro(t *testing.T) {
	cfg := config.DefaultEngineConfig()
	c := NewChaseEnemy(0, 0, 0, 80, cfg.Enemies)
	require.Equal(t, cfg.Enemies.Chase.DetectionRange, c.DetectionRange)

	c.Update(frameDT, enemyEnv{Physics: cfg.Physics, PlayerCenterX: 50})
	assert.True(t, c.Chasing)
	assert.Equal(t, cfg.Enemies.Chase.AggroDecay, c.AggroTimer)

	far := enemyEnv{Physics: cfg.Physics, PlayerCenterX: 500}
	c.Update(1, far)
	assert.True(t, c.Chasing)
	c.Update(1, far)
	assert.False(t, c.Chasing)

	c.TakeDamage(1)
	assert.True(t, c.Chasing)
	assert.Equal(t, cfg.Enemies.Chase.AggroOnDamage, c.AggroTimer)
}

func TestCollisionPassSingleDamage(t *testing.T) {
	cfg := config.DefaultEngineConfig()
	w := &World{
		Traps: []Hazard{NewSpikeTrap(180, 440, 3, 1, cfg.Hazards)},
		Gates: []*Gate{NewGate(200, 400, 100, level.ChannelRed, cfg.Gates)},
	}
	p := NewPlayer(190, 450, cfg.Player)
	p.VX = 100

	events := resolveCollisions(w, p, collisionRules{
		LandingSlop:  cfg.Physics.LandingSlop,
		DamagePerHit: 1,
		GateDamage:   true,
	})

	hits := 0
	for _, ev := range events {
		if ev.Kind == EventHit {
			hits++
		}
	}
	assert.Equal(t, 1, hits)
	assert.Equal(t, cfg.Player.MaxHealth-1, p.Health)
	assert.Equal(t, 200-cfg.Player.Width, p.X, "pushed out of the gate")
	assert.Equal(t, 0.0, p.VX)
}

func TestCheckpointActivatesOnce(t *testing.T) {
	cfg := config.DefaultEngineConfig()
	w := &World{
		Checkpoints: []*Checkpoint{NewCheckpoint(90, 440, "mid1", level.CheckpointMid, cfg.Pickups)},
	}
	p := NewPlayer(100, 450, cfg.Player)
	rules := collisionRules{LandingSlop: cfg.Physics.LandingSlop, DamagePerHit: 1}

	events := resolveCollisions(w, p, rules)
	require.Len(t, events, 1)
	assert.Equal(t, EventCheckpoint, events[0].Kind)
	assert.Equal(t, "mid1", events[0].Detail)
	assert.Equal(t, 105.0, events[0].X)

	assert.Empty(t, resolveCollisions(w, p, rules))
}

func TestBuildWorldDifficulty(t *testing.T) {
	cfg := config.DefaultEngineConfig()
	def, ok := level.MustEmbedded().Get(1)
	require.True(t, ok)

	normal := BuildWorld(def, cfg, config.ProfileFor(config.DifficultyNormal))
	assert.Len(t, normal.Checkpoints, 3)
	first := normal.Traps[0].(*SpikeTrap)
	assert.InDelta(t, 3.0, first.CycleTime, 1e-9)
	assert.InDelta(t, 1.0, first.ActiveTime, 1e-9)

	easy := BuildWorld(def, cfg, config.ProfileFor(config.DifficultyEasy))
	assert.InDelta(t, 6.0, easy.Traps[0].(*SpikeTrap).CycleTime, 1e-9)

	challenge := BuildWorld(def, cfg, config.ProfileFor(config.DifficultyChallenge))
	require.Len(t, challenge.Checkpoints, 1)
	assert.Equal(t, level.CheckpointNext, challenge.Checkpoints[0].Kind)
	assert.InDelta(t, 2.0, challenge.Traps[0].(*SpikeTrap).CycleTime, 1e-9)

	var patrol *PatrolEnemy
	for _, e := range challenge.Enemies {
		if pe, ok := e.(*PatrolEnemy); ok {
			patrol = pe
		}
	}
	require.NotNil(t, patrol)
	assert.InDelta(t, cfg.Enemies.Patrol.Speed*1.5, patrol.Speed, 1e-9)
}
