package tui

import (
	"testing"

	"github.com/vovakirdan/paintball-slug/internal/config"
	"github.com/vovakirdan/paintball-slug/internal/core"
	"github.com/vovakirdan/paintball-slug/internal/level"
	"github.com/vovakirdan/paintball-slug/internal/profile"
)

func TestReloadKeepsRunScore(t *testing.T) {
	cfg := config.DefaultEngineConfig()
	cfg.Enemies.Guard.Health = 1
	catalog, err := level.NewCatalog([]level.Definition{{
		ID:          "range",
		Number:      1,
		PlayerStart: &level.Point{X: 100, Y: 468},
		Platforms:   []level.Box{{X: 0, Y: 500, W: 800, H: 100}},
		Enemies:     []level.EnemyDef{{Kind: level.EnemyGuard, X: 400, Y: 470}},
	}})
	if err != nil {
		t.Fatalf("NewCatalog() failed: %v", err)
	}

	svc := Services{Levels: catalog, Engine: cfg}
	rc := core.RuntimeConfig{ScreenW: 80, ScreenH: 32, TickRate: 60, Seed: 1}
	m := NewGameModel(svc, profile.Default(), config.DifficultyNormal, 0, rc)

	if !m.sim.Shoot(412, 484) {
		t.Fatal("Shoot() refused")
	}
	for range 120 {
		m.sim.Step(1.0/60, core.NewInputFrame())
	}
	score := m.sim.Status().Score
	if score == 0 {
		t.Fatal("expected points for the kill")
	}

	updated, _ := m.Update(levelsReloadedMsg{path: "levels/range.yaml", catalog: catalog})
	got, ok := updated.(GameModel)
	if !ok {
		t.Fatalf("Update() returned %T", updated)
	}
	if got.sim == m.sim {
		t.Fatal("reload should rebuild the simulation")
	}
	if s := got.sim.Status().Score; s != score {
		t.Errorf("score after reload = %d, expected %d", s, score)
	}
	if got.status.Score != score {
		t.Errorf("status score = %d, expected %d", got.status.Score, score)
	}
}
