package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	embedded := DefaultEngineConfig()
	// Decode on a zero value so missing keys show up as differences.
	var fromYAML EngineConfig
	if err := yaml.Unmarshal(DefaultYAML(), &fromYAML); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}

	if fromYAML != embedded {
		t.Errorf("embedded engine.yaml and DefaultEngineConfig() differ:\nyaml=%+v\ncode=%+v", fromYAML, embedded)
	}
}

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultEngineConfig().Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "engine.yaml")
	data := []byte("player:\n  max_health: 7\ncombo:\n  window: 4.5\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Player.MaxHealth != 7 {
		t.Errorf("MaxHealth = %d, expected 7", cfg.Player.MaxHealth)
	}
	if cfg.Combo.Window != 4.5 {
		t.Errorf("Combo.Window = %v, expected 4.5", cfg.Combo.Window)
	}
	// Untouched keys keep defaults
	if cfg.Player.Width != 24 {
		t.Errorf("Player.Width = %v, expected default 24", cfg.Player.Width)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom path should fail")
	}

	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("world: [not, a, map"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load() of malformed YAML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("gates:\n  smoothing: 40\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(invalid); err == nil {
		t.Error("Load() should reject smoothing that overshoots at max dt")
	}
}

func TestProfiles(t *testing.T) {
	tests := []struct {
		preset       DifficultyPreset
		damage       int
		ammo         int
		kill         int
		noCheckpoint bool
	}{
		{DifficultyEasy, 1, 40, 25, false},
		{DifficultyNormal, 1, 20, 50, false},
		{DifficultyHard, 1, 15, 100, false},
		{DifficultyChallenge, 2, 10, 150, true},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			p := ProfileFor(tc.preset)
			if got := p.DamagePerHit(); got != tc.damage {
				t.Errorf("DamagePerHit() = %d, expected %d", got, tc.damage)
			}
			if got := p.ScaleAmmo(20); got != tc.ammo {
				t.Errorf("ScaleAmmo(20) = %d, expected %d", got, tc.ammo)
			}
			if got := p.ScaleScore(50); got != tc.kill {
				t.Errorf("ScaleScore(50) = %d, expected %d", got, tc.kill)
			}
			if p.NoCheckpoints != tc.noCheckpoint {
				t.Errorf("NoCheckpoints = %v, expected %v", p.NoCheckpoints, tc.noCheckpoint)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset(hard) should be hard")
	}
	if ParsePreset("nightmare") != DifficultyNormal {
		t.Error("unknown preset should fall back to normal")
	}
	if ProfileFor("bogus").Preset != DifficultyNormal {
		t.Error("ProfileFor of unknown preset should return normal")
	}
}
