package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the engine configuration.
// Search order: customPath -> ~/.slug/configs/engine.yaml -> ./configs/engine.yaml -> embedded default
//
// Every source is decoded on top of the hardcoded defaults, so a partial
// override file only needs the keys it changes.
func Load(customPath string) (EngineConfig, error) {
	cfg := DefaultEngineConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("engine.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if loaded, ok := decodeOver(data); ok {
				return loaded, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/engine.yaml"); err == nil {
		if loaded, ok := decodeOver(data); ok {
			return loaded, nil
		}
	}

	// Use embedded default YAML
	if loaded, ok := decodeOver(defaultEngineYAML); ok {
		return loaded, nil
	}
	return DefaultEngineConfig(), nil // Fallback to hardcoded if embed fails
}

// decodeOver parses data on top of the defaults and reports whether the
// result is usable.
func decodeOver(data []byte) (EngineConfig, bool) {
	cfg := DefaultEngineConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if err := cfg.Validate(); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".slug", "configs", filename)
}

// Validate checks the invariants the simulation relies on.
func (c EngineConfig) Validate() error {
	var errs []error
	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, errors.New("world size must be positive"))
	}
	if c.Physics.MaxFrameDT <= 0 {
		errs = append(errs, errors.New("physics.max_frame_dt must be positive"))
	}
	if c.Physics.Friction <= 0 || c.Physics.Friction > 1 {
		errs = append(errs, errors.New("physics.friction must be in (0, 1]"))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, errors.New("player size must be positive"))
	}
	if c.Player.MaxHealth <= 0 {
		errs = append(errs, errors.New("player.max_health must be positive"))
	}
	// Gate smoothing must not overshoot at the largest allowed step.
	if c.Gates.Smoothing <= 0 || c.Gates.Smoothing*c.Physics.MaxFrameDT >= 1 {
		errs = append(errs, errors.New("gates.smoothing * physics.max_frame_dt must be in (0, 1)"))
	}
	if c.Combo.Tier2Kills <= 0 || c.Combo.Tier3Kills < c.Combo.Tier2Kills {
		errs = append(errs, errors.New("combo tiers must be positive and ordered"))
	}
	if c.Lives.PerLevel <= 0 {
		errs = append(errs, errors.New("lives.per_level must be positive"))
	}
	return errors.Join(errs...)
}
