package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadPlatformer loads the configuration for a platformer variant.
// Search order: customPath -> ~/.platformer/configs/<variant>.yaml -> ./configs/<variant>.yaml -> embedded default
//
// Every source is decoded on top of the hard-coded defaults, so a partial
// YAML file only overrides the keys it names.
func LoadPlatformer(variant, customPath string) (PlatformerConfig, error) {
	filename := variant + ".yaml"

	// Try custom path first
	if customPath != "" {
		cfg := DefaultFor(variant)
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if cfg, ok := decodeFile(variant, userCfgPath); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := decodeFile(variant, filepath.Join("configs", filename)); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg := DefaultFor(variant)
	if data := GetDefaultYAML(variant); data != nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return DefaultFor(variant), nil // Fallback to hardcoded if embed fails
		}
	}
	return cfg, nil
}

// decodeFile reads an optional config file. Missing or malformed files are skipped.
func decodeFile(variant, path string) (PlatformerConfig, bool) {
	cfg := DefaultFor(variant)
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	dir := UserDir("configs")
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, filename)
}

// UserDir returns ~/.platformer/<sub>, or empty if home is unavailable.
func UserDir(sub string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".platformer", sub)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *PlatformerConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = cfg.Player.MaxLives
		cfg.Player.HitInvincibility *= 1.5
	case DifficultyHard:
		if cfg.Player.Lives > 2 {
			cfg.Player.Lives = 2
		}
		cfg.Player.HitInvincibility /= 2
	}
}

// Validate reports tuning values that would break the simulation.
func (c PlatformerConfig) Validate() error {
	switch {
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("config: player size must be positive, got %gx%g", c.Player.Width, c.Player.Height)
	case c.Player.Lives < 0 || c.Player.MaxLives < c.Player.Lives:
		return fmt.Errorf("config: lives %d out of range [0, %d]", c.Player.Lives, c.Player.MaxLives)
	case c.Physics.TickSeconds <= 0:
		return fmt.Errorf("config: tick_seconds must be positive, got %g", c.Physics.TickSeconds)
	case c.Physics.MaxFallSpeed <= 0:
		return fmt.Errorf("config: max_fall_speed must be positive, got %g", c.Physics.MaxFallSpeed)
	case c.Camera.Smoothness <= 0 || c.Camera.Smoothness > 1:
		return fmt.Errorf("config: camera smoothness %g out of range (0, 1]", c.Camera.Smoothness)
	}
	return nil
}
