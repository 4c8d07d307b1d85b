package config

import (
	_ "embed"
)

//go:embed defaults/stage.yaml
var defaultStageYAML []byte

//go:embed defaults/pits.yaml
var defaultPitsYAML []byte

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// Variant IDs with an embedded default config.
const (
	VariantStage      = "stage"
	VariantPits       = "pits"
	VariantPlatformer = "platformer"
)

// DefaultPlatformerConfig returns the hard-coded enhanced-edition tuning.
// It is the last fallback when no YAML can be read.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		Level: VariantPlatformer,
		Physics: PlatformerPhysics{
			Gravity:       0.8,
			MoveSpeed:     5.0,
			JumpForce:     -15.0,
			MaxFallSpeed:  20.0,
			TickSeconds:   0.016,
			SnapTolerance: 10,
			SpikeHeight:   20,
			FallMargin:    200,
			EdgeProbe:     20,
		},
		Player: PlatformerPlayer{
			Width:                40,
			Height:               50,
			Lives:                3,
			MaxLives:             5,
			HitInvincibility:     2.0,
			PowerupInvincibility: 5.0,
		},
		Rules: PlatformerRules{
			Enemies:      true,
			Collectibles: true,
			Spikes:       true,
			Particles:    true,
			ClampLeft:    true,
			RestartAny:   true,
		},
		Pickups: PlatformerPickups{
			Size:        20,
			Score:       100,
			CoinBonus:   500,
			FinishBonus: 10000,
		},
		Camera: CameraConfig{
			Smoothness: 0.1,
		},
		Particles: ParticleConfig{
			Spread:      2.0,
			Lift:        2.0,
			Gravity:     0.1,
			MinLife:     30,
			LifeRange:   30,
			JumpBurst:   10,
			PickupBurst: 15,
			EnemyBurst:  20,
			SpikeBurst:  25,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 7200, // 2 minutes at 60 ticks/s
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.8,
			},
		},
	}
}

// DefaultStageConfig returns the basic stage tuning: flat floor, finish line, nothing else.
func DefaultStageConfig() PlatformerConfig {
	cfg := DefaultPlatformerConfig()
	cfg.Level = VariantStage
	cfg.Player.Lives, cfg.Player.MaxLives = 1, 1
	cfg.Rules = PlatformerRules{ClampLeft: true}
	cfg.Difficulty.Progression.Type = "none"
	return cfg
}

// DefaultPitsConfig returns the lean variant: pits and ledge-turning enemies that kill on contact.
func DefaultPitsConfig() PlatformerConfig {
	cfg := DefaultPlatformerConfig()
	cfg.Level = VariantPits
	cfg.Player.Lives, cfg.Player.MaxLives = 1, 1
	cfg.Rules = PlatformerRules{
		Enemies:      true,
		ContactKills: true,
		EdgePatrol:   true,
		ClampLeft:    true,
	}
	cfg.Camera.Smoothness = 1.0
	return cfg
}

// DefaultFor returns the hard-coded config for a variant.
func DefaultFor(variant string) PlatformerConfig {
	switch variant {
	case VariantStage:
		return DefaultStageConfig()
	case VariantPits:
		return DefaultPitsConfig()
	default:
		return DefaultPlatformerConfig()
	}
}

// GetDefaultYAML returns the embedded default YAML for a variant.
func GetDefaultYAML(variant string) []byte {
	switch variant {
	case VariantStage:
		return defaultStageYAML
	case VariantPits:
		return defaultPitsYAML
	case VariantPlatformer:
		return defaultPlatformerYAML
	default:
		return nil
	}
}
