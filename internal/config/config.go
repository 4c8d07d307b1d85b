// Package config provides YAML-based game configuration loading and
// difficulty management for the platformer variants.
package config

// PlatformerConfig contains all tuning for one platformer variant.
type PlatformerConfig struct {
	Level      string            `yaml:"level"` // embedded level ID
	Physics    PlatformerPhysics `yaml:"physics"`
	Player     PlatformerPlayer  `yaml:"player"`
	Rules      PlatformerRules   `yaml:"rules"`
	Pickups    PlatformerPickups `yaml:"pickups"`
	Camera     CameraConfig      `yaml:"camera"`
	Particles  ParticleConfig    `yaml:"particles"`
	Difficulty DifficultyConfig  `yaml:"difficulty"`
}

// PlatformerPhysics defines per-tick movement constants in world units.
type PlatformerPhysics struct {
	Gravity       float64 `yaml:"gravity"`
	MoveSpeed     float64 `yaml:"move_speed"`
	JumpForce     float64 `yaml:"jump_force"` // negative = up
	MaxFallSpeed  float64 `yaml:"max_fall_speed"`
	TickSeconds   float64 `yaml:"tick_seconds"`   // game-clock advance per tick
	SnapTolerance float64 `yaml:"snap_tolerance"` // how far below the surface feet still snap
	SpikeHeight   float64 `yaml:"spike_height"`
	FallMargin    float64 `yaml:"fall_margin"` // distance below the viewport that kills
	EdgeProbe     float64 `yaml:"edge_probe"`  // look-ahead for ledge-turning enemies
}

// PlatformerPlayer defines the player hitbox and health.
type PlatformerPlayer struct {
	Width                float64 `yaml:"width"`
	Height               float64 `yaml:"height"`
	Lives                int     `yaml:"lives"`
	MaxLives             int     `yaml:"max_lives"`
	HitInvincibility     float64 `yaml:"hit_invincibility"`     // seconds
	PowerupInvincibility float64 `yaml:"powerup_invincibility"` // seconds
}

// PlatformerRules switches variant features on and off.
type PlatformerRules struct {
	Enemies      bool `yaml:"enemies"`
	Collectibles bool `yaml:"collectibles"`
	Spikes       bool `yaml:"spikes"`
	Particles    bool `yaml:"particles"`
	ContactKills bool `yaml:"contact_kills"`   // enemy contact kills outright instead of costing a life
	EdgePatrol   bool `yaml:"edge_patrol"`     // enemies turn at ledges instead of patrol bounds
	ClampLeft    bool `yaml:"clamp_left"`      // keep the player at x >= 0
	RestartAny   bool `yaml:"restart_mid_run"` // R also rewinds a run in progress
}

// PlatformerPickups defines collectible size and scoring.
type PlatformerPickups struct {
	Size        float64 `yaml:"size"`
	Score       int     `yaml:"score"`
	CoinBonus   int     `yaml:"coin_bonus"`   // per coin, awarded at the finish line
	FinishBonus float64 `yaml:"finish_bonus"` // divided by elapsed seconds
}

// CameraConfig defines horizontal scroll behavior.
type CameraConfig struct {
	Smoothness float64 `yaml:"smoothness"` // fraction of remaining distance per tick, (0, 1]
}

// ParticleConfig defines burst shapes and sizes.
type ParticleConfig struct {
	Spread      float64 `yaml:"spread"`
	Lift        float64 `yaml:"lift"`
	Gravity     float64 `yaml:"gravity"`
	MinLife     int     `yaml:"min_life"`
	LifeRange   int     `yaml:"life_range"`
	JumpBurst   int     `yaml:"jump_burst"`
	PickupBurst int     `yaml:"pickup_burst"`
	EnemyBurst  int     `yaml:"enemy_burst"`
	SpikeBurst  int     `yaml:"spike_burst"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to enemy speed factor at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset; unknown strings map to "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
