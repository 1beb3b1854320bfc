// Package config provides YAML-based game configuration loading and
// difficulty presets for the jumper platform.
package config

// JumperConfig contains all tunable parameters for the Sky Hopper game.
// The simulation engine reads these once at reset; they never change
// mid-round.
type JumperConfig struct {
	World      WorldConfig      `yaml:"world"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Platforms  PlatformConfig   `yaml:"platforms"`
	PowerUps   PowerUpConfig    `yaml:"powerups"`
	Generator  GeneratorConfig  `yaml:"generator"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the simulated world, measured in world units.
// The renderer projects world units onto terminal cells.
type WorldConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	PlayerSize float64 `yaml:"player_size"`
}

// PhysicsConfig defines global physics parameters.
// Per-character stats (jump impulse, gravity, move speed) live in the
// character table, not here.
type PhysicsConfig struct {
	Friction float64 `yaml:"friction"` // vx multiplier applied every fixed step (<1)
}

// PlatformConfig defines platform dimensions and spawn geometry.
type PlatformConfig struct {
	BaseWidth        float64 `yaml:"base_width"`
	Height           float64 `yaml:"height"`
	MinWidth         float64 `yaml:"min_width"`
	NearTopThreshold float64 `yaml:"near_top_threshold"` // spawn a platform when the topmost one drops below this
	GapMin           float64 `yaml:"gap_min"`            // vertical gap range between platforms
	GapMax           float64 `yaml:"gap_max"`
	HorizontalJitter float64 `yaml:"horizontal_jitter"` // new platform lands within ± this of the reference
}

// PowerUpConfig defines power-up spawning and effect durations.
type PowerUpConfig struct {
	SpawnChance      float64 `yaml:"spawn_chance"`       // probability a new platform carries a token
	MultiplierMS     int     `yaml:"multiplier_ms"`      // score ×2 duration
	GiantMS          int     `yaml:"giant_ms"`           // giant duration
	BoosterMS        int     `yaml:"booster_ms"`         // booster duration
	PickupSize       float64 `yaml:"pickup_size"`        // token anchor sits this far above the platform top
	BoostRadiusScale float64 `yaml:"boost_radius_scale"` // pickup radius multiplier while boosting
	BoostAscentScale float64 `yaml:"boost_ascent_scale"` // booster vy = -scale × |jump impulse|
}

// GeneratorConfig defines difficulty scaling of procedural generation.
type GeneratorConfig struct {
	ShrinkStartScore int     `yaml:"shrink_start_score"` // platforms start shrinking past this score
	ShrinkRange      int     `yaml:"shrink_range"`       // score span over which shrink reaches its max
	MaxShrink        float64 `yaml:"max_shrink"`         // maximum width reduction fraction
	MovingMinScore   int     `yaml:"moving_min_score"`   // moving platforms become eligible
	FastMinScore     int     `yaml:"fast_min_score"`     // faster, more frequent movers
	MovingChance     float64 `yaml:"moving_chance"`
	FastMovingChance float64 `yaml:"fast_moving_chance"`
	MovingSpeed      float64 `yaml:"moving_speed"`
	FastMovingSpeed  float64 `yaml:"fast_moving_speed"`
	RangeMin         float64 `yaml:"range_min"` // oscillation half-range bounds
	RangeMax         float64 `yaml:"range_max"`
}

// DifficultyConfig scales the generator's score thresholds.
// ThresholdScale > 1 delays shrinking/movers (easier), < 1 brings them
// forward (harder). Enabled=false freezes generation at its easiest form.
type DifficultyConfig struct {
	Enabled        bool    `yaml:"enabled"`
	ThresholdScale float64 `yaml:"threshold_scale"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ThresholdScaleForPreset returns the generator threshold scale for a preset.
func ThresholdScaleForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 1.5
	case DifficultyHard:
		return 0.6
	default:
		return 1.0
	}
}

// ApplyJumperPreset modifies the config based on a difficulty preset.
func ApplyJumperPreset(cfg *JumperConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.ThresholdScale = ThresholdScaleForPreset(preset)
}
