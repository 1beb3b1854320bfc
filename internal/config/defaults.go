package config

import (
	_ "embed"
)

//go:embed defaults/jumper.yaml
var defaultJumperYAML []byte

// DefaultJumperConfig returns the default Sky Hopper configuration.
func DefaultJumperConfig() JumperConfig {
	return JumperConfig{
		World: WorldConfig{
			Width:      400,
			Height:     600,
			PlayerSize: 40,
		},
		Physics: PhysicsConfig{
			Friction: 0.9,
		},
		Platforms: PlatformConfig{
			BaseWidth:        100,
			Height:           15,
			MinWidth:         45,
			NearTopThreshold: 70,
			GapMin:           60,
			GapMax:           110,
			HorizontalJitter: 200,
		},
		PowerUps: PowerUpConfig{
			SpawnChance:      0.10,
			MultiplierMS:     10000,
			GiantMS:          5000,
			BoosterMS:        3000,
			PickupSize:       24,
			BoostRadiusScale: 1.5,
			BoostAscentScale: 0.8,
		},
		Generator: GeneratorConfig{
			ShrinkStartScore: 500,
			ShrinkRange:      5000,
			MaxShrink:        0.5,
			MovingMinScore:   1500,
			FastMinScore:     3000,
			MovingChance:     0.3,
			FastMovingChance: 0.6,
			MovingSpeed:      1.5,
			FastMovingSpeed:  2.5,
			RangeMin:         50,
			RangeMax:         100,
		},
		Difficulty: DifficultyConfig{
			Enabled:        true,
			ThresholdScale: 1.0,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultJumperYAML
}
