package config

import (
	_ "embed"
)

//go:embed defaults/fruitslice.yaml
var defaultSliceYAML []byte

// DefaultSliceConfig returns the built-in tuning used when no YAML is readable.
func DefaultSliceConfig() SliceConfig {
	return SliceConfig{
		Field: FieldConfig{Width: 800, Height: 600},
		Physics: SlicePhysics{
			Gravity:        1.0,
			HalfGravity:    0.8,
			SparkGravity:   0.18,
			StreakGravity:  0.3,
			HomingDamping:  0.86,
			HomingGain:     0.08,
			HomingMinSpeed: 2,
			HomingArrive:   12,
		},
		Margins: SliceMargins{
			Fruit:          80,
			Coin:           120,
			Hazard:         120,
			Half:           120,
			ParticleBottom: 240,
			ParticleSide:   60,
		},
		Blade: BladeConfig{
			TrailLength:       5,
			FruitRadius:       40,
			CoinRadius:        36,
			HazardRadius:      36,
			SpeedScale:        0.5,
			MinSpeed:          0.5,
			MaxSpeed:          6.0,
			LightningDistance: 40,
			LightningTicks:    6,
		},
		Split: SplitConfig{
			Life:        45,
			SmoothTicks: 6,
			MinSpeed:    3,
			MaxSpeed:    6,
			SpeedGain:   0.25,
			ClampMin:    2,
			ClampMax:    10,
			AngleJitter: 12,
		},
		Scoring: ScoringConfig{
			ComboWindowMs:   500,
			ComboThreshold:  3,
			Multiplier:      2,
			PopupEvery:      4,
			FruitValue:      1,
			CoinValue:       2,
			HazardPenalty:   10,
			HazardSafeScore: 10,
			GameOverTicks:   150,
		},
		Effects: EffectsConfig{
			SliceLineTicks:       18,
			PopupTicks:           45,
			CoinPopupTicks:       30,
			ComboShakeTicks:      14,
			ComboShakeIntensity:  8,
			HazardShakeTicks:     45,
			HazardShakeIntensity: 14,
			FlashTicks:           12,
			ComboLightningTicks:  14,
		},
		Spawner: SpawnerConfig{
			IntervalTicks:     60,
			MinIntervalTicks:  30,
			GroupChance:       0.30,
			MaxGroup:          3,
			CoinChance:        0.04,
			HazardChance:      0.12,
			MixedHazardChance: 0.08,
			ForcedCoinTicks:   2550,
			FruitSize:         80,
			CoinSize:          48,
			HazardSize:        64,
			TossSpeedMin:      20,
			TossSpeedMax:      30,
			HazardSpeedMin:    16,
			HazardSpeedMax:    26,
		},
		Fruits: []FruitVariant{
			{Name: "apple", Visual: "fruits/apple.png", Glyph: "@", Color: "red"},
			{Name: "orange", Visual: "fruits/orange.png", Glyph: "O", Color: "orange"},
			{Name: "banana", Visual: "fruits/banana.png", Glyph: ")", Color: "yellow"},
			{Name: "watermelon", Visual: "fruits/watermelon.png", Glyph: "W", Color: "green"},
			{Name: "grape", Visual: "fruits/grape.png", Glyph: "%", Color: "purple"},
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 150,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   0.15,
				IntervalReduction: 24,
				HazardBoost:       0.06,
			},
		},
	}
}
