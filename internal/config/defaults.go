package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/fruits.yaml
var defaultFruitsYAML []byte

// DefaultFruitsConfig returns the built-in configuration. It mirrors
// defaults/fruits.yaml and is used when the embedded file cannot be parsed.
func DefaultFruitsConfig() FruitsConfig {
	return FruitsConfig{
		Spawn: SpawnConfig{
			InitialInterval:  time.Second,
			MinInterval:      450 * time.Millisecond,
			Acceleration:     0.95,
			SpanX:            350,
			Row:              330,
			PowerUpRow:       350,
			ComboStagger:     30,
			MaxCombo:         3,
			PineappleChance:  0.04,
			PomeChance:       0.03,
			WatermelonChance: 0.05,
			Roster:           []string{"apple", "strawberry", "orange", "banana"},
			RotationMin:      -15,
			RotationMax:      20,
		},
		Physics: PhysicsConfig{
			FallSpeed:      400,
			SliceFallBonus: 100,
			SpreadStep:     100,
			SpreadSteps:    5,
			SpreadDecay:    0.95,
			DespawnFloor:   -480,
		},
		Hit: HitConfig{
			AttackW: 40,
			AttackH: 40,
			FruitW:  140,
			FruitH:  220,
		},
		Boost: BoostConfig{
			Bonus:               5,
			Pace:                100 * time.Millisecond,
			VisibilityThreshold: 300,
			FloorMargin:         20,
			IdleLimit:           10,
			TargetX:             0,
			TargetY:             -380,
		},
		Level: LevelConfig{
			Enabled:  true,
			Interval: 6 * time.Second,
		},
		Chef: ChefConfig{
			Speed:         900,
			SpeedPerLevel: 10,
			MinX:          -500,
			MaxX:          500,
			Y:             -220,
		},
		Session: SessionConfig{
			Lives:    5,
			MaxLives: 5,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFruitsYAML
}
