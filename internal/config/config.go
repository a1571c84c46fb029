// Package config provides YAML-based configuration loading and difficulty
// presets for the fruit game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors returned by Validate and ParsePreset.
var (
	ErrEmptyRoster    = errors.New("config: fruit roster is empty")
	ErrUnknownPreset  = errors.New("config: unknown difficulty preset")
	ErrInvalidSetting = errors.New("config: invalid setting")
)

// FruitsConfig contains all tunables of the simulation.
type FruitsConfig struct {
	Spawn   SpawnConfig   `yaml:"spawn"`
	Physics PhysicsConfig `yaml:"physics"`
	Hit     HitConfig     `yaml:"hit"`
	Boost   BoostConfig   `yaml:"boost"`
	Level   LevelConfig   `yaml:"level"`
	Chef    ChefConfig    `yaml:"chef"`
	Session SessionConfig `yaml:"session"`
}

// SpawnConfig controls batch generation and its acceleration.
type SpawnConfig struct {
	InitialInterval  time.Duration `yaml:"initial_interval"`
	MinInterval      time.Duration `yaml:"min_interval"`
	Acceleration     float64       `yaml:"acceleration"` // Interval multiplier per level-up
	SpanX            int           `yaml:"span_x"`       // x drawn from [-SpanX, SpanX]
	Row              float64       `yaml:"row"`          // y of the first ordinary fruit
	PowerUpRow       float64       `yaml:"power_up_row"`
	ComboStagger     float64       `yaml:"combo_stagger"` // Vertical gap between combo fruit
	MaxCombo         int           `yaml:"max_combo"`
	PineappleChance  float64       `yaml:"pineapple_chance"`
	PomeChance       float64       `yaml:"pome_chance"`
	WatermelonChance float64       `yaml:"watermelon_chance"`
	Roster           []string      `yaml:"roster"`
	RotationMin      int           `yaml:"rotation_min"` // Tenths of a degree per tick
	RotationMax      int           `yaml:"rotation_max"`
}

// PhysicsConfig controls fruit motion.
type PhysicsConfig struct {
	FallSpeed      float64 `yaml:"fall_speed"` // Units per second
	SliceFallBonus float64 `yaml:"slice_fall_bonus"`
	SpreadStep     float64 `yaml:"spread_step"`  // Spread is SpreadStep * randint(-SpreadSteps, SpreadSteps)
	SpreadSteps    int     `yaml:"spread_steps"` // Spread magnitude multiplier bound
	SpreadDecay    float64 `yaml:"spread_decay"` // Per tick
	DespawnFloor   float64 `yaml:"despawn_floor"`
}

// HitConfig sets hitbox sizes in world units.
type HitConfig struct {
	AttackW float64 `yaml:"attack_w"`
	AttackH float64 `yaml:"attack_h"`
	FruitW  float64 `yaml:"fruit_w"`
	FruitH  float64 `yaml:"fruit_h"`
}

// BoostConfig controls the auto-slice ability.
type BoostConfig struct {
	Bonus               int           `yaml:"bonus"`
	Pace                time.Duration `yaml:"pace"`
	VisibilityThreshold float64       `yaml:"visibility_threshold"`
	FloorMargin         float64       `yaml:"floor_margin"`
	IdleLimit           int           `yaml:"idle_limit"` // Idle firings before an activation is dropped
	TargetX             float64       `yaml:"target_x"`
	TargetY             float64       `yaml:"target_y"`
}

// LevelConfig controls level progression.
type LevelConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Interval time.Duration `yaml:"interval"`
}

// ChefConfig controls the player character.
type ChefConfig struct {
	Speed         float64 `yaml:"speed"`
	SpeedPerLevel float64 `yaml:"speed_per_level"`
	MinX          float64 `yaml:"min_x"`
	MaxX          float64 `yaml:"max_x"`
	Y             float64 `yaml:"y"`
}

// SessionConfig sets the starting values of a play-through.
type SessionConfig struct {
	Lives    int `yaml:"lives"`
	MaxLives int `yaml:"max_lives"`
}

// Validate reports the first setting that would make the simulation misbehave.
func (c FruitsConfig) Validate() error {
	if len(c.Spawn.Roster) == 0 {
		return ErrEmptyRoster
	}

	checks := []struct {
		ok   bool
		name string
	}{
		{c.Spawn.InitialInterval > 0, "spawn.initial_interval"},
		{c.Spawn.MinInterval > 0, "spawn.min_interval"},
		{c.Spawn.Acceleration > 0 && c.Spawn.Acceleration <= 1, "spawn.acceleration"},
		{c.Spawn.SpanX >= 0, "spawn.span_x"},
		{c.Spawn.MaxCombo >= 1, "spawn.max_combo"},
		{probability(c.Spawn.PineappleChance), "spawn.pineapple_chance"},
		{probability(c.Spawn.PomeChance), "spawn.pome_chance"},
		{probability(c.Spawn.WatermelonChance), "spawn.watermelon_chance"},
		{c.Spawn.RotationMin <= c.Spawn.RotationMax, "spawn.rotation_min"},
		{c.Physics.FallSpeed > 0, "physics.fall_speed"},
		{c.Physics.SpreadSteps >= 0, "physics.spread_steps"},
		{c.Physics.SpreadDecay >= 0 && c.Physics.SpreadDecay <= 1, "physics.spread_decay"},
		{c.Hit.AttackW > 0 && c.Hit.AttackH > 0, "hit.attack"},
		{c.Hit.FruitW > 0 && c.Hit.FruitH > 0, "hit.fruit"},
		{c.Boost.Bonus >= 0, "boost.bonus"},
		{c.Boost.Pace > 0, "boost.pace"},
		{c.Boost.IdleLimit >= 1, "boost.idle_limit"},
		{!c.Level.Enabled || c.Level.Interval > 0, "level.interval"},
		{c.Chef.MinX <= c.Chef.MaxX, "chef.min_x"},
		{c.Session.MaxLives >= 1, "session.max_lives"},
		{c.Session.Lives >= 1 && c.Session.Lives <= c.Session.MaxLives, "session.lives"},
	}
	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("%w: %s", ErrInvalidSetting, chk.name)
		}
	}
	return nil
}

func probability(p float64) bool {
	return p >= 0 && p <= 1
}
