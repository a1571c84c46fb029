package fruits

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-fruits/internal/config"
	"github.com/vovakirdan/tui-fruits/internal/core"
)

// Spawner drops batches of fruit from above the play area on a repeating
// timer whose interval shrinks with every level.
type Spawner struct {
	cfg       config.SpawnConfig
	fallSpeed float64
	roster    []FruitType
	timer     Timer
	nextID    int
}

// NewSpawner resolves the roster and arms the timer with the initial interval.
func NewSpawner(cfg config.SpawnConfig, fallSpeed float64) (*Spawner, error) {
	if len(cfg.Roster) == 0 {
		return nil, config.ErrEmptyRoster
	}
	roster := make([]FruitType, 0, len(cfg.Roster))
	for _, name := range cfg.Roster {
		t, err := ParseFruitType(name)
		if err != nil {
			return nil, fmt.Errorf("spawn roster: %w", err)
		}
		roster = append(roster, t)
	}
	return &Spawner{
		cfg:       cfg,
		fallSpeed: fallSpeed,
		roster:    roster,
		timer:     NewTimer(cfg.InitialInterval),
	}, nil
}

// Interval returns the current time between batches.
func (s *Spawner) Interval() time.Duration {
	return s.timer.Period()
}

// Accelerate shortens the interval by the acceleration factor. A step that
// would cross the minimum interval is refused. It reports whether the
// interval changed.
func (s *Spawner) Accelerate() bool {
	next := time.Duration(float64(s.timer.Period()) * s.cfg.Acceleration)
	if next < s.cfg.MinInterval || next == s.timer.Period() {
		return false
	}
	s.timer.SetPeriod(next)
	return true
}

// Tick advances the timer and spawns one batch per firing.
func (s *Spawner) Tick(ctx *Context, dt time.Duration) {
	for n := s.timer.Tick(dt); n > 0; n-- {
		ctx.Fruits = append(ctx.Fruits, s.Batch(ctx.RNG)...)
	}
}

// Batch draws one spawn batch.
//
// Draw order: column, pineapple trial, pome trial, then for ordinary fruit
// the combo size and per fruit the roster index, the watermelon trial and the
// rotation. Power-ups are single, unrotated fruit.
func (s *Spawner) Batch(rng Random) []*Fruit {
	x := float64(rng.IntRange(-s.cfg.SpanX, s.cfg.SpanX))

	switch {
	case rng.Chance(s.cfg.PineappleChance):
		return []*Fruit{s.spawn(Pineapple, core.Vec{X: x, Y: s.cfg.PowerUpRow}, 0)}
	case rng.Chance(s.cfg.PomeChance):
		return []*Fruit{s.spawn(Pome, core.Vec{X: x, Y: s.cfg.PowerUpRow}, 0)}
	}

	combo := rng.IntRange(1, s.cfg.MaxCombo)
	batch := make([]*Fruit, 0, combo)
	for i := 0; i < combo; i++ {
		t := s.roster[rng.IntRange(0, len(s.roster)-1)]
		if rng.Chance(s.cfg.WatermelonChance) {
			t = Watermelon
		}
		rotation := float64(rng.IntRange(s.cfg.RotationMin, s.cfg.RotationMax)) * 0.1
		pos := core.Vec{X: x, Y: s.cfg.Row + float64(i)*s.cfg.ComboStagger}
		batch = append(batch, s.spawn(t, pos, rotation))
	}
	return batch
}

func (s *Spawner) spawn(t FruitType, pos core.Vec, rotation float64) *Fruit {
	s.nextID++
	return &Fruit{
		ID:            s.nextID,
		Type:          t,
		Pos:           pos,
		FallSpeed:     s.fallSpeed,
		RotationSpeed: rotation,
	}
}
