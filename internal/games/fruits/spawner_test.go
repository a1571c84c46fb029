package fruits

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/tui-fruits/internal/config"
)

func newTestSpawner(t *testing.T, mutate func(*config.SpawnConfig)) *Spawner {
	t.Helper()
	cfg := config.DefaultFruitsConfig()
	if mutate != nil {
		mutate(&cfg.Spawn)
	}
	s, err := NewSpawner(cfg.Spawn, cfg.Physics.FallSpeed)
	if err != nil {
		t.Fatalf("NewSpawner() error = %v", err)
	}
	return s
}

func TestSpawnerPowerUpPriority(t *testing.T) {
	tests := []struct {
		name     string
		chances  []bool
		expected FruitType
		leftover int // Chance draws not consumed
	}{
		{"pineapple wins", []bool{true, false}, Pineapple, 1},
		{"pineapple checked before pome", []bool{true, true}, Pineapple, 1},
		{"pome after failed pineapple", []bool{false, true}, Pome, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSpawner(t, nil)
			rng := &scriptedRandom{ints: []int{120}, chances: tt.chances}

			batch := s.Batch(rng)
			if len(batch) != 1 {
				t.Fatalf("power-up batch has %d fruit, expected 1", len(batch))
			}
			f := batch[0]
			if f.Type != tt.expected {
				t.Errorf("Type = %v, expected %v", f.Type, tt.expected)
			}
			if f.Pos.X != 120 || f.Pos.Y != 350 {
				t.Errorf("Pos = %v, expected (120, 350)", f.Pos)
			}
			if f.RotationSpeed != 0 {
				t.Errorf("power-up RotationSpeed = %v, expected 0", f.RotationSpeed)
			}
			if len(rng.chances) != tt.leftover {
				t.Errorf("%d chance draws left, expected %d", len(rng.chances), tt.leftover)
			}
		})
	}
}

func TestSpawnerComboColumn(t *testing.T) {
	s := newTestSpawner(t, nil)
	rng := &scriptedRandom{
		// column, combo, then per fruit: roster index, rotation
		ints: []int{-200, 3, 0, 10, 2, -15, 3, 20},
		// pineapple, pome, then the watermelon trial per fruit
		chances: []bool{false, false, false, true, false},
	}

	batch := s.Batch(rng)
	if len(batch) != 3 {
		t.Fatalf("combo size = %d, expected 3", len(batch))
	}

	expected := []struct {
		t        FruitType
		y        float64
		rotation float64
	}{
		{Apple, 330, 1.0},
		{Watermelon, 360, -1.5},
		{Banana, 390, 2.0},
	}
	for i, want := range expected {
		f := batch[i]
		if f.Type != want.t {
			t.Errorf("fruit %d type = %v, expected %v", i, f.Type, want.t)
		}
		if f.Pos.X != -200 || f.Pos.Y != want.y {
			t.Errorf("fruit %d pos = %v, expected (-200, %v)", i, f.Pos, want.y)
		}
		if math.Abs(f.RotationSpeed-want.rotation) > 1e-9 {
			t.Errorf("fruit %d rotation = %v, expected %v", i, f.RotationSpeed, want.rotation)
		}
		if f.FallSpeed != 400 || f.Sliced || f.SpreadSpeed != 0 {
			t.Errorf("fruit %d not fresh: %+v", i, *f)
		}
	}
	if batch[0].ID == batch[1].ID {
		t.Error("fruit IDs should be unique")
	}
}

func TestSpawnerRandomBatchesStayInBounds(t *testing.T) {
	s := newTestSpawner(t, nil)
	rng := NewLCG(42)
	seen := map[FruitType]bool{}

	for i := 0; i < 2000; i++ {
		batch := s.Batch(rng)
		if len(batch) < 1 || len(batch) > 3 {
			t.Fatalf("batch size %d outside [1, 3]", len(batch))
		}
		for _, f := range batch {
			seen[f.Type] = true
			if f.Pos.X < -350 || f.Pos.X > 350 {
				t.Fatalf("x = %v outside span", f.Pos.X)
			}
			if f.Type.IsPowerUp() && (len(batch) != 1 || f.RotationSpeed != 0) {
				t.Fatalf("power-up must be single and unrotated: %+v", *f)
			}
			if f.RotationSpeed < -1.5-1e-9 || f.RotationSpeed > 2.0+1e-9 {
				t.Fatalf("rotation %v outside [-1.5, 2.0]", f.RotationSpeed)
			}
		}
	}

	for _, ft := range []FruitType{Apple, Strawberry, Orange, Banana, Watermelon, Pineapple, Pome} {
		if !seen[ft] {
			t.Errorf("%v never spawned in 2000 batches", ft)
		}
	}
}

func TestSpawnerTickFiresOnInterval(t *testing.T) {
	s := newTestSpawner(t, nil)
	ctx := testContext(NewLCG(7))

	for i := 0; i < 3; i++ {
		s.Tick(ctx, 250*time.Millisecond)
	}
	if len(ctx.Fruits) != 0 {
		t.Fatalf("spawned %d fruit before the interval elapsed", len(ctx.Fruits))
	}
	s.Tick(ctx, 250*time.Millisecond)
	if len(ctx.Fruits) == 0 {
		t.Error("expected a batch once the interval elapsed")
	}
}

func TestSpawnerAccelerate(t *testing.T) {
	s := newTestSpawner(t, func(c *config.SpawnConfig) {
		c.InitialInterval = 800 * time.Millisecond
	})

	for n := 1; n <= 5; n++ {
		if !s.Accelerate() {
			t.Fatalf("level-up %d refused above the floor", n)
		}
		want := float64(800*time.Millisecond) * math.Pow(0.95, float64(n))
		if diff := math.Abs(float64(s.Interval()) - want); diff > float64(time.Microsecond) {
			t.Errorf("after %d level-ups interval = %v, expected %v", n, s.Interval(), time.Duration(want))
		}
	}
	if s.Interval() < 615*time.Millisecond || s.Interval() > 620*time.Millisecond {
		t.Errorf("five level-ups from 800ms = %v, expected about 619ms", s.Interval())
	}

	for i := 0; i < 50; i++ {
		s.Accelerate()
		if s.Interval() < 450*time.Millisecond {
			t.Fatalf("interval %v fell below the floor", s.Interval())
		}
	}
	last := s.Interval()
	if time.Duration(float64(last)*0.95) >= 450*time.Millisecond {
		t.Errorf("interval %v should have kept decreasing", last)
	}
	if s.Accelerate() || s.Interval() != last {
		t.Error("acceleration below the floor should be refused")
	}
}

func TestNewSpawnerRosterErrors(t *testing.T) {
	cfg := config.DefaultFruitsConfig()

	cfg.Spawn.Roster = nil
	if _, err := NewSpawner(cfg.Spawn, 400); !errors.Is(err, config.ErrEmptyRoster) {
		t.Errorf("empty roster error = %v, expected ErrEmptyRoster", err)
	}

	cfg.Spawn.Roster = []string{"apple", "durian"}
	if _, err := NewSpawner(cfg.Spawn, 400); err == nil {
		t.Error("unknown fruit should be rejected")
	}
}

func TestParseFruitType(t *testing.T) {
	for _, ft := range []FruitType{Apple, Strawberry, Orange, Watermelon, Pineapple, Banana, Pome} {
		got, err := ParseFruitType(ft.String())
		if err != nil || got != ft {
			t.Errorf("ParseFruitType(%q) = %v, %v", ft.String(), got, err)
		}
	}
	if got, err := ParseFruitType(" Apple "); err != nil || got != Apple {
		t.Errorf("ParseFruitType should trim and fold case, got %v, %v", got, err)
	}
}
