package fruits

import (
	"github.com/vovakirdan/tui-fruits/internal/config"
	"github.com/vovakirdan/tui-fruits/internal/core"
)

// scriptedRandom replays fixed draws. When a script runs out IntRange returns
// lo and Chance returns false.
type scriptedRandom struct {
	ints    []int
	chances []bool
}

func (r *scriptedRandom) IntRange(lo, hi int) int {
	if len(r.ints) == 0 {
		return lo
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return core.Clamp(v, lo, hi)
}

func (r *scriptedRandom) Chance(float64) bool {
	if len(r.chances) == 0 {
		return false
	}
	v := r.chances[0]
	r.chances = r.chances[1:]
	return v
}

func testContext(rng Random) *Context {
	return NewContext(config.DefaultFruitsConfig(), rng)
}

func addFruit(ctx *Context, t FruitType, x, y float64) *Fruit {
	f := &Fruit{
		ID:        len(ctx.Fruits) + 1,
		Type:      t,
		Pos:       core.Vec{X: x, Y: y},
		FallSpeed: ctx.Cfg.Physics.FallSpeed,
	}
	ctx.Fruits = append(ctx.Fruits, f)
	return f
}

func soundsOf(signals []Signal) []Sound {
	var out []Sound
	for _, s := range signals {
		if snd, ok := s.(SoundSignal); ok {
			out = append(out, snd.Sound)
		}
	}
	return out
}

func countSound(signals []Signal, want Sound) int {
	n := 0
	for _, s := range soundsOf(signals) {
		if s == want {
			n++
		}
	}
	return n
}

func signalsOf[T Signal](signals []Signal) []T {
	var out []T
	for _, s := range signals {
		if v, ok := s.(T); ok {
			out = append(out, v)
		}
	}
	return out
}

// fakeRecords is an in-memory RecordKeeper.
type fakeRecords struct {
	best  int
	saved []int
	err   error
}

func (r *fakeRecords) Best() int               { return r.best }
func (r *fakeRecords) IsRecord(score int) bool { return score > r.best }
func (r *fakeRecords) Save(score int) error {
	if r.err != nil {
		return r.err
	}
	r.saved = append(r.saved, score)
	r.best = score
	return nil
}
