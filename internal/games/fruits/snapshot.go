package fruits

import (
	"math"
	"time"
)

// FruitState is the flattened state of one fruit.
type FruitState struct {
	ID          int
	Type        FruitType
	X, Y        float64
	FallSpeed   float64
	Angle       float64
	SpreadSpeed float64
	Sliced      bool
}

// Snapshot is a plain copy of the simulation state for determinism checks
// and debugging.
type Snapshot struct {
	Tick          uint64
	Phase         Phase
	Paused        bool
	Session       Session
	ChefX         float64
	ChefSpeed     float64
	SpawnInterval time.Duration
	BoostsActive  int
	BoostsOwed    int
	Fruits        []FruitState
	RNGState      uint64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	fruits := make([]FruitState, len(g.ctx.Fruits))
	for i, f := range g.ctx.Fruits {
		fruits[i] = FruitState{
			ID:          f.ID,
			Type:        f.Type,
			X:           f.Pos.X,
			Y:           f.Pos.Y,
			FallSpeed:   f.FallSpeed,
			Angle:       f.Angle,
			SpreadSpeed: f.SpreadSpeed,
			Sliced:      f.Sliced,
		}
	}

	return Snapshot{
		Tick:          g.tick,
		Phase:         g.phase,
		Paused:        g.paused,
		Session:       *g.ctx.Session,
		ChefX:         g.chef.Pos.X,
		ChefSpeed:     g.chef.Speed,
		SpawnInterval: g.spawner.Interval(),
		BoostsActive:  g.boost.Active(),
		BoostsOwed:    g.boost.Remaining(),
		Fruits:        fruits,
		RNGState:      g.rng.State(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap Snapshot) Hash() uint64 {
	h := snap.Tick
	mix := func(v uint64) { h = h*31 + v }
	mixInt := func(v int) { mix(uint64(v)) } //#nosec G115 -- hash computation
	mixF := func(v float64) { mix(math.Float64bits(v)) }

	mixInt(int(snap.Phase))
	if snap.Paused {
		mix(1)
	}
	mixInt(snap.Session.Level)
	mixInt(snap.Session.Lives)
	mixInt(snap.Session.Score)
	mixInt(snap.Session.Boosts)
	mixF(snap.ChefX)
	mixF(snap.ChefSpeed)
	mixInt(int(snap.SpawnInterval))
	mixInt(snap.BoostsActive)
	mixInt(snap.BoostsOwed)

	for _, f := range snap.Fruits {
		mixInt(f.ID)
		mixInt(int(f.Type))
		mixF(f.X)
		mixF(f.Y)
		mixF(f.FallSpeed)
		mixF(f.Angle)
		mixF(f.SpreadSpeed)
		if f.Sliced {
			mix(1)
		}
	}

	mix(snap.RNGState)
	return h
}
