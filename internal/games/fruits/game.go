// Package fruits implements the fruit slicing game: a deterministic,
// fixed-tick simulation with no terminal or audio dependency. The platform
// feeds it input frames, drains its signals and asks it to render.
package fruits

import (
	"time"

	"github.com/vovakirdan/tui-fruits/internal/config"
	"github.com/vovakirdan/tui-fruits/internal/core"
)

// ID is the game identifier used in score history.
const ID = "fruits"

// World dimensions. The origin is the center of the play area, y points up.
const (
	WorldW = 1140.0
	WorldH = 660.0
)

// Phase is the session lifecycle state. Pause is orthogonal to it.
type Phase uint8

const (
	PhaseActive Phase = iota
	PhaseEnded
)

func (p Phase) String() string {
	if p == PhaseEnded {
		return "ended"
	}
	return "active"
}

// RecordKeeper guards the best score ever achieved.
type RecordKeeper interface {
	Best() int
	IsRecord(score int) bool
	Save(score int) error
}

// Game is the simulation context owner. It is not safe for concurrent use.
type Game struct {
	cfg     config.FruitsConfig
	records RecordKeeper
	runtime core.RuntimeConfig
	dt      time.Duration

	rng     *LCG
	signals *Signals
	ctx     *Context
	spawner *Spawner
	boost   *BoostAbility
	level   *LevelProgression
	chef    Chef
	effects *Effects

	phase     Phase
	paused    bool
	best      int
	newRecord bool
	tick      uint64
	elapsed   time.Duration
}

// New validates cfg and creates a game. Call Reset before stepping.
// records may be nil, in which case no best score is kept.
func New(cfg config.FruitsConfig, records RecordKeeper) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if _, err := NewSpawner(cfg.Spawn, cfg.Physics.FallSpeed); err != nil {
		return nil, err
	}
	return &Game{cfg: cfg, records: records, signals: &Signals{}}, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return "Fruit Slicer" }

// Reset reseeds the generator and starts a fresh session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}
	g.runtime = runtime
	g.dt = time.Second / time.Duration(runtime.TickRate)
	g.rng = NewLCG(runtime.Seed)
	g.effects = newEffects(runtime.Seed)
	g.signals.Drain()
	g.start()
}

// start replaces all session state. The generator keeps its stream so
// consecutive sessions differ.
func (g *Game) start() {
	g.ctx = &Context{
		Cfg:     g.cfg,
		Session: NewSession(g.cfg.Session),
		RNG:     g.rng,
		Signals: g.signals,
	}
	g.spawner, _ = NewSpawner(g.cfg.Spawn, g.cfg.Physics.FallSpeed) // roster checked in New
	g.boost = NewBoostAbility(g.cfg.Boost)
	g.level = NewLevelProgression(g.cfg.Level)
	g.chef = NewChef(g.cfg.Chef)

	g.phase = PhaseActive
	g.paused = false
	g.newRecord = false
	g.tick = 0
	g.elapsed = 0
	g.best = 0
	if g.records != nil {
		g.best = g.records.Best()
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.phase == PhaseEnded {
		if in.Pressed(core.ActionRestart) || in.Pressed(core.ActionConfirm) {
			g.start()
		} else {
			g.effects.Update(g.dt)
		}
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Pressed(core.ActionPause):
		g.paused = !g.paused
	case g.paused && in.Pressed(core.ActionConfirm):
		g.paused = false
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	mark := g.signals.Len()
	g.advance(in)
	g.effects.Observe(g.signals.Since(mark))
	g.effects.Update(g.dt)

	return core.StepResult{State: g.State()}
}

// advance runs one simulation tick in the fixed order: input, timers and
// abilities, fall, hit resolution, lifecycle.
func (g *Game) advance(in core.InputFrame) {
	ctx := g.ctx

	dir := 0
	if in.Held(core.ActionLeft) {
		dir--
	}
	if in.Held(core.ActionRight) {
		dir++
	}
	g.chef.Move(dir, g.dt)

	var attacks []core.Vec
	if in.Pressed(core.ActionSlice) {
		attacks = append(attacks, g.chef.Pos)
		ctx.Signals.Emit(AttackSignal{Pos: g.chef.Pos})
	}

	g.spawner.Tick(ctx, g.dt)
	if in.Pressed(core.ActionBoost) {
		g.boost.Activate(ctx)
	}
	g.boost.Tick(ctx, g.dt)
	for n := g.level.Tick(ctx, g.dt); n > 0; n-- {
		g.spawner.Accelerate()
		g.chef.LevelUp()
	}

	Fall(ctx, g.dt)

	for _, pos := range attacks {
		ResolveAttack(ctx, pos)
	}

	g.tick++
	g.elapsed += g.dt
	if ctx.Session.Dead() {
		g.finish()
	}
}

// finish ends the session and settles the record.
func (g *Game) finish() {
	g.phase = PhaseEnded
	s := g.ctx.Session

	over := GameOverSignal{Score: s.Score, Level: s.Level, Best: g.best}
	if g.records != nil && g.records.IsRecord(s.Score) {
		over.NewRecord = true
		over.RecordErr = g.records.Save(s.Score)
		g.signals.sound(SoundRecord)
		g.signals.Emit(ConfettiSignal{})
	}
	g.newRecord = over.NewRecord
	g.signals.sound(SoundGameOver)
	g.signals.Emit(over)
}

// Drain returns the signals emitted since the last drain.
func (g *Game) Drain() []Signal {
	return g.signals.Drain()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.ctx == nil {
		return core.GameState{}
	}
	s := g.ctx.Session
	return core.GameState{
		Score:     s.Score,
		Level:     s.Level,
		Lives:     s.Lives,
		Boosts:    s.Boosts,
		Best:      g.best,
		NewRecord: g.newRecord,
		GameOver:  g.phase == PhaseEnded,
		Paused:    g.paused,
	}
}

// Phase returns the lifecycle state.
func (g *Game) Phase() Phase { return g.phase }

// Paused reports whether ticking is suspended.
func (g *Game) Paused() bool { return g.paused }

// Elapsed returns the simulated play time of the current session.
func (g *Game) Elapsed() time.Duration { return g.elapsed }

// Session returns a copy of the session counters.
func (g *Game) Session() Session { return *g.ctx.Session }

// SpawnInterval returns the current time between spawn batches.
func (g *Game) SpawnInterval() time.Duration { return g.spawner.Interval() }
