package fruits

import (
	"time"

	"github.com/vovakirdan/tui-fruits/internal/config"
	"github.com/vovakirdan/tui-fruits/internal/core"
)

// BoostActivation is one spent boost charge working through its budget.
type BoostActivation struct {
	Remaining int
	pace      Timer
	idle      int // Consecutive firings without a target
}

// BoostAbility owns the running activations.
type BoostAbility struct {
	cfg    config.BoostConfig
	active []*BoostActivation
}

// NewBoostAbility creates an ability with no running activation.
func NewBoostAbility(cfg config.BoostConfig) *BoostAbility {
	return &BoostAbility{cfg: cfg}
}

// Active returns the number of running activations.
func (b *BoostAbility) Active() int {
	return len(b.active)
}

// Remaining returns the total slices still owed by all activations.
func (b *BoostAbility) Remaining() int {
	n := 0
	for _, a := range b.active {
		n += a.Remaining
	}
	return n
}

// Activate spends a boost charge. The budget is the number of unsliced fruit
// below the visibility threshold plus the fixed bonus. Without a charge it
// does nothing and returns nil.
func (b *BoostAbility) Activate(ctx *Context) *BoostActivation {
	if !ctx.Session.UseBoost() {
		return nil
	}

	count := b.cfg.Bonus
	for _, f := range ctx.Fruits {
		if !f.Sliced && f.Pos.Y < b.cfg.VisibilityThreshold {
			count++
		}
	}

	a := &BoostActivation{Remaining: count, pace: NewTimer(b.cfg.Pace)}
	if count > 0 {
		b.active = append(b.active, a)
	}
	ctx.Signals.sound(SoundBoost)
	return a
}

// Tick advances every activation. Each pace firing cuts the lowest unsliced
// fruit still above the floor margin. Exhausted activations, and those that
// found nothing for IdleLimit firings in a row, are dropped.
func (b *BoostAbility) Tick(ctx *Context, dt time.Duration) {
	kept := b.active[:0]
	for _, a := range b.active {
		for n := a.pace.Tick(dt); n > 0 && a.Remaining > 0; n-- {
			target := b.lowest(ctx)
			if target == nil {
				a.idle++
				continue
			}
			a.idle = 0
			b.shoot(ctx, target)
			a.Remaining--
		}
		if a.Remaining > 0 && a.idle < b.cfg.IdleLimit {
			kept = append(kept, a)
		}
	}
	for i := len(kept); i < len(b.active); i++ {
		b.active[i] = nil
	}
	b.active = kept
}

// lowest returns the unsliced fruit nearest the floor, or nil.
func (b *BoostAbility) lowest(ctx *Context) *Fruit {
	floor := ctx.Cfg.Physics.DespawnFloor - b.cfg.FloorMargin
	var best *Fruit
	for _, f := range ctx.Fruits {
		if f.Sliced || f.Pos.Y <= floor {
			continue
		}
		if best == nil || f.Pos.Y < best.Pos.Y {
			best = f
		}
	}
	return best
}

func (b *BoostAbility) shoot(ctx *Context, f *Fruit) {
	ctx.Signals.Emit(BoostShotSignal{
		From: f.Pos,
		To:   core.Vec{X: b.cfg.TargetX, Y: b.cfg.TargetY},
	})
	Slice(ctx, f)
	ctx.Signals.Emit(SplashSignal{Pos: f.Pos, Color: f.Type.Splash()})
	ctx.Signals.sound(SliceSound(f.Type))
	ctx.Signals.sound(SoundBoostHit)
}
