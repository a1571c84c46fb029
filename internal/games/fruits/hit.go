package fruits

import "github.com/vovakirdan/tui-fruits/internal/core"

// Reward texts shown above power-up fruit.
const (
	TextBoost = "+1 boost!"
	TextLife  = "+1 life!"
)

// Slice cuts f and pays its reward. It is the single slicing primitive shared
// by attacks and boosts; an already sliced fruit is left alone and false is
// returned, so rewards are paid at most once per fruit.
func Slice(ctx *Context, f *Fruit) bool {
	if f.Sliced {
		return false
	}
	p := ctx.Cfg.Physics

	f.Sliced = true
	if f.Type != Pome {
		f.FallSpeed += p.SliceFallBonus
	}
	f.SpreadSpeed = float64(ctx.RNG.IntRange(-p.SpreadSteps, p.SpreadSteps)) * p.SpreadStep

	s := ctx.Session
	s.Score++
	switch f.Type {
	case Pineapple:
		s.Boosts++
		ctx.Signals.Emit(RewardTextSignal{Text: TextBoost, Pos: f.Pos})
	case Pome:
		if s.GainLife() {
			ctx.Signals.Emit(RewardTextSignal{Text: TextLife, Pos: f.Pos})
		}
	}
	return true
}

// ResolveAttack tests an attack at pos against every fruit. All overlapping
// fruit splash; the unsliced ones are cut. One slash cue is emitted per
// attack, a hit cue when anything was cut, then one slice cue per cut fruit.
// It returns the number of fruit cut.
func ResolveAttack(ctx *Context, pos core.Vec) int {
	h := ctx.Cfg.Hit
	attack := core.BoxAt(pos, h.AttackW, h.AttackH)

	var cut []*Fruit
	for _, f := range ctx.Fruits {
		if !attack.Overlaps(f.Hitbox(h.FruitW, h.FruitH)) {
			continue
		}
		if Slice(ctx, f) {
			cut = append(cut, f)
		}
		ctx.Signals.Emit(SplashSignal{Pos: f.Pos, Color: f.Type.Splash()})
	}

	ctx.Signals.sound(SoundSlash)
	if len(cut) > 0 {
		ctx.Signals.sound(SoundHit)
	}
	for _, f := range cut {
		ctx.Signals.sound(SliceSound(f.Type))
	}
	return len(cut)
}
