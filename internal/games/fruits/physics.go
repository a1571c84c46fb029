package fruits

import "time"

// Fall integrates every fruit for one tick and removes fruit that crossed the
// despawn floor. Each unsliced fruit removed costs one life and emits a
// penalty before it is dropped. It returns the number of fruit missed.
func Fall(ctx *Context, dt time.Duration) int {
	p := ctx.Cfg.Physics
	sec := dt.Seconds()

	missed := 0
	kept := ctx.Fruits[:0]
	for _, f := range ctx.Fruits {
		f.Pos.Y -= f.FallSpeed * sec
		f.Angle += f.RotationSpeed
		if f.SpreadSpeed != 0 {
			f.Pos.X += f.SpreadSpeed * sec
			f.SpreadSpeed *= p.SpreadDecay
		}
		if f.Sliced {
			f.SlicedFor += dt
		}

		if f.Pos.Y > p.DespawnFloor {
			kept = append(kept, f)
			continue
		}
		if !f.Sliced {
			missed++
			ctx.Session.LoseLife()
			ctx.Signals.Emit(PenaltySignal{X: f.Pos.X})
			ctx.Signals.sound(SoundPenalty)
		}
	}
	for i := len(kept); i < len(ctx.Fruits); i++ {
		ctx.Fruits[i] = nil
	}
	ctx.Fruits = kept
	return missed
}
