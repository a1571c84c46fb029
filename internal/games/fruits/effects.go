package fruits

import (
	"time"

	"github.com/vovakirdan/tui-fruits/internal/core"
)

// Lifetimes and speeds of the cosmetic effects, in world units.
const (
	TextLifetime     = 1500 * time.Millisecond
	TextRise         = 20.0
	SplashLifetime   = 600 * time.Millisecond
	SplashFall       = 300.0
	WaveLifetime     = 500 * time.Millisecond
	ShotLifetime     = 250 * time.Millisecond
	ConfettiLifetime = 2 * time.Second
	SlashLifetime    = 80 * time.Millisecond
	BannerLifetime   = 1500 * time.Millisecond

	confettiPieces = 48
)

type floatingText struct {
	text string
	pos  core.Vec
	age  time.Duration
}

type splash struct {
	pos   core.Vec
	color SplashColor
	age   time.Duration
}

type wave struct {
	x   float64
	age time.Duration
}

type shot struct {
	from, to core.Vec
	age      time.Duration
}

type confetto struct {
	pos   core.Vec
	vel   core.Vec
	color core.Color
	glyph rune
}

// Effects turns signals into short-lived visuals. It never feeds back into
// the simulation and keeps its own generator so the game RNG stream is not
// disturbed by cosmetics.
type Effects struct {
	rng *LCG

	texts    []floatingText
	splashes []splash
	waves    []wave
	shots    []shot

	confetti    []confetto
	confettiAge time.Duration

	slash    core.Vec
	slashAge time.Duration

	banner    string
	bannerAge time.Duration
}

func newEffects(seed int64) *Effects {
	return &Effects{
		rng:         NewLCG(seed ^ 0x5eed),
		slashAge:    SlashLifetime,
		bannerAge:   BannerLifetime,
		confettiAge: ConfettiLifetime,
	}
}

// Observe records the visual consequences of signals.
func (e *Effects) Observe(signals []Signal) {
	for _, s := range signals {
		switch s := s.(type) {
		case AttackSignal:
			e.slash, e.slashAge = s.Pos, 0
		case RewardTextSignal:
			e.texts = append(e.texts, floatingText{text: s.Text, pos: s.Pos})
		case SplashSignal:
			e.splashes = append(e.splashes, splash{pos: s.Pos, color: s.Color})
		case PenaltySignal:
			e.waves = append(e.waves, wave{x: s.X})
		case BoostShotSignal:
			e.shots = append(e.shots, shot{from: s.From, to: s.To})
		case LevelUpSignal:
			e.banner = levelBanner(s.Level)
			e.bannerAge = 0
		case ConfettiSignal:
			e.burst()
		}
	}
}

var confettiColors = []core.Color{
	core.ColorRed, core.ColorYellow, core.ColorGreen, core.ColorCyan,
	core.ColorMagenta, core.ColorOrange, core.ColorPink,
}

var confettiGlyphs = []rune{'*', '•', '+', '~', '°'}

func (e *Effects) burst() {
	e.confettiAge = 0
	e.confetti = e.confetti[:0]
	for i := 0; i < confettiPieces; i++ {
		e.confetti = append(e.confetti, confetto{
			pos: core.Vec{
				X: float64(e.rng.IntRange(-int(WorldW/2), int(WorldW/2))),
				Y: WorldH/2 + float64(e.rng.IntRange(0, 120)),
			},
			vel: core.Vec{
				X: float64(e.rng.IntRange(-60, 60)),
				Y: -float64(e.rng.IntRange(150, 350)),
			},
			color: confettiColors[e.rng.IntRange(0, len(confettiColors)-1)],
			glyph: confettiGlyphs[e.rng.IntRange(0, len(confettiGlyphs)-1)],
		})
	}
}

// Update ages every effect by dt and drops the expired ones.
func (e *Effects) Update(dt time.Duration) {
	sec := dt.Seconds()

	e.texts = expire(e.texts, func(t *floatingText) bool {
		t.age += dt
		t.pos.Y += TextRise * sec
		return t.age < TextLifetime
	})
	e.splashes = expire(e.splashes, func(s *splash) bool {
		s.age += dt
		s.pos.Y -= SplashFall * sec
		return s.age < SplashLifetime
	})
	e.waves = expire(e.waves, func(w *wave) bool {
		w.age += dt
		return w.age < WaveLifetime
	})
	e.shots = expire(e.shots, func(s *shot) bool {
		s.age += dt
		return s.age < ShotLifetime
	})

	if e.confettiAge < ConfettiLifetime {
		e.confettiAge += dt
		for i := range e.confetti {
			c := &e.confetti[i]
			c.pos = c.pos.Add(c.vel.Scale(sec))
		}
		if e.confettiAge >= ConfettiLifetime {
			e.confetti = e.confetti[:0]
		}
	}
	if e.slashAge < SlashLifetime {
		e.slashAge += dt
	}
	if e.bannerAge < BannerLifetime {
		e.bannerAge += dt
	}
}

// Active reports whether anything is still on screen.
func (e *Effects) Active() bool {
	return len(e.texts)+len(e.splashes)+len(e.waves)+len(e.shots)+len(e.confetti) > 0 ||
		e.slashAge < SlashLifetime || e.bannerAge < BannerLifetime
}

func expire[T any](items []T, alive func(*T) bool) []T {
	kept := items[:0]
	for i := range items {
		if alive(&items[i]) {
			kept = append(kept, items[i])
		}
	}
	return kept
}
