package fruits

import (
	"time"

	"github.com/vovakirdan/tui-fruits/internal/config"
)

// LevelProgression raises the level on a fixed cadence.
type LevelProgression struct {
	enabled bool
	level   int
	timer   Timer
}

// NewLevelProgression starts at level 1.
func NewLevelProgression(cfg config.LevelConfig) *LevelProgression {
	return &LevelProgression{
		enabled: cfg.Enabled,
		level:   1,
		timer:   NewTimer(cfg.Interval),
	}
}

// Level returns the current level number.
func (l *LevelProgression) Level() int {
	return l.level
}

// Tick advances the timer. Every firing bumps the level, mirrors it into the
// session and emits a level-up signal. It returns the number of level-ups.
func (l *LevelProgression) Tick(ctx *Context, dt time.Duration) int {
	if !l.enabled {
		return 0
	}
	n := l.timer.Tick(dt)
	for i := 0; i < n; i++ {
		l.level++
		ctx.Session.Level = l.level
		ctx.Signals.Emit(LevelUpSignal{Level: l.level})
	}
	return n
}
