package fruits

import (
	"time"

	"github.com/vovakirdan/tui-fruits/internal/config"
	"github.com/vovakirdan/tui-fruits/internal/core"
)

// Chef is the player character walking along the bottom of the play area.
type Chef struct {
	Pos    core.Vec
	Speed  float64
	Facing int // -1 left, 1 right
	cfg    config.ChefConfig
}

// NewChef places the chef at the center of its walkway.
func NewChef(cfg config.ChefConfig) Chef {
	return Chef{
		Pos:    core.Vec{X: core.ClampF(0, cfg.MinX, cfg.MaxX), Y: cfg.Y},
		Speed:  cfg.Speed,
		Facing: 1,
		cfg:    cfg,
	}
}

// Move walks in direction dir (-1, 0, 1) for dt, staying on the walkway.
func (c *Chef) Move(dir int, dt time.Duration) {
	if dir == 0 {
		return
	}
	c.Facing = dir
	c.Pos.X = core.ClampF(c.Pos.X+float64(dir)*c.Speed*dt.Seconds(), c.cfg.MinX, c.cfg.MaxX)
}

// LevelUp makes the chef a little faster.
func (c *Chef) LevelUp() {
	c.Speed += c.cfg.SpeedPerLevel
}
