package fruits

import (
	"github.com/vovakirdan/tui-fruits/internal/config"
)

// Context is the simulation state threaded through the components of a tick.
// It is owned by Game; components receive it explicitly.
type Context struct {
	Cfg     config.FruitsConfig
	Session *Session
	Fruits  []*Fruit
	RNG     Random
	Signals *Signals
}

// NewContext builds a context with a fresh session and no fruit.
func NewContext(cfg config.FruitsConfig, rng Random) *Context {
	return &Context{
		Cfg:     cfg,
		Session: NewSession(cfg.Session),
		RNG:     rng,
		Signals: &Signals{},
	}
}

// Live returns the unsliced fruit count.
func (c *Context) Live() int {
	n := 0
	for _, f := range c.Fruits {
		if !f.Sliced {
			n++
		}
	}
	return n
}
