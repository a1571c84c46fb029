package tui

import (
	"time"

	"github.com/vovakirdan/tui-fruits/internal/core"
)

// HoldWindow is how long a movement key counts as held after its last
// key event. Terminals report no key releases, only autorepeat, so a key is
// considered down until the repeats stop.
const HoldWindow = 150 * time.Millisecond

// HoldTracker turns movement key events into held state.
type HoldTracker struct {
	window time.Duration
	last   map[core.Action]time.Time
}

// NewHoldTracker creates a tracker with the given window.
func NewHoldTracker(window time.Duration) *HoldTracker {
	return &HoldTracker{window: window, last: make(map[core.Action]time.Time)}
}

// Touch records a key event for a. Opposite directions cancel each other.
func (h *HoldTracker) Touch(a core.Action, now time.Time) {
	switch a {
	case core.ActionLeft:
		delete(h.last, core.ActionRight)
	case core.ActionRight:
		delete(h.last, core.ActionLeft)
	}
	h.last[a] = now
}

// Apply marks every still-held action on frame and forgets expired ones.
func (h *HoldTracker) Apply(frame *core.InputFrame, now time.Time) {
	for a, t := range h.last {
		if now.Sub(t) < h.window {
			frame.Hold(a)
		} else {
			delete(h.last, a)
		}
	}
}

// Release forgets all held keys.
func (h *HoldTracker) Release() {
	clear(h.last)
}
