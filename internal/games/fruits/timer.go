package fruits

import "time"

// Timer is a repeating countdown advanced by simulation time.
type Timer struct {
	period  time.Duration
	elapsed time.Duration
}

// NewTimer creates a repeating timer with the given period.
func NewTimer(period time.Duration) Timer {
	return Timer{period: period}
}

// Tick advances the timer and returns how many periods completed.
func (t *Timer) Tick(dt time.Duration) int {
	if t.period <= 0 {
		return 0
	}
	t.elapsed += dt
	n := int(t.elapsed / t.period)
	t.elapsed %= t.period
	return n
}

// Period returns the current period.
func (t Timer) Period() time.Duration {
	return t.period
}

// SetPeriod changes the period without resetting progress.
func (t *Timer) SetPeriod(p time.Duration) {
	t.period = p
}

// Remaining returns the time until the next firing.
func (t Timer) Remaining() time.Duration {
	return t.period - t.elapsed
}
