package fruits

import "github.com/vovakirdan/tui-fruits/internal/core"

// Signal is an outbound message for rendering and audio collaborators.
// Signals are queued during a tick and drained afterwards in emission order.
type Signal interface {
	signal()
}

// AttackSignal is emitted when the chef swings at Pos.
type AttackSignal struct {
	Pos core.Vec
}

func (AttackSignal) signal() {}

// RewardTextSignal asks for floating text at Pos.
type RewardTextSignal struct {
	Text string
	Pos  core.Vec
}

func (RewardTextSignal) signal() {}

// SplashSignal asks for a juice splash.
type SplashSignal struct {
	Pos   core.Vec
	Color SplashColor
}

func (SplashSignal) signal() {}

// SoundSignal asks for an audio cue.
type SoundSignal struct {
	Sound Sound
}

func (SoundSignal) signal() {}

// BoostShotSignal describes the projectile of one boost slice.
type BoostShotSignal struct {
	From, To core.Vec
}

func (BoostShotSignal) signal() {}

// PenaltySignal is emitted when an unsliced fruit is lost at column X.
type PenaltySignal struct {
	X float64
}

func (PenaltySignal) signal() {}

// LevelUpSignal carries the new level number.
type LevelUpSignal struct {
	Level int
}

func (LevelUpSignal) signal() {}

// ConfettiSignal celebrates a new record.
type ConfettiSignal struct{}

func (ConfettiSignal) signal() {}

// GameOverSignal is emitted once when a session ends.
type GameOverSignal struct {
	Score     int
	Level     int
	Best      int // Best score before this session
	NewRecord bool
	RecordErr error // Set when the new record could not be stored
}

func (GameOverSignal) signal() {}

// Signals is the per-game outbound queue.
type Signals struct {
	queue []Signal
}

// Emit appends a signal.
func (q *Signals) Emit(s Signal) {
	q.queue = append(q.queue, s)
}

func (q *Signals) sound(s Sound) {
	q.Emit(SoundSignal{Sound: s})
}

// Len returns the number of queued signals.
func (q *Signals) Len() int {
	return len(q.queue)
}

// Since returns the signals queued after the first n.
func (q *Signals) Since(n int) []Signal {
	if n >= len(q.queue) {
		return nil
	}
	return q.queue[n:]
}

// Drain returns all queued signals and empties the queue.
func (q *Signals) Drain() []Signal {
	out := q.queue
	q.queue = nil
	return out
}
