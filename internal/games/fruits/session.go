package fruits

import "github.com/vovakirdan/tui-fruits/internal/config"

// Session holds the counters of one play-through. It is replaced wholesale
// on restart.
type Session struct {
	Level    int
	Lives    int
	Score    int
	Boosts   int
	MaxLives int
}

// NewSession returns a fresh session: level 1, full lives, nothing scored.
func NewSession(cfg config.SessionConfig) *Session {
	return &Session{
		Level:    1,
		Lives:    cfg.Lives,
		MaxLives: cfg.MaxLives,
	}
}

// LoseLife removes one life, never going below zero.
func (s *Session) LoseLife() {
	if s.Lives > 0 {
		s.Lives--
	}
}

// GainLife adds a life if below the maximum. It reports whether it did.
func (s *Session) GainLife() bool {
	if s.Lives >= s.MaxLives {
		return false
	}
	s.Lives++
	return true
}

// UseBoost consumes a boost charge if one is available.
func (s *Session) UseBoost() bool {
	if s.Boosts <= 0 {
		return false
	}
	s.Boosts--
	return true
}

// Dead reports whether the loss condition holds.
func (s *Session) Dead() bool {
	return s.Lives <= 0
}
