package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-fruits/internal/games/fruits"
)

const sampleRate = beep.SampleRate(44100)

// Player plays sound cues.
type Player interface {
	Play(s fruits.Sound)
	Close()
}

// Silent is the player used when sound is disabled.
type Silent struct{}

func (Silent) Play(fruits.Sound) {}
func (Silent) Close()            {}

// Speaker plays cues on the default audio device through one shared mixer.
type Speaker struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	master float64
	open   bool
}

// NewSpeaker initializes the audio device.
func NewSpeaker(master float64) (*Speaker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("audio: cannot init speaker: %w", err)
	}
	s := &Speaker{mixer: &beep.Mixer{}, master: master, open: true}
	speaker.Play(s.mixer)
	return s, nil
}

// Play starts s on top of whatever is already playing.
func (s *Speaker) Play(snd fruits.Sound) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return
	}
	st := Cue(snd, sampleRate, s.master)
	if st == nil {
		return
	}
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Close stops every cue and releases the device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	s.open = false
}

// Open returns a Speaker when enabled, otherwise Silent. A device failure
// also yields Silent together with the error so the caller can log it and
// keep playing without sound.
func Open(enabled bool, master float64) (Player, error) {
	if !enabled {
		return Silent{}, nil
	}
	s, err := NewSpeaker(master)
	if err != nil {
		return Silent{}, err
	}
	return s, nil
}

// PlaySignals plays every sound signal in order.
func PlaySignals(p Player, signals []fruits.Signal) {
	for _, sig := range signals {
		if s, ok := sig.(fruits.SoundSignal); ok {
			p.Play(s.Sound)
		}
	}
}
