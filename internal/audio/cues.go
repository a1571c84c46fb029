package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-fruits/internal/games/fruits"
)

type note struct {
	freq float64
	dur  time.Duration
	wave Wave
}

const (
	attack  = 5 * time.Millisecond
	release = 30 * time.Millisecond
)

// cues maps every sound to a short note sequence.
var cues = map[fruits.Sound][]note{
	fruits.SoundSlash:    {{0, 60 * time.Millisecond, WaveNoise}},
	fruits.SoundHit:      {{180, 70 * time.Millisecond, WaveSaw}},
	fruits.SoundPenalty:  {{220, 90 * time.Millisecond, WaveSquare}, {147, 160 * time.Millisecond, WaveSquare}},
	fruits.SoundBoost:    {{392, 60 * time.Millisecond, WaveSine}, {523.25, 60 * time.Millisecond, WaveSine}, {783.99, 120 * time.Millisecond, WaveSine}},
	fruits.SoundBoostHit: {{1046.5, 40 * time.Millisecond, WaveSquare}},
	fruits.SoundRecord:   {{523.25, 100 * time.Millisecond, WaveSquare}, {659.25, 100 * time.Millisecond, WaveSquare}, {783.99, 100 * time.Millisecond, WaveSquare}, {1046.5, 250 * time.Millisecond, WaveSquare}},
	fruits.SoundGameOver: {{392, 200 * time.Millisecond, WaveSaw}, {311.13, 200 * time.Millisecond, WaveSaw}, {261.63, 400 * time.Millisecond, WaveSaw}},

	fruits.SoundAppleSlice:      {{660, 50 * time.Millisecond, WaveSine}},
	fruits.SoundStrawberrySlice: {{880, 40 * time.Millisecond, WaveSine}},
	fruits.SoundOrangeSlice:     {{587.33, 60 * time.Millisecond, WaveSine}},
	fruits.SoundWatermelonSlice: {{110, 120 * time.Millisecond, WaveSaw}},
	fruits.SoundPineappleSlice:  {{698.46, 50 * time.Millisecond, WaveSquare}, {932.33, 80 * time.Millisecond, WaveSquare}},
	fruits.SoundBananaSlice:     {{493.88, 70 * time.Millisecond, WaveSine}},
	fruits.SoundPomeSlice:       {{783.99, 60 * time.Millisecond, WaveSine}, {1174.66, 100 * time.Millisecond, WaveSine}},
}

// Cue builds the streamer for s at the sound's category volume times master.
// It returns nil for an unknown sound.
func Cue(s fruits.Sound, rate beep.SampleRate, master float64) beep.Streamer {
	notes, ok := cues[s]
	if !ok {
		return nil
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		osc := NewOscillator(n.freq, n.dur, n.wave, rate)
		parts = append(parts, NewEnvelope(osc, n.dur, attack, release, rate))
	}
	return newVolume(beep.Seq(parts...), s.Volume()*master)
}

// Length returns how long the cue for s plays.
func Length(s fruits.Sound) time.Duration {
	var d time.Duration
	for _, n := range cues[s] {
		d += n.dur
	}
	return d
}
