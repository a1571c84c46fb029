package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-fruits/internal/games/fruits"
)

func drain(s beep.Streamer) (int, float64) {
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		total += n
		if !ok || n == 0 {
			return total, peak
		}
	}
}

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(44100)

	tests := []struct {
		name string
		wave Wave
	}{
		{"sine", WaveSine},
		{"square", WaveSquare},
		{"saw", WaveSaw},
		{"noise", WaveNoise},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			osc := NewOscillator(440, 100*time.Millisecond, tt.wave, rate)
			n, peak := drain(osc)
			if n != rate.N(100*time.Millisecond) {
				t.Errorf("streamed %d samples, expected %d", n, rate.N(100*time.Millisecond))
			}
			if peak > 1 || peak == 0 {
				t.Errorf("peak = %v, expected (0, 1]", peak)
			}
			if osc.Err() != nil {
				t.Errorf("Err() = %v", osc.Err())
			}
		})
	}
}

func TestEnvelopeFadesEdges(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, 100*time.Millisecond, WaveSquare, rate) // constant +1
	env := NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)

	buf := make([][2]float64, 100)
	n, _ := env.Stream(buf)
	if n != 100 {
		t.Fatalf("streamed %d samples, expected 100", n)
	}
	if buf[0][0] != 0 {
		t.Errorf("first sample = %v, expected silence at attack start", buf[0][0])
	}
	if buf[50][0] != 1 {
		t.Errorf("sustain sample = %v, expected 1", buf[50][0])
	}
	if buf[99][0] >= buf[90][0] {
		t.Errorf("release should fade: %v then %v", buf[90][0], buf[99][0])
	}
}

func TestCueEverySound(t *testing.T) {
	rate := beep.SampleRate(8000)
	for _, s := range fruits.Sounds() {
		st := Cue(s, rate, 1)
		if st == nil {
			t.Errorf("no cue for %v", s)
			continue
		}
		n, _ := drain(st)
		if n != rate.N(Length(s)) && n < rate.N(Length(s))-len(cues[s]) {
			t.Errorf("%v streamed %d samples, expected about %d", s, n, rate.N(Length(s)))
		}
	}
	if Cue(fruits.Sound(200), rate, 1) != nil {
		t.Error("unknown sound should have no cue")
	}
}

func TestCueVolume(t *testing.T) {
	rate := beep.SampleRate(8000)
	_, slash := drain(Cue(fruits.SoundPenalty, rate, 0.5))
	_, muted := drain(Cue(fruits.SoundPenalty, rate, 0))
	if slash > 0.5+1e-9 {
		t.Errorf("peak = %v at master 0.5", slash)
	}
	if muted != 0 {
		t.Errorf("muted peak = %v", muted)
	}
}

type recorder struct{ played []fruits.Sound }

func (r *recorder) Play(s fruits.Sound) { r.played = append(r.played, s) }
func (r *recorder) Close()              {}

func TestPlaySignals(t *testing.T) {
	r := &recorder{}
	PlaySignals(r, []fruits.Signal{
		fruits.SoundSignal{Sound: fruits.SoundSlash},
		fruits.AttackSignal{},
		fruits.SoundSignal{Sound: fruits.SoundHit},
	})
	if len(r.played) != 2 || r.played[0] != fruits.SoundSlash || r.played[1] != fruits.SoundHit {
		t.Errorf("played = %v", r.played)
	}
}

func TestOpenDisabled(t *testing.T) {
	p, err := Open(false, 1)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := p.(Silent); !ok {
		t.Errorf("Open(false) = %T, expected Silent", p)
	}
	p.Play(fruits.SoundBoost)
	p.Close()
}
