package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/fruit-slice/internal/core"
)

var allCues = []core.Cue{
	core.CueThrow, core.CueSlice, core.CueSplit, core.CueCombo, core.CueCoin,
	core.CuePurchase, core.CueHazard, core.CueGameOver, core.CueReward,
}

// drain streams s to the end and returns the number of samples.
func drain(t *testing.T, s beep.Streamer) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for j := 0; j < n; j++ {
			if buf[j][0] < -1.0001 || buf[j][0] > 1.0001 {
				t.Fatalf("sample %d out of range: %f", total+j, buf[j][0])
			}
		}
		total += n
		if !ok {
			return total
		}
	}
	t.Fatal("stream never ended")
	return 0
}

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440, 100*time.Millisecond, WaveSine, rate)
	if n := drain(t, osc); n != rate.N(100*time.Millisecond) {
		t.Errorf("streamed %d samples, expected %d", n, rate.N(100*time.Millisecond))
	}
	if osc.Err() != nil {
		t.Errorf("Err() = %v, expected nil", osc.Err())
	}
}

func TestSquareWaveValues(t *testing.T) {
	osc := NewOscillator(220, 50*time.Millisecond, WaveSquare, beep.SampleRate(44100))
	samples := make([][2]float64, 200)
	n, _ := osc.Stream(samples)
	for i := 0; i < n; i++ {
		if v := samples[i][0]; v != -1.0 && v != 1.0 {
			t.Fatalf("square sample %d = %f, expected -1 or 1", i, v)
		}
	}
}

func TestEnvelopeStartsAndEndsQuiet(t *testing.T) {
	rate := beep.SampleRate(44100)
	d := 100 * time.Millisecond
	osc := NewOscillator(0, d, WaveSquare, rate) // constant +1
	env := NewEnvelope(osc, d, 10*time.Millisecond, 10*time.Millisecond, rate)

	buf := make([][2]float64, rate.N(d))
	n, _ := env.Stream(buf)
	if n != len(buf) {
		t.Fatalf("streamed %d samples, expected %d", n, len(buf))
	}
	if buf[0][0] != 0 {
		t.Errorf("first sample = %f, expected 0", buf[0][0])
	}
	if mid := buf[n/2][0]; mid != 1 {
		t.Errorf("sustain sample = %f, expected 1", mid)
	}
	if last := buf[n-1][0]; last <= 0 || last > 0.01 {
		t.Errorf("last sample = %f, expected close to 0", last)
	}
}

func TestEveryCueHasASound(t *testing.T) {
	for _, c := range allCues {
		s := Sound(c, beep.SampleRate(44100), 0.5)
		if s == nil {
			t.Errorf("Sound(%q) = nil", c)
			continue
		}
		if n := drain(t, s); n == 0 {
			t.Errorf("Sound(%q) is empty", c)
		}
	}
	if Sound(core.Cue("unknown"), beep.SampleRate(44100), 1) != nil {
		t.Error("unknown cue should have no sound")
	}
}

func testPlayer(opts ...Option) *Player {
	p := NewPlayer(opts...)
	p.output = func(f func()) { f() }
	p.ready = true
	return p
}

func TestPlayerPlay(t *testing.T) {
	if NewPlayer().Play(core.CueSlice) {
		t.Error("Play() before Init() should report false")
	}

	p := testPlayer()
	if !p.Play(core.CueSlice) {
		t.Error("Play() should queue a known cue")
	}
	if p.Play(core.Cue("nope")) {
		t.Error("Play() of an unknown cue should report false")
	}
	if p.mixer.Len() != 1 {
		t.Errorf("mixer has %d voices, expected 1", p.mixer.Len())
	}

	p.SetMuted(true)
	if p.Play(core.CueCoin) || !p.Muted() {
		t.Error("muted player should not play")
	}
}

func TestPlayerVoiceLimit(t *testing.T) {
	p := testPlayer(WithVolume(1))
	cues := make([]core.Cue, maxVoices+4)
	for i := range cues {
		cues[i] = core.CueThrow
	}
	if n := p.PlayAll(cues); n != maxVoices {
		t.Errorf("PlayAll() queued %d, expected %d", n, maxVoices)
	}

	p.Close()
	if p.mixer.Len() != 0 {
		t.Error("Close() should clear the mixer")
	}
	if p.Play(core.CueThrow) {
		t.Error("Play() after Close() should report false")
	}
}

func TestPlayerZeroVolume(t *testing.T) {
	p := testPlayer(WithVolume(0))
	if p.Play(core.CueThrow) {
		t.Error("zero volume player should not play")
	}
	if q := testPlayer(WithMuted(true)); q.Play(core.CueThrow) {
		t.Error("WithMuted(true) player should not play")
	}
}
