package sound

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to the end and returns every left-channel sample.
func drain(s beep.Streamer) []float64 {
	var out []float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			out = append(out, buf[i][0])
		}
		if !ok || n == 0 {
			return out
		}
	}
}

func TestOscillatorSine(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440, 100*time.Millisecond, WaveSine, rate)

	samples := drain(osc)
	if len(samples) != rate.N(100*time.Millisecond) {
		t.Errorf("streamed %d samples, want %d", len(samples), rate.N(100*time.Millisecond))
	}
	for i, v := range samples {
		if v < -1 || v > 1 {
			t.Fatalf("sample %d out of range: %f", i, v)
		}
	}
	if osc.Err() != nil {
		t.Errorf("Err() = %v", osc.Err())
	}
}

func TestOscillatorNoiseInRange(t *testing.T) {
	osc := NewOscillator(0, 20*time.Millisecond, WaveNoise, SampleRate)
	nonZero := 0
	for _, v := range drain(osc) {
		if v < -1 || v > 1 {
			t.Fatalf("noise sample out of range: %f", v)
		}
		if v != 0 {
			nonZero++
		}
	}
	if nonZero == 0 {
		t.Error("noise produced only silence")
	}
}

func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	env := NewEnvelope(constant{1}, time.Second, 100*time.Millisecond, 100*time.Millisecond, rate)

	samples := drain(env)
	if len(samples) != 1000 {
		t.Fatalf("streamed %d samples, want 1000", len(samples))
	}
	if samples[0] != 0 {
		t.Errorf("first sample = %f, want 0 (attack start)", samples[0])
	}
	if samples[500] != 1 {
		t.Errorf("sustain sample = %f, want 1", samples[500])
	}
	if samples[999] > 0.02 {
		t.Errorf("last sample = %f, want near 0 (release end)", samples[999])
	}
}

// constant is an endless stream of one value.
type constant struct{ v float64 }

func (c constant) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		samples[i][0], samples[i][1] = c.v, c.v
	}
	return len(samples), true
}

func (constant) Err() error { return nil }

func TestScratchLength(t *testing.T) {
	samples := drain(Scratch(30, 1))
	want := SampleRate.N(ScratchDuration)
	if len(samples) != want {
		t.Errorf("scratch length = %d samples, want %d", len(samples), want)
	}
}

func TestChimeLength(t *testing.T) {
	samples := drain(Chime(0.5))
	want := SampleRate.N(ChimeNote) + SampleRate.N(ChimeTail)
	if len(samples) != want {
		t.Errorf("chime length = %d samples, want %d", len(samples), want)
	}
	peak := 0.0
	for _, v := range samples {
		peak = math.Max(peak, math.Abs(v))
	}
	if peak == 0 || peak > 1 {
		t.Errorf("chime peak = %f, want in (0, 1]", peak)
	}
}

func TestSilentVolume(t *testing.T) {
	for _, v := range drain(Chime(0)) {
		if v != 0 {
			t.Fatalf("muted chime produced %f", v)
		}
	}
}

func TestPlayerWithoutDevice(t *testing.T) {
	p := NewPlayer(1)
	// Not initialized: playing and closing are no-ops.
	p.PlayScratch(10)
	p.PlayChime()
	p.Close()
}
