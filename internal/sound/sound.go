// Package sound synthesizes the scratch and reveal sounds of the
// interactive demos.
package sound

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

// SampleRate is the rate every generated stream uses.
const SampleRate = beep.SampleRate(44100)

// Sound lengths.
const (
	ScratchDuration = 60 * time.Millisecond
	ChimeNote       = 120 * time.Millisecond
	ChimeTail       = 380 * time.Millisecond
)

// Wave selects an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveNoise
)

// oscillator generates a fixed number of samples of one wave.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     Wave
	rate     beep.SampleRate
	rnd      *rand.Rand
}

// NewOscillator creates an oscillator that ends after duration.
func NewOscillator(freq float64, duration time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rnd:      rand.New(rand.NewSource(int64(freq*1000) + 1)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveNoise:
			val = o.rnd.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s over duration with the given attack and release.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if remaining := e.totalSamples - e.position; remaining < e.releaseSamples {
			vol = math.Min(vol, float64(remaining)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly; zero or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Scratch returns a short burst of shaped noise for one erase segment.
// Longer segments sound louder, up to vol.
func Scratch(segment, vol float64) beep.Streamer {
	noise := NewOscillator(0, ScratchDuration, WaveNoise, SampleRate)
	shaped := NewEnvelope(noise, ScratchDuration, 5*time.Millisecond, 30*time.Millisecond, SampleRate)
	return newVolume(shaped, vol*math.Min(1, 0.2+segment/60))
}

// Chime returns a rising two-note chime for a completed card.
func Chime(vol float64) beep.Streamer {
	n1 := NewEnvelope(NewOscillator(987.77, ChimeNote, WaveSine, SampleRate),
		ChimeNote, 5*time.Millisecond, 40*time.Millisecond, SampleRate)

	fund := NewEnvelope(NewOscillator(1318.51, ChimeTail, WaveSine, SampleRate),
		ChimeTail, 5*time.Millisecond, 300*time.Millisecond, SampleRate)
	over := NewEnvelope(NewOscillator(2637.02, ChimeTail, WaveSine, SampleRate),
		ChimeTail, 5*time.Millisecond, 150*time.Millisecond, SampleRate)
	n2 := beep.Mix(newVolume(fund, 0.7), newVolume(over, 0.3))

	return newVolume(beep.Seq(n1, n2), vol)
}

// Player plays sounds on the default audio device.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewPlayer creates a player with the given master volume in [0, 1].
func NewPlayer(volume float64) *Player {
	return &Player{mixer: &beep.Mixer{}, volume: volume}
}

// Init opens the audio device. Without a device the player stays silent
// and Init returns the error.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// PlayScratch plays the erase sound for a segment of the given length in
// pixels.
func (p *Player) PlayScratch(segment float64) {
	p.play(Scratch(segment, p.volume))
}

// PlayChime plays the completion chime.
func (p *Player) PlayChime() {
	p.play(Chime(p.volume))
}

func (p *Player) play(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close stops playback and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}
