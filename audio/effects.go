package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveTriangle
)

func (w WaveType) String() string {
	switch w {
	case WaveSine:
		return "sine"
	case WaveTriangle:
		return "triangle"
	default:
		return "unknown"
	}
}

// oscillator generates a raw wave, optionally gliding exponentially between two frequencies
type oscillator struct {
	startFreq float64
	endFreq   float64
	phase     float64
	duration  int
	position  int
	wave      WaveType
	rate      beep.SampleRate
}

// NewOscillator creates a fixed-frequency oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweepOscillator(freq, freq, duration, wave, rate)
}

// NewSweepOscillator creates an oscillator whose frequency ramps exponentially from start to end
func NewSweepOscillator(start, end float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		startFreq: start,
		endFreq:   end,
		duration:  rate.N(duration),
		wave:      wave,
		rate:      rate,
	}
}

// frequency returns the instantaneous frequency at the current position
func (o *oscillator) frequency() float64 {
	if o.startFreq == o.endFreq || o.duration == 0 {
		return o.startFreq
	}
	t := float64(o.position) / float64(o.duration)
	return o.startFreq * math.Pow(o.endFreq/o.startFreq, t)
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
		case WaveTriangle:
			val = 1 - 4*math.Abs(o.phase-0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.frequency() / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates a linear attack/sustain/release envelope with unity peak
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) gain() float64 {
	if e.position < e.attackSamples && e.attackSamples > 0 {
		return float64(e.position) / float64(e.attackSamples)
	}
	releaseStart := e.attackSamples + e.sustainSamples
	if e.position >= releaseStart && e.releaseSamples > 0 {
		remaining := e.totalSamples - e.position
		vol := float64(remaining) / float64(e.releaseSamples)
		if vol < 0 {
			return 0
		}
		return vol
	}
	return 1.0
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := e.gain()
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// decayEnvelope ramps linearly to peak, then decays exponentially to floor at the end of the stream
type decayEnvelope struct {
	streamer      beep.Streamer
	position      int
	attackSamples int
	totalSamples  int
	peak          float64
	floor         float64
}

// NewDecayEnvelope creates a bell-like envelope: linear attack to peak, exponential decay to floor
func NewDecayEnvelope(s beep.Streamer, duration, attack time.Duration, peak, floor float64, rate beep.SampleRate) beep.Streamer {
	return &decayEnvelope{
		streamer:      s,
		attackSamples: rate.N(attack),
		totalSamples:  rate.N(duration),
		peak:          peak,
		floor:         floor,
	}
}

func (e *decayEnvelope) gain() float64 {
	if e.position < e.attackSamples {
		return e.peak * float64(e.position) / float64(e.attackSamples)
	}
	decaySamples := e.totalSamples - e.attackSamples
	if decaySamples <= 0 {
		return e.floor
	}
	t := float64(e.position-e.attackSamples) / float64(decaySamples)
	return e.peak * math.Pow(e.floor/e.peak, t)
}

func (e *decayEnvelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := e.gain()
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *decayEnvelope) Err() error { return e.streamer.Err() }

// newVolume wraps a stream with linear gain vol
// math.Log2(0) is -Inf, so 0 volume is made silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// detune shifts freq by cents (1/100 of a semitone)
func detune(freq, cents float64) float64 {
	return freq * math.Pow(2, cents/1200)
}
