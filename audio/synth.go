package audio

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/lixenwraith/babykeys/constants"
)

// Random is the uniform source for detune, timbre and note length
type Random interface {
	Float64() float64
}

// outputState tracks lazy acquisition of the output device
type outputState int

const (
	outputIdle outputState = iota
	outputReady
	outputFailed
)

// Voice describes one note before it is rendered into a stream
type Voice struct {
	Frequency float64 // scale frequency before detune
	Detune    float64 // cents, [-5, 5]
	Wave      WaveType
	Duration  time.Duration
}

// Synth plays key notes and the space sweep
// The output device is acquired on the first audible request and held until Close
type Synth struct {
	mu     sync.Mutex
	config *AudioConfig
	output Output
	rng    Random
	state  outputState
	muted  bool
}

// NewSynth creates a synthesizer; nothing touches the device until a sound is requested
func NewSynth(cfg *AudioConfig, output Output, rng Random) *Synth {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &Synth{
		config: cfg,
		output: output,
		rng:    rng,
		muted:  !cfg.Enabled,
	}
}

// NoteVoice picks the voice for seed: scale step seed mod 10, random detune, timbre and length
func NoteVoice(seed int, rng Random) Voice {
	n := len(constants.NoteFrequencies)
	idx := ((seed % n) + n) % n

	wave := WaveSine
	if rng.Float64() > 0.5 {
		wave = WaveTriangle
	}

	return Voice{
		Frequency: constants.NoteFrequencies[idx],
		Detune:    (rng.Float64() - 0.5) * 2 * constants.NoteDetuneCents,
		Wave:      wave,
		Duration:  constants.NoteMinDuration + time.Duration(rng.Float64()*float64(constants.NoteDurationRange)),
	}
}

// Stream renders the voice into a finite streamer at rate
func (v Voice) Stream(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(detune(v.Frequency, v.Detune), v.Duration, v.Wave, rate)
	return NewDecayEnvelope(osc, v.Duration, constants.NoteAttack, constants.NotePeakGain, constants.NoteFloorGain, rate)
}

// SweepStream renders the fixed space-bar sweep at rate
func SweepStream(rate beep.SampleRate) beep.Streamer {
	osc := NewSweepOscillator(constants.SweepStartFreq, constants.SweepEndFreq, constants.SweepDuration, WaveSine, rate)
	shaped := NewEnvelope(osc, constants.SweepDuration, constants.SweepAttack, constants.SweepDuration-constants.SweepAttack, rate)
	return newVolume(shaped, constants.SweepPeakGain)
}

// PlayNote plays the note keyed by seed, no-op while muted
func (s *Synth) PlayNote(seed int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.muted || !s.acquire() {
		return
	}

	rate := beep.SampleRate(s.config.SampleRate)
	s.output.Play(newVolume(NoteVoice(seed, s.rng).Stream(rate), s.config.MasterVolume))
}

// PlaySpaceSound plays the rising sweep, no-op while muted
func (s *Synth) PlaySpaceSound() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.muted || !s.acquire() {
		return
	}

	rate := beep.SampleRate(s.config.SampleRate)
	s.output.Play(newVolume(SweepStream(rate), s.config.MasterVolume))
}

// ToggleMute flips the mute flag and returns the new value
func (s *Synth) ToggleMute() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.muted = !s.muted
	return s.muted
}

// IsMuted reports the mute flag
func (s *Synth) IsMuted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.muted
}

// Available reports whether the device has not failed to open
func (s *Synth) Available() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state != outputFailed
}

// Close releases the device if it was ever acquired
func (s *Synth) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == outputReady {
		s.output.Close()
	}
	s.state = outputIdle
}

// acquire opens the output on first use, caller holds mu
// A failed open is remembered and every later sound becomes a silent no-op
func (s *Synth) acquire() bool {
	switch s.state {
	case outputReady:
		return true
	case outputFailed:
		return false
	}

	if s.output == nil {
		s.state = outputFailed
		return false
	}

	if err := s.output.Init(beep.SampleRate(s.config.SampleRate), s.config.BufferLength); err != nil {
		log.Printf("audio unavailable, continuing silent: %v", err)
		s.state = outputFailed
		return false
	}

	s.state = outputReady
	log.Printf("audio ready at %d Hz", s.config.SampleRate)
	return true
}
