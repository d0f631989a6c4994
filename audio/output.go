package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
)

// Output is the device that voices are played on
type Output interface {
	Init(rate beep.SampleRate, buffer time.Duration) error
	Play(s beep.Streamer)
	Close()
}

// SpeakerOutput plays through the system audio device
type SpeakerOutput struct{}

// NewSpeakerOutput returns the speaker-backed output
func NewSpeakerOutput() *SpeakerOutput {
	return &SpeakerOutput{}
}

// Init opens the audio device
func (SpeakerOutput) Init(rate beep.SampleRate, buffer time.Duration) error {
	if err := speaker.Init(rate, rate.N(buffer)); err != nil {
		return errors.Wrapf(err, "init speaker at %d Hz", int(rate))
	}
	return nil
}

// Play mixes s into the device stream, fire-and-forget
func (SpeakerOutput) Play(s beep.Streamer) {
	speaker.Play(s)
}

// Close stops playback and releases the device
func (SpeakerOutput) Close() {
	speaker.Clear()
	speaker.Close()
}
