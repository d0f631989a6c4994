package constants

import "time"

// NoteFrequencies is the pentatonic scale used for key notes (C4 to A5)
var NoteFrequencies = [...]float64{
	261.63, // C4
	293.66, // D4
	329.63, // E4
	392.00, // G4
	440.00, // A4
	523.25, // C5
	587.33, // D5
	659.25, // E5
	783.99, // G5
	880.00, // A5
}

// Audio output defaults
const (
	DefaultSampleRate   = 44100
	DefaultBufferLength = 100 * time.Millisecond
)

// Note timing
const (
	NotePeakGain      = 0.3
	NoteFloorGain     = 0.001
	NoteAttack        = 50 * time.Millisecond
	NoteMinDuration   = 500 * time.Millisecond
	NoteDurationRange = 500 * time.Millisecond
	NoteDetuneCents   = 5.0
)

// Space sweep timing
const (
	SweepDuration  = 400 * time.Millisecond
	SweepAttack    = 100 * time.Millisecond
	SweepStartFreq = 200.0
	SweepEndFreq   = 800.0
	SweepPeakGain  = 0.3
)
