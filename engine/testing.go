package engine

import "time"

// FixedRandom returns the same value on every draw
type FixedRandom float64

func (f FixedRandom) Float64() float64 { return float64(f) }

// SequenceRandom cycles through a fixed list of draws
type SequenceRandom struct {
	Values []float64
	pos    int
}

func (s *SequenceRandom) Float64() float64 {
	v := s.Values[s.pos%len(s.Values)]
	s.pos++
	return v
}

// RecordingSound counts sound requests without producing audio
type RecordingSound struct {
	Notes  []int
	Sweeps int
	Muted  bool
}

func (r *RecordingSound) PlayNote(seed int) {
	if r.Muted {
		return
	}
	r.Notes = append(r.Notes, seed)
}

func (r *RecordingSound) PlaySpaceSound() {
	if r.Muted {
		return
	}
	r.Sweeps++
}

func (r *RecordingSound) ToggleMute() bool {
	r.Muted = !r.Muted
	return r.Muted
}

func (r *RecordingSound) IsMuted() bool { return r.Muted }

// NewTestGameContext creates a GameContext on a mock clock with a recording sound player
func NewTestGameContext(rng Random) (*GameContext, *MockTimeProvider, *RecordingSound) {
	clock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	sound := &RecordingSound{}
	return NewGameContext(clock, sound, rng), clock, sound
}
