package engine

import (
	"time"

	"github.com/lixenwraith/babykeys/constants"
)

// QuitGuard recognizes the exit chord: the same key repeated quickly
// A single stray press from a child never exits
type QuitGuard struct {
	presses []time.Time
}

// Press records one exit-key press at now and reports whether the chord completed
func (q *QuitGuard) Press(now time.Time) bool {
	cutoff := now.Add(-constants.QuitWindow)
	kept := q.presses[:0]
	for _, t := range q.presses {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	q.presses = append(kept, now)

	if len(q.presses) >= constants.QuitPressCount {
		q.presses = q.presses[:0]
		return true
	}
	return false
}

// Reset forgets earlier presses, called when any other key breaks the chord
func (q *QuitGuard) Reset() {
	q.presses = q.presses[:0]
}
