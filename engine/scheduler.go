package engine

import (
	"sort"
	"time"
)

// scheduledAction is a deferred callback waiting for its due time
type scheduledAction struct {
	id  EventID
	due time.Time
	seq uint64
	fn  func()
}

// Scheduler holds cancellable deferred actions keyed by event id
// Not safe for concurrent use: the main loop owns it and calls Run every frame
type Scheduler struct {
	pending map[EventID]*scheduledAction
	seq     uint64
}

// NewScheduler creates an empty scheduler
func NewScheduler() *Scheduler {
	return &Scheduler{
		pending: make(map[EventID]*scheduledAction),
	}
}

// Schedule registers fn to run once at or after due
// Scheduling an id that is already pending replaces the earlier action
func (s *Scheduler) Schedule(id EventID, due time.Time, fn func()) {
	s.seq++
	s.pending[id] = &scheduledAction{id: id, due: due, seq: s.seq, fn: fn}
}

// Cancel drops a pending action, reports whether one existed
func (s *Scheduler) Cancel(id EventID) bool {
	if _, ok := s.pending[id]; !ok {
		return false
	}
	delete(s.pending, id)
	return true
}

// Pending reports whether an action is waiting for id
func (s *Scheduler) Pending(id EventID) bool {
	_, ok := s.pending[id]
	return ok
}

// Len returns the number of pending actions
func (s *Scheduler) Len() int {
	return len(s.pending)
}

// Run fires every action due at now, earliest first, and returns how many fired
// Actions are removed before their callback runs, so a callback may cancel or reschedule freely
func (s *Scheduler) Run(now time.Time) int {
	var due []*scheduledAction
	for _, a := range s.pending {
		if !now.Before(a.due) {
			due = append(due, a)
		}
	}
	if len(due) == 0 {
		return 0
	}

	sort.Slice(due, func(i, j int) bool {
		if due[i].due.Equal(due[j].due) {
			return due[i].seq < due[j].seq
		}
		return due[i].due.Before(due[j].due)
	})

	fired := 0
	for _, a := range due {
		// An earlier callback in this batch may have cancelled this one
		if cur, ok := s.pending[a.id]; !ok || cur != a {
			continue
		}
		delete(s.pending, a.id)
		a.fn()
		fired++
	}
	return fired
}
