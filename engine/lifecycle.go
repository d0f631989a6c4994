package engine

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/lixenwraith/babykeys/constants"
)

// MountedEvent is the render state of one visual event on screen
type MountedEvent struct {
	Event     VisualEvent
	Particles []Particle
	MountedAt time.Time

	// Pop-in scale, springs from 0 toward 1
	Scale    float64
	scaleVel float64
}

// Lifecycle owns the on-screen side of visual events: particle bursts, pop-in and the removal timer
type Lifecycle struct {
	scheduler  *Scheduler
	rng        Random
	spring     harmonica.Spring
	onComplete func(EventID)

	mounted map[EventID]*MountedEvent
	order   []EventID
}

// NewLifecycle creates a lifecycle manager, onComplete receives ids whose display time ran out
func NewLifecycle(scheduler *Scheduler, rng Random, onComplete func(EventID)) *Lifecycle {
	return &Lifecycle{
		scheduler:  scheduler,
		rng:        rng,
		spring:     harmonica.NewSpring(harmonica.FPS(int(time.Second/constants.FrameInterval)), constants.PopAngularFrequency, constants.PopDamping),
		onComplete: onComplete,
		mounted:    make(map[EventID]*MountedEvent),
	}
}

// Mount starts displaying ev at now: builds the particle burst and schedules removal
// Mounting an id that is already on screen returns the existing state
func (l *Lifecycle) Mount(ev VisualEvent, now time.Time) *MountedEvent {
	if m, ok := l.mounted[ev.ID]; ok {
		return m
	}

	m := &MountedEvent{
		Event:     ev,
		Particles: NewBurst(ev, l.rng),
		MountedAt: now,
	}
	l.mounted[ev.ID] = m
	l.order = append(l.order, ev.ID)

	id := ev.ID
	l.scheduler.Schedule(id, now.Add(constants.EventLifetime), func() {
		if l.onComplete != nil {
			l.onComplete(id)
		}
	})
	return m
}

// Unmount tears down an event early or after completion, cancelling any pending removal
func (l *Lifecycle) Unmount(id EventID) {
	l.scheduler.Cancel(id)
	if _, ok := l.mounted[id]; !ok {
		return
	}
	delete(l.mounted, id)
	for i, oid := range l.order {
		if oid == id {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
}

// Get returns the render state for id
func (l *Lifecycle) Get(id EventID) (*MountedEvent, bool) {
	m, ok := l.mounted[id]
	return m, ok
}

// Mounted returns events in mount order, oldest first
func (l *Lifecycle) Mounted() []*MountedEvent {
	out := make([]*MountedEvent, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, l.mounted[id])
	}
	return out
}

// Len returns the number of mounted events
func (l *Lifecycle) Len() int {
	return len(l.order)
}

// Update advances pop-in springs by one frame
func (l *Lifecycle) Update() {
	for _, id := range l.order {
		m := l.mounted[id]
		m.Scale, m.scaleVel = l.spring.Update(m.Scale, m.scaleVel, 1.0)
	}
}

// NewBurst generates the fixed radial particle burst for ev
func NewBurst(ev VisualEvent, rng Random) []Particle {
	particles := make([]Particle, constants.ParticleCount)
	for i := range particles {
		angle := 2 * math.Pi * float64(i) / constants.ParticleCount
		speed := constants.ParticleSpeedMin + rng.Float64()*constants.ParticleSpeedRange
		particles[i] = Particle{
			ID:       i,
			ParentID: ev.ID,
			Color:    ev.Color,
			VX:       math.Cos(angle) * speed,
			VY:       math.Sin(angle) * speed,
		}
	}
	return particles
}
