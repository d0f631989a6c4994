package engine

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/babykeys/constants"
)

func TestNewBurst(t *testing.T) {
	ev := VisualEvent{ID: 5, Color: 3}
	particles := NewBurst(ev, NewRandom(1))

	if len(particles) != 12 {
		t.Fatalf("Expected 12 particles, got %d", len(particles))
	}

	for i, p := range particles {
		if p.ID != i {
			t.Errorf("Particle %d has id %d", i, p.ID)
		}
		if p.ParentID != ev.ID {
			t.Errorf("Particle %d parent = %d, want %d", i, p.ParentID, ev.ID)
		}
		if p.Color != ev.Color {
			t.Errorf("Particle %d color = %d, want %d", i, p.Color, ev.Color)
		}
		if p.X != 0 || p.Y != 0 {
			t.Errorf("Particle %d should start at origin, got (%f,%f)", i, p.X, p.Y)
		}

		speed := math.Hypot(p.VX, p.VY)
		if speed < 10 || speed > 20 {
			t.Errorf("Particle %d speed %f outside [10,20]", i, speed)
		}

		wantAngle := 2 * math.Pi * float64(i) / 12
		gotAngle := math.Atan2(p.VY, p.VX)
		if gotAngle < 0 {
			gotAngle += 2 * math.Pi
		}
		if diff := math.Abs(gotAngle - wantAngle); diff > 1e-9 && math.Abs(diff-2*math.Pi) > 1e-9 {
			t.Errorf("Particle %d angle %f, want %f", i, gotAngle, wantAngle)
		}
	}
}

func TestNewBurstSpeedBounds(t *testing.T) {
	tests := []struct {
		name  string
		draw  float64
		speed float64
	}{
		{"Slowest", 0, 10},
		{"Middle", 0.5, 15},
		{"Fastest", 0.9999999, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, p := range NewBurst(VisualEvent{ID: 1}, FixedRandom(tt.draw)) {
				if speed := math.Hypot(p.VX, p.VY); math.Abs(speed-tt.speed) > 1e-4 {
					t.Errorf("Particle %d speed %f, want %f", p.ID, speed, tt.speed)
				}
			}
		})
	}
}

func TestLifecycleRemovalTiming(t *testing.T) {
	clock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	s := NewScheduler()

	var completed []EventID
	l := NewLifecycle(s, FixedRandom(0.5), func(id EventID) { completed = append(completed, id) })

	l.Mount(VisualEvent{ID: 1}, clock.Now())

	s.Run(clock.Advance(constants.EventLifetime - time.Millisecond))
	if len(completed) != 0 {
		t.Fatalf("Removal fired early at %v", constants.EventLifetime-time.Millisecond)
	}

	s.Run(clock.Advance(time.Millisecond))
	if len(completed) != 1 || completed[0] != 1 {
		t.Fatalf("Expected completion of event 1 at 1.5s, got %v", completed)
	}

	s.Run(clock.Advance(10 * time.Second))
	if len(completed) != 1 {
		t.Errorf("Completion fired more than once: %v", completed)
	}
}

func TestLifecycleUnmountCancels(t *testing.T) {
	clock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	s := NewScheduler()

	calls := 0
	l := NewLifecycle(s, FixedRandom(0.5), func(EventID) { calls++ })

	l.Mount(VisualEvent{ID: 9}, clock.Now())
	if !s.Pending(9) {
		t.Fatal("Expected removal to be scheduled on mount")
	}

	l.Unmount(9)
	if s.Pending(9) {
		t.Error("Expected unmount to cancel the pending removal")
	}
	if l.Len() != 0 {
		t.Errorf("Expected no mounted events, got %d", l.Len())
	}

	s.Run(clock.Advance(time.Minute))
	if calls != 0 {
		t.Errorf("Cancelled removal still called back %d times", calls)
	}

	// Unknown id
	l.Unmount(12345)
}

func TestLifecycleMountIdempotent(t *testing.T) {
	clock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	l := NewLifecycle(NewScheduler(), FixedRandom(0.2), nil)

	first := l.Mount(VisualEvent{ID: 4}, clock.Now())
	second := l.Mount(VisualEvent{ID: 4}, clock.Advance(time.Second))

	if first != second {
		t.Error("Expected mounting the same id to return the existing state")
	}
	if l.Len() != 1 {
		t.Errorf("Expected one mounted event, got %d", l.Len())
	}
}

func TestLifecycleOrderAndSpring(t *testing.T) {
	clock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	l := NewLifecycle(NewScheduler(), FixedRandom(0.5), nil)

	for id := EventID(1); id <= 3; id++ {
		l.Mount(VisualEvent{ID: id}, clock.Now())
	}
	l.Unmount(2)

	mounted := l.Mounted()
	if len(mounted) != 2 || mounted[0].Event.ID != 1 || mounted[1].Event.ID != 3 {
		t.Fatalf("Unexpected mount order after unmount")
	}

	if mounted[0].Scale != 0 {
		t.Errorf("Expected pop-in to start at scale 0, got %f", mounted[0].Scale)
	}

	peak := 0.0
	for i := 0; i < 120; i++ {
		l.Update()
		peak = math.Max(peak, mounted[0].Scale)
	}

	if peak <= 1.0 {
		t.Errorf("Expected under-damped pop to overshoot, peak %f", peak)
	}
	if math.Abs(mounted[0].Scale-1.0) > 0.05 {
		t.Errorf("Expected pop-in to settle near 1, got %f", mounted[0].Scale)
	}
}
