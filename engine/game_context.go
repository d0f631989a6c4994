package engine

import (
	"log"
	"time"

	"github.com/lixenwraith/babykeys/constants"
)

// SoundPlayer is the audio side of a key press
type SoundPlayer interface {
	PlayNote(seed int)
	PlaySpaceSound()
	ToggleMute() bool
	IsMuted() bool
}

// GameContext holds all toy state and wires input to mapper, lifecycle and sound
// Main-loop exclusive: every method must be called from the goroutine that owns the screen
type GameContext struct {
	Clock     Clock
	Sound     SoundPlayer
	Mapper    *Mapper
	Lifecycle *Lifecycle
	Scheduler *Scheduler

	events          []VisualEvent
	backgroundIndex int
	started         bool
}

// NewGameContext creates a context with a fresh scheduler and lifecycle
func NewGameContext(clock Clock, sound SoundPlayer, rng Random) *GameContext {
	ctx := &GameContext{
		Clock:     clock,
		Sound:     sound,
		Mapper:    NewMapper(rng),
		Scheduler: NewScheduler(),
	}
	ctx.Lifecycle = NewLifecycle(ctx.Scheduler, rng, ctx.RemoveEvent)
	return ctx
}

// HandleKey processes one key press: sound, visual event, background
func (ctx *GameContext) HandleKey(k KeyPress) VisualEvent {
	if !ctx.started {
		ctx.started = true
		log.Printf("session started by key %q", k.Key)
	}

	if ctx.Sound != nil {
		if k.IsSpace() {
			ctx.Sound.PlaySpaceSound()
		} else {
			ctx.Sound.PlayNote(k.Code)
		}
	}

	ev := ctx.Mapper.NewVisualEvent(k)
	ctx.events = append(ctx.events, ev)
	ctx.Lifecycle.Mount(ev, ctx.Clock.Now())

	if ctx.Mapper.ShouldAdvanceBackground(k) {
		ctx.backgroundIndex = (ctx.backgroundIndex + 1) % constants.PaletteSize
	}

	return ev
}

// RemoveEvent drops id from the active set, unknown ids are ignored
func (ctx *GameContext) RemoveEvent(id EventID) {
	kept := ctx.events[:0]
	for _, ev := range ctx.events {
		if ev.ID != id {
			kept = append(kept, ev)
		}
	}
	// Clear the tail so removed events are not retained by the backing array
	for i := len(kept); i < len(ctx.events); i++ {
		ctx.events[i] = VisualEvent{}
	}
	ctx.events = kept
	ctx.Lifecycle.Unmount(id)
}

// ClearEvents removes every active event and cancels their pending removals
func (ctx *GameContext) ClearEvents() {
	for _, ev := range ctx.events {
		ctx.Lifecycle.Unmount(ev.ID)
	}
	ctx.events = nil
}

// Tick runs due removals and advances animations
func (ctx *GameContext) Tick(now time.Time) {
	ctx.Scheduler.Run(now)
	ctx.Lifecycle.Update()
}

// ToggleMute flips the sound mute flag, returns the new state
func (ctx *GameContext) ToggleMute() bool {
	if ctx.Sound == nil {
		return true
	}
	muted := ctx.Sound.ToggleMute()
	log.Printf("mute toggled: %v", muted)
	return muted
}

// IsMuted reports the sound mute flag
func (ctx *GameContext) IsMuted() bool {
	return ctx.Sound == nil || ctx.Sound.IsMuted()
}

// Events returns the active events in creation order
func (ctx *GameContext) Events() []VisualEvent {
	return ctx.events
}

// BackgroundIndex returns the current palette index of the background overlay
func (ctx *GameContext) BackgroundIndex() int {
	return ctx.backgroundIndex
}

// Started reports whether any key has been pressed yet
func (ctx *GameContext) Started() bool {
	return ctx.started
}
