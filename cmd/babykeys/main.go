package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/babykeys/audio"
	"github.com/lixenwraith/babykeys/constants"
	"github.com/lixenwraith/babykeys/engine"
	"github.com/lixenwraith/babykeys/input"
	"github.com/lixenwraith/babykeys/render"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

var (
	debugFlag = flag.Bool("debug", false, "Write a debug log to logs/babykeys.log")
	muteFlag  = flag.Bool("mute", false, "Start with sound muted")
	seedFlag  = flag.Int64("seed", 0, "Random seed, 0 picks one from the clock")
)

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "babykeys: %v\n", err)
		if logFile != nil {
			logFile.Close()
		}
		os.Exit(1)
	}
}

func run() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("stdin is not a terminal")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init screen")
	}

	// Panic recovery: restore the terminal before printing anything
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			log.Printf("crashed: %v\n%s", r, debug.Stack())
			fmt.Fprintf(os.Stderr, "\n\x1b[31mBABYKEYS CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	screen.EnableMouse()
	screen.HideCursor()
	screen.Clear()

	rng := engine.NewRandom(*seedFlag)

	cfg := audio.LoadAudioConfig()
	if *muteFlag {
		cfg.Enabled = false
	}
	synth := audio.NewSynth(cfg, audio.NewSpeakerOutput(), rng)
	defer synth.Close()

	clock := engine.NewTimeProvider()
	ctx := engine.NewGameContext(clock, synth, rng)
	renderer := render.NewRenderer(screen)

	runLoop(screen, ctx, renderer, clock)
	return nil
}

// runLoop owns all game state; input arrives over a channel from the polling goroutine
func runLoop(screen tcell.Screen, ctx *engine.GameContext, renderer *render.Renderer, clock engine.Clock) {
	eventChan := make(chan tcell.Event, 256)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()

		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	frameTicker := time.NewTicker(constants.FrameInterval)
	defer frameTicker.Stop()

	var quit engine.QuitGuard
	var clicks input.ClickDetector

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if input.IsQuitKey(ev) {
					if quit.Press(clock.Now()) {
						log.Printf("exit chord, %d events active", len(ctx.Events()))
						ctx.ClearEvents()
						return
					}
				} else {
					quit.Reset()
				}
				ctx.HandleKey(input.Translate(ev))

			case *tcell.EventMouse:
				if x, y, ok := clicks.Click(ev); ok && renderer.MuteControlHit(x, y) {
					ctx.ToggleMute()
				}

			case *tcell.EventResize:
				screen.Sync()
			}

		case <-frameTicker.C:
			now := clock.Now()
			ctx.Tick(now)
			renderer.Draw(ctx, now)
		}
	}
}
