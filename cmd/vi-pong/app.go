package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pong/config"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/input"
	"github.com/lixenwraith/vi-pong/render"
	"github.com/lixenwraith/vi-pong/status"
)

// app wires the terminal to the game loop
// All fields are owned by the run goroutine except sched, which is goroutine-safe
type app struct {
	screen     tcell.Screen
	cfg        config.Config
	sched      *engine.ClockScheduler
	renderer   *render.Renderer
	translator *input.Translator
	registry   *status.Registry

	viewport render.Viewport
	dialog   *render.Dialog

	// finished carries match results from the scheduler goroutine
	finished chan core.MatchResult
}

func newApp(screen tcell.Screen, cfg config.Config) (*app, error) {
	a := &app{
		screen:     screen,
		cfg:        cfg,
		renderer:   render.NewRenderer(screen),
		translator: input.NewTranslator(nil),
		registry:   status.NewRegistry(),
		finished:   make(chan core.MatchResult, 1),
	}

	game, err := engine.New(cfg,
		engine.WithRegistry(a.registry),
		engine.WithMatchFinished(func(r core.MatchResult) {
			select {
			case a.finished <- r:
			default:
			}
		}),
	)
	if err != nil {
		return nil, err
	}
	a.sched = engine.NewClockScheduler(game, cfg.TickInterval.Duration)

	if cfg.Terminal.Mouse {
		screen.EnableMouse(tcell.MouseMotionEvents)
	}
	screen.HideCursor()

	a.resize(screen.Size())
	return a, nil
}

// run blocks until the user quits or the terminal closes
func (a *app) run() {
	a.sched.Start()
	defer a.sched.Stop()

	frameTicker := time.NewTicker(a.cfg.Terminal.FrameInterval.Duration)
	defer frameTicker.Stop()

	events := make(chan tcell.Event, 64)
	closed := make(chan struct{})
	done := make(chan struct{})
	defer close(done)
	core.Go(func() {
		defer close(closed)
		a.pollEvents(events, done)
	})

	a.draw()
	for {
		select {
		case ev := <-events:
			if !a.handle(a.translator.Translate(ev)) {
				return
			}
		case r := <-a.finished:
			log.Printf("[UI] match %s finished: %s", r.MatchID, r.Message())
			a.dialog = render.GameOverDialog(r)
		case <-frameTicker.C:
			a.draw()
		case <-closed:
			return
		}
	}
}

// pollEvents forwards terminal events until the screen closes or done is closed
func (a *app) pollEvents(events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := a.screen.PollEvent()
		// nil after Fini
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// handle applies one intent; returns false to quit
func (a *app) handle(in input.Intent) bool {
	if in.Type == input.IntentQuit {
		return false
	}

	if a.dialog != nil {
		switch in.Type {
		case input.IntentNone, input.IntentPointer, input.IntentResize:
		default:
			a.dialog = nil
			return true
		}
	}

	switch in.Type {
	case input.IntentStart:
		a.sched.RequestStart()
	case input.IntentReset:
		a.sched.RequestReset()
	case input.IntentHelp:
		a.dialog = render.HelpDialog()
	case input.IntentPointer:
		a.sched.SetPlayer1PaddleTarget(a.viewport.RowToFieldY(in.Row))
	case input.IntentPaddleUp:
		a.nudge(-a.cfg.Terminal.CellHeight)
	case input.IntentPaddleDown:
		a.nudge(a.cfg.Terminal.CellHeight)
	case input.IntentResize:
		a.resize(in.Width, in.Height)
	}
	return true
}

// nudge moves the player paddle by dy field units from its last published position
func (a *app) nudge(dy float64) {
	snap := a.sched.Snapshot()
	a.sched.SetPlayer1PaddleTarget(snap.Paddle1.CenterY() + dy)
}

// resize maps the new terminal size onto a field; a window too small for the
// paddles or ball keeps the previous viewport and field
func (a *app) resize(width, height int) {
	defer a.screen.Sync()

	vp := render.NewViewport(width, height, a.cfg.Terminal.CellWidth, a.cfg.Terminal.CellHeight)
	fw, fh := vp.FieldSize()
	if err := a.cfg.FieldFits(fw, fh); err != nil {
		log.Printf("[UI] terminal %dx%d too small, keeping field: %v", width, height, err)
		return
	}

	a.viewport = vp
	a.sched.RequestResize(fw, fh)
	log.Printf("[UI] terminal %dx%d, field %.0fx%.0f", width, height, fw, fh)
}

func (a *app) draw() {
	hits := a.registry.Ints.Get(status.KeyPaddleHits).Load()
	speed := a.registry.Floats.Get(status.KeyBallSpeed).Get()

	a.renderer.Draw(render.Frame{
		Snapshot: a.sched.Snapshot(),
		Viewport: a.viewport,
		Dialog:   a.dialog,
		Metrics:  fmt.Sprintf("hits %d  speed %.1f", hits, speed),
	})
}
