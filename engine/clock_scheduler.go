package engine

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vi-pong/core"
)

type commandKind uint8

const (
	cmdStart commandKind = iota
	cmdReset
	cmdResize
)

type command struct {
	kind          commandKind
	width, height float64
}

// ClockScheduler drives a Game on a fixed tick from its own goroutine
// The game is only touched by the scheduler loop; other goroutines post commands
// and read the latest published Snapshot
type ClockScheduler struct {
	game         *Game
	tickInterval time.Duration

	commands chan command
	snapshot atomic.Pointer[Snapshot]
	onFrame  func(Snapshot)

	// Drift correction, owned by the loop
	nextTickDeadline time.Time

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

// NewClockScheduler creates a scheduler for game; the game must not be used directly afterwards
func NewClockScheduler(game *Game, tickInterval time.Duration) *ClockScheduler {
	cs := &ClockScheduler{
		game:         game,
		tickInterval: tickInterval,
		commands:     make(chan command, 16),
		stopChan:     make(chan struct{}),
	}
	snap := game.Snapshot()
	cs.snapshot.Store(&snap)
	return cs
}

// SetFrameHandler registers a callback invoked on the scheduler goroutine
// after every tick or command; must be called before Start
func (cs *ClockScheduler) SetFrameHandler(fn func(Snapshot)) {
	cs.onFrame = fn
}

// Start begins the scheduler loop
func (cs *ClockScheduler) Start() {
	if cs.running.CompareAndSwap(false, true) {
		cs.wg.Add(1)
		core.Go(cs.schedulerLoop)
	}
}

// Stop halts the scheduler loop and waits for it to exit
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		close(cs.stopChan)
		if cs.running.CompareAndSwap(true, false) {
			cs.wg.Wait()
		}
	})
}

// RequestStart asks the loop to start a match
func (cs *ClockScheduler) RequestStart() {
	cs.post(command{kind: cmdStart})
}

// RequestReset asks the loop to reset to Idle
func (cs *ClockScheduler) RequestReset() {
	cs.post(command{kind: cmdReset})
}

// RequestResize asks the loop to adapt the field to new dimensions
func (cs *ClockScheduler) RequestResize(width, height float64) {
	cs.post(command{kind: cmdResize, width: width, height: height})
}

// SetPlayer1PaddleTarget forwards pointer input to the game's mailbox
func (cs *ClockScheduler) SetPlayer1PaddleTarget(y float64) {
	cs.game.SetPlayer1PaddleTarget(y)
}

// Snapshot returns the most recently published state
func (cs *ClockScheduler) Snapshot() Snapshot {
	return *cs.snapshot.Load()
}

func (cs *ClockScheduler) post(cmd command) {
	select {
	case cs.commands <- cmd:
	case <-cs.stopChan:
	}
}

// schedulerLoop arms the tick timer only while the match is running
// A tick that leaves the match stopped does not reschedule
func (cs *ClockScheduler) schedulerLoop() {
	defer cs.wg.Done()
	log.Printf("[SCHEDULER] started, interval %v", cs.tickInterval)
	defer func() { log.Printf("[SCHEDULER] stopped, metrics: %s", cs.game.Registry()) }()

	timer := time.NewTimer(cs.tickInterval)
	timer.Stop()
	defer timer.Stop()

	var tickC <-chan time.Time
	arm := func() {
		cs.nextTickDeadline = time.Now().Add(cs.tickInterval)
		timer.Reset(cs.tickInterval)
		tickC = timer.C
	}

	if cs.game.Running() {
		arm()
	}

	for {
		select {
		case <-cs.stopChan:
			return

		case cmd := <-cs.commands:
			cs.execute(cmd)
			cs.publish()
			if tickC == nil && cs.game.Running() {
				arm()
			}

		case <-tickC:
			tickC = nil
			running := cs.game.Tick()
			cs.publish()
			if running {
				cs.rearm(timer)
				tickC = timer.C
			}
		}
	}
}

// rearm schedules the next tick against the deadline, resyncing when far behind
func (cs *ClockScheduler) rearm(timer *time.Timer) {
	now := time.Now()
	cs.nextTickDeadline = cs.nextTickDeadline.Add(cs.tickInterval)
	if now.Sub(cs.nextTickDeadline) > cs.tickInterval*2 {
		cs.nextTickDeadline = now.Add(cs.tickInterval)
	}
	wait := cs.nextTickDeadline.Sub(now)
	if wait < 0 {
		wait = 0
	}
	timer.Reset(wait)
}

func (cs *ClockScheduler) execute(cmd command) {
	switch cmd.kind {
	case cmdStart:
		cs.game.Start()
	case cmdReset:
		cs.game.Reset()
	case cmdResize:
		if err := cs.game.Resize(cmd.width, cmd.height); err != nil {
			log.Printf("[SCHEDULER] resize rejected: %v", err)
		}
	}
}

func (cs *ClockScheduler) publish() {
	snap := cs.game.Snapshot()
	cs.snapshot.Store(&snap)
	if cs.onFrame != nil {
		cs.onFrame(snap)
	}
}
