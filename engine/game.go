package engine

import (
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/vi-pong/config"
	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/physics"
	"github.com/lixenwraith/vi-pong/status"
	"github.com/lixenwraith/vi-pong/systems"
	"github.com/lixenwraith/vi-pong/vmath"
)

// Game owns one GameState and advances it tick by tick
// All methods except SetPlayer1PaddleTarget must be called from the owning goroutine
type Game struct {
	state   core.GameState
	rng     vmath.SignSource
	matchID uuid.UUID
	tick    uint64

	mailbox    paddleMailbox
	onFinished func(core.MatchResult)

	// Cached metric pointers
	statusReg       *status.Registry
	statTicks       *atomic.Int64
	statMatches     *atomic.Int64
	statPaddleHits  *atomic.Int64
	statWallBounces *atomic.Int64
	statScores      *atomic.Int64
	statRunning     *atomic.Bool
	statSpeed       *status.AtomicFloat
}

// Option configures a Game at construction
type Option func(*Game)

// WithRand injects the bounce direction source
func WithRand(rng vmath.SignSource) Option {
	return func(g *Game) { g.rng = rng }
}

// WithRegistry publishes game metrics into reg
func WithRegistry(reg *status.Registry) Option {
	return func(g *Game) { g.statusReg = reg }
}

// WithMatchFinished registers the terminal match notification
// Called on the owning goroutine exactly once per finished match
func WithMatchFinished(fn func(core.MatchResult)) Option {
	return func(g *Game) { g.onFinished = fn }
}

// New creates an idle game with centered paddles and ball
func New(cfg config.Config, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	g := &Game{}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		g.rng = vmath.NewFastRand(seed)
	}
	if g.statusReg == nil {
		g.statusReg = status.NewRegistry()
	}

	g.statTicks = g.statusReg.Ints.Get(status.KeyTicks)
	g.statMatches = g.statusReg.Ints.Get(status.KeyMatches)
	g.statPaddleHits = g.statusReg.Ints.Get(status.KeyPaddleHits)
	g.statWallBounces = g.statusReg.Ints.Get(status.KeyWallBounces)
	g.statScores = g.statusReg.Ints.Get(status.KeyScoreEvents)
	g.statRunning = g.statusReg.Bools.Get(status.KeyRunning)
	g.statSpeed = g.statusReg.Floats.Get(status.KeyBallSpeed)

	field := core.Field{Width: cfg.Field.Width, Height: cfg.Field.Height}
	g.state = core.GameState{
		Field:   field,
		Player1: core.NewPaddle(core.SideLeft, cfg.Paddle.Width, cfg.Paddle.Height, field),
		Player2: core.NewPaddle(core.SideRight, cfg.Paddle.Width, cfg.Paddle.Height, field),
		Ball:    core.Ball{Radius: cfg.Ball.Radius},
		Match:   core.MatchIdle,
		Status:  constants.StatusIdle,
	}
	physics.ResetBall(&g.state.Ball, field, g.rng)
	g.statSpeed.Set(g.state.Ball.Speed)

	return g, nil
}

// Registry returns the metrics registry the game writes to
func (g *Game) Registry() *status.Registry {
	return g.statusReg
}

// SetPlayer1PaddleTarget posts the pointer's vertical field position
// The paddle centers on y at the next tick, clamped to the field; safe from any goroutine
func (g *Game) SetPlayer1PaddleTarget(y float64) {
	g.mailbox.Put(y)
}

// Start begins a new match from Idle or Finished; ignored while Running
func (g *Game) Start() bool {
	if g.state.Match == core.MatchRunning {
		return false
	}

	// Pointer motion while not running is not applied
	g.mailbox.Take()

	g.state.Score = core.Score{}
	physics.ResetBall(&g.state.Ball, g.state.Field, g.rng)
	g.state.Match = core.MatchRunning
	g.state.Status = constants.StatusRunning
	g.matchID = uuid.New()

	g.statMatches.Add(1)
	g.statRunning.Store(true)
	g.statSpeed.Set(g.state.Ball.Speed)
	log.Printf("[GAME] match %s started", g.matchID)
	return true
}

// Reset returns to Idle with zero scores, centered paddles and a centered ball
func (g *Game) Reset() {
	g.mailbox.Take()

	g.state.Score = core.Score{}
	physics.ResetBall(&g.state.Ball, g.state.Field, g.rng)
	g.state.Player1.Center(g.state.Field)
	g.state.Player2.Center(g.state.Field)
	g.state.Match = core.MatchIdle
	g.state.Status = constants.StatusReset
	g.matchID = uuid.Nil

	g.statRunning.Store(false)
	g.statSpeed.Set(g.state.Ball.Speed)
	log.Printf("[GAME] reset")
}

// Resize adapts the field to new dimensions, leaving state untouched on error
func (g *Game) Resize(width, height float64) error {
	s, err := systems.Resize(width, height, g.state)
	if err != nil {
		return err
	}
	g.state = s
	return nil
}

// Tick advances one simulation step
// Returns false without doing any work when the match is not running,
// and false after the step that finishes the match
func (g *Game) Tick() bool {
	if g.state.Match != core.MatchRunning {
		return false
	}
	g.tick++
	g.statTicks.Add(1)

	if y, ok := g.mailbox.Take(); ok {
		g.state.Player1.Y = y - g.state.Player1.Height/2
		g.state.Player1.Clamp(g.state.Field)
	}

	s, contacts := physics.Advance(g.state, g.rng)
	s = systems.UpdateAIPaddle(s)
	s, ev, scored := systems.CheckScoring(s, g.rng)
	g.state = s

	if contacts.Wall {
		g.statWallBounces.Add(1)
	}
	g.statPaddleHits.Add(int64(contacts.PaddleHits()))
	g.statSpeed.Set(s.Ball.Speed)

	if scored {
		g.statScores.Add(1)
		log.Printf("[SCORE] player %d scored, %s", ev.Scorer, ev.Score)
		if ev.Winner != core.PlayerNone {
			g.finish(ev.Winner)
		}
	}
	return g.state.Match == core.MatchRunning
}

func (g *Game) finish(winner core.Player) {
	g.statRunning.Store(false)
	result := core.MatchResult{
		MatchID: g.matchID,
		Winner:  winner,
		Score:   g.state.Score,
	}
	log.Printf("[GAME] match %s finished: %s", result.MatchID, result.Message())
	if g.onFinished != nil {
		g.onFinished(result)
	}
}

// Running reports whether ticks currently advance the simulation
func (g *Game) Running() bool {
	return g.state.Match == core.MatchRunning
}

// State returns a copy of the current simulation state
func (g *Game) State() core.GameState {
	return g.state
}

// Snapshot returns the render view of the current state
func (g *Game) Snapshot() Snapshot {
	return newSnapshot(g.state, g.matchID, g.tick)
}
