package game

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper/internal/mines"
)

var Log = logrus.New()

var ErrPaused = errors.New("game is paused")

// Game hosts the current session for a frontend. A frontend may read input
// and redraw on different goroutines, so every access goes through mu.
type Game struct {
	mu      sync.Mutex
	params  mines.GameParams
	rnd     mines.Source
	now     func() time.Time
	session *mines.Session
	score   Scoreboard
	paused  bool
	played  int
}

type Option func(*Game)

// WithClock replaces time.Now for the scoreboard.
func WithClock(now func() time.Time) Option {
	return func(g *Game) { g.now = now }
}

// WithSource replaces the random source derived from the params. The source
// is shared by every session the game starts.
func WithSource(rnd mines.Source) Option {
	return func(g *Game) { g.rnd = rnd }
}

func New(params mines.GameParams, opts ...Option) (*Game, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	g := &Game{params: params, now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	if g.rnd == nil {
		g.rnd = params.NewSource()
	}
	if err := g.reset(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) reset() error {
	session, err := mines.NewSession(g.params, g.rnd)
	if err != nil {
		return fmt.Errorf("unable to start session: %w", err)
	}
	g.session = session
	g.paused = false
	g.score.Start(g.now())
	g.played++
	Log.WithFields(logrus.Fields{
		"params": g.params.String(),
		"game":   g.played,
	}).Info("new game")
	return nil
}

// Reset replaces the session with a fresh one.
func (g *Game) Reset() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.reset()
}

func (g *Game) Click(x, y int, reveal bool) (mines.Outcome, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.paused {
		return g.session.Outcome(), ErrPaused
	}
	outcome, err := g.session.Click(x, y, reveal)
	if err != nil {
		return outcome, err
	}
	if outcome.Over() {
		g.score.Stop(g.now())
		Log.WithFields(logrus.Fields{
			"outcome": outcome.String(),
			"elapsed": g.score.String(g.now()),
		}).Info("game over")
	}
	return outcome, nil
}

// TogglePause pauses or resumes the clock and input. Finished games cannot
// be paused.
func (g *Game) TogglePause() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.session.Outcome().Over() {
		return false
	}
	g.paused = !g.paused
	if g.paused {
		g.score.Pause(g.now())
	} else {
		g.score.Resume(g.now())
	}
	return g.paused
}

func (g *Game) Outcome() mines.Outcome {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.session.Outcome()
}

func (g *Game) Paused() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.paused
}

type Status struct {
	Width, Height int
	Outcome       mines.Outcome
	Paused        bool
	Elapsed       time.Duration
	MinesLeft     int
	Remaining     int
	Played        int
	Grid          mines.Grid
}

// Status is a consistent snapshot for one frame.
func (g *Game) Status() Status {
	g.mu.Lock()
	defer g.mu.Unlock()

	board := g.session.Board()
	return Status{
		Width:     board.Width(),
		Height:    board.Height(),
		Outcome:   g.session.Outcome(),
		Paused:    g.paused,
		Elapsed:   g.score.Elapsed(g.now()),
		MinesLeft: g.session.MinesLeft(),
		Remaining: board.Remaining(),
		Played:    g.played,
		Grid:      g.session.Grid(),
	}
}

func (g *Game) Params() mines.GameParams {
	return g.params
}
