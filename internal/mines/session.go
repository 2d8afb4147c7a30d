package mines

import (
	"fmt"
	"log/slog"
)

// Session is a single game: the mine layout is deferred until the first
// reveal so that the first opened cell is never a bomb.
type Session struct {
	params      GameParams
	board       *Board
	initialized bool
	outcome     Outcome
}

func NewSession(params GameParams, rnd Source) (*Session, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if rnd == nil {
		rnd = params.NewSource()
	}
	board, err := NewBoard(params.Width, params.Height, rnd)
	if err != nil {
		return nil, err
	}
	return &Session{params: params, board: board}, nil
}

func (s *Session) Params() GameParams { return s.params }

func (s *Session) Board() *Board { return s.board }

func (s *Session) Initialized() bool { return s.initialized }

func (s *Session) Outcome() Outcome { return s.outcome }

// Click reveals (reveal = true) or toggles a flag on the cell at column x,
// row y. Once the session is won or lost it rejects clicks with ErrGameOver.
func (s *Session) Click(x, y int, reveal bool) (Outcome, error) {
	if s.outcome.Over() {
		return s.outcome, ErrGameOver
	}
	if err := s.board.checkBounds(x, y); err != nil {
		return s.outcome, err
	}

	if reveal && !s.initialized {
		if err := s.board.Initialize(x, y, s.params.Probability); err != nil {
			return s.outcome, fmt.Errorf("unable to lay out mines: %w", err)
		}
		s.initialized = true
	}

	outcome, err := s.board.Click(x, y, reveal)
	if err != nil {
		return s.outcome, err
	}
	s.outcome = outcome

	if outcome.Over() {
		Log.Info("game over",
			slog.String("outcome", outcome.String()),
			slog.Int("x", x),
			slog.Int("y", y),
		)
	}
	return outcome, nil
}

// Plant fixes the mine layout up front instead of rolling it on the first
// reveal.
func (s *Session) Plant(mines ...Point) error {
	if err := s.board.Plant(mines...); err != nil {
		return err
	}
	s.initialized = true
	return nil
}

// Grid is the player view; after the game ends it also exposes the mines.
func (s *Session) Grid() Grid {
	if s.outcome.Over() {
		return s.board.Exposed()
	}
	return s.board.Grid()
}

// MinesLeft is the bomb count minus placed flags, zero before the layout
// exists.
func (s *Session) MinesLeft() int {
	if !s.initialized {
		return 0
	}
	return s.board.Bombs() - s.board.Flags()
}
