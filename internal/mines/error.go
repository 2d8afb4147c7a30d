package mines

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfBounds = errors.New("coordinates out of bounds")
	ErrGameOver    = errors.New("game is over")
)

type AssertionError struct {
	message string
}

// [AssertionError] implements [error]
func (e AssertionError) Error() string {
	return e.message
}

type OutOfBoundsError struct {
	X, Y          int
	Width, Height int
}

func (e OutOfBoundsError) Error() string {
	return fmt.Sprintf(
		"cell (%d, %d) is outside of %dx%d board", e.X, e.Y, e.Width, e.Height,
	)
}

func (e OutOfBoundsError) Unwrap() error {
	return ErrOutOfBounds
}

type InvalidParamsError struct {
	Params GameParams
}

func (e InvalidParamsError) Error() string {
	p := e.Params
	switch {
	case p.Width <= 0:
		return fmt.Sprintf("cannot create a board with width %d", p.Width)
	case p.Height <= 0:
		return fmt.Sprintf("cannot create a board with height %d", p.Height)
	case p.Probability < 0 || p.Probability >= 1:
		return fmt.Sprintf("mine probability %g is not in [0, 1)", p.Probability)
	default:
		return "invalid game params"
	}
}
