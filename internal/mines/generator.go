package mines

import (
	"fmt"
	"hash/maphash"
	"math/rand/v2"
)

const (
	DefaultWidth       = 20
	DefaultHeight      = 20
	DefaultProbability = 0.065
)

// GameParams are fixed for the lifetime of a session.
type GameParams struct {
	Width, Height int
	Probability   float64
	// Seed selects a deterministic layout. Nil means a random one.
	Seed *uint64
}

func DefaultParams() GameParams {
	return GameParams{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		Probability: DefaultProbability,
	}
}

func (p GameParams) Validate() error {
	if p.Width <= 0 || p.Height <= 0 || p.Probability < 0 || p.Probability >= 1 {
		return InvalidParamsError{p}
	}
	return nil
}

func (p GameParams) String() string {
	seed := "random"
	if p.Seed != nil {
		seed = fmt.Sprint(*p.Seed)
	}
	return fmt.Sprintf("%dx%d p=%g seed=%s", p.Width, p.Height, p.Probability, seed)
}

// Source feeds the per-cell Bernoulli trials of the mine layout.
// *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// NewSource returns the random source described by the params: seeded PCG
// when Seed is set, otherwise one seeded from the runtime hash seed.
func (p GameParams) NewSource() *rand.Rand {
	if p.Seed != nil {
		return rand.New(rand.NewPCG(*p.Seed, *p.Seed))
	}
	return createRand()
}

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}
