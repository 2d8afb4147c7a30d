package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCellClick(t *testing.T) {
	tests := []struct {
		name     string
		cell     Cell
		reveal   bool
		response Response
		state    State
	}{
		{"hidden safe reveal", Cell{}, true, RevealedResponse, Hidden},
		{"hidden bomb reveal", Cell{bomb: true}, true, ExplodedResponse, Exploded},
		{"hidden flag", Cell{}, false, Nothing, Flagged},
		{"flagged unflag", Cell{state: Flagged}, false, Nothing, Hidden},
		{"flagged reveal", Cell{state: Flagged}, true, Nothing, Flagged},
		{"flagged bomb reveal", Cell{bomb: true, state: Flagged}, true, Nothing, Flagged},
		{"revealed reveal", Cell{state: Revealed}, true, Nothing, Revealed},
		{"revealed flag", Cell{state: Revealed}, false, Nothing, Revealed},
		{"exploded reveal", Cell{bomb: true, state: Exploded}, true, Nothing, Exploded},
		{"exploded flag", Cell{bomb: true, state: Exploded}, false, Nothing, Exploded},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c := test.cell
			assert.Equal(t, test.response, c.Click(test.reveal))
			assert.Equal(t, test.state, c.State())
		})
	}
}

func TestCellFlagRoundTrip(t *testing.T) {
	c := Cell{X: 3, Y: 4, adjacent: 2}
	orig := c
	c.Click(false)
	assert.Equal(t, Flagged, c.State())
	c.Click(false)
	assert.Equal(t, orig, c)
}

func TestCellReveal(t *testing.T) {
	c := Cell{}
	assert.True(t, c.Revealable())
	assert.True(t, c.Reveal())
	assert.Equal(t, Revealed, c.State())
	assert.False(t, c.Reveal())
	assert.False(t, c.Revealable())

	f := Cell{state: Flagged}
	assert.False(t, f.Revealable())
	assert.False(t, f.Reveal())
	assert.Equal(t, Flagged, f.State())

	b := Cell{bomb: true}
	assert.False(t, b.Revealable())
}
