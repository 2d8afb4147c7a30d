package mines

type State int8

const (
	Hidden State = iota
	Revealed
	Flagged
	Exploded
)

func (s State) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Revealed:
		return "revealed"
	case Flagged:
		return "flagged"
	case Exploded:
		return "exploded"
	default:
		return "invalid"
	}
}

// Response is what a single cell reports back to the board after a click.
type Response int8

const (
	Nothing Response = iota
	RevealedResponse
	ExplodedResponse
)

func (r Response) String() string {
	switch r {
	case Nothing:
		return "nothing"
	case RevealedResponse:
		return "revealed"
	case ExplodedResponse:
		return "exploded"
	default:
		return "invalid"
	}
}

type Cell struct {
	X, Y     int
	bomb     bool
	adjacent int
	state    State
}

func (c *Cell) State() State { return c.state }

func (c *Cell) Bomb() bool { return c.bomb }

// Adjacent is only meaningful once the board layout has been committed.
func (c *Cell) Adjacent() int { return c.adjacent }

func (c *Cell) Revealable() bool {
	return c.state == Hidden && !c.bomb
}

// Click applies a reveal or flag toggle. A safe reveal leaves the cell Hidden
// and returns RevealedResponse: the board finishes it with Reveal once the
// flood fill reaches it.
func (c *Cell) Click(reveal bool) Response {
	if !reveal {
		switch c.state {
		case Hidden:
			c.state = Flagged
		case Flagged:
			c.state = Hidden
		}
		return Nothing
	}
	if c.state != Hidden {
		return Nothing
	}
	if c.bomb {
		c.state = Exploded
		return ExplodedResponse
	}
	return RevealedResponse
}

// Reveal reports whether the cell actually changed.
func (c *Cell) Reveal() bool {
	if c.state != Hidden {
		return false
	}
	c.state = Revealed
	return true
}
