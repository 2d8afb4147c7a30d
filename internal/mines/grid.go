package mines

import (
	"fmt"
	"strconv"
	"strings"
)

// CellView is the read-only face of a cell. Bomb is only reported for cells
// the player has already opened.
type CellView struct {
	X, Y     int
	State    State
	Bomb     bool
	Adjacent int
}

func (c *Cell) view() CellView {
	v := CellView{X: c.X, Y: c.Y, State: c.state}
	switch c.state {
	case Revealed:
		v.Adjacent = c.adjacent
	case Exploded:
		v.Bomb = true
	}
	return v
}

type CellStatus int8

const (
	Unknown       CellStatus = -2
	Flag          CellStatus = -1
	CorrectFlag   CellStatus = 64 // post-game-over
	ExplodedMine  CellStatus = 65
	WrongFlag     CellStatus = 66
	UnflaggedMine CellStatus = 67
	// 0-8 for an open cell with the given number of mined neighbors
)

func (s CellStatus) String() string {
	switch s {
	case Unknown:
		return "."
	case Flag:
		return "F"
	case 0:
		return " "
	case 1, 2, 3, 4, 5, 6, 7, 8:
		return strconv.Itoa(int(s))
	case CorrectFlag:
		return "+"
	case ExplodedMine:
		return "X"
	case WrongFlag:
		return "x"
	case UnflaggedMine:
		return "*"
	default:
		return "!"
	}
}

func (s CellStatus) Open() bool {
	return 0 <= s && s <= 8
}

type Grid []CellStatus

func (g Grid) String(width int) string {
	var b strings.Builder
	fmt.Fprint(&b, "   ")
	for x := range width {
		fmt.Fprintf(&b, "%d ", x%10)
	}
	fmt.Fprint(&b, "\n")
	for y := range len(g) / width {
		fmt.Fprintf(&b, "%2d ", y)
		for x := range width {
			fmt.Fprint(&b, g[y*width+x].String()+" ")
		}
		fmt.Fprint(&b, "\n")
	}
	return b.String()
}

// Diff lists the indices whose status differs from prev. A prev of another
// length (e.g. the first frame) marks every cell dirty.
func (g Grid) Diff(prev Grid) []int {
	dirty := make([]int, 0)
	if len(prev) != len(g) {
		for i := range g {
			dirty = append(dirty, i)
		}
		return dirty
	}
	for i := range g {
		if g[i] != prev[i] {
			dirty = append(dirty, i)
		}
	}
	return dirty
}

// Grid is the player's knowledge of the board.
func (b *Board) Grid() Grid {
	g := make(Grid, len(b.cells))
	for i := range b.cells {
		c := &b.cells[i]
		switch c.state {
		case Hidden:
			g[i] = Unknown
		case Flagged:
			g[i] = Flag
		case Revealed:
			g[i] = CellStatus(c.adjacent)
		case Exploded:
			g[i] = ExplodedMine
		}
	}
	return g
}

// Exposed is Grid with every mine and every wrong flag shown, for display
// once the game is over. The board itself is not modified.
func (b *Board) Exposed() Grid {
	g := b.Grid()
	for i := range b.cells {
		c := &b.cells[i]
		switch {
		case c.state == Flagged && c.bomb:
			g[i] = CorrectFlag
		case c.state == Flagged:
			g[i] = WrongFlag
		case c.state == Hidden && c.bomb:
			g[i] = UnflaggedMine
		}
	}
	return g
}
