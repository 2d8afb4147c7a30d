package mines

import (
	"fmt"
	"log/slog"
)

var Log *slog.Logger = slog.Default()

type Outcome int8

const (
	Active Outcome = iota
	Victory
	Defeat
)

func (o Outcome) String() string {
	switch o {
	case Active:
		return "active"
	case Victory:
		return "victory"
	case Defeat:
		return "defeat"
	default:
		return "invalid"
	}
}

func (o Outcome) Over() bool {
	return o != Active
}

type Point struct {
	X, Y int
}

// Board is a fixed-size grid of cells stored row-major, with each cell's
// Moore neighborhood cached as indices into the same slice.
type Board struct {
	width, height int
	cells         []Cell
	neighbors     [][]int
	rnd           Source

	laidOut   bool
	bombs     int
	remaining int /* safe cells still hidden */
}

func NewBoard(width, height int, rnd Source) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, InvalidParamsError{GameParams{Width: width, Height: height}}
	}
	if rnd == nil {
		rnd = createRand()
	}
	b := &Board{
		width:     width,
		height:    height,
		cells:     make([]Cell, width*height),
		neighbors: make([][]int, width*height),
		rnd:       rnd,
	}
	for y := range height {
		for x := range width {
			i := y*width + x
			b.cells[i] = Cell{X: x, Y: y}
			ns := make([]int, 0, 8)
			for dy := -1; dy <= +1; dy++ {
				for dx := -1; dx <= +1; dx++ {
					if (dx != 0 || dy != 0) && b.InBounds(x+dx, y+dy) {
						ns = append(ns, (y+dy)*width+(x+dx))
					}
				}
			}
			b.neighbors[i] = ns
		}
	}
	return b, nil
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

// Remaining is the number of safe cells that are still hidden.
func (b *Board) Remaining() int { return b.remaining }

func (b *Board) Bombs() int { return b.bombs }

func (b *Board) LaidOut() bool { return b.laidOut }

func (b *Board) Flags() (n int) {
	for i := range b.cells {
		if b.cells[i].state == Flagged {
			n++
		}
	}
	return
}

func (b *Board) InBounds(x, y int) bool {
	return 0 <= x && x < b.width && 0 <= y && y < b.height
}

func (b *Board) checkBounds(x, y int) error {
	if !b.InBounds(x, y) {
		return OutOfBoundsError{X: x, Y: y, Width: b.width, Height: b.height}
	}
	return nil
}

func (b *Board) index(x, y int) int {
	return y*b.width + x
}

func (b *Board) Cell(x, y int) (CellView, error) {
	if err := b.checkBounds(x, y); err != nil {
		return CellView{}, err
	}
	return b.cells[b.index(x, y)].view(), nil
}

// Neighbors returns the coordinates of the up to 8 cells around (x, y).
func (b *Board) Neighbors(x, y int) ([]Point, error) {
	if err := b.checkBounds(x, y); err != nil {
		return nil, err
	}
	ns := b.neighbors[b.index(x, y)]
	points := make([]Point, len(ns))
	for k, j := range ns {
		points[k] = Point{b.cells[j].X, b.cells[j].Y}
	}
	return points, nil
}

// Initialize rolls a bomb for every cell independently with the given
// probability, then clears the clicked cell and its neighbors. The final
// bomb count is therefore random and slightly thinner around the first click.
//
// panics [AssertionError] if the layout was already committed.
func (b *Board) Initialize(x, y int, probability float64) error {
	if err := b.checkBounds(x, y); err != nil {
		return err
	}
	if probability < 0 || probability >= 1 {
		return InvalidParamsError{GameParams{
			Width: b.width, Height: b.height, Probability: probability,
		}}
	}
	b.assertNotLaidOut()

	for i := range b.cells {
		if b.rnd.Float64() < probability {
			b.cells[i].bomb = true
		} else {
			b.remaining++
		}
	}

	start := b.index(x, y)
	for _, i := range append([]int{start}, b.neighbors[start]...) {
		if b.cells[i].bomb {
			b.cells[i].bomb = false
			b.remaining++
		}
	}

	b.commit()
	return nil
}

// Plant commits an explicit layout instead of a random one.
//
// panics [AssertionError] if the layout was already committed.
func (b *Board) Plant(mines ...Point) error {
	for _, p := range mines {
		if err := b.checkBounds(p.X, p.Y); err != nil {
			return fmt.Errorf("unable to plant mine: %w", err)
		}
	}
	b.assertNotLaidOut()

	for _, p := range mines {
		b.cells[b.index(p.X, p.Y)].bomb = true
	}
	for i := range b.cells {
		if !b.cells[i].bomb {
			b.remaining++
		}
	}

	b.commit()
	return nil
}

func (b *Board) assertNotLaidOut() {
	if b.laidOut {
		panic(AssertionError{"mine layout is already committed"})
	}
}

func (b *Board) commit() {
	b.bombs = 0
	for i := range b.cells {
		if b.cells[i].bomb {
			b.bombs++
		}
		c := 0
		for _, j := range b.neighbors[i] {
			if b.cells[j].bomb {
				c++
			}
		}
		b.cells[i].adjacent = c
	}
	b.laidOut = true

	Log.Debug("mine layout committed",
		slog.Int("width", b.width),
		slog.Int("height", b.height),
		slog.Int("bombs", b.bombs),
		slog.Int("remaining", b.remaining),
	)
}

// Click reveals or toggles a flag on the cell at (x, y). Flags may be placed
// before the layout exists; reveals may not.
//
// panics [AssertionError] on a reveal before Initialize or Plant.
func (b *Board) Click(x, y int, reveal bool) (Outcome, error) {
	if err := b.checkBounds(x, y); err != nil {
		return Active, err
	}
	if reveal && !b.laidOut {
		panic(AssertionError{"mine layout is not committed"})
	}
	i := b.index(x, y)
	switch b.cells[i].Click(reveal) {
	case ExplodedResponse:
		return Defeat, nil
	case RevealedResponse:
		b.floodFill(i)
		if b.remaining == 0 {
			return Victory, nil
		}
	}
	return Active, nil
}

/*
Breadth-first reveal from start. Only cells without adjacent bombs push
their neighbors; numbered cells are revealed and stop there. Every index is
enqueued at most once per traversal.
*/
func (b *Board) floodFill(start int) {
	todo := newCellTodo(len(b.cells))
	enqueued := make([]bool, len(b.cells))

	todo.add(start)
	enqueued[start] = true

	for !todo.empty() {
		i := todo.pop()
		c := &b.cells[i]
		if !c.Revealable() {
			continue
		}
		if c.adjacent == 0 {
			for _, j := range b.neighbors[i] {
				if !enqueued[j] && b.cells[j].Revealable() {
					enqueued[j] = true
					todo.add(j)
				}
			}
		}
		if c.Reveal() {
			b.remaining--
		}
	}
}
