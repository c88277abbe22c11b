package game

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// Coord identifies a cell by its grid position.
type Coord struct {
	X int
	Y int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// EscapeCoord is the synthetic position of the escape node. It is never a
// key in Board.Cells.
var EscapeCoord = Coord{X: -1, Y: -1}

// Cell is a single hex cell of the board. Adjacent is fixed at
// construction; only Blocked mutates during play.
type Cell struct {
	Coord    Coord
	Blocked  bool
	Adjacent []*Cell
}

// Board holds the full hex topology plus the dynamic game state: which
// cells are blocked, where the cat is, and whether the game has ended.
// The escape node is an explicit member, not ambient global state.
type Board struct {
	Height int
	Width  int
	Cells  map[Coord]*Cell
	Escape *Cell
	Cat    *Cell

	outcome Outcome
}

// Neighbor offsets per row parity. Order matters: adjacency lists keep
// construction order, and the move policy's tie-break indexes into them.
var (
	evenRowOffsets = []Coord{{-1, -1}, {0, -1}, {-1, 0}, {1, 0}, {-1, 1}, {0, 1}}
	oddRowOffsets  = []Coord{{0, -1}, {1, -1}, {-1, 0}, {1, 0}, {0, 1}, {1, 1}}
)

// NewBoard builds the full board: every cell, its hex adjacency, the
// escape node's boundary registration, the cat at the center cell, and
// numBlocks initial blocks drawn from rng. Height and width must both be
// odd. The two corner cells at (0,0) and (0,height-1) are omitted from
// the grid; their would-be neighbors already touch the boundary, so they
// add nothing to the escape node's reachability set.
func NewBoard(height, width, numBlocks int, rng *rand.Rand) (*Board, error) {
	if height%2 == 0 || width%2 == 0 {
		return nil, fmt.Errorf("board dimensions must be odd, got %dx%d", width, height)
	}
	if height < 3 || width < 3 {
		return nil, fmt.Errorf("board dimensions must be at least 3x3, got %dx%d", width, height)
	}

	b := &Board{
		Height: height,
		Width:  width,
		Cells:  make(map[Coord]*Cell, height*width),
		Escape: &Cell{Coord: EscapeCoord},
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := Coord{X: x, Y: y}
			if c == (Coord{X: 0, Y: 0}) || c == (Coord{X: 0, Y: height - 1}) {
				continue
			}
			b.Cells[c] = &Cell{Coord: c}
		}
	}

	// Link neighbors and register boundary cells on the escape node.
	// Offsets outside the grid (or pointing at an omitted corner) simply
	// have no cell to resolve to and are dropped.
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			cell, ok := b.Cells[Coord{X: x, Y: y}]
			if !ok {
				continue
			}
			offsets := evenRowOffsets
			if y%2 == 1 {
				offsets = oddRowOffsets
			}
			for _, o := range offsets {
				if n, ok := b.Cells[Coord{X: x + o.X, Y: y + o.Y}]; ok {
					cell.Adjacent = append(cell.Adjacent, n)
				}
			}
			if x == 0 || y == 0 || x == width-1 || y == height-1 {
				b.Escape.Adjacent = append(b.Escape.Adjacent, cell)
			}
		}
	}

	b.Cat = b.Cells[Coord{X: width / 2, Y: height / 2}]

	if err := b.placeInitialBlocks(numBlocks, rng); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Board) placeInitialBlocks(numBlocks int, rng *rand.Rand) error {
	if numBlocks < 0 || numBlocks >= len(b.Cells)-1 {
		return fmt.Errorf("initial block count %d out of range for %d cells", numBlocks, len(b.Cells))
	}
	// Stable candidate order so a seeded rng reproduces the same layout.
	candidates := make([]*Cell, 0, len(b.Cells)-1)
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			if cell, ok := b.Cells[Coord{X: x, Y: y}]; ok && cell != b.Cat {
				candidates = append(candidates, cell)
			}
		}
	}
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	for _, cell := range candidates[:numBlocks] {
		cell.Blocked = true
	}
	return nil
}

// At returns the cell at c, or nil if no such cell exists.
func (b *Board) At(c Coord) *Cell {
	return b.Cells[c]
}

// Boundary reports whether c lies on the outer ring of the grid.
func (b *Board) Boundary(c Coord) bool {
	return c.X == 0 || c.Y == 0 || c.X == b.Width-1 || c.Y == b.Height-1
}
