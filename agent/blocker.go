package agent

import (
	"golang.org/x/exp/rand"

	"chatnoir/game"
	"chatnoir/searcher"
)

// Blocker is the player side of the game: given the current board it
// picks the next cell to block. Implementations must return a legal
// block (an unblocked cell that is not the cat's).
type Blocker interface {
	Name() string
	BlockCell(b *game.Board) game.Coord
}

// RandomBlocker blocks a uniformly random legal cell. It is the
// baseline opponent for experiments.
type RandomBlocker struct {
	rng *rand.Rand
}

func NewRandomBlocker(rng *rand.Rand) *RandomBlocker {
	return &RandomBlocker{rng: rng}
}

func (r *RandomBlocker) Name() string { return "random" }

func (r *RandomBlocker) BlockCell(b *game.Board) game.Coord {
	candidates := legalBlocks(b)
	if len(candidates) == 0 {
		panic("no legal blocks left")
	}
	return candidates[r.rng.Intn(len(candidates))]
}

// GreedyBlocker blocks the cell the cat most wants: the unblocked cat
// neighbor with the smallest distance to the escape node. Ties are
// broken at random. Falls back to a random legal cell when the cat is
// already cut off from the boundary.
type GreedyBlocker struct {
	rng *rand.Rand
}

func NewGreedyBlocker(rng *rand.Rand) *GreedyBlocker {
	return &GreedyBlocker{rng: rng}
}

func (g *GreedyBlocker) Name() string { return "greedy" }

func (g *GreedyBlocker) BlockCell(b *game.Board) game.Coord {
	dist := searcher.Compute(b)

	minSteps := searcher.Unreachable
	for _, n := range b.Cat.Adjacent {
		if n.Blocked {
			continue
		}
		if d := dist.At(n.Coord); d < minSteps {
			minSteps = d
		}
	}
	if minSteps == searcher.Unreachable {
		// Cat already cut off; any legal block keeps the game moving.
		candidates := legalBlocks(b)
		if len(candidates) == 0 {
			panic("no legal blocks left")
		}
		return candidates[g.rng.Intn(len(candidates))]
	}

	var candidates []game.Coord
	for _, n := range b.Cat.Adjacent {
		if !n.Blocked && dist.At(n.Coord) == minSteps {
			candidates = append(candidates, n.Coord)
		}
	}
	return candidates[g.rng.Intn(len(candidates))]
}

// legalBlocks enumerates every cell the player may block, in stable
// row-major order so seeded runs reproduce.
func legalBlocks(b *game.Board) []game.Coord {
	var coords []game.Coord
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			c := game.Coord{X: x, Y: y}
			if cell := b.At(c); cell != nil && !cell.Blocked && cell != b.Cat {
				coords = append(coords, c)
			}
		}
	}
	return coords
}
