package searcher

import (
	"golang.org/x/exp/rand"

	"chatnoir/game"
)

// Policy selects the cat's next move: the unblocked neighbor with the
// shortest fresh BFS distance to the escape node, ties broken uniformly
// at random so the cat's play is not learnable by the player.
type Policy struct {
	rng *rand.Rand
}

// NewPolicy returns a move policy drawing tie-breaks from rng. Pass a
// seeded source to make the cat deterministic in tests.
func NewPolicy(rng *rand.Rand) *Policy {
	if rng == nil {
		panic("policy needs a random source")
	}
	return &Policy{rng: rng}
}

// NextMove recomputes distances for the current board and picks the
// cat's next cell. ok is false when the cat is trapped: either no
// neighbor is unblocked at all, or no unblocked neighbor has a finite
// distance to the escape node. The returned Distances are the ones the
// selection was made from, so callers can check the chosen cell's label.
func (p *Policy) NextMove(b *game.Board) (next *game.Cell, dist Distances, ok bool) {
	dist = Compute(b)

	minSteps := Unreachable
	for _, n := range b.Cat.Adjacent {
		if n.Blocked {
			continue
		}
		if d := dist.At(n.Coord); d < minSteps {
			minSteps = d
		}
	}
	if minSteps == Unreachable {
		return nil, dist, false
	}

	var candidates []*game.Cell
	for _, n := range b.Cat.Adjacent {
		if !n.Blocked && dist.At(n.Coord) == minSteps {
			candidates = append(candidates, n)
		}
	}
	return candidates[p.rng.Intn(len(candidates))], dist, true
}
