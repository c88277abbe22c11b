package searcher

import (
	"math"

	"chatnoir/game"
)

// Unreachable is the distance label for cells with no unblocked path to
// the escape node.
const Unreachable = math.MaxInt

// Distances maps cell positions to their hop count from the escape node
// through unblocked cells. Each Compute call allocates a fresh map, so a
// field is only valid for the board state it was computed from.
type Distances map[game.Coord]int

// At returns the distance label for c, or Unreachable if the BFS never
// reached it.
func (d Distances) At(c game.Coord) int {
	if v, ok := d[c]; ok {
		return v
	}
	return Unreachable
}

// Compute runs a breadth-first search from the board's escape node and
// labels every reachable unblocked cell with its hop distance. Blocked
// cells are never visited. The search always runs to completion.
func Compute(b *game.Board) Distances {
	dist := make(Distances, len(b.Cells)+1)
	dist[b.Escape.Coord] = 0

	queue := make([]*game.Cell, 0, len(b.Cells))
	queue = append(queue, b.Escape)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range cur.Adjacent {
			if n.Blocked {
				continue
			}
			if _, visited := dist[n.Coord]; visited {
				continue
			}
			dist[n.Coord] = dist[cur.Coord] + 1
			queue = append(queue, n)
		}
	}
	return dist
}
