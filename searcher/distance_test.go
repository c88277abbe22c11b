package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"chatnoir/game"
)

func newTestBoard(t *testing.T, height, width, numBlocks int) *game.Board {
	t.Helper()
	b, err := game.NewBoard(height, width, numBlocks, rand.New(rand.NewSource(1)))
	require.NoError(t, err, "Board construction should succeed")
	return b
}

// referenceDistances labels cells by relaxing edges to a fixpoint. It is
// deliberately a different algorithm than the BFS under test.
func referenceDistances(b *game.Board) Distances {
	const far = 1 << 30
	dist := map[game.Coord]int{}
	for c, cell := range b.Cells {
		if cell.Blocked {
			continue
		}
		if b.Boundary(c) {
			dist[c] = 1
		} else {
			dist[c] = far
		}
	}
	for changed := true; changed; {
		changed = false
		for c, cell := range b.Cells {
			if cell.Blocked {
				continue
			}
			for _, n := range cell.Adjacent {
				if n.Blocked {
					continue
				}
				if dist[n.Coord]+1 < dist[c] {
					dist[c] = dist[n.Coord] + 1
					changed = true
				}
			}
		}
	}
	out := Distances{b.Escape.Coord: 0}
	for c, d := range dist {
		if d < far {
			out[c] = d
		}
	}
	return out
}

func TestCompute(t *testing.T) {
	t.Run("labels the escape node zero and boundary cells one", func(t *testing.T) {
		b := newTestBoard(t, 5, 5, 0)

		dist := Compute(b)

		require.Equal(t, 0, dist.At(b.Escape.Coord), "Escape node should be the BFS source")
		for c := range b.Cells {
			if b.Boundary(c) {
				require.Equal(t, 1, dist.At(c), "Boundary cell %v should be one hop from escape", c)
			}
		}
	})

	t.Run("matches an independently computed labeling on an open board", func(t *testing.T) {
		b := newTestBoard(t, 5, 5, 0)

		dist := Compute(b)

		require.Equal(t, referenceDistances(b), dist,
			"BFS labels should equal the relaxation fixpoint")
	})

	t.Run("matches the reference labeling with blocks in place", func(t *testing.T) {
		b := newTestBoard(t, 9, 9, 12)

		dist := Compute(b)

		require.Equal(t, referenceDistances(b), dist,
			"BFS labels should equal the relaxation fixpoint")
	})

	t.Run("blocked cells stay unreachable", func(t *testing.T) {
		b := newTestBoard(t, 9, 9, 12)

		dist := Compute(b)

		for c, cell := range b.Cells {
			if cell.Blocked {
				require.Equal(t, Unreachable, dist.At(c), "Blocked cell %v should never be labeled", c)
			}
		}
	})

	t.Run("cells behind a full ring of blocks are unreachable", func(t *testing.T) {
		b := newTestBoard(t, 9, 9, 0)
		for _, n := range b.Cat.Adjacent {
			require.NoError(t, b.Block(n.Coord))
		}

		dist := Compute(b)

		require.Equal(t, Unreachable, dist.At(b.Cat.Coord),
			"The enclosed cat cell should be unreachable")
		require.Equal(t, referenceDistances(b), dist,
			"BFS labels should equal the relaxation fixpoint")
	})

	t.Run("recomputing without state changes is idempotent", func(t *testing.T) {
		b := newTestBoard(t, 9, 9, 12)

		first := Compute(b)
		second := Compute(b)

		require.Equal(t, first, second, "Back-to-back passes should agree")
	})

	t.Run("each pass allocates a fresh labeling", func(t *testing.T) {
		b := newTestBoard(t, 5, 5, 0)

		first := Compute(b)
		require.NoError(t, b.Block(game.Coord{X: 1, Y: 2}))
		second := Compute(b)

		require.Equal(t, 2, first.At(game.Coord{X: 1, Y: 2}),
			"Old labeling should be untouched by later blocks")
		require.Equal(t, Unreachable, second.At(game.Coord{X: 1, Y: 2}),
			"New labeling should reflect the new block")
	})
}
