package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"chatnoir/agent"
	"chatnoir/experiments/metrics"
	"chatnoir/game"
	"chatnoir/searcher"
)

// Local runs games on an in-process board. It owns the board, the cat's
// move policy, and the construction parameters so Reset can rebuild a
// fresh board with the same configuration.
type Local struct {
	Board *game.Board

	policy        *searcher.Policy
	height        int
	width         int
	initialBlocks int
	rng           *rand.Rand

	step            int
	lastCatDistance int
	onUpdate        func(Update)
}

type Option func(*Local)

// WithUpdateFunc registers a callback invoked after every completed
// turn. This is the seam for renderers and other observers.
func WithUpdateFunc(fn func(Update)) Option {
	return func(e *Local) {
		e.onUpdate = fn
	}
}

// NewLocal builds a board with the given dimensions and initial block
// count and wires the cat's move policy to rng. All randomness (initial
// blocks, tie-breaks) flows from rng, so a seeded source reproduces a
// game exactly.
func NewLocal(height, width, initialBlocks int, rng *rand.Rand, options ...Option) (*Local, error) {
	board, err := game.NewBoard(height, width, initialBlocks, rng)
	if err != nil {
		return nil, err
	}
	e := &Local{
		Board:         board,
		policy:        searcher.NewPolicy(rng),
		height:        height,
		width:         width,
		initialBlocks: initialBlocks,
		rng:           rng,
	}
	for _, option := range options {
		option(e)
	}
	return e, nil
}

// Reset discards the board and builds a fresh one with the same
// dimensions and block count. This is a full re-initialization, not a
// state rollback.
func (e *Local) Reset() error {
	board, err := game.NewBoard(e.height, e.width, e.initialBlocks, e.rng)
	if err != nil {
		return err
	}
	e.Board = board
	e.step = 0
	e.lastCatDistance = 0
	return nil
}

// PlayerBlock applies the player's block at c and, if it was legal,
// runs exactly one cat turn. An illegal block returns an error and
// leaves the game state unchanged; the cat does not move.
func (e *Local) PlayerBlock(c game.Coord) (game.Outcome, error) {
	if err := e.Board.Block(c); err != nil {
		return e.Board.Outcome(), err
	}
	outcome := e.CatTurn()
	e.step++
	if e.onUpdate != nil {
		e.onUpdate(Update{
			Step:    e.step,
			Blocked: c,
			Cat:     e.Board.Cat.Coord,
			Outcome: outcome,
		})
	}
	return outcome, nil
}

// CatTurn recomputes distances, moves the cat one step toward the
// escape node, and evaluates the terminal conditions: Win when the cat
// has no path to the boundary, Lose when it lands one hop from escape.
func (e *Local) CatTurn() game.Outcome {
	if o := e.Board.Outcome(); o != game.Continue {
		return o
	}
	next, dist, ok := e.policy.NextMove(e.Board)
	if !ok {
		e.lastCatDistance = -1
		e.Board.Finish(game.Win)
		return game.Win
	}
	e.Board.MoveCat(next)
	e.lastCatDistance = dist.At(next.Coord)
	if e.lastCatDistance == 1 {
		e.Board.Finish(game.Lose)
		return game.Lose
	}
	return game.Continue
}

// Run plays a full game against blocker and returns the outcome with
// the collected metrics.
func (e *Local) Run(blocker agent.Blocker, collector metrics.Collector) (game.Outcome, metrics.GameMetric, []metrics.MoveMetric) {
	collector.Start(blocker.Name(), e.height, e.width, e.initialBlocks)

	log.Info().Msgf("starting game against %s blocker on %dx%d with %d initial blocks",
		blocker.Name(), e.width, e.height, e.initialBlocks)

	outcome := e.Board.Outcome()
	for outcome == game.Continue {
		if e.step >= MaxTurns {
			panic(fmt.Sprintf("game exceeded %d turns", MaxTurns))
		}
		block := blocker.BlockCell(e.Board)
		var err error
		outcome, err = e.PlayerBlock(block)
		if err != nil {
			panic(fmt.Sprintf("blocker %s produced illegal block %v: %v", blocker.Name(), block, err))
		}
		collector.AddMove(metrics.MoveMetric{
			Step:        e.step,
			Blocked:     block,
			Cat:         e.Board.Cat.Coord,
			CatDistance: e.lastCatDistance,
		})
	}

	log.Info().Msgf("game over after %d turns: %s", e.step, outcome)

	return outcome, collector.Complete(outcome), collector.Moves()
}
