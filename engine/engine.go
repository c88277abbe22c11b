package engine

import (
	"chatnoir/agent"
	"chatnoir/experiments/metrics"
	"chatnoir/game"
)

// MaxTurns caps a run as a safety net; every block removes a cell, so a
// legal game always terminates well before this.
const MaxTurns = 10000

type Engine interface {
	// Run plays a full game against the given blocker until the cat
	// escapes or is trapped.
	Run(blocker agent.Blocker, collector metrics.Collector) (outcome game.Outcome, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}

// Update describes one completed turn for presentation collaborators: a
// renderer can redraw the blocked cell and the cat's new position
// without the core knowing anything about rendering.
type Update struct {
	Step    int
	Blocked game.Coord
	Cat     game.Coord
	Outcome game.Outcome
}
