package metrics

import (
	"time"

	"chatnoir/game"
)

// MoveMetric captures one full turn: the player's block and the cat's
// answering move, with the cat's distance label after moving.
type MoveMetric struct {
	Step        int
	Blocked     game.Coord
	Cat         game.Coord
	CatDistance int // distance to escape after the move; -1 once trapped
}

// GameMetric summarizes a finished game.
type GameMetric struct {
	Blocker       string
	Height        int
	Width         int
	InitialBlocks int
	Outcome       game.Outcome
	TotalTurns    int
	StartTime     time.Time
	EndTime       time.Time
	Duration      time.Duration
}

// Collector accumulates metrics over one game. The engine calls it once
// per turn; a no-op implementation keeps the hot path free when metrics
// are not wanted.
type Collector interface {
	Start(blocker string, height, width, initialBlocks int)
	AddMove(m MoveMetric)
	Complete(outcome game.Outcome) GameMetric
	Moves() []MoveMetric
}

type collector struct {
	blocker       string
	height        int
	width         int
	initialBlocks int
	startTime     time.Time
	moves         []MoveMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(blocker string, height, width, initialBlocks int) {
	c.blocker = blocker
	c.height = height
	c.width = width
	c.initialBlocks = initialBlocks
	c.startTime = time.Now()
	c.moves = nil
}

func (c *collector) AddMove(m MoveMetric) {
	c.moves = append(c.moves, m)
}

func (c *collector) Complete(outcome game.Outcome) GameMetric {
	endTime := time.Now()
	return GameMetric{
		Blocker:       c.blocker,
		Height:        c.height,
		Width:         c.width,
		InitialBlocks: c.initialBlocks,
		Outcome:       outcome,
		TotalTurns:    len(c.moves),
		StartTime:     c.startTime,
		EndTime:       endTime,
		Duration:      endTime.Sub(c.startTime),
	}
}

func (c *collector) Moves() []MoveMetric {
	return c.moves
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (d *dummyCollector) Start(blocker string, height, width, initialBlocks int) {}
func (d *dummyCollector) AddMove(m MoveMetric)                                   {}
func (d *dummyCollector) Complete(outcome game.Outcome) GameMetric               { return GameMetric{} }
func (d *dummyCollector) Moves() []MoveMetric                                    { return nil }
