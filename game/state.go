package game

import (
	"fmt"

	"chatnoir/utils"
)

// Outcome is the game result from the player's perspective.
type Outcome int

const (
	// Continue means the game is still in progress.
	Continue Outcome = iota
	// Win means the cat is trapped: no unblocked path to the boundary.
	Win
	// Lose means the cat reached a cell one hop from the escape node.
	Lose
)

func (o Outcome) String() string {
	switch o {
	case Continue:
		return "continue"
	case Win:
		return "win"
	case Lose:
		return "lose"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Outcome returns the current game result. Terminal outcomes latch and
// never change; a fresh board starts at Continue.
func (b *Board) Outcome() Outcome {
	return b.outcome
}

// Block marks the cell at c as blocked. Blocking an unknown cell, an
// already blocked cell, or the cat's cell is rejected with an error and
// leaves the game state unchanged, as does any block after the game has
// ended.
func (b *Board) Block(c Coord) error {
	if b.outcome != Continue {
		return fmt.Errorf("game is over - no moves allowed")
	}
	cell, ok := b.Cells[c]
	if !ok {
		return fmt.Errorf("illegal block: no cell at %v", c)
	}
	if cell.Blocked {
		return fmt.Errorf("illegal block: cell %v is already blocked", c)
	}
	if cell == b.Cat {
		return fmt.Errorf("illegal block: cell %v is occupied by the cat", c)
	}
	cell.Blocked = true
	return nil
}

// MoveCat moves the cat onto next, which must be an unblocked neighbor
// of the cat's current cell. Callers pass cells selected by the move
// policy, so a violation is a programmer error.
func (b *Board) MoveCat(next *Cell) {
	if next == nil || next.Blocked {
		panic("cat move to nil or blocked cell")
	}
	if utils.FindIndex(b.Cat.Adjacent, next) == -1 {
		panic(fmt.Sprintf("cat move from %v to non-adjacent %v", b.Cat.Coord, next.Coord))
	}
	b.Cat = next
}

// Finish latches a terminal outcome.
func (b *Board) Finish(o Outcome) {
	if o == Continue {
		panic("cannot finish with outcome continue")
	}
	if b.outcome != Continue {
		panic("game already finished")
	}
	b.outcome = o
}
