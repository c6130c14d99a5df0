// Package snake implements the snake simulation: the pure single-tick
// transition and its helpers, and the Controller that drives it on a fixed
// tick and owns the running/paused/over lifecycle.
package snake

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// FoodReward is the score awarded for each food eaten.
const FoodReward = 3

// Status is the lifecycle status of a game.
type Status int

const (
	StatusPlaying Status = iota
	StatusPaused
	StatusGameOver
)

func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusPaused:
		return "paused"
	case StatusGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// State is a complete snapshot of a game.
//
// States are values: a transition returns a new State and never writes into
// the Snake slice of the State it was given, so a published snapshot can be
// read from any goroutine without copying.
type State struct {
	Snake     []core.Position // Head at index 0
	Food      core.Position
	Direction core.Direction
	Score     int
	Status    Status
	BoardSize int
}

// Head returns the first snake segment.
func (s State) Head() core.Position {
	return s.Snake[0]
}

// Occupies reports whether any snake segment lies on p.
func (s State) Occupies(p core.Position) bool {
	return CollidesWithSelf(p, s.Snake)
}

// Won reports whether the game ended by reaching maxScore.
func (s State) Won(maxScore int) bool {
	return s.Status == StatusGameOver && s.Score >= maxScore
}

// Clone returns a deep copy whose Snake slice can be modified freely.
func (s State) Clone() State {
	s.Snake = append([]core.Position(nil), s.Snake...)
	return s
}

// DebugString returns a compact multi-line description of the state.
func (s State) DebugString() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Status: %s, Score: %d, Board: %dx%d\n", s.Status, s.Score, s.BoardSize, s.BoardSize)
	fmt.Fprintf(&b, "Snake len: %d, Direction: %s\n", len(s.Snake), s.Direction)
	if len(s.Snake) > 0 {
		fmt.Fprintf(&b, "Head: %s, Food: %s\n", s.Head(), s.Food)
	}
	return b.String()
}
