package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// NewState builds the starting state for cfg: a three-segment snake centred
// on the board and heading right, with food placed off the snake.
// cfg must have passed Validate.
func NewState(cfg config.GameConfig, rng *rand.Rand) State {
	cx, cy := cfg.BoardSize/2, cfg.BoardSize/2
	body := []core.Position{
		{X: cx, Y: cy},
		{X: cx - 1, Y: cy},
		{X: cx - 2, Y: cy},
	}

	// A valid board always has free cells for the first food.
	food, _ := GenerateFood(body, cfg.BoardSize, rng)

	return State{
		Snake:     body,
		Food:      food,
		Direction: core.DirRight,
		Score:     0,
		Status:    StatusPlaying,
		BoardSize: cfg.BoardSize,
	}
}

// CollidesWithSelf reports whether p lies on any segment of body.
func CollidesWithSelf(p core.Position, body []core.Position) bool {
	for _, seg := range body {
		if seg == p {
			return true
		}
	}
	return false
}

// Update advances s by one tick.
//
// A state that is not playing is returned unchanged. The self-collision test
// runs against the snake before it moves, so stepping onto the cell the tail
// is about to leave ends the game.
func Update(s State, cfg config.GameConfig, rng *rand.Rand) State {
	if s.Status != StatusPlaying {
		return s
	}

	next := s.Head().Next(s.Direction)

	if next.OutOfBounds(s.BoardSize) {
		s.Status = StatusGameOver
		return s
	}
	if CollidesWithSelf(next, s.Snake) {
		s.Status = StatusGameOver
		return s
	}

	grown := make([]core.Position, 0, len(s.Snake)+1)
	grown = append(grown, next)
	grown = append(grown, s.Snake...)

	if !next.Equal(s.Food) {
		s.Snake = grown[:len(grown)-1]
		return s
	}

	s.Snake = grown
	s.Score += FoodReward
	if s.Score >= cfg.MaxScore {
		s.Status = StatusGameOver
		return s
	}

	food, ok := GenerateFood(grown, s.BoardSize, rng)
	if !ok {
		// Snake fills the board: nothing left to eat.
		s.Status = StatusGameOver
		return s
	}
	s.Food = food
	return s
}

// ChangeDirection returns s heading in d. The request is ignored unless the
// game is playing and d is not a reversal of the current heading.
func ChangeDirection(s State, d core.Direction) State {
	if s.Status != StatusPlaying || !core.ValidTurn(s.Direction, d) {
		return s
	}
	s.Direction = d
	return s
}
