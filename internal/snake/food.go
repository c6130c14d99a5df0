package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// maxFoodDraws bounds rejection sampling per board cell before GenerateFood
// switches to scanning for free cells.
const maxFoodDraws = 4

// GenerateFood picks a cell uniformly at random among the cells of a
// boardSize x boardSize grid that body does not occupy. ok is false when the
// body covers the whole board.
func GenerateFood(body []core.Position, boardSize int, rng *rand.Rand) (p core.Position, ok bool) {
	if boardSize <= 0 {
		return core.Position{}, false
	}

	occupied := make(map[core.Position]struct{}, len(body))
	for _, seg := range body {
		occupied[seg] = struct{}{}
	}

	cells := boardSize * boardSize
	for i := 0; i < maxFoodDraws*cells; i++ {
		p = core.Position{X: rng.Intn(boardSize), Y: rng.Intn(boardSize)}
		if _, taken := occupied[p]; !taken {
			return p, true
		}
	}

	// Dense board: pick among the remaining free cells directly.
	free := make([]core.Position, 0, cells)
	for y := 0; y < boardSize; y++ {
		for x := 0; x < boardSize; x++ {
			c := core.Position{X: x, Y: y}
			if _, taken := occupied[c]; !taken {
				free = append(free, c)
			}
		}
	}
	if len(free) == 0 {
		return core.Position{}, false
	}
	return free[rng.Intn(len(free))], true
}
