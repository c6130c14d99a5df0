package snake

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestGenerateFoodValidity(t *testing.T) {
	rng := rand.New(rand.NewSource(999))
	snake := body(core.Pos(10, 10), core.Pos(9, 10), core.Pos(8, 10), core.Pos(8, 11))

	for i := 0; i < 500; i++ {
		food, ok := GenerateFood(snake, 20, rng)
		if !ok {
			t.Fatal("GenerateFood reported a full board")
		}
		if CollidesWithSelf(food, snake) {
			t.Errorf("food spawned on snake at %v", food)
		}
		if food.OutOfBounds(20) {
			t.Errorf("food spawned out of bounds at %v", food)
		}
	}
}

func TestGenerateFoodDenseBoard(t *testing.T) {
	// Every cell but one is taken; the only legal answer is the free cell.
	const size = 6
	free := core.Pos(4, 1)

	var snake []core.Position
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if p := core.Pos(x, y); p != free {
				snake = append(snake, p)
			}
		}
	}

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		food, ok := GenerateFood(snake, size, rng)
		if !ok {
			t.Fatal("GenerateFood should find the last free cell")
		}
		if food != free {
			t.Fatalf("food = %v, expected %v", food, free)
		}
	}
}

func TestGenerateFoodFullBoard(t *testing.T) {
	var snake []core.Position
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			snake = append(snake, core.Pos(x, y))
		}
	}

	if _, ok := GenerateFood(snake, 3, testRand()); ok {
		t.Error("GenerateFood should report a full board")
	}
}

func TestGenerateFoodCoversBoard(t *testing.T) {
	// Uniform sampling should reach every free cell of a small board.
	rng := rand.New(rand.NewSource(3))
	snake := body(core.Pos(1, 1))
	seen := make(map[core.Position]bool)

	for i := 0; i < 2000; i++ {
		food, _ := GenerateFood(snake, 3, rng)
		seen[food] = true
	}
	if len(seen) != 8 {
		t.Errorf("expected all 8 free cells to be reachable, saw %d", len(seen))
	}
}

func TestGenerateFoodEmptyBoard(t *testing.T) {
	if _, ok := GenerateFood(nil, 0, testRand()); ok {
		t.Error("a zero-size board has no cells")
	}
}
