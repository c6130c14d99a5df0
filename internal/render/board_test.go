package render

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

func TestClassify(t *testing.T) {
	body := []core.Position{core.Pos(2, 1), core.Pos(1, 1), core.Pos(0, 1)}
	grid := Classify(4, body, core.Pos(3, 3))

	if len(grid) != 4 || len(grid[0]) != 4 {
		t.Fatalf("grid is %dx%d, expected 4x4", len(grid[0]), len(grid))
	}

	tests := []struct {
		pos  core.Position
		kind CellKind
	}{
		{core.Pos(2, 1), CellSnakeHead},
		{core.Pos(1, 1), CellSnakeBody},
		{core.Pos(0, 1), CellSnakeBody},
		{core.Pos(3, 3), CellFood},
		{core.Pos(0, 0), CellEmpty},
		{core.Pos(3, 1), CellEmpty},
	}
	for _, tc := range tests {
		if got := grid[tc.pos.Y][tc.pos.X]; got != tc.kind {
			t.Errorf("cell %v = %v, expected %v", tc.pos, got, tc.kind)
		}
	}
}

func TestClassifySnakeWinsOverFood(t *testing.T) {
	body := []core.Position{core.Pos(1, 1), core.Pos(0, 1)}

	if got := Classify(3, body, core.Pos(1, 1))[1][1]; got != CellSnakeHead {
		t.Errorf("head on food = %v, expected snake-head", got)
	}
	if got := Classify(3, body, core.Pos(0, 1))[1][0]; got != CellSnakeBody {
		t.Errorf("body on food = %v, expected snake-body", got)
	}
}

func TestClassifyCountsEveryCell(t *testing.T) {
	s := snake.State{
		Snake:     []core.Position{core.Pos(5, 5), core.Pos(4, 5), core.Pos(3, 5)},
		Food:      core.Pos(0, 0),
		BoardSize: 10,
	}

	counts := make(map[CellKind]int)
	for _, row := range Classify(s.BoardSize, s.Snake, s.Food) {
		for _, k := range row {
			counts[k]++
		}
	}

	if counts[CellSnakeHead] != 1 || counts[CellSnakeBody] != 2 || counts[CellFood] != 1 {
		t.Errorf("unexpected counts: %v", counts)
	}
	if counts[CellEmpty] != 100-4 {
		t.Errorf("empty cells = %d, expected 96", counts[CellEmpty])
	}
}

func TestDraw(t *testing.T) {
	s := snake.State{
		Snake:     []core.Position{core.Pos(2, 2), core.Pos(1, 2)},
		Food:      core.Pos(4, 0),
		Direction: core.DirRight,
		Score:     3,
		Status:    snake.StatusPlaying,
		BoardSize: 5,
	}

	screen := core.NewScreen(40, 14)
	Draw(screen, s, 30)
	content := screen.String()

	if !strings.Contains(content, "Score: 3 / 30") {
		t.Errorf("HUD missing from:\n%s", content)
	}
	if strings.Count(content, "@") != 1 {
		t.Errorf("expected one head glyph in:\n%s", content)
	}
	if !strings.Contains(content, "*") {
		t.Errorf("food glyph missing from:\n%s", content)
	}

	layout := LayoutFor(5, 40, 14)
	headX := layout.Frame.X + 1 + 2*cellWidth
	headY := layout.Frame.Y + 1 + 2
	if cell := screen.GetCell(headX, headY); cell.Rune != '@' || cell.Color != core.ColorBrightGreen {
		t.Errorf("head cell = %+v", cell)
	}
}

func TestDrawTooSmall(t *testing.T) {
	s := snake.State{
		Snake:     []core.Position{core.Pos(10, 10)},
		BoardSize: 20,
	}

	screen := core.NewScreen(20, 10)
	Draw(screen, s, 30)

	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected a too-small warning")
	}
}

func TestStatus(t *testing.T) {
	s := snake.State{Status: snake.StatusGameOver, Score: 30}
	if !strings.Contains(Status(s, 30), "win") {
		t.Errorf("expected win message, got %q", Status(s, 30))
	}

	s.Score = 9
	if !strings.Contains(Status(s, 30), "Game over") {
		t.Errorf("expected game over message, got %q", Status(s, 30))
	}

	s.Status = snake.StatusPaused
	if !strings.Contains(Status(s, 30), "Paused") {
		t.Errorf("expected paused message, got %q", Status(s, 30))
	}
}

func TestFits(t *testing.T) {
	w, h := RequiredSize(20)
	if !Fits(20, w, h) {
		t.Error("board should fit its required size")
	}
	if Fits(20, w-1, h) || Fits(20, w, h-1) {
		t.Error("board should not fit a smaller screen")
	}
}
