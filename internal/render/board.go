// Package render projects a snake.State onto a grid of classified cells and
// draws it into a core.Screen. It makes no game decisions.
package render

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// CellKind classifies one board cell for drawing.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellSnakeHead
	CellSnakeBody
	CellFood
)

func (k CellKind) String() string {
	switch k {
	case CellEmpty:
		return "empty"
	case CellSnakeHead:
		return "snake-head"
	case CellSnakeBody:
		return "snake-body"
	case CellFood:
		return "food"
	default:
		return "unknown"
	}
}

// Classify returns a boardSize x boardSize grid indexed [y][x].
// The head wins over body segments and any snake cell wins over food.
func Classify(boardSize int, body []core.Position, food core.Position) [][]CellKind {
	grid := make([][]CellKind, boardSize)
	for y := range grid {
		grid[y] = make([]CellKind, boardSize)
	}

	if !food.OutOfBounds(boardSize) {
		grid[food.Y][food.X] = CellFood
	}
	// Paint tail first so the head ends up on top.
	for i := len(body) - 1; i >= 0; i-- {
		p := body[i]
		if p.OutOfBounds(boardSize) {
			continue
		}
		if i == 0 {
			grid[p.Y][p.X] = CellSnakeHead
		} else {
			grid[p.Y][p.X] = CellSnakeBody
		}
	}
	return grid
}

// Glyph returns the rune and color used for a cell kind.
func Glyph(k CellKind) (rune, core.Color) {
	switch k {
	case CellSnakeHead:
		return '@', core.ColorBrightGreen
	case CellSnakeBody:
		return 'o', core.ColorGreen
	case CellFood:
		return '*', core.ColorRed
	default:
		return '·', core.ColorGray
	}
}

// Layout describes where a board of a given size lands on a screen.
// Each board cell is two screen columns wide so the board looks square.
type Layout struct {
	Frame core.Rect // Border box around the board
	HUDY  int       // Row of the score line
	MsgY  int       // Row of the status line
}

const (
	cellWidth = 2
	hudHeight = 2 // Score line + blank line
)

// RequiredSize returns the smallest screen that fits a board of boardSize.
func RequiredSize(boardSize int) (w, h int) {
	return boardSize*cellWidth + 2, boardSize + 2 + hudHeight + 1
}

// LayoutFor centers a board on a screen of the given size.
func LayoutFor(boardSize, screenW, screenH int) Layout {
	w, h := RequiredSize(boardSize)
	x := max((screenW-w)/2, 0)
	y := max((screenH-h)/2, 0)

	frame := core.NewRect(x, y+hudHeight, w, boardSize+2)
	return Layout{
		Frame: frame,
		HUDY:  y,
		MsgY:  frame.Bottom(),
	}
}

// Fits reports whether a board of boardSize fits on the screen.
func Fits(boardSize, screenW, screenH int) bool {
	w, h := RequiredSize(boardSize)
	return screenW >= w && screenH >= h
}

// Status returns the status line text for s.
func Status(s snake.State, maxScore int) string {
	switch s.Status {
	case snake.StatusPlaying:
		return "Arrows/WASD steer · Space pause · R reset"
	case snake.StatusPaused:
		return "Paused · Space or Enter to resume"
	case snake.StatusGameOver:
		if s.Won(maxScore) {
			return fmt.Sprintf("You win! Final score: %d · Enter to play again", s.Score)
		}
		return fmt.Sprintf("Game over! Score: %d · Enter to play again", s.Score)
	}
	return ""
}

// Draw renders s onto dst: the score line, the framed board and a status line.
func Draw(dst *core.Screen, s snake.State, maxScore int) {
	dst.Clear()

	if !Fits(s.BoardSize, dst.Width(), dst.Height()) {
		w, h := RequiredSize(s.BoardSize)
		dst.DrawTextCentered(dst.Height()/2, "Window too small", core.ColorYellow)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Resize to at least %dx%d", w, h), core.ColorGray)
		return
	}

	layout := LayoutFor(s.BoardSize, dst.Width(), dst.Height())

	hud := fmt.Sprintf("Score: %d / %d   Length: %d", s.Score, maxScore, len(s.Snake))
	dst.DrawText(layout.Frame.X, layout.HUDY, hud, core.ColorBrightWhite)

	frameColor := core.ColorGray
	if s.Status == snake.StatusGameOver {
		frameColor = core.ColorRed
	}
	dst.DrawBox(layout.Frame, frameColor)

	grid := Classify(s.BoardSize, s.Snake, s.Food)
	for y, row := range grid {
		for x, kind := range row {
			r, c := Glyph(kind)
			dst.SetColor(layout.Frame.X+1+x*cellWidth, layout.Frame.Y+1+y, r, c)
		}
	}

	msgColor := core.ColorCyan
	if s.Status == snake.StatusPaused {
		msgColor = core.ColorYellow
	}
	dst.DrawTextCentered(layout.MsgY, Status(s, maxScore), msgColor)
}
