package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

const (
	BoardSize = 3

	MinSelection = 1
	MaxSelection = BoardSize * BoardSize
)

// Position is a zero-based row/column pair on the board.
type Position struct {
	Row int
	Col int
}

// Row - maps a 1..9 selection to its zero-based row, ceil(i/3) - 1.
func Row(selection int) int {
	return (selection+BoardSize-1)/BoardSize - 1
}

// Column - maps a 1..9 selection to its zero-based column.
func Column(selection int) int {
	return (selection + BoardSize - 1) % BoardSize
}

// PositionFromSelection - converts the human-facing number into a board position.
func PositionFromSelection(selection int) (Position, error) {
	if selection < MinSelection || selection > MaxSelection {
		return Position{}, fmt.Errorf("%w: %d", apperror.ErrInvalidSelection, selection)
	}

	return Position{Row: Row(selection), Col: Column(selection)}, nil
}

// Selection - is the inverse of PositionFromSelection.
func (that Position) Selection() int {
	return that.Row*BoardSize + that.Col + 1
}

func (that Position) inBounds() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}
