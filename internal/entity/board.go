package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

type Status string

const (
	StatusOngoing Status = "ongoing"
	StatusWon     Status = "won"
	StatusDraw    Status = "draw"

	EmptyCell = ""
)

// Board is the 3x3 grid, row-major. A placed mark is never cleared.
type Board struct {
	Cells [BoardSize][BoardSize]string `json:"cells"`
}

func NewBoard() *Board {
	return &Board{}
}

func (that *Board) CellAt(row, col int) (string, error) {
	pos := Position{Row: row, Col: col}
	if !pos.inBounds() {
		return "", fmt.Errorf("%w: row %d, col %d", apperror.ErrInvalidCell, row, col)
	}

	return that.Cells[row][col], nil
}

// IsOpen - reports whether the cell is empty. Cells outside the grid are never open.
func (that *Board) IsOpen(row, col int) bool {
	cell, err := that.CellAt(row, col)
	if err != nil {
		return false
	}

	return cell == EmptyCell
}

// Place - writes the mark without checking the cell is open, callers validate with IsOpen.
func (that *Board) Place(row, col int, mark string) error {
	pos := Position{Row: row, Col: col}
	if !pos.inBounds() {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrInvalidCell, row, col)
	}

	that.Cells[row][col] = mark

	return nil
}

// Status - evaluates the grid without mutating it. The first winning line
// found in Lines order decides the returned mark.
func (that *Board) Status() (Status, string) {
	for _, line := range that.Lines() {
		if anyBlank(line) {
			continue
		}

		if allSame(line) {
			return StatusWon, line[0]
		}
	}

	if that.isFull() {
		return StatusDraw, ""
	}

	return StatusOngoing, ""
}

// Lines - returns the 8 lines: rows top to bottom, columns left to right,
// then the top-left and top-right diagonals.
func (that *Board) Lines() [][BoardSize]string {
	lines := make([][BoardSize]string, 0, 2*BoardSize+2)

	for row := range BoardSize {
		lines = append(lines, that.Cells[row])
	}

	for col := range BoardSize {
		var column [BoardSize]string
		for row := range BoardSize {
			column[row] = that.Cells[row][col]
		}
		lines = append(lines, column)
	}

	var diagonal, antiDiagonal [BoardSize]string
	for i := range BoardSize {
		diagonal[i] = that.Cells[i][i]
		antiDiagonal[i] = that.Cells[i][BoardSize-1-i]
	}

	return append(lines, diagonal, antiDiagonal)
}

func (that *Board) isFull() bool {
	for _, row := range that.Cells {
		if anyBlank(row) {
			return false
		}
	}

	return true
}

func allSame(line [BoardSize]string) bool {
	for _, cell := range line {
		if cell != line[0] {
			return false
		}
	}

	return true
}

func anyBlank(line [BoardSize]string) bool {
	for _, cell := range line {
		if cell == EmptyCell {
			return true
		}
	}

	return false
}
