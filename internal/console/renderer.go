package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	cellSeparator = " | "
	rowSeparator  = "\n--+---+--\n"
	blankCell     = " "
)

type Renderer struct {
	writer io.Writer
}

func NewRenderer(writer io.Writer) *Renderer {
	return &Renderer{writer: writer}
}

// RenderGuide - shows which number selects which space.
func (that *Renderer) RenderGuide() error {
	var guide [entity.BoardSize][entity.BoardSize]string
	for selection := entity.MinSelection; selection <= entity.MaxSelection; selection++ {
		guide[entity.Row(selection)][entity.Column(selection)] = strconv.Itoa(selection)
	}

	return that.write("Here is a guide to the game board spaces:\n\n" + formatGrid(guide) + "\n\n")
}

func (that *Renderer) Render(board *entity.Board) error {
	return that.write("\n" + FormatBoard(board) + "\n\n")
}

func (that *Renderer) Announce(message string) error {
	return that.write(message + "\n")
}

func (that *Renderer) write(text string) error {
	if _, err := io.WriteString(that.writer, text); err != nil {
		return fmt.Errorf("failed to write to console: %w", err)
	}

	return nil
}

// FormatBoard - renders rows as "X | O | X" separated by "--+---+--".
func FormatBoard(board *entity.Board) string {
	cells := board.Cells
	for row := range cells {
		for col := range cells[row] {
			if cells[row][col] == entity.EmptyCell {
				cells[row][col] = blankCell
			}
		}
	}

	return formatGrid(cells)
}

func formatGrid(grid [entity.BoardSize][entity.BoardSize]string) string {
	rows := make([]string, 0, entity.BoardSize)
	for _, row := range grid {
		rows = append(rows, strings.Join(row[:], cellSeparator))
	}

	return strings.Join(rows, rowSeparator)
}
