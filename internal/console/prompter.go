package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// Prompter asks the active player for a space number on the console.
type Prompter struct {
	reader *bufio.Reader
	writer io.Writer
}

func NewPrompter(reader io.Reader, writer io.Writer) *Prompter {
	return &Prompter{
		reader: bufio.NewReader(reader),
		writer: writer,
	}
}

// RequestSelection - blocks until the player enters a line. Input that does
// not start with a number comes back as 0, which is never a valid space.
func (that *Prompter) RequestSelection(_ context.Context, player entity.Player) (int, error) {
	if _, err := fmt.Fprintf(that.writer, "%s, select a space: ", player); err != nil {
		return 0, fmt.Errorf("failed to write prompt: %w", err)
	}

	line, err := that.readLine()
	if err != nil {
		return 0, fmt.Errorf("failed to read selection: %w", err)
	}

	return ParseSelection(line), nil
}

// readLine - returns the start of the next line and drops the rest of it,
// so a line of any length costs one buffer.
func (that *Prompter) readLine() (string, error) {
	chunk, isPrefix, err := that.reader.ReadLine()
	if err != nil {
		return "", err
	}

	line := string(chunk)
	for isPrefix {
		_, isPrefix, err = that.reader.ReadLine()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return "", err
		}
	}

	return line, nil
}

// ParseSelection - reads the leading integer of the line, "3abc" is 3 and "abc" is 0.
func ParseSelection(line string) int {
	line = strings.TrimSpace(line)

	sign := 1
	switch {
	case strings.HasPrefix(line, "-"):
		sign = -1
		line = line[1:]
	case strings.HasPrefix(line, "+"):
		line = line[1:]
	}

	value := 0
	for _, r := range line {
		if r < '0' || r > '9' {
			break
		}

		value = value*10 + int(r-'0')

		// anything this large is already out of range
		if value > entity.MaxSelection*10 {
			break
		}
	}

	return sign * value
}
