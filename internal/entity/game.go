package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

// randomizer picks the starting player; *rand.Rand satisfies it.
type randomizer interface {
	Intn(n int) int
}

type Game struct {
	ID            string  `json:"id"`
	Board         *Board  `json:"board"`
	CurrentPlayer Player  `json:"current_player"`
	OtherPlayer   Player  `json:"other_player"`
	Status        Status  `json:"status"`
	Winner        *Player `json:"winner,omitempty"`
}

// NewGame - creates an ongoing game on an empty board with the players in random order.
func NewGame(id string, players []Player, rnd randomizer) (*Game, error) {
	if len(players) != 2 {
		return nil, fmt.Errorf("%w: got %d", apperror.ErrNotEnoughPlayers, len(players))
	}

	for _, player := range players {
		if err := validateMark(player.Mark); err != nil {
			return nil, fmt.Errorf("player %s: %w", player.Name, err)
		}
	}

	if players[0].Mark == players[1].Mark {
		return nil, fmt.Errorf("%w: both use %q", apperror.ErrDuplicateMark, players[0].Mark)
	}

	first := rnd.Intn(len(players))

	return &Game{
		ID:            id,
		Board:         NewBoard(),
		CurrentPlayer: players[first],
		OtherPlayer:   players[1-first],
		Status:        StatusOngoing,
	}, nil
}

// ValidateSelection - checks the selection is in 1..9 and points at an open cell.
func (that *Game) ValidateSelection(selection int) (Position, error) {
	pos, err := PositionFromSelection(selection)
	if err != nil {
		return Position{}, err
	}

	if !that.Board.IsOpen(pos.Row, pos.Col) {
		return Position{}, fmt.Errorf("%w: %d: %w", apperror.ErrInvalidSelection, selection, apperror.ErrCellOccupied)
	}

	return pos, nil
}

// MakeTurn - applies the current player's selection, evaluates the board and
// hands the turn over unless the game has ended.
func (that *Game) MakeTurn(selection int) error {
	if err := that.ConfirmOngoingState(); err != nil {
		return err
	}

	pos, err := that.ValidateSelection(selection)
	if err != nil {
		return err
	}

	if err = that.Board.Place(pos.Row, pos.Col, that.CurrentPlayer.Mark); err != nil {
		return fmt.Errorf("failed to place mark: %w", err)
	}

	that.UpdateGameState()

	return nil
}

func (that *Game) UpdateGameState() {
	switch status, _ := that.Board.Status(); status {
	// only the player who just moved can complete a line
	case StatusWon:
		winner := that.CurrentPlayer
		that.Winner = &winner
		that.Status = StatusWon
	case StatusDraw:
		that.Status = StatusDraw
	default:
		that.Status = StatusOngoing
		that.switchPlayers()
	}
}

func (that *Game) switchPlayers() {
	that.CurrentPlayer, that.OtherPlayer = that.OtherPlayer, that.CurrentPlayer
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusWon || that.Status == StatusDraw
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsOngoing():
		return nil
	case that.IsFinished():
		return apperror.ErrGameFinished
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}
