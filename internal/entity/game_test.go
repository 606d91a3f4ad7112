package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedRandom int

func (that fixedRandom) Intn(int) int {
	return int(that)
}

var (
	adam = Player{Name: "Adam", Mark: x}
	tom  = Player{Name: "Tom", Mark: o}
)

func newTestGame(t *testing.T) *Game {
	t.Helper()

	game, err := NewGame("123", []Player{adam, tom}, fixedRandom(0))
	require.NoError(t, err)

	return game
}

func TestNewGame(t *testing.T) {
	t.Run("First player starts when randomizer returns 0", func(t *testing.T) {
		// When: a game is created with a fixed random source
		game, err := NewGame("123", []Player{adam, tom}, fixedRandom(0))
		require.NoError(t, err)

		// Then: the game is ongoing on an empty board with Adam to move
		expectedGame := &Game{
			ID:            "123",
			Board:         NewBoard(),
			CurrentPlayer: adam,
			OtherPlayer:   tom,
			Status:        StatusOngoing,
		}

		require.Equal(t, expectedGame, game)
	})

	t.Run("Second player starts when randomizer returns 1", func(t *testing.T) {
		game, err := NewGame("123", []Player{adam, tom}, fixedRandom(1))
		require.NoError(t, err)

		assert.Equal(t, tom, game.CurrentPlayer)
		assert.Equal(t, adam, game.OtherPlayer)
	})

	t.Run("Rejects players sharing a mark", func(t *testing.T) {
		_, err := NewGame("123", []Player{adam, {Name: "Eve", Mark: x}}, fixedRandom(0))

		require.ErrorIs(t, err, apperror.ErrDuplicateMark)
	})

	t.Run("Rejects a wrong number of players", func(t *testing.T) {
		_, err := NewGame("123", []Player{adam}, fixedRandom(0))

		require.ErrorIs(t, err, apperror.ErrNotEnoughPlayers)
	})

	t.Run("Rejects an invalid mark", func(t *testing.T) {
		_, err := NewGame("123", []Player{adam, {Name: "Eve", Mark: "OO"}}, fixedRandom(0))

		require.ErrorIs(t, err, apperror.ErrInvalidMark)
	})
}

func TestGame_MakeTurn(t *testing.T) {
	t.Run("Successful Turn", func(t *testing.T) {
		// Given: a new game with Adam to move
		game := newTestGame(t)

		// When: Adam selects the center
		err := game.MakeTurn(5)
		require.NoError(t, err)

		// Then: the mark is placed and Tom is up next
		cell, err := game.Board.CellAt(1, 1)
		require.NoError(t, err)
		assert.Equal(t, x, cell)
		assert.Equal(t, tom, game.CurrentPlayer)
		assert.Equal(t, adam, game.OtherPlayer)
		assert.Equal(t, StatusOngoing, game.Status)
		assert.Nil(t, game.Winner)
	})

	t.Run("Top row wins for X", func(t *testing.T) {
		// Given: a new game with X to move
		game := newTestGame(t)

		// When: the players select 1, 4, 2, 5, 3
		for _, selection := range []int{1, 4, 2, 5} {
			require.NoError(t, game.MakeTurn(selection))
			require.True(t, game.IsOngoing())
		}
		require.NoError(t, game.MakeTurn(3))

		// Then: X has won and keeps the turn
		status, mark := game.Board.Status()
		assert.Equal(t, StatusWon, status)
		assert.Equal(t, x, mark)

		assert.Equal(t, StatusWon, game.Status)
		require.NotNil(t, game.Winner)
		assert.Equal(t, adam, *game.Winner)
		assert.Equal(t, adam, game.CurrentPlayer)
	})

	t.Run("Full board without a line is a draw", func(t *testing.T) {
		// Given: a new game with O to move
		game, err := NewGame("123", []Player{adam, tom}, fixedRandom(1))
		require.NoError(t, err)

		// When: the board is filled as X O X / O X O / O X O
		for _, selection := range []int{2, 1, 4, 3, 6, 5, 7, 8, 9} {
			require.NoError(t, game.MakeTurn(selection))
		}

		// Then: the game is a draw without a winner
		assert.Equal(t, StatusDraw, game.Status)
		assert.Nil(t, game.Winner)
		assert.True(t, game.IsFinished())
	})

	t.Run("Error on Cell Already Occupied", func(t *testing.T) {
		// Given: a game where X holds cell 1
		game := newTestGame(t)
		require.NoError(t, game.MakeTurn(1))
		before := *game.Board

		// When: O selects cell 1
		err := game.MakeTurn(1)

		// Then: the selection is rejected and nothing changes
		require.ErrorIs(t, err, apperror.ErrInvalidSelection)
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, before, *game.Board)
		assert.Equal(t, tom, game.CurrentPlayer)
	})

	t.Run("Error on selections outside the board", func(t *testing.T) {
		game := newTestGame(t)

		for _, selection := range []int{0, 10, -1} {
			err := game.MakeTurn(selection)

			require.ErrorIs(t, err, apperror.ErrInvalidSelection)
		}

		assert.Equal(t, NewBoard(), game.Board)
		assert.Equal(t, adam, game.CurrentPlayer)
	})

	t.Run("Move After Game Finished", func(t *testing.T) {
		// Given: a game X has already won
		game := newTestGame(t)
		for _, selection := range []int{1, 4, 2, 5, 3} {
			require.NoError(t, game.MakeTurn(selection))
		}

		// When: another move is attempted
		err := game.MakeTurn(9)

		// Then: ErrGameFinished is returned and the cell stays empty
		require.ErrorIs(t, err, apperror.ErrGameFinished)
		assert.True(t, game.Board.IsOpen(2, 2))
	})
}

func TestGame_ConfirmOngoingState(t *testing.T) {
	t.Run("Returns nil when game is ongoing", func(t *testing.T) {
		game := &Game{Status: StatusOngoing}

		assert.NoError(t, game.ConfirmOngoingState())
	})

	t.Run("Returns ErrGameFinished when game is drawn", func(t *testing.T) {
		game := &Game{Status: StatusDraw}

		assert.ErrorIs(t, game.ConfirmOngoingState(), apperror.ErrGameFinished)
	})

	t.Run("Returns error for unknown game status", func(t *testing.T) {
		game := &Game{Status: "unknown"}

		err := game.ConfirmOngoingState()

		require.ErrorIs(t, err, ErrUnknownGameStatus)
		assert.Contains(t, err.Error(), "unknown game status")
	})
}
