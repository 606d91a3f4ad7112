package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrInvalidSelection = errors.New("selection is unavailable")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrInvalidCell      = errors.New("invalid cell index")
	ErrInvalidMark      = errors.New("mark must be a single visible character")
	ErrDuplicateMark    = errors.New("players must have different marks")
	ErrNotEnoughPlayers = errors.New("a game needs exactly two players")
)
