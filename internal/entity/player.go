package entity

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

type Player struct {
	Name string `json:"name"`
	Mark string `json:"mark"`
}

func NewPlayer(name, mark string) (Player, error) {
	if err := validateMark(mark); err != nil {
		return Player{}, err
	}

	return Player{Name: name, Mark: mark}, nil
}

func (that Player) String() string {
	return fmt.Sprintf("%s (%s's)", that.Name, that.Mark)
}

func validateMark(mark string) error {
	if utf8.RuneCountInString(mark) != 1 {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidMark, mark)
	}

	r, _ := utf8.DecodeRuneInString(mark)
	if !unicode.IsGraphic(r) || unicode.IsSpace(r) {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidMark, mark)
	}

	return nil
}
