package tictactoe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

type input interface {
	RequestSelection(ctx context.Context, player entity.Player) (int, error)
}

type output interface {
	RenderGuide() error
	Render(board *entity.Board) error
	Announce(message string) error
}

// GameController drives one game from the first move to a win or a draw.
type GameController struct {
	logger *slog.Logger
	input  input
	output output
}

func NewGameController(logger *slog.Logger, input input, output output) *GameController {
	return &GameController{
		logger: logger.With("component", "game_controller"),
		input:  input,
		output: output,
	}
}

// Play - runs the move loop until the game reaches a terminal status.
func (that *GameController) Play(ctx context.Context, game *entity.Game) error {
	log := that.logger.With("method", "Play", "game_id", game.ID)

	if err := game.ConfirmOngoingState(); err != nil {
		return fmt.Errorf("cannot play game: %w", err)
	}

	if err := that.greet(game); err != nil {
		return err
	}

	for game.IsOngoing() {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("game interrupted: %w", err)
		}

		player := game.CurrentPlayer

		selection, err := that.requestValidSelection(ctx, game)
		if err != nil {
			return err
		}

		if err = game.MakeTurn(selection); err != nil {
			return fmt.Errorf("failed to make turn: %w", err)
		}

		log.Debug("turn applied", "player", player.Name, "selection", selection, "status", game.Status)

		if err = that.output.Render(game.Board); err != nil {
			return fmt.Errorf("failed to render board: %w", err)
		}
	}

	log.Info("game finished", "status", game.Status)

	return that.announceResult(game)
}

// requestValidSelection - keeps asking the current player until the selection can be played.
func (that *GameController) requestValidSelection(ctx context.Context, game *entity.Game) (int, error) {
	for {
		selection, err := that.input.RequestSelection(ctx, game.CurrentPlayer)
		if err != nil {
			return 0, fmt.Errorf("failed to request selection: %w", err)
		}

		_, err = game.ValidateSelection(selection)
		if err == nil {
			return selection, nil
		}

		if !errors.Is(err, apperror.ErrInvalidSelection) {
			return 0, fmt.Errorf("failed to validate selection: %w", err)
		}

		that.logger.Debug("selection rejected", "player", game.CurrentPlayer.Name, "selection", selection, "error", err)

		if err = that.output.Announce(fmt.Sprintf("Sorry, %d is unavailable.", selection)); err != nil {
			return 0, fmt.Errorf("failed to announce rejection: %w", err)
		}
	}
}

func (that *GameController) greet(game *entity.Game) error {
	welcome := fmt.Sprintf("Welcome to Tic-Tac-Toe, %s and %s!", game.CurrentPlayer, game.OtherPlayer)
	if err := that.output.Announce(welcome); err != nil {
		return fmt.Errorf("failed to greet players: %w", err)
	}

	if err := that.output.RenderGuide(); err != nil {
		return fmt.Errorf("failed to render guide: %w", err)
	}

	if err := that.output.Announce(fmt.Sprintf("%s, you go first.", game.CurrentPlayer)); err != nil {
		return fmt.Errorf("failed to greet players: %w", err)
	}

	return nil
}

func (that *GameController) announceResult(game *entity.Game) error {
	if err := that.output.Announce(ResultMessage(game)); err != nil {
		return fmt.Errorf("failed to announce result: %w", err)
	}

	return nil
}

// ResultMessage - final text for a finished game.
func ResultMessage(game *entity.Game) string {
	if game.Status == entity.StatusWon && game.Winner != nil {
		return fmt.Sprintf("Congratulations, %s, you win!", *game.Winner)
	}

	return "It's a draw!"
}
