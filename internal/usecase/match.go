package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

type MatchUseCase interface {
	Play(ctx context.Context, players []entity.Player) (*entity.Game, error)
	Standings(ctx context.Context) (*entity.Standings, error)
}

type gameController interface {
	Play(ctx context.Context, game *entity.Game) error
}

type resultRepo interface {
	Save(ctx context.Context, result *entity.Result) error
	Standings(ctx context.Context) (*entity.Standings, error)
}

type randomizer interface {
	Intn(n int) int
}

type matchUseCase struct {
	logger     *slog.Logger
	controller gameController
	resultRepo resultRepo
	random     randomizer
	now        func() time.Time
}

// NewMatchUseCase - resultRepo may be nil, finished games are then not recorded.
func NewMatchUseCase(logger *slog.Logger, controller gameController, resultRepo resultRepo, random randomizer) MatchUseCase {
	return &matchUseCase{
		logger:     logger.With("component", "match"),
		controller: controller,
		resultRepo: resultRepo,
		random:     random,
		now:        time.Now,
	}
}

func (that *matchUseCase) Play(ctx context.Context, players []entity.Player) (*entity.Game, error) {
	game, err := entity.NewGame(uuid.NewString(), players, that.random)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	log := that.logger.With("method", "Play", "game_id", game.ID)
	log.Info("game started", "first", game.CurrentPlayer.Name)

	if err = that.controller.Play(ctx, game); err != nil {
		return game, fmt.Errorf("failed to play game: %w", err)
	}

	that.recordResult(ctx, game)

	return game, nil
}

func (that *matchUseCase) Standings(ctx context.Context) (*entity.Standings, error) {
	if that.resultRepo == nil {
		return &entity.Standings{Wins: map[string]int64{}}, nil
	}

	standings, err := that.resultRepo.Standings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get standings: %w", err)
	}

	return standings, nil
}

// recordResult - a failed write only costs the standings entry, so it is logged and dropped.
func (that *matchUseCase) recordResult(ctx context.Context, game *entity.Game) {
	if that.resultRepo == nil {
		return
	}

	log := that.logger.With("method", "recordResult", "game_id", game.ID)

	if err := that.resultRepo.Save(ctx, entity.NewResult(game, that.now())); err != nil {
		log.Error("failed to save result", "error", err)
		return
	}

	log.Info("result saved", "status", game.Status)
}
