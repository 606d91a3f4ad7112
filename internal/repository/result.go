package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	resultKeyPrefix = "result:"
	winsKey         = "standings:wins"
	drawsKey        = "standings:draws"
)

var ErrResultNotFound = errors.New("result not found")

type ResultRepository interface {
	Save(ctx context.Context, result *entity.Result) error
	GetByGameID(ctx context.Context, gameID string) (*entity.Result, error)
	Standings(ctx context.Context) (*entity.Standings, error)
}

type dbResult struct {
	client *redis.Client
}

func NewResultRepository(client *redis.Client) ResultRepository {
	return &dbResult{
		client: client,
	}
}

// Save - stores the result and bumps the standings in one transaction.
func (that *dbResult) Save(ctx context.Context, result *entity.Result) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("could not marshal result: %w", err)
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, resultKeyPrefix+result.GameID, resultJSON, 0)

		if result.IsDraw() {
			pipe.Incr(ctx, drawsKey)
		} else {
			pipe.HIncrBy(ctx, winsKey, result.StandingsKey(), 1)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}

	return nil
}

func (that *dbResult) GetByGameID(ctx context.Context, gameID string) (*entity.Result, error) {
	response, err := that.client.Get(ctx, resultKeyPrefix+gameID).Result()

	if errors.Is(err, redis.Nil) {
		return nil, ErrResultNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get result by game id: %w", err)
	}

	var result entity.Result
	if err = json.Unmarshal([]byte(response), &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal result: %w", err)
	}

	return &result, nil
}

func (that *dbResult) Standings(ctx context.Context) (*entity.Standings, error) {
	rawWins, err := that.client.HGetAll(ctx, winsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get wins: %w", err)
	}

	standings := &entity.Standings{Wins: make(map[string]int64, len(rawWins))}
	for player, raw := range rawWins {
		wins, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse wins of %s: %w", player, err)
		}

		standings.Wins[player] = wins
	}

	draws, err := that.client.Get(ctx, drawsKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get draws: %w", err)
	}

	standings.Draws = draws

	return standings, nil
}
