package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/console"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
)

var (
	ErrAddrNotFound = errors.New("redis address string is empty")
	ErrInterrupted  = errors.New("interrupted by signal")
)

// RunApp - runs one game on the console. On SIGINT or SIGTERM it stops
// waiting for input, closes its storage and returns ErrInterrupted.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	return serve(context.Background(), logger, conf, sigs, os.Stdin, os.Stdout)
}

// Run - wires the game to the given console streams.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	return serve(ctx, logger, conf, nil, in, out)
}

func serve(
	ctx context.Context,
	logger *slog.Logger,
	conf *config.Config,
	sigs <-chan os.Signal,
	in io.Reader,
	out io.Writer,
) error {
	log := logger.With("component", "app")

	players, err := conf.GamePlayers()
	if err != nil {
		return fmt.Errorf("invalid players: %w", err)
	}

	var results repository.ResultRepository
	if conf.Redis.Enabled {
		redisAddrString := conf.Redis.GetRedisAddr()
		if redisAddrString == "" {
			return ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err := redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		results = repository.NewResultRepository(redisStorage.Connection)
	}

	return runUntilSignal(ctx, log, sigs, func(ctx context.Context) error {
		return play(ctx, logger, players, results, in, out)
	})
}

// runUntilSignal - runs fn in the background and returns as soon as it is done
// or a signal arrives. A console read cannot be interrupted, so on a signal fn
// is left behind with a canceled context.
func runUntilSignal(ctx context.Context, log *slog.Logger, sigs <-chan os.Signal, fn func(context.Context) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- fn(ctx)
	}()

	select {
	case err := <-done:
		return err
	case sig := <-sigs:
		log.Info("interrupted", "signal", sig)
		return fmt.Errorf("%w: %s", ErrInterrupted, sig)
	}
}

func play(
	ctx context.Context,
	logger *slog.Logger,
	players []entity.Player,
	results repository.ResultRepository,
	in io.Reader,
	out io.Writer,
) error {
	renderer := console.NewRenderer(out)
	controller := tictactoe.NewGameController(logger, console.NewPrompter(in, out), renderer)
	random := rand.New(rand.NewSource(time.Now().UnixNano())) //nolint: gosec // turn order only
	matchUseCase := usecase.NewMatchUseCase(logger, controller, results, random)

	if _, err := matchUseCase.Play(ctx, players); err != nil {
		return fmt.Errorf("game failed: %w", err)
	}

	if results == nil {
		return nil
	}

	standings, err := matchUseCase.Standings(ctx)
	if err != nil {
		logger.With("component", "app").Error("could not load standings", "error", err)
		return nil
	}

	for _, line := range FormatStandings(standings) {
		if err = renderer.Announce(line); err != nil {
			return fmt.Errorf("failed to show standings: %w", err)
		}
	}

	return nil
}

// FormatStandings - one line per player, most wins first, then the draws.
func FormatStandings(standings *entity.Standings) []string {
	names := make([]string, 0, len(standings.Wins))
	for name := range standings.Wins {
		names = append(names, name)
	}

	sort.Slice(names, func(i, j int) bool {
		if standings.Wins[names[i]] != standings.Wins[names[j]] {
			return standings.Wins[names[i]] > standings.Wins[names[j]]
		}
		return names[i] < names[j]
	})

	lines := make([]string, 0, len(names)+2)
	lines = append(lines, "Standings:")
	for _, name := range names {
		lines = append(lines, fmt.Sprintf("  %s: %d", name, standings.Wins[name]))
	}

	return append(lines, fmt.Sprintf("  draws: %d", standings.Draws))
}
