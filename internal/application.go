package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/mancala-backend/internal/config"
	"github.com/rocketscienceinc/mancala-backend/internal/entity"
	"github.com/rocketscienceinc/mancala-backend/internal/service"
	"github.com/rocketscienceinc/mancala-backend/internal/transport/console"
	"github.com/rocketscienceinc/mancala-backend/internal/usecase"
)

const (
	CommandPlay  = "play"
	CommandMatch = "match"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrMatchLevels    = errors.New("a match needs exactly two levels")
)

// RunApp - runs the application command.
func RunApp(logger *slog.Logger, conf *config.Config, command string) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	players := [entity.NumPlayers]entity.Player{
		usecase.BotSeat:   {Name: conf.Players.Computer},
		usecase.HumanSeat: {Name: conf.Players.Human},
	}

	var err error
	switch command {
	case CommandPlay:
		err = runPlay(ctx, logger, conf, players, os.Stdin, os.Stdout)
	case CommandMatch:
		err = runMatch(ctx, logger, conf, players, os.Stdout)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, command)
	}

	if errors.Is(err, context.Canceled) {
		log.Info("Application context canceled, shutting down")
		return nil
	}

	return err
}

func runPlay(ctx context.Context, logger *slog.Logger, conf *config.Config, players [entity.NumPlayers]entity.Player, in io.Reader, out io.Writer) error {
	level, err := service.ParseLevel(conf.Bot.Level)
	if err != nil {
		return fmt.Errorf("invalid bot config: %w", err)
	}

	newBot := func(level service.Level) usecase.Bot {
		return service.NewBotService(logger, level)
	}

	gameManager := usecase.NewGameManager(logger, players, newBot, level, !conf.Bot.First)

	if err = console.New(logger, gameManager).Serve(ctx, in, out); err != nil {
		return fmt.Errorf("console session failed: %w", err)
	}

	return nil
}

func runMatch(ctx context.Context, logger *slog.Logger, conf *config.Config, players [entity.NumPlayers]entity.Player, out io.Writer) error {
	if len(conf.Match.Levels) != entity.NumPlayers {
		return fmt.Errorf("%w, got %v", ErrMatchLevels, conf.Match.Levels)
	}

	var levels [entity.NumPlayers]service.Level
	for i, name := range conf.Match.Levels {
		level, err := service.ParseLevel(name)
		if err != nil {
			return fmt.Errorf("invalid match config: %w", err)
		}
		levels[i] = level
	}

	runner := usecase.NewMatchRunner(logger, players, func(level service.Level) service.BotService {
		return service.NewBotService(logger, level)
	})

	result, err := runner.RunMatch(ctx, usecase.Match{
		Games:   conf.Match.Games,
		Workers: conf.Match.Workers,
		Levels:  levels,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%d games: %s won %d, %s won %d, %d draws (%d capped at %d plies)\n",
		result.Games, levels[0], result.Wins[0], levels[1], result.Wins[1], result.Draws, result.Capped, usecase.MaxPlies)

	return nil
}
