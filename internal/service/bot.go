package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/mancala-backend/internal/apperror"
	"github.com/rocketscienceinc/mancala-backend/internal/entity"
	"github.com/rocketscienceinc/mancala-backend/internal/minimax"
)

// Result is the outcome of an asynchronous search.
type Result struct {
	Move int
	Err  error
}

type BotService interface {
	Level() Level

	BestMove(board entity.Board) (int, error)
	BestMoveAsync(ctx context.Context, board entity.Board) <-chan Result

	MakeTurn(board *entity.Board) (int, error)
}

type botService struct {
	logger *slog.Logger
	level  Level

	searchOpts []minimax.Option
}

// NewBotService builds a bot searching at the depth of level. searchOpts are
// passed to every search it runs.
func NewBotService(logger *slog.Logger, level Level, searchOpts ...minimax.Option) BotService {
	return &botService{
		logger: logger.With("component", "bot", "level", level.String()),
		level:  level,

		searchOpts: searchOpts,
	}
}

func (that *botService) Level() Level {
	return that.level
}

// BestMove searches board for the player to move.
func (that *botService) BestMove(board entity.Board) (int, error) {
	if board.IsGameOver() {
		return 0, apperror.ErrGameFinished
	}

	start := time.Now()
	search := minimax.New(that.searchOpts...)
	move := search.BestMove(board, that.level.Depth())
	stats := search.Stats()

	that.logger.Debug("move chosen",
		"player", board.CurrentIndex(),
		"move", move,
		"nodes", stats.Nodes,
		"cutoffs", stats.Cutoffs,
		"elapsed", time.Since(start),
	)

	return move, nil
}

// BestMoveAsync runs BestMove on its own goroutine. The search always runs to
// completion; a caller that gives up on ctx simply never reads the result.
func (that *botService) BestMoveAsync(ctx context.Context, board entity.Board) <-chan Result {
	out := make(chan Result, 1)

	go func() {
		defer close(out)

		if err := ctx.Err(); err != nil {
			out <- Result{Err: err}
			return
		}

		move, err := that.BestMove(board)
		out <- Result{Move: move, Err: err}
	}()

	return out
}

// MakeTurn picks a move for the player to move and plays it on board.
func (that *botService) MakeTurn(board *entity.Board) (int, error) {
	move, err := that.BestMove(*board)
	if err != nil {
		return 0, err
	}

	if err = board.MakeMove(move); err != nil {
		return 0, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return move, nil
}
