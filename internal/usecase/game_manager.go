package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/mancala-backend/internal/apperror"
	"github.com/rocketscienceinc/mancala-backend/internal/entity"
	"github.com/rocketscienceinc/mancala-backend/internal/service"
)

// Seats of a human-versus-bot session.
const (
	BotSeat   = 0
	HumanSeat = 1
)

type Bot interface {
	Level() service.Level
	BestMoveAsync(ctx context.Context, board entity.Board) <-chan service.Result
}

// BotFactory builds the bot for a difficulty level.
type BotFactory func(level service.Level) Bot

// GameManager owns the board of a single human-versus-bot session.
type GameManager struct {
	logger *slog.Logger

	newBot BotFactory
	bot    Bot
	board  *entity.Board
}

func NewGameManager(logger *slog.Logger, players [entity.NumPlayers]entity.Player, newBot BotFactory, level service.Level, humanFirst bool) *GameManager {
	manager := &GameManager{
		logger: logger.With("component", "game-manager"),
		newBot: newBot,
		bot:    newBot(level),
		board:  entity.NewBoard(players, BotSeat),
	}
	manager.NewGame(humanFirst)

	return manager
}

// NewGame resets the board, keeping the players and the bot.
func (that *GameManager) NewGame(humanFirst bool) {
	starting := BotSeat
	if humanFirst {
		starting = HumanSeat
	}

	that.board.Reset(starting)
	that.logger.Info("new game", "starting", that.board.CurrentPlayer().Name, "level", that.bot.Level().String())
}

func (that *GameManager) SetLevel(level service.Level) {
	that.bot = that.newBot(level)
	that.logger.Info("bot level changed", "level", level.String())
}

func (that *GameManager) Level() service.Level {
	return that.bot.Level()
}

// Board returns a copy of the current board.
func (that *GameManager) Board() entity.Board {
	return that.board.Clone()
}

func (that *GameManager) IsBotTurn() bool {
	return !that.board.IsGameOver() && that.board.CurrentIndex() == BotSeat
}

// HumanMoves returns the columns the human may play now.
func (that *GameManager) HumanMoves() []int {
	if that.board.IsGameOver() || that.board.CurrentIndex() != HumanSeat {
		return nil
	}
	return that.board.PossibleMovesFor(HumanSeat)
}

// MakeTurn plays hole for the human seat.
func (that *GameManager) MakeTurn(hole int) (entity.MoveTrace, error) {
	if err := that.confirmTurn(HumanSeat); err != nil {
		return entity.MoveTrace{}, err
	}

	trace, err := that.board.MakeMoveTraced(hole)
	if err != nil {
		return entity.MoveTrace{}, fmt.Errorf("failed make turn: %w", err)
	}

	that.logTurn(trace)

	return trace, nil
}

// BotTurn asks the bot for a move and plays it. If ctx ends first the
// pending search result is dropped and the board is left as it was.
func (that *GameManager) BotTurn(ctx context.Context) (entity.MoveTrace, error) {
	if err := that.confirmTurn(BotSeat); err != nil {
		return entity.MoveTrace{}, err
	}

	var result service.Result
	select {
	case result = <-that.bot.BestMoveAsync(ctx, that.board.Clone()):
	case <-ctx.Done():
		return entity.MoveTrace{}, fmt.Errorf("bot turn abandoned: %w", ctx.Err())
	}

	if result.Err != nil {
		return entity.MoveTrace{}, fmt.Errorf("bot failed to choose a move: %w", result.Err)
	}

	trace, err := that.board.MakeMoveTraced(result.Move)
	if err != nil {
		return entity.MoveTrace{}, fmt.Errorf("bot failed to make turn: %w", err)
	}

	that.logTurn(trace)

	return trace, nil
}

// Result reports the winner seat, entity.Draw on a tie, and whether the
// game is over.
func (that *GameManager) Result() (int, bool) {
	return that.board.Winner()
}

func (that *GameManager) confirmTurn(seat int) error {
	if that.board.IsGameOver() {
		return apperror.ErrGameFinished
	}

	if that.board.CurrentIndex() != seat {
		return apperror.ErrNotYourTurn
	}

	return nil
}

func (that *GameManager) logTurn(trace entity.MoveTrace) {
	log := that.logger.With("method", "logTurn")

	log.Debug("turn made",
		"player", trace.Player,
		"hole", trace.Source.Col,
		"stones", trace.Stones,
		"captured", trace.Captured(),
	)

	if winner, over := that.board.Winner(); over {
		log.Info("game finished", "winner", winner, "scores", that.board.Scores())
	}
}
