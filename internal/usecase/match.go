package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/mancala-backend/internal/entity"
	"github.com/rocketscienceinc/mancala-backend/internal/service"
)

// MaxPlies ends a self-play game that keeps cycling. Such a game is decided
// by the scores at that point.
const MaxPlies = 500

type turnMaker interface {
	MakeTurn(board *entity.Board) (int, error)
}

// Match plays Games bot-versus-bot games between Levels[0] and Levels[1].
// Levels[0] takes seat 0 in even games and seat 1 in odd ones.
type Match struct {
	Games   int
	Workers int
	Levels  [entity.NumPlayers]service.Level
}

// MatchResult counts wins per entry of Match.Levels.
type MatchResult struct {
	Wins   [entity.NumPlayers]int
	Draws  int
	Games  int
	Capped int
}

type gameOutcome struct {
	winner int
	capped bool
}

type MatchRunner struct {
	logger  *slog.Logger
	players [entity.NumPlayers]entity.Player
	newBot  func(level service.Level) turnMaker
}

func NewMatchRunner(logger *slog.Logger, players [entity.NumPlayers]entity.Player, newBot func(level service.Level) service.BotService) *MatchRunner {
	return &MatchRunner{
		logger:  logger.With("component", "match"),
		players: players,
		newBot: func(level service.Level) turnMaker {
			return newBot(level)
		},
	}
}

// RunMatch plays the games of match concurrently, at most match.Workers at a
// time. It stops at the first failing game or when ctx ends.
func (that *MatchRunner) RunMatch(ctx context.Context, match Match) (MatchResult, error) {
	log := that.logger.With("method", "RunMatch")

	if match.Games <= 0 {
		return MatchResult{}, nil
	}

	workers := match.Workers
	if workers <= 0 {
		workers = 1
	}

	outcomes := make([]gameOutcome, match.Games)

	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(workers)

	for game := range match.Games {
		group.Go(func() error {
			outcome, err := that.playGame(gctx, game, match.Levels)
			if err != nil {
				return fmt.Errorf("game %d: %w", game, err)
			}

			outcomes[game] = outcome
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return MatchResult{}, fmt.Errorf("match aborted: %w", err)
	}

	result := MatchResult{Games: match.Games}
	for _, outcome := range outcomes {
		if outcome.capped {
			result.Capped++
		}

		if outcome.winner == entity.Draw {
			result.Draws++
		} else {
			result.Wins[outcome.winner]++
		}
	}

	log.Info("match finished",
		"levels", match.Levels,
		"wins", result.Wins,
		"draws", result.Draws,
		"capped", result.Capped,
	)

	return result, nil
}

// playGame plays one game and reports the winning entry of levels.
func (that *MatchRunner) playGame(ctx context.Context, game int, levels [entity.NumPlayers]service.Level) (gameOutcome, error) {
	// seats[i] is the entry of levels sitting at seat i.
	seats := [entity.NumPlayers]int{0, 1}
	if game%2 == 1 {
		seats = [entity.NumPlayers]int{1, 0}
	}

	bots := [entity.NumPlayers]turnMaker{
		that.newBot(levels[seats[0]]),
		that.newBot(levels[seats[1]]),
	}

	board := entity.NewBoard(that.players, 0)

	for ply := 0; ply < MaxPlies; ply++ {
		if board.IsGameOver() {
			winner, _ := board.Winner()
			return gameOutcome{winner: seatEntry(seats, winner)}, nil
		}

		if err := ctx.Err(); err != nil {
			return gameOutcome{}, err
		}

		if _, err := bots[board.CurrentIndex()].MakeTurn(board); err != nil {
			return gameOutcome{}, err
		}
	}

	if board.IsGameOver() {
		winner, _ := board.Winner()
		return gameOutcome{winner: seatEntry(seats, winner)}, nil
	}

	that.logger.Warn("game capped", "game", game, "scores", board.Scores())

	return gameOutcome{winner: seatEntry(seats, leader(board.Scores())), capped: true}, nil
}

func seatEntry(seats [entity.NumPlayers]int, winner int) int {
	if winner == entity.Draw {
		return entity.Draw
	}
	return seats[winner]
}

func leader(scores [entity.NumPlayers]int) int {
	switch {
	case scores[0] > scores[1]:
		return 0
	case scores[1] > scores[0]:
		return 1
	default:
		return entity.Draw
	}
}
