package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/rocketscienceinc/mancala-backend/internal/entity"
	"github.com/rocketscienceinc/mancala-backend/internal/service"
)

const helpText = `Commands:
  move <n>, <n>         play hole n (0-5) of your row
  moves                 list the holes you can play
  board                 print the board
  new [first|second]    start a new game, you move first by default
  level <name>          set the bot level: easy, medium or hard
  help                  show this help
  quit                  leave the game
`

func (that *Server) handleMove(ctx context.Context, args []string, out io.Writer) error {
	if len(args) != 1 {
		return errors.New("usage: move <n>")
	}

	hole, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("bad hole %q: %w", args[0], err)
	}

	trace, err := that.uGame.MakeTurn(hole)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "You played [%d]%s\n", hole, captureNote(trace))

	return that.startTurn(ctx, out)
}

func (that *Server) handleMoves(_ context.Context, _ []string, out io.Writer) error {
	if _, over := that.uGame.Result(); over {
		fmt.Fprintln(out, "The game is over, type new to play again")
		return nil
	}

	fmt.Fprintf(out, "Possible moves: %v\n", that.uGame.HumanMoves())
	return nil
}

func (that *Server) handleBoard(_ context.Context, _ []string, out io.Writer) error {
	board := that.uGame.Board()
	fmt.Fprint(out, board.String())

	return nil
}

func (that *Server) handleNewGame(ctx context.Context, args []string, out io.Writer) error {
	humanFirst := true
	if len(args) > 0 {
		switch args[0] {
		case "first":
		case "second":
			humanFirst = false
		default:
			return errors.New("usage: new [first|second]")
		}
	}

	that.uGame.NewGame(humanFirst)
	fmt.Fprintln(out, "New game started")

	return that.startTurn(ctx, out)
}

func (that *Server) handleLevel(_ context.Context, args []string, out io.Writer) error {
	if len(args) != 1 {
		fmt.Fprintf(out, "Bot level: %s\n", that.uGame.Level())
		return nil
	}

	level, err := service.ParseLevel(args[0])
	if err != nil {
		return err
	}

	that.uGame.SetLevel(level)
	fmt.Fprintf(out, "Bot level set to %s\n", level)

	return nil
}

func (that *Server) handleHelp(_ context.Context, _ []string, out io.Writer) error {
	fmt.Fprint(out, helpText)
	return nil
}

func (that *Server) handleQuit(_ context.Context, _ []string, _ io.Writer) error {
	return errQuit
}

// startTurn lets the bot play while it is its turn, then prints the board and
// either the result or the prompt for the human.
func (that *Server) startTurn(ctx context.Context, out io.Writer) error {
	for that.uGame.IsBotTurn() {
		fmt.Fprintln(out, "Bot is playing...")

		trace, err := that.uGame.BotTurn(ctx)
		if err != nil {
			return fmt.Errorf("bot turn failed: %w", err)
		}

		fmt.Fprintf(out, "Bot played [%d]%s\n", trace.Source.Col, captureNote(trace))
	}

	board := that.uGame.Board()
	fmt.Fprint(out, board.String())

	if winner, over := that.uGame.Result(); over {
		fmt.Fprintln(out, resultLine(board, winner))
		return nil
	}

	fmt.Fprintf(out, "Select a hole to play %v\n", that.uGame.HumanMoves())
	return nil
}

func captureNote(trace entity.MoveTrace) string {
	if captured := trace.Captured(); captured > 0 {
		return fmt.Sprintf(", captured %d", captured)
	}
	return ""
}

func resultLine(board entity.Board, winner int) string {
	scores := board.Scores()
	if winner == entity.Draw {
		return fmt.Sprintf("Game is over! Draw %d:%d", scores[0], scores[1])
	}

	players := board.Players()
	return fmt.Sprintf("Game is over! %s wins %d:%d", players[winner].Name, scores[0], scores[1])
}
