package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/mancala-backend/internal/entity"
	"github.com/rocketscienceinc/mancala-backend/internal/service"
)

var errQuit = errors.New("quit")

type uGame interface {
	Board() entity.Board
	HumanMoves() []int
	IsBotTurn() bool
	Result() (int, bool)

	MakeTurn(hole int) (entity.MoveTrace, error)
	BotTurn(ctx context.Context) (entity.MoveTrace, error)

	NewGame(humanFirst bool)
	SetLevel(level service.Level)
	Level() service.Level
}

type handlerFunc func(ctx context.Context, args []string, out io.Writer) error

// Server runs a text session against one game, one command per line.
type Server struct {
	logger *slog.Logger
	uGame  uGame

	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, uGame uGame) *Server {
	server := &Server{
		logger: logger.With("component", "console"),
		uGame:  uGame,

		handlers: make(map[string]handlerFunc),
	}

	server.handlers["move"] = server.handleMove
	server.handlers["moves"] = server.handleMoves
	server.handlers["board"] = server.handleBoard
	server.handlers["new"] = server.handleNewGame
	server.handlers["level"] = server.handleLevel
	server.handlers["help"] = server.handleHelp
	server.handlers["quit"] = server.handleQuit

	return server
}

// Serve reads commands from in until EOF, quit or the end of ctx.
func (that *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	log := that.logger.With("method", "Serve")

	fmt.Fprintln(out, "Mancala game")
	fmt.Fprintf(out, "Bot level: %s. Type help for the commands.\n", that.uGame.Level())

	if err := that.startTurn(ctx, out); err != nil {
		return err
	}

	// Stops the reader goroutine once the session ends.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := readLines(ctx, in)

	for {
		fmt.Fprint(out, "> ")

		var line string
		var ok bool
		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			return ctx.Err()
		case line, ok = <-lines:
		}

		if !ok {
			fmt.Fprintln(out)
			log.Info("input closed")
			return nil
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		if _, err := strconv.Atoi(fields[0]); err == nil {
			fields = append([]string{"move"}, fields...)
		}

		handler, exists := that.handlers[strings.ToLower(fields[0])]
		if !exists {
			fmt.Fprintf(out, "unknown command %q, type help\n", fields[0])
			continue
		}

		err := handler(ctx, fields[1:], out)
		switch {
		case errors.Is(err, errQuit):
			fmt.Fprintln(out, "Bye!")
			return nil
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return err
		case err != nil:
			log.Debug("command failed", "command", fields[0], "error", err)
			fmt.Fprintf(out, "error: %v\n", err)
		}
	}
}

// readLines feeds the lines of in to the returned channel, closing it on EOF
// or a read error.
func readLines(ctx context.Context, in io.Reader) <-chan string {
	lines := make(chan string)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	return lines
}
