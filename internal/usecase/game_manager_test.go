package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/mancala-backend/internal/apperror"
	"github.com/rocketscienceinc/mancala-backend/internal/entity"
	"github.com/rocketscienceinc/mancala-backend/internal/minimax"
	"github.com/rocketscienceinc/mancala-backend/internal/service"
	mockedUseCase "github.com/rocketscienceinc/mancala-backend/mocks/usecase"
)

var errSearchFailed = errors.New("search failed")

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func resultOf(move int, err error) <-chan service.Result {
	out := make(chan service.Result, 1)
	out <- service.Result{Move: move, Err: err}
	close(out)

	return out
}

func newMockedManager(t *testing.T, humanFirst bool) (*GameManager, *mockedUseCase.MockBot) {
	t.Helper()

	mockBot := mockedUseCase.NewMockBot(t)
	mockBot.EXPECT().Level().Return(service.LevelMedium).Maybe()

	factory := func(service.Level) Bot { return mockBot }
	manager := NewGameManager(newTestLogger(), entity.DefaultPlayers(), factory, service.LevelMedium, humanFirst)

	return manager, mockBot
}

func TestGameManager_NewGame(t *testing.T) {
	t.Run("Human moves first when asked to", func(t *testing.T) {
		// Given: a manager with the human first
		manager, _ := newMockedManager(t, true)

		// Then: the human is to move on a fresh board
		assert.False(t, manager.IsBotTurn())
		assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, manager.HumanMoves())

		board := manager.Board()
		assert.Equal(t, HumanSeat, board.CurrentIndex())
		assert.Equal(t, entity.TotalStones, board.TotalStones())
	})

	t.Run("Bot moves first otherwise", func(t *testing.T) {
		manager, _ := newMockedManager(t, false)

		assert.True(t, manager.IsBotTurn())
		assert.Empty(t, manager.HumanMoves())
	})

	t.Run("Resets a game in progress", func(t *testing.T) {
		// Given: a game with one human move played
		manager, _ := newMockedManager(t, true)
		_, err := manager.MakeTurn(3)
		require.NoError(t, err)

		// When: starting over
		manager.NewGame(true)

		// Then: the board is back to the initial configuration
		board := manager.Board()
		assert.Equal(t, [entity.HolesPerPlayer]int{4, 4, 4, 4, 4, 4}, board.Row(HumanSeat))
		assert.Equal(t, [entity.HolesPerPlayer]int{4, 4, 4, 4, 4, 4}, board.Row(BotSeat))
		assert.Equal(t, HumanSeat, board.CurrentIndex())
	})
}

func TestGameManager_MakeTurn(t *testing.T) {
	t.Run("Plays the human move", func(t *testing.T) {
		// Given: the human to move
		manager, _ := newMockedManager(t, true)

		// When: playing hole 0
		trace, err := manager.MakeTurn(0)

		// Then: the stones are sown and the bot is to move
		require.NoError(t, err)
		assert.Equal(t, HumanSeat, trace.Player)
		assert.Len(t, trace.Drops, 4)

		board := manager.Board()
		assert.Equal(t, [entity.HolesPerPlayer]int{0, 5, 5, 5, 5, 4}, board.Row(HumanSeat))
		assert.True(t, manager.IsBotTurn())
	})

	t.Run("Rejects a move on the bot's turn", func(t *testing.T) {
		manager, _ := newMockedManager(t, false)

		_, err := manager.MakeTurn(0)

		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
	})

	t.Run("Rejects an invalid hole and keeps the board", func(t *testing.T) {
		// Given: the human to move
		manager, _ := newMockedManager(t, true)
		before := manager.Board()

		// When: playing a hole outside the row
		_, err := manager.MakeTurn(6)

		// Then: the move is refused
		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		assert.Equal(t, before, manager.Board())
	})
}

func TestGameManager_BotTurn(t *testing.T) {
	ctx := context.Background()

	t.Run("Plays the move chosen by the bot", func(t *testing.T) {
		// Given: a bot that picks hole 2
		manager, mockBot := newMockedManager(t, false)
		mockBot.EXPECT().
			BestMoveAsync(mock.Anything, mock.AnythingOfType("entity.Board")).
			Return(resultOf(2, nil)).
			Once()

		// When: the bot moves
		trace, err := manager.BotTurn(ctx)

		// Then: hole 2 of the bot row is emptied and the human is to move
		require.NoError(t, err)
		assert.Equal(t, entity.Position{Row: BotSeat, Col: 2}, trace.Source)

		board := manager.Board()
		assert.Equal(t, 0, board.Row(BotSeat)[2])
		assert.False(t, manager.IsBotTurn())
	})

	t.Run("Refuses to move on the human's turn", func(t *testing.T) {
		manager, _ := newMockedManager(t, true)

		_, err := manager.BotTurn(ctx)

		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
	})

	t.Run("Returns the search error", func(t *testing.T) {
		// Given: a bot whose search fails
		manager, mockBot := newMockedManager(t, false)
		mockBot.EXPECT().
			BestMoveAsync(mock.Anything, mock.Anything).
			Return(resultOf(0, errSearchFailed)).
			Once()
		before := manager.Board()

		// When: the bot moves
		_, err := manager.BotTurn(ctx)

		// Then: the error is passed on and nothing is played
		require.ErrorIs(t, err, errSearchFailed)
		assert.Equal(t, before, manager.Board())
	})

	t.Run("Rejects an illegal bot move", func(t *testing.T) {
		manager, mockBot := newMockedManager(t, false)
		mockBot.EXPECT().
			BestMoveAsync(mock.Anything, mock.Anything).
			Return(resultOf(9, nil)).
			Once()

		_, err := manager.BotTurn(ctx)

		require.ErrorIs(t, err, apperror.ErrInvalidMove)
	})

	t.Run("Gives up when the context ends", func(t *testing.T) {
		// Given: a bot that never answers and a cancelled context
		manager, mockBot := newMockedManager(t, false)
		mockBot.EXPECT().
			BestMoveAsync(mock.Anything, mock.Anything).
			Return(make(chan service.Result)).
			Once()
		before := manager.Board()

		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		// When: the bot moves
		_, err := manager.BotTurn(cancelled)

		// Then: the turn is abandoned and the board kept
		require.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, before, manager.Board())
		assert.True(t, manager.IsBotTurn())
	})
}

func TestGameManager_SetLevel(t *testing.T) {
	// Given: a factory that records the requested levels
	var requested []service.Level
	factory := func(level service.Level) Bot {
		requested = append(requested, level)
		return service.NewBotService(newTestLogger(), level)
	}
	manager := NewGameManager(newTestLogger(), entity.DefaultPlayers(), factory, service.LevelEasy, true)

	// When: changing the level
	manager.SetLevel(service.LevelHard)

	// Then: a new bot is built for it
	assert.Equal(t, []service.Level{service.LevelEasy, service.LevelHard}, requested)
	assert.Equal(t, service.LevelHard, manager.Level())
}

func TestGameManager_FullGame(t *testing.T) {
	// Given: an easy bot searching in column order and a human who always plays
	// the first possible hole, a game that ends after 30 plies
	factory := func(level service.Level) Bot {
		return service.NewBotService(newTestLogger(), level, minimax.WithShuffle(nil))
	}
	manager := NewGameManager(newTestLogger(), entity.DefaultPlayers(), factory, service.LevelEasy, true)

	// When: playing until the game ends
	for ply := 0; ply < 500; ply++ {
		if _, over := manager.Result(); over {
			break
		}

		if manager.IsBotTurn() {
			_, err := manager.BotTurn(context.Background())
			require.NoError(t, err)
			continue
		}

		_, err := manager.MakeTurn(manager.HumanMoves()[0])
		require.NoError(t, err)
	}

	// Then: the game is over and further turns are refused
	_, over := manager.Result()
	require.True(t, over)

	_, err := manager.MakeTurn(0)
	require.ErrorIs(t, err, apperror.ErrGameFinished)

	_, err = manager.BotTurn(context.Background())
	require.ErrorIs(t, err, apperror.ErrGameFinished)

	board := manager.Board()
	assert.Equal(t, entity.TotalStones, board.TotalStones())
}
