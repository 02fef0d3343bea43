// Package minimax picks moves with a depth-limited minimax search and
// alpha-beta pruning. Player 0 maximizes Scores[0]-Scores[1], player 1
// minimizes it, whoever runs the search.
package minimax

import (
	"fmt"
	"math"

	"lukechampine.com/frand"

	"github.com/rocketscienceinc/mancala-backend/internal/entity"
)

const (
	// Win and Loss are the values of finished games from player 0's side.
	Win  = math.MaxInt
	Loss = -math.MaxInt
)

// Stats counts the work done by a Search.
type Stats struct {
	Nodes   int
	Cutoffs int
}

type Option func(*Search)

// WithShuffle replaces the move shuffling. Pass nil to explore moves in
// column order.
func WithShuffle(shuffle func(n int, swap func(i, j int))) Option {
	return func(search *Search) {
		search.shuffle = shuffle
	}
}

// Search is a single-use search context. It is not safe for concurrent use.
type Search struct {
	shuffle func(n int, swap func(i, j int))
	stats   Stats
}

func New(opts ...Option) *Search {
	search := &Search{
		shuffle: frand.Shuffle,
	}
	for _, opt := range opts {
		opt(search)
	}

	return search
}

// BestMove returns a move for the player to move on board. The board must
// have at least one legal move.
func BestMove(board entity.Board, maxDepth int) int {
	return New().BestMove(board, maxDepth)
}

// BestMove scores every legal move with a search of maxDepth plies below it
// and returns the best one for the player to move. Ties go to the move seen
// first in the shuffled order.
func (that *Search) BestMove(board entity.Board, maxDepth int) int {
	mover := board.CurrentIndex()

	moves := that.orderedMoves(&board)
	if len(moves) == 0 {
		panic(fmt.Sprintf("minimax: no legal move for player %d", mover))
	}

	best, bestScore := moves[0], 0
	for i, move := range moves {
		child := play(board, move)
		score := that.alphaBeta(&child, maxDepth, Loss, Win)

		if i == 0 || better(mover, score, bestScore) {
			best, bestScore = move, score
		}
	}

	return best
}

// Value returns the minimax value of board searched depth plies deep.
func (that *Search) Value(board entity.Board, depth int) int {
	return that.alphaBeta(&board, depth, Loss, Win)
}

func (that *Search) Stats() Stats {
	return that.stats
}

func (that *Search) alphaBeta(board *entity.Board, depth, alpha, beta int) int {
	that.stats.Nodes++

	if board.IsGameOver() {
		return terminal(board)
	}
	if depth == 0 {
		return Evaluate(board)
	}

	moves := that.orderedMoves(board)

	if board.CurrentIndex() == 0 {
		value := Loss
		for _, move := range moves {
			child := play(*board, move)
			value = max(value, that.alphaBeta(&child, depth-1, alpha, beta))
			alpha = max(alpha, value)
			if beta <= alpha {
				that.stats.Cutoffs++
				break
			}
		}
		return value
	}

	value := Win
	for _, move := range moves {
		child := play(*board, move)
		value = min(value, that.alphaBeta(&child, depth-1, alpha, beta))
		beta = min(beta, value)
		if beta <= alpha {
			that.stats.Cutoffs++
			break
		}
	}
	return value
}

func (that *Search) orderedMoves(board *entity.Board) []int {
	moves := board.PossibleMovesFor(board.CurrentIndex())
	if that.shuffle != nil {
		that.shuffle(len(moves), func(i, j int) {
			moves[i], moves[j] = moves[j], moves[i]
		})
	}

	return moves
}

// FullValue is plain minimax without pruning.
func FullValue(board entity.Board, depth int) int {
	if board.IsGameOver() {
		return terminal(&board)
	}
	if depth == 0 {
		return Evaluate(&board)
	}

	maximizing := board.CurrentIndex() == 0
	value := Win
	if maximizing {
		value = Loss
	}

	for _, move := range board.PossibleMovesFor(board.CurrentIndex()) {
		score := FullValue(play(board, move), depth-1)
		if maximizing {
			value = max(value, score)
		} else {
			value = min(value, score)
		}
	}

	return value
}

// Evaluate is the static evaluation: player 0's score lead.
func Evaluate(board *entity.Board) int {
	scores := board.Scores()
	return scores[0] - scores[1]
}

// terminal scores a finished game. A draw counts as a loss for player 0.
func terminal(board *entity.Board) int {
	if winner, _ := board.Winner(); winner == 0 {
		return Win
	}
	return Loss
}

func better(mover, score, best int) bool {
	if mover == 0 {
		return score > best
	}
	return score < best
}

// play returns a copy of board with move applied.
func play(board entity.Board, move int) entity.Board {
	if err := board.MakeMove(move); err != nil {
		panic(fmt.Errorf("minimax: generated move rejected: %w", err))
	}
	return board
}
