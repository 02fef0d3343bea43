package entity

import (
	"fmt"
	"slices"
	"strings"

	"github.com/rocketscienceinc/mancala-backend/internal/apperror"
)

const (
	NumPlayers     = 2
	HolesPerPlayer = 6
	StonesPerHole  = 4

	TotalStones  = NumPlayers * HolesPerPlayer * StonesPerHole
	WinningScore = TotalStones / 2

	// Draw is the winner index reported for a finished game with equal scores.
	Draw = -1
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

// Board is the whole game state. It holds no pointers or slices, so copying
// a Board value yields an independent board.
type Board struct {
	holes   [NumPlayers][HolesPerPlayer]Hole
	scores  [NumPlayers]int
	players [NumPlayers]Player
	current int
}

// NewBoard creates a board in the initial configuration. starting is the
// index of the player who moves first; anything but 1 means player 0.
func NewBoard(players [NumPlayers]Player, starting int) *Board {
	board := &Board{
		players: players,
	}
	board.Reset(starting)

	return board
}

// NewBoardFromRows builds an arbitrary position. Stone counts are taken as
// given, so the result does not have to hold TotalStones.
func NewBoardFromRows(players [NumPlayers]Player, rows [NumPlayers][HolesPerPlayer]int, scores [NumPlayers]int, current int) *Board {
	board := NewBoard(players, current)
	for row := range rows {
		for col, stones := range rows[row] {
			board.holes[row][col].Stones = stones
		}
	}
	board.scores = scores

	return board
}

// Reset puts the board back to the initial configuration.
func (that *Board) Reset(starting int) {
	for row := range that.holes {
		for col := range that.holes[row] {
			that.holes[row][col] = Hole{
				Stones: StonesPerHole,
				Row:    row,
				Col:    col,
			}
		}
	}

	that.scores = [NumPlayers]int{}
	that.current = 0
	if starting == 1 {
		that.current = 1
	}
}

func (that *Board) Clone() Board {
	return *that
}

func (that *Board) Holes() [NumPlayers][HolesPerPlayer]Hole {
	return that.holes
}

func (that *Board) Hole(pos Position) Hole {
	return that.holes[pos.Row][pos.Col]
}

// Row returns the stone counts of one player's holes.
func (that *Board) Row(player int) [HolesPerPlayer]int {
	var row [HolesPerPlayer]int
	for col, hole := range that.holes[player] {
		row[col] = hole.Stones
	}
	return row
}

func (that *Board) Scores() [NumPlayers]int {
	return that.scores
}

func (that *Board) Players() [NumPlayers]Player {
	return that.players
}

func (that *Board) CurrentPlayer() Player {
	return that.players[that.current]
}

func (that *Board) CurrentIndex() int {
	return that.current
}

// PlayerIndex returns the seat of the player.
func (that *Board) PlayerIndex(player Player) (int, error) {
	for index, registered := range that.players {
		if registered == player {
			return index, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", apperror.ErrPlayerNotFound, player.Name)
}

// TotalStones returns the stones still on the board plus both scores.
func (that *Board) TotalStones() int {
	total := that.scores[0] + that.scores[1]
	for row := range that.holes {
		for _, hole := range that.holes[row] {
			total += hole.Stones
		}
	}
	return total
}

// PossibleMoves returns the playable columns of the player in column order.
func (that *Board) PossibleMoves(player Player) ([]int, error) {
	index, err := that.PlayerIndex(player)
	if err != nil {
		return nil, fmt.Errorf("can't get possible moves: %w", err)
	}

	return that.PossibleMovesFor(index), nil
}

// PossibleMovesFor returns the playable columns of the player at index.
// A hole with a single stone may only be played when no hole of that player
// holds more than one.
func (that *Board) PossibleMovesFor(index int) []int {
	row := &that.holes[index]

	multi := false
	for _, hole := range row {
		if hole.Stones > 1 {
			multi = true
			break
		}
	}

	moves := make([]int, 0, HolesPerPlayer)
	for col, hole := range row {
		if hole.Stones > 1 || (hole.Stones == 1 && !multi) {
			moves = append(moves, col)
		}
	}

	return moves
}

// IsMoveValid reports whether player may play hole right now. A player who
// is not the one to move has no valid move.
func (that *Board) IsMoveValid(player Player, hole int) bool {
	index, err := that.PlayerIndex(player)
	if err != nil || index != that.current {
		return false
	}

	return slices.Contains(that.PossibleMovesFor(index), hole)
}

// MakeMove plays hole for the current player. On error the board is left
// untouched.
func (that *Board) MakeMove(hole int) error {
	return that.apply(hole, nil)
}

// MakeMoveTraced plays hole like MakeMove and returns what the move did.
func (that *Board) MakeMoveTraced(hole int) (MoveTrace, error) {
	var trace MoveTrace
	if err := that.apply(hole, &trace); err != nil {
		return MoveTrace{}, err
	}

	return trace, nil
}

func (that *Board) apply(hole int, trace *MoveTrace) error {
	if that.IsGameOver() {
		return apperror.ErrGameFinished
	}

	moves := that.PossibleMovesFor(that.current)
	if !slices.Contains(moves, hole) {
		return fmt.Errorf("%w: move %d is not valid for the current player (%s), available moves: %v",
			apperror.ErrInvalidMove, hole, that.CurrentPlayer().Name, moves)
	}

	mover := that.current
	source := Position{Row: mover, Col: hole}
	if trace != nil {
		trace.Player = mover
		trace.Source = source
		trace.Stones = that.holes[source.Row][source.Col].Stones
	}

	last := that.distribute(source, trace)
	that.capture(last, mover, trace)

	that.current = Opponent(mover)

	return nil
}

// distribute empties the source hole and sows its stones one by one, returning
// the hole that received the last stone.
func (that *Board) distribute(source Position, trace *MoveTrace) Position {
	stones := that.holes[source.Row][source.Col].Stones
	that.holes[source.Row][source.Col].Stones = 0

	pos := source
	for range stones {
		pos = pos.Next()
		that.holes[pos.Row][pos.Col].Stones++

		if trace != nil {
			trace.Drops = append(trace.Drops, pos)
		}
	}

	return pos
}

// capture walks on from the last sown hole while it is an opponent hole
// holding 2 or 3 stones, moving those stones to the mover's score.
func (that *Board) capture(pos Position, mover int, trace *MoveTrace) {
	for {
		hole := &that.holes[pos.Row][pos.Col]
		if hole.BelongsTo(mover) || (hole.Stones != 2 && hole.Stones != 3) {
			return
		}

		that.scores[mover] += hole.Stones
		if trace != nil {
			trace.Captures = append(trace.Captures, Capture{Position: pos, Stones: hole.Stones})
		}
		hole.Stones = 0

		pos = pos.Next()
	}
}

// IsGameOver reports whether a score reached WinningScore or the player to
// move has nothing to play.
func (that *Board) IsGameOver() bool {
	if that.scores[0] >= WinningScore || that.scores[1] >= WinningScore {
		return true
	}

	return len(that.PossibleMovesFor(that.current)) == 0
}

// Winner returns the index of the player with the higher score, or Draw on
// equal scores. ok is false while the game is in progress.
func (that *Board) Winner() (winner int, ok bool) {
	if !that.IsGameOver() {
		return Draw, false
	}

	switch {
	case that.scores[0] > that.scores[1]:
		return 0, true
	case that.scores[1] > that.scores[0]:
		return 1, true
	default:
		return Draw, true
	}
}

func (that *Board) Status() string {
	if that.IsGameOver() {
		return StatusFinished
	}
	return StatusOngoing
}

func (that *Board) IsFinished() bool {
	return that.Status() == StatusFinished
}

func (that *Board) IsOngoing() bool {
	return that.Status() == StatusOngoing
}

// String renders the board for diagnostics. Row 0 is printed on top.
func (that *Board) String() string {
	var sb strings.Builder

	sb.WriteString("        0  1  2  3  4  5\n")
	for row := range that.holes {
		marker := " "
		if row == that.current {
			marker = "*"
		}

		fmt.Fprintf(&sb, "%s %-4.4s", marker, that.players[row].Name)
		for _, hole := range that.holes[row] {
			fmt.Fprintf(&sb, " %2d", hole.Stones)
		}
		fmt.Fprintf(&sb, "   score %d\n", that.scores[row])
	}

	return sb.String()
}
