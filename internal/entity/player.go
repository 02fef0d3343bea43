package entity

const (
	ComputerName = "COMPUTER"
	HumanName    = "HUMAN"
)

// Player is a seat at the board. Players are compared by value, so the two
// seats of a board must carry different names.
type Player struct {
	Name string `json:"name"`
}

func DefaultPlayers() [NumPlayers]Player {
	return [NumPlayers]Player{
		{Name: ComputerName},
		{Name: HumanName},
	}
}

// Opponent returns the index of the other seat.
func Opponent(index int) int {
	return 1 - index
}
