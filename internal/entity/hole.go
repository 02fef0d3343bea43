package entity

// Position addresses a hole: Row is the owning player index, Col is 0..5.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Next returns the hole that follows this one counter-clockwise. Row 0 is
// walked from column 5 down to 0 and wraps to row 1, row 1 is walked from
// column 0 up to 5 and wraps back to row 0.
func (that Position) Next() Position {
	if that.Row == 0 {
		if that.Col > 0 {
			return Position{Row: 0, Col: that.Col - 1}
		}
		return Position{Row: 1, Col: that.Col}
	}

	if that.Col < HolesPerPlayer-1 {
		return Position{Row: 1, Col: that.Col + 1}
	}
	return Position{Row: 0, Col: that.Col}
}

type Hole struct {
	Stones int `json:"stones"`
	Row    int `json:"row"`
	Col    int `json:"col"`
}

func (that Hole) Position() Position {
	return Position{Row: that.Row, Col: that.Col}
}

// BelongsTo reports whether the hole is on the given player's side.
func (that Hole) BelongsTo(player int) bool {
	return that.Row == player
}
