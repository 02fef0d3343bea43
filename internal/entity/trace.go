package entity

// Capture is one step of a capture cascade.
type Capture struct {
	Position Position `json:"position"`
	Stones   int      `json:"stones"`
}

// MoveTrace records the mutations of a single move in the order they were
// applied, so a caller can replay them one by one.
type MoveTrace struct {
	Player   int        `json:"player"`
	Source   Position   `json:"source"`
	Stones   int        `json:"stones"`
	Drops    []Position `json:"drops"`
	Captures []Capture  `json:"captures,omitempty"`
}

// Captured returns the number of stones the move added to the mover's score.
func (that MoveTrace) Captured() int {
	total := 0
	for _, capture := range that.Captures {
		total += capture.Stones
	}
	return total
}

// Last returns the hole where the distribution stopped.
func (that MoveTrace) Last() Position {
	if len(that.Drops) == 0 {
		return that.Source
	}
	return that.Drops[len(that.Drops)-1]
}
