package service

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/mancala-backend/internal/apperror"
)

// Level is a bot difficulty. Its search depth grows with the level.
type Level string

const (
	LevelEasy   Level = "easy"
	LevelMedium Level = "medium"
	LevelHard   Level = "hard"
)

var levelDepths = map[Level]int{
	LevelEasy:   1,
	LevelMedium: 3,
	LevelHard:   6,
}

func ParseLevel(name string) (Level, error) {
	level := Level(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := levelDepths[level]; !ok {
		return "", fmt.Errorf("%w: %q", apperror.ErrUnknownLevel, name)
	}

	return level, nil
}

// Depth returns the search depth of the level, 0 for an unknown level.
func (that Level) Depth() int {
	return levelDepths[that]
}

func (that Level) String() string {
	return string(that)
}
