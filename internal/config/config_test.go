package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustLoad(t *testing.T) {
	t.Run("Reads the yaml file", func(t *testing.T) {
		// Given: a config file overriding some fields
		path := filepath.Join(t.TempDir(), "config.yml")
		content := `log-level: debug
bot:
  level: hard
  first: true
players:
  computer: ROBOT
match:
  games: 20
  levels: [medium, hard]
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: loading it
		conf := MustLoad(path)

		// Then: file values win and the rest falls back to defaults
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "hard", conf.Bot.Level)
		assert.True(t, conf.Bot.First)
		assert.Equal(t, "ROBOT", conf.Players.Computer)
		assert.Equal(t, "HUMAN", conf.Players.Human)
		assert.Equal(t, 20, conf.Match.Games)
		assert.Equal(t, 4, conf.Match.Workers)
		assert.Equal(t, []string{"medium", "hard"}, conf.Match.Levels)
	})

	t.Run("Falls back to defaults without a file", func(t *testing.T) {
		conf := MustLoad(filepath.Join(t.TempDir(), "missing.yml"))

		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, "medium", conf.Bot.Level)
		assert.False(t, conf.Bot.First)
		assert.Equal(t, "COMPUTER", conf.Players.Computer)
		assert.Equal(t, 10, conf.Match.Games)
		assert.Equal(t, []string{"easy", "hard"}, conf.Match.Levels)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		// Given: a file and an env variable for the same field
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("bot:\n  level: hard\n"), 0o600))
		t.Setenv("MANCALA_BOT_LEVEL", "easy")
		t.Setenv("MANCALA_MATCH_WORKERS", "2")

		// When: loading
		conf := MustLoad(path)

		// Then: the env values win
		assert.Equal(t, "easy", conf.Bot.Level)
		assert.Equal(t, 2, conf.Match.Workers)
	})

	t.Run("Panics on a broken file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("bot: [\n"), 0o600))

		assert.Panics(t, func() {
			MustLoad(path)
		})
	})
}
