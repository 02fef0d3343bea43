package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"MANCALA_LOG_LEVEL" env-default:"info"`
	Bot      Bot     `yaml:"bot"`
	Players  Players `yaml:"players"`
	Match    Match   `yaml:"match"`
}

type Bot struct {
	Level string `yaml:"level" env:"MANCALA_BOT_LEVEL" env-default:"medium"`
	// cleanenv applies defaults to zero values only, so the flag defaults to false.
	First bool `yaml:"first" env:"MANCALA_BOT_FIRST"`
}

type Players struct {
	Computer string `yaml:"computer" env:"MANCALA_COMPUTER_NAME" env-default:"COMPUTER"`
	Human    string `yaml:"human" env:"MANCALA_HUMAN_NAME" env-default:"HUMAN"`
}

type Match struct {
	Games   int      `yaml:"games" env:"MANCALA_MATCH_GAMES" env-default:"10"`
	Workers int      `yaml:"workers" env:"MANCALA_MATCH_WORKERS" env-default:"4"`
	Levels  []string `yaml:"levels" env:"MANCALA_MATCH_LEVELS" env-default:"easy,hard" env-separator:","`
}

// MustLoad - load configuration from the yaml file at path, or from the
// environment alone when there is no such file.
func MustLoad(path string) *Config {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			panic(fmt.Errorf("unable to load config file: %w", err))
		}
	case errors.Is(err, fs.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			panic(fmt.Errorf("unable to load config from env: %w", err))
		}
	default:
		panic(fmt.Errorf("unable to stat config file: %w", err))
	}

	return config
}
