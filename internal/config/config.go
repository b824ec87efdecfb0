package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	LogLevel    string `yaml:"log-level"    env:"TICTACTOE_LOG_LEVEL"    env-default:"error"`
	FirstPlayer string `yaml:"first-player" env:"TICTACTOE_FIRST_PLAYER" env-default:""`
	Color       bool   `yaml:"color"        env:"TICTACTOE_COLOR"`
	ClearScreen bool   `yaml:"clear-screen" env:"TICTACTOE_CLEAR_SCREEN"`
}

// Load - reads .env (if any) into the environment, then the yml config file.
// A missing config file falls back to environment variables and defaults.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("unable to load .env file: %w", err)
	}

	// bools default to true here: env-default would overwrite an explicit false
	config := &Config{
		Color:       true,
		ClearScreen: true,
	}

	if _, err := os.Stat(path); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("unable to stat config file: %w", err)
		}

		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read config from env: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}
