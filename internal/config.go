package internal

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	mb "github.com/saeidalz13/red-alert/models/battleship"
)

const (
	StageProd = "prod"
	StageDev  = "dev"

	defaultMinPlayers = 2
)

// Config holds the runtime settings. A zero board size means the driver
// asks for it.
type Config struct {
	Stage       string
	BoardWidth  int
	BoardHeight int
	MinPlayers  int
}

// LoadConfig reads the environment, loading envFile first unless STAGE is prod.
func LoadConfig(envFile string) (Config, error) {
	if os.Getenv("STAGE") != StageProd {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return Config{}, err
		}
	}

	cfg := Config{
		Stage:      os.Getenv("STAGE"),
		MinPlayers: defaultMinPlayers,
	}
	if cfg.Stage == "" {
		cfg.Stage = StageDev
	}
	if cfg.Stage != StageDev && cfg.Stage != StageProd {
		return Config{}, fmt.Errorf("stage must be either dev or prod, got: %s", cfg.Stage)
	}

	var err error
	if cfg.BoardWidth, err = intFromEnv("BOARD_WIDTH", 0); err != nil {
		return Config{}, err
	}
	if cfg.BoardHeight, err = intFromEnv("BOARD_HEIGHT", 0); err != nil {
		return Config{}, err
	}
	if err := checkBoardSize("BOARD_WIDTH", cfg.BoardWidth, mb.MinBoardWidth, mb.MaxBoardWidth); err != nil {
		return Config{}, err
	}
	if err := checkBoardSize("BOARD_HEIGHT", cfg.BoardHeight, mb.MinBoardHeight, mb.MaxBoardHeight); err != nil {
		return Config{}, err
	}
	if cfg.MinPlayers, err = intFromEnv("MIN_PLAYERS", defaultMinPlayers); err != nil {
		return Config{}, err
	}
	if cfg.MinPlayers < defaultMinPlayers {
		return Config{}, fmt.Errorf("MIN_PLAYERS must be at least %d, got: %d", defaultMinPlayers, cfg.MinPlayers)
	}

	return cfg, nil
}

func intFromEnv(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

// zero means unset and is left to the driver
func checkBoardSize(key string, size, minSize, maxSize int) error {
	if size != 0 && (size < minSize || size > maxSize) {
		return fmt.Errorf("%s must be in [%d, %d], got: %d", key, minSize, maxSize, size)
	}
	return nil
}
