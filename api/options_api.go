package api

import (
	"fmt"
	"log"
)

const defaultMinPlayers = 2

type Option func(*RequestProcessor) error

// WithBoardSize skips the board size prompt. Zero values keep the prompt.
func WithBoardSize(width, height int) Option {
	return func(rp *RequestProcessor) error {
		if width < 0 || height < 0 {
			return fmt.Errorf("board size must not be negative, got: %dx%d", width, height)
		}
		rp.boardWidth = width
		rp.boardHeight = height
		return nil
	}
}

func WithMinPlayers(n int) Option {
	return func(rp *RequestProcessor) error {
		if n < defaultMinPlayers {
			return fmt.Errorf("a game needs at least %d players, got: %d", defaultMinPlayers, n)
		}
		rp.minPlayers = n
		return nil
	}
}

func WithLogger(logger *log.Logger) Option {
	return func(rp *RequestProcessor) error {
		if logger == nil {
			return fmt.Errorf("logger must not be nil")
		}
		rp.logger = logger
		return nil
	}
}
