package game

import (
	"errors"
	"fmt"

	"github.com/robalobadob/mastermind/internal/palette"
)

// Board defaults.
const (
	DefaultSymbols       = 6
	DefaultLength        = 4
	DefaultMaxDuplicates = 2
	DefaultAttempts      = 10
)

// ErrInvalidConfig wraps every configuration failure.
var ErrInvalidConfig = errors.New("invalid game config")

// Config is the immutable board configuration passed to every component.
type Config struct {
	Symbols       int // active prefix of the alphabet
	Length        int // pegs per code
	MaxDuplicates int // max occurrences of one symbol in a code or guess
	Attempts      int // scored guesses allowed before the game is lost
}

// DefaultConfig returns the classic 6 colors, 4 pegs, 2 duplicates, 10 attempts board.
func DefaultConfig() Config {
	return Config{
		Symbols:       DefaultSymbols,
		Length:        DefaultLength,
		MaxDuplicates: DefaultMaxDuplicates,
		Attempts:      DefaultAttempts,
	}
}

// Validate rejects boards that cannot be played.
func (c Config) Validate() error {
	if _, err := palette.Active(c.Symbols); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Length < 1 {
		return fmt.Errorf("%w: length %d must be positive", ErrInvalidConfig, c.Length)
	}
	if c.MaxDuplicates < 1 {
		return fmt.Errorf("%w: duplicate allowance %d must be positive", ErrInvalidConfig, c.MaxDuplicates)
	}
	if c.Attempts < 1 {
		return fmt.Errorf("%w: attempts %d must be positive", ErrInvalidConfig, c.Attempts)
	}
	if c.Symbols*c.MaxDuplicates < c.Length {
		return fmt.Errorf("%w: %d symbols with %d duplicates cannot fill %d pegs",
			ErrInvalidConfig, c.Symbols, c.MaxDuplicates, c.Length)
	}
	return nil
}

// Active returns the active symbol set.
func (c Config) Active() (palette.Set, error) {
	set, err := palette.Active(c.Symbols)
	if err != nil {
		return palette.Set{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return set, nil
}
