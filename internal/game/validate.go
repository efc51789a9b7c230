package game

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/robalobadob/mastermind/internal/palette"
)

// Rejection kinds for guesses. Match them with errors.Is.
var (
	ErrWrongLength       = errors.New("wrong length")
	ErrInvalidSymbol     = errors.New("invalid symbol")
	ErrTooManyDuplicates = errors.New("too many duplicates of a symbol")
)

// GuessError explains why a guess was rejected. Its message is shown to the
// player as-is.
type GuessError struct {
	Kind          error
	Symbol        rune // offending character, for ErrInvalidSymbol
	Length        int
	MaxDuplicates int
}

func (e *GuessError) Error() string {
	switch e.Kind {
	case ErrWrongLength:
		return fmt.Sprintf("Please enter exactly %d choices", e.Length)
	case ErrInvalidSymbol:
		return fmt.Sprintf("Invalid color: %c.", e.Symbol)
	case ErrTooManyDuplicates:
		return fmt.Sprintf("Only %d of each color are allowed in the code.", e.MaxDuplicates)
	}
	return "invalid guess"
}

func (e *GuessError) Unwrap() error { return e.Kind }

// Normalize trims surrounding whitespace and lower-cases raw input.
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// Validate checks a normalized guess against cfg.
// Rules run in order and the first failure wins:
//  1. exactly cfg.Length symbols
//  2. every symbol in the active set (the first offender is reported)
//  3. no symbol more than cfg.MaxDuplicates times
func Validate(input string, cfg Config) error {
	set, err := cfg.Active()
	if err != nil {
		return err
	}
	if utf8.RuneCountInString(input) != cfg.Length {
		return &GuessError{Kind: ErrWrongLength, Length: cfg.Length}
	}

	counts := make(map[palette.Symbol]int, cfg.Length)
	for _, r := range input {
		s, ok := palette.Parse(r)
		if !ok || !set.Contains(s) {
			return &GuessError{Kind: ErrInvalidSymbol, Symbol: r}
		}
		counts[s]++
	}

	for _, n := range counts {
		if n > cfg.MaxDuplicates {
			return &GuessError{Kind: ErrTooManyDuplicates, MaxDuplicates: cfg.MaxDuplicates}
		}
	}
	return nil
}

// ParseGuess normalizes and validates raw input, returning it as a Code.
func ParseGuess(raw string, cfg Config) (Guess, error) {
	input := Normalize(raw)
	if err := Validate(input, cfg); err != nil {
		return nil, err
	}
	g := make(Guess, 0, cfg.Length)
	for _, r := range input {
		g = append(g, palette.Symbol(r))
	}
	return g, nil
}
