// internal/game/types.go
//
// Core type definitions for the Mastermind game engine.
// Defines:
//   - Code:  an ordered peg sequence (the secret, or a guess).
//   - Mark:  per-position result of a guess (exact/present/absent).
//   - Score: the marks for one guess.
//   - State: coarse session state (awaiting guess/won/lost).

package game

import (
	"strings"

	"github.com/robalobadob/mastermind/internal/palette"
)

// Code is an ordered sequence of symbols. Secrets and guesses share it.
type Code []palette.Symbol

// Guess is a player-submitted Code for one attempt.
type Guess = Code

// String renders the code as its letters, e.g. "rgby".
func (c Code) String() string {
	var b strings.Builder
	b.Grow(len(c))
	for _, s := range c {
		b.WriteByte(byte(s))
	}
	return b.String()
}

// Equal reports whether both codes hold the same symbols position-wise.
func (c Code) Equal(o Code) bool {
	if len(c) != len(o) {
		return false
	}
	for i := range c {
		if c[i] != o[i] {
			return false
		}
	}
	return true
}

// Mark represents the evaluation result for a single position in a guess.
// The values are the characters the terminal shows:
//   - 'X': symbol is correct and in the correct position.
//   - 'O': symbol exists in the code but in a different position.
//   - '-': symbol has no remaining match in the code.
type Mark byte

const (
	MarkExact   Mark = 'X'
	MarkPresent Mark = 'O'
	MarkAbsent  Mark = '-'
)

func (m Mark) String() string { return string(rune(m)) }

// Score holds one Mark per guess position.
type Score []Mark

// String renders the marks, e.g. "XO--".
func (s Score) String() string {
	var b strings.Builder
	b.Grow(len(s))
	for _, m := range s {
		b.WriteByte(byte(m))
	}
	return b.String()
}

// Solved reports whether every mark is MarkExact.
func (s Score) Solved() bool {
	if len(s) == 0 {
		return false
	}
	for _, m := range s {
		if m != MarkExact {
			return false
		}
	}
	return true
}

// Count returns how many positions carry mark m.
func (s Score) Count(m Mark) int {
	n := 0
	for _, x := range s {
		if x == m {
			n++
		}
	}
	return n
}

// State is the coarse lifecycle state of a Session.
type State string

const (
	StateAwaitingGuess State = "awaiting_guess"
	StateWon           State = "won"
	StateLost          State = "lost"
)

// Finished reports whether the state is terminal.
func (s State) Finished() bool { return s == StateWon || s == StateLost }
