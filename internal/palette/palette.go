// internal/palette/palette.go
//
// Provides the symbol alphabet the game engine draws codes from.
//
// Responsibilities:
//   - Define the fixed, ordered alphabet of 8 peg colors.
//   - Build the active set for a game (a prefix of the alphabet).
//   - Supply lookups like Parse and Set.Contains for guess validation.
//
// Alphabet (in order):
//   r red, g green, b blue, y yellow, k black, w white, p purple, c cyan
//
// Constraints:
//   • Symbols are single lowercase ASCII letters.
//   • An active set holds between 1 and Size symbols.

package palette

import (
	"errors"
	"fmt"
	"strings"
)

// Symbol is a single peg color, stored as its letter.
type Symbol byte

const (
	Red    Symbol = 'r'
	Green  Symbol = 'g'
	Blue   Symbol = 'b'
	Yellow Symbol = 'y'
	Black  Symbol = 'k'
	White  Symbol = 'w'
	Purple Symbol = 'p'
	Cyan   Symbol = 'c'
)

var alphabet = [...]Symbol{Red, Green, Blue, Yellow, Black, White, Purple, Cyan}

// Size is the number of symbols in the full alphabet.
const Size = len(alphabet)

var names = map[Symbol]string{
	Red:    "red",
	Green:  "green",
	Blue:   "blue",
	Yellow: "yellow",
	Black:  "black",
	White:  "white",
	Purple: "purple",
	Cyan:   "cyan",
}

// ErrActiveRange is returned when an active set size is outside 1..Size.
var ErrActiveRange = errors.New("palette: active symbol count out of range")

// String returns the symbol's letter.
func (s Symbol) String() string { return string(rune(s)) }

// Name returns the color name ("red"), or "" for letters outside the alphabet.
func (s Symbol) Name() string { return names[s] }

// Alphabet returns a copy of the full ordered alphabet.
func Alphabet() []Symbol {
	out := make([]Symbol, Size)
	copy(out, alphabet[:])
	return out
}

// Parse maps a rune to its alphabet symbol.
// Upper-case letters are not accepted; callers lower-case input first.
func Parse(r rune) (Symbol, bool) {
	if r > 0x7f {
		return 0, false
	}
	s := Symbol(r)
	_, ok := names[s]
	return s, ok
}

// Set is the active prefix of the alphabet for one game.
type Set struct {
	symbols []Symbol
	member  [128]bool
}

// Active returns the set made of the first n alphabet symbols.
func Active(n int) (Set, error) {
	if n < 1 || n > Size {
		return Set{}, fmt.Errorf("%w: %d (want 1-%d)", ErrActiveRange, n, Size)
	}
	var s Set
	s.symbols = make([]Symbol, n)
	copy(s.symbols, alphabet[:n])
	for _, sym := range s.symbols {
		s.member[sym] = true
	}
	return s, nil
}

// Contains reports whether sym is active in this set.
func (s Set) Contains(sym Symbol) bool {
	return int(sym) < len(s.member) && s.member[sym]
}

// Len returns the number of active symbols.
func (s Set) Len() int { return len(s.symbols) }

// Symbols returns a copy of the active symbols in alphabet order.
func (s Set) Symbols() []Symbol {
	out := make([]Symbol, len(s.symbols))
	copy(out, s.symbols)
	return out
}

// String renders the set as its letters, e.g. "rgbykw".
func (s Set) String() string {
	var b strings.Builder
	b.Grow(len(s.symbols))
	for _, sym := range s.symbols {
		b.WriteByte(byte(sym))
	}
	return b.String()
}
