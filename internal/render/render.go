// internal/render/render.go
//
// Terminal text for the game: the banner, prompts, result lines and the
// win/loss messages. Every peg letter and score mark is colored on its own
// with a fixed symbol → color mapping:
//
//   r bright red    g green      b bright blue   y yellow
//   k gray          w white      p magenta       c bright cyan
//   X gray (exact)  O white (present)  - magenta (absent)
//
// Color support follows the output writer (lipgloss/termenv detection)
// unless forced on or off.

package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/robalobadob/mastermind/internal/game"
	"github.com/robalobadob/mastermind/internal/palette"
)

// ColorMode selects how colors are decided.
type ColorMode int

const (
	ColorAuto   ColorMode = iota // detect from the writer
	ColorNever                   // plain text
	ColorAlways                  // 256-color escapes regardless of the writer
)

// ParseColorMode maps "auto", "never" and "always" to a ColorMode.
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ColorAuto, nil
	case "never", "off", "no":
		return ColorNever, nil
	case "always", "on", "yes":
		return ColorAlways, nil
	}
	return ColorAuto, fmt.Errorf("unknown color mode %q (want auto, never or always)", s)
}

// ANSI 256 color indexes.
var colors = map[rune]string{
	rune(palette.Red):      "9",
	rune(palette.Green):    "2",
	rune(palette.Blue):     "12",
	rune(palette.Yellow):   "3",
	rune(palette.Black):    "242",
	rune(game.MarkExact):   "242",
	rune(palette.White):    "7",
	rune(game.MarkPresent): "7",
	rune(palette.Cyan):     "14",
	rune(palette.Purple):   "13",
	rune(game.MarkAbsent):  "13",
}

// Palette colorizes symbols and marks for one output.
type Palette struct {
	styles map[rune]lipgloss.Style
	plain  lipgloss.Style
}

// New builds a Palette for text written to w.
func New(w io.Writer, mode ColorMode) *Palette {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case ColorNever:
		r.SetColorProfile(termenv.Ascii)
	case ColorAlways:
		r.SetColorProfile(termenv.ANSI256)
	}

	p := &Palette{styles: make(map[rune]lipgloss.Style, len(colors)), plain: r.NewStyle()}
	for ch, c := range colors {
		p.styles[ch] = r.NewStyle().Foreground(lipgloss.Color(c))
	}
	return p
}

// Colorize styles each character of s on its own. Characters without a
// mapping are left plain.
func (p *Palette) Colorize(s string) string {
	var b strings.Builder
	for _, ch := range s {
		st, ok := p.styles[ch]
		if !ok {
			st = p.plain
		}
		b.WriteString(st.Render(string(ch)))
	}
	return b.String()
}

// Code colorizes a code or guess.
func (p *Palette) Code(c game.Code) string { return p.Colorize(c.String()) }

// Score colorizes a score.
func (p *Palette) Score(s game.Score) string { return p.Colorize(s.String()) }

// clearScreen moves the cursor home and clears the display.
const clearScreen = "\x1b[H\x1b[J"

// Banner announces the board. clear prefixes the screen-clearing escape.
func (p *Palette) Banner(cfg game.Config, clear bool) string {
	set, _ := cfg.Active()
	var b strings.Builder
	if clear {
		b.WriteString(clearScreen)
	}
	b.WriteString("\nWelcome to Mastermind!\n\n")
	fmt.Fprintf(&b, "The CodeMaker has chosen a %d color code.\n", cfg.Length)
	fmt.Fprintf(&b, "Try to break it in %d guesses or less.\n", cfg.Attempts)
	fmt.Fprintf(&b, "%d duplicates are allowed.\n\n", cfg.MaxDuplicates)
	fmt.Fprintf(&b, "Available colors are: %s\n", p.Colorize(set.String()))
	return b.String()
}

// Prompt is the per-attempt cue.
func Prompt(attempt int, cfg game.Config) string {
	return fmt.Sprintf("%d: Enter %d colors: ", attempt, cfg.Length)
}

// Result is the score, a tab, then the guess.
func (p *Palette) Result(score game.Score, guess game.Guess) string {
	return p.Score(score) + "\t" + p.Code(guess)
}

// Won reports a win after attempts guesses.
func Won(attempts int) string {
	return fmt.Sprintf("You won in %d attempts!", attempts)
}

// Lost reveals the code.
func (p *Palette) Lost(code game.Code) string {
	return "You lose, the code was " + p.Code(code)
}
