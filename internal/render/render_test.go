package render

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/mastermind/internal/game"
	"github.com/robalobadob/mastermind/internal/palette"
)

var sgr = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func code(s string) game.Code {
	c := make(game.Code, 0, len(s))
	for i := 0; i < len(s); i++ {
		c = append(c, palette.Symbol(s[i]))
	}
	return c
}

func TestParseColorMode(t *testing.T) {
	cases := map[string]ColorMode{
		"":       ColorAuto,
		"auto":   ColorAuto,
		"NEVER":  ColorNever,
		"off":    ColorNever,
		"always": ColorAlways,
	}
	for in, want := range cases {
		got, err := ParseColorMode(in)
		require.NoErrorf(t, err, "ParseColorMode(%q)", in)
		assert.Equalf(t, want, got, "ParseColorMode(%q)", in)
	}
	_, err := ParseColorMode("rainbow")
	assert.Error(t, err)
}

func TestPlainOutput(t *testing.T) {
	p := New(&bytes.Buffer{}, ColorNever)

	assert.Equal(t, "rgbykwpc", p.Colorize("rgbykwpc"))
	assert.Equal(t, "OOX-\tgrbk", p.Result(game.Score{game.MarkPresent, game.MarkPresent, game.MarkExact, game.MarkAbsent}, code("grbk")))
	assert.Equal(t, "You lose, the code was rgby", p.Lost(code("rgby")))
	assert.Equal(t, "You won in 3 attempts!", Won(3))
	assert.Equal(t, "1: Enter 4 colors: ", Prompt(1, game.DefaultConfig()))
}

func TestAutoDetectsNonTerminal(t *testing.T) {
	p := New(&bytes.Buffer{}, ColorAuto)
	assert.Equal(t, "rgby", p.Code(code("rgby")))
}

func TestColoredOutput(t *testing.T) {
	p := New(&bytes.Buffer{}, ColorAlways)

	out := p.Code(code("rgby"))
	assert.Contains(t, out, "\x1b[")
	assert.Equal(t, "rgby", sgr.ReplaceAllString(out, ""))

	// each letter carries its own color
	assert.Len(t, sgr.FindAllString(out, -1), 8)

	// symbols sharing a color with a mark render identically
	assert.Equal(t, p.Colorize("k"), strings.ReplaceAll(p.Colorize("X"), "X", "k"))
	assert.NotEqual(t, p.Colorize("r"), strings.ReplaceAll(p.Colorize("g"), "g", "r"))

	// unknown characters stay plain
	assert.Equal(t, "?", p.Colorize("?"))
}

func TestBanner(t *testing.T) {
	p := New(&bytes.Buffer{}, ColorNever)
	cfg := game.DefaultConfig()

	b := p.Banner(cfg, false)
	assert.NotContains(t, b, "\x1b[")
	assert.Contains(t, b, "Welcome to Mastermind!")
	assert.Contains(t, b, "The CodeMaker has chosen a 4 color code.")
	assert.Contains(t, b, "Try to break it in 10 guesses or less.")
	assert.Contains(t, b, "2 duplicates are allowed.")
	assert.Contains(t, b, "Available colors are: rgbykw\n")

	assert.True(t, strings.HasPrefix(p.Banner(cfg, true), "\x1b[H\x1b[J"))
}
