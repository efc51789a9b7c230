package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cases := []struct {
		input string
		kind  error
		msg   string
	}{
		{"rrgb", nil, ""},
		{"rgby", nil, ""},
		{"kwkw", nil, ""},
		{"rrrb", ErrTooManyDuplicates, "Only 2 of each color are allowed in the code."},
		{"xyzz", ErrInvalidSymbol, "Invalid color: x."},
		{"rgbp", ErrInvalidSymbol, "Invalid color: p."},
		{"rgb", ErrWrongLength, "Please enter exactly 4 choices"},
		{"rgbyr", ErrWrongLength, "Please enter exactly 4 choices"},
		{"", ErrWrongLength, "Please enter exactly 4 choices"},
		// length wins over alphabet, alphabet wins over duplicates
		{"xxx", ErrWrongLength, "Please enter exactly 4 choices"},
		{"rrrx", ErrInvalidSymbol, "Invalid color: x."},
		{"rgé!", ErrInvalidSymbol, "Invalid color: é."},
	}
	for _, c := range cases {
		err := Validate(c.input, cfg)
		if c.kind == nil {
			assert.NoErrorf(t, err, "Validate(%q)", c.input)
			continue
		}
		require.Errorf(t, err, "Validate(%q)", c.input)
		assert.Truef(t, errors.Is(err, c.kind), "Validate(%q) = %v, want kind %v", c.input, err, c.kind)
		assert.Equalf(t, c.msg, err.Error(), "Validate(%q)", c.input)
	}
}

func TestValidateHonoursConfig(t *testing.T) {
	cfg := Config{Symbols: 8, Length: 5, MaxDuplicates: 1, Attempts: 10}
	assert.NoError(t, Validate("rgbpc", cfg))

	err := Validate("rgbpr", cfg)
	assert.ErrorIs(t, err, ErrTooManyDuplicates)
	assert.Equal(t, "Only 1 of each color are allowed in the code.", err.Error())

	err = Validate("rgbp", cfg)
	assert.Equal(t, "Please enter exactly 5 choices", err.Error())
}

func TestValidateInvalidConfig(t *testing.T) {
	err := Validate("rgby", Config{Symbols: 9, Length: 4, MaxDuplicates: 2, Attempts: 10})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestParseGuessNormalizes(t *testing.T) {
	g, err := ParseGuess("  RgBy\r\n", DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, code("rgby"), g)

	_, err = ParseGuess("rg by", DefaultConfig())
	assert.ErrorIs(t, err, ErrWrongLength)
}

func TestGuessErrorAs(t *testing.T) {
	_, err := ParseGuess("rrrr", DefaultConfig())
	var ge *GuessError
	require.True(t, errors.As(err, &ge))
	assert.Equal(t, ErrTooManyDuplicates, ge.Kind)
	assert.Equal(t, 2, ge.MaxDuplicates)
}
