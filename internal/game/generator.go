package game

import (
	"crypto/rand"
	"math/big"
	mrand "math/rand/v2"

	"github.com/robalobadob/mastermind/internal/palette"
)

// Source picks uniform indexes in [0, n). *math/rand/v2.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

type cryptoSource struct{}

// CryptoSource returns a Source backed by crypto/rand.
func CryptoSource() Source { return cryptoSource{} }

func (cryptoSource) IntN(n int) int {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0
	}
	return int(nBig.Int64())
}

// SeededSource returns a deterministic Source for reproducible games.
func SeededSource(seed uint64) Source {
	return mrand.New(mrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Generate draws a secret code for cfg.
//
// Each peg is drawn uniformly from the active symbols that are still below
// the duplicate allowance, so no symbol ever occurs more than
// cfg.MaxDuplicates times. The cap applies from the first peg on.
func Generate(cfg Config, src Source) (Code, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	set, err := cfg.Active()
	if err != nil {
		return nil, err
	}
	if src == nil {
		src = CryptoSource()
	}

	symbols := set.Symbols()
	counts := make(map[palette.Symbol]int, len(symbols))
	candidates := make([]palette.Symbol, 0, len(symbols))
	code := make(Code, 0, cfg.Length)

	for len(code) < cfg.Length {
		candidates = candidates[:0]
		for _, s := range symbols {
			if counts[s] < cfg.MaxDuplicates {
				candidates = append(candidates, s)
			}
		}
		pick := candidates[src.IntN(len(candidates))]
		counts[pick]++
		code = append(code, pick)
	}
	return code, nil
}
