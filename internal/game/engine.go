// internal/game/engine.go
//
// Core game engine for a single Mastermind session.
// Responsibilities:
//   - Create new sessions with a freshly generated secret code.
//   - Validate and apply guesses (length, active colors, duplicate cap).
//   - Score guesses using the two-pass consumption algorithm.
//   - Track state transitions: awaiting_guess → won/lost.
//
// Notes:
//   - Rejected guesses never consume an attempt.
//   - randomID() is a compact hex identifier for correlating log lines.
package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
)

// ErrFinished is returned when a guess is applied to a finished session.
var ErrFinished = errors.New("game finished")

// Session holds the state of a single game.
type Session struct {
	ID string // unique session identifier (random hex string)

	cfg     Config
	code    Code
	attempt int // number of the next attempt, starting at 1
	guesses []Guess
	scores  []Score
	state   State
}

// New validates cfg, generates the secret code from src and starts a session
// awaiting its first guess. A nil src uses CryptoSource.
func New(cfg Config, src Source) (*Session, error) {
	code, err := Generate(cfg, src)
	if err != nil {
		return nil, err
	}
	return newSession(cfg, code), nil
}

// NewWithCode starts a session with a fixed secret code. The code must
// itself be a legal guess for cfg.
func NewWithCode(cfg Config, code Code) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := Validate(code.String(), cfg); err != nil {
		return nil, err
	}
	c := make(Code, len(code))
	copy(c, code)
	return newSession(cfg, c), nil
}

func newSession(cfg Config, code Code) *Session {
	return &Session{
		ID:      randomID(),
		cfg:     cfg,
		code:    code,
		attempt: 1,
		state:   StateAwaitingGuess,
	}
}

// Apply validates and scores a raw guess, mutating the session.
// Returns: the score, the new state, or an error.
//
// A *GuessError leaves the session untouched so the same attempt can be retried.
//
// State transitions:
//   - If all marks are exact → StateWon.
//   - Else if the attempt counter passes cfg.Attempts → StateLost.
func (s *Session) Apply(raw string) (Score, State, error) {
	if s.state.Finished() {
		return nil, s.state, ErrFinished
	}
	guess, err := ParseGuess(raw, s.cfg)
	if err != nil {
		return nil, s.state, err
	}

	score := ScoreGuess(s.code, guess)
	s.guesses = append(s.guesses, guess)
	s.scores = append(s.scores, score)
	s.attempt++

	if score.Solved() {
		s.state = StateWon
	} else if s.attempt > s.cfg.Attempts {
		s.state = StateLost
	}
	return score, s.state, nil
}

// State reports the current session state.
func (s *Session) State() State { return s.state }

// Attempt returns the number of the next attempt (1-based).
func (s *Session) Attempt() int { return s.attempt }

// Used returns how many guesses have been scored.
func (s *Session) Used() int { return len(s.guesses) }

// Config returns the board configuration.
func (s *Session) Config() Config { return s.cfg }

// Code reveals a copy of the secret code.
func (s *Session) Code() Code {
	c := make(Code, len(s.code))
	copy(c, s.code)
	return c
}

// Turn is one scored guess.
type Turn struct {
	Guess Guess
	Score Score
}

// History returns the scored guesses in order.
func (s *Session) History() []Turn {
	out := make([]Turn, len(s.guesses))
	for i := range s.guesses {
		out[i] = Turn{Guess: s.guesses[i], Score: s.scores[i]}
	}
	return out
}

// ScoreGuess compares guess against code.
//
// Pass 1:
//   - Mark positions where guess and code agree as exact, and consume both.
//
// Pass 2:
//   - For each unconsumed guess position, left to right, consume the leftmost
//     unconsumed code position holding the same symbol and mark present.
//
// Everything else stays absent. Consumption keeps one code peg from
// answering more than one guess peg. Code and guess must have equal length;
// otherwise every mark is absent.
func ScoreGuess(code Code, guess Guess) Score {
	n := len(guess)
	res := make(Score, n)
	for i := range res {
		res[i] = MarkAbsent
	}
	if len(code) != n {
		return res
	}

	usedCode := make([]bool, n)
	usedGuess := make([]bool, n)

	// First pass: exact positions.
	for i := 0; i < n; i++ {
		if guess[i] == code[i] {
			res[i] = MarkExact
			usedCode[i], usedGuess[i] = true, true
		}
	}

	// Second pass: right symbol, wrong position.
	for i := 0; i < n; i++ {
		if usedGuess[i] {
			continue
		}
		for j := 0; j < n; j++ {
			if !usedCode[j] && code[j] == guess[i] {
				res[i] = MarkPresent
				usedCode[j] = true
				break
			}
		}
	}
	return res
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
