// internal/console/console.go
//
// Interactive game loop over a line-oriented terminal.
// Responsibilities:
//   - Start a session and print the banner.
//   - Prompt for each attempt, read one line, and hand it to the session.
//   - Report rejections (same attempt again), results, and the win/loss line.
//   - Recognize the exit command ("exit"/"quit", any case) and hand ErrQuit
//     back to the caller instead of terminating the process.
//
// Read failures re-prompt; end of input ends the game with ErrInterrupted.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/robalobadob/mastermind/internal/game"
	"github.com/robalobadob/mastermind/internal/render"
)

var (
	// ErrQuit signals that the player typed the exit command.
	ErrQuit = errors.New("quit requested")
	// ErrInterrupted signals that input ended before the game did.
	ErrInterrupted = errors.New("input closed")
)

// maxReadFailures bounds consecutive failed reads before giving up.
const maxReadFailures = 5

// Options wires a Game to its collaborators.
type Options struct {
	In          io.Reader
	Out         io.Writer
	Palette     *render.Palette // defaults to a palette detected from Out
	Logger      zerolog.Logger
	Config      game.Config
	Source      game.Source // defaults to game.CryptoSource
	ClearScreen bool        // clear the terminal before the banner
}

// Result summarizes a finished game.
type Result struct {
	SessionID string
	State     game.State
	Attempts  int // scored guesses
	Code      game.Code
}

// Game runs one interactive session.
type Game struct {
	opts Options
	in   *bufio.Reader
	log  zerolog.Logger
}

// New constructs a Game.
func New(o Options) *Game {
	if o.Palette == nil {
		o.Palette = render.New(o.Out, render.ColorAuto)
	}
	if o.Source == nil {
		o.Source = game.CryptoSource()
	}
	return &Game{opts: o, in: bufio.NewReader(o.In), log: o.Logger}
}

// Run plays until the game is won or lost.
//
// Returns ErrQuit on the exit command, ErrInterrupted when input ends, and
// ctx.Err() when ctx is cancelled between prompts. The Result reflects the
// session at the time Run returned.
func (g *Game) Run(ctx context.Context) (Result, error) {
	sess, err := game.New(g.opts.Config, g.opts.Source)
	if err != nil {
		return Result{}, err
	}
	log := g.log.With().Str("session", sess.ID).Logger()
	log.Info().Msg("game started")
	log.Debug().Str("code", sess.Code().String()).Msg("code generated")

	pal := g.opts.Palette
	g.print(pal.Banner(g.opts.Config, g.opts.ClearScreen))

	result := func() Result {
		return Result{SessionID: sess.ID, State: sess.State(), Attempts: sess.Used(), Code: sess.Code()}
	}

	failures := 0
	for {
		if err := ctx.Err(); err != nil {
			return result(), err
		}

		g.print(render.Prompt(sess.Attempt(), g.opts.Config))
		line, err := g.readLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				g.print("\n")
				log.Info().Int("attempt", sess.Attempt()).Msg("input closed")
				return result(), ErrInterrupted
			}
			failures++
			log.Warn().Err(err).Int("failures", failures).Msg("read guess")
			if failures >= maxReadFailures {
				return result(), fmt.Errorf("read guess: %w", err)
			}
			continue
		}
		failures = 0

		if isQuit(line) {
			log.Info().Int("attempt", sess.Attempt()).Msg("quit requested")
			return result(), ErrQuit
		}

		score, state, err := sess.Apply(line)
		var ge *game.GuessError
		if errors.As(err, &ge) {
			log.Debug().Str("guess", strings.TrimSpace(line)).Str("reason", ge.Kind.Error()).Msg("guess rejected")
			g.println(ge.Error())
			continue
		}
		if err != nil {
			return result(), err
		}

		turns := sess.History()
		guess := turns[len(turns)-1].Guess
		log.Debug().Str("guess", guess.String()).Str("score", score.String()).Msg("guess scored")
		g.println(pal.Result(score, guess))

		switch state {
		case game.StateWon:
			g.println(render.Won(sess.Used()))
			log.Info().Int("attempts", sess.Used()).Msg("game won")
			return result(), nil
		case game.StateLost:
			g.println(pal.Lost(sess.Code()))
			log.Info().Int("attempts", sess.Used()).Msg("game lost")
			return result(), nil
		}
	}
}

// readLine returns one line without its terminator. A final line without
// a newline is still returned; io.EOF follows on the next call.
func (g *Game) readLine() (string, error) {
	line, err := g.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (g *Game) print(s string) { _, _ = io.WriteString(g.opts.Out, s) }

func (g *Game) println(s string) { g.print(s + "\n") }

// isQuit reports whether line is the exit command.
func isQuit(line string) bool {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "exit", "quit":
		return true
	}
	return false
}
