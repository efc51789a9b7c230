package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/robalobadob/mastermind/internal/buildinfo"
	"github.com/robalobadob/mastermind/internal/console"
	"github.com/robalobadob/mastermind/internal/daily"
	"github.com/robalobadob/mastermind/internal/game"
	"github.com/robalobadob/mastermind/internal/render"
)

// ExitQuit is the process status after the player types exit or quit.
const ExitQuit = 130

func Execute() {
	cmd := newRootCmd(os.Stdin, os.Stdout, os.Stderr)
	err := cmd.Execute()
	code := exitCode(err)
	if code == 1 {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(code)
}

func exitCode(err error) int {
	switch {
	case err == nil, errors.Is(err, console.ErrInterrupted):
		return 0
	case errors.Is(err, console.ErrQuit):
		return ExitQuit
	default:
		return 1
	}
}

type options struct {
	debug bool
	color string
	seed  uint64
	daily bool
	now   func() time.Time
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	return newCommand(in, out, errOut, time.Now)
}

func newCommand(in io.Reader, out, errOut io.Writer, now func() time.Time) *cobra.Command {
	o := &options{now: now}

	cmd := &cobra.Command{
		Use:           "mastermind",
		Short:         "Break the CodeMaker's color code",
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mode, err := render.ParseColorMode(o.color)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("color") && os.Getenv("NO_COLOR") != "" {
				mode = render.ColorNever
			}

			logger := newLogger(errOut, o.debug, mode != render.ColorNever)

			var src game.Source
			switch {
			case o.daily:
				day := o.now()
				src = game.SeededSource(daily.Seed(day, os.Getenv("MASTERMIND_DAILY_SALT")))
				logger.Info().Str("date", daily.DateKey(day)).Msg("daily code")
			case cmd.Flags().Changed("seed"):
				src = game.SeededSource(o.seed)
			default:
				src = game.CryptoSource()
			}

			g := console.New(console.Options{
				In:          in,
				Out:         out,
				Palette:     render.New(out, mode),
				Logger:      logger,
				Config:      game.DefaultConfig(),
				Source:      src,
				ClearScreen: isTerminal(out),
			})
			res, err := g.Run(cmd.Context())
			logger.Debug().Str("state", string(res.State)).Int("attempts", res.Attempts).Err(err).Msg("game over")
			return err
		},
	}

	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetVersionTemplate(buildinfo.String() + "\n")

	f := cmd.Flags()
	f.BoolVar(&o.debug, "debug", false, "enable debug logging on stderr (reveals the code)")
	f.StringVar(&o.color, "color", "auto", "colorize output: auto, always or never")
	f.Uint64Var(&o.seed, "seed", 0, "seed for a reproducible code")
	f.BoolVar(&o.daily, "daily", false, "play the code of the day (same for everyone on a UTC date)")
	cmd.MarkFlagsMutuallyExclusive("seed", "daily")
	return cmd
}

// newLogger writes human-readable logs to w. LOG_LEVEL picks the level
// (default warn); debug forces debug.
func newLogger(w io.Writer, debug, color bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if lvl, err := zerolog.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil && lvl != zerolog.NoLevel {
		level = lvl
	}
	if debug {
		level = zerolog.DebugLevel
	}
	cw := zerolog.ConsoleWriter{Out: w, NoColor: !color, TimeFormat: time.Kitchen}
	return zerolog.New(cw).Level(level).With().Timestamp().Logger()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
