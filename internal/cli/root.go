// Package cli wires the wordboard binary: "serve" runs the HTTP adapter and
// "play" runs the terminal adapter.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordboard/internal/config"
)

// NewRootCommand creates the root command.
func NewRootCommand() *cobra.Command {
	cfg := config.Load()

	cmd := &cobra.Command{
		Use:           "wordboard",
		Short:         "Word-guessing board game",
		Long:          "wordboard hides a five-letter word and scores every guess letter by letter.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug|info|warn|error)")
	cmd.PersistentFlags().StringVar(&cfg.AnswersFile, "answers", cfg.AnswersFile, "answers word list file")
	cmd.PersistentFlags().StringVar(&cfg.AllowedFile, "allowed", cfg.AllowedFile, "allowed guesses word list file")

	cmd.AddCommand(newServeCommand(&cfg))
	cmd.AddCommand(newPlayCommand(&cfg))
	return cmd
}

// Execute runs the command line from os.Args and exits with its status.
func Execute() {
	os.Exit(Run(os.Args[1:], os.Stderr))
}

// Run executes args and returns the exit code. Errors go to stderr directly:
// the logger may be disabled while the terminal UI owns the screen.
func Run(args []string, stderr io.Writer) int {
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "wordboard: %v\n", err)
		return 1
	}
	return 0
}

// setupLogging configures the global zerolog logger.
func setupLogging(cfg *config.Config, out *os.File) error {
	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("log level %q: %w", cfg.LogLevel, err)
	}
	zerolog.SetGlobalLevel(lvl)
	if cfg.LogFormat == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: out})
	} else {
		log.Logger = zerolog.New(out).With().Timestamp().Logger()
	}
	return nil
}
