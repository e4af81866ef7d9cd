package cli

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordboard/internal/config"
	"github.com/robalobadob/wordboard/internal/game"
	"github.com/robalobadob/wordboard/internal/tui"
	"github.com/robalobadob/wordboard/internal/words"
)

func newPlayCommand(cfg *config.Config) *cobra.Command {
	var logFile string
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			// The screen owns stdout; logs go to a file or nowhere.
			defer zerolog.SetGlobalLevel(zerolog.GlobalLevel())
			if logFile == "" {
				zerolog.SetGlobalLevel(zerolog.Disabled)
			} else {
				f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err != nil {
					return fmt.Errorf("open log file: %w", err)
				}
				defer f.Close()
				if err := setupLogging(cfg, f); err != nil {
					return err
				}
			}

			dict, err := words.Load(cfg.AnswersFile, cfg.AllowedFile)
			if err != nil {
				return err
			}

			screen, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("open terminal: %w", err)
			}
			if err := screen.Init(); err != nil {
				return fmt.Errorf("init terminal: %w", err)
			}
			defer screen.Fini()

			engine := game.New(dict, game.LogEvents(log.Logger))
			tui.New(screen, engine).Run()
			return nil
		},
	}
	cmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file")
	return cmd
}
