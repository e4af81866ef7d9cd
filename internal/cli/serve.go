package cli

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordboard/internal/config"
	"github.com/robalobadob/wordboard/internal/database"
	"github.com/robalobadob/wordboard/internal/httpserver"
	"github.com/robalobadob/wordboard/internal/store"
	"github.com/robalobadob/wordboard/internal/words"
)

func newServeCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP and websocket server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := setupLogging(cfg, os.Stderr); err != nil {
				return err
			}

			dict, err := words.Load(cfg.AnswersFile, cfg.AllowedFile)
			if err != nil {
				return err
			}
			a, g := dict.Stats()
			log.Info().Int("answers", a).Int("allowed", g).Msg("word lists loaded")

			db, err := database.Open(cfg.DBPath)
			if err != nil {
				return err
			}
			defer db.Close()
			if err := database.Migrate(db); err != nil {
				return err
			}

			srv := httpserver.New(*cfg, store.NewMemoryStore(), db, dict)
			log.Info().Str("port", cfg.Port).Msg("starting wordboard server")
			return srv.Start(":" + cfg.Port)
		},
	}
	cmd.Flags().StringVarP(&cfg.Port, "port", "p", cfg.Port, "listen port")
	cmd.Flags().StringVar(&cfg.DBPath, "db", cfg.DBPath, "sqlite database path")
	return cmd
}
