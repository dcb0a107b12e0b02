package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/johnquangdev/interview-coach/internal/infrastructure/database"
	"github.com/johnquangdev/interview-coach/pkg/config"
	"github.com/johnquangdev/interview-coach/pkg/logger"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "migrate up|down",
		Short:     "Apply pending schema migrations, or roll back the latest one",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{string(database.Up), string(database.Down)},
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := database.ParseDirection(args[0])
			if err != nil {
				return err
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log, err := logger.New(cfg.Server.Environment)
			if err != nil {
				return err
			}
			defer log.Sync()

			db, err := database.NewPostgresDB(cfg, log)
			if err != nil {
				return err
			}
			defer database.CloseDB(db)

			n, err := database.Migrate(db, dir)
			if err != nil {
				return err
			}
			log.Info("🔄 Migrations complete", zap.String("direction", string(dir)), zap.Int("applied", n))
			fmt.Fprintf(cmd.OutOrStdout(), "applied %d migration(s) %s\n", n, dir)
			return nil
		},
	}
}
