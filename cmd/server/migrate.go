package main

import (
	"errors"

	"lifecover/internal/adapters/persistence/models"
	"lifecover/internal/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the users and submissions tables",
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, log, err := bootstrap()
		if err != nil {
			return err
		}
		defer log.Sync()

		if cfg.Database.Driver == "memory" {
			return errors.New("nothing to migrate for the memory driver")
		}

		db, err := config.ConnectDatabase(cfg, log)
		if err != nil {
			log.Error("❌ Failed to connect to database", zap.Error(err))
			return err
		}
		defer config.CloseDatabase()

		if err := models.AutoMigrate(db); err != nil {
			log.Error("❌ Failed to auto migrate", zap.Error(err))
			return err
		}

		log.Info("✅ Database migration completed")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
