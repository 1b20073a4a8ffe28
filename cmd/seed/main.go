package main

import (
	"fmt"
	"os"

	"field_estimator/internal/adapter/persistence/repository"
	"field_estimator/internal/infrastructure/config"
	"field_estimator/internal/infrastructure/database"
	"field_estimator/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "seed",
		Short:         "Database maintenance for the field estimator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newMigrateCommand())
	root.AddCommand(newCatalogCommand())
	root.AddCommand(newTestUsersCommand())
	return root
}

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update every relational table",
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, log, err := connect()
			if err != nil {
				return err
			}
			if err := repository.Migrate(db); err != nil {
				return err
			}
			log.Info("[seed][migrate] schema up to date")
			return nil
		},
	}
}

// connect loads configuration the same way the API does.
func connect() (*gorm.DB, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	log := logger.InitLogger(logger.LogConfig{
		Level:       cfg.LogLevel,
		Environment: cfg.Mode,
		ServiceName: cfg.ServiceName + "-seed",
	})
	db, err := database.ConnectPostgres(cfg.Database, log, 0)
	if err != nil {
		return nil, nil, err
	}
	return db, log, nil
}
