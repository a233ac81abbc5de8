package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/pet-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/pet-scheduler/internal/db"
	"github.com/BruksfildServices01/pet-scheduler/internal/logging"
)

// opener lets tests swap out the real connection.
type opener func(cfg *config.Config, log *slog.Logger) (*gorm.DB, error)

func NewRootCmd(logOut io.Writer) *cobra.Command {
	return newRootCmd(logOut, dbpkg.NewDB)
}

func newRootCmd(logOut io.Writer, open opener) *cobra.Command {
	var dbURL string

	cmd := &cobra.Command{
		Use:          "petcare",
		Short:        "Schema tooling for the pet-care scheduler database",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&dbURL, "db", "", "Database URL (overrides DATABASE_URL)")

	// Failures are returned, not logged; cobra reports them once.
	connect := func() (*gorm.DB, *slog.Logger, error) {
		cfg, err := config.Load()
		if err != nil {
			return nil, nil, err
		}
		if dbURL != "" {
			cfg.DBUrl = dbURL
		}
		log := logging.New(logOut, cfg.LogLevel)

		db, err := open(cfg, log)
		if err != nil {
			return nil, nil, err
		}
		return db, log, nil
	}

	cmd.AddCommand(
		newMigrateCmd(connect),
		newCheckCmd(connect),
	)
	return cmd
}

type connectFunc func() (*gorm.DB, *slog.Logger, error)

func newMigrateCmd(connect connectFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or upgrade the user, company, pet, services, favorites and appointments tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, log, err := connect()
			if err != nil {
				return err
			}
			defer func() { _ = dbpkg.Close(db) }()

			if err := dbpkg.Migrate(db.WithContext(cmd.Context())); err != nil {
				return err
			}

			log.Info("schema up to date")
			fmt.Fprintln(cmd.OutOrStdout(), "schema up to date")
			return nil
		},
	}
}

func newCheckCmd(connect connectFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify the database is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, _, err := connect()
			if err != nil {
				return err
			}
			defer func() { _ = dbpkg.Close(db) }()

			sqlDB, err := db.DB()
			if err != nil {
				return err
			}

			if err := sqlDB.PingContext(cmd.Context()); err != nil {
				return fmt.Errorf("ping database: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
}
