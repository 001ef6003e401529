package main

import (
	"context"
	"fmt"
	"time"

	"github.com/iota-uz/utils/fs"
	"github.com/spf13/cobra"

	"github.com/iota-uz/talent-import/modules/talent/infrastructure/persistence"
	"github.com/iota-uz/talent-import/pkg/configuration"
)

const connectTimeout = 10 * time.Second

type storeOptions struct {
	Backend    string `validate:"oneof=sqlite postgres"`
	SQLitePath string `validate:"required_if=Backend sqlite"`
}

func bindStoreFlags(cmd *cobra.Command, opts *storeOptions) {
	cmd.Flags().StringVar(&opts.Backend, "backend", configuration.BackendSQLite, "Backend: sqlite|postgres (env TALENT_DB_BACKEND)")
	cmd.Flags().StringVar(&opts.SQLitePath, "sqlite-path", "hr.db", "SQLite database file (env TALENT_SQLITE_PATH)")
}

// resolve fills flags the user did not set from the configuration.
func (o *storeOptions) resolve(cmd *cobra.Command, cfg *configuration.Configuration) {
	if !cmd.Flags().Changed("backend") {
		o.Backend = cfg.Import.Backend
	}
	if !cmd.Flags().Changed("sqlite-path") {
		o.SQLitePath = cfg.Import.SQLitePath
	}
}

// target names the database without credentials.
func (o storeOptions) target(cfg *configuration.Configuration) string {
	if o.Backend == configuration.BackendPostgres {
		return fmt.Sprintf("%s:%s/%s", cfg.Database.Host, cfg.Database.Port, cfg.Database.Name)
	}
	return o.SQLitePath
}

// requireExisting keeps read-only commands from creating an empty SQLite file.
func (o storeOptions) requireExisting() error {
	if o.Backend == configuration.BackendSQLite && !fs.FileExists(o.SQLitePath) {
		return withCode(exitUsage, fmt.Errorf("sqlite database %s does not exist", o.SQLitePath))
	}
	return nil
}

func openStore(ctx context.Context, cfg *configuration.Configuration, o storeOptions) (persistence.CountingStore, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	store, err := persistence.Open(ctx, persistence.Options{
		Backend:     o.Backend,
		SQLitePath:  o.SQLitePath,
		PostgresDSN: cfg.Database.Opts,
	})
	if err != nil {
		return nil, withCode(exitDB, fmt.Errorf("db connect failed: %w", err))
	}
	return store, nil
}
