package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/iota-uz/talent-import/pkg/configuration"
	"github.com/iota-uz/talent-import/pkg/tracing"
)

var envFiles = []string{".env", ".env.local"}

type app struct {
	cfg      *configuration.Configuration
	shutdown tracing.Shutdown
}

// close flushes spans and closes the log file. Repeated calls are no-ops.
func (a *app) close() {
	if a.shutdown != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.shutdown(ctx); err != nil {
			a.cfg.Logger().WithError(err).Warn("tracing shutdown failed")
		}
		a.shutdown = nil
	}
	if a.cfg != nil {
		a.cfg.Unload()
		a.cfg = nil
	}
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "talent-import",
		Short:         "Load talent profiles (people.json) into SQLite or PostgreSQL",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configuration.Load(envFiles)
			if err != nil {
				return withCode(exitUsage, fmt.Errorf("load configuration: %w", err))
			}
			a.cfg = cfg

			shutdown, err := tracing.Setup(cmd.Context(), cfg.OpenTelemetry)
			if err != nil {
				return withCode(exitUsage, fmt.Errorf("setup tracing: %w", err))
			}
			a.shutdown = shutdown
			return nil
		},
	}

	cmd.AddCommand(newImportCmd(a))
	cmd.AddCommand(newSchemaCmd(a))
	cmd.AddCommand(newStatsCmd(a))
	cmd.AddCommand(newExportCmd(a))
	return cmd
}

// run executes one command line. Tracing and the log file are released
// before it returns, on the error path too.
func run(ctx context.Context, args []string, stdout io.Writer) error {
	a := &app{}
	defer a.close()

	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	return cmd.ExecuteContext(ctx)
}

func Execute() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		code := exitCode(err)
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(code)
	}
}
