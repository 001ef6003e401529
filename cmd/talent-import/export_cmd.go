package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/iota-uz/talent-import/modules/talent/infrastructure/report"
	"github.com/iota-uz/talent-import/pkg/constants"
)

type exportOptions struct {
	Store  storeOptions
	Output string `validate:"required"`
}

func newExportCmd(a *app) *cobra.Command {
	var opts exportOptions

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export stored ability scores to an XLSX workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Store.resolve(cmd, a.cfg)
			if err := constants.Validate.Struct(opts); err != nil {
				return withCode(exitUsage, fmt.Errorf("invalid options: %w", err))
			}
			if err := opts.Store.requireExisting(); err != nil {
				return err
			}
			ctx := cmd.Context()
			store, err := openStore(ctx, a.cfg, opts.Store)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			scores, err := store.Scores(ctx)
			if err != nil {
				return withCode(exitDB, err)
			}
			if err := os.MkdirAll(filepath.Dir(opts.Output), 0o755); err != nil {
				return withCode(exitDB, fmt.Errorf("mkdir %s: %w", filepath.Dir(opts.Output), err))
			}
			if err := report.WriteScores(opts.Output, scores); err != nil {
				return withCode(exitDB, fmt.Errorf("write %s: %w", opts.Output, err))
			}
			return writeJSONLine(cmd.OutOrStdout(), map[string]any{
				"status": "ok",
				"output": opts.Output,
				"rows":   len(scores),
			})
		},
	}

	bindStoreFlags(cmd, &opts.Store)
	cmd.Flags().StringVar(&opts.Output, "output", "ability_score.xlsx", "Target .xlsx file")
	return cmd
}
