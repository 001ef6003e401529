package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iota-uz/talent-import/pkg/constants"
)

func newSchemaCmd(a *app) *cobra.Command {
	var opts storeOptions

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Create the person and ability tables if they do not exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.resolve(cmd, a.cfg)
			if err := constants.Validate.Struct(opts); err != nil {
				return withCode(exitUsage, fmt.Errorf("invalid options: %w", err))
			}
			ctx := cmd.Context()
			store, err := openStore(ctx, a.cfg, opts)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.EnsureSchema(ctx); err != nil {
				return withCode(exitDB, err)
			}
			return writeJSONLine(cmd.OutOrStdout(), map[string]any{
				"status":  "ok",
				"backend": opts.Backend,
				"target":  opts.target(a.cfg),
			})
		},
	}

	bindStoreFlags(cmd, &opts)
	return cmd
}
