package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iota-uz/talent-import/modules/talent/domain/aggregates/person"
	"github.com/iota-uz/talent-import/pkg/constants"
)

type statsOutput struct {
	Backend string        `json:"backend"`
	Target  string        `json:"target"`
	Tables  person.Counts `json:"tables"`
}

func newStatsCmd(a *app) *cobra.Command {
	var opts storeOptions

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print row counts of the imported tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.resolve(cmd, a.cfg)
			if err := constants.Validate.Struct(opts); err != nil {
				return withCode(exitUsage, fmt.Errorf("invalid options: %w", err))
			}
			if err := opts.requireExisting(); err != nil {
				return err
			}
			ctx := cmd.Context()
			store, err := openStore(ctx, a.cfg, opts)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			counts, err := store.Counts(ctx)
			if err != nil {
				return withCode(exitDB, err)
			}
			return writeJSONLine(cmd.OutOrStdout(), statsOutput{
				Backend: opts.Backend,
				Target:  opts.target(a.cfg),
				Tables:  counts,
			})
		},
	}

	bindStoreFlags(cmd, &opts)
	return cmd
}
