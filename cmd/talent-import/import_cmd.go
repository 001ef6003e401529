package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/iota-uz/talent-import/modules/talent/domain/aggregates/person"
	"github.com/iota-uz/talent-import/modules/talent/domain/level"
	"github.com/iota-uz/talent-import/modules/talent/infrastructure/document"
	"github.com/iota-uz/talent-import/modules/talent/services"
	"github.com/iota-uz/talent-import/pkg/composables"
	"github.com/iota-uz/talent-import/pkg/configuration"
	"github.com/iota-uz/talent-import/pkg/constants"
	"github.com/iota-uz/talent-import/pkg/metrics"
)

const manifestVersion = 1

type importOptions struct {
	Store       storeOptions
	Input       string `validate:"required"`
	DryRun      bool
	ManifestDir string
	MetricsFile string
}

func newImportCmd(a *app) *cobra.Command {
	var opts importOptions

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import person records from a JSON or YAML document",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.resolve(cmd, a.cfg)
			return runImport(cmd.Context(), a.cfg, opts, cmd.OutOrStdout())
		},
	}

	bindStoreFlags(cmd, &opts.Store)
	cmd.Flags().StringVar(&opts.Input, "input", "people.json", "Input document, .json or .yaml/.yml (env TALENT_INPUT)")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Map and count records without touching the database")
	cmd.Flags().StringVar(&opts.ManifestDir, "manifest-dir", "", "Write a JSON run manifest into this directory (env TALENT_MANIFEST_DIR)")
	cmd.Flags().StringVar(&opts.MetricsFile, "metrics-file", "", "Write Prometheus textfile metrics to this path (env TALENT_METRICS_FILE)")
	return cmd
}

func (o *importOptions) resolve(cmd *cobra.Command, cfg *configuration.Configuration) {
	o.Store.resolve(cmd, cfg)
	f := cmd.Flags()
	if !f.Changed("input") {
		o.Input = cfg.Import.InputPath
	}
	if !f.Changed("manifest-dir") {
		o.ManifestDir = cfg.Import.ManifestDir
	}
	if !f.Changed("metrics-file") {
		o.MetricsFile = cfg.Import.MetricsFile
	}
}

type importManifest struct {
	Version    int              `json:"version"`
	RunID      uuid.UUID        `json:"run_id"`
	Status     string           `json:"status"`
	Input      string           `json:"input"`
	Format     document.Format  `json:"format"`
	Backend    string           `json:"backend"`
	Target     string           `json:"target"`
	DryRun     bool             `json:"dry_run"`
	StartedAt  time.Time        `json:"started_at"`
	FinishedAt time.Time        `json:"finished_at"`
	Summary    services.Summary `json:"summary"`
	Tables     *person.Counts   `json:"tables,omitempty"`
}

type importSummary struct {
	Status   string           `json:"status"`
	RunID    string           `json:"run_id"`
	Backend  string           `json:"backend"`
	Input    string           `json:"input"`
	DryRun   bool             `json:"dry_run"`
	Manifest string           `json:"manifest,omitempty"`
	Summary  services.Summary `json:"summary"`
}

func runImport(ctx context.Context, cfg *configuration.Configuration, opts importOptions, out io.Writer) error {
	if err := constants.Validate.Struct(opts); err != nil {
		return withCode(exitUsage, fmt.Errorf("invalid options: %w", err))
	}

	startedAt := time.Now().UTC()
	runID := uuid.New()
	ctx = composables.WithRunID(ctx, runID)
	ctx = composables.WithLogger(ctx, logrus.NewEntry(cfg.Logger()).WithFields(logrus.Fields{
		"input":   opts.Input,
		"backend": opts.Store.Backend,
		"dry_run": opts.DryRun,
	}))

	records, err := document.Load(opts.Input)
	if err != nil {
		if errors.Is(err, document.ErrUnreadable) {
			return withCode(exitUsage, fmt.Errorf("read %s: %w", opts.Input, err))
		}
		return withCode(exitValidation, fmt.Errorf("decode %s: %w", opts.Input, err))
	}

	mapper := services.NewMapper(level.DefaultTable())
	var (
		sum    services.Summary
		tables *person.Counts
		status string
	)
	if opts.DryRun {
		status = "planned"
		sum, err = services.NewImportService(nil, mapper).Plan(ctx, records)
	} else {
		status = "committed"
		sum, tables, err = applyImport(ctx, cfg, opts, mapper, records)
	}

	if mErr := metrics.WriteTextfile(opts.MetricsFile, services.MetricsGatherer()); mErr != nil {
		composables.UseLogger(ctx).WithError(mErr).Warn("metrics textfile not written")
	}
	if err != nil {
		return withCode(importExitCode(err), err)
	}

	var manifestPath string
	if opts.ManifestDir != "" {
		manifestPath, err = writeManifest(opts.ManifestDir, &importManifest{
			Version:    manifestVersion,
			RunID:      runID,
			Status:     status,
			Input:      opts.Input,
			Format:     document.FormatOf(opts.Input),
			Backend:    opts.Store.Backend,
			Target:     opts.Store.target(cfg),
			DryRun:     opts.DryRun,
			StartedAt:  startedAt,
			FinishedAt: time.Now().UTC(),
			Summary:    sum,
			Tables:     tables,
		})
		if err != nil {
			return err
		}
	}

	return writeJSONLine(out, importSummary{
		Status:   status,
		RunID:    runID.String(),
		Backend:  opts.Store.Backend,
		Input:    opts.Input,
		DryRun:   opts.DryRun,
		Manifest: manifestPath,
		Summary:  sum,
	})
}

func applyImport(
	ctx context.Context,
	cfg *configuration.Configuration,
	opts importOptions,
	mapper *services.Mapper,
	records []person.Record,
) (services.Summary, *person.Counts, error) {
	store, err := openStore(ctx, cfg, opts.Store)
	if err != nil {
		return services.Summary{}, nil, err
	}
	defer func() { _ = store.Close() }()

	if err := store.EnsureSchema(ctx); err != nil {
		return services.Summary{}, nil, withCode(exitDB, err)
	}

	sum, err := services.NewImportService(store, mapper).Import(ctx, records)
	if err != nil {
		return services.Summary{}, nil, err
	}

	counts, err := store.Counts(ctx)
	if err != nil {
		composables.UseLogger(ctx).WithError(err).Warn("table counts unavailable")
		return sum, nil, nil
	}
	return sum, &counts, nil
}
