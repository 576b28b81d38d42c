package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/wingen/internal/domain"
	"github.com/aalvaropc/wingen/internal/infra/config"
	"github.com/aalvaropc/wingen/internal/infra/logger"
	"github.com/aalvaropc/wingen/internal/infra/report"
	"github.com/aalvaropc/wingen/internal/usecase"
)

type generateFlags struct {
	workspace string
	count     int
	seed      uint64
	workers   int
	format    string
	render    []string
	noSave    bool
}

func generateCmd() *cobra.Command {
	var f generateFlags

	c := &cobra.Command{
		Use:   "generate",
		Short: "Sample, report and render a batch of random planforms",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(f.workspace)
			if err != nil {
				return err
			}

			cfg, err := applyGenerateFlags(cmd, ws.cfg, f)
			if err != nil {
				return err
			}
			ws.cfg = cfg

			format, err := report.ParseFormat(f.format)
			if err != nil {
				return err
			}

			opts := []usecase.GenerateOption{
				usecase.WithReporter(report.New(cmd.OutOrStdout(), format)),
				usecase.WithLogger(logger.L()),
			}
			if !f.noSave {
				store, err := ws.store()
				if err != nil {
					return err
				}
				opts = append(opts, usecase.WithStore(store))
			}

			batch, err := usecase.NewGenerateBatch(opts...).Execute(cmd.Context(), cfg)

			// json output keeps stdout machine-readable
			summaryOut := cmd.OutOrStdout()
			if format == report.FormatJSON {
				summaryOut = cmd.ErrOrStderr()
			}
			if batch.ID != "" {
				printSummary(summaryOut, ws.root, batch)
			}
			if err != nil {
				return err
			}

			if fails := batch.Failures(); fails > 0 {
				return fmt.Errorf("generate failed (%d of %d design(s) failed)", fails, len(batch.Designs))
			}
			return nil
		},
	}

	c.Flags().StringVarP(&f.workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().IntVarP(&f.count, "count", "n", 0, "Number of designs (default from wingen.yaml)")
	c.Flags().Uint64Var(&f.seed, "seed", 0, "Random seed; 0 picks one and records it in the manifest")
	c.Flags().IntVar(&f.workers, "workers", 0, "Parallel design workers (default from wingen.yaml)")
	c.Flags().StringVar(&f.format, "format", "pretty", "Parameter report format: pretty|plain|json")
	c.Flags().StringSliceVar(&f.render, "render", nil, "Render formats, e.g. svg,png (default from wingen.yaml)")
	c.Flags().BoolVar(&f.noSave, "no-save", false, "Do not render or save designs under the designs dir")

	return c
}

// applyGenerateFlags overlays explicitly set flags onto cfg and re-validates.
func applyGenerateFlags(cmd *cobra.Command, cfg domain.Config, f generateFlags) (domain.Config, error) {
	flags := cmd.Flags()
	if flags.Changed("count") {
		cfg.Batch.Count = f.count
	}
	if flags.Changed("seed") {
		cfg.Batch.Seed = f.seed
	}
	if flags.Changed("workers") {
		cfg.Batch.Workers = f.workers
	}
	if flags.Changed("render") {
		cfg.Render.Formats = config.NormalizeFormats(f.render)
	}
	if err := config.Validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func printSummary(w io.Writer, root string, b domain.BatchResult) {
	dur := b.EndedAt.Sub(b.StartedAt)
	if b.StartedAt.IsZero() || b.EndedAt.IsZero() {
		dur = 0
	}

	fmt.Fprintf(w, "Batch:      %s\n", b.ID)
	fmt.Fprintf(w, "Seed:       %d\n", b.Seed)
	fmt.Fprintf(w, "Designs:    %d (%d failed, %d warning(s))\n", len(b.Designs), b.Failures(), b.WarningCount())
	fmt.Fprintf(w, "Duration:   %s\n", dur.Round(time.Millisecond))
	if b.Dir != "" {
		dir := b.Dir
		if rel, err := filepath.Rel(root, b.Dir); err == nil {
			dir = rel
		}
		fmt.Fprintf(w, "Output:     %s\n", dir)
	}

	for _, d := range b.Designs {
		if d.Error != nil {
			fmt.Fprintf(w, "- [FAIL] design %d: %s (%s)\n", d.Index, d.Error.Message, d.Error.Kind)
			continue
		}
		for _, wn := range d.Warnings {
			fmt.Fprintf(w, "- [WARN] design %d: %s\n", d.Index, wn.Message)
		}
	}
}
