package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/wingen/internal/infra/config"
	"github.com/aalvaropc/wingen/internal/usecase"
)

func validateCmd() *cobra.Command {
	var workspace string
	var trials int

	c := &cobra.Command{
		Use:   "validate",
		Short: "Validate wingen.yaml without writing any designs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := resolveWorkspaceRoot(workspace)
			if err != nil {
				return err
			}

			uc := usecase.NewValidateConfig(config.NewLoader(), usecase.WithTrials(trials))
			cfg, err := uc.Execute(cmd.Context(), root)
			if err != nil {
				return err
			}
			if _, err := renderersFor(cfg.Render.Formats); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "OK")
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().IntVar(&trials, "trials", 10, "Designs to sample and derive as a smoke test")
	return c
}
