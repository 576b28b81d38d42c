package cli

import (
	"github.com/spf13/cobra"

	"github.com/aalvaropc/wingen/internal/infra/logger"
	"github.com/aalvaropc/wingen/internal/ui/tui"
)

func browseCmd(debug *bool) *cobra.Command {
	var workspace string

	c := &cobra.Command{
		Use:   "browse [manifest|batch-dir]",
		Short: "Browse generated batches and designs in a TUI",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manifest := ""
			if len(args) == 1 {
				manifest = args[0]
			}
			return runBrowse(cmd, workspace, manifest, *debug)
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	return c
}

func runBrowse(_ *cobra.Command, workspace, manifest string, debug bool) error {
	ws, err := loadWorkspace(workspace)
	if err != nil {
		return err
	}

	if manifest != "" {
		if manifest, err = resolveManifest(workspace, manifest); err != nil {
			return err
		}
	}

	return tui.Run(tui.Deps{
		Catalog:  ws.catalog(),
		Manifest: manifest,
		Logger:   logger.L(),
		Debug:    debug,
	})
}
