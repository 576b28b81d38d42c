package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

func batchesCmd() *cobra.Command {
	var workspace string

	cmd := &cobra.Command{
		Use:   "batches",
		Short: "List generated batches",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			refs, err := ws.catalog().ListBatches()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(refs) == 0 {
				fmt.Fprintln(out, "(no batches found)")
				return nil
			}

			fmt.Fprintf(out, "Workspace: %s\n\n", ws.root)
			for _, r := range refs {
				rel, err := filepath.Rel(ws.root, r.Dir)
				if err != nil {
					rel = r.Dir
				}
				fmt.Fprintf(out, "- %s  %d designs, %d failed  (%s)\n", r.StartedAt.UTC().Format("2006-01-02 15:04:05Z"), r.Count, r.Failures, rel)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	return cmd
}
