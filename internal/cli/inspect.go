package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/wingen/internal/domain"
	"github.com/aalvaropc/wingen/internal/infra/designstore"
	"github.com/aalvaropc/wingen/internal/usecase/query"
)

func inspectCmd() *cobra.Command {
	var workspace string
	var expr string

	c := &cobra.Command{
		Use:   "inspect [manifest|batch-dir|latest]",
		Short: "Summarize a batch manifest or query it with JSONPath",
		Example: `  wingen inspect
  wingen inspect latest --path '$.seed'
  wingen inspect designs/20260203T101112Z_3f2a9c1e --path '$.designs[0].planform.wing_span'`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			arg := ""
			if len(args) == 1 {
				arg = args[0]
			}
			path, err := resolveManifest(workspace, arg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if expr == "" {
				batch, err := designstore.NewStore(filepath.Dir(path), domain.DefaultConfig(), nil).LoadManifest(path)
				if err != nil {
					return err
				}
				printSummary(out, filepath.Dir(batch.Dir), batch)
				return nil
			}

			body, err := os.ReadFile(path)
			if err != nil {
				return &domain.OpError{Op: "cli.inspect", Kind: domain.KindNotFound, Path: path, Err: err}
			}
			v, err := query.Get(body, expr)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, v)
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (used to find the latest batch)")
	c.Flags().StringVarP(&expr, "path", "p", "", "JSONPath expression evaluated against the manifest")
	return c
}
