package cli

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/wingen/internal/infra/logger"
	"github.com/aalvaropc/wingen/internal/infra/workspacefinder"
)

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd, closeLog := newRootCmd()
	err := cmd.ExecuteContext(ctx)
	_ = closeLog()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() (*cobra.Command, func() error) {
	var debug bool
	cleanup := func() error { return nil }

	cmd := &cobra.Command{
		Use:          "wingen",
		Short:        "wingen: random flying-wing planform generator",
		SilenceUsage: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			if done, err := setupLogger(c, debug); err == nil {
				cleanup = done
			}
			return nil
		},
		RunE: func(c *cobra.Command, _ []string) error {
			return runBrowse(c, "", "", debug)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .wingen/logs/wingen.log")

	cmd.AddCommand(
		initCmd(),
		generateCmd(),
		validateCmd(),
		inspectCmd(),
		batchesCmd(),
		browseCmd(&debug),
		versionCmd(),
	)

	return cmd, func() error { return cleanup() }
}

// setupLogger writes logs into the workspace of the running command. Outside a
// workspace records are discarded.
func setupLogger(c *cobra.Command, debug bool) (func() error, error) {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	wd, _ = filepath.Abs(wd)

	explicit := ""
	if f := c.Flags().Lookup("workspace"); f != nil {
		explicit = f.Value.String()
	}
	root, err := workspacefinder.NewFinder().Resolve(explicit, wd)
	if err != nil {
		return nil, err
	}

	return logger.Setup(logger.Config{
		Root:    root,
		Debug:   debug,
		Command: c.Name(),
	})
}
