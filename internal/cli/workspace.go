package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/wingen/internal/domain"
	"github.com/aalvaropc/wingen/internal/infra/config"
	"github.com/aalvaropc/wingen/internal/infra/designstore"
	"github.com/aalvaropc/wingen/internal/infra/pngrender"
	"github.com/aalvaropc/wingen/internal/infra/svgrender"
	"github.com/aalvaropc/wingen/internal/infra/workspacefinder"
	"github.com/aalvaropc/wingen/internal/ports"
)

type workspaceCtx struct {
	root string
	cfg  domain.Config
}

func loadWorkspace(workspaceFlag string) (*workspaceCtx, error) {
	root, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		return nil, err
	}

	cfg, err := config.NewLoader().LoadConfig(root)
	if err != nil {
		return nil, err
	}

	return &workspaceCtx{root: root, cfg: cfg}, nil
}

// store wires the design store with a renderer per configured format.
func (ws *workspaceCtx) store() (*designstore.Store, error) {
	renderers, err := renderersFor(ws.cfg.Render.Formats)
	if err != nil {
		return nil, err
	}
	return designstore.NewStore(ws.root, ws.cfg, renderers, designstore.WithIndex(true)), nil
}

func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	root, err := workspacefinder.NewFinder().Resolve(workspaceFlag, wd)
	if err != nil {
		if strings.TrimSpace(workspaceFlag) == "" {
			return "", fmt.Errorf("workspace not found from %q (tip: run `wingen init`): %w", wd, err)
		}
		return "", err
	}
	return root, nil
}

func renderersFor(formats []string) ([]ports.Renderer, error) {
	out := make([]ports.Renderer, 0, len(formats))
	seen := map[string]bool{}
	for _, f := range formats {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true

		switch f {
		case "svg":
			out = append(out, svgrender.New())
		case "png":
			out = append(out, pngrender.New())
		default:
			return nil, domain.InvalidConfig("cli.render", "render.formats", fmt.Sprintf("unsupported format %q (expected svg|png)", f))
		}
	}
	if len(out) == 0 {
		return nil, domain.InvalidConfig("cli.render", "render.formats", "at least one format is required")
	}
	return out, nil
}

func (ws *workspaceCtx) catalog() *designstore.Store {
	return designstore.NewStore(ws.root, ws.cfg, nil, designstore.WithIndex(true))
}

// resolveManifest maps an inspect/browse argument to a manifest path. Empty or
// "latest" selects the newest indexed batch of the workspace.
func resolveManifest(workspaceFlag, arg string) (string, error) {
	in := strings.TrimSpace(arg)
	if in != "" && in != "latest" {
		if st, err := os.Stat(in); err == nil && st.IsDir() {
			return filepath.Join(in, "manifest.json"), nil
		}
		return in, nil
	}

	ws, err := loadWorkspace(workspaceFlag)
	if err != nil {
		return "", err
	}
	refs, err := ws.catalog().ListBatches()
	if err != nil {
		return "", err
	}
	if len(refs) == 0 {
		return "", &domain.OpError{
			Op:   "cli.latest",
			Kind: domain.KindNotFound,
			Path: filepath.Join(ws.root, ws.cfg.Paths.DesignsDir),
			Err:  fmt.Errorf("no batches yet (tip: run `wingen generate`): %w", domain.ErrNotFound),
		}
	}
	return refs[len(refs)-1].Manifest, nil
}
