package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
)

func cmdLoadBatches(deps Deps) tea.Cmd {
	return func() tea.Msg {
		if deps.Catalog == nil {
			return batchesLoadedMsg{err: errors.New("BatchCatalog is nil")}
		}
		refs, err := deps.Catalog.ListBatches()
		return batchesLoadedMsg{refs: refs, err: err}
	}
}

func cmdLoadManifest(deps Deps, path string) tea.Cmd {
	return func() tea.Msg {
		if deps.Catalog == nil {
			return manifestLoadedMsg{path: path, err: errors.New("BatchCatalog is nil")}
		}
		b, err := deps.Catalog.LoadManifest(path)
		return manifestLoadedMsg{path: path, batch: b, err: err}
	}
}
