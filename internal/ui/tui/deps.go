package tui

import (
	"log/slog"

	"github.com/aalvaropc/wingen/internal/ports"
)

type Deps struct {
	Catalog ports.BatchCatalog
	// Manifest opens a specific batch instead of the batch list.
	Manifest string

	Logger *slog.Logger
	Debug  bool
}
