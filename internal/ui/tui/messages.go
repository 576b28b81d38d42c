package tui

import "github.com/aalvaropc/wingen/internal/domain"

type batchesLoadedMsg struct {
	refs []domain.BatchRef
	err  error
}

type manifestLoadedMsg struct {
	path  string
	batch domain.BatchResult
	err   error
}
