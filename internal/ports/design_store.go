package ports

import "github.com/aalvaropc/wingen/internal/domain"

// DesignStore persists rendered designs and batch manifests.
type DesignStore interface {
	// BeginBatch reserves an output location for a batch and returns its directory.
	BeginBatch(batch domain.BatchResult) (dir string, err error)
	// SaveDesign renders one design with every renderer and returns the written file paths.
	SaveDesign(dir string, index int, g domain.DerivedGeometry, canvas domain.Canvas) ([]string, error)
	// SaveManifest writes the batch record and returns its id.
	SaveManifest(batch domain.BatchResult) (id string, err error)
}

// BatchCatalog lists previously saved batches.
type BatchCatalog interface {
	ListBatches() ([]domain.BatchRef, error)
	LoadManifest(path string) (domain.BatchResult, error)
}
