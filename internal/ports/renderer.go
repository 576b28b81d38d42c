package ports

import (
	"io"

	"github.com/aalvaropc/wingen/internal/domain"
)

// Renderer draws derived geometry in one output format.
type Renderer interface {
	// Format is also used as the file extension (e.g. "svg").
	Format() string
	Render(w io.Writer, g domain.DerivedGeometry, canvas domain.Canvas) error
}
