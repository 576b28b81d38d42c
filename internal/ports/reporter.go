package ports

import "github.com/aalvaropc/wingen/internal/domain"

// Reporter prints sampled planforms for human review. Implementations must be
// safe for concurrent use.
type Reporter interface {
	Report(index int, p domain.Planform) error
}
