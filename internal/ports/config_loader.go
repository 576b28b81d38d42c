package ports

import "github.com/aalvaropc/wingen/internal/domain"

// ConfigLoader loads the workspace configuration from a root directory.
type ConfigLoader interface {
	LoadConfig(root string) (domain.Config, error)
}
