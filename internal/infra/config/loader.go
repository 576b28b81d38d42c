package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/wingen/internal/domain"
	"github.com/aalvaropc/wingen/internal/ports"
)

// FileName is the workspace configuration file looked up in the workspace root.
const FileName = "wingen.yaml"

type Loader struct {
	FileName string
}

func NewLoader() *Loader {
	return &Loader{FileName: FileName}
}

var _ ports.ConfigLoader = (*Loader)(nil)

// LoadConfig loads wingen.yaml from the workspace root and applies defaults.
func (l *Loader) LoadConfig(root string) (domain.Config, error) {
	return Load(filepath.Join(root, l.FileName))
}

func Load(path string) (domain.Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Config{}, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var dto YAMLFile
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return domain.Config{}, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return MapConfig(path, dto)
}
