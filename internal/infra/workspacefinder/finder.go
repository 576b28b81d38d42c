package workspacefinder

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/wingen/internal/domain"
	"github.com/aalvaropc/wingen/internal/infra/config"
	"github.com/aalvaropc/wingen/internal/ports"
)

// Finder locates a wingen workspace root by searching for wingen.yaml upward.
type Finder struct {
	ConfigFile string
}

func NewFinder() *Finder {
	return &Finder{ConfigFile: config.FileName}
}

var _ ports.WorkspaceLocator = (*Finder)(nil)

func (f *Finder) FindRoot(startDir string) (string, error) {
	if strings.TrimSpace(startDir) == "" {
		return "", &domain.OpError{
			Op:   "workspacefinder.findroot",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("startDir is empty"),
		}
	}

	cur, err := startingDir(startDir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "workspacefinder.findroot",
			Kind: domain.KindExecution,
			Path: startDir,
			Err:  err,
		}
	}

	for {
		if isFile(filepath.Join(cur, f.ConfigFile)) {
			return cur, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			return "", &domain.OpError{
				Op:   "workspacefinder.findroot",
				Kind: domain.KindNotFound,
				Path: startDir,
				Err:  domain.ErrNotFound,
			}
		}
		cur = parent
	}
}

// Resolve returns explicit as an absolute path when set, otherwise the
// workspace found upward from startDir.
func (f *Finder) Resolve(explicit, startDir string) (string, error) {
	if w := strings.TrimSpace(explicit); w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", &domain.OpError{
				Op:   "workspacefinder.resolve",
				Kind: domain.KindInvalidConfig,
				Path: w,
				Err:  err,
			}
		}
		return abs, nil
	}
	return f.FindRoot(startDir)
}

// startingDir makes p absolute and steps up to its directory when p is a file.
func startingDir(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", err
	}
	if info, statErr := os.Stat(abs); statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}
	return filepath.Clean(abs), nil
}

func isFile(p string) bool {
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}
