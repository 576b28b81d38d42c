// Package designstore writes rendered designs and batch manifests under the
// workspace designs directory:
//
//	<designs_dir>/<UTC timestamp>_<id prefix>/<index>.<format>
//	<designs_dir>/<UTC timestamp>_<id prefix>/manifest.json
//	<designs_dir>/index.jsonl
package designstore

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aalvaropc/wingen/internal/domain"
	"github.com/aalvaropc/wingen/internal/ports"
)

const (
	defaultDesignsDir = "designs"
	manifestName      = "manifest.json"
	indexName         = "index.jsonl"
	idPrefixLen       = 8
)

type Store struct {
	rootDir        string
	designsDirName string
	renderers      []ports.Renderer
	writeIndex     bool
	now            func() time.Time
}

type Option func(*Store)

// WithIndex enables the batch index: <designs_dir>/index.jsonl
func WithIndex(enabled bool) Option {
	return func(s *Store) { s.writeIndex = enabled }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func NewStore(root string, cfg domain.Config, renderers []ports.Renderer, opts ...Option) *Store {
	designsDir := cfg.Paths.DesignsDir
	if strings.TrimSpace(designsDir) == "" {
		designsDir = defaultDesignsDir
	}

	s := &Store{
		rootDir:        root,
		designsDirName: designsDir,
		renderers:      renderers,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var (
	_ ports.DesignStore  = (*Store)(nil)
	_ ports.BatchCatalog = (*Store)(nil)
)

func (s *Store) designsDir() string {
	return filepath.Join(s.rootDir, s.designsDirName)
}

func (s *Store) BeginBatch(batch domain.BatchResult) (string, error) {
	ts := batch.StartedAt
	if ts.IsZero() {
		ts = s.now()
	}

	name := ts.UTC().Format("20060102T150405Z")
	if id := batchSlug(batch.ID); id != "" {
		name += "_" + id
	}

	dir := filepath.Join(s.designsDir(), name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "designstore.mkdir",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}
	return dir, nil
}

// SaveDesign renders g once per configured renderer. Files already written are
// returned even when a later renderer fails.
func (s *Store) SaveDesign(dir string, index int, g domain.DerivedGeometry, canvas domain.Canvas) ([]string, error) {
	files := make([]string, 0, len(s.renderers))
	for _, r := range s.renderers {
		path := filepath.Join(dir, fmt.Sprintf("%d.%s", index, r.Format()))

		var buf bytes.Buffer
		if err := r.Render(&buf, g, canvas); err != nil {
			return files, &domain.OpError{
				Op:   "designstore.render",
				Kind: domain.KindExecution,
				Path: path,
				Err:  err,
			}
		}
		if err := writeAtomic(path, buf.Bytes(), "designstore"); err != nil {
			return files, err
		}
		files = append(files, path)
	}
	return files, nil
}

func (s *Store) SaveManifest(batch domain.BatchResult) (string, error) {
	dir := batch.Dir
	if dir == "" {
		var err error
		if dir, err = s.BeginBatch(batch); err != nil {
			return "", err
		}
		batch.Dir = dir
	}
	path := filepath.Join(dir, manifestName)

	b, err := json.MarshalIndent(batch, "", "  ")
	if err != nil {
		return "", &domain.OpError{
			Op:   "designstore.marshal",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}
	if err := writeAtomic(path, b, "designstore"); err != nil {
		return "", err
	}

	if s.writeIndex {
		_ = s.appendIndex(domain.BatchRef{
			ID:        batch.ID,
			Dir:       dir,
			Manifest:  path,
			Count:     len(batch.Designs),
			Failures:  batch.Failures(),
			StartedAt: batch.StartedAt,
		})
	}

	return batch.ID, nil
}

func (s *Store) appendIndex(ref domain.BatchRef) error {
	line, err := json.Marshal(ref)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(filepath.Join(s.designsDir(), indexName), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(append(line, '\n'))
	return err
}

// ListBatches returns the indexed batches, oldest first. A missing index is an
// empty catalog; malformed lines are skipped.
func (s *Store) ListBatches() ([]domain.BatchRef, error) {
	path := filepath.Join(s.designsDir(), indexName)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, &domain.OpError{
			Op:   "designstore.list",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}
	defer f.Close()

	var refs []domain.BatchRef
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		var ref domain.BatchRef
		if json.Unmarshal(line, &ref) != nil {
			continue
		}
		refs = append(refs, ref)
	}
	if err := sc.Err(); err != nil {
		return nil, &domain.OpError{
			Op:   "designstore.list",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}
	return refs, nil
}

// LoadManifest reads a manifest file, or the manifest inside a batch directory.
func (s *Store) LoadManifest(path string) (domain.BatchResult, error) {
	if st, err := os.Stat(path); err == nil && st.IsDir() {
		path = filepath.Join(path, manifestName)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		kind := domain.KindExecution
		if os.IsNotExist(err) {
			kind = domain.KindNotFound
			err = domain.ErrNotFound
		}
		return domain.BatchResult{}, &domain.OpError{
			Op:   "designstore.load",
			Kind: kind,
			Path: path,
			Err:  err,
		}
	}

	var batch domain.BatchResult
	if err := json.Unmarshal(b, &batch); err != nil {
		return domain.BatchResult{}, &domain.OpError{
			Op:   "designstore.decode",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}
	return batch, nil
}

// writeAtomic writes to a sibling tmp file and renames it into place.
func writeAtomic(path string, b []byte, op string) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return &domain.OpError{
			Op:   op + ".write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return &domain.OpError{
			Op:   op + ".rename",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}
	return nil
}

// batchSlug keeps the leading alphanumerics of a batch id for directory names.
func batchSlug(id string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(id) {
		if b.Len() == idPrefixLen {
			break
		}
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
