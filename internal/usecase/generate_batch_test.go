package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/aalvaropc/wingen/internal/domain"
)

// --- fakes ---

type fakeStore struct {
	mu        sync.Mutex
	began     bool
	saved     []int
	titles    []string
	manifest  *domain.BatchResult
	designErr error
}

func (s *fakeStore) BeginBatch(_ domain.BatchResult) (string, error) {
	s.began = true
	return "designs/batch", nil
}

func (s *fakeStore) SaveDesign(dir string, index int, _ domain.DerivedGeometry, c domain.Canvas) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.designErr != nil {
		return nil, s.designErr
	}
	s.saved = append(s.saved, index)
	s.titles = append(s.titles, c.Title)
	return []string{fmt.Sprintf("%s/%d.svg", dir, index)}, nil
}

func (s *fakeStore) SaveManifest(b domain.BatchResult) (string, error) {
	s.manifest = &b
	return b.ID, nil
}

type fakeReporter struct {
	mu      sync.Mutex
	indices []int
}

func (r *fakeReporter) Report(index int, _ domain.Planform) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.indices = append(r.indices, index)
	return nil
}

func testConfig(count int, seed uint64) domain.Config {
	cfg := domain.DefaultConfig()
	cfg.Batch.Count = count
	cfg.Batch.Seed = seed
	return cfg
}

func fixedClock() func() time.Time {
	t0 := time.Date(2026, 2, 3, 10, 11, 12, 0, time.UTC)
	return func() time.Time { return t0 }
}

// --- tests ---

func TestGenerateBatch_WritesIndexedDesigns(t *testing.T) {
	store := &fakeStore{}
	rep := &fakeReporter{}
	uc := NewGenerateBatch(WithStore(store), WithReporter(rep), WithClock(fixedClock()))

	batch, err := uc.Execute(context.Background(), testConfig(50, 1234))
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	if len(batch.Designs) != 50 {
		t.Fatalf("expected 50 designs, got=%d", len(batch.Designs))
	}
	if batch.Failures() != 0 {
		t.Fatalf("expected no failures, got=%d", batch.Failures())
	}
	if batch.Seed != 1234 {
		t.Fatalf("expected seed 1234, got=%d", batch.Seed)
	}
	if batch.ID == "" {
		t.Fatalf("expected batch id")
	}

	seen := map[string]bool{}
	for i, d := range batch.Designs {
		if d.Index != i {
			t.Fatalf("expected index %d, got=%d", i, d.Index)
		}
		want := fmt.Sprintf("designs/batch/%d.svg", i)
		if len(d.Files) != 1 || d.Files[0] != want {
			t.Fatalf("design %d: expected files [%s], got=%v", i, want, d.Files)
		}
		if seen[d.Files[0]] {
			t.Fatalf("duplicate file %s", d.Files[0])
		}
		seen[d.Files[0]] = true
	}

	if len(rep.indices) != 50 {
		t.Fatalf("expected 50 reports, got=%d", len(rep.indices))
	}
	if !store.began || store.manifest == nil {
		t.Fatalf("expected batch begin and manifest save")
	}
	if store.manifest.Dir != "designs/batch" {
		t.Fatalf("expected manifest dir, got=%q", store.manifest.Dir)
	}
}

func TestGenerateBatch_SeedIsReproducible(t *testing.T) {
	a, err := NewGenerateBatch().Execute(context.Background(), testConfig(10, 77))
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	b, err := NewGenerateBatch().Execute(context.Background(), testConfig(10, 77))
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	for i := range a.Designs {
		if a.Designs[i].Planform != b.Designs[i].Planform {
			t.Fatalf("design %d: expected identical planforms for the same seed", i)
		}
	}
}

func TestGenerateBatch_ParallelMatchesSerial(t *testing.T) {
	serialCfg := testConfig(40, 5)
	parallelCfg := testConfig(40, 5)
	parallelCfg.Batch.Workers = 8

	store := &fakeStore{}
	serial, err := NewGenerateBatch().Execute(context.Background(), serialCfg)
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	parallel, err := NewGenerateBatch(WithStore(store)).Execute(context.Background(), parallelCfg)
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	for i := range serial.Designs {
		if serial.Designs[i].Planform != parallel.Designs[i].Planform {
			t.Fatalf("design %d: parallel run diverged from serial run", i)
		}
	}

	sort.Ints(store.saved)
	for i, idx := range store.saved {
		if idx != i {
			t.Fatalf("expected saved indices 0..39, got=%v", store.saved)
		}
	}
}

func TestGenerateBatch_DegenerateDesignsAreRecordedNotFatal(t *testing.T) {
	cfg := testConfig(5, 9)
	cfg.Sampler.WingSpan = domain.Range{Min: 0, Max: 0}

	store := &fakeStore{}
	batch, err := NewGenerateBatch(WithStore(store)).Execute(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	if batch.Failures() != 5 {
		t.Fatalf("expected 5 failures, got=%d", batch.Failures())
	}
	for _, d := range batch.Designs {
		if d.Error.Kind != domain.KindDegenerateGeometry {
			t.Fatalf("expected degenerate geometry, got=%s", d.Error.Kind)
		}
		if d.Geometry != nil {
			t.Fatalf("expected no geometry for failed design")
		}
	}
	if len(store.saved) != 0 {
		t.Fatalf("expected no rendered designs, got=%v", store.saved)
	}
	if store.manifest == nil || store.manifest.Failures() != 5 {
		t.Fatalf("expected manifest with 5 failures")
	}
}

func TestGenerateBatch_InvalidConfigAbortsBeforeWork(t *testing.T) {
	cfg := testConfig(5, 1)
	cfg.Sampler.RootChord = domain.Range{Min: 1, Max: 0}

	store := &fakeStore{}
	rep := &fakeReporter{}
	_, err := NewGenerateBatch(WithStore(store), WithReporter(rep)).Execute(context.Background(), cfg)
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got: %v", err)
	}
	if store.began || len(rep.indices) != 0 {
		t.Fatalf("expected no work before config validation")
	}
}

func TestGenerateBatch_StoreErrorIsPerDesign(t *testing.T) {
	store := &fakeStore{designErr: errors.New("disk full")}
	batch, err := NewGenerateBatch(WithStore(store)).Execute(context.Background(), testConfig(3, 3))
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if batch.Failures() != 3 {
		t.Fatalf("expected 3 failures, got=%d", batch.Failures())
	}
	if batch.Designs[0].Error.Kind != domain.KindExecution {
		t.Fatalf("expected execution kind, got=%s", batch.Designs[0].Error.Kind)
	}
}

func TestGenerateBatch_WarningsAreSurfaced(t *testing.T) {
	cfg := testConfig(4, 11)
	// span + offset fractions always exceed the half-span
	cfg.Sampler.ElevonSpanFraction = domain.Range{Min: 0.9, Max: 0.9}
	cfg.Sampler.ElevonOffsetFraction = domain.Range{Min: 0.5, Max: 0.5}
	cfg.Sampler.WingSpan = domain.Range{Min: 1, Max: 2}

	batch, err := NewGenerateBatch().Execute(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	for _, d := range batch.Designs {
		if len(d.Warnings) != 1 || d.Warnings[0].Kind != domain.WarningOutOfBounds {
			t.Fatalf("design %d: expected one out-of-bounds warning, got=%v", d.Index, d.Warnings)
		}
	}
	if batch.WarningCount() != 4 {
		t.Fatalf("expected 4 warnings, got=%d", batch.WarningCount())
	}
}

func TestGenerateBatch_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	batch, err := NewGenerateBatch().Execute(ctx, testConfig(10, 1))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got: %v", err)
	}
	if len(batch.Designs) != 0 {
		t.Fatalf("expected no designs, got=%d", len(batch.Designs))
	}
}

func TestGenerateBatch_ZeroSeedPicksOne(t *testing.T) {
	batch, err := NewGenerateBatch().Execute(context.Background(), testConfig(1, 0))
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if batch.Seed == 0 {
		t.Fatalf("expected a non-zero seed to be recorded")
	}
}

func TestGenerateBatch_TitleTemplate(t *testing.T) {
	cfg := testConfig(1, 5)
	cfg.Render.Title = "{{batch}} #{{index}} seed {{seed}}"

	store := &fakeStore{}
	uc := NewGenerateBatch(WithStore(store))
	uc.newID = func() string { return "b-1" }

	if _, err := uc.Execute(context.Background(), cfg); err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if len(store.titles) != 1 || store.titles[0] != "b-1 #0 seed 5" {
		t.Fatalf("expected rendered title, got=%v", store.titles)
	}
}

type cancelingReporter struct {
	cancel context.CancelFunc
}

func (r cancelingReporter) Report(int, domain.Planform) error {
	r.cancel()
	return nil
}

func TestGenerateBatch_CancelBeforeRenderMarksDesignFailed(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := &fakeStore{}
	uc := NewGenerateBatch(WithStore(store), WithReporter(cancelingReporter{cancel: cancel}))

	batch, err := uc.Execute(ctx, testConfig(1, 3))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got: %v", err)
	}
	if len(batch.Designs) != 1 {
		t.Fatalf("expected 1 design, got=%d", len(batch.Designs))
	}
	d := batch.Designs[0]
	if !d.Failed() || d.Error.Kind != domain.KindExecution {
		t.Fatalf("expected unrendered design to be a failure, got=%+v", d.Error)
	}
	if len(d.Files) != 0 || len(store.saved) != 0 {
		t.Fatalf("expected nothing rendered, files=%v saved=%v", d.Files, store.saved)
	}
	if store.manifest == nil || store.manifest.Failures() != 1 {
		t.Fatalf("expected manifest to record 1 failure")
	}
}
