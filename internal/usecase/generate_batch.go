package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/aalvaropc/wingen/internal/app/template"
	"github.com/aalvaropc/wingen/internal/domain"
	"github.com/aalvaropc/wingen/internal/ports"
	"github.com/aalvaropc/wingen/internal/usecase/geometry"
	"github.com/aalvaropc/wingen/internal/usecase/sample"
)

type GenerateBatch struct {
	store    ports.DesignStore
	reporter ports.Reporter
	logger   *slog.Logger
	now      func() time.Time
	newID    func() string
}

type GenerateOption func(*GenerateBatch)

// WithStore enables rendering and persistence. Without a store designs are only
// sampled, reported and derived.
func WithStore(s ports.DesignStore) GenerateOption {
	return func(uc *GenerateBatch) { uc.store = s }
}

func WithReporter(r ports.Reporter) GenerateOption {
	return func(uc *GenerateBatch) { uc.reporter = r }
}

func WithLogger(l *slog.Logger) GenerateOption {
	return func(uc *GenerateBatch) {
		if l != nil {
			uc.logger = l
		}
	}
}

// WithClock is useful for tests.
func WithClock(now func() time.Time) GenerateOption {
	return func(uc *GenerateBatch) { uc.now = now }
}

func NewGenerateBatch(opts ...GenerateOption) *GenerateBatch {
	uc := &GenerateBatch{
		logger: slog.New(slog.NewJSONHandler(io.Discard, nil)),
		now:    time.Now,
		newID:  func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute generates cfg.Batch.Count designs. Each design runs
// sample -> report -> derive -> render on its own random stream, so designs are
// independent and may run on cfg.Batch.Workers goroutines.
//
// Configuration errors abort before any design is generated. Per-design failures
// are recorded on the design result and do not stop the batch.
func (uc *GenerateBatch) Execute(ctx context.Context, cfg domain.Config) (domain.BatchResult, error) {
	if err := cfg.Sampler.Validate(); err != nil {
		return domain.BatchResult{}, err
	}
	if cfg.Batch.Count < 0 {
		return domain.BatchResult{}, domain.InvalidConfig("generate.validate", "batch.count", "must be >= 0")
	}
	if !(cfg.Render.Scale > 0) {
		return domain.BatchResult{}, domain.InvalidConfig("generate.validate", "render.scale", "must be > 0")
	}

	seed := cfg.Batch.Seed
	for seed == 0 {
		seed = rand.Uint64()
	}

	batch := domain.BatchResult{
		ID:        uc.newID(),
		Seed:      seed,
		Scale:     cfg.Render.Scale,
		StartedAt: uc.now().UTC(),
		Designs:   make([]domain.DesignResult, cfg.Batch.Count),
	}

	log := uc.logger.With("batch_id", batch.ID)
	log.Info("batch.start", "count", cfg.Batch.Count, "seed", seed, "workers", cfg.Batch.Workers)

	if uc.store != nil {
		dir, err := uc.store.BeginBatch(batch)
		if err != nil {
			return domain.BatchResult{}, err
		}
		batch.Dir = dir
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(cfg.Batch.Workers, 1))

	scheduled := 0
	for i := range batch.Designs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			batch.Designs[i] = uc.runDesign(gctx, log, cfg, batch, i)
			return nil
		})
		scheduled++
	}
	_ = g.Wait()

	batch.Designs = batch.Designs[:scheduled]
	batch.EndedAt = uc.now().UTC()

	log.Info("batch.done",
		"designs", len(batch.Designs),
		"failures", batch.Failures(),
		"warnings", batch.WarningCount(),
		"duration", batch.EndedAt.Sub(batch.StartedAt).String(),
	)

	if uc.store != nil {
		if _, err := uc.store.SaveManifest(batch); err != nil {
			return batch, err
		}
	}

	if err := ctx.Err(); err != nil {
		return batch, err
	}
	return batch, nil
}

// runDesign only reads batch; results are written by the caller.
func (uc *GenerateBatch) runDesign(ctx context.Context, log *slog.Logger, cfg domain.Config, batch domain.BatchResult, i int) domain.DesignResult {
	res := domain.DesignResult{Index: i}
	log = log.With("design", i)

	s, err := sample.NewSeeded(cfg.Sampler, batch.Seed, uint64(i))
	if err != nil {
		res.Error = domain.NewDesignError(err)
		return res
	}
	res.Planform = s.Generate()
	log.Debug("design.sampled", "planform", res.Planform)

	if uc.reporter != nil {
		if err := uc.reporter.Report(i, res.Planform); err != nil {
			log.Warn("design.report_failed", "err", err)
		}
	}

	g, err := geometry.Derive(res.Planform, cfg.Render.Scale)
	if err != nil {
		log.Warn("design.failed", "err", err)
		res.Error = domain.NewDesignError(err)
		return res
	}
	res.Geometry = &g
	res.Warnings = g.Warnings
	for _, w := range g.Warnings {
		log.Warn("design.warning", "field", w.Field, "value", w.Value, "clamped", w.Clamped)
	}

	if uc.store == nil {
		return res
	}
	if err := ctx.Err(); err != nil {
		log.Warn("design.failed", "err", err)
		res.Error = domain.NewDesignError(fmt.Errorf("design %d not rendered: %w", i, err))
		return res
	}

	title, err := template.RenderString(cfg.Render.Title, domain.TitleVars(i, batch.Seed, batch.ID))
	if err != nil {
		res.Error = domain.NewDesignError(err)
		return res
	}
	canvas := domain.Canvas{
		Width:  cfg.Render.Width,
		Height: cfg.Render.Height,
		Fit:    cfg.Render.Fit,
		Title:  title,
	}
	files, err := uc.store.SaveDesign(batch.Dir, i, g, canvas)
	res.Files = files
	if err != nil {
		log.Warn("design.failed", "err", err)
		res.Error = domain.NewDesignError(err)
	}
	return res
}
