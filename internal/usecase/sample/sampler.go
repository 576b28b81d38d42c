// Package sample draws random planforms from configured parameter ranges.
package sample

import (
	"math/rand/v2"

	"github.com/aalvaropc/wingen/internal/domain"
)

// Sampler owns a single random source for the planforms it generates.
// It is not safe for concurrent use; give each goroutine its own Sampler.
type Sampler struct {
	cfg domain.SamplerConfig
	rng *rand.Rand
}

// New validates cfg before any sampling takes place.
func New(cfg domain.SamplerConfig, rng *rand.Rand) (*Sampler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Sampler{cfg: cfg, rng: rng}, nil
}

// NewSeeded returns a Sampler whose output is fully determined by (seed, stream).
// Batches use the design index as the stream.
func NewSeeded(cfg domain.SamplerConfig, seed, stream uint64) (*Sampler, error) {
	return New(cfg, rand.New(rand.NewPCG(seed, stream)))
}

// Generate draws one complete planform. The draw order is fixed so seeded
// samplers are reproducible.
func (s *Sampler) Generate() domain.Planform {
	var p domain.Planform

	p.WingSpan = s.draw(s.cfg.WingSpan)
	p.RootChord = s.draw(s.cfg.RootChord)
	p.TaperRatio = s.draw(s.cfg.TaperRatio)
	p.TipChord = p.RootChord * p.TaperRatio
	p.SweepbackAngle = s.draw(s.cfg.SweepbackAngle)
	p.DihedralAngle = s.draw(s.cfg.DihedralAngle)
	p.WashoutAngle = s.draw(s.cfg.WashoutAngle)
	p.ElevonChord = s.draw(s.cfg.ElevonChord)
	p.ElevonSpan = p.HalfSpan() * s.draw(s.cfg.ElevonSpanFraction)
	p.ElevonOffset = p.HalfSpan() * s.draw(s.cfg.ElevonOffsetFraction)

	return p
}

// draw returns a uniform value in [r.Min, r.Max).
func (s *Sampler) draw(r domain.Range) float64 {
	return r.Min + s.rng.Float64()*r.Width()
}
