package usecase

import (
	"context"

	"github.com/aalvaropc/wingen/internal/domain"
	"github.com/aalvaropc/wingen/internal/ports"
	"github.com/aalvaropc/wingen/internal/usecase/geometry"
	"github.com/aalvaropc/wingen/internal/usecase/sample"
)

type ValidateConfig struct {
	loader ports.ConfigLoader
	trials int
}

type ValidateOption func(*ValidateConfig)

// WithTrials sets how many designs are sampled and derived as a smoke test.
func WithTrials(n int) ValidateOption {
	return func(uc *ValidateConfig) {
		if n >= 0 {
			uc.trials = n
		}
	}
}

func NewValidateConfig(l ports.ConfigLoader, opts ...ValidateOption) *ValidateConfig {
	uc := &ValidateConfig{loader: l, trials: 1}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute loads the workspace configuration and checks it without writing any output.
// A few trial designs are sampled and derived so range mistakes surface early;
// degenerate trial geometry is not an error because it depends on the draw.
func (uc *ValidateConfig) Execute(ctx context.Context, root string) (domain.Config, error) {
	cfg, err := uc.loader.LoadConfig(root)
	if err != nil {
		return cfg, err
	}

	s, err := sample.New(cfg.Sampler, nil)
	if err != nil {
		return cfg, err
	}

	for i := 0; i < uc.trials; i++ {
		if err := ctx.Err(); err != nil {
			return cfg, err
		}
		_, err := geometry.Derive(s.Generate(), cfg.Render.Scale)
		if err != nil && !domain.IsKind(err, domain.KindDegenerateGeometry) {
			return cfg, err
		}
	}

	return cfg, nil
}
