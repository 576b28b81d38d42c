package config

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/aalvaropc/wingen/internal/app/template"
	"github.com/aalvaropc/wingen/internal/domain"
)

var configValidate = validator.New()

// MapConfig applies the parsed file on top of domain.DefaultConfig and validates the result.
func MapConfig(path string, y YAMLFile) (domain.Config, error) {
	cfg := domain.DefaultConfig()
	w := y.Wingen

	if w.Batch.Count != nil {
		cfg.Batch.Count = *w.Batch.Count
	}
	if w.Batch.Seed != nil {
		cfg.Batch.Seed = *w.Batch.Seed
	}
	if w.Batch.Workers != nil {
		cfg.Batch.Workers = *w.Batch.Workers
	}

	if w.Render.Width != nil {
		cfg.Render.Width = *w.Render.Width
	}
	if w.Render.Height != nil {
		cfg.Render.Height = *w.Render.Height
	}
	if w.Render.Scale != nil {
		cfg.Render.Scale = *w.Render.Scale
	}
	if w.Render.Formats != nil {
		cfg.Render.Formats = NormalizeFormats(w.Render.Formats)
	}
	if w.Render.Fit != nil {
		cfg.Render.Fit = *w.Render.Fit
	}
	if w.Render.Title != nil {
		cfg.Render.Title = *w.Render.Title
	}

	if strings.TrimSpace(w.Paths.DesignsDir) != "" {
		cfg.Paths.DesignsDir = strings.TrimSpace(w.Paths.DesignsDir)
	}

	// Deterministic error reporting when several keys are wrong.
	keys := make([]string, 0, len(w.Ranges))
	for k := range w.Ranges {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		target := rangeField(&cfg.Sampler, key)
		if target == nil {
			return domain.Config{}, invalidField(path, "ranges."+key, "unknown parameter")
		}
		r, err := mapRange(key, *target, w.Ranges[key])
		if err != nil {
			return domain.Config{}, invalidField(path, "ranges."+key, err.Error())
		}
		*target = r
	}

	if err := Validate(cfg); err != nil {
		var oe *domain.OpError
		if errors.As(err, &oe) {
			oe.Path = path
		}
		return domain.Config{}, err
	}

	return cfg, nil
}

// Validate checks struct constraints and range ordering.
func Validate(cfg domain.Config) error {
	if err := configValidate.Struct(cfg); err != nil {
		var ves validator.ValidationErrors
		if errors.As(err, &ves) && len(ves) > 0 {
			fe := ves[0]
			return &domain.OpError{
				Op:   "config.validate",
				Kind: domain.KindInvalidConfig,
				Err:  fmt.Errorf("field %s: failed %q (value %v): %w", fe.Namespace(), fe.Tag(), fe.Value(), domain.ErrInvalidConfig),
			}
		}
		return &domain.OpError{Op: "config.validate", Kind: domain.KindInvalidConfig, Err: err}
	}
	if _, err := template.RenderString(cfg.Render.Title, domain.TitleVars(0, 0, "")); err != nil {
		return err
	}
	return cfg.Sampler.Validate()
}

func rangeField(s *domain.SamplerConfig, key string) *domain.Range {
	switch key {
	case "wing_span":
		return &s.WingSpan
	case "root_chord":
		return &s.RootChord
	case "taper_ratio":
		return &s.TaperRatio
	case "sweepback_angle":
		return &s.SweepbackAngle
	case "dihedral_angle":
		return &s.DihedralAngle
	case "washout_angle":
		return &s.WashoutAngle
	case "elevon_chord":
		return &s.ElevonChord
	case "elevon_span_fraction":
		return &s.ElevonSpanFraction
	case "elevon_offset_fraction":
		return &s.ElevonOffsetFraction
	default:
		return nil
	}
}

func mapRange(key string, base domain.Range, y YAMLRange) (domain.Range, error) {
	factor := 1.0
	switch strings.ToLower(strings.TrimSpace(y.Unit)) {
	case "", "rad", "m":
	case "deg":
		if !strings.HasSuffix(key, "_angle") {
			return domain.Range{}, fmt.Errorf("unit deg is only valid for angles")
		}
		factor = math.Pi / 180
	default:
		return domain.Range{}, fmt.Errorf("unsupported unit %q", y.Unit)
	}

	out := base
	if y.Min != nil {
		out.Min = *y.Min * factor
	}
	if y.Max != nil {
		out.Max = *y.Max * factor
	}
	if err := out.Validate(); err != nil {
		return domain.Range{}, err
	}
	return out, nil
}

// NormalizeFormats trims and lowercases render format names.
func NormalizeFormats(in []string) []string {
	out := make([]string, 0, len(in))
	for _, f := range in {
		out = append(out, strings.ToLower(strings.TrimSpace(f)))
	}
	return out
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
