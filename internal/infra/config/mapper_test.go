package config

import (
	"math"
	"strings"
	"testing"

	"github.com/aalvaropc/wingen/internal/domain"
)

func ptr[T any](v T) *T { return &v }

func TestMapConfig_EmptyFileGivesDefaults(t *testing.T) {
	cfg, err := MapConfig("wingen.yaml", YAMLFile{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	def := domain.DefaultConfig()
	if cfg.Batch != def.Batch || cfg.Sampler != def.Sampler || cfg.Paths != def.Paths {
		t.Fatalf("expected defaults, got=%+v", cfg)
	}
	if cfg.Render.Width != 1100 || cfg.Render.Height != 850 || cfg.Render.Scale != 1000 {
		t.Fatalf("unexpected render defaults: %+v", cfg.Render)
	}
}

func TestMapConfig_Overrides(t *testing.T) {
	y := YAMLFile{Wingen: YAMLConfig{
		Batch:  YAMLBatch{Count: ptr(5), Seed: ptr(uint64(99)), Workers: ptr(4)},
		Render: YAMLRender{Width: ptr(800), Scale: ptr(500.0), Formats: []string{" SVG ", "png"}, Fit: ptr(false)},
		Paths:  YAMLPaths{DesignsDir: "out"},
		Ranges: map[string]YAMLRange{
			"wing_span":      {Min: ptr(0.5), Max: ptr(1.5)},
			"taper_ratio":    {Max: ptr(0.8)},
			"dihedral_angle": {Min: ptr(0.0), Max: ptr(10.0), Unit: "deg"},
		},
	}}

	cfg, err := MapConfig("wingen.yaml", y)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Batch.Count != 5 || cfg.Batch.Seed != 99 || cfg.Batch.Workers != 4 {
		t.Fatalf("unexpected batch: %+v", cfg.Batch)
	}
	if cfg.Render.Width != 800 || cfg.Render.Height != 850 || cfg.Render.Scale != 500 || cfg.Render.Fit {
		t.Fatalf("unexpected render: %+v", cfg.Render)
	}
	if strings.Join(cfg.Render.Formats, ",") != "svg,png" {
		t.Fatalf("expected normalized formats, got=%v", cfg.Render.Formats)
	}
	if cfg.Paths.DesignsDir != "out" {
		t.Fatalf("expected designs dir=out, got=%s", cfg.Paths.DesignsDir)
	}
	if cfg.Sampler.WingSpan != (domain.Range{Min: 0.5, Max: 1.5}) {
		t.Fatalf("unexpected wing span: %+v", cfg.Sampler.WingSpan)
	}
	if cfg.Sampler.TaperRatio != (domain.Range{Min: 0, Max: 0.8}) {
		t.Fatalf("expected partial override to keep default min, got=%+v", cfg.Sampler.TaperRatio)
	}
	if math.Abs(cfg.Sampler.DihedralAngle.Max-10*math.Pi/180) > 1e-12 {
		t.Fatalf("expected degrees converted to radians, got=%v", cfg.Sampler.DihedralAngle.Max)
	}
}

func TestMapConfig_Errors(t *testing.T) {
	cases := []struct {
		name string
		y    YAMLConfig
		want string
	}{
		{"inverted range", YAMLConfig{Ranges: map[string]YAMLRange{"root_chord": {Min: ptr(1.0), Max: ptr(0.5)}}}, "ranges.root_chord"},
		{"unknown range", YAMLConfig{Ranges: map[string]YAMLRange{"canard": {Min: ptr(0.0)}}}, "ranges.canard"},
		{"deg on length", YAMLConfig{Ranges: map[string]YAMLRange{"wing_span": {Max: ptr(1.0), Unit: "deg"}}}, "only valid for angles"},
		{"bad unit", YAMLConfig{Ranges: map[string]YAMLRange{"washout_angle": {Unit: "grad"}}}, "unsupported unit"},
		{"zero width", YAMLConfig{Render: YAMLRender{Width: ptr(0)}}, "Width"},
		{"zero scale", YAMLConfig{Render: YAMLRender{Scale: ptr(0.0)}}, "Scale"},
		{"bad format", YAMLConfig{Render: YAMLRender{Formats: []string{"pdf"}}}, "Formats"},
		{"no formats", YAMLConfig{Render: YAMLRender{Formats: []string{}}}, "Formats"},
		{"zero workers", YAMLConfig{Batch: YAMLBatch{Workers: ptr(0)}}, "Workers"},
		{"negative count", YAMLConfig{Batch: YAMLBatch{Count: ptr(-1)}}, "Count"},
		{"infinite range", YAMLConfig{Ranges: map[string]YAMLRange{"wing_span": {Min: ptr(math.Inf(-1)), Max: ptr(math.Inf(1))}}}, "ranges.wing_span"},
		{"negative chord", YAMLConfig{Ranges: map[string]YAMLRange{"root_chord": {Min: ptr(-2.0), Max: ptr(-1.0)}}}, "root_chord"},
	}
	for _, c := range cases {
		_, err := MapConfig("wingen.yaml", YAMLFile{Wingen: c.y})
		if err == nil {
			t.Errorf("%s: expected error", c.name)
			continue
		}
		if !domain.IsKind(err, domain.KindInvalidConfig) {
			t.Errorf("%s: expected KindInvalidConfig, got: %v", c.name, err)
		}
		if !strings.Contains(err.Error(), c.want) {
			t.Errorf("%s: expected %q in error, got: %v", c.name, c.want, err)
		}
		if !strings.Contains(err.Error(), "wingen.yaml") {
			t.Errorf("%s: expected path in error, got: %v", c.name, err)
		}
	}
}

func TestMapConfig_Title(t *testing.T) {
	cfg, err := MapConfig("wingen.yaml", YAMLFile{Wingen: YAMLConfig{
		Render: YAMLRender{Title: ptr("run {{batch}} / {{index}}")},
	}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Render.Title != "run {{batch}} / {{index}}" {
		t.Fatalf("expected title override, got=%q", cfg.Render.Title)
	}

	_, err = MapConfig("wingen.yaml", YAMLFile{Wingen: YAMLConfig{
		Render: YAMLRender{Title: ptr("design {{name}}")},
	}})
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got: %v", err)
	}
}
