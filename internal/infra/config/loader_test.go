package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aalvaropc/wingen/internal/domain"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestLoader_LoadConfig(t *testing.T) {
	tmp := t.TempDir()
	writeConfig(t, tmp, `wingen:
  batch:
    count: 3
    seed: 12
  render:
    formats: [svg, png]
  ranges:
    wing_span: { min: 1, max: 2 }
    washout_angle: { min: -5, max: 5, unit: deg }
`)

	cfg, err := NewLoader().LoadConfig(tmp)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.Batch.Count != 3 || cfg.Batch.Seed != 12 {
		t.Fatalf("unexpected batch: %+v", cfg.Batch)
	}
	if len(cfg.Render.Formats) != 2 {
		t.Fatalf("expected 2 formats, got=%v", cfg.Render.Formats)
	}
	if cfg.Sampler.WingSpan != (domain.Range{Min: 1, Max: 2}) {
		t.Fatalf("unexpected wing span: %+v", cfg.Sampler.WingSpan)
	}
	if cfg.Sampler.WashoutAngle.Min >= 0 {
		t.Fatalf("expected negative washout min, got=%v", cfg.Sampler.WashoutAngle.Min)
	}
}

func TestLoader_PartialConfigAppliesDefaults(t *testing.T) {
	tmp := t.TempDir()
	writeConfig(t, tmp, "wingen:\n  batch:\n    workers: 2\n")

	cfg, err := NewLoader().LoadConfig(tmp)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.Batch.Workers != 2 {
		t.Fatalf("expected workers=2, got=%d", cfg.Batch.Workers)
	}
	if cfg.Batch.Count != 50 {
		t.Fatalf("expected default count=50, got=%d", cfg.Batch.Count)
	}
	if cfg.Paths.DesignsDir != "designs" {
		t.Fatalf("expected designs dir=designs, got=%s", cfg.Paths.DesignsDir)
	}
}

func TestLoader_MissingFile(t *testing.T) {
	_, err := NewLoader().LoadConfig(t.TempDir())
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got: %v", err)
	}
}

func TestLoader_InvalidYAML(t *testing.T) {
	tmp := t.TempDir()
	writeConfig(t, tmp, "wingen:\n  batch: [\n")

	_, err := NewLoader().LoadConfig(tmp)
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got: %v", err)
	}
}
