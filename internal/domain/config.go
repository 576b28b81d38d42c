package domain

import "strconv"

// Config represents the wingen configuration loaded from wingen.yaml.
type Config struct {
	Batch   BatchConfig
	Render  RenderConfig
	Paths   PathsConfig
	Sampler SamplerConfig
}

type BatchConfig struct {
	Count int `validate:"gte=0"`
	// Seed 0 means "pick one from entropy"; the chosen seed is recorded per batch.
	Seed    uint64
	Workers int `validate:"gte=1"`
}

type RenderConfig struct {
	Width   int      `validate:"gt=0"`
	Height  int      `validate:"gt=0"`
	Scale   float64  `validate:"gt=0"`
	Formats []string `validate:"min=1,dive,oneof=svg png"`
	Fit     bool
	// Title is a template over TitleVars embedded in each drawing.
	Title string
}

type PathsConfig struct {
	DesignsDir string `validate:"required"`
}

const DefaultTitle = "wingen design {{index}}"

// TitleVars are the placeholders available to RenderConfig.Title.
func TitleVars(index int, seed uint64, batchID string) map[string]string {
	return map[string]string{
		"index": strconv.Itoa(index),
		"seed":  strconv.FormatUint(seed, 10),
		"batch": batchID,
	}
}

// DefaultConfig provides sane defaults if wingen.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Batch: BatchConfig{
			Count:   50,
			Workers: 1,
		},
		Render: RenderConfig{
			Width:   1100,
			Height:  850,
			Scale:   1000,
			Formats: []string{"svg"},
			Fit:     true,
			Title:   DefaultTitle,
		},
		Paths: PathsConfig{
			DesignsDir: "designs",
		},
		Sampler: DefaultSamplerConfig(),
	}
}

// WorkspaceSpec describes where a wingen workspace is created.
type WorkspaceSpec struct {
	Root string
}
