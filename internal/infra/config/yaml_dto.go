package config

type YAMLFile struct {
	Wingen YAMLConfig `yaml:"wingen"`
}

type YAMLConfig struct {
	Batch  YAMLBatch            `yaml:"batch"`
	Render YAMLRender           `yaml:"render"`
	Paths  YAMLPaths            `yaml:"paths"`
	Ranges map[string]YAMLRange `yaml:"ranges"`
}

type YAMLBatch struct {
	Count   *int    `yaml:"count"`
	Seed    *uint64 `yaml:"seed"`
	Workers *int    `yaml:"workers"`
}

type YAMLRender struct {
	Width   *int     `yaml:"width"`
	Height  *int     `yaml:"height"`
	Scale   *float64 `yaml:"scale"`
	Formats []string `yaml:"formats"`
	Fit     *bool    `yaml:"fit"`
	Title   *string  `yaml:"title"`
}

type YAMLPaths struct {
	DesignsDir string `yaml:"designs_dir"`
}

// YAMLRange overrides one sampler range. Missing bounds keep their defaults.
// Angle ranges accept unit "deg"; everything else is taken as-is.
type YAMLRange struct {
	Min  *float64 `yaml:"min"`
	Max  *float64 `yaml:"max"`
	Unit string   `yaml:"unit"`
}
