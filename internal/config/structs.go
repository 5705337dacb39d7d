package config

import (
	"fmt"

	"github.com/MeKo-Tech/snapocr/internal/pipeline"
)

// Config represents the complete configuration for the snapocr application.
// It supports loading from configuration files, environment variables, and
// command-line flags.
type Config struct {
	// Global settings
	LogLevel string `mapstructure:"log_level" yaml:"log_level" json:"log_level"`
	Verbose  bool   `mapstructure:"verbose" yaml:"verbose" json:"verbose"`

	// OCR pipeline settings
	Pipeline PipelineConfig `mapstructure:"pipeline" yaml:"pipeline" json:"pipeline"`

	// Output settings
	Output OutputConfig `mapstructure:"output" yaml:"output" json:"output"`
}

// PipelineConfig contains the OCR pipeline settings exposed to callers.
type PipelineConfig struct {
	Language      string  `mapstructure:"language" yaml:"language" json:"language"`
	GPU           bool    `mapstructure:"gpu" yaml:"gpu" json:"gpu"`
	Scale         float64 `mapstructure:"scale" yaml:"scale" json:"scale"`
	MinConfidence float64 `mapstructure:"min_confidence" yaml:"min_confidence" json:"min_confidence"`
	Allowlist     bool    `mapstructure:"allowlist" yaml:"allowlist" json:"allowlist"`

	// Detector/recognizer tuning knobs, tuned for screenshots.
	TextThreshold  float64 `mapstructure:"text_threshold" yaml:"text_threshold" json:"text_threshold"`
	LowText        float64 `mapstructure:"low_text" yaml:"low_text" json:"low_text"`
	LinkThreshold  float64 `mapstructure:"link_threshold" yaml:"link_threshold" json:"link_threshold"`
	ContrastThs    float64 `mapstructure:"contrast_ths" yaml:"contrast_ths" json:"contrast_ths"`
	AdjustContrast float64 `mapstructure:"adjust_contrast" yaml:"adjust_contrast" json:"adjust_contrast"`
}

// OutputConfig contains output destination settings.
type OutputConfig struct {
	Format      string `mapstructure:"format" yaml:"format" json:"format"`
	File        string `mapstructure:"file" yaml:"file" json:"file"`
	TextFile    string `mapstructure:"text_file" yaml:"text_file" json:"text_file"`
	CSVFile     string `mapstructure:"csv_file" yaml:"csv_file" json:"csv_file"`
	OverlayFile string `mapstructure:"overlay_file" yaml:"overlay_file" json:"overlay_file"`
}

// DefaultConfig returns the configuration defaults.
func DefaultConfig() Config {
	opts := pipeline.DefaultConfig()
	return Config{
		LogLevel: "info",
		Verbose:  false,
		Pipeline: PipelineConfig{
			Language:       opts.Engine.Language,
			GPU:            false,
			Scale:          opts.Preprocess.Scale,
			MinConfidence:  opts.MinConfidence,
			Allowlist:      true,
			TextThreshold:  opts.Engine.TextThreshold,
			LowText:        opts.Engine.LowText,
			LinkThreshold:  opts.Engine.LinkThreshold,
			ContrastThs:    opts.Engine.ContrastThs,
			AdjustContrast: opts.Engine.AdjustContrast,
		},
		Output: OutputConfig{
			Format: "text",
		},
	}
}

// Validate checks boundary constraints before the pipeline runs. The
// pipeline itself assumes pre-validated numeric config.
func (c *Config) Validate() error {
	if c.Pipeline.Scale <= 0 {
		return fmt.Errorf("pipeline.scale must be positive, got %g", c.Pipeline.Scale)
	}
	if c.Pipeline.MinConfidence < 0 || c.Pipeline.MinConfidence > 1 {
		return fmt.Errorf("pipeline.min_confidence must be in [0,1], got %g", c.Pipeline.MinConfidence)
	}
	if c.Pipeline.Language == "" {
		return fmt.Errorf("pipeline.language must not be empty")
	}
	switch c.Output.Format {
	case "text", "csv":
	default:
		return fmt.Errorf("output.format must be text or csv, got %q", c.Output.Format)
	}
	return nil
}

// PipelineConfig builds the immutable run configuration from the loaded
// settings.
func (c *Config) PipelineConfig() pipeline.Config {
	cfg := pipeline.DefaultConfig().WithScale(c.Pipeline.Scale)
	cfg.MinConfidence = c.Pipeline.MinConfidence
	cfg.Engine.Language = c.Pipeline.Language
	cfg.Engine.GPU = c.Pipeline.GPU
	cfg.Engine.UseAllowlist = c.Pipeline.Allowlist
	cfg.Engine.TextThreshold = c.Pipeline.TextThreshold
	cfg.Engine.LowText = c.Pipeline.LowText
	cfg.Engine.LinkThreshold = c.Pipeline.LinkThreshold
	cfg.Engine.ContrastThs = c.Pipeline.ContrastThs
	cfg.Engine.AdjustContrast = c.Pipeline.AdjustContrast
	return cfg
}
