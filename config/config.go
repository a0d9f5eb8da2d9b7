// Package config loads service configuration from a YAML file and
// applies overrides on top of built-in defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pagelift/pagelift/layout"
	"github.com/pagelift/pagelift/ocr"
	"github.com/pagelift/pagelift/preprocess"
)

// Config is the root service configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	OCR        OCRConfig        `yaml:"ocr"`
	Preprocess PreprocessConfig `yaml:"preprocess"`
	Layout     LayoutConfig     `yaml:"layout"`
}

// ServerConfig configures the HTTP surface.
type ServerConfig struct {
	Addr        string `yaml:"addr"`
	UploadDir   string `yaml:"upload_dir"`
	MaxUploadMB int    `yaml:"max_upload_mb"`
}

// OCRConfig configures text recognition.
type OCRConfig struct {
	Languages string `yaml:"languages"`
	DPI       int    `yaml:"dpi"`
}

// PreprocessConfig configures image preparation.
type PreprocessConfig struct {
	FastMode bool `yaml:"fast_mode"`
}

// LayoutConfig carries the tunable layout thresholds. Zero values mean
// "use the default", so a config file only needs to name what it
// changes.
type LayoutConfig struct {
	WideGapRatio      float64 `yaml:"wide_gap_ratio"`
	HeadingRatio      float64 `yaml:"heading_ratio"`
	HeadingBeforeList bool    `yaml:"heading_before_list"`
	FontName          string  `yaml:"font_name"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:        ":8000",
			UploadDir:   os.TempDir(),
			MaxUploadMB: 20,
		},
		OCR: OCRConfig{
			Languages: ocr.DefaultLanguages,
			DPI:       ocr.DefaultDPI,
		},
	}
}

// Load reads the configuration file at path and merges it over the
// defaults. An empty path returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr must not be empty")
	}
	if c.Server.MaxUploadMB <= 0 {
		return fmt.Errorf("server.max_upload_mb must be positive")
	}
	if c.OCR.DPI <= 0 {
		return fmt.Errorf("ocr.dpi must be positive")
	}
	if c.Layout.WideGapRatio < 0 {
		return fmt.Errorf("layout.wide_gap_ratio must not be negative")
	}
	if c.Layout.HeadingRatio < 0 {
		return fmt.Errorf("layout.heading_ratio must not be negative")
	}
	return nil
}

// LayoutEngineConfig resolves the layout overrides against the engine
// defaults.
func (c *Config) LayoutEngineConfig() layout.Config {
	engine := layout.DefaultConfig()
	if c.Layout.WideGapRatio > 0 {
		engine.WideGapRatio = c.Layout.WideGapRatio
	}
	if c.Layout.HeadingRatio > 0 {
		engine.HeadingRatio = c.Layout.HeadingRatio
	}
	if c.Layout.FontName != "" {
		engine.FontName = c.Layout.FontName
	}
	engine.HeadingBeforeList = c.Layout.HeadingBeforeList
	engine.DPI = float64(c.OCR.DPI)
	return engine
}

// PreprocessorConfig resolves the preprocessing overrides against the
// preprocessor defaults.
func (c *Config) PreprocessorConfig() preprocess.Config {
	pc := preprocess.DefaultConfig()
	pc.FastMode = c.Preprocess.FastMode
	return pc
}
