// Package projectconfig provides the default report settings and the optional
// .multireport.yaml file that overrides them per results directory.
package projectconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is looked up inside the scanned results directory.
const ConfigFileName = ".multireport.yaml"

// Default values for report generation. New() references them and no
// other code should duplicate them.
const (
	DefaultOutputName = "fastplong_multireport.html"
	DefaultTitle      = "fastplong QC Report"

	DefaultChartWidth  = 720 // vg points
	DefaultChartHeight = 340

	DefaultMaxCurvePoints = 2000
	DefaultOutlierZ       = 2.5
)

// Config is the per-directory report configuration. Command-line flags
// override whatever is loaded here.
type Config struct {
	Title          string  `yaml:"title,omitempty"`
	Output         string  `yaml:"output,omitempty"`
	Recursive      *bool   `yaml:"recursive,omitempty"`
	ChartWidth     int     `yaml:"chart_width,omitempty"`
	ChartHeight    int     `yaml:"chart_height,omitempty"`
	MaxCurvePoints int     `yaml:"max_curve_points,omitempty"`
	OutlierZ       float64 `yaml:"outlier_z,omitempty"`
}

// New returns a Config with all defaults populated.
func New() *Config {
	return &Config{
		Title:          DefaultTitle,
		Output:         DefaultOutputName,
		Recursive:      boolPtr(true),
		ChartWidth:     DefaultChartWidth,
		ChartHeight:    DefaultChartHeight,
		MaxCurvePoints: DefaultMaxCurvePoints,
		OutlierZ:       DefaultOutlierZ,
	}
}

// Load reads .multireport.yaml from dir when present, merged over defaults.
// A missing file (or a missing dir) is not an error; a malformed file is.
func Load(dir string) (*Config, error) {
	cfg := New()

	path := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	// Keys absent from the file keep their default values.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.ChartWidth <= 0 || c.ChartHeight <= 0 {
		return fmt.Errorf("chart dimensions must be positive")
	}
	if c.MaxCurvePoints <= 0 {
		return fmt.Errorf("max_curve_points must be positive")
	}
	return nil
}

func boolPtr(v bool) *bool { return &v }
