package projectconfig

import (
	"os"
	"path/filepath"
	"testing"
)

// writeFile writes a config file into dir.
func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestNewReturnsAllDefaults(t *testing.T) {
	cfg := New()

	if cfg.Title != "fastplong QC Report" {
		t.Errorf("Title = %q", cfg.Title)
	}
	if cfg.Output != "fastplong_multireport.html" {
		t.Errorf("Output = %q", cfg.Output)
	}
	if cfg.Recursive == nil || !*cfg.Recursive {
		t.Error("Recursive should default to true")
	}
	if cfg.ChartWidth != DefaultChartWidth {
		t.Errorf("ChartWidth = %d", cfg.ChartWidth)
	}
	if cfg.ChartHeight != DefaultChartHeight {
		t.Errorf("ChartHeight = %d", cfg.ChartHeight)
	}
	if cfg.MaxCurvePoints != 2000 {
		t.Errorf("MaxCurvePoints = %d", cfg.MaxCurvePoints)
	}
	if cfg.OutlierZ != 2.5 {
		t.Errorf("OutlierZ = %g", cfg.OutlierZ)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Title != DefaultTitle {
		t.Errorf("Title = %q", cfg.Title)
	}
}

func TestLoadMissingDirReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Output != DefaultOutputName {
		t.Errorf("Output = %q", cfg.Output)
	}
}

func TestLoadFullConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".multireport.yaml", `
title: "Run 42 long-read QC"
output: run42.html
recursive: false
chart_width: 900
chart_height: 400
max_curve_points: 500
outlier_z: 3.0
`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Title != "Run 42 long-read QC" {
		t.Errorf("Title = %q", cfg.Title)
	}
	if cfg.Output != "run42.html" {
		t.Errorf("Output = %q", cfg.Output)
	}
	if cfg.Recursive == nil || *cfg.Recursive {
		t.Error("Recursive should be false")
	}
	if cfg.ChartWidth != 900 || cfg.ChartHeight != 400 {
		t.Errorf("chart dims = %dx%d", cfg.ChartWidth, cfg.ChartHeight)
	}
	if cfg.MaxCurvePoints != 500 {
		t.Errorf("MaxCurvePoints = %d", cfg.MaxCurvePoints)
	}
	if cfg.OutlierZ != 3.0 {
		t.Errorf("OutlierZ = %g", cfg.OutlierZ)
	}
}

func TestLoadPartialConfigKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".multireport.yaml", "title: Custom\n")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Title != "Custom" {
		t.Errorf("Title = %q", cfg.Title)
	}
	// Everything else untouched
	if cfg.Output != DefaultOutputName {
		t.Errorf("Output = %q", cfg.Output)
	}
	if cfg.Recursive == nil || !*cfg.Recursive {
		t.Error("Recursive should stay true")
	}
	if cfg.ChartWidth != DefaultChartWidth {
		t.Errorf("ChartWidth = %d", cfg.ChartWidth)
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".multireport.yaml", "title: [unclosed\n")

	if _, err := Load(dir); err == nil {
		t.Error("expected a parse error")
	}
}

func TestLoadRejectsInvalidDimensions(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".multireport.yaml", "chart_width: -10\n")

	if _, err := Load(dir); err == nil {
		t.Error("expected a validation error")
	}
}
