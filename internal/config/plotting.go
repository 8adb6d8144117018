// Package config loads optional JSON style configuration for chart output.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/skywatch-data/debris.report/internal/catalog"
)

// PlotConfig holds overridable chart styling. All fields are pointers so a
// partial JSON file only overrides what it names; omitted fields keep their
// defaults via the getter methods.
type PlotConfig struct {
	Title    *string  `json:"title,omitempty"`
	DPI      *int     `json:"dpi,omitempty"`
	BinCount *int     `json:"bin_count,omitempty"`
	BinMinKm *float64 `json:"bin_min_km,omitempty"`
	BinMaxKm *float64 `json:"bin_max_km,omitempty"`

	// Colors maps a display category name to a #rrggbb hex value.
	Colors map[string]string `json:"colors,omitempty"`

	ShowLEOBand *bool `json:"show_leo_band,omitempty"`
	ShowISSLine *bool `json:"show_iss_line,omitempty"`
}

// Default chart styling. Category colors follow the publication palette.
var defaultColors = map[string]string{
	string(catalog.Spacecraft):          "#2E86AB",
	string(catalog.RocketBodies):        "#A23B72",
	string(catalog.MissionDebris):       "#F18F01",
	string(catalog.FragmentationDebris): "#C73E1D",
}

// DefaultPlotConfig returns a config where every getter yields its default.
func DefaultPlotConfig() *PlotConfig {
	return &PlotConfig{}
}

// LoadPlotConfig loads a PlotConfig from a JSON file. The file must have a
// .json extension and be under the max file size. Fields omitted from the
// file retain their defaults, so partial configs are safe.
func LoadPlotConfig(path string) (*PlotConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("style config must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat style config: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("style config too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read style config: %w", err)
	}

	cfg := &PlotConfig{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse style config: %w", err)
	}
	return cfg, nil
}

// GetTitle returns the chart title.
func (c *PlotConfig) GetTitle() string {
	if c != nil && c.Title != nil {
		return *c.Title
	}
	return "Space Debris Altitude Distribution"
}

// GetDPI returns the PNG output resolution.
func (c *PlotConfig) GetDPI() int {
	if c != nil && c.DPI != nil && *c.DPI > 0 {
		return *c.DPI
	}
	return 300
}

// GetBinCount returns the number of histogram bins.
func (c *PlotConfig) GetBinCount() int {
	if c != nil && c.BinCount != nil && *c.BinCount > 0 {
		return *c.BinCount
	}
	return 60
}

// GetBinMinKm returns the lower edge of the first bin.
func (c *PlotConfig) GetBinMinKm() float64 {
	if c != nil && c.BinMinKm != nil && *c.BinMinKm > 0 {
		return *c.BinMinKm
	}
	return 200
}

// GetBinMaxKm returns the upper edge of the last bin.
func (c *PlotConfig) GetBinMaxKm() float64 {
	if c != nil && c.BinMaxKm != nil && *c.BinMaxKm > c.GetBinMinKm() {
		return *c.BinMaxKm
	}
	return 40000
}

// GetColor returns the hex color for a display category.
func (c *PlotConfig) GetColor(category string) string {
	if c != nil {
		if hex, ok := c.Colors[category]; ok {
			return hex
		}
	}
	if hex, ok := defaultColors[category]; ok {
		return hex
	}
	return "#808080"
}

// GetShowLEOBand reports whether the shaded LEO region is drawn.
func (c *PlotConfig) GetShowLEOBand() bool {
	if c != nil && c.ShowLEOBand != nil {
		return *c.ShowLEOBand
	}
	return true
}

// GetShowISSLine reports whether the ISS reference line is drawn.
func (c *PlotConfig) GetShowISSLine() bool {
	if c != nil && c.ShowISSLine != nil {
		return *c.ShowISSLine
	}
	return true
}
