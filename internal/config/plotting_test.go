package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/skywatch-data/debris.report/internal/catalog"
)

func TestDefaultPlotConfig(t *testing.T) {
	cfg := DefaultPlotConfig()

	if cfg.GetTitle() != "Space Debris Altitude Distribution" {
		t.Errorf("GetTitle() = %q", cfg.GetTitle())
	}
	if cfg.GetDPI() != 300 {
		t.Errorf("GetDPI() = %d, want 300", cfg.GetDPI())
	}
	if cfg.GetBinCount() != 60 {
		t.Errorf("GetBinCount() = %d, want 60", cfg.GetBinCount())
	}
	if cfg.GetBinMinKm() != 200 || cfg.GetBinMaxKm() != 40000 {
		t.Errorf("bin range = [%f, %f], want [200, 40000]", cfg.GetBinMinKm(), cfg.GetBinMaxKm())
	}
	if !cfg.GetShowLEOBand() || !cfg.GetShowISSLine() {
		t.Errorf("reference overlays should default on")
	}
	if cfg.GetColor(string(catalog.Spacecraft)) != "#2E86AB" {
		t.Errorf("GetColor(Spacecraft) = %q, want #2E86AB", cfg.GetColor(string(catalog.Spacecraft)))
	}
	if cfg.GetColor("No Such Category") != "#808080" {
		t.Errorf("unknown category should fall back to grey")
	}
}

func TestLoadPlotConfigPartial(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "style.json")
	content := `{"title": "Catalog Snapshot", "dpi": 150, "colors": {"Spacecraft": "#123456"}, "show_iss_line": false}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPlotConfig(path)
	if err != nil {
		t.Fatalf("LoadPlotConfig returned error: %v", err)
	}

	if cfg.GetTitle() != "Catalog Snapshot" {
		t.Errorf("GetTitle() = %q", cfg.GetTitle())
	}
	if cfg.GetDPI() != 150 {
		t.Errorf("GetDPI() = %d, want 150", cfg.GetDPI())
	}
	if cfg.GetColor("Spacecraft") != "#123456" {
		t.Errorf("GetColor override lost: %q", cfg.GetColor("Spacecraft"))
	}
	if cfg.GetShowISSLine() {
		t.Errorf("show_iss_line override lost")
	}

	// Fields the file omits keep their defaults.
	if cfg.GetBinCount() != 60 {
		t.Errorf("GetBinCount() = %d, want default 60", cfg.GetBinCount())
	}
	if !cfg.GetShowLEOBand() {
		t.Errorf("GetShowLEOBand() should keep its default")
	}
}

func TestLoadPlotConfigErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("wrong extension", func(t *testing.T) {
		path := filepath.Join(dir, "style.yaml")
		if err := os.WriteFile(path, []byte("{}"), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadPlotConfig(path); err == nil {
			t.Error("expected error for non-json extension")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadPlotConfig(filepath.Join(dir, "absent.json")); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		path := filepath.Join(dir, "broken.json")
		if err := os.WriteFile(path, []byte("{nope"), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadPlotConfig(path); err == nil {
			t.Error("expected error for invalid json")
		}
	})
}
