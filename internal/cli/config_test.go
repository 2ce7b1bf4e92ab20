package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.PageWidth != 560 || cfg.PageHeight != 794 {
		t.Errorf("Expected default page 560x794, got %dx%d", cfg.PageWidth, cfg.PageHeight)
	}
	if cfg.TextAlign != "justify" {
		t.Errorf("Expected default justify alignment, got %q", cfg.TextAlign)
	}
}

// TestLoadConfigLayersOverDefaults keeps defaults for everything the file
// leaves unset.
func TestLoadConfigLayersOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "galley.toml")
	data := "page-width = 400\ntext-align = \"center\"\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.PageWidth != 400 {
		t.Errorf("Expected page width 400 from file, got %d", cfg.PageWidth)
	}
	if cfg.TextAlign != "center" {
		t.Errorf("Expected center alignment from file, got %q", cfg.TextAlign)
	}
	if cfg.PageHeight != 794 {
		t.Errorf("Expected default page height kept, got %d", cfg.PageHeight)
	}
}

func TestLoadConfigRejectsBadDimensions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "galley.toml")
	if err := os.WriteFile(path, []byte("page-width = -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("Expected an error for non-positive page dimensions")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig("/nonexistent/galley.toml"); err == nil {
		t.Error("Expected an error for a missing config file")
	}
}
