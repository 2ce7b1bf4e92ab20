package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config is the TOML page-setup file read by the render and dump commands.
type Config struct {
	PageWidth    int     `toml:"page-width"`
	PageHeight   int     `toml:"page-height"`
	MarginTop    int     `toml:"margin-top"`
	MarginBottom int     `toml:"margin-bottom"`
	MarginLeft   int     `toml:"margin-left"`
	MarginRight  int     `toml:"margin-right"`

	TextAlign    string  `toml:"text-align"`
	MaxInterChar string  `toml:"max-inter-char"`
	MaxInterWord string  `toml:"max-inter-word"`

	FontPath string  `toml:"font-path"`
	FontSize float64 `toml:"font-size"`

	// Footer is a JavaScript dynamic function, e.g.
	// "function(page, pages) { return page + ' / ' + pages; }".
	// When set, each page gets a footer line rendered from it.
	Footer string `toml:"footer"`

	DebugLineBoxes bool `toml:"debug-line-boxes"`
}

// DefaultConfig returns an A5-ish page at 96dpi with generous margins.
func DefaultConfig() Config {
	return Config{
		PageWidth:    560,
		PageHeight:   794,
		MarginTop:    48,
		MarginBottom: 48,
		MarginLeft:   48,
		MarginRight:  48,
		TextAlign:    "justify",
		FontSize:     14,
	}
}

// LoadConfig reads a TOML config, layering it over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if cfg.PageWidth <= 0 || cfg.PageHeight <= 0 {
		return cfg, fmt.Errorf("config %s: page dimensions must be positive", path)
	}
	return cfg, nil
}
