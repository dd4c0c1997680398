package scriptlang

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config holds options for parsing and reporting.
type Config struct {
	// Filename names the source in errors and diagnostics (optional).
	Filename string

	// Format is the default output format for Program.Dump callers
	// such as the command line tool (default: FormatSExpr).
	Format Format

	// Color enables styled diagnostics in Diagnose.
	Color bool

	// TabWidth is the number of columns a tab expands to when
	// diagnostics underline a source line (default: 4).
	TabWidth int
}

// applyDefaults fills in default values for unset Config fields.
func (c *Config) applyDefaults() {
	if c.Format == "" {
		c.Format = FormatSExpr
	}
	if c.TabWidth <= 0 {
		c.TabWidth = 4
	}
}

// configFile is the on-disk shape of a Config.
type configFile struct {
	Filename string `toml:"filename" yaml:"filename"`
	Format   string `toml:"format" yaml:"format"`
	Color    bool   `toml:"color" yaml:"color"`
	TabWidth int    `toml:"tab_width" yaml:"tab_width"`
}

// LoadConfig reads a Config from a TOML (.toml) or YAML (.yaml, .yml)
// file. The format is chosen by the file extension. Missing keys keep
// their defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var raw configFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parsing TOML config %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parsing YAML config %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}

	config := &Config{
		Filename: raw.Filename,
		Color:    raw.Color,
		TabWidth: raw.TabWidth,
	}
	if raw.Format != "" {
		f, err := ParseFormat(raw.Format)
		if err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
		config.Format = f
	}
	config.applyDefaults()
	return config, nil
}
