// Package cli — config.go loads the optional user configuration file.
//
// The file lives at $XDG_CONFIG_HOME/gitstatus/config.yml (resolved via the
// xdg package, so the platform-appropriate directory is used). A missing
// file is not an error: defaults apply.
package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// configRelPath is the config file location relative to the XDG config home.
const configRelPath = "gitstatus/config.yml"

// Color modes accepted by the "color" config key.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the user-tunable CLI settings.
type Config struct {
	// Color controls colored marker output: auto, always, or never.
	Color string `yaml:"color"`

	// Markers overrides the single-character marker per status code name
	// (new, modified, deleted, renamed, type-changed, ignored, conflicted).
	Markers map[string]string `yaml:"markers"`
}

// defaultConfig returns the settings used when no config file exists.
func defaultConfig() Config {
	return Config{Color: ColorAuto}
}

// LoadConfig reads the user configuration file, falling back to defaults
// when the file does not exist.
func LoadConfig() (Config, error) {
	path, err := xdg.SearchConfigFile(configRelPath)
	if err != nil {
		// xdg reports a missing file as an error; that just means defaults.
		return defaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return defaultConfig(), nil
		}
		return Config{}, fmt.Errorf("cannot read config %q: %w", path, err)
	}

	return parseConfig(data, path)
}

// parseConfig decodes and validates config file contents.
func parseConfig(data []byte, path string) (Config, error) {
	cfg := defaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("cannot parse config %q: %w", path, err)
	}

	switch cfg.Color {
	case ColorAuto, ColorAlways, ColorNever:
	case "":
		cfg.Color = ColorAuto
	default:
		return Config{}, fmt.Errorf("config %q: invalid color mode %q", path, cfg.Color)
	}

	for name, marker := range cfg.Markers {
		if len([]rune(marker)) != 1 {
			return Config{}, fmt.Errorf("config %q: marker for %q must be a single character", path, name)
		}
	}

	return cfg, nil
}
