package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// EditorOptions are behavioral knobs for the editing core.
type EditorOptions struct {
	TabWidth      int `toml:"tab-width"`
	QuitTimes     int `toml:"quit-times"`
	StatusTimeout int `toml:"status-timeout"`
}

// Theme holds the SGR color codes used by the renderer.
type Theme struct {
	Number int `toml:"number"`
	Match  int `toml:"match"`
}

type Config struct {
	Editor EditorOptions `toml:"editor"`
	Theme  Theme         `toml:"theme"`
}

func Default() Config {
	return Config{
		Editor: EditorOptions{
			TabWidth:      8,
			QuitTimes:     3,
			StatusTimeout: 5,
		},
		Theme: Theme{
			Number: 31,
			Match:  34,
		},
	}
}

// Load reads config.toml from the config directory, decoding it over
// the defaults. A missing file is not an error.
func Load() (Config, error) {
	cfg := Default()

	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), err
	}

	cfg.sanitize()
	return cfg, nil
}

// sanitize replaces out-of-range values with their defaults. The
// coordinate model requires tab-width >= 1.
func (c *Config) sanitize() {
	def := Default()
	if c.Editor.TabWidth < 1 {
		c.Editor.TabWidth = def.Editor.TabWidth
	}
	if c.Editor.QuitTimes < 0 {
		c.Editor.QuitTimes = def.Editor.QuitTimes
	}
	if c.Editor.StatusTimeout < 1 {
		c.Editor.StatusTimeout = def.Editor.StatusTimeout
	}
	if c.Theme.Number < 0 || c.Theme.Number > 255 {
		c.Theme.Number = def.Theme.Number
	}
	if c.Theme.Match < 0 || c.Theme.Match > 255 {
		c.Theme.Match = def.Theme.Match
	}
}

// ConfigDir returns the directory holding kilo's config file.
func ConfigDir() (string, error) {
	if v := os.Getenv("KILO_CONFIG_HOME"); v != "" {
		return v, nil
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "kilo"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "kilo"), nil
}

// ConfigPath returns the full path of config.toml.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}
