// Package config loads tabpanel settings from YAML files and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	tperrors "github.com/odvcencio/tabpanel/pkg/errors"
	"github.com/odvcencio/tabpanel/pkg/logging"
	"github.com/odvcencio/tabpanel/pkg/tabs"
	"github.com/odvcencio/tabpanel/pkg/ui/theme"
)

const (
	// ProjectConfigFile is read from the working directory after the user file.
	ProjectConfigFile = ".tabpanel.yaml"

	DefaultLogLevel      = "info"
	DefaultMetricsListen = "127.0.0.1:9464"
)

// Config is the full demo configuration.
type Config struct {
	UI      UIConfig      `yaml:"ui"`
	Theme   ThemeConfig   `yaml:"theme"`
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// UIConfig describes the panel and its initial tabs.
type UIConfig struct {
	Placement tabs.Placement `yaml:"placement"`
	Alignment tabs.Align     `yaml:"alignment"`
	Tabs      []TabConfig    `yaml:"tabs"`
}

// TabConfig is one tab created at startup.
type TabConfig struct {
	Key       string `yaml:"key"`
	Text      string `yaml:"text"`
	Focusable bool   `yaml:"focusable"`
}

// ThemeConfig overrides palette colors. Empty fields keep the default;
// values are #rrggbb or a color name.
type ThemeConfig struct {
	Accent string `yaml:"accent"`
	Text   string `yaml:"text"`
	Muted  string `yaml:"muted"`
	Border string `yaml:"border"`
}

// Palette resolves the configured colors.
func (t ThemeConfig) Palette() (theme.Palette, error) {
	return theme.ParsePalette(t.Accent, t.Text, t.Muted, t.Border)
}

// LoggingConfig controls the diagnostics log. The terminal belongs to the
// UI, so logs only go to a file; an empty File discards them.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Listen  string `yaml:"listen"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Placement: tabs.HorizontalTop,
			Alignment: tabs.AlignStart,
			Tabs: []TabConfig{
				{Key: "welcome", Text: "Tabs on any edge of a framed panel.\nClick a tab or move to it and press Enter.", Focusable: true},
				{Key: "keys", Text: "] / [   next / previous tab\nctrl+n  new scratch tab\nctrl+w  close tab\nctrl+p  move the bar\nctrl+a  align the tabs\nq       quit", Focusable: true},
				{Key: "about", Text: "Edit .tabpanel.yaml while this runs;\nplacement and alignment reload live."},
			},
		},
		Logging: LoggingConfig{
			Level: DefaultLogLevel,
		},
		Metrics: MetricsConfig{
			Listen: DefaultMetricsListen,
		},
	}
}

// UserConfigPath returns ~/.config/tabpanel/config.yaml, or "" when no home
// directory is known.
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.Getenv("HOME")
	}
	if home == "" {
		return ""
	}
	return filepath.Join(home, ".config", "tabpanel", "config.yaml")
}

// Load reads the user file, then the project file, over the defaults and
// applies environment overrides. Missing files are skipped.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	if userPath := UserConfigPath(); userPath != "" {
		if err := loadAndMerge(cfg, userPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, loadError(err, "loading user config", userPath)
		}
	}

	projectPath := filepath.Join(".", ProjectConfigFile)
	if err := loadAndMerge(cfg, projectPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, loadError(err, "loading project config", projectPath)
	}

	return finish(cfg)
}

// LoadFromPath reads a single file over the defaults and applies
// environment overrides. The file must exist.
func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := loadAndMerge(cfg, expandHomeDir(path)); err != nil {
		return nil, loadError(err, "loading config", path)
	}
	return finish(cfg)
}

// loadError keeps the code of errors that already carry one, such as
// CONFIG_PARSE, and reports the rest as CONFIG_LOAD.
func loadError(err error, msg, path string) error {
	var te *tperrors.Error
	if errors.As(err, &te) {
		return te.WithContext("path", path)
	}
	return tperrors.Wrap(err, tperrors.ErrCodeConfigLoad, msg).WithContext("path", path)
}

func finish(cfg *Config) (*Config, error) {
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides applies TABPANEL_* variables.
func applyEnvOverrides(cfg *Config) error {
	if v := strings.TrimSpace(os.Getenv("TABPANEL_PLACEMENT")); v != "" {
		p, err := tabs.ParsePlacement(v)
		if err != nil {
			return tperrors.Wrap(err, tperrors.ErrCodeConfigInvalid, "TABPANEL_PLACEMENT")
		}
		cfg.UI.Placement = p
	}
	if v := strings.TrimSpace(os.Getenv("TABPANEL_ALIGNMENT")); v != "" {
		a, err := tabs.ParseAlign(v)
		if err != nil {
			return tperrors.Wrap(err, tperrors.ErrCodeConfigInvalid, "TABPANEL_ALIGNMENT")
		}
		cfg.UI.Alignment = a
	}
	if v := os.Getenv("TABPANEL_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("TABPANEL_LOG_FILE"); v != "" {
		cfg.Logging.File = v
	}
	if v := strings.TrimSpace(os.Getenv("TABPANEL_METRICS_LISTEN")); v != "" {
		cfg.Metrics.Listen = v
		cfg.Metrics.Enabled = true
	}
	cfg.Logging.File = expandHomeDir(cfg.Logging.File)
	return nil
}

// Validate checks configuration validity.
func (c *Config) Validate() error {
	if _, err := c.UI.Placement.MarshalText(); err != nil {
		return invalid(err.Error(), "ui.placement")
	}
	if _, err := c.UI.Alignment.MarshalText(); err != nil {
		return invalid(err.Error(), "ui.alignment")
	}

	seen := make(map[string]bool, len(c.UI.Tabs))
	for i, tab := range c.UI.Tabs {
		key := strings.TrimSpace(tab.Key)
		if key == "" {
			return invalid(fmt.Sprintf("tab %d has an empty key", i), "ui.tabs")
		}
		if seen[key] {
			return invalid(fmt.Sprintf("duplicate tab key %q", key), "ui.tabs")
		}
		seen[key] = true
	}

	if _, err := c.Theme.Palette(); err != nil {
		return invalid(err.Error(), "theme")
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return invalid(err.Error(), "logging.level")
	}
	if c.Metrics.Enabled && strings.TrimSpace(c.Metrics.Listen) == "" {
		return invalid("metrics enabled without a listen address", "metrics.listen")
	}
	return nil
}

func invalid(msg, field string) error {
	return tperrors.New(tperrors.ErrCodeConfigInvalid, msg).WithContext("field", field)
}
