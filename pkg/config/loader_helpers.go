package config

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	tperrors "github.com/odvcencio/tabpanel/pkg/errors"
)

// loadAndMerge loads a YAML file and merges it into the config. A missing
// file is returned unwrapped so callers can skip it.
func loadAndMerge(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var override Config
	if err := yaml.Unmarshal(data, &override); err != nil {
		return tperrors.Wrap(err, tperrors.ErrCodeConfigParse, "parsing YAML")
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return tperrors.Wrap(err, tperrors.ErrCodeConfigParse, "parsing YAML")
	}

	mergeConfigs(cfg, &override, raw)
	return nil
}

// mergeConfigs merges override into base. Fields whose zero value is a
// legitimate setting are only taken when the file names them.
func mergeConfigs(base, override *Config, raw map[string]any) {
	if override == nil {
		return
	}

	if fieldSet(raw, "ui", "placement") {
		base.UI.Placement = override.UI.Placement
	}
	if fieldSet(raw, "ui", "alignment") {
		base.UI.Alignment = override.UI.Alignment
	}
	if fieldSet(raw, "ui", "tabs") {
		base.UI.Tabs = append([]TabConfig{}, override.UI.Tabs...)
	}

	if override.Theme.Accent != "" {
		base.Theme.Accent = override.Theme.Accent
	}
	if override.Theme.Text != "" {
		base.Theme.Text = override.Theme.Text
	}
	if override.Theme.Muted != "" {
		base.Theme.Muted = override.Theme.Muted
	}
	if override.Theme.Border != "" {
		base.Theme.Border = override.Theme.Border
	}

	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}
	if override.Logging.File != "" {
		base.Logging.File = override.Logging.File
	}

	if fieldSet(raw, "metrics", "enabled") {
		base.Metrics.Enabled = override.Metrics.Enabled
	}
	if override.Metrics.Listen != "" {
		base.Metrics.Listen = override.Metrics.Listen
	}
}

// fieldSet reports whether the decoded document contains path.
func fieldSet(raw map[string]any, path ...string) bool {
	if len(path) == 0 || raw == nil {
		return false
	}
	current := any(raw)
	for _, key := range path {
		m, ok := current.(map[string]any)
		if !ok {
			return false
		}
		val, ok := m[key]
		if !ok {
			return false
		}
		current = val
	}
	return true
}

func expandHomeDir(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return ""
	}
	if path == "~" {
		if home, err := os.UserHomeDir(); err == nil && strings.TrimSpace(home) != "" {
			return home
		}
		return path
	}
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil && strings.TrimSpace(home) != "" {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
