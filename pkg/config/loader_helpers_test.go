package config

import (
	"testing"

	"github.com/odvcencio/tabpanel/pkg/tabs"
)

func TestMergeConfigsKeepsUnnamedFields(t *testing.T) {
	base := DefaultConfig()
	base.UI.Placement = tabs.VerticalRight
	base.Metrics.Enabled = true

	override := &Config{}
	raw := map[string]any{"logging": map[string]any{"level": "debug"}}
	override.Logging.Level = "debug"

	mergeConfigs(base, override, raw)

	if base.UI.Placement != tabs.VerticalRight {
		t.Fatalf("placement should survive an override that does not name it, got %v", base.UI.Placement)
	}
	if !base.Metrics.Enabled {
		t.Fatal("metrics.enabled should survive an override that does not name it")
	}
	if base.Logging.Level != "debug" {
		t.Fatalf("log level = %q", base.Logging.Level)
	}
}

func TestMergeConfigsHonorsExplicitZeroValues(t *testing.T) {
	base := DefaultConfig()
	base.UI.Placement = tabs.VerticalLeft
	base.UI.Alignment = tabs.AlignEnd
	base.Metrics.Enabled = true

	override := &Config{}
	raw := map[string]any{
		"ui":      map[string]any{"placement": "top", "alignment": "start", "tabs": []any{}},
		"metrics": map[string]any{"enabled": false},
	}
	mergeConfigs(base, override, raw)

	if base.UI.Placement != tabs.HorizontalTop || base.UI.Alignment != tabs.AlignStart {
		t.Fatalf("explicit top/start should override, got %v %v", base.UI.Placement, base.UI.Alignment)
	}
	if len(base.UI.Tabs) != 0 {
		t.Fatalf("explicit empty tab list should clear the defaults, got %d", len(base.UI.Tabs))
	}
	if base.Metrics.Enabled {
		t.Fatal("explicit false should disable metrics")
	}
}

func TestMergeConfigsCopiesTabs(t *testing.T) {
	base := DefaultConfig()
	override := &Config{UI: UIConfig{Tabs: []TabConfig{{Key: "x"}}}}
	mergeConfigs(base, override, map[string]any{"ui": map[string]any{"tabs": nil}})

	override.UI.Tabs[0].Key = "mutated"
	if base.UI.Tabs[0].Key != "x" {
		t.Fatal("merged tabs must not alias the override slice")
	}
}

func TestFieldSet(t *testing.T) {
	raw := map[string]any{"ui": map[string]any{"placement": "left"}, "flat": 1}
	if !fieldSet(raw, "ui", "placement") {
		t.Error("ui.placement should be set")
	}
	if fieldSet(raw, "ui", "alignment") {
		t.Error("ui.alignment should not be set")
	}
	if fieldSet(raw, "flat", "deeper") {
		t.Error("scalar has no children")
	}
	if fieldSet(nil, "ui") || fieldSet(raw) {
		t.Error("empty inputs report false")
	}
}

func TestExpandHomeDir(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	if got := expandHomeDir("~/logs/tab.log"); got != "/home/tester/logs/tab.log" {
		t.Fatalf("expandHomeDir = %q", got)
	}
	if got := expandHomeDir(" /abs/path "); got != "/abs/path" {
		t.Fatalf("expandHomeDir = %q", got)
	}
	if got := expandHomeDir(""); got != "" {
		t.Fatalf("expandHomeDir = %q", got)
	}
}
