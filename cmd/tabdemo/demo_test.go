package main

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odvcencio/tabpanel/pkg/config"
	"github.com/odvcencio/tabpanel/pkg/logging"
	"github.com/odvcencio/tabpanel/pkg/tabs"
	"github.com/odvcencio/tabpanel/pkg/telemetry"
	"github.com/odvcencio/tabpanel/pkg/ui/runtime"
	"github.com/odvcencio/tabpanel/pkg/ui/terminal"
)

func newTestDemo(t *testing.T) (*demo, *telemetry.Metrics, *bytes.Buffer) {
	t.Helper()
	var logs bytes.Buffer
	m := telemetry.NewMetrics(prometheus.NewRegistry())
	d := newDemo(config.DefaultConfig(), nil, logging.New("tabdemo", slog.LevelDebug, &logs), m)
	return d, m, &logs
}

func ctrl(k terminal.Key) runtime.KeyMsg { return runtime.KeyMsg{Key: k} }

func char(r rune) runtime.KeyMsg { return runtime.KeyMsg{Key: terminal.KeyRune, Rune: r} }

func active(d *demo) string {
	k, _ := d.panel.ActiveTab()
	return k
}

func TestDemo_StartsOnFirstConfiguredTab(t *testing.T) {
	d, m, _ := newTestDemo(t)
	assert.Equal(t, "welcome", active(d))
	assert.True(t, d.panel.BarFocused())
	assert.Equal(t, 3.0, testutil.ToFloat64(m.Tabs))
	assert.Contains(t, d.status.Text(), "welcome")
	assert.Contains(t, d.status.Text(), "focus:bar")
}

func TestDemo_NextPrevKeys(t *testing.T) {
	d, _, _ := newTestDemo(t)

	handled, quit := d.handleKey(char(']'))
	require.True(t, handled)
	assert.False(t, quit)
	assert.Equal(t, "keys", active(d))

	d.handleKey(char('['))
	d.handleKey(char('['))
	assert.Equal(t, "about", active(d), "prev wraps")
}

func TestDemo_ScratchTabs(t *testing.T) {
	d, m, logs := newTestDemo(t)

	d.handleKey(ctrl(terminal.KeyCtrlN))
	key := active(d)
	require.True(t, strings.HasPrefix(key, "scratch-"), key)
	assert.Len(t, d.panel.TabOrder(), 4)
	assert.Equal(t, 4.0, testutil.ToFloat64(m.Tabs))
	assert.Contains(t, logs.String(), "scratch tab opened")

	other := d.addScratch()
	assert.NotEqual(t, key, other, "scratch keys are unique")

	d.handleKey(ctrl(terminal.KeyCtrlW))
	assert.NotContains(t, d.panel.TabOrder(), other)
	_, ok := d.panel.ActiveTab()
	assert.False(t, ok, "closing the visible tab leaves nothing selected")

	d.handleKey(ctrl(terminal.KeyCtrlW))
	assert.Contains(t, d.status.Text(), "no tab to close")
}

func TestDemo_LayoutKeysCycle(t *testing.T) {
	d, _, _ := newTestDemo(t)

	d.handleKey(ctrl(terminal.KeyCtrlP))
	assert.Equal(t, tabs.HorizontalTop.Next(), d.panel.Placement())
	d.handleKey(ctrl(terminal.KeyCtrlA))
	assert.Equal(t, tabs.AlignCenter, d.panel.Alignment())
	assert.True(t, d.panel.NeedsRelayout())
}

func TestDemo_QuitKeys(t *testing.T) {
	d, _, _ := newTestDemo(t)
	for _, k := range []runtime.KeyMsg{char('q'), ctrl(terminal.KeyCtrlC)} {
		handled, quit := d.handleKey(k)
		assert.True(t, handled, k.String())
		assert.True(t, quit, k.String())
	}

	handled, _ := d.handleKey(ctrl(terminal.KeyDown))
	assert.False(t, handled, "arrows belong to the panel")
}

func TestDemo_ApplyConfig(t *testing.T) {
	d, _, logs := newTestDemo(t)

	next := config.DefaultConfig()
	next.UI.Placement = tabs.VerticalLeft
	next.UI.Alignment = tabs.AlignEnd
	d.applyConfig(nil, next, nil)

	assert.Equal(t, tabs.VerticalLeft, d.panel.Placement())
	assert.Equal(t, tabs.AlignEnd, d.panel.Alignment())
	assert.Contains(t, d.status.Text(), "config reloaded")
	assert.Contains(t, logs.String(), `"placement":"left"`)

	d.applyConfig(nil, nil, assert.AnError)
	assert.Equal(t, tabs.VerticalLeft, d.panel.Placement(), "a failed reload keeps the layout")
	assert.Contains(t, d.status.Text(), "config reload failed")
}
