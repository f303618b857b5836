package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/odvcencio/tabpanel/pkg/config"
	"github.com/odvcencio/tabpanel/pkg/logging"
	"github.com/odvcencio/tabpanel/pkg/tabs"
	"github.com/odvcencio/tabpanel/pkg/telemetry"
	"github.com/odvcencio/tabpanel/pkg/ui/runtime"
	"github.com/odvcencio/tabpanel/pkg/ui/terminal"
	"github.com/odvcencio/tabpanel/pkg/ui/theme"
	"github.com/odvcencio/tabpanel/pkg/ui/widgets"
)

// demo is the widget tree shown by tabdemo: a tab panel above a status line.
type demo struct {
	panel  *tabs.Panel
	status *widgets.Label
	root   *runtime.Flex
	logger *logging.Logger

	notice string
}

func newDemo(cfg *config.Config, th *theme.Theme, logger *logging.Logger, metrics *telemetry.Metrics) *demo {
	logger = logging.OrDiscard(logger)
	panel := tabs.NewPanel().
		WithPlacement(cfg.UI.Placement).
		WithAlignment(cfg.UI.Alignment)
	panel.SetLogger(logger)
	panel.SetMetrics(metrics)
	for _, tc := range cfg.UI.Tabs {
		panel.AddTab(tc.Key, widgets.NewText(tc.Text).WithFocusable(tc.Focusable))
	}
	if len(cfg.UI.Tabs) > 0 {
		_ = panel.SetActiveTab(cfg.UI.Tabs[0].Key)
	}
	_ = panel.TakeFocus(runtime.DirNone)

	if th == nil {
		th = theme.DefaultTheme()
	}
	d := &demo{
		panel:  panel,
		status: widgets.NewLabel("").WithStyle(th.TextMuted),
		logger: logger,
	}
	d.root = runtime.VBox(runtime.Expanded(panel), runtime.Fixed(d.status))
	d.refreshStatus()
	return d
}

// update handles the demo's global keys before the widget tree sees input.
func (d *demo) update(app *runtime.App, msg runtime.Message) bool {
	if k, ok := msg.(runtime.KeyMsg); ok {
		if handled, quit := d.handleKey(k); handled {
			if quit {
				app.Quit()
			}
			d.refreshStatus()
			return true
		}
	}
	dirty := runtime.DefaultUpdate(app, msg)
	d.refreshStatus()
	return dirty
}

// handleKey applies a global binding. quit asks the caller to stop the loop.
func (d *demo) handleKey(k runtime.KeyMsg) (handled, quit bool) {
	switch k.Key {
	case terminal.KeyCtrlC:
		return true, true
	case terminal.KeyCtrlN:
		d.addScratch()
		return true, false
	case terminal.KeyCtrlW:
		d.closeActive()
		return true, false
	case terminal.KeyCtrlP:
		d.panel.SetPlacement(d.panel.Placement().Next())
		d.notice = ""
		return true, false
	case terminal.KeyCtrlA:
		d.panel.SetAlignment(d.panel.Alignment().Next())
		d.notice = ""
		return true, false
	case terminal.KeyRune:
		switch k.Rune {
		case 'q':
			return true, true
		case ']':
			d.panel.NextTab()
			return true, false
		case '[':
			d.panel.PrevTab()
			return true, false
		}
	}
	return false, false
}

// addScratch opens a tab keyed by the tail of a fresh ULID.
func (d *demo) addScratch() string {
	id := ulid.Make()
	key := "scratch-" + strings.ToLower(id.String()[20:])
	created := ulid.Time(id.Time()).Format(time.Kitchen)
	d.panel.AddTab(key, widgets.NewText(fmt.Sprintf("Scratch tab %s\ncreated %s", id, created)).WithFocusable(true))
	d.logger.WithTab(key).Info("scratch tab opened")
	return key
}

func (d *demo) closeActive() {
	key, ok := d.panel.ActiveTab()
	if !ok {
		d.notice = "no tab to close"
		return
	}
	if err := d.panel.RemoveTab(key); err != nil {
		d.logger.Warn("close tab failed", "tab", key, "error", err)
		return
	}
	d.logger.WithTab(key).Info("tab closed")
}

// applyConfig takes placement, alignment and theme from a reloaded file.
// Tabs are not rebuilt so open scratch tabs survive.
func (d *demo) applyConfig(app *runtime.App, cfg *config.Config, err error) {
	if err != nil {
		d.notice = "config reload failed"
		d.logger.Warn("config reload failed", "error", err)
		d.refreshStatus()
		return
	}
	d.panel.SetPlacement(cfg.UI.Placement)
	d.panel.SetAlignment(cfg.UI.Alignment)
	if palette, perr := cfg.Theme.Palette(); perr == nil && app != nil {
		th := theme.New(palette)
		app.SetTheme(th)
		d.status.WithStyle(th.TextMuted)
	}
	d.notice = "config reloaded"
	d.logger.WithPlacement(cfg.UI.Placement).Info("config reloaded", "alignment", cfg.UI.Alignment.String())
	d.refreshStatus()
}

func (d *demo) refreshStatus() {
	active, ok := d.panel.ActiveTab()
	if !ok {
		active = "-"
	}
	focus := "content"
	if d.panel.BarFocused() {
		focus = "bar"
	}
	line := fmt.Sprintf(" %s  %d tabs  %s/%s  focus:%s ",
		active, len(d.panel.TabOrder()), d.panel.Placement(), d.panel.Alignment(), focus)
	if d.notice != "" {
		line += " " + d.notice
	}
	d.status.SetText(line)
}
