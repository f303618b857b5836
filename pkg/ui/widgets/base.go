// Package widgets provides the leaf widgets hosted inside tab panels.
package widgets

import (
	"github.com/odvcencio/tabpanel/pkg/ui/runtime"
)

// Base provides common functionality for widgets.
// Embed this in widget structs to get default implementations.
type Base struct {
	bounds   runtime.Rect
	focused  bool
	relayout bool
}

// Layout stores the assigned bounds.
func (b *Base) Layout(bounds runtime.Rect) {
	b.bounds = bounds
	b.relayout = false
}

// Bounds returns the widget's assigned bounds.
func (b *Base) Bounds() runtime.Rect {
	return b.bounds
}

// HandleMessage returns Unhandled by default.
func (b *Base) HandleMessage(msg runtime.Message) runtime.HandleResult {
	return runtime.Unhandled()
}

// CanFocus returns false by default.
func (b *Base) CanFocus() bool {
	return false
}

func (b *Base) Focus()          { b.focused = true }
func (b *Base) Blur()           { b.focused = false }
func (b *Base) IsFocused() bool { return b.focused }

// Invalidate marks the widget as needing a layout pass.
func (b *Base) Invalidate() {
	b.relayout = true
}

// NeedsRelayout reports whether content changed since the last Layout.
func (b *Base) NeedsRelayout() bool {
	return b.relayout
}

// ImportantArea is the whole widget.
func (b *Base) ImportantArea() runtime.Rect {
	return b.bounds
}

// FocusableBase extends Base for focusable widgets.
type FocusableBase struct {
	Base
}

// CanFocus returns true for focusable widgets.
func (f *FocusableBase) CanFocus() bool {
	return true
}
