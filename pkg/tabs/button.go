package tabs

import (
	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/tabpanel/pkg/ui/runtime"
	"github.com/odvcencio/tabpanel/pkg/ui/theme"
)

// Button is the label drawn for one tab on the bar. Activating it runs the
// callback it was created with.
type Button struct {
	key        string
	label      string
	onActivate func()
	bounds     runtime.Rect

	active bool
	cursor bool
}

// NewButton creates a button labelled " key ".
func NewButton(key string, onActivate func()) *Button {
	return &Button{
		key:        key,
		label:      " " + key + " ",
		onActivate: onActivate,
	}
}

// Key returns the tab key the button stands for.
func (b *Button) Key() string { return b.key }

// Label returns the drawn text.
func (b *Button) Label() string { return b.label }

// Bounds returns the label rect assigned by the last layout.
func (b *Button) Bounds() runtime.Rect { return b.bounds }

// Measure returns the label's display width and a height of one row.
func (b *Button) Measure(c runtime.Constraints) runtime.Size {
	return c.Constrain(runtime.Size{Width: runewidth.StringWidth(b.label), Height: 1})
}

// Layout stores the label rect.
func (b *Button) Layout(bounds runtime.Rect) {
	b.bounds = bounds
}

// Render draws the label. The active tab uses the primary title style; the
// cursor entry is highlighted only while the bar holds focus.
func (b *Button) Render(ctx runtime.RenderContext) {
	if b.bounds.Empty() {
		return
	}
	th := ctx.Theme
	if th == nil {
		th = theme.DefaultTheme()
	}
	style := th.TextSecondary
	if b.active {
		style = th.TextPrimary
	}
	if b.cursor && ctx.Focused {
		style = th.Cursor.Bold(b.active)
	}
	ctx.Buffer.SetStringMax(b.bounds.X, b.bounds.Y, b.label, style, b.bounds.Width)
}

// HandleMessage runs the activation callback on ActivateMsg, or on a left
// button release over the label.
func (b *Button) HandleMessage(msg runtime.Message) runtime.HandleResult {
	switch m := msg.(type) {
	case runtime.ActivateMsg:
		b.activate()
		return runtime.Handled()
	case runtime.MouseMsg:
		if m.Action == runtime.MouseRelease && m.Button == runtime.MouseLeft && b.bounds.Contains(m.X, m.Y) {
			b.activate()
			return runtime.Handled()
		}
	}
	return runtime.Unhandled()
}

func (b *Button) activate() {
	if b.onActivate != nil {
		b.onActivate()
	}
}

// setHighlight is called by the bar before each render.
func (b *Button) setHighlight(active, cursor bool) {
	b.active = active
	b.cursor = cursor
}

// highlighter is implemented by bar entries that style themselves by
// active/cursor state.
type highlighter interface {
	setHighlight(active, cursor bool)
}
