package widgets

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/tabpanel/pkg/ui/backend"
	"github.com/odvcencio/tabpanel/pkg/ui/runtime"
)

// Text is a multi-line text view. It refuses focus unless made focusable,
// in which case it draws a marker column while focused.
type Text struct {
	Base
	text      string
	style     backend.Style
	lines     []string
	focusable bool
}

// NewText creates a new text widget.
func NewText(text string) *Text {
	t := &Text{style: backend.DefaultStyle()}
	t.SetText(text)
	return t
}

// SetText updates the displayed text.
func (t *Text) SetText(text string) {
	t.text = text
	t.lines = strings.Split(text, "\n")
	t.Invalidate()
}

// Text returns the current text.
func (t *Text) Text() string {
	return t.text
}

// WithStyle sets the style and returns the widget for chaining.
func (t *Text) WithStyle(style backend.Style) *Text {
	t.style = style
	return t
}

// WithFocusable controls whether the text accepts focus.
func (t *Text) WithFocusable(on bool) *Text {
	t.focusable = on
	if !on {
		t.Blur()
	}
	return t
}

// CanFocus reports whether the text accepts focus.
func (t *Text) CanFocus() bool {
	return t.focusable
}

// Measure returns the display width of the longest line and the line count,
// plus the marker column when focusable.
func (t *Text) Measure(constraints runtime.Constraints) runtime.Size {
	width := 0
	for _, line := range t.lines {
		width = max(width, runewidth.StringWidth(line))
	}
	if t.focusable {
		width += 2
	}
	return constraints.Constrain(runtime.Size{Width: width, Height: max(1, len(t.lines))})
}

// Render draws the text clipped to its bounds.
func (t *Text) Render(ctx runtime.RenderContext) {
	bounds := t.bounds
	if bounds.Empty() {
		return
	}

	style := t.style
	if ctx.Theme != nil && style == backend.DefaultStyle() {
		style = ctx.Theme.Body
	}

	x, width := bounds.X, bounds.Width
	if t.focusable {
		marker := ' '
		if t.focused && ctx.Focused {
			marker = '▌'
		}
		markerStyle := style
		if ctx.Theme != nil {
			markerStyle = ctx.Theme.BorderFocus
		}
		ctx.Buffer.VLine(x, bounds.Y, min(bounds.Height, len(t.lines)), marker, markerStyle)
		x, width = x+2, width-2
	}

	for i, line := range t.lines {
		if i >= bounds.Height || width <= 0 {
			break
		}
		ctx.Buffer.SetStringMax(x, bounds.Y+i, line, style, width)
	}
}

// Label is a single-line text widget used for status lines.
type Label struct {
	Base
	text      string
	style     backend.Style
	alignment Alignment
}

// Alignment specifies text alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// NewLabel creates a new label widget.
func NewLabel(text string) *Label {
	return &Label{text: text, style: backend.DefaultStyle()}
}

// SetText updates the label text.
func (l *Label) SetText(text string) {
	l.text = text
}

// Text returns the label text.
func (l *Label) Text() string {
	return l.text
}

// WithStyle sets the style and returns for chaining.
func (l *Label) WithStyle(style backend.Style) *Label {
	l.style = style
	return l
}

// WithAlignment sets alignment and returns for chaining.
func (l *Label) WithAlignment(align Alignment) *Label {
	l.alignment = align
	return l
}

// Measure returns the size needed for the label.
func (l *Label) Measure(constraints runtime.Constraints) runtime.Size {
	return constraints.Constrain(runtime.Size{Width: runewidth.StringWidth(l.text), Height: 1})
}

// Render draws the label, truncating with an ellipsis when it does not fit.
func (l *Label) Render(ctx runtime.RenderContext) {
	bounds := l.bounds
	if bounds.Empty() {
		return
	}

	text := runewidth.Truncate(l.text, bounds.Width, "…")
	w := runewidth.StringWidth(text)

	x := bounds.X
	switch l.alignment {
	case AlignCenter:
		x = bounds.X + (bounds.Width-w)/2
	case AlignRight:
		x = bounds.X + bounds.Width - w
	}

	ctx.Buffer.SetStringMax(x, bounds.Y, text, l.style, bounds.Width)
}
