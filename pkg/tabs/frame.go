package tabs

import (
	"github.com/odvcencio/tabpanel/pkg/ui/runtime"
	"github.com/odvcencio/tabpanel/pkg/ui/theme"
)

// drawFrame draws the border around the content region. The side shared
// with the bar is the bar's own separator line, so the corners on that side
// sit on the separator.
func (p *Panel) drawFrame(ctx runtime.RenderContext) {
	b := p.bounds
	buf := ctx.Buffer
	sym := theme.Symbols
	style := ctx.Theme.Border
	if ctx.Focused && !p.barFocused {
		style = ctx.Theme.BorderFocus
	}

	left, right := b.X, b.X+b.Width-1
	top, bottom := b.Y, b.Y+b.Height-1

	switch p.placement {
	case HorizontalTop:
		line := top
		if !p.barRect.Empty() {
			line = p.barRect.Y + p.barRect.Height - 1
		}
		buf.Set(left, line, sym.TopLeft, style)
		buf.Set(right, line, sym.TopRight, style)
		buf.VLine(left, line+1, bottom-line-1, sym.Vertical, style)
		buf.VLine(right, line+1, bottom-line-1, sym.Vertical, style)
		buf.HLine(left+1, bottom, b.Width-2, sym.Horizontal, style)
		buf.Set(left, bottom, sym.BottomLeft, style)
		buf.Set(right, bottom, sym.BottomRight, style)

	case HorizontalBottom:
		line := bottom
		if !p.barRect.Empty() {
			line = p.barRect.Y
		}
		buf.Set(left, top, sym.TopLeft, style)
		buf.HLine(left+1, top, b.Width-2, sym.Horizontal, style)
		buf.Set(right, top, sym.TopRight, style)
		buf.VLine(left, top+1, line-top-1, sym.Vertical, style)
		buf.VLine(right, top+1, line-top-1, sym.Vertical, style)
		buf.Set(left, line, sym.BottomLeft, style)
		buf.Set(right, line, sym.BottomRight, style)

	case VerticalLeft:
		sep := left
		if !p.barRect.Empty() {
			sep = p.barRect.X + p.barRect.Width - 1
		}
		buf.Set(sep, top, sym.TopLeft, style)
		buf.HLine(sep+1, top, right-sep-1, sym.Horizontal, style)
		buf.Set(right, top, sym.TopRight, style)
		buf.VLine(right, top+1, b.Height-2, sym.Vertical, style)
		buf.Set(sep, bottom, sym.BottomLeft, style)
		buf.HLine(sep+1, bottom, right-sep-1, sym.Horizontal, style)
		buf.Set(right, bottom, sym.BottomRight, style)

	case VerticalRight:
		sep := right
		if !p.barRect.Empty() {
			sep = p.barRect.X
		}
		buf.Set(left, top, sym.TopLeft, style)
		buf.HLine(left+1, top, sep-left-1, sym.Horizontal, style)
		buf.Set(sep, top, sym.TopRight, style)
		buf.VLine(left, top+1, b.Height-2, sym.Vertical, style)
		buf.Set(left, bottom, sym.BottomLeft, style)
		buf.HLine(left+1, bottom, sep-left-1, sym.Horizontal, style)
		buf.Set(sep, bottom, sym.BottomRight, style)
	}
}
