package tabs

import (
	"github.com/odvcencio/tabpanel/pkg/logging"
	"github.com/odvcencio/tabpanel/pkg/telemetry"
	"github.com/odvcencio/tabpanel/pkg/ui/runtime"
	"github.com/odvcencio/tabpanel/pkg/ui/terminal"
	"github.com/odvcencio/tabpanel/pkg/ui/theme"
)

//go:generate mockgen -package=tabs -destination=mock_view_test.go github.com/odvcencio/tabpanel/pkg/tabs View

// View is a tab body that decides for itself whether it accepts focus.
// Any runtime.Widget can be hosted; View is the shape Panel tests script.
type View interface {
	runtime.Widget
	runtime.FocusTaker
}

// Region names used in logs and metrics.
const (
	regionBar     = "bar"
	regionContent = "content"
)

// Panel joins a Bar and a Container inside a frame and decides which of the
// two receives keyboard input. Exactly one region holds focus at a time;
// the bar starts with it.
type Panel struct {
	bar       *Bar
	container *Container
	toContent *Sender

	barFocused bool
	placement  Placement
	align      Align

	barSize     runtime.Size
	contentSize runtime.Size
	bounds      runtime.Rect
	barRect     runtime.Rect
	contentRect runtime.Rect
	relayout    bool

	theme   *theme.Theme
	logger  *logging.Logger
	metrics *telemetry.Metrics
}

// NewPanel creates an empty panel with the bar on top.
func NewPanel() *Panel {
	toContent, fromBar := NewChannel()
	toBar, fromContent := NewChannel()
	p := &Panel{
		bar:        NewBar(fromContent),
		container:  NewContainer(fromBar, toBar),
		toContent:  toContent,
		barFocused: true,
		relayout:   true,
	}
	p.SetLogger(nil)
	return p
}

// Bar returns the panel's tab bar.
func (p *Panel) Bar() *Bar { return p.bar }

// Container returns the panel's view container.
func (p *Panel) Container() *Container { return p.container }

// SetPlacement moves the bar to another edge.
func (p *Panel) SetPlacement(pl Placement) {
	if p.placement == pl {
		return
	}
	p.placement = pl
	p.bar.SetPlacement(pl)
	p.relayout = true
	p.logger.Debug("placement changed", "placement", pl.String())
}

// WithPlacement sets the placement and returns the panel.
func (p *Panel) WithPlacement(pl Placement) *Panel {
	p.SetPlacement(pl)
	return p
}

// Placement returns the bar's edge.
func (p *Panel) Placement() Placement { return p.placement }

// SetAlignment changes how tabs are positioned along the bar.
func (p *Panel) SetAlignment(a Align) {
	if p.align == a {
		return
	}
	p.align = a
	p.bar.SetAlignment(a)
	p.relayout = true
}

// WithAlignment sets the alignment and returns the panel.
func (p *Panel) WithAlignment(a Align) *Panel {
	p.SetAlignment(a)
	return p
}

// Alignment returns the bar alignment.
func (p *Panel) Alignment() Align { return p.align }

// SetLogger sets the diagnostics logger for the panel and its regions.
func (p *Panel) SetLogger(l *logging.Logger) {
	p.logger = logging.OrDiscard(l)
	p.bar.SetLogger(p.logger.WithRegion(regionBar))
	p.container.SetLogger(p.logger.WithRegion(regionContent))
}

// SetMetrics sets the collectors for the panel and its regions.
func (p *Panel) SetMetrics(m *telemetry.Metrics) {
	p.metrics = m
	p.bar.SetMetrics(m)
	p.container.SetMetrics(m)
	m.SetTabs(p.container.Len())
}

// SetTheme overrides the theme handed down by the screen. nil restores it.
func (p *Panel) SetTheme(th *theme.Theme) { p.theme = th }

// AddTab appends a tab and makes it active. Adding an existing key replaces
// its view and selects it.
func (p *Panel) AddTab(key string, view runtime.Widget) {
	p.AddTabAt(key, view, p.container.Len())
}

// AddTabAt inserts a tab at pos and makes it active.
func (p *Panel) AddTabAt(key string, view runtime.Widget, pos int) {
	if _, exists := p.container.View(key); exists {
		p.container.Add(key, view)
		_ = p.container.SetCurrent(key)
		return
	}
	p.bar.AddAt(key, NewButton(key, func() { p.toContent.Send(key) }), pos)
	p.container.AddAt(key, view, pos)
	p.metrics.SetTabs(p.container.Len())
	p.relayout = true
}

// RemoveTab removes a tab. If its view was showing, focus returns to the
// bar and nothing is shown until another tab is selected.
func (p *Panel) RemoveTab(key string) error {
	cur, hasCur := p.container.Current()
	if err := p.container.Remove(key); err != nil {
		return err
	}
	p.bar.Remove(key)
	if hasCur && cur == key && !p.barFocused {
		p.focusBar(runtime.DirNone, "remove")
	}
	p.metrics.SetTabs(p.container.Len())
	p.relayout = true
	return nil
}

// SwapTabs exchanges two tabs on the bar and in the container.
func (p *Panel) SwapTabs(a, b string) {
	p.bar.Swap(a, b)
	p.container.Swap(a, b)
	p.relayout = true
}

// NextTab selects the following tab, wrapping.
func (p *Panel) NextTab() { p.container.Next() }

// PrevTab selects the preceding tab, wrapping.
func (p *Panel) PrevTab() { p.container.Prev() }

// SetActiveTab selects key.
func (p *Panel) SetActiveTab(key string) error { return p.container.SetCurrent(key) }

// ActiveTab returns the key of the visible tab.
func (p *Panel) ActiveTab() (string, bool) { return p.container.Current() }

// TabOrder returns the tab keys in display order.
func (p *Panel) TabOrder() []string { return p.container.Keys() }

// BarFocused reports whether the bar, rather than the content, owns
// keyboard input.
func (p *Panel) BarFocused() bool { return p.barFocused }

// Measure sizes the content first, so a selection made on the bar this
// frame is echoed back before the bar measures.
func (p *Panel) Measure(c runtime.Constraints) runtime.Size {
	loose := runtime.Loose(c.MaxWidth, c.MaxHeight)
	horizontal := p.placement.IsHorizontal()
	p.contentSize = p.container.Measure(loose.Shrink(2, 2))
	if horizontal {
		p.barSize = p.bar.Measure(loose.Shrink(2, 0))
	} else {
		p.barSize = p.bar.Measure(loose.Shrink(0, 2))
	}

	var s runtime.Size
	if horizontal {
		s.Width = max(p.barSize.Width, p.contentSize.Width) + 2
		s.Height = p.barSize.Height + p.contentSize.Height + 1
	} else {
		s.Width = p.barSize.Width + p.contentSize.Width + 1
		s.Height = max(p.barSize.Height, p.contentSize.Height) + 2
	}
	return c.Constrain(s)
}

// Layout splits bounds between the bar and the content. The bar keeps its
// measured depth; the content takes what is left inside the frame.
func (p *Panel) Layout(bounds runtime.Rect) {
	p.bounds = bounds
	p.relayout = false

	barH := min(p.barSize.Height, max(bounds.Height-1, 0))
	barW := min(p.barSize.Width, max(bounds.Width-1, 0))
	inner := func(r runtime.Rect) runtime.Rect {
		r.Width, r.Height = max(r.Width, 0), max(r.Height, 0)
		return r
	}
	switch p.placement {
	case HorizontalTop:
		p.barRect = inner(runtime.Rect{X: bounds.X + 1, Y: bounds.Y, Width: bounds.Width - 2, Height: barH})
		p.contentRect = inner(runtime.Rect{X: bounds.X + 1, Y: bounds.Y + barH, Width: bounds.Width - 2, Height: bounds.Height - barH - 1})
	case HorizontalBottom:
		p.barRect = inner(runtime.Rect{X: bounds.X + 1, Y: bounds.Y + bounds.Height - barH, Width: bounds.Width - 2, Height: barH})
		p.contentRect = inner(runtime.Rect{X: bounds.X + 1, Y: bounds.Y + 1, Width: bounds.Width - 2, Height: bounds.Height - barH - 1})
	case VerticalLeft:
		p.barRect = inner(runtime.Rect{X: bounds.X, Y: bounds.Y + 1, Width: barW, Height: bounds.Height - 2})
		p.contentRect = inner(runtime.Rect{X: bounds.X + barW, Y: bounds.Y + 1, Width: bounds.Width - barW - 1, Height: bounds.Height - 2})
	case VerticalRight:
		p.barRect = inner(runtime.Rect{X: bounds.X + bounds.Width - barW, Y: bounds.Y + 1, Width: barW, Height: bounds.Height - 2})
		p.contentRect = inner(runtime.Rect{X: bounds.X + 1, Y: bounds.Y + 1, Width: bounds.Width - barW - 1, Height: bounds.Height - 2})
	}
	p.bar.Layout(p.barRect)
	p.container.Layout(p.contentRect)
}

// Bounds returns the rect from the last Layout.
func (p *Panel) Bounds() runtime.Rect { return p.bounds }

// BarBounds returns the bar's region.
func (p *Panel) BarBounds() runtime.Rect { return p.barRect }

// ContentBounds returns the content region.
func (p *Panel) ContentBounds() runtime.Rect { return p.contentRect }

// Render draws the frame, then each region tagged with its focus state.
func (p *Panel) Render(ctx runtime.RenderContext) {
	if p.bounds.Empty() {
		return
	}
	if p.theme != nil {
		ctx.Theme = p.theme
	} else if ctx.Theme == nil {
		ctx.Theme = theme.DefaultTheme()
	}
	p.drawFrame(ctx)
	p.bar.Render(ctx.Sub(p.barRect).WithFocus(ctx.Focused && p.barFocused))
	p.container.Render(ctx.Sub(p.contentRect).WithFocus(ctx.Focused && !p.barFocused))
}

// HandleMessage routes input to the focused region. Presses also move focus
// to the region under the pointer, and arrow keys a region ignores can
// carry focus across the bar edge.
func (p *Panel) HandleMessage(msg runtime.Message) runtime.HandleResult {
	if m, ok := msg.(runtime.MouseMsg); ok && m.IsPress() {
		p.checkFocusGrab(m)
	}

	if p.barFocused {
		res := p.bar.HandleMessage(msg)
		if res.Handled {
			return res
		}
		if k, ok := msg.(runtime.KeyMsg); ok && k.Key == p.awayFromBar() {
			if err := p.container.TakeFocus(p.placement.barSide()); err == nil {
				p.setBarFocused(false, "key")
				return runtime.Handled()
			}
		}
		return res
	}

	res := p.container.HandleMessage(msg)
	if res.Handled {
		return res
	}
	if k, ok := msg.(runtime.KeyMsg); ok && k.Key == p.towardBar() {
		p.focusBar(p.placement.contentSide(), "key")
		return runtime.Handled()
	}
	return res
}

// checkFocusGrab moves focus to the region under a press. A content region
// that refuses focus leaves the bar focused.
func (p *Panel) checkFocusGrab(m runtime.MouseMsg) {
	switch {
	case p.barRect.Contains(m.X, m.Y):
		if !p.barFocused {
			p.focusBar(runtime.DirNone, "pointer")
		}
	case p.contentRect.Contains(m.X, m.Y):
		if p.barFocused {
			if err := p.container.TakeFocus(runtime.DirNone); err == nil {
				p.setBarFocused(false, "pointer")
			}
		}
	}
}

// awayFromBar is the arrow key that leaves the bar for the content.
func (p *Panel) awayFromBar() terminal.Key {
	switch p.placement {
	case HorizontalBottom:
		return terminal.KeyUp
	case VerticalLeft:
		return terminal.KeyRight
	case VerticalRight:
		return terminal.KeyLeft
	default:
		return terminal.KeyDown
	}
}

// towardBar is the arrow key that returns from the content to the bar.
func (p *Panel) towardBar() terminal.Key {
	switch p.placement {
	case HorizontalBottom:
		return terminal.KeyDown
	case VerticalLeft:
		return terminal.KeyLeft
	case VerticalRight:
		return terminal.KeyRight
	default:
		return terminal.KeyUp
	}
}

func (p *Panel) focusBar(from runtime.Direction, cause string) {
	_ = p.bar.TakeFocus(from)
	p.setBarFocused(true, cause)
}

func (p *Panel) setBarFocused(on bool, cause string) {
	if on {
		p.container.Blur()
	} else {
		p.bar.Blur()
	}
	if p.barFocused == on {
		return
	}
	p.barFocused = on
	to := regionContent
	if on {
		to = regionBar
	}
	p.logger.FocusMoved(to, cause)
	p.metrics.FocusMoved(to)
}

// TakeFocus accepts focus arriving from outside. Through the bar edge the
// bar takes it; through the opposite edge the content must accept or the
// panel refuses. From any other side the focused region keeps it, falling
// back to the bar when the content refuses.
func (p *Panel) TakeFocus(from runtime.Direction) error {
	switch from {
	case p.placement.barSide():
		p.focusBar(from, "enter")
		return nil
	case p.placement.contentSide():
		if err := p.container.TakeFocus(from); err != nil {
			return err
		}
		p.setBarFocused(false, "enter")
		return nil
	}
	if !p.barFocused {
		if err := p.container.TakeFocus(from); err == nil {
			return nil
		}
	}
	p.focusBar(from, "enter")
	return nil
}

// Blur removes focus from both regions. The focused region is remembered.
func (p *Panel) Blur() {
	p.bar.Blur()
	p.container.Blur()
}

// NeedsRelayout reports whether the panel or either region changed.
func (p *Panel) NeedsRelayout() bool {
	return p.relayout || p.bar.NeedsRelayout() || p.container.NeedsRelayout()
}

// LookupName searches the bar's buttons, then the views.
func (p *Panel) LookupName(name string, fn func(runtime.Widget)) bool {
	return p.bar.LookupName(name, fn) || p.container.LookupName(name, fn)
}

// ImportantArea is the focused region's important area.
func (p *Panel) ImportantArea() runtime.Rect {
	if p.barFocused {
		return p.bar.ImportantArea()
	}
	return p.container.ImportantArea()
}
