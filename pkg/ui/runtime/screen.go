package runtime

import "github.com/odvcencio/tabpanel/pkg/ui/theme"

// Screen owns the root widget, the render buffer and the theme. Every frame
// measures and lays out the root before drawing, so widgets that reconcile
// deferred state during Measure see one pass per frame.
type Screen struct {
	width, height int
	root          Widget
	buffer        *Buffer
	theme         *theme.Theme
}

// NewScreen creates a new screen with the given dimensions.
func NewScreen(w, h int, th *theme.Theme) *Screen {
	if th == nil {
		th = theme.DefaultTheme()
	}
	return &Screen{
		width:  w,
		height: h,
		buffer: NewBuffer(w, h),
		theme:  th,
	}
}

// Size returns the screen dimensions.
func (s *Screen) Size() (w, h int) {
	return s.width, s.height
}

// Resize changes the screen dimensions.
func (s *Screen) Resize(w, h int) {
	s.width = w
	s.height = h
	s.buffer.Resize(w, h)
}

// Buffer returns the screen's render buffer.
func (s *Screen) Buffer() *Buffer {
	return s.buffer
}

// Theme returns the current theme.
func (s *Screen) Theme() *theme.Theme {
	return s.theme
}

// SetTheme changes the theme.
func (s *Screen) SetTheme(th *theme.Theme) {
	if th != nil {
		s.theme = th
	}
}

// SetRoot sets the root widget.
func (s *Screen) SetRoot(root Widget) {
	s.root = root
}

// Root returns the root widget.
func (s *Screen) Root() Widget {
	return s.root
}

// Layout measures the root against the screen and lays it out to fill it.
func (s *Screen) Layout() {
	if s.root == nil {
		return
	}
	s.root.Measure(Tight(s.width, s.height))
	s.root.Layout(Rect{Width: s.width, Height: s.height})
}

// Render runs a layout pass and draws the root into the buffer.
func (s *Screen) Render() {
	s.Layout()
	s.buffer.Clear()
	if s.root == nil {
		return
	}
	s.root.Render(RenderContext{
		Buffer:  s.buffer,
		Theme:   s.theme,
		Focused: true,
		Bounds:  Rect{Width: s.width, Height: s.height},
	})
}

// HandleMessage dispatches a message to the root.
func (s *Screen) HandleMessage(msg Message) HandleResult {
	if s.root == nil {
		return Unhandled()
	}
	return s.root.HandleMessage(msg)
}

// RenderContext provides context to widgets during rendering.
type RenderContext struct {
	Buffer  *Buffer
	Theme   *theme.Theme
	Focused bool // does the region being drawn hold focus?
	Bounds  Rect
}

// Sub creates a context for a child widget with adjusted bounds.
func (ctx RenderContext) Sub(bounds Rect) RenderContext {
	ctx.Bounds = bounds
	return ctx
}

// WithFocus returns a copy tagged with the given focus state.
func (ctx RenderContext) WithFocus(focused bool) RenderContext {
	ctx.Focused = focused
	return ctx
}
