package tabs

import (
	"slices"

	tperrors "github.com/odvcencio/tabpanel/pkg/errors"
	"github.com/odvcencio/tabpanel/pkg/logging"
	"github.com/odvcencio/tabpanel/pkg/telemetry"
	"github.com/odvcencio/tabpanel/pkg/ui/runtime"
)

// Container shows one view out of a keyed set. Selections requested by a Bar
// arrive on rx; every change of the current view is announced on tx.
type Container struct {
	views   map[string]runtime.Widget
	order   []string
	current string
	hasCur  bool

	rx *Receiver
	tx *Sender

	bounds   runtime.Rect
	focused  bool
	relayout bool

	logger  *logging.Logger
	metrics *telemetry.Metrics
}

// NewContainer creates an empty container. Either end may be nil.
func NewContainer(rx *Receiver, tx *Sender) *Container {
	return &Container{
		views:    make(map[string]runtime.Widget),
		rx:       rx,
		tx:       tx,
		relayout: true,
		logger:   logging.Discard(),
	}
}

// SetLogger sets the diagnostics logger. nil discards.
func (c *Container) SetLogger(l *logging.Logger) { c.logger = logging.OrDiscard(l) }

// SetMetrics sets the collectors. nil records nothing.
func (c *Container) SetMetrics(m *telemetry.Metrics) { c.metrics = m }

// Add appends a view and makes it current. Adding an existing key replaces
// its view in place.
func (c *Container) Add(key string, view runtime.Widget) {
	c.AddAt(key, view, len(c.order))
}

// AddAt inserts a view at pos, clamped to [0, Len()], and makes it current.
func (c *Container) AddAt(key string, view runtime.Widget, pos int) {
	old, exists := c.views[key]
	if !exists {
		c.order = slices.Insert(c.order, clampIndex(pos, len(c.order)), key)
	}
	c.views[key] = view
	if exists && c.hasCur && c.current == key {
		runtime.Blur(old)
		c.relayout = true
		if c.focused {
			_ = runtime.TakeFocus(view, runtime.DirNone)
		}
		return
	}
	c.switchTo(key)
}

// Remove drops a view. Removing the current view leaves nothing current.
func (c *Container) Remove(key string) error {
	view, ok := c.views[key]
	if !ok {
		return tperrors.UnknownKey(key)
	}
	if c.hasCur && c.current == key {
		runtime.Blur(view)
		c.current, c.hasCur = "", false
	}
	delete(c.views, key)
	c.order = slices.DeleteFunc(c.order, func(k string) bool { return k == key })
	c.relayout = true
	return nil
}

// Swap exchanges two keys in the display order. If either is current the
// current key is announced again so listeners re-sync.
func (c *Container) Swap(a, b string) {
	i, j := slices.Index(c.order, a), slices.Index(c.order, b)
	if i < 0 || j < 0 {
		return
	}
	c.order[i], c.order[j] = c.order[j], c.order[i]
	if c.hasCur && (c.current == a || c.current == b) {
		c.tx.Send(c.current)
	}
}

// Next makes the following view current, wrapping at the end.
func (c *Container) Next() { c.step(1) }

// Prev makes the preceding view current, wrapping at the start.
func (c *Container) Prev() { c.step(-1) }

func (c *Container) step(delta int) {
	n := len(c.order)
	if n == 0 {
		return
	}
	i := 0
	if c.hasCur {
		i = slices.Index(c.order, c.current)
		i = ((i+delta)%n + n) % n
	}
	c.switchTo(c.order[i])
	c.tx.Send(c.order[i])
}

// SetCurrent makes key the visible view and announces it.
func (c *Container) SetCurrent(key string) error {
	if _, ok := c.views[key]; !ok {
		return tperrors.UnknownKey(key)
	}
	c.switchTo(key)
	c.tx.Send(key)
	return nil
}

// switchTo changes the current view, carrying focus over when the
// container holds it.
func (c *Container) switchTo(key string) {
	if c.hasCur && c.current == key {
		return
	}
	if c.focused && c.hasCur {
		runtime.Blur(c.views[c.current])
	}
	c.current, c.hasCur = key, true
	c.relayout = true
	if c.focused {
		if err := runtime.TakeFocus(c.views[key], runtime.DirNone); err != nil {
			c.logger.WithTab(key).Debug("new current view refused focus")
		}
	}
}

// Keys returns the keys in display order.
func (c *Container) Keys() []string { return slices.Clone(c.order) }

// Len returns the number of views.
func (c *Container) Len() int { return len(c.order) }

// View returns the view stored under key.
func (c *Container) View(key string) (runtime.Widget, bool) {
	v, ok := c.views[key]
	return v, ok
}

// Current returns the key of the visible view.
func (c *Container) Current() (string, bool) { return c.current, c.hasCur }

// CurrentView returns the visible view, or nil.
func (c *Container) CurrentView() runtime.Widget {
	if !c.hasCur {
		return nil
	}
	return c.views[c.current]
}

// Measure applies the newest selection request from the bar, then measures
// the current view. With nothing current it asks for a single cell.
func (c *Container) Measure(cons runtime.Constraints) runtime.Size {
	c.syncCurrent()
	view := c.CurrentView()
	if view == nil {
		return cons.Constrain(runtime.Size{Width: 1, Height: 1})
	}
	return view.Measure(cons)
}

func (c *Container) syncCurrent() {
	key, dropped, ok := c.rx.Latest()
	if !ok {
		return
	}
	if dropped > 0 {
		c.logger.SyncCoalesced(queueBarToContainer, dropped, key)
		c.metrics.Dropped(queueBarToContainer, dropped)
	}
	if err := c.SetCurrent(key); err != nil {
		c.logger.SyncUnknownKey(queueBarToContainer, key)
		c.metrics.Unknown(queueBarToContainer)
	}
}

// Layout gives the current view the whole area.
func (c *Container) Layout(bounds runtime.Rect) {
	c.bounds = bounds
	c.relayout = false
	if view := c.CurrentView(); view != nil {
		view.Layout(bounds)
	}
}

// Bounds returns the rect from the last Layout.
func (c *Container) Bounds() runtime.Rect { return c.bounds }

// Render draws the current view.
func (c *Container) Render(ctx runtime.RenderContext) {
	if view := c.CurrentView(); view != nil {
		view.Render(ctx.Sub(c.bounds))
	}
}

// HandleMessage forwards to the current view.
func (c *Container) HandleMessage(msg runtime.Message) runtime.HandleResult {
	view := c.CurrentView()
	if view == nil {
		return runtime.Unhandled()
	}
	return view.HandleMessage(msg)
}

// TakeFocus passes focus to the current view.
func (c *Container) TakeFocus(from runtime.Direction) error {
	view := c.CurrentView()
	if view == nil {
		return tperrors.CannotFocus("no current view")
	}
	if err := runtime.TakeFocus(view, from); err != nil {
		return err
	}
	c.focused = true
	return nil
}

// Blur removes focus from the current view.
func (c *Container) Blur() {
	c.focused = false
	if view := c.CurrentView(); view != nil {
		runtime.Blur(view)
	}
}

// IsFocused reports whether the current view holds focus through the
// container.
func (c *Container) IsFocused() bool { return c.focused }

// NeedsRelayout reports pending selection requests, structural changes or
// a current view that needs layout.
func (c *Container) NeedsRelayout() bool {
	if c.relayout || c.rx.Len() > 0 {
		return true
	}
	if view := c.CurrentView(); view != nil {
		return runtime.NeedsRelayout(view)
	}
	return false
}

// LookupName searches every view, current or not, in display order.
func (c *Container) LookupName(name string, fn func(runtime.Widget)) bool {
	for _, key := range c.order {
		if runtime.LookupName(c.views[key], name, fn) {
			return true
		}
	}
	return false
}

// ImportantArea is the current view's important area.
func (c *Container) ImportantArea() runtime.Rect {
	if view := c.CurrentView(); view != nil {
		return runtime.ImportantArea(view, c.bounds)
	}
	return c.bounds
}
