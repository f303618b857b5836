package tabs

import (
	"slices"

	"github.com/odvcencio/tabpanel/pkg/logging"
	"github.com/odvcencio/tabpanel/pkg/telemetry"
	"github.com/odvcencio/tabpanel/pkg/ui/backend"
	"github.com/odvcencio/tabpanel/pkg/ui/runtime"
	"github.com/odvcencio/tabpanel/pkg/ui/terminal"
	"github.com/odvcencio/tabpanel/pkg/ui/theme"
)

const none = -1

// barEntry is one tab on the bar. Everything but key and button is derived
// during Measure and Layout.
type barEntry struct {
	key    string
	button runtime.Widget

	size  runtime.Size // includes the connector cell
	conn  [2]int       // connector cell, absolute
	rect  runtime.Rect // connector plus label, absolute
	label runtime.Rect
}

// Bar is a row or column of tab buttons. It tracks a keyboard cursor and the
// active tab independently; the active tab follows keys received on its
// inbound channel, normally sent by a Container.
type Bar struct {
	entries []*barEntry
	cursor  int
	active  int

	placement Placement
	align     Align
	rx        *Receiver

	barSize  runtime.Size
	bounds   runtime.Rect
	endCap   [2]int
	relayout bool
	focused  bool

	logger  *logging.Logger
	metrics *telemetry.Metrics
}

// NewBar creates an empty bar that reads active-tab updates from rx. rx may
// be nil for a bar that is never told about external selection changes.
func NewBar(rx *Receiver) *Bar {
	return &Bar{
		cursor:   none,
		active:   none,
		rx:       rx,
		relayout: true,
		logger:   logging.Discard(),
	}
}

// SetPlacement changes which panel edge the bar is drawn for.
func (b *Bar) SetPlacement(p Placement) {
	if b.placement != p {
		b.placement = p
		b.relayout = true
	}
}

// WithPlacement sets the placement and returns the bar.
func (b *Bar) WithPlacement(p Placement) *Bar {
	b.SetPlacement(p)
	return b
}

// Placement returns the current placement.
func (b *Bar) Placement() Placement { return b.placement }

// SetAlignment changes how buttons are positioned along the bar.
func (b *Bar) SetAlignment(a Align) {
	if b.align != a {
		b.align = a
		b.relayout = true
	}
}

// WithAlignment sets the alignment and returns the bar.
func (b *Bar) WithAlignment(a Align) *Bar {
	b.SetAlignment(a)
	return b
}

// Alignment returns the current alignment.
func (b *Bar) Alignment() Align { return b.align }

// SetLogger sets the diagnostics logger. nil discards.
func (b *Bar) SetLogger(l *logging.Logger) { b.logger = logging.OrDiscard(l) }

// SetMetrics sets the collectors. nil records nothing.
func (b *Bar) SetMetrics(m *telemetry.Metrics) { b.metrics = m }

// Add appends a tab and makes it both the cursor and the active entry.
// Keys are not checked for uniqueness.
func (b *Bar) Add(key string, button runtime.Widget) {
	b.entries = append(b.entries, &barEntry{key: key, button: button})
	b.cursor = len(b.entries) - 1
	b.active = b.cursor
	b.relayout = true
}

// AddAt inserts a tab at pos, clamped to [0, Len()], and makes it both the
// cursor and the active entry.
func (b *Bar) AddAt(key string, button runtime.Widget, pos int) {
	pos = clampIndex(pos, len(b.entries))
	b.entries = slices.Insert(b.entries, pos, &barEntry{key: key, button: button})
	b.cursor = pos
	b.active = pos
	b.relayout = true
}

// Remove drops the first tab with key. Cursor or active pointing at it is
// reset to none; indices after it shift down. Unknown keys are ignored.
func (b *Bar) Remove(key string) {
	idx := b.index(key)
	if idx < 0 {
		return
	}
	b.entries = slices.Delete(b.entries, idx, idx+1)
	b.cursor = shiftAfterRemove(b.cursor, idx)
	b.active = shiftAfterRemove(b.active, idx)
	b.relayout = true
}

// Swap exchanges the positions of two tabs. Cursor and active follow the
// entries they point at. Nothing happens if either key is unknown.
func (b *Bar) Swap(a, c string) {
	i, j := b.index(a), b.index(c)
	if i < 0 || j < 0 || i == j {
		return
	}
	b.entries[i], b.entries[j] = b.entries[j], b.entries[i]
	b.cursor = swapIndex(b.cursor, i, j)
	b.active = swapIndex(b.active, i, j)
	b.relayout = true
}

// Keys returns the tab keys in display order.
func (b *Bar) Keys() []string {
	keys := make([]string, len(b.entries))
	for i, e := range b.entries {
		keys[i] = e.key
	}
	return keys
}

// Len returns the number of tabs.
func (b *Bar) Len() int { return len(b.entries) }

// Cursor returns the keyboard cursor index.
func (b *Bar) Cursor() (int, bool) { return b.cursor, b.cursor != none }

// Active returns the highlighted tab index.
func (b *Bar) Active() (int, bool) { return b.active, b.active != none }

// Button returns the widget drawn for key.
func (b *Bar) Button(key string) (runtime.Widget, bool) {
	if i := b.index(key); i >= 0 {
		return b.entries[i].button, true
	}
	return nil, false
}

func (b *Bar) index(key string) int {
	return slices.IndexFunc(b.entries, func(e *barEntry) bool { return e.key == key })
}

// Measure applies the newest pending active-tab update, measures every
// button and returns the bar's extent plus two cells along its axis for the
// closing cap.
func (b *Bar) Measure(c runtime.Constraints) runtime.Size {
	b.syncActive()

	horizontal := b.placement.IsHorizontal()
	labelC := runtime.Loose(c.MaxWidth, 1)
	var total runtime.Size
	if horizontal {
		total.Height = 1
	} else {
		total.Width = 1
	}
	for _, e := range b.entries {
		lw := e.button.Measure(labelC).Width
		if horizontal {
			e.size = runtime.Size{Width: lw + 1, Height: 1}
			total.Width += e.size.Width
			total.Height = max(total.Height, e.size.Height)
		} else {
			e.size = runtime.Size{Width: lw + 1, Height: 2}
			total.Width = max(total.Width, e.size.Width)
			total.Height += e.size.Height
		}
	}
	b.barSize = total

	req := total
	if horizontal {
		req.Width += 2
	} else {
		req.Height += 2
	}
	return c.Constrain(req)
}

func (b *Bar) syncActive() {
	key, dropped, ok := b.rx.Latest()
	if !ok {
		return
	}
	if dropped > 0 {
		b.logger.SyncCoalesced(queueContainerToBar, dropped, key)
		b.metrics.Dropped(queueContainerToBar, dropped)
	}
	idx := b.index(key)
	if idx < 0 {
		b.logger.SyncUnknownKey(queueContainerToBar, key)
		b.metrics.Unknown(queueContainerToBar)
		return
	}
	if b.active != idx {
		b.active = idx
		b.relayout = true
	}
}

// Layout positions every entry inside bounds using the sizes from the last
// Measure.
func (b *Bar) Layout(bounds runtime.Rect) {
	b.bounds = bounds
	b.relayout = false

	horizontal := b.placement.IsHorizontal()
	var extent, along int
	if horizontal {
		extent, along = bounds.Width, b.barSize.Width
	} else {
		extent, along = bounds.Height, b.barSize.Height
	}
	pos := b.align.GetOffset(along+1, extent)

	lineRow, lineCol := b.lineRow(), b.lineCol()
	for _, e := range b.entries {
		if horizontal {
			x := bounds.X + pos
			e.conn = [2]int{x, lineRow}
			e.rect = runtime.Rect{X: x, Y: lineRow, Width: e.size.Width, Height: 1}
			e.label = runtime.Rect{X: x + 1, Y: lineRow, Width: e.size.Width - 1, Height: 1}
			pos += e.size.Width
		} else {
			y := bounds.Y + pos
			labelX := bounds.X
			if b.placement == VerticalRight {
				labelX = lineCol + 1
			}
			e.conn = [2]int{lineCol, y}
			e.rect = runtime.Rect{X: bounds.X, Y: y, Width: bounds.Width, Height: e.size.Height}
			e.label = runtime.Rect{X: labelX, Y: y + 1, Width: bounds.Width - 1, Height: 1}
			pos += e.size.Height
		}
		e.rect = e.rect.Intersection(bounds)
		e.label = e.label.Intersection(bounds)
		e.button.Layout(e.label)
	}
	if horizontal {
		b.endCap = [2]int{bounds.X + pos, lineRow}
	} else {
		b.endCap = [2]int{lineCol, bounds.Y + pos}
	}
}

// lineRow is the bar row that touches the content.
func (b *Bar) lineRow() int {
	if b.placement == HorizontalTop {
		return b.bounds.Y + b.bounds.Height - 1
	}
	return b.bounds.Y
}

// lineCol is the bar column that touches the content.
func (b *Bar) lineCol() int {
	if b.placement == VerticalLeft {
		return b.bounds.X + b.bounds.Width - 1
	}
	return b.bounds.X
}

// Bounds returns the rect from the last Layout.
func (b *Bar) Bounds() runtime.Rect { return b.bounds }

// Render draws the separator line, connector glyphs and every button.
func (b *Bar) Render(ctx runtime.RenderContext) {
	if b.bounds.Empty() {
		return
	}
	th := ctx.Theme
	if th == nil {
		th = theme.DefaultTheme()
		ctx.Theme = th
	}
	line := th.Border
	if ctx.Focused {
		line = th.BorderFocus
	}

	if b.placement.IsHorizontal() {
		ctx.Buffer.HLine(b.bounds.X, b.lineRow(), b.bounds.Width, theme.Symbols.Horizontal, line)
	} else {
		ctx.Buffer.VLine(b.lineCol(), b.bounds.Y, b.bounds.Height, theme.Symbols.Vertical, line)
	}

	for i, e := range b.entries {
		b.setCell(ctx, e.conn, b.connector(i), line)
		if h, ok := e.button.(highlighter); ok {
			h.setHighlight(i == b.active, i == b.cursor)
		}
		if !e.label.Empty() {
			e.button.Render(ctx.Sub(e.label))
		}
	}
	if len(b.entries) > 0 {
		b.setCell(ctx, b.endCap, b.closer(), line)
	}
}

func (b *Bar) setCell(ctx runtime.RenderContext, at [2]int, r rune, style backend.Style) {
	if !b.bounds.Contains(at[0], at[1]) {
		return
	}
	ctx.Buffer.Set(at[0], at[1], r, style)
}

// connector picks the glyph in front of entry i.
func (b *Bar) connector(i int) rune {
	sym := theme.Symbols
	heavy := b.active == i || (i > 0 && b.active == i-1)
	switch {
	case i == 0 && b.placement.IsHorizontal():
		return pick(heavy, sym.TeeLeftHeavy, sym.TeeLeft)
	case i == 0:
		return pick(heavy, sym.TeeDownHeavy, sym.TeeDown)
	case b.placement.IsHorizontal():
		return pick(heavy, sym.VerticalHeavy, sym.Vertical)
	default:
		return pick(heavy, sym.HorizontalHeavy, sym.Horizontal)
	}
}

// closer is the glyph after the last entry.
func (b *Bar) closer() rune {
	sym := theme.Symbols
	heavy := b.active == len(b.entries)-1
	if b.placement.IsHorizontal() {
		return pick(heavy, sym.TeeRightHeavy, sym.TeeRight)
	}
	return pick(heavy, sym.TeeUpHeavy, sym.TeeUp)
}

func pick(cond bool, a, b rune) rune {
	if cond {
		return a
	}
	return b
}

// HandleMessage moves the cursor with the arrow keys of the bar's axis and
// Home/End, activates the cursor entry on Enter or Space, and activates the
// entry under a left button release.
func (b *Bar) HandleMessage(msg runtime.Message) runtime.HandleResult {
	switch m := msg.(type) {
	case runtime.KeyMsg:
		return b.handleKey(m)
	case runtime.MouseMsg:
		return b.handleMouse(m)
	}
	return runtime.Unhandled()
}

func (b *Bar) handleKey(m runtime.KeyMsg) runtime.HandleResult {
	if len(b.entries) == 0 {
		return runtime.Unhandled()
	}
	prev, next := terminal.KeyLeft, terminal.KeyRight
	if !b.placement.IsHorizontal() {
		prev, next = terminal.KeyUp, terminal.KeyDown
	}
	switch {
	case m.Key == prev:
		return b.moveCursor(-1)
	case m.Key == next:
		return b.moveCursor(1)
	case m.Key == terminal.KeyHome:
		b.cursor = 0
		return runtime.Handled()
	case m.Key == terminal.KeyEnd:
		b.cursor = len(b.entries) - 1
		return runtime.Handled()
	case m.Key == terminal.KeyEnter, m.Key == terminal.KeyRune && m.Rune == ' ':
		if b.cursor == none {
			return runtime.Unhandled()
		}
		return b.activate(b.cursor)
	}
	return runtime.Unhandled()
}

func (b *Bar) moveCursor(delta int) runtime.HandleResult {
	if b.cursor == none {
		b.cursor = max(b.active, 0)
		return runtime.Handled()
	}
	n := b.cursor + delta
	if n < 0 || n >= len(b.entries) {
		return runtime.Unhandled()
	}
	b.cursor = n
	return runtime.Handled()
}

func (b *Bar) handleMouse(m runtime.MouseMsg) runtime.HandleResult {
	for i, e := range b.entries {
		if !e.rect.Contains(m.X, m.Y) {
			continue
		}
		switch {
		case m.Action == runtime.MouseRelease && m.Button == runtime.MouseLeft:
			b.cursor = i
			return b.activate(i)
		case m.Action == runtime.MousePress:
			return runtime.Handled()
		}
		return runtime.Unhandled()
	}
	return runtime.Unhandled()
}

// activate forwards an ActivateMsg to entry i's button, whose callback
// announces the key to whoever listens.
func (b *Bar) activate(i int) runtime.HandleResult {
	e := b.entries[i]
	b.logger.WithTab(e.key).Debug("tab activated")
	b.metrics.Activated()
	res := e.button.HandleMessage(runtime.ActivateMsg{})
	res.Handled = true
	return res
}

// TakeFocus always accepts. The cursor starts on the active tab when unset.
func (b *Bar) TakeFocus(from runtime.Direction) error {
	b.focused = true
	if b.cursor == none {
		b.cursor = b.active
	}
	return nil
}

// Blur drops focus.
func (b *Bar) Blur() { b.focused = false }

// IsFocused reports whether the bar holds focus.
func (b *Bar) IsFocused() bool { return b.focused }

// NeedsRelayout reports pending structural changes or sync messages.
func (b *Bar) NeedsRelayout() bool {
	return b.relayout || b.rx.Len() > 0
}

// LookupName searches the buttons.
func (b *Bar) LookupName(name string, fn func(runtime.Widget)) bool {
	for _, e := range b.entries {
		if runtime.LookupName(e.button, name, fn) {
			return true
		}
	}
	return false
}

// ImportantArea is the active entry, else the cursor entry, else the bar.
func (b *Bar) ImportantArea() runtime.Rect {
	for _, i := range []int{b.active, b.cursor} {
		if i != none && i < len(b.entries) && !b.entries[i].rect.Empty() {
			return b.entries[i].rect
		}
	}
	return b.bounds
}

func clampIndex(pos, n int) int {
	return min(max(pos, 0), n)
}

func shiftAfterRemove(idx, removed int) int {
	switch {
	case idx == none:
		return none
	case idx == removed:
		return none
	case idx > removed:
		return idx - 1
	}
	return idx
}

func swapIndex(idx, i, j int) int {
	switch idx {
	case i:
		return j
	case j:
		return i
	}
	return idx
}
