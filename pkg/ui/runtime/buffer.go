package runtime

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/tabpanel/pkg/ui/backend"
)

// Cell represents a single character cell in the buffer. A zero Rune marks
// the trailing half of a wide character.
type Cell struct {
	Rune  rune
	Style backend.Style
}

// Buffer is a 2D grid of cells widgets render into. The App flushes changed
// cells to the backend after each frame.
type Buffer struct {
	cells  []Cell
	width  int
	height int

	dirty      []bool
	dirtyCount int
}

// NewBuffer creates a buffer with the given dimensions, filled with blanks.
func NewBuffer(w, h int) *Buffer {
	b := &Buffer{
		cells:  make([]Cell, w*h),
		dirty:  make([]bool, w*h),
		width:  w,
		height: h,
	}
	blank := Cell{Rune: ' ', Style: backend.DefaultStyle()}
	for i := range b.cells {
		b.cells[i] = blank
	}
	return b
}

// Size returns the buffer dimensions.
func (b *Buffer) Size() (w, h int) {
	return b.width, b.height
}

// Bounds returns the whole buffer as a rect.
func (b *Buffer) Bounds() Rect {
	return Rect{Width: b.width, Height: b.height}
}

// Resize changes the dimensions, preserving overlapping content.
func (b *Buffer) Resize(w, h int) {
	if w == b.width && h == b.height {
		return
	}
	next := NewBuffer(w, h)
	for y := 0; y < min(h, b.height); y++ {
		copy(next.cells[y*w:y*w+min(w, b.width)], b.cells[y*b.width:])
	}
	*b = *next
	b.MarkAllDirty()
}

// Clear fills the buffer with blanks in the default style.
func (b *Buffer) Clear() {
	b.Fill(b.Bounds(), ' ', backend.DefaultStyle())
}

// Get returns the cell at (x, y), or a blank when out of bounds.
func (b *Buffer) Get(x, y int) Cell {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Cell{Rune: ' ', Style: backend.DefaultStyle()}
	}
	return b.cells[y*b.width+x]
}

// Set writes a rune at (x, y). Out-of-bounds writes are dropped.
func (b *Buffer) Set(x, y int, r rune, s backend.Style) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	idx := y*b.width + x
	cell := Cell{Rune: r, Style: s}
	if b.cells[idx] != cell {
		b.cells[idx] = cell
		b.markDirty(idx)
	}
}

// SetString writes s starting at (x, y), advancing by display width, and
// returns the number of columns consumed.
func (b *Buffer) SetString(x, y int, s string, style backend.Style) int {
	return b.SetStringMax(x, y, s, style, maxInt)
}

// SetStringMax is SetString limited to maxWidth columns. A wide rune that
// would straddle the limit is not drawn.
func (b *Buffer) SetStringMax(x, y int, s string, style backend.Style, maxWidth int) int {
	used := 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if used+w > maxWidth {
			break
		}
		b.Set(x+used, y, r, style)
		for i := 1; i < w; i++ {
			b.Set(x+used+i, y, 0, style)
		}
		used += w
	}
	return used
}

// Fill fills a rectangular region with a rune and style.
func (b *Buffer) Fill(r Rect, ch rune, s backend.Style) {
	r = r.Intersection(b.Bounds())
	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			b.Set(x, y, ch, s)
		}
	}
}

// HLine draws n copies of ch to the right of (x, y).
func (b *Buffer) HLine(x, y, n int, ch rune, s backend.Style) {
	for i := 0; i < n; i++ {
		b.Set(x+i, y, ch, s)
	}
}

// VLine draws n copies of ch downward from (x, y).
func (b *Buffer) VLine(x, y, n int, ch rune, s backend.Style) {
	for i := 0; i < n; i++ {
		b.Set(x, y+i, ch, s)
	}
}

// DrawBox draws a single-line border around r.
func (b *Buffer) DrawBox(r Rect, s backend.Style) {
	if r.Width < 2 || r.Height < 2 {
		return
	}
	right, bottom := r.X+r.Width-1, r.Y+r.Height-1
	b.HLine(r.X+1, r.Y, r.Width-2, '─', s)
	b.HLine(r.X+1, bottom, r.Width-2, '─', s)
	b.VLine(r.X, r.Y+1, r.Height-2, '│', s)
	b.VLine(right, r.Y+1, r.Height-2, '│', s)
	b.Set(r.X, r.Y, '┌', s)
	b.Set(right, r.Y, '┐', s)
	b.Set(r.X, bottom, '└', s)
	b.Set(right, bottom, '┘', s)
}

// Row returns row y as text, skipping wide-rune continuation cells.
func (b *Buffer) Row(y int) string {
	var sb strings.Builder
	for x := 0; x < b.width; x++ {
		if r := b.Get(x, y).Rune; r != 0 {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// String renders the buffer as newline-separated rows.
func (b *Buffer) String() string {
	rows := make([]string, b.height)
	for y := range rows {
		rows[y] = b.Row(y)
	}
	return strings.Join(rows, "\n")
}

func (b *Buffer) markDirty(idx int) {
	if !b.dirty[idx] {
		b.dirty[idx] = true
		b.dirtyCount++
	}
}

// MarkAllDirty forces every cell to be flushed on the next frame.
func (b *Buffer) MarkAllDirty() {
	for i := range b.dirty {
		b.dirty[i] = true
	}
	b.dirtyCount = len(b.dirty)
}

// ClearDirty resets all dirty flags.
func (b *Buffer) ClearDirty() {
	clear(b.dirty)
	b.dirtyCount = 0
}

// IsDirty returns true if any cells have changed.
func (b *Buffer) IsDirty() bool {
	return b.dirtyCount > 0
}

// DirtyCount returns the number of dirty cells.
func (b *Buffer) DirtyCount() int {
	return b.dirtyCount
}

// ForEachDirtyCell calls fn for each dirty cell in row-major order.
func (b *Buffer) ForEachDirtyCell(fn func(x, y int, cell Cell)) {
	if b.dirtyCount == 0 {
		return
	}
	for idx, d := range b.dirty {
		if d {
			fn(idx%b.width, idx/b.width, b.cells[idx])
		}
	}
}
