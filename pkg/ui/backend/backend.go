// Package backend abstracts the terminal so widgets can be rendered against
// a real screen (tcell) or an in-memory simulation in tests.
package backend

import "github.com/odvcencio/tabpanel/pkg/ui/terminal"

// Backend is the terminal abstraction layer.
type Backend interface {
	// Init enters raw mode and the alternate screen.
	Init() error

	// Fini restores terminal state.
	Fini()

	Size() (width, height int)

	// SetContent sets a cell at (x, y). comb holds combining characters and may be nil.
	SetContent(x, y int, mainc rune, comb []rune, style Style)

	// Show flushes pending cells to the terminal.
	Show()

	Clear()

	HideCursor()

	// PollEvent blocks until an event is available. It returns nil once the
	// backend has been finalized.
	PollEvent() terminal.Event

	// PostEvent injects an event into the queue.
	PostEvent(ev terminal.Event) error

	// Sync forces a full redraw on the next Show.
	Sync()
}

// RenderTarget is the subset of Backend needed to paint cells.
type RenderTarget interface {
	Size() (width, height int)
	SetContent(x, y int, mainc rune, comb []rune, style Style)
}
