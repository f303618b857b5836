// Package sim provides an in-memory backend for tests, built on tcell's
// simulation screen.
package sim

import (
	"strings"
	"sync"

	tcellv2 "github.com/gdamore/tcell/v2"

	"github.com/odvcencio/tabpanel/pkg/ui/backend"
	"github.com/odvcencio/tabpanel/pkg/ui/backend/tcell"
	"github.com/odvcencio/tabpanel/pkg/ui/terminal"
)

// Backend is a testable backend using tcell's simulation screen.
type Backend struct {
	*tcell.Backend
	screen tcellv2.SimulationScreen
	width  int
	height int
	mu     sync.Mutex
}

// New creates a simulation backend with the given dimensions.
func New(width, height int) *Backend {
	screen := tcellv2.NewSimulationScreen("UTF-8")
	return &Backend{
		Backend: tcell.NewWithScreen(screen),
		screen:  screen,
		width:   width,
		height:  height,
	}
}

// Init initializes the screen and applies the requested size.
func (s *Backend) Init() error {
	if err := s.Backend.Init(); err != nil {
		return err
	}
	s.mu.Lock()
	s.screen.SetSize(s.width, s.height)
	s.mu.Unlock()
	return nil
}

// Resize changes the screen size and posts a ResizeEvent.
func (s *Backend) Resize(width, height int) {
	s.mu.Lock()
	s.width, s.height = width, height
	s.screen.SetSize(width, height)
	s.mu.Unlock()
	_ = s.PostEvent(terminal.ResizeEvent{Width: width, Height: height})
}

// InjectKey posts a key press.
func (s *Backend) InjectKey(key terminal.Key, r rune) {
	_ = s.PostEvent(terminal.KeyEvent{Key: key, Rune: r})
}

// InjectKeyRune posts a regular character.
func (s *Backend) InjectKeyRune(r rune) {
	s.InjectKey(terminal.KeyRune, r)
}

// InjectClick posts a left press followed by a release at (x, y).
func (s *Backend) InjectClick(x, y int) {
	_ = s.PostEvent(terminal.MouseEvent{X: x, Y: y, Button: terminal.MouseLeft, Action: terminal.MousePress})
	_ = s.PostEvent(terminal.MouseEvent{X: x, Y: y, Button: terminal.MouseLeft, Action: terminal.MouseRelease})
}

// Capture returns the screen as newline-separated rows.
func (s *Backend) Capture() string {
	w, h := s.Size()
	return s.CaptureRegion(0, 0, w, h)
}

// CaptureCell returns the content and style of a single cell.
func (s *Backend) CaptureCell(x, y int) (mainc rune, comb []rune, style backend.Style) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, c, ts, _ := s.screen.GetContent(x, y)
	return m, c, tcell.ConvertTcellStyle(ts)
}

// CaptureRegion returns a rectangular region as newline-separated rows.
func (s *Backend) CaptureRegion(x, y, w, h int) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := make([]string, 0, h)
	for row := y; row < y+h; row++ {
		var line strings.Builder
		for col := x; col < x+w; col++ {
			mainc, comb, _, width := s.screen.GetContent(col, row)
			if mainc == 0 {
				mainc = ' '
			}
			line.WriteRune(mainc)
			for _, c := range comb {
				line.WriteRune(c)
			}
			if width > 1 {
				col += width - 1
			}
		}
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}

// FindText returns the cell position of the first occurrence of text, or
// (-1, -1).
func (s *Backend) FindText(text string) (x, y int) {
	for row, line := range strings.Split(s.Capture(), "\n") {
		if idx := strings.Index(line, text); idx >= 0 {
			return len([]rune(line[:idx])), row
		}
	}
	return -1, -1
}

// ContainsText reports whether text appears anywhere on screen.
func (s *Backend) ContainsText(text string) bool {
	x, _ := s.FindText(text)
	return x >= 0
}

var _ backend.Backend = (*Backend)(nil)
