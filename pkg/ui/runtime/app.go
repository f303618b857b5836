package runtime

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/odvcencio/tabpanel/pkg/ui/backend"
	"github.com/odvcencio/tabpanel/pkg/ui/theme"
)

// UpdateFunc handles a message and returns true if a render is needed.
type UpdateFunc func(app *App, msg Message) bool

// CommandHandler handles commands emitted by widgets.
// Return true if the command requires a render.
type CommandHandler func(cmd Command) bool

// AppConfig configures a runtime App.
type AppConfig struct {
	Backend        backend.Backend
	Root           Widget
	Theme          *theme.Theme
	Update         UpdateFunc
	CommandHandler CommandHandler
	MessageBuffer  int
	TickRate       time.Duration
}

// App runs a widget tree against a terminal backend.
type App struct {
	backend        backend.Backend
	screen         *Screen
	root           Widget
	theme          *theme.Theme
	update         UpdateFunc
	commandHandler CommandHandler
	messages       chan Message
	calls          chan func(*App)
	tickRate       time.Duration

	running  bool
	dirty    bool
	renderMu sync.Mutex
}

// NewApp creates a new App from config.
func NewApp(cfg AppConfig) *App {
	bufferSize := cfg.MessageBuffer
	if bufferSize <= 0 {
		bufferSize = 128
	}
	return &App{
		backend:        cfg.Backend,
		root:           cfg.Root,
		theme:          cfg.Theme,
		update:         cfg.Update,
		commandHandler: cfg.CommandHandler,
		messages:       make(chan Message, bufferSize),
		calls:          make(chan func(*App), bufferSize),
		tickRate:       cfg.TickRate,
	}
}

// Screen returns the active screen, if initialized.
func (a *App) Screen() *Screen {
	return a.screen
}

// SetTheme swaps the active theme. Call from the loop goroutine (an
// UpdateFunc, CommandHandler or Call).
func (a *App) SetTheme(th *theme.Theme) {
	a.theme = th
	if a.screen != nil {
		a.screen.SetTheme(th)
		a.dirty = true
	}
}

// Post sends a message to the event loop. It drops the message when the
// queue is full.
func (a *App) Post(msg Message) {
	select {
	case a.messages <- msg:
	default:
	}
}

// Call schedules fn to run on the event loop goroutine, followed by a
// render. Other goroutines use it to mutate widgets safely.
func (a *App) Call(fn func(*App)) {
	a.calls <- fn
}

// Quit stops the loop after the current message. Call from the loop goroutine.
func (a *App) Quit() {
	a.running = false
}

// Run starts the event loop until quit or context cancellation.
func (a *App) Run(ctx context.Context) error {
	if a.backend == nil {
		return errors.New("backend is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := a.backend.Init(); err != nil {
		return fmt.Errorf("init backend: %w", err)
	}
	defer a.backend.Fini()

	a.backend.HideCursor()
	w, h := a.backend.Size()
	if a.theme == nil {
		a.theme = theme.DefaultTheme()
	}
	a.screen = NewScreen(w, h, a.theme)
	a.screen.SetRoot(a.root)

	if a.update == nil {
		a.update = DefaultUpdate
	}

	a.running = true
	a.dirty = true

	pollCtx, stopPolling := context.WithCancel(ctx)
	defer stopPolling()
	go a.pollEvents(pollCtx)

	var ticks <-chan time.Time
	if a.tickRate > 0 {
		ticker := time.NewTicker(a.tickRate)
		defer ticker.Stop()
		ticks = ticker.C
	}

	for a.running {
		if a.dirty {
			a.render()
			a.dirty = false
		}

		select {
		case <-ctx.Done():
			a.running = false
		case msg := <-a.messages:
			if a.update(a, msg) {
				a.dirty = true
			}
		case fn := <-a.calls:
			fn(a)
			a.dirty = true
		case now := <-ticks:
			if a.update(a, TickMsg{Time: now}) {
				a.dirty = true
			}
		}
	}

	return ctx.Err()
}

// DefaultUpdate handles input messages and widget commands.
func DefaultUpdate(app *App, msg Message) bool {
	if app == nil || app.screen == nil {
		return false
	}

	switch m := msg.(type) {
	case ResizeMsg:
		app.screen.Resize(m.Width, m.Height)
		app.backend.Sync()
		return true
	default:
		result := app.screen.HandleMessage(msg)
		dirty := result.Handled
		for _, cmd := range result.Commands {
			if app.handleCommand(cmd) {
				dirty = true
			}
		}
		return dirty
	}
}

func (a *App) handleCommand(cmd Command) bool {
	switch cmd.(type) {
	case Quit:
		a.running = false
		return false
	case Refresh:
		if a.screen != nil {
			a.screen.Buffer().MarkAllDirty()
		}
		return true
	default:
		if a.commandHandler != nil {
			return a.commandHandler(cmd)
		}
		return false
	}
}

func (a *App) pollEvents(ctx context.Context) {
	for ctx.Err() == nil {
		ev := a.backend.PollEvent()
		if ev == nil {
			return
		}
		if msg := MessageFromEvent(ev); msg != nil {
			select {
			case a.messages <- msg:
			case <-ctx.Done():
				return
			}
		}
	}
}

func (a *App) render() {
	a.renderMu.Lock()
	defer a.renderMu.Unlock()

	if a.screen == nil {
		return
	}

	a.screen.Render()
	buf := a.screen.Buffer()
	buf.ForEachDirtyCell(func(x, y int, cell Cell) {
		if cell.Rune == 0 {
			return
		}
		a.backend.SetContent(x, y, cell.Rune, nil, cell.Style)
	})
	buf.ClearDirty()
	a.backend.Show()
}
