package runtime

// Command represents an intent emitted by widgets. Commands bubble up from
// widgets to the app.
type Command interface {
	isCommand()
}

// Quit signals the application should exit.
type Quit struct{}

func (Quit) isCommand() {}

// Refresh requests a full redraw.
type Refresh struct{}

func (Refresh) isCommand() {}

// Notify carries a one-line status message for the host to display.
type Notify struct {
	Text string
}

func (Notify) isCommand() {}
