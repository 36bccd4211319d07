package tui

// EventKind tags an Event.
type EventKind int

const (
	// EventMessage carries an application message for Program.Update.
	EventMessage EventKind = iota
	// EventPrint carries text to insert above the viewport.
	EventPrint
)

func (k EventKind) String() string {
	switch k {
	case EventMessage:
		return "message"
	case EventPrint:
		return "print"
	default:
		return "unknown"
	}
}

// Event is what a Handle puts on the queue.
type Event[M any] struct {
	Kind    EventKind
	Message M
	Text    string
}

// MessageEvent wraps an application message.
func MessageEvent[M any](msg M) Event[M] {
	return Event[M]{Kind: EventMessage, Message: msg}
}

// PrintEvent wraps text destined for the scrollback.
func PrintEvent[M any](text string) Event[M] {
	return Event[M]{Kind: EventPrint, Text: text}
}

type inputKind int

const (
	inputEvent inputKind = iota
	inputFinished
	inputTerm
	inputCancelled
	inputPanic
)

// input is one item of the merged sequence the driver consumes.
type input[M, T any] struct {
	kind   inputKind
	event  Event[M]
	result T
	panic  any
}
