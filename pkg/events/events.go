// Package events carries generator progress to whoever reports it.
package events

import "fmt"

type Level uint8

const (
	Debug Level = iota
	Info
	Error
)

func (l Level) String() string {
	switch l {
	case Debug:
		return "debug"
	case Info:
		return "info"
	case Error:
		return "error"
	default:
		return fmt.Sprintf("level(%d)", uint8(l))
	}
}

// Event is a single progress report from the generator. Path is relative to
// the scaffold root and may be empty.
type Event struct {
	Level   Level
	Message string
	Path    string
	Error   error
}

// String renders the event as "path: message (cause)".
func (e Event) String() string {
	msg := e.Message
	if e.Path != "" {
		msg = e.Path + ": " + msg
	}
	if e.Error != nil {
		msg += " (" + e.Error.Error() + ")"
	}
	return msg
}

type Handler interface {
	Handle(event Event)
}

// HandlerFunc adapts a plain function to Handler.
type HandlerFunc func(event Event)

func (h HandlerFunc) Handle(event Event) {
	h(event)
}

// Discard drops every event.
var Discard Handler = HandlerFunc(func(Event) {})

// Tee hands each event to every non-nil handler, in order.
func Tee(handlers ...Handler) Handler {
	return HandlerFunc(func(event Event) {
		for _, h := range handlers {
			if h != nil {
				h.Handle(event)
			}
		}
	})
}
