package bus

import (
	"github.com/charmbracelet/log"
)

// Fanout delivers each message to every notifier in order. It returns
// the first error encountered but still attempts the remaining
// notifiers, so one failing sink does not silence the others.
type Fanout []Notifier

func (f Fanout) Send(m Message) error {
	var first error
	for _, n := range f {
		if err := n.Send(m); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Logger is a Notifier that writes records to a structured logger
// instead of a wire. Used when no bus transport is attached.
type Logger struct {
	log *log.Logger
}

// NewLogger returns a logging notifier.
func NewLogger(l *log.Logger) *Logger {
	return &Logger{log: l}
}

func (n *Logger) Send(m Message) error {
	n.log.Info("bus message", "id", m.ID, "len", m.Len, "data", m.Data[:m.Len])
	return nil
}
