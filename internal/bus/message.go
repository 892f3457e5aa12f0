// Package bus carries fixed-size event records between game nodes.
// Framing, arbitration and retries belong to the transport behind
// Notifier; this package only defines the records and how the node
// hands them off.
package bus

// Message IDs shared across the nodes on the bus.
const (
	// MsgIDLivesLeft announces a life loss. Payload is one byte: the
	// number of lives remaining on the node.
	MsgIDLivesLeft uint16 = 0x10
)

// Message is a fixed-size CAN-style record: identifier, payload length
// and up to eight data bytes.
type Message struct {
	ID   uint16
	Len  uint8
	Data [8]byte
}

// LifeLost builds the life-loss record for the given remaining count.
func LifeLost(livesLeft uint8) Message {
	m := Message{ID: MsgIDLivesLeft, Len: 1}
	m.Data[0] = livesLeft
	return m
}

// Notifier sends one record to the bus. Send is fire-and-forget from
// the node's perspective; delivery guarantees belong to the transport.
type Notifier interface {
	Send(Message) error
}

// Func adapts a function to the Notifier interface.
type Func func(Message) error

func (f Func) Send(m Message) error { return f(m) }
