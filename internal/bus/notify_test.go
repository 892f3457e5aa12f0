package bus

import (
	"errors"
	"testing"
)

func TestLifeLost(t *testing.T) {
	m := LifeLost(2)

	if m.ID != MsgIDLivesLeft {
		t.Errorf("Expected ID 0x%X, got 0x%X", MsgIDLivesLeft, m.ID)
	}
	if m.Len != 1 {
		t.Errorf("Expected payload length 1, got %d", m.Len)
	}
	if m.Data[0] != 2 {
		t.Errorf("Expected payload 2, got %d", m.Data[0])
	}
}

func TestFanoutDeliversToAllDespiteErrors(t *testing.T) {
	var got []uint16
	failing := Func(func(Message) error { return errors.New("wire down") })
	recording := Func(func(m Message) error {
		got = append(got, m.ID)
		return nil
	})

	f := Fanout{failing, recording, failing}
	err := f.Send(LifeLost(1))

	if err == nil {
		t.Error("Expected the first error to surface")
	}
	if len(got) != 1 {
		t.Errorf("Expected delivery to continue past a failing sink, got %d deliveries", len(got))
	}
}
