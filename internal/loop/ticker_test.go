package loop

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestTickerDelivers(t *testing.T) {
	var count atomic.Int64
	tk := New(func() { count.Add(1) })

	tk.Enable()
	time.Sleep(5 * Interval)
	tk.Disable()

	if got := count.Load(); got < 2 {
		t.Errorf("Expected at least 2 ticks, got %d", got)
	}
}

func TestTickerDisableStopsDelivery(t *testing.T) {
	var count atomic.Int64
	tk := New(func() { count.Add(1) })

	tk.Enable()
	time.Sleep(3 * Interval)
	tk.Disable()

	// Disable waits for any in-flight callback, so the count is
	// stable from here on.
	frozen := count.Load()
	time.Sleep(3 * Interval)

	if got := count.Load(); got != frozen {
		t.Errorf("Ticks delivered after Disable: %d -> %d", frozen, got)
	}
}

func TestTickerIdempotentControls(t *testing.T) {
	var count atomic.Int64
	tk := New(func() { count.Add(1) })

	// Disable before any Enable is a no-op.
	tk.Disable()

	tk.Enable()
	tk.Enable() // no second delivery goroutine
	time.Sleep(3 * Interval)
	tk.Disable()
	tk.Disable()

	if count.Load() == 0 {
		t.Error("Expected ticks after Enable")
	}
}

func TestTickerReenable(t *testing.T) {
	var count atomic.Int64
	tk := New(func() { count.Add(1) })

	tk.Enable()
	time.Sleep(3 * Interval)
	tk.Disable()

	before := count.Load()

	tk.Enable()
	time.Sleep(3 * Interval)
	tk.Disable()

	if got := count.Load(); got <= before {
		t.Errorf("Expected more ticks after re-enable: %d -> %d", before, got)
	}
}
