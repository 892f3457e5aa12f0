// Package loop delivers the fixed-rate timer callbacks that drive the
// control core.
package loop

import (
	"sync"
	"time"
)

// TickRate is the fixed loop frequency in ticks per second. It is a
// property of the cabinet's motor timing and is not configurable at
// run time.
const TickRate = 50

// Interval is the period between ticks.
const Interval = time.Second / TickRate

// Ticker invokes a callback once per Interval from a single goroutine,
// so callbacks never overlap. Enable and Disable may be called from
// any goroutine, in any order, any number of times.
type Ticker struct {
	tick func()

	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

// New arms a ticker for the given callback without starting delivery.
func New(tick func()) *Ticker {
	return &Ticker{tick: tick}
}

// Enable starts callback delivery. Enabling a running ticker is a
// no-op.
func (t *Ticker) Enable() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stop != nil {
		return
	}
	t.stop = make(chan struct{})
	t.done = make(chan struct{})
	go t.run(t.stop, t.done)
}

// Disable stops delivery before the next scheduled tick and waits for
// a callback already in progress to complete. Disabling a stopped
// ticker is a no-op.
func (t *Ticker) Disable() {
	t.mu.Lock()
	stop, done := t.stop, t.done
	t.stop, t.done = nil, nil
	t.mu.Unlock()

	if stop == nil {
		return
	}
	close(stop)
	<-done
}

func (t *Ticker) run(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	tick := time.NewTicker(Interval)
	defer tick.Stop()

	for {
		select {
		case <-stop:
			return
		case <-tick.C:
			t.tick()
		}
	}
}
