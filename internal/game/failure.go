package game

// beamMonitor is the edge-triggered failure detector over the IR beam
// level. One continuous below-threshold interval counts exactly one
// failure; the monitor re-arms only when the level rises back above
// the threshold. A level exactly at the threshold changes nothing:
// failure requires strictly less, re-arming strictly greater.
type beamMonitor struct {
	threshold uint16
	latched   bool
}

// observe feeds one sensor reading and reports whether a qualifying
// failure occurred on this tick.
func (b *beamMonitor) observe(level uint16) bool {
	switch {
	case level < b.threshold && !b.latched:
		b.latched = true
		return true
	case level > b.threshold:
		b.latched = false
	}
	return false
}

// reset re-arms the monitor regardless of the current beam level.
func (b *beamMonitor) reset() {
	b.latched = false
}
