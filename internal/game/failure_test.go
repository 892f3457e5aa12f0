package game

import "testing"

func TestBeamMonitorSingleLossPerInterval(t *testing.T) {
	b := beamMonitor{threshold: 1000}

	// First below-threshold reading latches and counts.
	if !b.observe(500) {
		t.Fatal("Expected failure on first below-threshold reading")
	}

	// The obstruction persists; no further failures.
	for i := 0; i < 50; i++ {
		if b.observe(500) {
			t.Fatalf("Unexpected failure on tick %d of a continuous obstruction", i)
		}
	}
}

func TestBeamMonitorRearmsAboveThreshold(t *testing.T) {
	b := beamMonitor{threshold: 1000}

	if !b.observe(200) {
		t.Fatal("Expected failure on obstruction")
	}
	if b.observe(200) {
		t.Fatal("Expected debounce while obstructed")
	}

	// Beam restored, monitor re-arms.
	if b.observe(2000) {
		t.Fatal("Restoring the beam must not count as failure")
	}

	// A second distinct obstruction counts again.
	if !b.observe(200) {
		t.Fatal("Expected failure on second distinct obstruction")
	}
}

func TestBeamMonitorThresholdEqualityIsNeutral(t *testing.T) {
	b := beamMonitor{threshold: 1000}

	// At exactly the threshold from the armed state: no failure.
	if b.observe(1000) {
		t.Fatal("Level equal to threshold must not count as failure")
	}

	// Latch, then hold at exactly the threshold: no re-arm.
	if !b.observe(999) {
		t.Fatal("Expected failure just below threshold")
	}
	if b.observe(1000) {
		t.Fatal("Equal level must not fail while latched")
	}
	if b.observe(999) {
		t.Fatal("Equal level must not have re-armed the monitor")
	}

	// Strictly above re-arms.
	b.observe(1001)
	if !b.observe(999) {
		t.Fatal("Expected failure after re-arming strictly above threshold")
	}
}

func TestBeamMonitorOscillation(t *testing.T) {
	b := beamMonitor{threshold: 1000}

	losses := 0
	levels := []uint16{2000, 400, 400, 2000, 2000, 300, 2000, 100, 100, 100, 2000}
	for _, lvl := range levels {
		if b.observe(lvl) {
			losses++
		}
	}

	// Three distinct below-threshold runs.
	if losses != 3 {
		t.Errorf("Expected 3 losses across 3 obstruction runs, got %d", losses)
	}
}
