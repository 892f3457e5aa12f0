package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestSessionRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := Open(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	id, err := store.BeginSession("slider", "hard")
	if err != nil {
		t.Fatalf("BeginSession() failed: %v", err)
	}

	if err := store.RecordLifeLoss(id, 2, 150); err != nil {
		t.Fatalf("RecordLifeLoss() failed: %v", err)
	}
	if err := store.RecordLifeLoss(id, 1, 700); err != nil {
		t.Fatalf("RecordLifeLoss() failed: %v", err)
	}

	if err := store.FinishSession(id, 1200, 1); err != nil {
		t.Fatalf("FinishSession() failed: %v", err)
	}

	sessions, err := store.TopSessions(10)
	if err != nil {
		t.Fatalf("TopSessions() failed: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("Expected 1 session, got %d", len(sessions))
	}

	s := sessions[0]
	if s.Score != 1200 || s.LivesLeft != 1 {
		t.Errorf("Expected score 1200 with 1 life, got %d with %d", s.Score, s.LivesLeft)
	}
	if s.Mode != "slider" || s.Difficulty != "hard" {
		t.Errorf("Expected slider/hard, got %s/%s", s.Mode, s.Difficulty)
	}

	events, err := store.LifeEvents(id)
	if err != nil {
		t.Fatalf("LifeEvents() failed: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("Expected 2 life events, got %d", len(events))
	}
	if events[0].LivesLeft != 2 || events[0].Tick != 150 {
		t.Errorf("Unexpected first event: %+v", events[0])
	}
	if events[1].LivesLeft != 1 || events[1].Tick != 700 {
		t.Errorf("Unexpected second event: %+v", events[1])
	}
}

func TestTopSessionsOrderAndLimit(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := Open(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for _, score := range []int{100, 500, 300, 200, 400} {
		id, err := store.BeginSession("joystick", "extreme")
		if err != nil {
			t.Fatalf("BeginSession() failed: %v", err)
		}
		if err := store.FinishSession(id, score, 3); err != nil {
			t.Fatalf("FinishSession() failed: %v", err)
		}
	}

	sessions, err := store.TopSessions(3)
	if err != nil {
		t.Fatalf("TopSessions() failed: %v", err)
	}
	if len(sessions) != 3 {
		t.Fatalf("Expected 3 sessions with limit, got %d", len(sessions))
	}

	if sessions[0].Score != 500 || sessions[1].Score != 400 || sessions[2].Score != 300 {
		t.Errorf("Sessions not in descending score order: %v", sessions)
	}
}

func TestHighScore(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := Open(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Empty database reports zero without error.
	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score 0 on empty db, got %d", high)
	}

	id, _ := store.BeginSession("tilt", "impossible")
	store.FinishSession(id, 900, 0)

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 900 {
		t.Errorf("Expected high score 900, got %d", high)
	}
}
