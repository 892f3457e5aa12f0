// Package storage provides SQLite-based persistence for node play
// sessions and life-loss events. Uses the pure-Go modernc.org/sqlite
// driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// SessionResult is one play session's final state.
type SessionResult struct {
	ID         int64
	Score      int
	LivesLeft  int
	Mode       string
	Difficulty string
	CreatedAt  time.Time
}

// LifeEvent is one recorded life loss within a session.
type LifeEvent struct {
	ID        int64
	SessionID int64
	LivesLeft int
	Tick      int // score counter at the moment of the loss
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path. It
// creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			score INTEGER NOT NULL DEFAULT 0,
			lives_left INTEGER NOT NULL DEFAULT 0,
			mode TEXT NOT NULL,
			difficulty TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_top ON sessions(score DESC);

		CREATE TABLE IF NOT EXISTS life_events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id INTEGER NOT NULL REFERENCES sessions(id),
			lives_left INTEGER NOT NULL,
			tick INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_life_events_session ON life_events(session_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// BeginSession inserts a new session row and returns its ID.
func (s *Store) BeginSession(mode, difficulty string) (int64, error) {
	res, err := s.db.Exec(
		"INSERT INTO sessions (mode, difficulty) VALUES (?, ?)",
		mode, difficulty,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: begin session: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: begin session: %w", err)
	}
	return id, nil
}

// FinishSession records the final score and life count for a session.
func (s *Store) FinishSession(sessionID int64, score, livesLeft int) error {
	_, err := s.db.Exec(
		"UPDATE sessions SET score = ?, lives_left = ? WHERE id = ?",
		score, livesLeft, sessionID,
	)
	if err != nil {
		return fmt.Errorf("storage: finish session %d: %w", sessionID, err)
	}
	return nil
}

// RecordLifeLoss appends one life-loss event to a session.
func (s *Store) RecordLifeLoss(sessionID int64, livesLeft, tick int) error {
	_, err := s.db.Exec(
		"INSERT INTO life_events (session_id, lives_left, tick) VALUES (?, ?, ?)",
		sessionID, livesLeft, tick,
	)
	if err != nil {
		return fmt.Errorf("storage: record life loss: %w", err)
	}
	return nil
}

// TopSessions returns up to limit sessions ordered by score descending.
func (s *Store) TopSessions(limit int) ([]SessionResult, error) {
	rows, err := s.db.Query(`
		SELECT id, score, lives_left, mode, difficulty, created_at
		FROM sessions
		ORDER BY score DESC, created_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("storage: query sessions: %w", err)
	}
	defer rows.Close()

	var results []SessionResult
	for rows.Next() {
		var r SessionResult
		if err := rows.Scan(&r.ID, &r.Score, &r.LivesLeft, &r.Mode, &r.Difficulty, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("storage: scan session: %w", err)
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// LifeEvents returns the life-loss events of one session, oldest first.
func (s *Store) LifeEvents(sessionID int64) ([]LifeEvent, error) {
	rows, err := s.db.Query(`
		SELECT id, session_id, lives_left, tick, created_at
		FROM life_events
		WHERE session_id = ?
		ORDER BY id ASC`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("storage: query life events: %w", err)
	}
	defer rows.Close()

	var events []LifeEvent
	for rows.Next() {
		var e LifeEvent
		if err := rows.Scan(&e.ID, &e.SessionID, &e.LivesLeft, &e.Tick, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("storage: scan life event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// HighScore returns the best session score, or 0 with no error when no
// sessions are recorded yet.
func (s *Store) HighScore() (int, error) {
	var high sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM sessions").Scan(&high)
	if err != nil {
		return 0, fmt.Errorf("storage: query high score: %w", err)
	}
	if !high.Valid {
		return 0, nil
	}
	return int(high.Int64), nil
}
