// Package history records connect/disconnect outcomes in a local SQLite
// database so the CLI can show what happened and when.
package history

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"wg-menubar/common"
)

const schema = `
CREATE TABLE IF NOT EXISTS events (
	id      TEXT PRIMARY KEY,
	ts      INTEGER NOT NULL,
	action  TEXT NOT NULL,
	tunnel  TEXT NOT NULL,
	success INTEGER NOT NULL,
	message TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS events_ts ON events (ts DESC);
`

// Store is a connection-event history backed by SQLite.
// It implements common.ActionRecorder.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the history database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize history schema: %w", err)
	}
	return &Store{db: db}, nil
}

// OpenDefault opens the history database in the application data directory.
func OpenDefault() (*Store, error) {
	dataDir, err := common.GetDataDir()
	if err != nil {
		return nil, err
	}
	return Open(filepath.Join(dataDir, common.HistoryFileName))
}

// Record persists an action event. A missing ID or timestamp is filled in.
func (s *Store) Record(event common.ActionEvent) error {
	if s.db == nil {
		return common.ErrHistoryClosed
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Time.IsZero() {
		event.Time = time.Now()
	}

	_, err := s.db.Exec(
		`INSERT INTO events (id, ts, action, tunnel, success, message) VALUES (?, ?, ?, ?, ?, ?)`,
		event.ID, event.Time.Unix(), event.Action, event.Tunnel, boolToInt(event.Success), event.Message,
	)
	if err != nil {
		return fmt.Errorf("failed to record event: %w", err)
	}
	return nil
}

// Recent returns up to limit events, newest first.
func (s *Store) Recent(limit int) ([]common.ActionEvent, error) {
	if s.db == nil {
		return nil, common.ErrHistoryClosed
	}
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, ts, action, tunnel, success, message FROM events ORDER BY ts DESC, id LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var events []common.ActionEvent
	for rows.Next() {
		var event common.ActionEvent
		var ts int64
		var success int
		if err := rows.Scan(&event.ID, &ts, &event.Action, &event.Tunnel, &success, &event.Message); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		event.Time = time.Unix(ts, 0)
		event.Success = success != 0
		events = append(events, event)
	}
	return events, rows.Err()
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
