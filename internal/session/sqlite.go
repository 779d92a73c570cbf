package session

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/studybuddy/studybuddy/internal/model"
)

// DefaultDirName is the data directory created under the user's home
const DefaultDirName = ".studybuddy"

// SQLiteStore keeps the session in a single-row SQLite table. The CLI uses
// it so that separate invocations share a login.
type SQLiteStore struct {
	db *sql.DB
}

// DefaultSQLitePath returns ~/.studybuddy/session.db
func DefaultSQLitePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, DefaultDirName, "session.db"), nil
}

// OpenSQLiteStore opens or creates the database at path
func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("cannot create data directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func initSchema(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS session (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		user_id TEXT NOT NULL,
		saved_at DATETIME NOT NULL
	);`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to create session table: %w", err)
	}
	return nil
}

// Close releases the database
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Load reads the single session row; ok is false when none is stored
func (s *SQLiteStore) Load() (model.Session, bool, error) {
	var userID string
	err := s.db.QueryRow(`SELECT user_id FROM session WHERE id = 1`).Scan(&userID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Session{}, false, nil
	}
	if err != nil {
		return model.Session{}, false, fmt.Errorf("failed to read session: %w", err)
	}
	return model.Session{UserID: userID}, true, nil
}

// Save upserts the session row and stamps it with the save time
func (s *SQLiteStore) Save(sess model.Session) error {
	_, err := s.db.Exec(`
		INSERT INTO session (id, user_id, saved_at) VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET user_id = excluded.user_id, saved_at = excluded.saved_at`,
		sess.UserID, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Clear deletes the stored session
func (s *SQLiteStore) Clear() error {
	if _, err := s.db.Exec(`DELETE FROM session`); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
