package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/unrot/unrot/internal/constants"
	"github.com/unrot/unrot/internal/models"
)

// SQLiteStore keeps the snapshot document in a single keyed row. There is
// no schema versioning beyond the storage key; the document format carries
// its own version field.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

const snapshotSchema = `
CREATE TABLE IF NOT EXISTS snapshots (
	key        TEXT PRIMARY KEY,
	document   TEXT NOT NULL,
	updated_at TEXT NOT NULL
);`

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	if err := s.open(); err != nil {
		return err
	}
	return s.SaveSnapshot(models.DefaultSnapshot())
}

func (s *SQLiteStore) open() error {
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec(snapshotSchema); err != nil {
		db.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}
	s.db = db
	return nil
}

func (s *SQLiteStore) Load() (models.Snapshot, error) {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return models.DefaultSnapshot(), nil
	}
	if err := s.open(); err != nil {
		return models.Snapshot{}, err
	}

	var document string
	err := s.db.QueryRow(
		`SELECT document FROM snapshots WHERE key = ?`, constants.SnapshotKey,
	).Scan(&document)
	if err == sql.ErrNoRows {
		return models.DefaultSnapshot(), nil
	}
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var snap models.Snapshot
	if err := json.Unmarshal([]byte(document), &snap); err != nil {
		return models.DefaultSnapshot(), nil
	}
	return snap, nil
}

func (s *SQLiteStore) SaveSnapshot(snap models.Snapshot) error {
	if err := s.open(); err != nil {
		return err
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to serialize snapshot: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO snapshots (key, document, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET document = excluded.document, updated_at = excluded.updated_at`,
		constants.SnapshotKey, string(data), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
