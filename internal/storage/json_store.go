package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/unrot/unrot/internal/models"
)

// JSONStore keeps the whole workspace in a single JSON document.
//
// Concurrency note:
//   - JSONStore is not safe for concurrent use by multiple processes
//     sharing the same path; the engine serializes writes within one
//     process, but running two unrot processes against the same file may
//     lose data.
type JSONStore struct {
	path string
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{path: configPath}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	return s.SaveSnapshot(models.DefaultSnapshot())
}

func (s *JSONStore) Load() (models.Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.DefaultSnapshot(), nil
		}
		return models.Snapshot{}, fmt.Errorf("failed to read storage: %w", err)
	}

	var snap models.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		// Unparsable document: fall back rather than fail startup.
		return models.DefaultSnapshot(), nil
	}
	return snap, nil
}

func (s *JSONStore) SaveSnapshot(snap models.Snapshot) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize snapshot: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
