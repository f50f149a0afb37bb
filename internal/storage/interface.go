package storage

import "github.com/unrot/unrot/internal/models"

// Provider persists the workspace as one opaque snapshot document: read
// once at startup, rewritten after every mutation. A missing or unparsable
// document is not an error; Load falls back to the default state.
type Provider interface {
	// Init creates the storage location with the default snapshot. It
	// fails if storage already exists.
	Init() error

	// Load reads the snapshot document. Missing or corrupt documents
	// yield models.DefaultSnapshot.
	Load() (models.Snapshot, error)

	// SaveSnapshot rewrites the full document.
	SaveSnapshot(models.Snapshot) error

	Close() error

	// GetConfigPath returns the backing file path.
	GetConfigPath() string
}
