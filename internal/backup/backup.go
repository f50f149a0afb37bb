package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const (
	// MaxBackups is the maximum number of backups to keep
	MaxBackups = 14
	// BackupDirName is the name of the backup directory
	BackupDirName = "backups"
	// BackupFilePrefix is the prefix for backup files
	BackupFilePrefix = "unrot-"
)

// BackupInfo contains information about a backup file
type BackupInfo struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Manager copies the snapshot file aside and rotates old copies. It works
// on whole files, so it serves both the JSON document and the SQLite store.
type Manager struct {
	storePath string
	backupDir string
	suffix    string
}

// NewManager creates a manager for the given store file. Backups keep the
// store's extension so a restored file stays valid for the same provider.
func NewManager(storePath string) *Manager {
	configDir := filepath.Dir(storePath)
	suffix := filepath.Ext(storePath)
	if suffix == "" {
		suffix = ".bak"
	}
	return &Manager{
		storePath: storePath,
		backupDir: filepath.Join(configDir, BackupDirName),
		suffix:    suffix,
	}
}

// GetBackupDir returns the backup directory path
func (m *Manager) GetBackupDir() string {
	return m.backupDir
}

// CreateBackup copies the current store file into the backup directory.
func (m *Manager) CreateBackup() (string, error) {
	return m.createBackup(false)
}

// createBackup copies the store file aside. skipRotation prevents recursive
// rotation when a backup is taken as part of a restore.
func (m *Manager) createBackup(skipRotation bool) (string, error) {
	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	if _, err := os.Stat(m.storePath); os.IsNotExist(err) {
		return "", fmt.Errorf("store file does not exist: %s", m.storePath)
	}

	backupPath, err := m.uniqueBackupPath()
	if err != nil {
		return "", err
	}

	if err := copyFile(m.storePath, backupPath); err != nil {
		return "", fmt.Errorf("failed to copy store file: %w", err)
	}

	if !skipRotation {
		if err := m.rotateBackups(); err != nil {
			// Rotation failure should not fail the backup itself.
			fmt.Fprintf(os.Stderr, "Warning: failed to rotate old backups: %v\n", err)
		}
	}

	return backupPath, nil
}

// uniqueBackupPath generates a timestamped filename, adding seconds and then
// a counter if the minute-precision name already exists.
func (m *Manager) uniqueBackupPath() (string, error) {
	timestamp := time.Now().Format("20060102-1504")
	backupPath := filepath.Join(m.backupDir, BackupFilePrefix+timestamp+m.suffix)
	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		return backupPath, nil
	}

	timestamp = time.Now().Format("20060102-150405")
	backupPath = filepath.Join(m.backupDir, BackupFilePrefix+timestamp+m.suffix)
	counter := 1
	for {
		if _, err := os.Stat(backupPath); os.IsNotExist(err) {
			return backupPath, nil
		}
		backupPath = filepath.Join(m.backupDir, fmt.Sprintf("%s%s-%d%s", BackupFilePrefix, timestamp, counter, m.suffix))
		counter++
		if counter > 100 {
			return "", fmt.Errorf("failed to generate unique backup filename")
		}
	}
}

// ListBackups returns all backups, newest first.
func (m *Manager) ListBackups() ([]BackupInfo, error) {
	if _, err := os.Stat(m.backupDir); os.IsNotExist(err) {
		return []BackupInfo{}, nil
	}

	entries, err := os.ReadDir(m.backupDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var backups []BackupInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if !strings.HasPrefix(name, BackupFilePrefix) || !strings.HasSuffix(name, m.suffix) {
			continue
		}

		timestampStr := strings.TrimPrefix(name, BackupFilePrefix)
		timestampStr = strings.TrimSuffix(timestampStr, m.suffix)
		// Drop a counter suffix (all-digit tail that is not a time part).
		if parts := strings.Split(timestampStr, "-"); len(parts) > 2 {
			last := parts[len(parts)-1]
			if len(last) != 4 && len(last) != 6 && isDigits(last) {
				timestampStr = strings.Join(parts[:len(parts)-1], "-")
			}
		}

		timestamp, err := time.Parse("20060102-1504", timestampStr)
		if err != nil {
			timestamp, err = time.Parse("20060102-150405", timestampStr)
			if err != nil {
				continue
			}
		}

		path := filepath.Join(m.backupDir, name)
		info, err := os.Stat(path)
		if err != nil {
			continue
		}

		backups = append(backups, BackupInfo{
			Path:      path,
			Timestamp: timestamp,
			Size:      info.Size(),
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})

	return backups, nil
}

// rotateBackups removes backups beyond the retention limit.
func (m *Manager) rotateBackups() error {
	backups, err := m.ListBackups()
	if err != nil {
		return err
	}

	if len(backups) <= MaxBackups {
		return nil
	}

	for i := MaxBackups; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Path, err)
		}
	}
	return nil
}

// RestoreBackup replaces the store file with a backup, keeping a safety
// copy of the current file first. The final replace is an atomic rename.
func (m *Manager) RestoreBackup(backupPath string) error {
	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		return fmt.Errorf("backup file does not exist: %s", backupPath)
	}

	if _, err := os.Stat(m.storePath); err == nil {
		currentBackup, err := m.createBackup(true)
		if err != nil {
			return fmt.Errorf("failed to back up current store before restore: %w", err)
		}
		fmt.Printf("Created backup of current store: %s\n", filepath.Base(currentBackup))
	}

	tempPath := m.storePath + ".restore.tmp"
	if err := copyFile(backupPath, tempPath); err != nil {
		return fmt.Errorf("failed to copy backup file: %w", err)
	}

	if err := os.Rename(tempPath, m.storePath); err != nil {
		if removeErr := os.Remove(tempPath); removeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to remove temporary file %s: %v\n", tempPath, removeErr)
		}
		return fmt.Errorf("failed to restore store file: %w", err)
	}

	return nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// copyFile copies a file from src to dst
func copyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destFile.Close()

	if _, err := destFile.ReadFrom(sourceFile); err != nil {
		return err
	}

	// Sync to ensure data is written to disk
	return destFile.Sync()
}
