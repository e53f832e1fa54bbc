package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// maxBackups is how many timestamped snapshots of a project file are kept
// before the oldest is pruned.
const maxBackups = 5

// backupTimeFormat orders lexicographically, so sorting file names sorts by age.
const backupTimeFormat = "20060102-150405"

// BackupExisting snapshots the current contents of a project file before it
// is overwritten, writing <name>.<timestamp>.bak next to it and pruning old
// snapshots beyond maxBackups. A missing original is not an error; there is
// simply nothing to back up.
func BackupExisting(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("cannot read project for backup: %w", err)
	}

	stamp := time.Now().UTC().Format(backupTimeFormat)
	backupPath := fmt.Sprintf("%s.%s.bak", path, stamp)
	if err := os.WriteFile(backupPath, data, 0644); err != nil {
		return fmt.Errorf("cannot write backup file: %w", err)
	}

	return pruneBackups(path)
}

// Backups lists existing backup files for a project path, oldest first.
func Backups(path string) ([]string, error) {
	matches, err := filepath.Glob(path + ".*.bak")
	if err != nil {
		return nil, err
	}
	// Glob returns sorted names and the timestamp format sorts by age.
	return matches, nil
}

// RestoreBackup copies a backup file back over the project path.
func RestoreBackup(backupPath, path string) error {
	if !strings.HasSuffix(backupPath, ".bak") {
		return fmt.Errorf("not a backup file: %s", backupPath)
	}
	data, err := os.ReadFile(backupPath)
	if err != nil {
		return fmt.Errorf("cannot read backup file: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// pruneBackups deletes the oldest snapshots beyond maxBackups.
func pruneBackups(path string) error {
	backups, err := Backups(path)
	if err != nil {
		return err
	}
	for len(backups) > maxBackups {
		if err := os.Remove(backups[0]); err != nil {
			return err
		}
		backups = backups[1:]
	}
	return nil
}
