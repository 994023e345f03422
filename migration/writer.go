package migration

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

const fileSuffix = "_starter_template_library.sql"

// ErrMigrationExists is returned when the target migration file is already present.
var ErrMigrationExists = errors.New("migration file already exists")

// FileName returns the migration file name for the given UTC timestamp.
func FileName(now time.Time) string {
	return now.UTC().Format("20060102150405") + fileSuffix
}

// WriteMigration writes script to dir under a timestamped name and returns the
// full path. The directory is created if needed; an existing file is never
// overwritten.
func WriteMigration(dir string, now time.Time, script string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	path := filepath.Join(dir, FileName(now))
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return "", fmt.Errorf("%w: %s", ErrMigrationExists, path)
		}
		return "", fmt.Errorf("failed to create migration file: %w", err)
	}

	if _, err := f.WriteString(script); err != nil {
		f.Close()
		return "", fmt.Errorf("failed to write migration file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to write migration file: %w", err)
	}
	return path, nil
}
