package common

import (
	"fmt"
	"io"
	"time"

	"github.com/saurabh/starter-templates/library"
	"github.com/saurabh/starter-templates/migration"
)

// LoadLibrary loads the manifests in dir, or the built-in starter library when
// dir is empty, and appends validation warnings to the load warnings.
func LoadLibrary(dir string) (*library.Library, library.Warnings, error) {
	var (
		lib      *library.Library
		warnings library.Warnings
		err      error
	)
	if dir == "" {
		lib, warnings, err = library.LoadStarter()
	} else {
		lib, warnings, err = library.LoadDir(dir)
	}
	if err != nil {
		return nil, nil, err
	}

	warnings = append(warnings, library.Validate(lib)...)
	return lib, warnings, nil
}

// ReportWarnings logs every warning. In strict mode any warning fails the
// command with all warnings combined into one error.
func ReportWarnings(warnings library.Warnings, strict bool) error {
	for _, w := range warnings {
		LogWarning("%s", w.String())
	}
	if !strict {
		return nil
	}
	if err := warnings.Err(); err != nil {
		return fmt.Errorf("library has %d warning(s): %w", len(warnings), err)
	}
	return nil
}

// Output describes where a generated migration goes.
type Output struct {
	Dir    string
	Stdout io.Writer // when set, the script is written here instead of Dir
}

// EmitMigration renders lib and writes it to out. It returns the written path,
// or an empty path when the script went to Stdout.
func EmitMigration(lib *library.Library, out Output, now time.Time) (string, error) {
	script, err := migration.Emit(lib, now)
	if err != nil {
		return "", fmt.Errorf("failed to render migration: %w", err)
	}

	if out.Stdout != nil {
		if _, err := io.WriteString(out.Stdout, script); err != nil {
			return "", fmt.Errorf("failed to write migration: %w", err)
		}
		return "", nil
	}

	path, err := migration.WriteMigration(out.Dir, now, script)
	if err != nil {
		return "", err
	}
	LogSuccess("Wrote %s (%d record types, %d templates, %d items)",
		path, len(lib.RecordTypes), len(lib.Templates), lib.ItemCount())
	return path, nil
}
