package generate

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saurabh/starter-templates/config"
	"github.com/saurabh/starter-templates/migration"
)

func TestGenerateWritesMigration(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{}

	cmd := Command(cfg)
	cmd.SetArgs([]string{"--out", dir, "--strict"})
	require.NoError(t, cmd.Execute())

	matches, err := filepath.Glob(filepath.Join(dir, "*_starter_template_library.sql"))
	require.NoError(t, err)
	require.Len(t, matches, 1)

	data, err := os.ReadFile(matches[0])
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(data), "COMMIT;\n"))
	assert.Contains(t, string(data), "-- Property templates")
}

func TestGenerateToStdout(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{Library: config.LibraryConfig{MigrationsDir: dir}}

	var out bytes.Buffer
	cmd := Command(cfg)
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--stdout"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "INSERT INTO library_templates")
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGenerateStrictFailsOnWarnings(t *testing.T) {
	manifest := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(manifest, "library.yaml"), []byte(`
record_types:
  - id: property
    name: Property
    category: industry
templates:
  - id: t1
    name: T1
    record_type_id: property
    sections:
      - name: S
        items:
          - spread: MISSING
`), 0644))

	cfg := &config.Config{}
	cmd := Command(cfg)
	cmd.SetArgs([]string{"--manifest", manifest, "--out", t.TempDir(), "--strict"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MISSING")
}

func TestGenerateTwiceInOneSecondKeepsTheFirstFile(t *testing.T) {
	fixed := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	previous := now
	now = func() time.Time { return fixed }
	t.Cleanup(func() { now = previous })

	dir := t.TempDir()
	path := filepath.Join(dir, migration.FileName(fixed))

	first := Command(&config.Config{})
	first.SetArgs([]string{"--out", dir})
	require.NoError(t, first.Execute())
	written, err := os.ReadFile(path)
	require.NoError(t, err)

	second := Command(&config.Config{})
	second.SetArgs([]string{"--out", dir})
	second.SilenceUsage = true
	err = second.Execute()
	require.ErrorIs(t, err, migration.ErrMigrationExists)

	kept, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, written, kept)

	assert.Contains(t, second.Long, "never overwritten")
	assert.Contains(t, second.Long, "same second")
}
