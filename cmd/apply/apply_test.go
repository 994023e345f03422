package apply

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/saurabh/starter-templates/config"
	"github.com/saurabh/starter-templates/library"
	"github.com/saurabh/starter-templates/migration"
	"github.com/saurabh/starter-templates/utils/database"
)

func openSQLite(t *testing.T) *database.DB {
	t.Helper()
	sqlDB, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	db := database.NewDB(dialect.SQLite, sqlDB)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRunDirect(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t)
	cfg := &config.Config{}

	opts := Options{Direct: true, Bootstrap: true}
	require.NoError(t, Run(ctx, db, cfg, opts))
	require.NoError(t, Run(ctx, db, cfg, opts))

	lib, _, err := library.LoadStarter()
	require.NoError(t, err)

	n, err := db.Count(ctx, migration.TemplatesTable)
	require.NoError(t, err)
	assert.Equal(t, len(lib.Templates), n)
}

func TestRunFile(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t)

	lib, _, err := library.LoadStarter()
	require.NoError(t, err)
	script, err := migration.Emit(lib, time.Now())
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "library.sql")
	require.NoError(t, os.WriteFile(path, []byte(script), 0644))

	require.NoError(t, Run(ctx, db, &config.Config{}, Options{File: path, Bootstrap: true}))

	n, err := db.Count(ctx, migration.RecordTypesTable)
	require.NoError(t, err)
	assert.Equal(t, len(lib.RecordTypes), n)
}

func TestRunWithoutTablesFails(t *testing.T) {
	db := openSQLite(t)
	require.Error(t, Run(context.Background(), db, &config.Config{}, Options{Direct: true}))
}

func TestCommandRequiresOneSource(t *testing.T) {
	for name, args := range map[string][]string{
		"neither": {},
		"both":    {"library.sql", "--direct"},
	} {
		t.Run(name, func(t *testing.T) {
			cmd := Command(&config.Config{})
			cmd.SetArgs(args)
			require.Error(t, cmd.Execute())
		})
	}
}

func TestCommandValidatesDatabaseSettingsBeforeConnecting(t *testing.T) {
	cfg := &config.Config{Database: config.DatabaseConfig{Host: "localhost", User: "postgres", Name: "library", MaxOpenConns: 1, PingTimeout: 1}}

	cmd := Command(cfg)
	cmd.SetArgs([]string{"--direct"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PORT")
}
