package migration

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/saurabh/starter-templates/library"
)

func openSQLite(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(SchemaDDL)
	require.NoError(t, err)
	return db
}

func countRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}

func TestEmittedScriptRoundTrip(t *testing.T) {
	db := openSQLite(t)
	lib := fixtureLibrary()

	script, err := Emit(lib, generatedAt)
	require.NoError(t, err)
	_, err = db.Exec(script)
	require.NoError(t, err)

	assert.Equal(t, 2, countRows(t, db, RecordTypesTable))
	assert.Equal(t, 3, countRows(t, db, TemplatesTable))

	var description, sections string
	var sortOrder int
	require.NoError(t, db.QueryRow(
		"SELECT description, sections, sort_order FROM library_templates WHERE id = ?", "property-move-in",
	).Scan(&description, &sections, &sortOrder))
	assert.Equal(t, "Tenant O'Brien moving in", description)
	assert.Equal(t, 0, sortOrder)

	var decoded []library.Section
	require.NoError(t, json.Unmarshal([]byte(sections), &decoded))
	assert.Equal(t, lib.Templates[0].Sections, decoded)

	var singular string
	require.NoError(t, db.QueryRow(
		"SELECT name_singular FROM library_record_types WHERE id = ?", "facilities",
	).Scan(&singular))
	assert.Equal(t, "Facilitie", singular)
}

func TestEmittedScriptIsIdempotent(t *testing.T) {
	db := openSQLite(t)
	lib := fixtureLibrary()

	first, err := Emit(lib, generatedAt)
	require.NoError(t, err)
	second, err := Emit(lib, generatedAt.Add(time.Hour))
	require.NoError(t, err)

	for _, script := range []string{first, second, first} {
		_, err = db.Exec(script)
		require.NoError(t, err)
	}

	assert.Equal(t, 2, countRows(t, db, RecordTypesTable))
	assert.Equal(t, 3, countRows(t, db, TemplatesTable))
}

func TestEmittedScriptUpdatesExistingRows(t *testing.T) {
	db := openSQLite(t)
	lib := fixtureLibrary()

	script, err := Emit(lib, generatedAt)
	require.NoError(t, err)
	_, err = db.Exec(script)
	require.NoError(t, err)

	lib.Templates[1].Name = "Plant Room Weekly"
	script, err = Emit(lib, generatedAt)
	require.NoError(t, err)
	_, err = db.Exec(script)
	require.NoError(t, err)

	var name string
	require.NoError(t, db.QueryRow("SELECT name FROM library_templates WHERE id = ?", "facilities-plant").Scan(&name))
	assert.Equal(t, "Plant Room Weekly", name)
}

func TestStarterLibraryAppliesCleanly(t *testing.T) {
	db := openSQLite(t)
	lib, warnings, err := library.LoadStarter()
	require.NoError(t, err)
	require.Empty(t, warnings)

	script, err := Emit(lib, generatedAt)
	require.NoError(t, err)
	_, err = db.Exec(script)
	require.NoError(t, err)

	assert.Equal(t, len(lib.RecordTypes), countRows(t, db, RecordTypesTable))
	assert.Equal(t, len(lib.Templates), countRows(t, db, TemplatesTable))

	var maxOrder int
	require.NoError(t, db.QueryRow("SELECT MAX(sort_order) FROM library_templates").Scan(&maxOrder))
	assert.Equal(t, (len(lib.Templates)-1)*SortStep, maxOrder)
}

func TestUpsertStatementsOnSQLite(t *testing.T) {
	db := openSQLite(t)
	ctx := context.Background()
	lib := fixtureLibrary()

	apply := func() {
		stmts, err := UpsertStatements(dialect.SQLite, lib)
		require.NoError(t, err)
		require.Len(t, stmts, 3)
		for _, s := range stmts {
			_, err := db.ExecContext(ctx, s.Query, s.Args...)
			require.NoError(t, err, s.Query)
		}
	}

	apply()
	lib.RecordTypes[0].Color = "#000000"
	apply()

	assert.Equal(t, 2, countRows(t, db, RecordTypesTable))
	assert.Equal(t, 3, countRows(t, db, TemplatesTable))

	var color string
	require.NoError(t, db.QueryRow("SELECT color FROM library_record_types WHERE id = ?", "property").Scan(&color))
	assert.Equal(t, "#000000", color)
}

func TestUpsertStatementsEmptyLibrary(t *testing.T) {
	stmts, err := UpsertStatements(dialect.Postgres, &library.Library{})
	require.NoError(t, err)
	assert.Empty(t, stmts)
}

func TestUpsertStatementsPostgresPlaceholders(t *testing.T) {
	stmts, err := UpsertStatements(dialect.Postgres, fixtureLibrary())
	require.NoError(t, err)
	require.Len(t, stmts, 3)

	assert.Contains(t, stmts[0].Query, `INSERT INTO "library_record_types"`)
	assert.Contains(t, stmts[0].Query, "$16")
	assert.Contains(t, stmts[0].Query, "ON CONFLICT")
	assert.Len(t, stmts[0].Args, 16)
	assert.Len(t, stmts[1].Args, 12)
}
