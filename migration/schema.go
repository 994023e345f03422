package migration

// SchemaDDL creates the two library tables when they do not exist yet. The
// generated migrations assume these tables and only upsert rows. The DDL is
// accepted by both Postgres and SQLite.
const SchemaDDL = `CREATE TABLE IF NOT EXISTS library_record_types (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  name_singular TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  icon TEXT NOT NULL DEFAULT '',
  color TEXT NOT NULL DEFAULT '',
  sort_order INTEGER NOT NULL DEFAULT 0,
  fields JSONB NOT NULL DEFAULT '[]'
);

CREATE TABLE IF NOT EXISTS library_templates (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  record_type_id TEXT NOT NULL REFERENCES library_record_types (id),
  sections JSONB NOT NULL DEFAULT '[]',
  sort_order INTEGER NOT NULL DEFAULT 0
);
`
