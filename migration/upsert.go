package migration

import (
	entsql "entgo.io/ent/dialect/sql"

	"github.com/saurabh/starter-templates/library"
)

// Statement is a parameterized query ready for a driver.
type Statement struct {
	Query string
	Args  []interface{}
}

// UpsertStatements builds the same upserts as Emit, as bound statements for
// the given ent dialect: one for the record types and one per template group.
func UpsertStatements(dialectName string, lib *library.Library) ([]Statement, error) {
	recordTypes, err := RecordTypeRows(lib.RecordTypes)
	if err != nil {
		return nil, err
	}
	groups, err := TemplateGroups(lib)
	if err != nil {
		return nil, err
	}

	var stmts []Statement
	if len(recordTypes) > 0 {
		insert := entsql.Dialect(dialectName).Insert(RecordTypesTable).Columns(recordTypeColumns...)
		for _, row := range recordTypes {
			insert.Values(row.Args()...)
		}
		stmts = append(stmts, upsert(insert, recordTypeColumns))
	}

	for _, g := range groups {
		insert := entsql.Dialect(dialectName).Insert(TemplatesTable).Columns(templateColumns...)
		for _, row := range g.Rows {
			insert.Values(row.Args()...)
		}
		stmts = append(stmts, upsert(insert, templateColumns))
	}
	return stmts, nil
}

func upsert(insert *entsql.InsertBuilder, cols []string) Statement {
	insert.OnConflict(
		entsql.ConflictColumns("id"),
		entsql.ResolveWith(func(u *entsql.UpdateSet) {
			for _, c := range updateColumns(cols) {
				u.SetExcluded(c)
			}
		}),
	)
	query, args := insert.Query()
	return Statement{Query: query, Args: args}
}
