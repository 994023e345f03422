package migration

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/saurabh/starter-templates/library"
)

const migrationTemplate = `-- Starter template library
-- Generated at {{.GeneratedAt}}
-- Record types: {{len .RecordTypes}}, templates: {{.TemplateCount}}

BEGIN;
{{if .RecordTypes}}
INSERT INTO {{.RecordTypesTable}} ({{join .RecordTypeColumns}})
VALUES
{{- range $i, $row := .RecordTypes}}{{if $i}},{{end}}
  ({{$row.SQLValues}})
{{- end}}
ON CONFLICT (id) DO UPDATE SET
{{updateSet .RecordTypeColumns}};
{{end}}
{{- range .Groups}}
-- {{.Title}} templates
INSERT INTO {{$.TemplatesTable}} ({{join $.TemplateColumns}})
VALUES
{{- range $i, $row := .Rows}}{{if $i}},{{end}}
  ({{$row.SQLValues}})
{{- end}}
ON CONFLICT (id) DO UPDATE SET
{{updateSet $.TemplateColumns}};
{{end}}
COMMIT;
`

var migrationTmpl = template.Must(template.New("migration").Funcs(template.FuncMap{
	"join":      func(cols []string) string { return strings.Join(cols, ", ") },
	"updateSet": updateSet,
}).Parse(migrationTemplate))

type migrationData struct {
	GeneratedAt       string
	RecordTypesTable  string
	TemplatesTable    string
	RecordTypeColumns []string
	TemplateColumns   []string
	RecordTypes       []RecordTypeRow
	Groups            []TemplateGroup
	TemplateCount     int
}

// Emit renders the library as one transactional SQL script that upserts every
// record type and template. Running the script twice leaves the same rows.
func Emit(lib *library.Library, generatedAt time.Time) (string, error) {
	recordTypes, err := RecordTypeRows(lib.RecordTypes)
	if err != nil {
		return "", err
	}
	groups, err := TemplateGroups(lib)
	if err != nil {
		return "", err
	}

	templateCount := 0
	for _, g := range groups {
		templateCount += len(g.Rows)
	}

	out, err := executeTemplate(migrationTmpl, migrationData{
		GeneratedAt:       generatedAt.UTC().Format(time.RFC3339),
		RecordTypesTable:  RecordTypesTable,
		TemplatesTable:    TemplatesTable,
		RecordTypeColumns: recordTypeColumns,
		TemplateColumns:   templateColumns,
		RecordTypes:       recordTypes,
		Groups:            groups,
		TemplateCount:     templateCount,
	})
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// updateSet lists every non-key column as "col = EXCLUDED.col".
func updateSet(cols []string) string {
	lines := make([]string, 0, len(cols))
	for _, c := range updateColumns(cols) {
		lines = append(lines, fmt.Sprintf("  %s = EXCLUDED.%s", c, c))
	}
	return strings.Join(lines, ",\n")
}

func updateColumns(cols []string) []string {
	out := make([]string, 0, len(cols))
	for _, c := range cols {
		if c != "id" {
			out = append(out, c)
		}
	}
	return out
}

func executeTemplate(tmpl *template.Template, data interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.Bytes(), nil
}
