package legacy

import (
	"fmt"
	"regexp"

	"github.com/saurabh/starter-templates/library"
)

// RecordTypesExport is the name of the exported record type array.
const RecordTypesExport = "RECORD_TYPES"

var (
	exportArray = regexp.MustCompile(`export\s+const\s+([A-Z][A-Z0-9_]*)\s*(?::[^=]*)?=\s*\[`)
	spreadRef   = regexp.MustCompile(`\.\.\.\s*([A-Za-z_$][\w$]*)`)
	idLead      = regexp.MustCompile(`\{\s*id\s*:`)
	sectionLead = regexp.MustCompile(`\{\s*name\s*:`)
)

// exportedArrays returns the body of every "export const NAME = [ ... ]" in s
// keyed by NAME, in source order.
func exportedArrays(s span) (names []string, bodies map[string]span, warnings library.Warnings) {
	bodies = map[string]span{}
	for _, m := range exportArray.FindAllStringSubmatchIndex(s.masked, -1) {
		name := s.src[m[2]:m[3]]
		open := m[1] - 1
		closeAt := matchClose(s.masked, open)
		if closeAt < 0 {
			warnings.Add(name, "unterminated array")
			continue
		}
		names = append(names, name)
		bodies[name] = s.slice(open+1, closeAt)
	}
	return names, bodies, warnings
}

// ResolveSharedItems returns every exported upper-case item array of a
// definitions file, keyed by its name. The record type array is skipped.
func ResolveSharedItems(text string) (map[string][]library.Item, library.Warnings) {
	names, bodies, warnings := exportedArrays(newSpan(text))

	shared := make(map[string][]library.Item, len(names))
	for _, name := range names {
		if name == RecordTypesExport {
			continue
		}
		items, ws := parseItems(bodies[name])
		warnings.Merge(name, ws)
		shared[name] = items
	}
	return shared, warnings
}

// ParseRecordTypes parses the RECORD_TYPES array of text. A file without one
// yields no record types and no warning.
func ParseRecordTypes(text string) ([]library.RecordType, library.Warnings) {
	_, bodies, warnings := exportedArrays(newSpan(text))
	body, ok := bodies[RecordTypesExport]
	if !ok {
		return nil, warnings
	}

	objs, bad := body.objects(idLead)
	out := make([]library.RecordType, 0, len(objs))
	for i, obj := range objs {
		var ws library.Warnings
		r := fieldReader{obj: obj, warnings: &ws}
		rt := library.RecordType{
			ID:          r.str("id"),
			Name:        r.str("name"),
			Description: r.str("description"),
			Icon:        r.str("icon"),
			Color:       r.str("color"),
			Category:    library.Category(r.str("category")),
		}
		warnings.Merge(fmt.Sprintf("%s[%d]", RecordTypesExport, i), ws)
		out = append(out, rt)
	}
	if bad >= 0 {
		warnings.Add(RecordTypesExport, "unterminated record type object")
	}
	return out, warnings
}

// ParseTemplates parses every template object literal of text, expanding
// spreads against shared.
func ParseTemplates(text string, shared map[string][]library.Item) ([]library.Template, library.Warnings) {
	var warnings library.Warnings

	objs, bad := newSpan(text).objects(idLead)
	out := make([]library.Template, 0, len(objs))
	for i, obj := range objs {
		var ws library.Warnings
		r := fieldReader{obj: obj, warnings: &ws}
		tpl := library.Template{
			ID:           r.str("id"),
			Name:         r.str("name"),
			Description:  r.str("description"),
			RecordTypeID: r.str("record_type_id"),
		}

		path := fmt.Sprintf("templates[%d]", i)
		if tpl.ID != "" {
			path = fmt.Sprintf("templates[%s]", tpl.ID)
		}

		body, state := obj.arrayField("sections")
		switch state {
		case fieldOK:
			sections, sws := parseSections(body, shared)
			tpl.Sections = sections
			ws = append(ws, sws...)
		case fieldAbsent:
			ws.Add("sections", "missing sections")
		default:
			ws.Add("sections", "unreadable value")
		}

		warnings.Merge(path, ws)
		out = append(out, tpl)
	}
	if bad >= 0 {
		warnings.Add("", "unterminated template object")
	}
	return out, warnings
}

// ParseSections parses the section object literals of text.
func ParseSections(text string, shared map[string][]library.Item) ([]library.Section, library.Warnings) {
	return parseSections(newSpan(text), shared)
}

func parseSections(s span, shared map[string][]library.Item) ([]library.Section, library.Warnings) {
	var warnings library.Warnings

	objs, bad := s.objects(sectionLead)
	out := make([]library.Section, 0, len(objs))
	for i, obj := range objs {
		var ws library.Warnings
		r := fieldReader{obj: obj, warnings: &ws}
		sec := library.Section{Name: r.str("name")}

		body, state := obj.arrayField("items")
		switch state {
		case fieldOK:
			items, iws := sectionItems(body, shared)
			sec.Items = items
			ws = append(ws, iws...)
		case fieldAbsent:
			ws.Add("items", "missing items")
		default:
			ws.Add("items", "unreadable value")
		}

		warnings.Merge(fmt.Sprintf("sections[%d]", i), ws)
		out = append(out, sec)
	}
	if bad >= 0 {
		warnings.Add(fmt.Sprintf("sections[%d]", len(objs)), "unterminated section object")
	}
	return out, warnings
}

// sectionItems expands spread references first, then appends inline items.
// Interleaving in the source is not preserved.
func sectionItems(body span, shared map[string][]library.Item) ([]library.Item, library.Warnings) {
	var warnings library.Warnings
	var items []library.Item

	for _, m := range spreadRef.FindAllStringSubmatchIndex(body.masked, -1) {
		if depthAt(body.masked, m[0]) != 0 {
			continue
		}
		name := body.src[m[2]:m[3]]
		spread, ok := shared[name]
		if !ok {
			warnings.Add("items", "unknown shared item array %q", name)
			continue
		}
		items = append(items, spread...)
	}

	inline, ws := parseItems(body)
	warnings = append(warnings, ws...)
	return append(items, inline...), warnings
}
