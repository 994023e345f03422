package migration

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/saurabh/starter-templates/library"
)

const (
	RecordTypesTable = "library_record_types"
	TemplatesTable   = "library_templates"

	// SortStep is the gap between consecutive sort_order values.
	SortStep = 10
)

var (
	recordTypeColumns = []string{"id", "name", "name_singular", "description", "icon", "color", "sort_order", "fields"}
	templateColumns   = []string{"id", "name", "description", "record_type_id", "sections", "sort_order"}
)

// RecordTypeRow is one library_record_types row with JSON columns already encoded.
type RecordTypeRow struct {
	ID           string
	Name         string
	NameSingular string
	Description  string
	Icon         string
	Color        string
	SortOrder    int
	Fields       string
}

// Args returns the row values in column order.
func (r RecordTypeRow) Args() []interface{} {
	return []interface{}{r.ID, r.Name, r.NameSingular, r.Description, r.Icon, r.Color, r.SortOrder, r.Fields}
}

// SQLValues renders the row as the inside of a VALUES tuple.
func (r RecordTypeRow) SQLValues() string {
	return strings.Join([]string{
		QuoteString(r.ID),
		QuoteString(r.Name),
		QuoteString(r.NameSingular),
		QuoteString(r.Description),
		QuoteString(r.Icon),
		QuoteString(r.Color),
		strconv.Itoa(r.SortOrder),
		QuoteString(r.Fields),
	}, ", ")
}

// TemplateRow is one library_templates row.
type TemplateRow struct {
	ID           string
	Name         string
	Description  string
	RecordTypeID string
	Sections     string
	SortOrder    int
}

// Args returns the row values in column order.
func (r TemplateRow) Args() []interface{} {
	return []interface{}{r.ID, r.Name, r.Description, r.RecordTypeID, r.Sections, r.SortOrder}
}

// SQLValues renders the row as the inside of a VALUES tuple.
func (r TemplateRow) SQLValues() string {
	return strings.Join([]string{
		QuoteString(r.ID),
		QuoteString(r.Name),
		QuoteString(r.Description),
		QuoteString(r.RecordTypeID),
		QuoteString(r.Sections),
		strconv.Itoa(r.SortOrder),
	}, ", ")
}

// TemplateGroup holds the templates of one record type.
type TemplateGroup struct {
	RecordTypeID string
	Title        string
	Rows         []TemplateRow
}

// lastByID keeps only the last element for every id, in the order of those
// last occurrences. A batched Postgres upsert rejects a statement that touches
// the same row twice.
func lastByID[T any](items []T, id func(T) string) []T {
	last := make(map[string]int, len(items))
	for i, it := range items {
		last[id(it)] = i
	}
	if len(last) == len(items) {
		return items
	}
	out := make([]T, 0, len(last))
	for i, it := range items {
		if last[id(it)] == i {
			out = append(out, it)
		}
	}
	return out
}

// RecordTypeRows converts record types to rows; sort_order is index × SortStep.
// When ids repeat, the last definition wins.
func RecordTypeRows(rts []library.RecordType) ([]RecordTypeRow, error) {
	rts = lastByID(rts, func(rt library.RecordType) string { return rt.ID })
	rows := make([]RecordTypeRow, 0, len(rts))
	for i, rt := range rts {
		fields := rt.Fields
		if fields == nil {
			fields = []library.RecordField{}
		}
		encoded, err := MarshalJSON(fields)
		if err != nil {
			return nil, fmt.Errorf("failed to encode fields of record type %s: %w", rt.ID, err)
		}
		rows = append(rows, RecordTypeRow{
			ID:           rt.ID,
			Name:         rt.Name,
			NameSingular: Singularize(rt.Name),
			Description:  rt.Description,
			Icon:         rt.Icon,
			Color:        rt.Color,
			SortOrder:    i * SortStep,
			Fields:       encoded,
		})
	}
	return rows, nil
}

// GroupTemplates groups templates by record type, ordering groups by the first
// appearance of their record type and keeping source order inside a group.
func GroupTemplates(templates []library.Template) [][]library.Template {
	index := map[string]int{}
	var groups [][]library.Template
	for _, t := range templates {
		i, ok := index[t.RecordTypeID]
		if !ok {
			i = len(groups)
			index[t.RecordTypeID] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], t)
	}
	return groups
}

// TemplateGroups converts the library's templates into grouped rows. The
// sort_order of a template is its position in the grouped sequence × SortStep,
// so it runs on across group boundaries. When ids repeat, the last definition wins.
func TemplateGroups(lib *library.Library) ([]TemplateGroup, error) {
	grouped := GroupTemplates(lastByID(lib.Templates, func(t library.Template) string { return t.ID }))

	out := make([]TemplateGroup, 0, len(grouped))
	position := 0
	for _, templates := range grouped {
		group := TemplateGroup{
			RecordTypeID: templates[0].RecordTypeID,
			Title:        groupTitle(lib, templates[0].RecordTypeID),
		}
		for j, t := range templates {
			sections, err := sectionsJSON(t.Sections)
			if err != nil {
				return nil, fmt.Errorf("failed to encode sections of template %s: %w", t.ID, err)
			}
			group.Rows = append(group.Rows, TemplateRow{
				ID:           t.ID,
				Name:         t.Name,
				Description:  t.Description,
				RecordTypeID: t.RecordTypeID,
				Sections:     sections,
				SortOrder:    (position + j) * SortStep,
			})
		}
		position += len(templates)
		out = append(out, group)
	}
	return out, nil
}

func groupTitle(lib *library.Library, recordTypeID string) string {
	title := recordTypeID
	for i := len(lib.RecordTypes) - 1; i >= 0; i-- {
		if rt := lib.RecordTypes[i]; rt.ID == recordTypeID {
			if rt.Name != "" {
				title = rt.Name
			}
			break
		}
	}
	return strings.Join(strings.Fields(title), " ")
}

func sectionsJSON(sections []library.Section) (string, error) {
	out := make([]library.Section, len(sections))
	for i, s := range sections {
		if s.Items == nil {
			s.Items = []library.Item{}
		}
		out[i] = s
	}
	return MarshalJSON(out)
}
