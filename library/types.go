package library

// Category groups record types in the library picker.
type Category string

const (
	CategoryIndustry   Category = "industry"
	CategoryCompliance Category = "compliance"
)

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	return c == CategoryIndustry || c == CategoryCompliance
}

// RecordField is a custom field attached to every record of a record type.
type RecordField struct {
	Name     string `yaml:"name" json:"name"`
	Label    string `yaml:"label" json:"label"`
	Type     string `yaml:"type" json:"type"`
	Required bool   `yaml:"required,omitempty" json:"required,omitempty"`
}

// RecordType is an inspection category such as "Property" or "Food Safety".
type RecordType struct {
	ID          string        `yaml:"id" json:"id"`
	Name        string        `yaml:"name" json:"name"`
	Description string        `yaml:"description" json:"description"`
	Icon        string        `yaml:"icon" json:"icon"`
	Color       string        `yaml:"color" json:"color"`
	Category    Category      `yaml:"category" json:"category"`
	Fields      []RecordField `yaml:"fields,omitempty" json:"fields,omitempty"`
}

// Template is a named, ordered collection of sections belonging to one record type.
type Template struct {
	ID           string    `yaml:"id" json:"id"`
	Name         string    `yaml:"name" json:"name"`
	Description  string    `yaml:"description" json:"description"`
	RecordTypeID string    `yaml:"record_type_id" json:"record_type_id"`
	Sections     []Section `yaml:"sections" json:"sections"`
}

// Section is a named group of items inside a template.
type Section struct {
	Name  string `yaml:"name" json:"name"`
	Items []Item `yaml:"items" json:"items"`
}

// PhotoRule says when an item asks for a photo.
type PhotoRule string

const (
	PhotoNever    PhotoRule = "never"
	PhotoOptional PhotoRule = "optional"
	PhotoRequired PhotoRule = "required"
	PhotoOnFail   PhotoRule = "on_fail"
)

// Valid reports whether p is a known photo rule.
func (p PhotoRule) Valid() bool {
	switch p {
	case PhotoNever, PhotoOptional, PhotoRequired, PhotoOnFail:
		return true
	}
	return false
}

// ColoredOption is a choice rendered with its own badge color.
type ColoredOption struct {
	Label string `yaml:"label" json:"label"`
	Color string `yaml:"color" json:"color"`
}

// Item is a single question in a section. Only Label and ItemType are
// mandatory; every modifier is omitted from the encoded JSON when unset.
type Item struct {
	Label    string   `yaml:"label" json:"label"`
	ItemType ItemType `yaml:"item_type" json:"item_type"`

	Required       bool            `yaml:"required,omitempty" json:"required,omitempty"`
	Photo          PhotoRule       `yaml:"photo,omitempty" json:"photo,omitempty"`
	Options        []string        `yaml:"options,omitempty" json:"options,omitempty"`
	ColoredOptions []ColoredOption `yaml:"colored_options,omitempty" json:"colored_options,omitempty"`
	Min            *int            `yaml:"min,omitempty" json:"min,omitempty"`
	Max            *int            `yaml:"max,omitempty" json:"max,omitempty"`
	Step           *int            `yaml:"step,omitempty" json:"step,omitempty"`
	DecimalPlaces  *int            `yaml:"decimal_places,omitempty" json:"decimal_places,omitempty"`
	UnitType       string          `yaml:"unit_type,omitempty" json:"unit_type,omitempty"`
	Currency       string          `yaml:"currency,omitempty" json:"currency,omitempty"`
	DefaultValue   string          `yaml:"default_value,omitempty" json:"default_value,omitempty"`
	Placeholder    string          `yaml:"placeholder,omitempty" json:"placeholder,omitempty"`
	HelpText       string          `yaml:"help_text,omitempty" json:"help_text,omitempty"`
	Instructions   string          `yaml:"instructions,omitempty" json:"instructions,omitempty"`
	MaxLength      *int            `yaml:"max_length,omitempty" json:"max_length,omitempty"`
	MinPhotos      *int            `yaml:"min_photos,omitempty" json:"min_photos,omitempty"`
	MaxPhotos      *int            `yaml:"max_photos,omitempty" json:"max_photos,omitempty"`
	RatingMax      *int            `yaml:"rating_max,omitempty" json:"rating_max,omitempty"`
	AllowNA        bool            `yaml:"allow_na,omitempty" json:"allow_na,omitempty"`
	NotesEnabled   bool            `yaml:"notes_enabled,omitempty" json:"notes_enabled,omitempty"`
	FailValues     []string        `yaml:"fail_values,omitempty" json:"fail_values,omitempty"`
	Weight         *int            `yaml:"weight,omitempty" json:"weight,omitempty"`
	SignerRole     string          `yaml:"signer_role,omitempty" json:"signer_role,omitempty"`
	DependsOn      string          `yaml:"depends_on,omitempty" json:"depends_on,omitempty"`
	Repeatable     bool            `yaml:"repeatable,omitempty" json:"repeatable,omitempty"`
}

// Library is a fully resolved template library: spreads are already expanded.
type Library struct {
	RecordTypes []RecordType
	Templates   []Template
	SharedItems map[string][]Item
}

// RecordType returns the record type with the given id.
func (l *Library) RecordType(id string) (RecordType, bool) {
	for _, rt := range l.RecordTypes {
		if rt.ID == id {
			return rt, true
		}
	}
	return RecordType{}, false
}

// ItemCount returns the number of items across all templates.
func (l *Library) ItemCount() int {
	n := 0
	for _, t := range l.Templates {
		for _, s := range t.Sections {
			n += len(s.Items)
		}
	}
	return n
}

// IntPtr returns a pointer to v.
func IntPtr(v int) *int {
	return &v
}
