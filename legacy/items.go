package legacy

import (
	"fmt"
	"regexp"

	"github.com/saurabh/starter-templates/library"
)

// labelLead opens both item objects and colored option objects.
var labelLead = regexp.MustCompile(`\{\s*label\s*:`)

// ParseItems parses every item object literal in text. Fields that are
// missing or cannot be read are left unset and reported as warnings.
func ParseItems(text string) ([]library.Item, library.Warnings) {
	return parseItems(newSpan(text))
}

func parseItems(s span) ([]library.Item, library.Warnings) {
	var warnings library.Warnings

	objs, bad := s.objects(labelLead)
	items := make([]library.Item, 0, len(objs))
	for i, obj := range objs {
		item, ws := parseItem(obj)
		warnings.Merge(fmt.Sprintf("items[%d]", i), ws)
		items = append(items, item)
	}
	if bad >= 0 {
		warnings.Add(fmt.Sprintf("items[%d]", len(objs)), "unterminated item object")
	}

	return items, warnings
}

func parseItem(obj span) (library.Item, library.Warnings) {
	var warnings library.Warnings
	var it library.Item

	r := fieldReader{obj: obj, warnings: &warnings}

	it.Label = r.str("label")
	it.ItemType = library.ItemType(r.str("item_type"))
	it.Photo = library.PhotoRule(r.str("photo"))
	it.UnitType = r.str("unit_type")
	it.Currency = r.str("currency")
	it.DefaultValue = r.str("default_value")
	it.Placeholder = r.str("placeholder")
	it.HelpText = r.str("help_text")
	it.Instructions = r.str("instructions")
	it.SignerRole = r.str("signer_role")
	it.DependsOn = r.str("depends_on")

	it.Required = r.boolean("required")
	it.AllowNA = r.boolean("allow_na")
	it.NotesEnabled = r.boolean("notes_enabled")
	it.Repeatable = r.boolean("repeatable")

	it.Min = r.integer("min")
	it.Max = r.integer("max")
	it.Step = r.integer("step")
	it.DecimalPlaces = r.integer("decimal_places")
	it.MaxLength = r.integer("max_length")
	it.MinPhotos = r.integer("min_photos")
	it.MaxPhotos = r.integer("max_photos")
	it.RatingMax = r.integer("rating_max")
	it.Weight = r.integer("weight")

	it.Options = r.list("options")
	it.FailValues = r.list("fail_values")
	it.ColoredOptions = r.coloredOptions("colored_options")

	if it.Label == "" {
		warnings.Add("", "missing label")
	}
	switch {
	case it.ItemType == "":
		warnings.Add("", "missing item_type")
	case !it.ItemType.Valid():
		warnings.Add("", "unknown item_type %q", it.ItemType)
	}

	return it, warnings
}

// fieldReader reads fields from one object and records unreadable ones.
type fieldReader struct {
	obj      span
	warnings *library.Warnings
}

func (r fieldReader) invalid(key string) {
	r.warnings.Add(key, "unreadable value")
}

func (r fieldReader) str(key string) string {
	v, state := r.obj.stringField(key)
	if state == fieldInvalid {
		r.invalid(key)
	}
	return v
}

func (r fieldReader) boolean(key string) bool {
	v, state := r.obj.boolField(key)
	if state == fieldInvalid {
		r.invalid(key)
	}
	return v
}

func (r fieldReader) integer(key string) *int {
	v, state := r.obj.intField(key)
	switch state {
	case fieldOK:
		return &v
	case fieldInvalid:
		r.invalid(key)
	}
	return nil
}

func (r fieldReader) list(key string) []string {
	v, state := r.obj.stringList(key)
	if state == fieldInvalid {
		r.invalid(key)
	}
	return v
}

func (r fieldReader) coloredOptions(key string) []library.ColoredOption {
	body, state := r.obj.arrayField(key)
	switch state {
	case fieldAbsent:
		return nil
	case fieldInvalid:
		r.invalid(key)
		return nil
	}

	objs, bad := body.objects(labelLead)
	opts := make([]library.ColoredOption, 0, len(objs))
	for i, obj := range objs {
		path := fmt.Sprintf("%s[%d]", key, i)
		label, ls := obj.stringField("label")
		color, cs := obj.stringField("color")
		if ls != fieldOK {
			r.warnings.Add(path, "missing label")
		}
		if cs != fieldOK {
			r.warnings.Add(path, "missing color")
		}
		opts = append(opts, library.ColoredOption{Label: label, Color: color})
	}
	if bad >= 0 {
		r.warnings.Add(key, "unterminated option object")
	}
	return opts
}
