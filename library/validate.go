package library

import "fmt"

// Validate checks the library for problems that the destination database
// would either reject or silently accept. It never modifies lib.
func Validate(lib *Library) Warnings {
	var warnings Warnings

	recordTypes := make(map[string]bool, len(lib.RecordTypes))
	for i, rt := range lib.RecordTypes {
		path := fmt.Sprintf("record_types[%d]", i)
		if rt.ID == "" {
			warnings.Add(path, "missing id")
		} else if recordTypes[rt.ID] {
			warnings.Add(path, "duplicate record type id %q", rt.ID)
		}
		recordTypes[rt.ID] = true
		if rt.Name == "" {
			warnings.Add(path, "missing name")
		}
		if !rt.Category.Valid() {
			warnings.Add(path, "unknown category %q", rt.Category)
		}
	}

	templates := make(map[string]bool, len(lib.Templates))
	for i, t := range lib.Templates {
		path := fmt.Sprintf("templates[%d]", i)
		if t.ID != "" {
			path = fmt.Sprintf("templates[%s]", t.ID)
		}
		switch {
		case t.ID == "":
			warnings.Add(path, "missing id")
		case templates[t.ID]:
			warnings.Add(path, "duplicate template id")
		}
		templates[t.ID] = true
		if t.Name == "" {
			warnings.Add(path, "missing name")
		}
		if t.RecordTypeID == "" {
			warnings.Add(path, "missing record_type_id")
		} else if !recordTypes[t.RecordTypeID] {
			warnings.Add(path, "record_type_id %q does not match any record type", t.RecordTypeID)
		}
		if len(t.Sections) == 0 {
			warnings.Add(path, "template has no sections")
		}
		for j, s := range t.Sections {
			spath := fmt.Sprintf("%s.sections[%d]", path, j)
			if s.Name == "" {
				warnings.Add(spath, "missing name")
			}
			for k, it := range s.Items {
				warnings.Merge(fmt.Sprintf("%s.items[%d]", spath, k), ValidateItem(it))
			}
		}
	}

	return warnings
}

// ValidateItem checks a single item.
func ValidateItem(it Item) Warnings {
	var warnings Warnings
	if it.Label == "" {
		warnings.Add("", "missing label")
	}
	switch {
	case it.ItemType == "":
		warnings.Add("", "missing item_type")
	case !it.ItemType.Valid():
		warnings.Add("", "unknown item_type %q", it.ItemType)
	}
	if it.ItemType.NeedsOptions() && len(it.Options) == 0 {
		warnings.Add("", "%s item has no options", it.ItemType)
	}
	if it.ItemType == ItemColoredSelect && len(it.ColoredOptions) == 0 {
		warnings.Add("", "colored_select item has no colored_options")
	}
	if it.Photo != "" && !it.Photo.Valid() {
		warnings.Add("", "unknown photo rule %q", it.Photo)
	}
	if it.Min != nil && it.Max != nil && *it.Min > *it.Max {
		warnings.Add("", "min %d is greater than max %d", *it.Min, *it.Max)
	}
	if it.MinPhotos != nil && it.MaxPhotos != nil && *it.MinPhotos > *it.MaxPhotos {
		warnings.Add("", "min_photos %d is greater than max_photos %d", *it.MinPhotos, *it.MaxPhotos)
	}
	return warnings
}
