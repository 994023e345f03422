package library

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"sort"

	"gopkg.in/yaml.v3"
)

// Document is one YAML document of a manifest file. A file may hold several
// documents separated by "---"; a manifest is their ordered concatenation.
type Document struct {
	SharedItems map[string][]Item `yaml:"shared_items,omitempty"`
	RecordTypes []RecordType      `yaml:"record_types,omitempty"`
	Templates   []TemplateEntry   `yaml:"templates,omitempty"`
}

// TemplateEntry is a template as written in a manifest, before spreads are expanded.
type TemplateEntry struct {
	ID           string         `yaml:"id"`
	Name         string         `yaml:"name"`
	Description  string         `yaml:"description"`
	RecordTypeID string         `yaml:"record_type_id"`
	Sections     []SectionEntry `yaml:"sections"`
}

// SectionEntry is a section as written in a manifest.
type SectionEntry struct {
	Name  string      `yaml:"name"`
	Items []ItemEntry `yaml:"items"`
}

// ItemEntry is either an inline item or a reference to a shared item array.
type ItemEntry struct {
	Spread string `yaml:"spread,omitempty"`
	Item   `yaml:",inline"`
}

// ResolveItems expands spread entries using shared. Every spread-sourced item
// is placed before every inline item, whatever their order in entries.
// Unknown spread names are dropped and reported.
func ResolveItems(entries []ItemEntry, shared map[string][]Item, path string) ([]Item, Warnings) {
	var warnings Warnings
	var spread, inline []Item

	for i, e := range entries {
		if e.Spread == "" {
			inline = append(inline, e.Item)
			continue
		}
		if !reflect.DeepEqual(e.Item, Item{}) {
			warnings.Add(fmt.Sprintf("%s.items[%d]", path, i), "spread %q also sets item fields; they are ignored", e.Spread)
		}
		items, ok := shared[e.Spread]
		if !ok {
			warnings.Add(fmt.Sprintf("%s.items[%d]", path, i), "unknown shared item array %q", e.Spread)
			continue
		}
		spread = append(spread, items...)
	}

	return append(spread, inline...), warnings
}

// Load decodes the named files from fsys in order and resolves them into a Library.
// Shared arrays from every file are visible to templates in every file.
func Load(fsys fs.FS, files []string) (*Library, Warnings, error) {
	var (
		names []string
		docs  []Document
	)
	for _, name := range files {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read manifest %s: %w", name, err)
		}
		decoded, err := decodeDocuments(data)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to decode manifest %s: %w", name, err)
		}
		for i, doc := range decoded {
			names = append(names, documentName(name, i))
			docs = append(docs, doc)
		}
	}

	lib, warnings := Resolve(names, docs)
	return lib, warnings, nil
}

// Resolve merges decoded documents into a Library. names labels each document in warnings.
func Resolve(names []string, docs []Document) (*Library, Warnings) {
	var warnings Warnings
	lib := &Library{SharedItems: map[string][]Item{}}

	for i, doc := range docs {
		for name, items := range doc.SharedItems {
			if _, exists := lib.SharedItems[name]; exists {
				warnings.Add(docName(names, i), "shared item array %q redefined", name)
			}
			lib.SharedItems[name] = items
		}
	}

	for i, doc := range docs {
		lib.RecordTypes = append(lib.RecordTypes, doc.RecordTypes...)
		for j, entry := range doc.Templates {
			tpl := Template{
				ID:           entry.ID,
				Name:         entry.Name,
				Description:  entry.Description,
				RecordTypeID: entry.RecordTypeID,
			}
			for k, sec := range entry.Sections {
				path := fmt.Sprintf("%s.templates[%d].sections[%d]", docName(names, i), j, k)
				items, ws := ResolveItems(sec.Items, lib.SharedItems, path)
				warnings = append(warnings, ws...)
				tpl.Sections = append(tpl.Sections, Section{Name: sec.Name, Items: items})
			}
			lib.Templates = append(lib.Templates, tpl)
		}
	}

	return lib, warnings
}

// LoadDir loads every *.yaml and *.yml file of dir in name order.
func LoadDir(dir string) (*Library, Warnings, error) {
	var files []string
	for _, pattern := range []string{"*.yaml", "*.yml"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, nil, err
		}
		for _, m := range matches {
			files = append(files, filepath.Base(m))
		}
	}
	if len(files) == 0 {
		return nil, nil, fmt.Errorf("no manifest files found in %s", dir)
	}
	sort.Strings(files)
	return Load(os.DirFS(dir), files)
}

// WriteManifest encodes lib as a single manifest document. Templates are
// written with their items already expanded.
func WriteManifest(w io.Writer, lib *Library) error {
	doc := Document{
		SharedItems: lib.SharedItems,
		RecordTypes: lib.RecordTypes,
	}
	for _, t := range lib.Templates {
		entry := TemplateEntry{
			ID:           t.ID,
			Name:         t.Name,
			Description:  t.Description,
			RecordTypeID: t.RecordTypeID,
		}
		for _, s := range t.Sections {
			sec := SectionEntry{Name: s.Name}
			for _, it := range s.Items {
				sec.Items = append(sec.Items, ItemEntry{Item: it})
			}
			entry.Sections = append(entry.Sections, sec)
		}
		doc.Templates = append(doc.Templates, entry)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}
	return enc.Close()
}

// decodeDocuments decodes every "---" separated document of a file in order.
func decodeDocuments(data []byte) ([]Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var docs []Document
	for {
		var doc Document
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			return docs, nil
		}
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", len(docs)+1, err)
		}
		docs = append(docs, doc)
	}
}

// documentName labels the i-th document of a file in warnings: "a.yaml",
// then "a.yaml#2", "a.yaml#3".
func documentName(file string, i int) string {
	if i == 0 {
		return file
	}
	return fmt.Sprintf("%s#%d", file, i+1)
}

func docName(names []string, i int) string {
	if i < len(names) {
		return names[i]
	}
	return fmt.Sprintf("document[%d]", i)
}
