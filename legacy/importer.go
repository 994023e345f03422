package legacy

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/saurabh/starter-templates/library"
	"github.com/saurabh/starter-templates/pkg/logger"
)

// Source names the legacy definition files to import.
type Source struct {
	Dir           string
	TypesFile     string
	TemplateFiles []string
}

// Importer turns a directory of legacy definition files into a Library.
type Importer struct {
	src Source
}

// NewImporter creates an importer for src.
func NewImporter(src Source) *Importer {
	return &Importer{src: src}
}

// Import reads the types file and every template file, then parses them.
// Files are read concurrently; parsing and merging follow the configured
// order. A missing or unreadable file fails the whole import.
func (im *Importer) Import(ctx context.Context) (*library.Library, library.Warnings, error) {
	files := append([]string{im.src.TypesFile}, im.src.TemplateFiles...)
	texts := make([]string, len(files))

	g, ctx := errgroup.WithContext(ctx)
	for i, name := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			path := filepath.Join(im.src.Dir, name)
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}
			texts[i] = string(data)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	var warnings library.Warnings
	lib := &library.Library{}

	shared, ws := ResolveSharedItems(texts[0])
	warnings.Merge(im.src.TypesFile, ws)
	lib.SharedItems = shared

	recordTypes, ws := ParseRecordTypes(texts[0])
	warnings.Merge(im.src.TypesFile, ws)
	lib.RecordTypes = recordTypes

	logger.WithFields(map[string]interface{}{
		"file":          im.src.TypesFile,
		"shared_arrays": len(shared),
		"record_types":  len(recordTypes),
	}).Debug("Parsed legacy types file")

	for i, name := range im.src.TemplateFiles {
		templates, ws := ParseTemplates(texts[i+1], shared)
		warnings.Merge(name, ws)
		lib.Templates = append(lib.Templates, templates...)

		logger.WithFields(map[string]interface{}{
			"file":      name,
			"templates": len(templates),
		}).Debug("Parsed legacy template file")
	}

	return lib, warnings, nil
}
