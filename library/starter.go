package library

import (
	"embed"
	"io/fs"
)

//go:embed starter/*.yaml
var starterFS embed.FS

// StarterFiles is the load order of the built-in manifest.
var StarterFiles = []string{
	"record_types.yaml",
	"shared_items.yaml",
	"property.yaml",
	"construction.yaml",
	"food_safety.yaml",
	"facilities.yaml",
	"fire_safety.yaml",
}

// LoadStarter loads the built-in starter library.
func LoadStarter() (*Library, Warnings, error) {
	sub, err := fs.Sub(starterFS, "starter")
	if err != nil {
		return nil, nil, err
	}
	return Load(sub, StarterFiles)
}
