package library

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Warning describes a problem in the source data that did not stop processing.
type Warning struct {
	Path    string
	Message string
}

func (w Warning) String() string {
	if w.Path == "" {
		return w.Message
	}
	return w.Path + ": " + w.Message
}

// Warnings is an ordered list of Warning.
type Warnings []Warning

// Add appends a formatted warning.
func (ws *Warnings) Add(path, format string, args ...interface{}) {
	*ws = append(*ws, Warning{Path: path, Message: fmt.Sprintf(format, args...)})
}

// Merge appends others, prefixing each path with prefix when non-empty.
func (ws *Warnings) Merge(prefix string, others Warnings) {
	for _, w := range others {
		if prefix != "" {
			if w.Path == "" {
				w.Path = prefix
			} else {
				w.Path = prefix + "." + w.Path
			}
		}
		*ws = append(*ws, w)
	}
}

// Err returns nil when there are no warnings, otherwise one error listing all of them.
func (ws Warnings) Err() error {
	var result *multierror.Error
	for _, w := range ws {
		result = multierror.Append(result, fmt.Errorf("%s", w.String()))
	}
	return result.ErrorOrNil()
}
