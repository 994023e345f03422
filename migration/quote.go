package migration

import (
	"bytes"
	"encoding/json"
	"strings"
)

// QuoteString returns s as a SQL string literal with single quotes doubled.
func QuoteString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// MarshalJSON encodes v without HTML escaping so that '<', '>' and '&' stay
// readable in the generated file.
func MarshalJSON(v interface{}) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// Singularize derives the singular display name of a record type. It strips
// one trailing "s" and then rewrites a trailing "ies" to "y", so "Facilities"
// becomes "Facilitie". Existing library rows depend on these exact values.
func Singularize(name string) string {
	s := strings.TrimSuffix(name, "s")
	if strings.HasSuffix(s, "ies") {
		s = strings.TrimSuffix(s, "ies") + "y"
	}
	return s
}
