package library

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	lib := &Library{
		RecordTypes: []RecordType{
			{ID: "property", Name: "Property", Category: CategoryIndustry},
			{ID: "property", Name: "Again", Category: "retail"},
		},
		Templates: []Template{
			{
				ID:           "t1",
				Name:         "One",
				RecordTypeID: "unknown",
				Sections: []Section{{
					Name: "Main",
					Items: []Item{
						{Label: "ok", ItemType: ItemText},
						{Label: "", ItemType: "hologram"},
						{Label: "choice", ItemType: ItemSelect},
						{Label: "range", ItemType: ItemNumber, Min: IntPtr(10), Max: IntPtr(1)},
					},
				}},
			},
			{ID: "t1", Name: "Dup", RecordTypeID: "property"},
		},
	}

	warnings := Validate(lib)
	var got []string
	for _, w := range warnings {
		got = append(got, w.String())
	}

	assert.ElementsMatch(t, []string{
		`record_types[1]: duplicate record type id "property"`,
		`record_types[1]: unknown category "retail"`,
		`templates[t1]: record_type_id "unknown" does not match any record type`,
		`templates[t1].sections[0].items[1]: missing label`,
		`templates[t1].sections[0].items[1]: unknown item_type "hologram"`,
		`templates[t1].sections[0].items[2]: select item has no options`,
		`templates[t1].sections[0].items[3]: min 10 is greater than max 1`,
		`templates[t1]: duplicate template id`,
		`templates[t1]: template has no sections`,
	}, got)
}

func TestWarningsErr(t *testing.T) {
	var ws Warnings
	assert.NoError(t, ws.Err())

	ws.Add("a", "first %d", 1)
	ws.Add("", "second")
	err := ws.Err()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "a: first 1")
	assert.Contains(t, err.Error(), "second")
}

func TestWarningsMergePrefix(t *testing.T) {
	var inner Warnings
	inner.Add("", "no path")
	inner.Add("label", "with path")

	var ws Warnings
	ws.Merge("items[2]", inner)
	require.Len(t, ws, 2)
	assert.Equal(t, "items[2]", ws[0].Path)
	assert.Equal(t, "items[2].label", ws[1].Path)
}

func TestItemTypeValid(t *testing.T) {
	assert.True(t, ItemPassFail.Valid())
	assert.True(t, ItemHeading.Valid())
	assert.False(t, ItemType("hologram").Valid())
	assert.True(t, ItemMultiSelect.NeedsOptions())
	assert.False(t, ItemText.NeedsOptions())
}
