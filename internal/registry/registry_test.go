package registry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testDescriptors() []Descriptor {
	return []Descriptor{
		{ID: "gsso", Path: "data-standards/gsso.yaml", Format: FormatYAML, Tags: []string{"demographics", "reference"}},
		{ID: "school-codes", Path: "data-standards/school_codes.xml", Format: FormatXML, Tags: []string{"education"}},
		{ID: "country-codes", Path: "data-standards/countries.json", Format: FormatJSON, Tags: []string{"reference"}},
	}
}

func TestRegistry_List(t *testing.T) {
	reg, err := New(testDescriptors())
	require.NoError(t, err)

	list := reg.List()
	require.Len(t, list, 3)
	require.Equal(t, "gsso", list[0].ID)
	require.Equal(t, "school-codes", list[1].ID)
	require.Equal(t, "country-codes", list[2].ID)
}

func TestRegistry_Get(t *testing.T) {
	reg, err := New(testDescriptors())
	require.NoError(t, err)

	desc, err := reg.Get("school-codes")
	require.NoError(t, err)
	require.Equal(t, "data-standards/school_codes.xml", desc.Path)

	_, err = reg.Get("nope")
	require.ErrorIs(t, err, ErrNotFound)
	require.Contains(t, err.Error(), "nope", "not-found error should name the identifier")
}

func TestRegistry_WithTag(t *testing.T) {
	reg, err := New(testDescriptors())
	require.NoError(t, err)

	refs := reg.WithTag("reference")
	require.Len(t, refs, 2)
	require.Equal(t, "gsso", refs[0].ID, "tag filter should preserve manifest order")
	require.Equal(t, "country-codes", refs[1].ID)

	require.Empty(t, reg.WithTag("missing-tag"))
}

func TestRegistry_Tags(t *testing.T) {
	reg, err := New(testDescriptors())
	require.NoError(t, err)

	require.Equal(t, []string{"demographics", "education", "reference"}, reg.Tags())
}

func TestRegistry_Tags_Empty(t *testing.T) {
	reg, err := New(nil)
	require.NoError(t, err)
	require.Empty(t, reg.Tags())
	require.Zero(t, reg.Len())
}

func TestNew_DuplicateID(t *testing.T) {
	_, err := New([]Descriptor{
		{ID: "gsso", Path: "a.yaml", Format: FormatYAML},
		{ID: "gsso", Path: "b.yaml", Format: FormatYAML},
	})
	require.ErrorIs(t, err, ErrDuplicateID)
}

func TestDescriptor_HasTag(t *testing.T) {
	desc := Descriptor{ID: "gsso", Tags: []string{"demographics", "reference"}}
	require.True(t, desc.HasTag("reference"))
	require.False(t, desc.HasTag("education"))
	require.False(t, Descriptor{}.HasTag("anything"))
}

func TestDescriptor_DisplayTitle(t *testing.T) {
	withTitle := Descriptor{ID: "gsso", Title: "Gender, Sex and Sexual Orientation"}
	require.Equal(t, "Gender, Sex and Sexual Orientation", withTitle.DisplayTitle())

	bare := Descriptor{ID: "gsso"}
	require.Equal(t, "gsso", bare.DisplayTitle())
}
