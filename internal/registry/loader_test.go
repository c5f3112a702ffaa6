package registry

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// manifestFS wraps YAML content in a filesystem rooted like a registry
// checkout, with the manifest at registry.yaml.
func manifestFS(yamlContent string) fstest.MapFS {
	return fstest.MapFS{
		"registry.yaml": &fstest.MapFile{
			Data: []byte(yamlContent),
		},
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantIDs     []string
		wantErr     bool
		errContains string
	}{
		{
			name: "valid single standard",
			yamlContent: `
gsso:
  version: "1.0.0"
  maintainer: "WDG"
  path: data-standards/gsso.yaml
  format: yaml
`,
			wantIDs: []string{"gsso"},
		},
		{
			name: "multiple standards in manifest order",
			yamlContent: `
school-codes:
  path: data-standards/school_codes.xml
  format: xml
gsso:
  path: data-standards/gsso.yaml
  format: yaml
country-codes:
  path: data-standards/countries.json
  format: json
`,
			wantIDs: []string{"school-codes", "gsso", "country-codes"},
		},
		{
			name: "entry with all optional metadata",
			yamlContent: `
gsso:
  version: "1.1.0"
  maintainer: "WDG Data Office"
  path: data-standards/gsso.yaml
  format: yaml
  title: "Gender, Sex and Sexual Orientation"
  description: "Reference codes for GSSO data collection."
  last_updated: "2024-05-01"
  tags:
    - demographics
    - reference
  source:
    name: "Statistics Canada"
    url: "https://example.org/gsso"
`,
			wantIDs: []string{"gsso"},
		},
		{
			name:        "empty mapping yields empty registry",
			yamlContent: `{}`,
			wantIDs:     []string{},
		},
		{
			name: "format is case-normalized",
			yamlContent: `
gsso:
  path: data-standards/gsso.yaml
  format: YAML
`,
			wantIDs: []string{"gsso"},
		},
		{
			name: "unrecognized format is accepted at manifest level",
			yamlContent: `
legacy:
  path: data-standards/legacy.csv
  format: csv
`,
			wantIDs: []string{"legacy"},
		},
		{
			name: "missing path",
			yamlContent: `
gsso:
  version: "1.0.0"
  format: yaml
`,
			wantErr:     true,
			errContains: `missing required field "path"`,
		},
		{
			name: "missing format",
			yamlContent: `
gsso:
  version: "1.0.0"
  path: data-standards/gsso.yaml
`,
			wantErr:     true,
			errContains: `missing required field "format"`,
		},
		{
			name: "schema error names the offending identifier",
			yamlContent: `
good:
  path: data-standards/good.yaml
  format: yaml
broken-entry:
  version: "1.0.0"
  format: yaml
`,
			wantErr:     true,
			errContains: "broken-entry",
		},
		{
			name: "entry is not a mapping",
			yamlContent: `
gsso: just a string
`,
			wantErr:     true,
			errContains: "entry must be a mapping",
		},
		{
			name: "root is a sequence",
			yamlContent: `
- gsso
- school-codes
`,
			wantErr:     true,
			errContains: "root must be a mapping",
		},
		{
			name:        "empty file",
			yamlContent: "",
			wantErr:     true,
			errContains: "root must be a mapping",
		},
		{
			name: "tags must be a sequence",
			yamlContent: `
gsso:
  path: data-standards/gsso.yaml
  format: yaml
  tags: demographics
`,
			wantErr:     true,
			errContains: "invalid entry",
		},
		{
			name: "invalid YAML syntax",
			yamlContent: `
gsso:
  path: [unclosed
`,
			wantErr:     true,
			errContains: "parse manifest",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := manifestFS(tt.yamlContent)

			descriptors, err := Load(fsys, "registry.yaml")

			if tt.wantErr {
				require.Error(t, err, "Load() expected error containing %q", tt.errContains)
				require.Contains(t, strings.ToLower(err.Error()), strings.ToLower(tt.errContains),
					"Load() error = %q, want error containing %q", err.Error(), tt.errContains)
				return
			}

			require.NoError(t, err, "Load() unexpected error")
			ids := make([]string, len(descriptors))
			for i, desc := range descriptors {
				ids[i] = desc.ID
			}
			require.Equal(t, tt.wantIDs, ids, "Load() descriptor order mismatch")
		})
	}
}

func TestLoad_ManifestNotFound(t *testing.T) {
	fsys := fstest.MapFS{}

	_, err := Load(fsys, "registry.yaml")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrManifestNotFound, "missing manifest should match ErrManifestNotFound")
	require.Contains(t, err.Error(), "registry.yaml", "error should name the manifest path")
}

func TestLoad_ParseErrorType(t *testing.T) {
	fsys := manifestFS("gsso:\n  path: [unclosed\n")

	_, err := Load(fsys, "registry.yaml")
	require.Error(t, err)

	var parseErr *ManifestParseError
	require.ErrorAs(t, err, &parseErr, "syntax failure should be a ManifestParseError")
	require.Equal(t, "registry.yaml", parseErr.Path)
	require.Error(t, parseErr.Unwrap(), "parse error should wrap the yaml error")
}

func TestLoad_SchemaErrorType(t *testing.T) {
	fsys := manifestFS("gsso:\n  format: yaml\n")

	_, err := Load(fsys, "registry.yaml")
	require.Error(t, err)

	var schemaErr *ManifestSchemaError
	require.ErrorAs(t, err, &schemaErr, "missing path should be a ManifestSchemaError")
	require.Equal(t, "gsso", schemaErr.ID, "schema error should name the offending identifier")
}

func TestLoad_DuplicateIdentifier(t *testing.T) {
	// yaml.v3 leaves duplicate mapping keys to the caller when decoding to a
	// node tree, so the loader has to catch them itself.
	fsys := manifestFS(`
gsso:
  path: data-standards/gsso.yaml
  format: yaml
gsso:
  path: data-standards/gsso2.yaml
  format: yaml
`)

	_, err := Load(fsys, "registry.yaml")
	require.Error(t, err)

	var schemaErr *ManifestSchemaError
	require.ErrorAs(t, err, &schemaErr)
	require.Equal(t, "gsso", schemaErr.ID)
	require.Contains(t, err.Error(), "duplicate", "duplicate id should be reported as such")
}

func TestLoad_DescriptorDetails(t *testing.T) {
	fsys := manifestFS(`
gsso:
  version: "1.1.0"
  maintainer: "WDG Data Office"
  path: data-standards/gsso.yaml
  format: yaml
  title: "Gender, Sex and Sexual Orientation"
  description: "Reference codes for GSSO data collection."
  last_updated: "2024-05-01"
  tags:
    - demographics
  source:
    name: "Statistics Canada"
    url: "https://example.org/gsso"
`)

	descriptors, err := Load(fsys, "registry.yaml")
	require.NoError(t, err)
	require.Len(t, descriptors, 1)

	desc := descriptors[0]
	require.Equal(t, "gsso", desc.ID)
	require.Equal(t, "1.1.0", desc.Version)
	require.Equal(t, "WDG Data Office", desc.Maintainer)
	require.Equal(t, "data-standards/gsso.yaml", desc.Path)
	require.Equal(t, FormatYAML, desc.Format)
	require.Equal(t, "Gender, Sex and Sexual Orientation", desc.Title)
	require.Equal(t, "Reference codes for GSSO data collection.", desc.Description)
	require.Equal(t, "2024-05-01", desc.LastUpdated)
	require.Equal(t, []string{"demographics"}, desc.Tags)
	require.NotNil(t, desc.Source)
	require.Equal(t, "Statistics Canada", desc.Source.Name)
	require.Equal(t, "https://example.org/gsso", desc.Source.URL)
}

func TestLoad_MinimalDescriptorDefaults(t *testing.T) {
	fsys := manifestFS(`
bare:
  path: data-standards/bare.json
  format: json
`)

	descriptors, err := Load(fsys, "registry.yaml")
	require.NoError(t, err)
	require.Len(t, descriptors, 1)

	desc := descriptors[0]
	require.Empty(t, desc.Version)
	require.Empty(t, desc.Maintainer)
	require.Empty(t, desc.Tags)
	require.Nil(t, desc.Source)
	require.Equal(t, "bare", desc.DisplayTitle(), "title falls back to the identifier")
}

// TestLoad_OrderProperty is a property-based test using rapid. For any valid
// manifest, descriptors come back one per entry, in entry order.
func TestLoad_OrderProperty(t *testing.T) {
	idGen := rapid.StringMatching(`[a-z][a-z0-9-]{0,11}`)
	rapid.Check(t, func(r *rapid.T) {
		ids := rapid.SliceOfNDistinct(idGen, 1, 8, rapid.ID[string]).Draw(r, "ids")

		var sb strings.Builder
		for _, id := range ids {
			fmt.Fprintf(&sb, "%s:\n  path: data-standards/%s.yaml\n  format: yaml\n", id, id)
		}
		fsys := manifestFS(sb.String())

		descriptors, err := Load(fsys, "registry.yaml")
		if err != nil {
			r.Fatalf("Load failed: %v", err)
		}
		if len(descriptors) != len(ids) {
			r.Fatalf("got %d descriptors, want %d", len(descriptors), len(ids))
		}
		for i, id := range ids {
			if descriptors[i].ID != id {
				r.Fatalf("descriptor %d: got id %q, want %q", i, descriptors[i].ID, id)
			}
		}
	})
}

func TestLoadRegistry(t *testing.T) {
	fsys := manifestFS(`
gsso:
  path: data-standards/gsso.yaml
  format: yaml
school-codes:
  path: data-standards/school_codes.xml
  format: xml
`)

	reg, err := LoadRegistry(fsys, "registry.yaml")
	require.NoError(t, err)
	require.Equal(t, 2, reg.Len())

	desc, err := reg.Get("school-codes")
	require.NoError(t, err)
	require.Equal(t, FormatXML, desc.Format)
}

func TestLoadRegistry_PropagatesLoadErrors(t *testing.T) {
	_, err := LoadRegistry(fstest.MapFS{}, "registry.yaml")
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrManifestNotFound))
}
