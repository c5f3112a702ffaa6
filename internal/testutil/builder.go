// Package testutil provides test utilities for registry fixture setup.
package testutil

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// Builder accumulates standards and materializes them as a registry fixture:
// one manifest plus one data file per standard.
type Builder struct {
	t            *testing.T
	manifestPath string
	standards    []standardData
}

// NewBuilder creates a builder for registry fixtures.
func NewBuilder(t *testing.T) *Builder {
	t.Helper()
	return &Builder{t: t, manifestPath: "registry.yaml"}
}

// ManifestPath overrides where the manifest is written. Default registry.yaml.
func (b *Builder) ManifestPath(path string) *Builder {
	b.manifestPath = path
	return b
}

// WithStandard adds a standard with optional configuration.
func (b *Builder) WithStandard(id string, opts ...StandardOption) *Builder {
	std := defaultStandard(id)
	for _, opt := range opts {
		opt(&std)
	}
	b.standards = append(b.standards, std)
	return b
}

// Build renders all accumulated standards into an in-memory filesystem.
func (b *Builder) Build() fstest.MapFS {
	b.t.Helper()
	fsys := fstest.MapFS{}
	for path, content := range b.files() {
		fsys[path] = &fstest.MapFile{Data: content}
	}
	return fsys
}

// BuildDir renders all accumulated standards under a fresh temporary
// directory and returns its path. CLI-level tests need a real directory;
// everything else can stay on the filesystem from Build.
func (b *Builder) BuildDir() string {
	b.t.Helper()
	dir := b.t.TempDir()
	for path, content := range b.files() {
		full := filepath.Join(dir, filepath.FromSlash(path))
		require.NoError(b.t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(b.t, os.WriteFile(full, content, 0o644))
	}
	return dir
}

// files renders in fixture order: manifest first, then one data file per
// standard that has one.
func (b *Builder) files() map[string][]byte {
	b.t.Helper()
	files := map[string][]byte{
		b.manifestPath: b.renderManifest(),
	}
	for _, std := range b.standards {
		if std.omitData {
			continue
		}
		files[std.resolvedPath()] = b.renderData(std)
	}
	return files
}

// manifestEntry mirrors the manifest schema: the standard id is the mapping
// key, everything else lives in the entry body.
type manifestEntry struct {
	Version     string       `yaml:"version,omitempty"`
	Maintainer  string       `yaml:"maintainer,omitempty"`
	Title       string       `yaml:"title,omitempty"`
	Description string       `yaml:"description,omitempty"`
	Path        string       `yaml:"path"`
	Format      string       `yaml:"format"`
	LastUpdated string       `yaml:"last_updated,omitempty"`
	Tags        []string     `yaml:"tags,omitempty"`
	Source      *sourceEntry `yaml:"source,omitempty"`
}

type sourceEntry struct {
	Name string `yaml:"name,omitempty"`
	URL  string `yaml:"url,omitempty"`
}

// renderManifest encodes through a mapping node so entries keep the order
// standards were added in; manifest order is load-bearing for listings.
func (b *Builder) renderManifest() []byte {
	b.t.Helper()
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, std := range b.standards {
		entry := manifestEntry{
			Version:     std.version,
			Maintainer:  std.maintainer,
			Title:       std.title,
			Description: std.description,
			Path:        std.resolvedPath(),
			Format:      std.format,
			LastUpdated: std.lastUpdated,
			Tags:        std.tags,
			Source:      std.source,
		}
		var value yaml.Node
		require.NoError(b.t, value.Encode(entry))
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: std.id},
			&value,
		)
	}
	out, err := yaml.Marshal(root)
	require.NoError(b.t, err)
	return out
}

// renderData produces the standard's data file in its declared format.
// Raw content wins over structured records.
func (b *Builder) renderData(std standardData) []byte {
	b.t.Helper()
	if std.raw != nil {
		return std.raw
	}
	switch std.format {
	case "yaml":
		return b.renderYAML(std.records)
	case "json":
		return b.renderJSON(std.records)
	case "xml":
		return b.renderXML(std.records)
	default:
		b.t.Fatalf("no renderer for format %q; use RawData", std.format)
		return nil
	}
}

func (b *Builder) renderYAML(recs [][]FieldData) []byte {
	b.t.Helper()
	seq := &yaml.Node{Kind: yaml.SequenceNode}
	for _, rec := range recs {
		m := &yaml.Node{Kind: yaml.MappingNode}
		for _, f := range rec {
			var value yaml.Node
			require.NoError(b.t, value.Encode(f.Value))
			m.Content = append(m.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Value: f.Key},
				&value,
			)
		}
		seq.Content = append(seq.Content, m)
	}
	out, err := yaml.Marshal(seq)
	require.NoError(b.t, err)
	return out
}

// renderJSON writes objects by hand; json.Marshal on a map would sort the
// keys and lose field order.
func (b *Builder) renderJSON(recs [][]FieldData) []byte {
	b.t.Helper()
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, rec := range recs {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('{')
		for j, f := range rec {
			if j > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(f.Key)
			require.NoError(b.t, err)
			value, err := json.Marshal(f.Value)
			require.NoError(b.t, err)
			buf.Write(key)
			buf.WriteByte(':')
			buf.Write(value)
		}
		buf.WriteByte('}')
	}
	buf.WriteByte(']')
	return buf.Bytes()
}

// renderXML emits one <record> element per record under a <standard>
// document element. Field keys must be valid element names.
func (b *Builder) renderXML(recs [][]FieldData) []byte {
	b.t.Helper()
	var buf bytes.Buffer
	buf.WriteString("<standard>\n")
	for _, rec := range recs {
		buf.WriteString("  <record>\n")
		for _, f := range rec {
			buf.WriteString("    <" + f.Key + ">")
			require.NoError(b.t, xml.EscapeText(&buf, []byte(fmt.Sprint(f.Value))))
			buf.WriteString("</" + f.Key + ">\n")
		}
		buf.WriteString("  </record>\n")
	}
	buf.WriteString("</standard>\n")
	return buf.Bytes()
}
