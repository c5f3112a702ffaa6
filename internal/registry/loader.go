package registry

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads a registry manifest and returns its descriptors in manifest
// order. fsys is rooted at the registry directory, so data file paths inside
// the returned descriptors resolve against the same filesystem.
//
// Load never touches the data files themselves. Required fields are path and
// format; format values are lowercased but not otherwise validated here, so
// an unrecognized format fails at data load time for that one standard
// instead of failing the whole manifest.
func Load(fsys fs.FS, manifestPath string) ([]Descriptor, error) {
	content, err := fs.ReadFile(fsys, manifestPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrManifestNotFound, manifestPath)
		}
		return nil, fmt.Errorf("read manifest %s: %w", manifestPath, err)
	}

	// Decode to a node tree first: plain map decoding would lose the
	// manifest's entry order.
	var doc yaml.Node
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, &ManifestParseError{Path: manifestPath, Err: err}
	}

	root := documentRoot(&doc)
	if root == nil || root.Kind != yaml.MappingNode {
		return nil, &ManifestSchemaError{Path: manifestPath, Reason: "root must be a mapping of standard identifier to entry"}
	}

	seen := make(map[string]bool, len(root.Content)/2)
	descriptors := make([]Descriptor, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valueNode := root.Content[i], root.Content[i+1]
		id := keyNode.Value

		if seen[id] {
			return nil, &ManifestSchemaError{Path: manifestPath, ID: id, Reason: "duplicate identifier"}
		}
		seen[id] = true

		if valueNode.Kind != yaml.MappingNode {
			return nil, &ManifestSchemaError{Path: manifestPath, ID: id, Reason: "entry must be a mapping"}
		}

		var desc Descriptor
		if err := valueNode.Decode(&desc); err != nil {
			return nil, &ManifestSchemaError{Path: manifestPath, ID: id, Reason: fmt.Sprintf("invalid entry: %v", err)}
		}
		desc.ID = id
		desc.Format = Format(strings.ToLower(strings.TrimSpace(string(desc.Format))))

		if desc.Path == "" {
			return nil, &ManifestSchemaError{Path: manifestPath, ID: id, Reason: `missing required field "path"`}
		}
		if desc.Format == "" {
			return nil, &ManifestSchemaError{Path: manifestPath, ID: id, Reason: `missing required field "format"`}
		}

		descriptors = append(descriptors, desc)
	}

	return descriptors, nil
}

// LoadRegistry is Load wrapped in the lookup facade.
func LoadRegistry(fsys fs.FS, manifestPath string) (*Registry, error) {
	descriptors, err := Load(fsys, manifestPath)
	if err != nil {
		return nil, err
	}
	return New(descriptors)
}

// documentRoot unwraps the document node yaml.Unmarshal produces. Returns
// nil for an empty document.
func documentRoot(doc *yaml.Node) *yaml.Node {
	if doc.Kind == yaml.DocumentNode {
		if len(doc.Content) == 0 {
			return nil
		}
		return doc.Content[0]
	}
	return doc
}
