package records

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/wdgph/stdreg/internal/registry"
)

type parseFunc func([]byte) (*docNode, error)

// parserFor selects the parser for a descriptor's format tag.
func parserFor(format registry.Format) (parseFunc, error) {
	switch format {
	case registry.FormatXML:
		return parseXML, nil
	case registry.FormatYAML:
		return parseYAML, nil
	case registry.FormatJSON:
		return parseJSON, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// Load parses the data file behind desc into a RecordSet. fsys is rooted at
// the registry directory, the same root descriptor paths are relative to.
//
// Failures stay scoped to this one standard: ErrUnsupportedFormat for an
// unrecognized format tag, ErrFileNotFound when the data file is missing,
// and a ParseError carrying path and position for malformed content.
func Load(fsys fs.FS, desc registry.Descriptor) (*RecordSet, error) {
	parse, err := parserFor(desc.Format)
	if err != nil {
		return nil, err
	}

	content, err := fs.ReadFile(fsys, desc.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, desc.Path)
		}
		return nil, fmt.Errorf("read %s: %w", desc.Path, err)
	}

	root, err := parse(content)
	if err != nil {
		return nil, newParseError(desc.Path, content, err)
	}

	rs := normalize(root)
	rs.StandardID = desc.ID
	return rs, nil
}
