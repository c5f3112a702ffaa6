package registry

import (
	"errors"
	"fmt"
)

// Registry errors
var (
	ErrManifestNotFound = errors.New("manifest not found")
	ErrNotFound         = errors.New("standard not found")
	ErrDuplicateID      = errors.New("duplicate standard identifier")
)

// ManifestParseError reports a manifest that is not well-formed YAML. It
// wraps the underlying yaml error, which carries line information.
type ManifestParseError struct {
	Path string
	Err  error
}

func (e *ManifestParseError) Error() string {
	return fmt.Sprintf("parse manifest %s: %v", e.Path, e.Err)
}

func (e *ManifestParseError) Unwrap() error { return e.Err }

// ManifestSchemaError reports a manifest that parses as YAML but violates
// the manifest shape. ID names the offending entry and is empty when the
// violation is at the document root.
type ManifestSchemaError struct {
	Path   string
	ID     string
	Reason string
}

func (e *ManifestSchemaError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("manifest %s: %s", e.Path, e.Reason)
	}
	return fmt.Sprintf("manifest %s: standard %q: %s", e.Path, e.ID, e.Reason)
}
