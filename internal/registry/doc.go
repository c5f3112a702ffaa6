// Package registry implements the manifest layer of the standards registry.
//
// A registry is a version-controlled file tree: a YAML manifest at its root
// enumerating every standard, and the standards' data files referenced by
// manifest-relative paths. This package parses the manifest into an ordered
// collection of Descriptors and wraps them in a read-only Registry facade.
//
// # Manifest Shape
//
// The manifest is a mapping from standard identifier to an entry describing
// that standard:
//
//	gsso:
//	  version: "1.1.0"
//	  maintainer: "WDG Data Office"
//	  path: data-standards/gsso.yaml
//	  format: yaml
//	  title: "Gender, Sex and Sexual Orientation"
//	  tags: [demographics]
//
// Entry order in the manifest is preserved; path and format are required,
// everything else is optional metadata. This package never opens a
// standard's data file: a broken data file must not prevent the rest of the
// registry from loading, so data access lives in internal/records.
//
// # Errors
//
// Load distinguishes three failure classes: ErrManifestNotFound when the
// manifest file is absent, ManifestParseError when it is not well-formed
// YAML, and ManifestSchemaError when it parses but violates the manifest
// shape (reported with the offending identifier where one exists).
package registry
