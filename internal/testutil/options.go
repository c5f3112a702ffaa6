package testutil

// FieldData holds one record field. Field order is preserved in the
// rendered data file.
type FieldData struct {
	Key   string
	Value any
}

// Field creates a FieldData structure.
func Field(key string, value any) FieldData {
	return FieldData{Key: key, Value: value}
}

// Record groups fields into one record.
func Record(fields ...FieldData) []FieldData {
	return fields
}

// standardData holds all data for a standard to be rendered.
type standardData struct {
	id          string
	version     string
	maintainer  string
	title       string
	description string
	path        string
	format      string
	lastUpdated string
	tags        []string
	source      *sourceEntry
	records     [][]FieldData
	raw         []byte
	omitData    bool
}

// defaultStandard returns a standardData with sensible defaults.
func defaultStandard(id string) standardData {
	return standardData{
		id:      id,
		version: "1.0",
		title:   id, // Default title is the ID
		format:  "yaml",
	}
}

// resolvedPath derives the data file path from the id and format unless an
// explicit path was set.
func (s *standardData) resolvedPath() string {
	if s.path != "" {
		return s.path
	}
	return "data-standards/" + s.id + "." + s.format
}

// StandardOption configures a standard during builder setup.
type StandardOption func(*standardData)

// Version sets the standard version.
func Version(version string) StandardOption {
	return func(s *standardData) { s.version = version }
}

// Maintainer sets the maintaining body.
func Maintainer(name string) StandardOption {
	return func(s *standardData) { s.maintainer = name }
}

// Title sets the standard title.
func Title(title string) StandardOption {
	return func(s *standardData) { s.title = title }
}

// Description sets the standard description.
func Description(desc string) StandardOption {
	return func(s *standardData) { s.description = desc }
}

// Path sets the data file path relative to the registry root.
func Path(path string) StandardOption {
	return func(s *standardData) { s.path = path }
}

// Format sets the data file format (yaml, json, xml). The default data file
// path follows the format's extension.
func Format(format string) StandardOption {
	return func(s *standardData) { s.format = format }
}

// LastUpdated sets the last-updated date string.
func LastUpdated(date string) StandardOption {
	return func(s *standardData) { s.lastUpdated = date }
}

// Tags adds tags to the standard.
func Tags(tags ...string) StandardOption {
	return func(s *standardData) { s.tags = append(s.tags, tags...) }
}

// Source sets the upstream source reference.
func Source(name, url string) StandardOption {
	return func(s *standardData) { s.source = &sourceEntry{Name: name, URL: url} }
}

// Records adds records to the standard (nested option).
func Records(recs ...[]FieldData) StandardOption {
	return func(s *standardData) { s.records = append(s.records, recs...) }
}

// RawData sets verbatim data file contents, bypassing the format renderers.
// Use it for malformed inputs or formats the builder cannot render.
func RawData(content string) StandardOption {
	return func(s *standardData) { s.raw = []byte(content) }
}

// NoData writes the manifest entry but no data file, so loading the
// standard fails with a missing file error.
func NoData() StandardOption {
	return func(s *standardData) { s.omitData = true }
}
