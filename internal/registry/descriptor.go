package registry

// Format identifies the on-disk encoding of a standard's data file.
type Format string

// Recognized data file formats. The manifest may carry other values; they
// surface as unsupported-format errors when the data file is loaded, not
// here, so one bad entry cannot block the rest of the registry.
const (
	FormatXML  Format = "xml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Descriptor is one standard as declared in the manifest: identity, version,
// and the location and encoding of its data file. Descriptors are immutable
// once loaded.
type Descriptor struct {
	ID          string   `yaml:"-"`
	Version     string   `yaml:"version"`
	Maintainer  string   `yaml:"maintainer"`
	Path        string   `yaml:"path"`
	Format      Format   `yaml:"format"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	LastUpdated string   `yaml:"last_updated"`
	Tags        []string `yaml:"tags"`
	Source      *Source  `yaml:"source"`
}

// Source references the upstream authority a standard derives from.
type Source struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// DisplayTitle returns the human-readable title, falling back to the
// identifier when the manifest entry carries none.
func (d Descriptor) DisplayTitle() string {
	if d.Title != "" {
		return d.Title
	}
	return d.ID
}

// HasTag reports whether the descriptor carries the given tag.
func (d Descriptor) HasTag(tag string) bool {
	for _, t := range d.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
