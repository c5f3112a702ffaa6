package tracing

// Span names for catalog operations.
const (
	SpanCatalogRecords  = "catalog.records"
	SpanCatalogSearch   = "catalog.search"
	SpanCatalogStats    = "catalog.stats"
	SpanCatalogOverview = "catalog.overview"
	SpanRecordsLoad     = "records.load"
)

// Span attribute keys. These are the semantic conventions for catalog
// spans; keep them stable so exported traces stay queryable.
const (
	AttrStandardID     = "standard.id"
	AttrStandardFormat = "standard.format"
	AttrStandardPath   = "standard.path"

	AttrRecordCount = "records.count"
	AttrFieldCount  = "fields.count"
	AttrCacheHit    = "cache.hit"

	AttrSearchQuery   = "search.query"
	AttrSearchMatches = "search.matches"

	AttrStandardCount = "registry.standards"
	AttrFailureCount  = "registry.failures"

	AttrErrorMessage = "error.message"
)
