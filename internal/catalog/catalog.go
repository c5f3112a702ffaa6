// Package catalog ties the registry manifest to loaded record sets. It is
// the read side of stdreg: every query goes descriptor -> record set ->
// result, with record sets loaded once per process and kept in an
// in-memory cache. A standard that fails to load never poisons the others
// and is retried on the next lookup.
package catalog

import (
	"context"
	"io/fs"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/wdgph/stdreg/internal/cachemanager"
	"github.com/wdgph/stdreg/internal/log"
	"github.com/wdgph/stdreg/internal/records"
	"github.com/wdgph/stdreg/internal/registry"
	"github.com/wdgph/stdreg/internal/tracing"
)

// Catalog answers queries about the standards in one registry.
type Catalog struct {
	reg    *registry.Registry
	fsys   fs.FS
	cache  *cachemanager.InMemoryCacheManager[string, *records.RecordSet]
	loader *cachemanager.ReadThroughCache[string, *records.RecordSet, registry.Descriptor]
	tracer trace.Tracer
}

type options struct {
	tracer    trace.Tracer
	skipCache bool
}

// Option configures a Catalog.
type Option func(*options)

// WithTracer attaches a tracer for catalog spans. Without it the catalog
// traces into a no-op tracer.
func WithTracer(tracer trace.Tracer) Option {
	return func(o *options) {
		if tracer != nil {
			o.tracer = tracer
		}
	}
}

// WithoutCache disables the record set cache; every query rereads from
// disk. Intended for one-shot CLI runs and tests.
func WithoutCache() Option {
	return func(o *options) {
		o.skipCache = true
	}
}

// New creates a Catalog over the registry, reading standard files from
// fsys. Descriptor paths are resolved relative to the fsys root.
func New(reg *registry.Registry, fsys fs.FS, opts ...Option) *Catalog {
	o := options{
		tracer: noop.NewTracerProvider().Tracer("noop"),
	}
	for _, opt := range opts {
		opt(&o)
	}

	c := &Catalog{
		reg:    reg,
		fsys:   fsys,
		tracer: o.tracer,
	}
	c.cache = cachemanager.NewInMemoryCacheManager[string, *records.RecordSet](
		"record-sets", cachemanager.NoExpiration, cachemanager.DefaultCleanupInterval)
	c.loader = cachemanager.NewReadThroughCache(c.cache, c.loadRecordSet, o.skipCache)
	return c
}

// Descriptors returns every registered standard in manifest order.
func (c *Catalog) Descriptors() []registry.Descriptor {
	return c.reg.List()
}

// Descriptor returns the descriptor for id, or registry.ErrNotFound.
func (c *Catalog) Descriptor(id string) (registry.Descriptor, error) {
	return c.reg.Get(id)
}

// Records returns the record set for id, loading and caching it on first
// use. Load failures are returned as-is and never cached, so a fixed file
// is picked up on the next call.
func (c *Catalog) Records(ctx context.Context, id string) (*records.RecordSet, error) {
	ctx, span := c.tracer.Start(ctx, tracing.SpanCatalogRecords,
		trace.WithAttributes(attribute.String(tracing.AttrStandardID, id)))
	defer span.End()

	desc, err := c.reg.Get(id)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	_, hit := c.cache.Get(ctx, id)
	span.SetAttributes(attribute.Bool(tracing.AttrCacheHit, hit))

	rs, err := c.loader.Get(ctx, id, desc, cachemanager.NoExpiration)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.ErrorErr(log.CatCatalog, "records query failed", err, "id", id)
		return nil, err
	}

	span.SetAttributes(
		attribute.Int(tracing.AttrRecordCount, len(rs.Records)),
		attribute.Int(tracing.AttrFieldCount, len(rs.Fields)),
	)
	return rs, nil
}

// Search returns the records of standard id matching query. An empty
// query matches every record.
func (c *Catalog) Search(ctx context.Context, id, query string) (*records.SearchResult, error) {
	ctx, span := c.tracer.Start(ctx, tracing.SpanCatalogSearch,
		trace.WithAttributes(
			attribute.String(tracing.AttrStandardID, id),
			attribute.String(tracing.AttrSearchQuery, query),
		))
	defer span.End()

	rs, err := c.Records(ctx, id)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	result := rs.Search(query)
	span.SetAttributes(attribute.Int(tracing.AttrSearchMatches, len(result.Records)))
	log.Debug(log.CatCatalog, "search", "id", id, "query", query, "matches", len(result.Records))
	return result, nil
}

// Statistics returns record and field counts for standard id.
func (c *Catalog) Statistics(ctx context.Context, id string) (records.Statistics, error) {
	ctx, span := c.tracer.Start(ctx, tracing.SpanCatalogStats,
		trace.WithAttributes(attribute.String(tracing.AttrStandardID, id)))
	defer span.End()

	rs, err := c.Records(ctx, id)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return records.Statistics{}, err
	}

	stats := rs.Stats()
	span.SetAttributes(
		attribute.Int(tracing.AttrRecordCount, stats.RecordCount),
		attribute.Int(tracing.AttrFieldCount, stats.FieldCount),
	)
	return stats, nil
}

// StandardOverview pairs a descriptor with its load outcome. Err is set
// when the standard's data file could not be loaded; Stats is only
// meaningful when Err is nil.
type StandardOverview struct {
	Descriptor registry.Descriptor
	Stats      records.Statistics
	Err        error
}

// Overview loads every standard and reports per-standard statistics.
// Standards that fail to load appear in the result with Err set; one
// broken file never hides the rest of the registry.
func (c *Catalog) Overview(ctx context.Context) []StandardOverview {
	ctx, span := c.tracer.Start(ctx, tracing.SpanCatalogOverview)
	defer span.End()

	entries := make([]StandardOverview, 0, c.reg.Len())
	failures := 0
	for _, desc := range c.reg.List() {
		entry := StandardOverview{Descriptor: desc}
		rs, err := c.Records(ctx, desc.ID)
		if err != nil {
			entry.Err = err
			failures++
		} else {
			entry.Stats = rs.Stats()
		}
		entries = append(entries, entry)
	}

	span.SetAttributes(
		attribute.Int(tracing.AttrStandardCount, c.reg.Len()),
		attribute.Int(tracing.AttrFailureCount, failures),
	)
	if failures > 0 {
		log.Warn(log.CatCatalog, "overview completed with failures", "standards", c.reg.Len(), "failures", failures)
	}
	return entries
}

// Refresh drops every cached record set so subsequent queries reread
// from disk.
func (c *Catalog) Refresh(ctx context.Context) error {
	n := c.cache.ItemCount()
	if err := c.cache.Flush(ctx); err != nil {
		return err
	}
	log.Info(log.CatCache, "record set cache flushed", "entries", n)
	return nil
}

// loadRecordSet is the read-through fallback: parse and normalize the
// standard's data file.
func (c *Catalog) loadRecordSet(ctx context.Context, desc registry.Descriptor) (*records.RecordSet, error) {
	_, span := c.tracer.Start(ctx, tracing.SpanRecordsLoad,
		trace.WithAttributes(
			attribute.String(tracing.AttrStandardID, desc.ID),
			attribute.String(tracing.AttrStandardFormat, string(desc.Format)),
			attribute.String(tracing.AttrStandardPath, desc.Path),
		))
	defer span.End()

	log.Debug(log.CatRecords, "loading standard", "id", desc.ID, "path", desc.Path, "format", desc.Format)

	rs, err := records.Load(c.fsys, desc)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		span.SetAttributes(attribute.String(tracing.AttrErrorMessage, err.Error()))
		return nil, err
	}

	span.SetAttributes(
		attribute.Int(tracing.AttrRecordCount, len(rs.Records)),
		attribute.Int(tracing.AttrFieldCount, len(rs.Fields)),
	)
	log.Info(log.CatRecords, "standard loaded", "id", desc.ID, "records", len(rs.Records), "fields", len(rs.Fields))
	return rs, nil
}
