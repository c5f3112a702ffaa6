// Package presentation converts catalog results into output-friendly
// shapes: JSON DTOs for the CLI and markdown pages for the browser.
package presentation

import (
	"github.com/wdgph/stdreg/internal/catalog"
	"github.com/wdgph/stdreg/internal/records"
	"github.com/wdgph/stdreg/internal/registry"
)

// StandardDTO represents one manifest entry for machine-readable output.
type StandardDTO struct {
	ID          string     `json:"id"`
	Version     string     `json:"version"`
	Maintainer  string     `json:"maintainer"`
	Path        string     `json:"path"`
	Format      string     `json:"format"`
	Title       string     `json:"title,omitempty"`
	Description string     `json:"description,omitempty"`
	LastUpdated string     `json:"last_updated,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
	Source      *SourceDTO `json:"source,omitempty"`
}

// SourceDTO references the upstream authority a standard derives from.
type SourceDTO struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

// RecordSetDTO carries a standard's full record set. Fields preserves the
// first-seen column order that JSON objects cannot.
type RecordSetDTO struct {
	StandardID  string           `json:"standard_id"`
	Fields      []string         `json:"fields"`
	RecordCount int              `json:"record_count"`
	Records     []records.Record `json:"records"`
}

// SearchResultDTO carries the records matching one query.
type SearchResultDTO struct {
	StandardID string           `json:"standard_id"`
	Query      string           `json:"query"`
	Fields     []string         `json:"fields"`
	MatchCount int              `json:"match_count"`
	Records    []records.Record `json:"records"`
}

// StatisticsDTO summarizes one standard's record set.
type StatisticsDTO struct {
	ID          string `json:"id"`
	Version     string `json:"version"`
	RecordCount int    `json:"record_count"`
	FieldCount  int    `json:"field_count"`
}

// OverviewEntryDTO is one row of the registry-wide statistics report.
// Error is set when the standard's data file failed to load; the counts
// are only meaningful when it is empty.
type OverviewEntryDTO struct {
	ID          string `json:"id"`
	Version     string `json:"version"`
	Title       string `json:"title,omitempty"`
	RecordCount int    `json:"record_count"`
	FieldCount  int    `json:"field_count"`
	Error       string `json:"error,omitempty"`
}

// FromDescriptor converts a manifest descriptor to a DTO.
func FromDescriptor(desc registry.Descriptor) StandardDTO {
	dto := StandardDTO{
		ID:          desc.ID,
		Version:     desc.Version,
		Maintainer:  desc.Maintainer,
		Path:        desc.Path,
		Format:      string(desc.Format),
		Title:       desc.Title,
		Description: desc.Description,
		LastUpdated: desc.LastUpdated,
		Tags:        desc.Tags,
	}
	if desc.Source != nil {
		dto.Source = &SourceDTO{Name: desc.Source.Name, URL: desc.Source.URL}
	}
	return dto
}

// FromDescriptors converts a slice of descriptors to DTOs.
func FromDescriptors(descs []registry.Descriptor) []StandardDTO {
	dtos := make([]StandardDTO, len(descs))
	for i, desc := range descs {
		dtos[i] = FromDescriptor(desc)
	}
	return dtos
}

// FromRecordSet converts a record set to a DTO. Values marshal with their
// native JSON types; number lexemes are emitted verbatim.
func FromRecordSet(rs *records.RecordSet) RecordSetDTO {
	return RecordSetDTO{
		StandardID:  rs.StandardID,
		Fields:      rs.Fields,
		RecordCount: len(rs.Records),
		Records:     rs.Records,
	}
}

// FromSearchResult converts a search result to a DTO.
func FromSearchResult(res *records.SearchResult) SearchResultDTO {
	return SearchResultDTO{
		StandardID: res.StandardID,
		Query:      res.Query,
		Fields:     res.Fields,
		MatchCount: len(res.Records),
		Records:    res.Records,
	}
}

// FromStatistics pairs a descriptor's identity with its record set counts.
func FromStatistics(desc registry.Descriptor, stats records.Statistics) StatisticsDTO {
	return StatisticsDTO{
		ID:          desc.ID,
		Version:     desc.Version,
		RecordCount: stats.RecordCount,
		FieldCount:  stats.FieldCount,
	}
}

// FromOverview converts per-standard load outcomes to DTOs.
func FromOverview(entries []catalog.StandardOverview) []OverviewEntryDTO {
	dtos := make([]OverviewEntryDTO, len(entries))
	for i, entry := range entries {
		dto := OverviewEntryDTO{
			ID:      entry.Descriptor.ID,
			Version: entry.Descriptor.Version,
			Title:   entry.Descriptor.Title,
		}
		if entry.Err != nil {
			dto.Error = entry.Err.Error()
		} else {
			dto.RecordCount = entry.Stats.RecordCount
			dto.FieldCount = entry.Stats.FieldCount
		}
		dtos[i] = dto
	}
	return dtos
}
