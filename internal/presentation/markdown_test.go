package presentation

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wdgph/stdreg/internal/catalog"
	"github.com/wdgph/stdreg/internal/records"
	"github.com/wdgph/stdreg/internal/registry"
)

func waterQualityDescriptor() registry.Descriptor {
	return registry.Descriptor{
		ID:          "water-quality",
		Version:     "2.1",
		Maintainer:  "EPA Data Office",
		Path:        "data/water-quality.yaml",
		Format:      registry.FormatYAML,
		Title:       "Water Quality Standards",
		Description: "Surface water quality measurement codes.",
		LastUpdated: "2025-11-02",
		Tags:        []string{"environment", "water"},
		Source: &registry.Source{
			Name: "EPA WQX",
			URL:  "https://www.epa.gov/waterdata",
		},
	}
}

func previewRecordSet(n int) *records.RecordSet {
	rs := &records.RecordSet{
		StandardID: "school-boards",
		Fields:     []string{"_id", "name", "enrollment"},
	}
	for i := 0; i < n; i++ {
		rs.Records = append(rs.Records, records.Record{
			"_id":        records.NumberValue("1"),
			"name":       records.StringValue("Springfield Board"),
			"enrollment": records.NumberValue("12345"),
		})
	}
	return rs
}

// ============================================================================
// BuildOverviewPage
// ============================================================================

func TestBuildOverviewPage_Empty(t *testing.T) {
	page := BuildOverviewPage(nil)

	require.Contains(t, page, "# Data Standards Registry")
	require.Contains(t, page, "_No standards registered._")
}

func TestBuildOverviewPage_SummaryTable(t *testing.T) {
	entries := []catalog.StandardOverview{
		{
			Descriptor: registry.Descriptor{ID: "genders", Version: "1.2.0", Maintainer: "DHS Data Office"},
			Stats:      records.Statistics{RecordCount: 5, FieldCount: 3},
		},
		{
			Descriptor: waterQualityDescriptor(),
			Stats:      records.Statistics{RecordCount: 1200, FieldCount: 8},
		},
	}

	page := BuildOverviewPage(entries)

	require.Contains(t, page, "**Standards:** 2")
	require.Contains(t, page, "| Standard | Version | Records | Fields | Maintainer |")
	require.Contains(t, page, "| genders | 1.2.0 | 5 | 3 | DHS Data Office |")
	require.Contains(t, page, "| water-quality | 2.1 | 1,200 | 8 | EPA Data Office |")
	require.NotContains(t, page, "## Load Failures")
}

func TestBuildOverviewPage_FailuresListed(t *testing.T) {
	entries := []catalog.StandardOverview{
		{
			Descriptor: registry.Descriptor{ID: "genders", Version: "1.2.0", Maintainer: "DHS Data Office"},
			Stats:      records.Statistics{RecordCount: 5, FieldCount: 3},
		},
		{
			Descriptor: registry.Descriptor{ID: "school-boards", Version: "3.0", Maintainer: "DOE"},
			Err:        errors.New("parse error in data/school-boards.xml at line 4"),
		},
	}

	page := BuildOverviewPage(entries)

	require.Contains(t, page, "| school-boards | 3.0 | — | — | DOE |")
	require.Contains(t, page, "## Load Failures")
	require.Contains(t, page, "- **school-boards**: parse error in data/school-boards.xml at line 4")
}

// ============================================================================
// BuildDetailsPage
// ============================================================================

func TestBuildDetailsPage_FullMetadata(t *testing.T) {
	stats := records.Statistics{RecordCount: 1200, FieldCount: 8}
	fields := []string{"site_id", "parameter", "unit", "value", "depth", "basin", "agency", "note"}

	page := BuildDetailsPage(waterQualityDescriptor(), stats, fields, nil)

	require.Contains(t, page, "# Water Quality Standards")
	require.Contains(t, page, "Surface water quality measurement codes.")
	require.Contains(t, page, "**ID:** water-quality")
	require.Contains(t, page, "**Version:** 2.1")
	require.Contains(t, page, "**Maintainer:** EPA Data Office")
	require.Contains(t, page, "**Format:** yaml")
	require.Contains(t, page, "**Path:** data/water-quality.yaml")
	require.Contains(t, page, "**Last updated:** 2025-11-02")
	require.Contains(t, page, "**Tags:** environment, water")
	require.Contains(t, page, "**Source:** [EPA WQX](https://www.epa.gov/waterdata)")
	require.Contains(t, page, "## Contents")
	require.Contains(t, page, "- **Records:** 1,200")
	require.Contains(t, page, "- **Fields:** 8")
	require.Contains(t, page, "- **Field names:** site_id, parameter, unit, value, depth, basin, +2 more")
}

func TestBuildDetailsPage_MinimalDescriptor(t *testing.T) {
	desc := registry.Descriptor{
		ID:         "genders",
		Version:    "1.0",
		Maintainer: "DHS",
		Path:       "data/genders.json",
		Format:     registry.FormatJSON,
	}

	page := BuildDetailsPage(desc, records.Statistics{RecordCount: 4, FieldCount: 2}, []string{"code", "label"}, nil)

	// Title falls back to the identifier.
	require.Contains(t, page, "# genders")
	require.Contains(t, page, "- **Field names:** code, label")
	require.NotContains(t, page, "+0 more")
	require.NotContains(t, page, "**Tags:**")
	require.NotContains(t, page, "**Source:**")
	require.NotContains(t, page, "**Last updated:**")
}

func TestBuildDetailsPage_LoadError(t *testing.T) {
	err := errors.New("unsupported format \"csv\" for standard genders")

	page := BuildDetailsPage(waterQualityDescriptor(), records.Statistics{}, nil, err)

	require.Contains(t, page, "## Load Error")
	require.Contains(t, page, "unsupported format \"csv\" for standard genders")
	require.NotContains(t, page, "## Contents")
}

// ============================================================================
// BuildRecordPreview
// ============================================================================

func TestBuildRecordPreview_Empty(t *testing.T) {
	rs := &records.RecordSet{StandardID: "genders"}

	require.Equal(t, "_No records._\n", BuildRecordPreview(rs, 10))
}

func TestBuildRecordPreview_Table(t *testing.T) {
	page := BuildRecordPreview(previewRecordSet(3), 10)

	require.Contains(t, page, "| ID | Name | Enrollment |")
	require.Contains(t, page, "| --- | --- | --- |")
	require.Contains(t, page, "| 1 | Springfield Board | 12,345 |")
	require.NotContains(t, page, "_Showing")
}

func TestBuildRecordPreview_CapsRows(t *testing.T) {
	page := BuildRecordPreview(previewRecordSet(25), 10)

	require.Equal(t, 10, strings.Count(page, "Springfield Board"))
	require.Contains(t, page, "_Showing 10 of 25 records._")
}

func TestBuildRecordPreview_ZeroShowsAll(t *testing.T) {
	page := BuildRecordPreview(previewRecordSet(25), 0)

	require.Equal(t, 25, strings.Count(page, "Springfield Board"))
	require.NotContains(t, page, "_Showing")
}

func TestBuildRecordPreview_MissingFieldRendersPlaceholder(t *testing.T) {
	rs := &records.RecordSet{
		StandardID: "genders",
		Fields:     []string{"code", "label"},
		Records: []records.Record{
			{"code": records.StringValue("X")},
		},
	}

	page := BuildRecordPreview(rs, 10)

	require.Contains(t, page, "| X | — |")
}

func TestBuildRecordPreview_EscapesPipes(t *testing.T) {
	rs := &records.RecordSet{
		StandardID: "genders",
		Fields:     []string{"label"},
		Records: []records.Record{
			{"label": records.StringValue("either|or")},
		},
	}

	page := BuildRecordPreview(rs, 10)

	require.Contains(t, page, `either\|or`)
}

func TestBuildRecordPreview_FlattensNewlines(t *testing.T) {
	rs := &records.RecordSet{
		StandardID: "water-quality",
		Fields:     []string{"note"},
		Records: []records.Record{
			{"note": records.StringValue("line one\nline two")},
		},
	}

	page := BuildRecordPreview(rs, 10)

	require.Contains(t, page, "| line one line two |")
}

