package presentation

import (
	"fmt"
	"strings"

	"github.com/wdgph/stdreg/internal/catalog"
	"github.com/wdgph/stdreg/internal/records"
	"github.com/wdgph/stdreg/internal/registry"
)

// maxCellWidth bounds table cells so one long description cannot push a
// markdown table past the viewport.
const maxCellWidth = 48

// maxFieldNames bounds the field name list on the details page.
const maxFieldNames = 6

// BuildOverviewPage renders the registry landing page: standard count and
// a per-standard summary table. Load failures get their own section so a
// broken file is visible without hiding the healthy standards.
func BuildOverviewPage(entries []catalog.StandardOverview) string {
	var sb strings.Builder
	sb.WriteString("# Data Standards Registry\n\n")

	if len(entries) == 0 {
		sb.WriteString("_No standards registered._\n")
		return sb.String()
	}

	failures := 0
	for _, e := range entries {
		if e.Err != nil {
			failures++
		}
	}

	sb.WriteString(fmt.Sprintf("**Standards:** %d\n\n", len(entries)))

	sb.WriteString("| Standard | Version | Records | Fields | Maintainer |\n")
	sb.WriteString("| --- | --- | --- | --- | --- |\n")
	for _, e := range entries {
		desc := e.Descriptor
		recordCount, fieldCount := "—", "—"
		if e.Err == nil {
			recordCount = FormatCount(e.Stats.RecordCount)
			fieldCount = FormatCount(e.Stats.FieldCount)
		}
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s |\n",
			escapeCell(desc.ID),
			escapeCell(desc.Version),
			recordCount,
			fieldCount,
			escapeCell(desc.Maintainer)))
	}

	if failures > 0 {
		sb.WriteString("\n## Load Failures\n\n")
		for _, e := range entries {
			if e.Err != nil {
				sb.WriteString(fmt.Sprintf("- **%s**: %s\n", e.Descriptor.ID, e.Err.Error()))
			}
		}
	}

	return sb.String()
}

// BuildDetailsPage renders one standard's manifest metadata and record set
// counts. When the data file failed to load the error replaces the counts.
func BuildDetailsPage(desc registry.Descriptor, stats records.Statistics, fields []string, loadErr error) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# %s\n\n", desc.DisplayTitle()))

	if desc.Description != "" {
		sb.WriteString(desc.Description)
		sb.WriteString("\n\n")
	}

	sb.WriteString(fmt.Sprintf("**ID:** %s\n\n", desc.ID))
	sb.WriteString(fmt.Sprintf("**Version:** %s\n\n", desc.Version))
	sb.WriteString(fmt.Sprintf("**Maintainer:** %s\n\n", desc.Maintainer))
	sb.WriteString(fmt.Sprintf("**Format:** %s\n\n", desc.Format))
	sb.WriteString(fmt.Sprintf("**Path:** %s\n\n", desc.Path))
	if desc.LastUpdated != "" {
		sb.WriteString(fmt.Sprintf("**Last updated:** %s\n\n", desc.LastUpdated))
	}
	if len(desc.Tags) > 0 {
		sb.WriteString(fmt.Sprintf("**Tags:** %s\n\n", strings.Join(desc.Tags, ", ")))
	}
	if desc.Source != nil {
		if desc.Source.URL != "" {
			sb.WriteString(fmt.Sprintf("**Source:** [%s](%s)\n\n", desc.Source.Name, desc.Source.URL))
		} else {
			sb.WriteString(fmt.Sprintf("**Source:** %s\n\n", desc.Source.Name))
		}
	}

	if loadErr != nil {
		sb.WriteString("## Load Error\n\n")
		sb.WriteString(loadErr.Error())
		sb.WriteString("\n")
		return sb.String()
	}

	sb.WriteString("## Contents\n\n")
	sb.WriteString(fmt.Sprintf("- **Records:** %s\n", FormatCount(stats.RecordCount)))
	sb.WriteString(fmt.Sprintf("- **Fields:** %s\n", FormatCount(stats.FieldCount)))
	if len(fields) > 0 {
		sb.WriteString(fmt.Sprintf("- **Field names:** %s\n", formatFieldNames(fields)))
	}
	return sb.String()
}

// formatFieldNames lists the first few field names, with a "+N more"
// suffix when the set is wider.
func formatFieldNames(fields []string) string {
	shown := fields
	var extra int
	if len(fields) > maxFieldNames {
		shown = fields[:maxFieldNames]
		extra = len(fields) - maxFieldNames
	}
	out := strings.Join(shown, ", ")
	if extra > 0 {
		out += fmt.Sprintf(", +%d more", extra)
	}
	return out
}

// BuildRecordPreview renders the first n records as a markdown table.
// n <= 0 renders every record.
func BuildRecordPreview(rs *records.RecordSet, n int) string {
	if len(rs.Records) == 0 || len(rs.Fields) == 0 {
		return "_No records._\n"
	}
	if n <= 0 || n > len(rs.Records) {
		n = len(rs.Records)
	}

	var sb strings.Builder
	writeRecordTable(&sb, rs.Fields, rs.Records[:n])
	if n < len(rs.Records) {
		sb.WriteString(fmt.Sprintf("\n_Showing %d of %s records._\n", n, FormatCount(len(rs.Records))))
	}
	return sb.String()
}

func writeRecordTable(sb *strings.Builder, fields []string, recs []records.Record) {
	sb.WriteString("|")
	for _, f := range fields {
		sb.WriteString(" ")
		sb.WriteString(escapeCell(FormatHeader(f)))
		sb.WriteString(" |")
	}
	sb.WriteString("\n|")
	for range fields {
		sb.WriteString(" --- |")
	}
	sb.WriteString("\n")

	for _, rec := range recs {
		sb.WriteString("|")
		for _, f := range fields {
			// Missing fields yield the zero Value, which is null.
			cell := escapeCell(TruncateCell(FormatCell(rec[f]), maxCellWidth))
			sb.WriteString(" ")
			sb.WriteString(cell)
			sb.WriteString(" |")
		}
		sb.WriteString("\n")
	}
}

// escapeCell keeps cell content from breaking the table: newlines become
// spaces and pipes are escaped.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "|", "\\|")
}
