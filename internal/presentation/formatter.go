package presentation

import (
	"encoding/json"
	"io"
)

// Formatter handles machine-readable output formatting.
type Formatter struct {
	writer io.Writer
}

// NewFormatter creates a new formatter.
func NewFormatter(writer io.Writer) *Formatter {
	return &Formatter{
		writer: writer,
	}
}

// FormatStandards formats a list of standards as JSON.
func (f *Formatter) FormatStandards(standards []StandardDTO) error {
	return f.encode(standards)
}

// FormatRecordSet formats a standard's records as JSON.
func (f *Formatter) FormatRecordSet(rs RecordSetDTO) error {
	return f.encode(rs)
}

// FormatSearchResult formats search matches as JSON.
func (f *Formatter) FormatSearchResult(res SearchResultDTO) error {
	return f.encode(res)
}

// FormatStatistics formats one standard's statistics as JSON.
func (f *Formatter) FormatStatistics(stats StatisticsDTO) error {
	return f.encode(stats)
}

// FormatOverview formats the registry-wide statistics report as JSON.
func (f *Formatter) FormatOverview(entries []OverviewEntryDTO) error {
	return f.encode(entries)
}

func (f *Formatter) encode(v any) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
