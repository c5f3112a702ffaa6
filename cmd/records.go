package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/wdgph/stdreg/internal/presentation"
	"github.com/wdgph/stdreg/internal/records"
	"github.com/wdgph/stdreg/internal/ui/table"
)

// cliCellMaxWidth caps column width in table output so one long value
// cannot push the rest of the row off screen.
const cliCellMaxWidth = 40

var (
	recordsAsTable bool
	recordsLimit   int
)

var recordsCmd = &cobra.Command{
	Use:   "records <id>",
	Short: "Show the records of a standard",
	Long: `Show the normalized records of a registered standard.

Output is JSON by default: the standard id, its field names in
first-seen order, and every record. Use --table for aligned columns
and --limit to cap the number of records.

Examples:
  # All records as JSON
  stdreg records genders

  # First ten records
  stdreg records genders --limit 10

  # Aligned text table
  stdreg records genders --table

  # Parse specific fields with jq
  stdreg records genders | jq '.records[].code'
  stdreg records genders | jq '.fields'`,
	Args: cobra.ExactArgs(1),
	RunE: runRecords,
}

func init() {
	recordsCmd.Flags().BoolVar(&recordsAsTable, "table", false, "Render an aligned text table instead of JSON")
	recordsCmd.Flags().IntVarP(&recordsLimit, "limit", "n", 0, "Cap the number of records shown (0 = all)")
	rootCmd.AddCommand(recordsCmd)
}

func runRecords(cmd *cobra.Command, args []string) error {
	cat, cleanup, err := openCatalog()
	if err != nil {
		return err
	}
	defer cleanup()

	rs, err := cat.Records(context.Background(), args[0])
	if err != nil {
		return err
	}
	rs = limitRecords(rs, recordsLimit)

	if recordsAsTable {
		fmt.Fprintln(os.Stdout, renderRecordsTable(rs))
		return nil
	}

	formatter := presentation.NewFormatter(os.Stdout)
	return formatter.FormatRecordSet(presentation.FromRecordSet(rs))
}

// limitRecords returns a copy of the record set capped at n records.
// Zero or negative n keeps every record.
func limitRecords(rs *records.RecordSet, n int) *records.RecordSet {
	if n <= 0 || len(rs.Records) <= n {
		return rs
	}
	capped := *rs
	capped.Records = rs.Records[:n]
	return &capped
}

// renderRecordsTable renders the record set through the shared table
// component, sized so every column shows its widest value.
func renderRecordsTable(rs *records.RecordSet) string {
	if len(rs.Records) == 0 || len(rs.Fields) == 0 {
		return "No records"
	}

	cols := make([]table.ColumnConfig, len(rs.Fields))
	total := len(rs.Fields) - 1 // separators cost one cell each
	for i, field := range rs.Fields {
		width := naturalColumnWidth(rs, field)
		cols[i] = table.ColumnConfig{
			Key:    field,
			Header: presentation.FormatHeader(field),
			Width:  width,
			Render: renderRecordCell,
		}
		total += width
	}

	rows := make([]any, len(rs.Records))
	for i, rec := range rs.Records {
		rows[i] = rec
	}

	tbl := table.New(table.TableConfig{
		Columns:    cols,
		ShowHeader: true,
	}).
		SetRows(rows).
		SetSize(total, len(rows)+1)
	return tbl.View()
}

// naturalColumnWidth is the width of the widest value in the column,
// header included.
func naturalColumnWidth(rs *records.RecordSet, field string) int {
	width := lipgloss.Width(presentation.FormatHeader(field))
	for _, rec := range rs.Records {
		if w := lipgloss.Width(presentation.FormatCell(rec[field])); w > width {
			width = w
		}
	}
	return min(width, cliCellMaxWidth)
}

// renderRecordCell renders one field value of a record row.
func renderRecordCell(row any, key string, width int, _ bool) string {
	rec, ok := row.(records.Record)
	if !ok {
		return ""
	}
	return presentation.TruncateCell(presentation.FormatCell(rec[key]), width)
}
