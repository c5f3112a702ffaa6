// Package table provides a config-driven table component for rendering
// record sets in the browse UI.
//
// The table is a pure render component with external state management.
// Callers pass column configurations (with required Render callbacks), row
// data, and dimensions. The component handles bordered pane wrapping, header
// rendering, cell truncation, and selection highlighting.
//
//	cfg := table.TableConfig{
//	    Columns: []table.ColumnConfig{
//	        {Key: "row", Header: "#", Width: 4, Align: lipgloss.Right, Render: renderRowNumber},
//	        {Key: "value", Header: "Value", MinWidth: 10, Render: renderValue},
//	    },
//	    ShowHeader: true,
//	    ShowBorder: true,
//	}
//	tbl := table.New(cfg).SetRows(rows).SetSize(80, 20)
//	view := tbl.ViewWithSelection(selectedIndex)
//
// Selection state is external: use View() for rendering without selection,
// or ViewWithSelection(index) to highlight a row.
package table

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// flexMinWidth is the smallest width a flex column may shrink to.
const flexMinWidth = 3

// ColumnType identifies the semantic type of column content.
type ColumnType int

const (
	// ColumnTypeText is plain text content (default).
	ColumnTypeText ColumnType = iota

	// ColumnTypeNumber is for numeric values, typically right-aligned.
	ColumnTypeNumber

	// ColumnTypeCustom indicates fully custom rendering via callback.
	ColumnTypeCustom
)

// ColumnConfig defines a single table column.
//
// Width configuration:
//   - Width: fixed width in cells (0 = flex)
//   - MinWidth: minimum width for flex columns (0 = no minimum beyond 3)
//   - MaxWidth: maximum width for flex columns (0 = no limit)
//
// The Render callback receives the row data (caller performs the type
// assertion), the column key, the resolved cell width, and whether the row
// is selected.
type ColumnConfig struct {
	Key      string
	Header   string
	Type     ColumnType
	Width    int
	MinWidth int
	MaxWidth int
	Align    lipgloss.Position

	// HideBelow hides this column when the total table width falls below
	// this threshold. 0 always shows the column.
	HideBelow int

	// Render produces the cell content. Required for every column.
	Render func(row any, key string, width int, selected bool) string
}

// TableConfig defines the complete table configuration.
type TableConfig struct {
	Columns      []ColumnConfig // required, at least one
	ShowHeader   bool
	ShowBorder   bool
	Title        string // optional title for the bordered pane
	RightTitle   string // optional top-right text for the bordered pane
	EmptyMessage string // message when no rows, defaults to "No records"

	// Scrollable enables vertical windowing driven by SetYOffset and
	// EnsureVisible. Non-scrollable tables always render from the top.
	Scrollable bool

	BorderColor        lipgloss.TerminalColor
	Focused            bool
	FocusedBorderColor lipgloss.TerminalColor
}

// ValidateConfig returns an error when the configuration cannot render:
// no columns, or a column without a Render callback.
func ValidateConfig(cfg TableConfig) error {
	if len(cfg.Columns) == 0 {
		return errors.New("table config: at least one column is required")
	}

	for i, col := range cfg.Columns {
		if col.Render == nil {
			if col.Key != "" {
				return fmt.Errorf("table config: column %q has nil Render callback", col.Key)
			}
			return fmt.Errorf("table config: column %d has nil Render callback", i)
		}
	}

	return nil
}

// filterVisibleColumns drops columns whose HideBelow threshold is under the
// current table width.
func filterVisibleColumns(cols []ColumnConfig, tableWidth int) []ColumnConfig {
	visible := make([]ColumnConfig, 0, len(cols))
	for _, col := range cols {
		if col.HideBelow > 0 && tableWidth < col.HideBelow {
			continue
		}
		visible = append(visible, col)
	}
	return visible
}

// calculateColumnWidths distributes innerWidth across the columns. Fixed
// columns take their configured width; the remainder is split evenly among
// flex columns, honoring MinWidth and MaxWidth. Column separators cost one
// cell each.
func calculateColumnWidths(cols []ColumnConfig, innerWidth int) []int {
	if len(cols) == 0 {
		return nil
	}

	available := innerWidth - (len(cols) - 1)

	widths := make([]int, len(cols))
	var flexIdx []int
	for i, col := range cols {
		if col.Width > 0 {
			widths[i] = col.Width
			available -= col.Width
		} else {
			flexIdx = append(flexIdx, i)
		}
	}

	if len(flexIdx) > 0 {
		share := available / len(flexIdx)
		remainder := available - share*len(flexIdx)
		for n, i := range flexIdx {
			w := share
			if n == len(flexIdx)-1 {
				w += remainder
			}

			minW := max(cols[i].MinWidth, flexMinWidth)
			w = max(w, minW)
			if cols[i].MaxWidth > 0 && w > cols[i].MaxWidth {
				w = cols[i].MaxWidth
			}
			widths[i] = w
		}
	}

	for i := range widths {
		widths[i] = max(widths[i], 1)
	}
	return widths
}
