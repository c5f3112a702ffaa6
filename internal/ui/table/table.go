package table

import (
	"strings"

	"github.com/wdgph/stdreg/internal/ui/panes"
)

// Model holds table rendering state. Scrolling is windowed: the model tracks
// a row offset and renders only the rows that fit, keeping the header sticky.
type Model struct {
	config  TableConfig
	rows    []any
	width   int
	height  int
	yOffset int
}

// New creates a table with the given configuration.
// Panics if the configuration is invalid (no columns or missing Render
// callbacks); table configs are built at startup, not from user input.
func New(cfg TableConfig) Model {
	if err := ValidateConfig(cfg); err != nil {
		panic(err)
	}

	if cfg.EmptyMessage == "" {
		cfg.EmptyMessage = "No records"
	}

	return Model{
		config: cfg,
		rows:   make([]any, 0),
	}
}

// SetRows updates the row data and returns a new Model.
func (m Model) SetRows(rows []any) Model {
	m.rows = rows
	m.yOffset = m.clampYOffset(m.yOffset)
	return m
}

// SetConfig updates dynamic config values like Focused or RightTitle.
func (m Model) SetConfig(cfg TableConfig) Model {
	m.config = cfg
	return m
}

// SetSize sets the available dimensions and returns a new Model.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	m.yOffset = m.clampYOffset(m.yOffset)
	return m
}

// SetYOffset sets the vertical scroll offset for scrollable tables.
// For non-scrollable tables this is a no-op.
func (m Model) SetYOffset(offset int) Model {
	if m.config.Scrollable {
		m.yOffset = m.clampYOffset(offset)
	}
	return m
}

// YOffset returns the current vertical scroll offset.
func (m Model) YOffset() int {
	return m.yOffset
}

// RowCount returns the number of rows in the table.
func (m Model) RowCount() int {
	return len(m.rows)
}

// VisibleRowCount returns how many data rows fit in the current dimensions.
func (m Model) VisibleRowCount() int {
	h := m.height
	if m.config.ShowBorder {
		h -= 2
	}
	if m.config.ShowHeader {
		h--
	}
	return max(h, 0)
}

// EnsureVisible scrolls so the given row index is inside the window.
// For non-scrollable tables this is a no-op.
func (m Model) EnsureVisible(rowIndex int) Model {
	if !m.config.Scrollable || rowIndex < 0 || rowIndex >= len(m.rows) {
		return m
	}

	if rowIndex < m.yOffset {
		m.yOffset = m.clampYOffset(rowIndex)
	}

	if visible := m.VisibleRowCount(); rowIndex >= m.yOffset+visible {
		m.yOffset = m.clampYOffset(rowIndex - visible + 1)
	}

	return m
}

// clampYOffset keeps the offset within the scrollable range.
func (m Model) clampYOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	maxOffset := max(len(m.rows)-m.VisibleRowCount(), 0)
	return min(offset, maxOffset)
}

// View renders the table without selection highlighting.
func (m Model) View() string {
	return m.renderTable(-1)
}

// ViewWithSelection renders the table with the specified row highlighted.
// Out-of-bounds selection index means no selection.
func (m Model) ViewWithSelection(selectedIndex int) string {
	return m.renderTable(selectedIndex)
}

func (m Model) renderTable(selectedIndex int) string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	innerWidth := m.width
	innerHeight := m.height
	if m.config.ShowBorder {
		innerWidth -= 2
		innerHeight -= 2
	}
	if innerWidth <= 0 || innerHeight <= 0 {
		return ""
	}

	visibleColumns := filterVisibleColumns(m.config.Columns, m.width)
	widths := calculateColumnWidths(visibleColumns, innerWidth)

	var content string
	if len(m.rows) == 0 {
		content = renderEmptyState(m.config.EmptyMessage, innerWidth, innerHeight)
	} else {
		content = m.renderRows(visibleColumns, widths, innerWidth, innerHeight, selectedIndex)
	}

	if m.config.ShowBorder {
		return panes.BorderedPane(panes.BorderConfig{
			Content:            content,
			Width:              m.width,
			Height:             m.height,
			TopLeft:            m.config.Title,
			TopRight:           m.config.RightTitle,
			BorderColor:        m.config.BorderColor,
			Focused:            m.config.Focused,
			FocusedBorderColor: m.config.FocusedBorderColor,
		})
	}

	return content
}

// renderRows renders the sticky header plus the visible window of rows.
func (m Model) renderRows(cols []ColumnConfig, widths []int, innerWidth, innerHeight, selectedIndex int) string {
	var lines []string

	if m.config.ShowHeader {
		lines = append(lines, headerStyle.Render(renderHeader(cols, widths)))
	}

	start := 0
	if m.config.Scrollable {
		start = m.yOffset
	}
	end := min(start+m.VisibleRowCount(), len(m.rows))

	for i := start; i < end; i++ {
		lines = append(lines, renderRow(m.rows[i], cols, widths, i == selectedIndex, innerWidth))
	}

	// Pad remaining height with empty lines
	for len(lines) < innerHeight {
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}
