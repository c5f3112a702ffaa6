package table

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wdgph/stdreg/internal/ui/styles"
)

// Cached styles, initialized once and reused across renders.
var (
	selectionBgStyle = lipgloss.NewStyle().Background(styles.SelectionBackgroundColor)
	headerStyle      = lipgloss.NewStyle().Foreground(styles.TextMutedColor)
)

// Cached ANSI prefix for the selection background.
var selectionBgPrefix string

func init() {
	bgRendered := selectionBgStyle.Render(" ")
	selectionBgPrefix = strings.TrimSuffix(bgRendered, " \x1b[0m")
}

// renderHeader renders the header row with column alignment applied.
func renderHeader(cols []ColumnConfig, widths []int) string {
	if len(cols) == 0 || len(widths) == 0 {
		return ""
	}

	var parts []string
	for i, col := range cols {
		w := widths[i]
		header := col.Header

		if lipgloss.Width(header) > w {
			header = styles.TruncateString(header, w)
		}

		parts = append(parts, alignText(header, w, col.Align))
	}

	return strings.Join(parts, " ")
}

// renderRow renders a single data row. fullWidth is the total available
// width, used to extend the selection background to the right edge.
func renderRow(row any, cols []ColumnConfig, widths []int, selected bool, fullWidth int) string {
	if len(cols) == 0 || len(widths) == 0 {
		return ""
	}

	var result strings.Builder
	for i, col := range cols {
		// Separator before each cell except the first. The separator needs
		// the background too, or selection shows gaps between cells.
		if i > 0 {
			if selected {
				result.WriteString(selectionBgStyle.Render(" "))
			} else {
				result.WriteString(" ")
			}
		}

		result.WriteString(renderCell(row, col, widths[i], selected))
	}

	content := result.String()

	// Pad to full width so selection extends to the right edge.
	if selected {
		if contentWidth := lipgloss.Width(content); contentWidth < fullWidth {
			content += selectionBgStyle.Render(strings.Repeat(" ", fullWidth-contentWidth))
		}
	}

	return content
}

// renderCell renders one cell, applying the selection background to both the
// content and its alignment padding when selected.
func renderCell(row any, col ColumnConfig, width int, selected bool) string {
	content := safeRenderCallback(row, col, width, selected)

	if lipgloss.Width(content) > width {
		content = styles.TruncateString(content, width)
	}

	padding := width - lipgloss.Width(content)

	if !selected {
		return alignText(content, width, col.Align)
	}

	var result strings.Builder
	switch col.Align {
	case lipgloss.Right:
		if padding > 0 {
			result.WriteString(selectionBgStyle.Render(strings.Repeat(" ", padding)))
		}
		result.WriteString(applySelectionBackground(content))
	case lipgloss.Center:
		leftPad := padding / 2
		rightPad := padding - leftPad
		if leftPad > 0 {
			result.WriteString(selectionBgStyle.Render(strings.Repeat(" ", leftPad)))
		}
		result.WriteString(applySelectionBackground(content))
		if rightPad > 0 {
			result.WriteString(selectionBgStyle.Render(strings.Repeat(" ", rightPad)))
		}
	default: // lipgloss.Left
		result.WriteString(applySelectionBackground(content))
		if padding > 0 {
			result.WriteString(selectionBgStyle.Render(strings.Repeat(" ", padding)))
		}
	}

	return result.String()
}

// applySelectionBackground applies the selection background to content that
// may already carry foreground styling. ANSI full resets inside the content
// would drop the background, so each reset is followed by a background
// restore.
func applySelectionBackground(content string) string {
	if !strings.Contains(content, "\x1b[") {
		return selectionBgStyle.Render(content)
	}

	contentWithBg := strings.ReplaceAll(content, "\x1b[0m", "\x1b[0m"+selectionBgPrefix)
	return selectionBgPrefix + contentWithBg + "\x1b[0m"
}

// safeRenderCallback invokes the column's Render callback with panic
// recovery, so a bad type assertion in a callback degrades to an error cell
// instead of crashing the program.
func safeRenderCallback(row any, col ColumnConfig, width int, selected bool) (result string) {
	defer func() {
		if r := recover(); r != nil {
			result = styles.TruncateString(fmt.Sprintf("!ERR:%v", r), width)
		}
	}()

	if col.Render == nil {
		return ""
	}

	return col.Render(row, col.Key, width, selected)
}

// renderEmptyState renders the centered empty state message.
func renderEmptyState(msg string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	if msg == "" {
		msg = "No records"
	}

	styledMsg := lipgloss.NewStyle().
		Foreground(styles.TextMutedColor).
		Render(msg)

	if lipgloss.Width(styledMsg) > width {
		styledMsg = styles.TruncateString(msg, width)
	}

	leftPad := max((width-lipgloss.Width(styledMsg))/2, 0)
	centeredLine := strings.Repeat(" ", leftPad) + styledMsg

	topPad := max((height-1)/2, 0)

	var lines []string
	for range topPad {
		lines = append(lines, "")
	}
	lines = append(lines, centeredLine)
	for range height - topPad - 1 {
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

// alignText aligns text within the given width according to position.
func alignText(text string, width int, align lipgloss.Position) string {
	textWidth := lipgloss.Width(text)
	if textWidth >= width {
		return text
	}

	padding := width - textWidth

	switch align {
	case lipgloss.Right:
		return strings.Repeat(" ", padding) + text
	case lipgloss.Center:
		leftPad := padding / 2
		rightPad := padding - leftPad
		return strings.Repeat(" ", leftPad) + text + strings.Repeat(" ", rightPad)
	default: // lipgloss.Left or any other value
		return text + strings.Repeat(" ", padding)
	}
}
