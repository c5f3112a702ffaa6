// Package panes contains reusable bordered pane components for the browse UI.
package panes

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wdgph/stdreg/internal/ui/styles"
)

// Rounded border characters.
const (
	borderHorizontal = "─"
	borderVertical   = "│"
)

// edge holds the corner pair for a top or bottom border line.
type edge struct {
	left  string
	right string
}

var (
	topEdge    = edge{"╭", "╮"}
	bottomEdge = edge{"╰", "╯"}
)

// BorderConfig configures the appearance of a bordered panel.
type BorderConfig struct {
	Content string // rendered inside the border
	Width   int    // total width including borders
	Height  int    // total height including borders

	// Titles embedded in the border lines, all optional.
	TopLeft     string
	TopRight    string
	BottomLeft  string
	BottomRight string

	// Tabs renders a tab strip in the top border in place of TopLeft. The
	// active label keeps the title color, inactive labels are muted.
	// ActiveTab is clamped to the valid range.
	Tabs      []string
	ActiveTab int

	Focused            bool
	TitleColor         lipgloss.TerminalColor // color for title text
	BorderColor        lipgloss.TerminalColor // border color when not focused
	FocusedBorderColor lipgloss.TerminalColor // border color when focused
}

// BorderedPane renders content within a bordered panel with optional titles
// embedded in the top and bottom border lines.
//
// Nil color fallback rules:
//   - both border colors nil: BorderDefaultColor for both states
//   - only BorderColor set: it is used for the focused state too
//   - only FocusedBorderColor set: unfocused falls back to BorderDefaultColor
func BorderedPane(cfg BorderConfig) string {
	borderColor := resolveBorderColor(cfg.BorderColor, cfg.FocusedBorderColor, cfg.Focused)

	titleColor := cfg.TitleColor
	if titleColor == nil {
		titleColor = styles.BorderDefaultColor
	}

	borderStyle := lipgloss.NewStyle().Foreground(borderColor)
	titleStyle := lipgloss.NewStyle().Foreground(titleColor)

	innerWidth := max(cfg.Width-2, 1)
	contentHeight := max(cfg.Height-2, 1)

	topLeft := cfg.TopLeft
	if len(cfg.Tabs) > 0 {
		topLeft = renderTabStrip(cfg.Tabs, cfg.ActiveTab, innerWidth, borderStyle, titleStyle)
	}

	topBorder := buildTitledEdge(topEdge, topLeft, cfg.TopRight, innerWidth, borderStyle, titleStyle)
	bottomBorder := buildTitledEdge(bottomEdge, cfg.BottomLeft, cfg.BottomRight, innerWidth, borderStyle, titleStyle)

	// lipgloss handles wrapping and truncation of overlong content.
	constrained := lipgloss.NewStyle().Width(innerWidth).Height(contentHeight).Render(cfg.Content)
	contentLines := strings.Split(constrained, "\n")

	paddedLines := make([]string, contentHeight)
	for i := range contentHeight {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}
		// Pad to innerWidth so the right border aligns.
		if w := lipgloss.Width(line); w < innerWidth {
			line += strings.Repeat(" ", innerWidth-w)
		}
		paddedLines[i] = borderStyle.Render(borderVertical) + line + borderStyle.Render(borderVertical)
	}

	var b strings.Builder
	b.WriteString(topBorder)
	b.WriteString("\n")
	b.WriteString(strings.Join(paddedLines, "\n"))
	b.WriteString("\n")
	b.WriteString(bottomBorder)

	return b.String()
}

// resolveBorderColor implements the nil color fallback rules documented on
// BorderedPane.
func resolveBorderColor(borderColor, focusedBorderColor lipgloss.TerminalColor, focused bool) lipgloss.TerminalColor {
	switch {
	case borderColor == nil && focusedBorderColor == nil:
		return styles.BorderDefaultColor
	case focusedBorderColor == nil:
		return borderColor
	case borderColor == nil:
		if focused {
			return focusedBorderColor
		}
		return styles.BorderDefaultColor
	case focused:
		return focusedBorderColor
	default:
		return borderColor
	}
}

// buildTitledEdge renders one horizontal border line with optional titles at
// either end.
//
// Format: ╭─ Left ───────────── Right ─╮
func buildTitledEdge(e edge, leftTitle, rightTitle string, innerWidth int, borderStyle, titleStyle lipgloss.Style) string {
	if innerWidth < 1 {
		return borderStyle.Render(e.left + e.right)
	}

	plain := borderStyle.Render(e.left + strings.Repeat(borderHorizontal, innerWidth) + e.right)
	if leftTitle == "" && rightTitle == "" {
		return plain
	}

	leftWidth := lipgloss.Width(leftTitle)
	rightWidth := lipgloss.Width(rightTitle)

	// Cells needed: "─ " + left + " " + dashes + " " + right + " ─"
	minRequired := 2 + leftWidth + 1 + 1 + 1 + rightWidth + 2
	switch {
	case rightTitle == "":
		minRequired = 2 + leftWidth + 1 + 1
	case leftTitle == "":
		minRequired = 1 + 1 + rightWidth + 2
	}

	if innerWidth < minRequired {
		// Too narrow for both; keep the left title, truncated if needed.
		if leftTitle != "" {
			return buildSingleTitleEdge(e, leftTitle, innerWidth, borderStyle, titleStyle)
		}
		return plain
	}

	var middleDashes int
	switch {
	case leftTitle != "" && rightTitle != "":
		middleDashes = innerWidth - leftWidth - rightWidth - 6
	case leftTitle != "":
		middleDashes = innerWidth - leftWidth - 3
	default:
		middleDashes = innerWidth - rightWidth - 3
	}
	middleDashes = max(middleDashes, 1)

	var b strings.Builder
	b.WriteString(borderStyle.Render(e.left))
	if leftTitle != "" {
		b.WriteString(borderStyle.Render(borderHorizontal + " "))
		b.WriteString(titleStyle.Render(leftTitle))
		b.WriteString(borderStyle.Render(" "))
	}
	b.WriteString(borderStyle.Render(strings.Repeat(borderHorizontal, middleDashes)))
	if rightTitle != "" {
		b.WriteString(borderStyle.Render(" "))
		b.WriteString(titleStyle.Render(rightTitle))
		b.WriteString(borderStyle.Render(" " + borderHorizontal))
	}
	b.WriteString(borderStyle.Render(e.right))

	return b.String()
}

// renderTabStrip joins tab labels with border dashes for embedding in the
// top border line. The active label keeps the title color, inactive labels
// are muted. When the full strip does not fit, only the active label is
// shown, truncated if necessary.
func renderTabStrip(tabs []string, active, innerWidth int, borderStyle, titleStyle lipgloss.Style) string {
	active = min(max(active, 0), len(tabs)-1)

	// buildTitledEdge spends "─ " and " ─" around the strip; each
	// separator costs another 3 cells.
	available := innerWidth - 4
	total := 3 * (len(tabs) - 1)
	for _, label := range tabs {
		total += lipgloss.Width(label)
	}

	if total > available {
		if available <= 0 {
			return ""
		}
		label := tabs[active]
		if lipgloss.Width(label) > available {
			label = styles.TruncateString(label, available)
		}
		return titleStyle.Render(label)
	}

	inactiveStyle := lipgloss.NewStyle().Foreground(styles.TextMutedColor)
	separator := borderStyle.Render(" " + borderHorizontal + " ")

	parts := make([]string, len(tabs))
	for i, label := range tabs {
		if i == active {
			parts[i] = titleStyle.Render(label)
		} else {
			parts[i] = inactiveStyle.Render(label)
		}
	}
	return strings.Join(parts, separator)
}

// buildSingleTitleEdge renders a border line carrying a single left title,
// truncating the title with an ellipsis when the line is narrow.
func buildSingleTitleEdge(e edge, title string, innerWidth int, borderStyle, titleStyle lipgloss.Style) string {
	plain := borderStyle.Render(e.left + strings.Repeat(borderHorizontal, innerWidth) + e.right)

	// "─ " before and " ─" after leave innerWidth-4 cells for the title.
	if innerWidth < 4 {
		return plain
	}

	if available := innerWidth - 4; lipgloss.Width(title) > available {
		title = styles.TruncateString(title, available)
	}

	remaining := max(innerWidth-3-lipgloss.Width(title), 0)
	return borderStyle.Render(e.left+borderHorizontal+" ") +
		titleStyle.Render(title) +
		borderStyle.Render(" "+strings.Repeat(borderHorizontal, remaining)+e.right)
}
