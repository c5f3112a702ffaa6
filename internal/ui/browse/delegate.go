package browse

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wdgph/stdreg/internal/registry"
	"github.com/wdgph/stdreg/internal/ui/styles"
)

// standardItem wraps a descriptor for the list component.
type standardItem struct {
	desc registry.Descriptor
}

// FilterValue implements list.Item interface.
func (i standardItem) FilterValue() string { return i.desc.ID }

// standardDelegate renders standards as single-line rows.
type standardDelegate struct{}

func newStandardDelegate() standardDelegate {
	return standardDelegate{}
}

// Height returns the height of a single list item.
func (d standardDelegate) Height() int { return 1 }

// Spacing returns the spacing between list items.
func (d standardDelegate) Spacing() int { return 0 }

// Update handles updates for list items (no-op for read-only display).
func (d standardDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

// Render renders a single standard.
//
// Format: > [yaml] gsso 1.0.0 Global Standard for...
func (d standardDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	desc := item.(standardItem).desc

	selected := index == m.Index()

	prefix := " "
	if selected {
		prefix = styles.SelectionIndicatorStyle.Render(">")
	}

	format := "[" + string(desc.Format) + "]"
	title := desc.DisplayTitle()

	// Truncate the title before styling so escape codes stay intact.
	if width := m.Width(); width > 0 {
		used := 1 + lipgloss.Width(format) + 1 + lipgloss.Width(desc.ID) + 1 + lipgloss.Width(desc.Version) + 1
		if avail := width - used; avail > 0 && lipgloss.Width(title) > avail {
			title = styles.TruncateString(title, avail)
		}
	}

	formatStyle := lipgloss.NewStyle().Foreground(styles.FormatColor(string(desc.Format)))
	idStyle := lipgloss.NewStyle().Foreground(styles.TextSecondaryColor)
	versionStyle := lipgloss.NewStyle().Foreground(styles.TextMutedColor)

	line := fmt.Sprintf("%s%s %s %s %s",
		prefix,
		formatStyle.Render(format),
		idStyle.Render(desc.ID),
		versionStyle.Render(desc.Version),
		title,
	)

	_, _ = fmt.Fprint(w, line)
}
