package browse

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wdgph/stdreg/internal/catalog"
	"github.com/wdgph/stdreg/internal/records"
	"github.com/wdgph/stdreg/internal/ui/toaster"
)

// Message types

// recordsLoadedMsg carries the outcome of an asynchronous record load.
type recordsLoadedMsg struct {
	id  string
	rs  *records.RecordSet
	err error
}

// overviewLoadedMsg carries the registry-wide overview aggregation.
type overviewLoadedMsg struct {
	entries []catalog.StandardOverview
}

// searchResultMsg carries the outcome of an asynchronous record search.
type searchResultMsg struct {
	id     string
	result *records.SearchResult
	err    error
}

// refreshedMsg signals that the record cache was flushed.
type refreshedMsg struct {
	err error
}

// ShowToastMsg asks the app to show a toast notification.
type ShowToastMsg struct {
	Message string
	Style   toaster.Style
}

// Async commands

// loadRecordsCmd loads one standard's records off the Update loop.
func (m Model) loadRecordsCmd(id string) tea.Cmd {
	c := m.catalog
	return func() tea.Msg {
		rs, err := c.Records(context.Background(), id)
		return recordsLoadedMsg{id: id, rs: rs, err: err}
	}
}

// loadOverviewCmd aggregates per-standard statistics for the Overview tab.
func (m Model) loadOverviewCmd() tea.Cmd {
	c := m.catalog
	return func() tea.Msg {
		return overviewLoadedMsg{entries: c.Overview(context.Background())}
	}
}

// searchCmd runs a substring search over one standard's records.
func (m Model) searchCmd(id, query string) tea.Cmd {
	c := m.catalog
	return func() tea.Msg {
		result, err := c.Search(context.Background(), id, query)
		return searchResultMsg{id: id, result: result, err: err}
	}
}

// refreshCmd flushes the record cache so every standard rereads from disk.
func (m Model) refreshCmd() tea.Cmd {
	c := m.catalog
	return func() tea.Msg {
		return refreshedMsg{err: c.Refresh(context.Background())}
	}
}

// showToast wraps a toast request in a command.
func showToast(message string, style toaster.Style) tea.Cmd {
	return func() tea.Msg {
		return ShowToastMsg{Message: message, Style: style}
	}
}
