// Package logoverlay provides an in-app log viewer overlay that shows
// recent log entries without leaving the TUI.
package logoverlay

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/wdgph/stdreg/internal/log"
	"github.com/wdgph/stdreg/internal/ui/overlay"
	"github.com/wdgph/stdreg/internal/ui/panes"
	"github.com/wdgph/stdreg/internal/ui/styles"
)

const (
	viewportMaxHeight = 25  // fixed viewport height in lines
	viewportMinHeight = 5   // minimum viewport height for very small screens
	boxMaxWidth       = 160 // maximum box width in characters
	boxMinWidth       = 40  // minimum box width in characters
)

// CloseMsg is sent when the overlay should be closed.
type CloseMsg struct{}

// Model is the log overlay component state.
type Model struct {
	visible        bool
	minLevel       log.Level
	width          int
	height         int
	viewport       viewport.Model
	listener       *log.LogListener
	listenerCancel context.CancelFunc
}

// New creates a new log overlay model.
func New() Model {
	return Model{
		minLevel: log.LevelDebug,
	}
}

// NewWithSize creates a new log overlay with the given dimensions.
func NewWithSize(width, height int) Model {
	return Model{
		minLevel: log.LevelDebug,
		width:    width,
		height:   height,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the log overlay.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case log.LogEvent:
		// Re-arm the listener even while hidden so the tail stays live.
		if m.listener == nil {
			return m, nil
		}
		if m.visible {
			m.refreshViewport()
		}
		return m, m.listener.Listen()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.refreshViewport()
		return m, nil

	case tea.KeyMsg:
		if !m.visible {
			return m, nil
		}

		switch msg.String() {
		case "c":
			log.ClearBuffer()
			m.refreshViewport()
			return m, nil

		case "d":
			m.minLevel = log.LevelDebug
			m.refreshViewport()
			return m, nil

		case "i":
			m.minLevel = log.LevelInfo
			m.refreshViewport()
			return m, nil

		case "w":
			m.minLevel = log.LevelWarn
			m.refreshViewport()
			return m, nil

		case "e":
			m.minLevel = log.LevelError
			m.refreshViewport()
			return m, nil

		case "j", "down":
			m.viewport.ScrollDown(1)
			return m, nil

		case "k", "up":
			m.viewport.ScrollUp(1)
			return m, nil

		case "g":
			m.viewport.GotoTop()
			return m, nil

		case "G":
			m.viewport.GotoBottom()
			return m, nil

		case "ctrl+c":
			return m, tea.Quit

		case "ctrl+x", "esc":
			m.visible = false
			return m, func() tea.Msg { return CloseMsg{} }
		}
	}

	return m, nil
}

// View renders the log overlay content.
func (m Model) View() string {
	if !m.visible {
		return ""
	}
	return m.renderPane()
}

// renderPane builds the bordered log pane. It synchronizes the viewport's
// dimensions, content, and follow-scroll state as a side effect, which is
// why refreshViewport calls it on the persistent model.
func (m *Model) renderPane() string {
	return panes.ScrollablePane(m.boxWidth(), m.boxHeight(), panes.ScrollableConfig{
		Viewport:            &m.viewport,
		LeftTitle:           "Logs",
		BottomLeft:          m.buildFilterHint(),
		ShowScrollIndicator: true,
		BottomAligned:       true,
		TitleColor:          styles.OverlayTitleColor,
		BorderColor:         styles.OverlayBorderColor,
	}, m.buildLogContent)
}

// refreshViewport re-renders the pane against the persistent viewport so
// scroll commands operate on current content and bounds.
func (m *Model) refreshViewport() {
	if m.width == 0 || m.height == 0 {
		return
	}
	_ = m.renderPane()
}

// Overlay renders the log overlay centered on the given background.
func (m Model) Overlay(bg string) string {
	if !m.visible {
		return bg
	}
	return overlay.Place(overlay.Config{
		Width:    m.width,
		Height:   m.height,
		Position: overlay.Center,
	}, m.View(), bg)
}

// Visible returns whether the overlay is currently visible.
func (m Model) Visible() bool {
	return m.visible
}

// Toggle toggles the overlay visibility.
func (m *Model) Toggle() {
	m.visible = !m.visible
	if m.visible {
		m.refreshViewport()
	}
}

// Show makes the overlay visible.
func (m *Model) Show() {
	m.visible = true
	m.refreshViewport()
}

// Hide makes the overlay invisible.
func (m *Model) Hide() {
	m.visible = false
}

// StartListening subscribes to the log broker and returns a command that
// waits for the first entry. Each log.LogEvent handled by Update re-arms
// the subscription. Returns nil if a listener is already active or logging
// was never initialized.
func (m *Model) StartListening() tea.Cmd {
	if m.listener != nil {
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	listener := log.NewListener(ctx)
	if listener == nil {
		cancel()
		return nil
	}

	m.listener = listener
	m.listenerCancel = cancel
	return listener.Listen()
}

// StopListening cancels the log subscription.
func (m *Model) StopListening() {
	if m.listenerCancel != nil {
		m.listenerCancel()
	}
	m.listener = nil
	m.listenerCancel = nil
}

// SetSize updates the overlay's knowledge of the terminal size.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.refreshViewport()
}

// boxWidth returns the box width for the current screen size.
func (m Model) boxWidth() int {
	return max(min(m.width-4, boxMaxWidth), boxMinWidth)
}

// boxHeight returns the box height for the current screen size, borders
// included.
func (m Model) boxHeight() int {
	viewportHeight := min(viewportMaxHeight, m.height-6)
	viewportHeight = max(viewportHeight, viewportMinHeight)
	return viewportHeight + 2
}

// getFilteredLogs returns log entries matching the current filter level.
func (m Model) getFilteredLogs() []string {
	logs := log.GetRecentLogs(10000)
	var filtered []string
	for _, entry := range logs {
		if m.matchesLevel(entry) {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

// buildLogContent builds the log content string for the viewport.
func (m Model) buildLogContent(contentWidth int) string {
	filtered := m.getFilteredLogs()

	if len(filtered) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(styles.TextMutedColor).
			Italic(true)
		return emptyStyle.Render("No logs to display")
	}

	lines := make([]string, 0, len(filtered))
	for _, entry := range filtered {
		lines = append(lines, m.colorizeEntry(entry, contentWidth))
	}
	return strings.Join(lines, "\n")
}

// matchesLevel reports whether a log entry passes the current filter level.
// Levels are ordered DEBUG(0) < INFO(1) < WARN(2) < ERROR(3); entries at or
// above minLevel are shown. Entries without a recognizable level are always
// shown.
func (m Model) matchesLevel(entry string) bool {
	var entryLevel log.Level
	switch {
	case strings.Contains(entry, "[ERROR]"):
		entryLevel = log.LevelError
	case strings.Contains(entry, "[WARN]"):
		entryLevel = log.LevelWarn
	case strings.Contains(entry, "[INFO]"):
		entryLevel = log.LevelInfo
	case strings.Contains(entry, "[DEBUG]"):
		entryLevel = log.LevelDebug
	default:
		return true
	}
	return entryLevel >= m.minLevel
}

// colorizeEntry applies color to a log entry based on its level.
func (m Model) colorizeEntry(entry string, maxWidth int) string {
	entry = strings.TrimSuffix(entry, "\n")

	// ANSI-aware truncation handles UTF-8 in log fields correctly.
	if ansi.StringWidth(entry) > maxWidth {
		entry = ansi.Truncate(entry, maxWidth-3, "...")
	}

	var style lipgloss.Style
	switch {
	case strings.Contains(entry, "[ERROR]"):
		style = lipgloss.NewStyle().Foreground(styles.StatusErrorColor)
	case strings.Contains(entry, "[WARN]"):
		style = lipgloss.NewStyle().Foreground(styles.StatusWarningColor)
	case strings.Contains(entry, "[INFO]"):
		style = lipgloss.NewStyle().Foreground(styles.ToastBorderInfoColor)
	case strings.Contains(entry, "[DEBUG]"):
		style = lipgloss.NewStyle().Foreground(styles.TextMutedColor)
	default:
		style = lipgloss.NewStyle().Foreground(styles.TextPrimaryColor)
	}

	return style.Render(entry)
}

// buildFilterHint creates the bottom border hint showing filter options,
// with the active filter level highlighted.
func (m Model) buildFilterHint() string {
	hintStyle := lipgloss.NewStyle().Foreground(styles.TextMutedColor)
	activeStyle := lipgloss.NewStyle().
		Foreground(styles.TextPrimaryColor).
		Bold(true)

	hints := []string{hintStyle.Render("[c] Clear")}

	filters := []struct {
		level log.Level
		label string
	}{
		{log.LevelDebug, "[d] Debug"},
		{log.LevelInfo, "[i] Info"},
		{log.LevelWarn, "[w] Warn"},
		{log.LevelError, "[e] Error"},
	}
	for _, f := range filters {
		if m.minLevel == f.level {
			hints = append(hints, activeStyle.Render(f.label))
		} else {
			hints = append(hints, hintStyle.Render(f.label))
		}
	}

	return strings.Join(hints, " ")
}
