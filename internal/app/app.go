// Package app contains the root application model.
package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wdgph/stdreg/internal/catalog"
	"github.com/wdgph/stdreg/internal/keys"
	"github.com/wdgph/stdreg/internal/log"
	"github.com/wdgph/stdreg/internal/ui/browse"
	"github.com/wdgph/stdreg/internal/ui/logoverlay"
	"github.com/wdgph/stdreg/internal/ui/toaster"
)

// Model is the root application state.
type Model struct {
	browse browse.Model

	// Global state
	width  int
	height int

	// Centralized toaster - owned by app, not individual panes
	toaster toaster.Model

	debugMode    bool
	logOverlay   logoverlay.Model
	logListenCmd tea.Cmd
}

// New creates the application model around a loaded catalog.
// debugMode enables the log overlay (Ctrl+X toggle).
func New(cat *catalog.Catalog, opts browse.Options, debugMode bool) Model {
	// Create log overlay and start listening if debug mode is enabled
	overlay := logoverlay.New()
	var logListenCmd tea.Cmd
	if debugMode {
		logListenCmd = overlay.StartListening()
	}

	return Model{
		browse:       browse.New(cat, opts),
		toaster:      toaster.New(),
		logOverlay:   overlay,
		debugMode:    debugMode,
		logListenCmd: logListenCmd,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.browse.Init(),
	}

	if m.logListenCmd != nil {
		cmds = append(cmds, m.logListenCmd)
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		m.browse = m.browse.SetSize(msg.Width, msg.Height)
		m.logOverlay.SetSize(msg.Width, msg.Height)

		return m, nil

	case log.LogEvent:
		// Route to log overlay (handles accumulation and listening)
		var cmd tea.Cmd
		m.logOverlay, cmd = m.logOverlay.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.debugMode && key.Matches(msg, keys.Browse.DebugLogs) {
			m.logOverlay.Toggle()
			return m, nil
		}

		// If the debug log overlay is visible it takes precedence for updates
		if m.logOverlay.Visible() {
			var cmd tea.Cmd
			m.logOverlay, cmd = m.logOverlay.Update(msg)

			return m, cmd
		}

	case browse.ShowToastMsg:
		m.toaster = m.toaster.Show(msg.Message, msg.Style)

		return m, toaster.ScheduleDismiss(toaster.DefaultDuration)

	case toaster.DismissMsg:
		m.toaster = m.toaster.Hide()

		return m, nil

	case logoverlay.CloseMsg:
		m.logOverlay.Hide()

		return m, nil
	}

	// Delegate everything else to the browser
	var cmd tea.Cmd
	m.browse, cmd = m.browse.Update(msg)

	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	view := m.browse.View()

	// Overlay toaster on top of the browser view
	if m.toaster.Visible() {
		view = m.toaster.Overlay(view, m.width, m.height)
	}

	// Overlay log viewer on top (only in debug mode when visible)
	if m.debugMode && m.logOverlay.Visible() {
		view = m.logOverlay.Overlay(view)
	}

	return view
}

// Close releases resources held by the application.
func (m *Model) Close() {
	m.logOverlay.StopListening()
}
