package browse

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wdgph/stdreg/internal/keys"
	"github.com/wdgph/stdreg/internal/log"
)

// handleKey routes keyboard input by focus and active tab.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	// The search input captures typing while focused.
	if m.focus == FocusInput {
		return m.handleInputKey(msg)
	}

	switch {
	case key.Matches(msg, keys.Browse.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Browse.Help):
		m.help.ShowAll = !m.help.ShowAll
		// The help bar height changed, so the tables must resize.
		m.refreshRecordsTable()
		m.refreshResultTable()
		return m, nil

	case key.Matches(msg, keys.Browse.Refresh):
		return m, m.refreshCmd()

	case key.Matches(msg, keys.Browse.FocusSearch):
		return m.focusSearch()

	case key.Matches(msg, keys.Browse.Escape):
		if m.focus == FocusContent {
			m.focus = FocusList
		}
		return m, nil

	case key.Matches(msg, keys.Browse.Enter):
		return m.handleEnter()
	}

	// The Records tab spends h/l on horizontal field scrolling; tab and
	// shift+tab still cycle tabs there.
	if m.focus == FocusContent && m.activeTab == TabRecords {
		switch msg.String() {
		case "h", "left":
			m.scrollFields(-1)
			return m, nil
		case "l", "right":
			m.scrollFields(1)
			return m, nil
		}
	}

	switch {
	case key.Matches(msg, keys.Browse.PrevTab):
		return m.cycleTab(-1)

	case key.Matches(msg, keys.Browse.NextTab):
		return m.cycleTab(1)

	case key.Matches(msg, keys.Browse.Up):
		return m.handleNavUp()

	case key.Matches(msg, keys.Browse.Down):
		return m.handleNavDown()
	}

	return m, nil
}

// handleInputKey processes keys while the search input has focus. Blur,
// execute, and quit are intercepted; everything else goes to the input.
func (m Model) handleInputKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit

	case key.Matches(msg, keys.Search.Blur):
		m.input.Blur()
		m.focus = FocusContent
		return m, nil

	case key.Matches(msg, keys.Search.Execute):
		m.input.Blur()
		m.focus = FocusContent
		return m.executeSearch()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleEnter opens the record table from the list, or re-runs the search
// from the result side of the Search tab.
func (m Model) handleEnter() (Model, tea.Cmd) {
	switch {
	case m.focus == FocusList:
		m.activeTab = TabRecords
		m.focus = FocusContent
		return m, m.ensureRecordsLoaded()

	case m.activeTab == TabSearch:
		return m.executeSearch()
	}
	return m, nil
}

// handleNavUp processes upward navigation for the focused pane.
func (m Model) handleNavUp() (Model, tea.Cmd) {
	if m.focus == FocusList {
		if m.selectedIdx > 0 {
			return m.selectStandard(m.selectedIdx - 1)
		}
		return m, nil
	}

	switch m.activeTab {
	case TabOverview:
		m.overviewViewport.ScrollUp(1)
	case TabDetails:
		m.detailsViewport.ScrollUp(1)
	case TabRecords:
		if m.recordsRow > 0 {
			m.recordsRow--
			m.recordsTable = m.recordsTable.EnsureVisible(m.recordsRow)
		}
	case TabSearch:
		if m.resultRow > 0 {
			m.resultRow--
			m.resultTable = m.resultTable.EnsureVisible(m.resultRow)
		}
	}
	return m, nil
}

// handleNavDown processes downward navigation for the focused pane.
func (m Model) handleNavDown() (Model, tea.Cmd) {
	if m.focus == FocusList {
		if m.selectedIdx < len(m.descriptors)-1 {
			return m.selectStandard(m.selectedIdx + 1)
		}
		return m, nil
	}

	switch m.activeTab {
	case TabOverview:
		m.overviewViewport.ScrollDown(1)
	case TabDetails:
		m.detailsViewport.ScrollDown(1)
	case TabRecords:
		if m.recordsRow < m.recordsTable.RowCount()-1 {
			m.recordsRow++
			m.recordsTable = m.recordsTable.EnsureVisible(m.recordsRow)
		}
	case TabSearch:
		if m.resultRow < m.resultTable.RowCount()-1 {
			m.resultRow++
			m.resultTable = m.resultTable.EnsureVisible(m.resultRow)
		}
	}
	return m, nil
}

// selectStandard moves the list selection and starts loading the newly
// selected standard's records. Stale per-standard state is cleared; the
// query text survives so it can be reused across standards.
func (m Model) selectStandard(idx int) (Model, tea.Cmd) {
	m.selectedIdx = idx
	m.standards.Select(idx)

	m.recordSet = nil
	m.recordsErr = nil
	m.loading = true
	m.recordsRow = 0
	m.fieldOffset = 0
	m.result = nil
	m.searchErr = nil
	m.resultRow = 0

	m.refreshDetails()
	m.detailsViewport.GotoTop()

	desc, ok := m.selectedDescriptor()
	if !ok {
		m.loading = false
		return m, nil
	}
	log.Debug(log.CatUI, "standard selected", "standard", desc.ID)
	return m, m.loadRecordsCmd(desc.ID)
}

// cycleTab moves the active tab by delta with wraparound.
func (m Model) cycleTab(delta int) (Model, tea.Cmd) {
	m.activeTab = Tab((int(m.activeTab) + delta + tabCount) % tabCount)
	log.Debug(log.CatUI, "tab changed", "tab", m.activeTab.String())

	var cmd tea.Cmd
	if m.activeTab == TabRecords || m.activeTab == TabSearch {
		cmd = m.ensureRecordsLoaded()
	}
	return m, cmd
}

// focusSearch jumps to the Search tab and focuses the query input.
func (m Model) focusSearch() (Model, tea.Cmd) {
	m.activeTab = TabSearch
	m.focus = FocusInput
	m.input.Focus()
	return m, tea.Batch(textinput.Blink, m.ensureRecordsLoaded())
}

// executeSearch runs the current query against the selected standard.
func (m Model) executeSearch() (Model, tea.Cmd) {
	desc, ok := m.selectedDescriptor()
	if !ok {
		return m, nil
	}
	return m, m.searchCmd(desc.ID, m.input.Value())
}

// ensureRecordsLoaded starts a record load for the selected standard
// unless one already completed, failed, or is in flight.
func (m *Model) ensureRecordsLoaded() tea.Cmd {
	if m.recordSet != nil || m.recordsErr != nil || m.loading {
		return nil
	}
	desc, ok := m.selectedDescriptor()
	if !ok {
		return nil
	}
	m.loading = true
	return m.loadRecordsCmd(desc.ID)
}

// scrollFields shifts the visible field window on the Records tab.
func (m *Model) scrollFields(delta int) {
	if m.recordSet == nil {
		return
	}
	maxOffset := max(len(m.recordSet.Fields)-m.visibleFieldCount(), 0)
	m.fieldOffset = min(max(m.fieldOffset+delta, 0), maxOffset)
	m.refreshRecordsTable()
	m.refreshResultTable()
}
