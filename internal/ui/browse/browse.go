// Package browse implements the standards browser: a list of registered
// standards on the left and a tabbed content pane on the right.
package browse

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/wdgph/stdreg/internal/catalog"
	"github.com/wdgph/stdreg/internal/keys"
	"github.com/wdgph/stdreg/internal/presentation"
	"github.com/wdgph/stdreg/internal/records"
	"github.com/wdgph/stdreg/internal/registry"
	"github.com/wdgph/stdreg/internal/ui/markdown"
	"github.com/wdgph/stdreg/internal/ui/panes"
	"github.com/wdgph/stdreg/internal/ui/styles"
	"github.com/wdgph/stdreg/internal/ui/table"
	"github.com/wdgph/stdreg/internal/ui/toaster"
)

// Tab identifies a content tab in the right pane.
type Tab int

const (
	TabOverview Tab = iota
	TabDetails
	TabRecords
	TabSearch
)

// tabCount is the number of content tabs.
const tabCount = 4

func (t Tab) String() string {
	switch t {
	case TabOverview:
		return "Overview"
	case TabDetails:
		return "Details"
	case TabRecords:
		return "Records"
	case TabSearch:
		return "Search"
	default:
		return "Unknown"
	}
}

// FocusPane represents which pane receives navigation keys.
type FocusPane int

const (
	FocusList    FocusPane = iota // Left: standards list
	FocusContent                  // Right: active tab content
	FocusInput                    // Right: search query input
)

// Column layout for the record tables. Columns narrower than
// minColumnWidth are unreadable, so extra fields scroll horizontally
// instead of squeezing in.
const (
	minColumnWidth = 10
	maxColumnWidth = 40
)

var (
	errorStyle = lipgloss.NewStyle().
			Foreground(styles.StatusErrorColor).
			Padding(1, 2)

	emptyStyle = lipgloss.NewStyle().
			Foreground(styles.TextSecondaryColor).
			Italic(true).
			Padding(1, 2)

	inputLineStyle = lipgloss.NewStyle().Padding(0, 1)

	helpBarStyle = lipgloss.NewStyle().Padding(0, 1)
)

// Options adjusts presentation details of the browser.
type Options struct {
	// MarkdownStyle selects the glamour style for the Overview and
	// Details tabs ("dark" or "light"). Empty means dark.
	MarkdownStyle string

	// MaxResults caps the rows shown on the Search tab. Zero shows all.
	MaxResults int

	// RecordPreview caps the record rows previewed on the Details tab.
	// Zero previews every record.
	RecordPreview int

	// ShowStatusBar renders the keybinding help bar below the panes.
	ShowStatusBar bool
}

// Model holds the browser state.
type Model struct {
	catalog *catalog.Catalog

	// Standards list (left pane)
	standards   list.Model
	descriptors []registry.Descriptor
	selectedIdx int

	// Right pane
	activeTab Tab
	focus     FocusPane

	// Overview tab
	overview         []catalog.StandardOverview
	overviewViewport viewport.Model
	overviewPage     string

	// Details tab
	detailsViewport viewport.Model
	detailsPage     string
	recordPreview   int

	// Records tab
	recordSet    *records.RecordSet
	recordsErr   error
	loading      bool
	recordsTable table.Model
	recordsRow   int
	fieldOffset  int

	// Search tab
	input       textinput.Model
	result      *records.SearchResult
	searchErr   error
	resultTable table.Model
	resultRow   int
	maxResults  int

	markdownStyle string

	help          help.Model
	showStatusBar bool

	// Layout
	width  int
	height int
}

// New creates a browser over the catalog's registered standards.
func New(cat *catalog.Catalog, opts Options) Model {
	descriptors := cat.Descriptors()

	items := make([]list.Item, len(descriptors))
	for i, desc := range descriptors {
		items[i] = standardItem{desc: desc}
	}

	// Configure standards list with custom delegate
	delegate := newStandardDelegate()
	standards := list.New(items, delegate, 0, 0)
	standards.SetShowTitle(false)
	standards.SetShowStatusBar(false)
	standards.SetShowHelp(false)
	standards.SetFilteringEnabled(false)

	input := textinput.New()
	input.Placeholder = "Search records..."
	input.Prompt = "/ "

	// The record and result tables start as zero values; their column
	// configs depend on loaded fields and are installed by the refresh
	// functions once records arrive.
	return Model{
		catalog:          cat,
		standards:        standards,
		descriptors:      descriptors,
		overviewViewport: viewport.New(0, 0),
		detailsViewport:  viewport.New(0, 0),
		input:            input,
		maxResults:       opts.MaxResults,
		recordPreview:    opts.RecordPreview,
		markdownStyle:    opts.MarkdownStyle,
		help:             help.New(),
		showStatusBar:    opts.ShowStatusBar,
		loading:          len(descriptors) > 0,
		focus:            FocusList,
		activeTab:        TabOverview,
	}
}

// Init starts the overview aggregation and the first record load.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadOverviewCmd()}
	if desc, ok := m.selectedDescriptor(); ok {
		cmds = append(cmds, m.loadRecordsCmd(desc.ID))
	}
	return tea.Batch(cmds...)
}

// SetSize handles terminal resize.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height

	// Guard against zero dimensions
	if width == 0 || height == 0 {
		return m
	}

	m.help.Width = width

	listWidth := max(m.listWidth()-2, 1)
	listHeight := max(m.paneHeight()-2, 1)
	m.standards.SetSize(listWidth, listHeight)

	m.input.Width = max(m.contentWidth()-8, 10)

	m.refreshOverview()
	m.refreshDetails()
	m.refreshRecordsTable()
	m.refreshResultTable()

	return m
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case recordsLoadedMsg:
		return m.handleRecordsLoaded(msg)

	case overviewLoadedMsg:
		m.overview = msg.entries
		m.refreshOverview()
		return m, nil

	case searchResultMsg:
		return m.handleSearchResult(msg)

	case refreshedMsg:
		return m.handleRefreshed(msg)
	}

	return m, nil
}

// handleRecordsLoaded applies an asynchronous record load. Results for a
// standard that is no longer selected are dropped.
func (m Model) handleRecordsLoaded(msg recordsLoadedMsg) (Model, tea.Cmd) {
	desc, ok := m.selectedDescriptor()
	if !ok || desc.ID != msg.id {
		return m, nil
	}

	m.loading = false
	m.recordSet = msg.rs
	m.recordsErr = msg.err
	m.recordsRow = 0
	m.fieldOffset = 0
	m.refreshRecordsTable()
	m.refreshDetails()

	return m, nil
}

// handleSearchResult applies an asynchronous search outcome.
func (m Model) handleSearchResult(msg searchResultMsg) (Model, tea.Cmd) {
	desc, ok := m.selectedDescriptor()
	if !ok || desc.ID != msg.id {
		return m, nil
	}

	if msg.err != nil {
		m.searchErr = msg.err
		m.result = nil
		return m, nil
	}

	m.searchErr = nil
	m.result = msg.result
	m.resultRow = 0
	m.refreshResultTable()

	return m, nil
}

// handleRefreshed reloads the standards list after a cache flush.
func (m Model) handleRefreshed(msg refreshedMsg) (Model, tea.Cmd) {
	if msg.err != nil {
		return m, showToast("Refresh failed: "+msg.err.Error(), toaster.StyleError)
	}

	m.descriptors = m.catalog.Descriptors()
	items := make([]list.Item, len(m.descriptors))
	for i, desc := range m.descriptors {
		items[i] = standardItem{desc: desc}
	}
	m.standards.SetItems(items)

	if m.selectedIdx >= len(m.descriptors) {
		m.selectedIdx = max(len(m.descriptors)-1, 0)
	}
	m.standards.Select(m.selectedIdx)

	m.recordSet = nil
	m.recordsErr = nil
	m.result = nil
	m.searchErr = nil
	m.recordsRow = 0
	m.resultRow = 0
	m.refreshDetails()

	cmds := []tea.Cmd{
		m.loadOverviewCmd(),
		showToast("Standards reloaded", toaster.StyleSuccess),
	}
	if desc, ok := m.selectedDescriptor(); ok {
		m.loading = true
		cmds = append(cmds, m.loadRecordsCmd(desc.ID))
	}
	return m, tea.Batch(cmds...)
}

// selectedDescriptor returns the descriptor under the list cursor.
func (m Model) selectedDescriptor() (registry.Descriptor, bool) {
	if m.selectedIdx < 0 || m.selectedIdx >= len(m.descriptors) {
		return registry.Descriptor{}, false
	}
	return m.descriptors[m.selectedIdx], true
}

// listWidth is the width of the standards pane.
func (m Model) listWidth() int { return m.width / 3 }

// contentWidth is the width of the tabbed content pane.
func (m Model) contentWidth() int { return m.width - m.listWidth() - 1 }

// paneHeight is the height left for the panes above the help bar.
func (m Model) paneHeight() int {
	if m.height == 0 {
		return 0
	}
	if !m.showStatusBar {
		return m.height
	}
	return max(m.height-lipgloss.Height(m.renderHelpBar()), 1)
}

// View renders the two-pane layout with the help bar below.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	gap := 1
	paneHeight := m.paneHeight()
	leftPanel := m.renderStandardsPane(m.listWidth(), paneHeight)
	rightPanel := m.renderContentPane(m.contentWidth(), paneHeight)

	content := lipgloss.JoinHorizontal(
		lipgloss.Top,
		leftPanel,
		strings.Repeat(" ", gap),
		rightPanel,
	)

	if !m.showStatusBar {
		return content
	}
	return lipgloss.JoinVertical(lipgloss.Left, content, m.renderHelpBar())
}

// renderStandardsPane renders the left pane listing every registered
// standard.
func (m Model) renderStandardsPane(width, height int) string {
	var content string
	if len(m.descriptors) == 0 {
		content = emptyStyle.Render("No standards registered")
	} else {
		content = m.standards.View()
	}

	return panes.BorderedPane(panes.BorderConfig{
		Content:            content,
		Width:              width,
		Height:             height,
		TopLeft:            fmt.Sprintf("Standards (%d)", len(m.descriptors)),
		Focused:            m.focus == FocusList,
		TitleColor:         styles.OverlayTitleColor,
		BorderColor:        styles.BorderDefaultColor,
		FocusedBorderColor: styles.BorderHighlightFocusColor,
	})
}

// renderContentPane renders the active tab. Pointer receiver so viewport
// scroll state survives into the next Update.
func (m *Model) renderContentPane(width, height int) string {
	focused := m.focus == FocusContent || m.focus == FocusInput

	switch m.activeTab {
	case TabRecords:
		return m.renderRecordsPane(width, height, focused)
	case TabSearch:
		return m.renderSearchPane(width, height, focused)
	}

	// Overview and Details are markdown documents in a viewport.
	vp := &m.overviewViewport
	doc := m.overviewPage
	placeholder := "Loading overview..."
	if m.activeTab == TabDetails {
		vp = &m.detailsViewport
		doc = m.detailsPage
		placeholder = "No standard selected"
	}
	if doc == "" {
		doc = emptyStyle.Render(placeholder)
	}

	return panes.ScrollablePane(width, height, panes.ScrollableConfig{
		Viewport:            vp,
		Tabs:                tabLabels(),
		ActiveTab:           int(m.activeTab),
		ShowScrollIndicator: true,
		Focused:             focused,
		TitleColor:          styles.OverlayTitleColor,
		BorderColor:         styles.BorderDefaultColor,
		FocusedBorderColor:  styles.BorderHighlightFocusColor,
	}, func(int) string { return doc })
}

// renderRecordsPane renders the record table for the selected standard.
func (m *Model) renderRecordsPane(width, height int, focused bool) string {
	var topRight string
	if m.recordSet != nil && m.recordsErr == nil {
		topRight = presentation.FormatCount(len(m.recordSet.Records)) + " records"
	}

	return panes.BorderedPane(panes.BorderConfig{
		Content:            m.recordsContent(),
		Width:              width,
		Height:             height,
		Tabs:               tabLabels(),
		ActiveTab:          int(m.activeTab),
		TopRight:           topRight,
		BottomLeft:         m.fieldWindowHint(),
		Focused:            focused,
		TitleColor:         styles.OverlayTitleColor,
		BorderColor:        styles.BorderDefaultColor,
		FocusedBorderColor: styles.BorderHighlightFocusColor,
	})
}

// recordsContent picks the body of the Records tab for the current load
// state.
func (m *Model) recordsContent() string {
	switch {
	case m.recordsErr != nil:
		return renderLoadError(m.recordsErr, m.wrapWidth())
	case m.loading:
		return emptyStyle.Render("Loading records...")
	case m.recordSet == nil:
		return emptyStyle.Render("No records loaded")
	default:
		return m.recordsTable.ViewWithSelection(m.recordsRow)
	}
}

// renderSearchPane renders the query input above the result table.
func (m *Model) renderSearchPane(width, height int, focused bool) string {
	var sb strings.Builder
	sb.WriteString(inputLineStyle.Render(m.input.View()))
	sb.WriteString("\n\n")
	sb.WriteString(m.searchContent())

	var topRight string
	if m.result != nil {
		topRight = matchCountLabel(m.result)
	}

	var bottomLeft string
	if m.result != nil && m.maxResults > 0 && len(m.result.Records) > m.maxResults {
		bottomLeft = fmt.Sprintf("first %d shown", m.maxResults)
	}

	return panes.BorderedPane(panes.BorderConfig{
		Content:            sb.String(),
		Width:              width,
		Height:             height,
		Tabs:               tabLabels(),
		ActiveTab:          int(m.activeTab),
		TopRight:           topRight,
		BottomLeft:         bottomLeft,
		Focused:            focused,
		TitleColor:         styles.OverlayTitleColor,
		BorderColor:        styles.BorderDefaultColor,
		FocusedBorderColor: styles.BorderHighlightFocusColor,
	})
}

// searchContent picks the body shown under the query input.
func (m *Model) searchContent() string {
	switch {
	case m.searchErr != nil:
		return errorStyle.Render(wordwrap.String("Error: "+m.searchErr.Error(), m.wrapWidth()))
	case m.recordsErr != nil:
		return renderLoadError(m.recordsErr, m.wrapWidth())
	case m.result == nil:
		return emptyStyle.Render("Type a query and press enter")
	case len(m.result.Records) == 0:
		return emptyStyle.Render("No matches found")
	default:
		return m.resultTable.ViewWithSelection(m.resultRow)
	}
}

// renderHelpBar renders the context-sensitive key help footer.
func (m Model) renderHelpBar() string {
	var km help.KeyMap = keys.Browse
	if m.activeTab == TabSearch {
		km = keys.Search
	}
	return helpBarStyle.Render(m.help.View(km))
}

// renderLoadError shows one standard's load failure, wrapped to the pane.
// Only the failed standard is affected; the rest of the registry stays
// browsable.
func renderLoadError(err error, width int) string {
	return errorStyle.Render(wordwrap.String("Error: "+err.Error(), width)) + "\n" +
		emptyStyle.Render("Other standards remain available.")
}

// matchCountLabel summarizes a search result for the pane title.
func matchCountLabel(res *records.SearchResult) string {
	n := len(res.Records)
	if res.Query == "" {
		return presentation.FormatCount(n) + " records"
	}
	if n == 1 {
		return "1 match"
	}
	return presentation.FormatCount(n) + " matches"
}

// tabLabels returns the labels for the content tab strip.
func tabLabels() []string {
	labels := make([]string, tabCount)
	for i := range tabCount {
		labels[i] = Tab(i).String()
	}
	return labels
}

// refreshOverview rebuilds the rendered Overview page.
func (m *Model) refreshOverview() {
	w := m.wrapWidth()
	if w <= 0 {
		return
	}
	m.overviewPage = renderMarkdown(presentation.BuildOverviewPage(m.overview), w, m.markdownStyle)
	m.syncViewport(&m.overviewViewport, m.overviewPage)
}

// refreshDetails rebuilds the rendered Details page for the selected
// standard.
func (m *Model) refreshDetails() {
	w := m.wrapWidth()
	if w <= 0 {
		return
	}
	desc, ok := m.selectedDescriptor()
	if !ok {
		m.detailsPage = ""
		m.syncViewport(&m.detailsViewport, m.detailsPage)
		return
	}
	var stats records.Statistics
	var fields []string
	if m.recordSet != nil {
		stats = m.recordSet.Stats()
		fields = m.recordSet.Fields
	}
	page := presentation.BuildDetailsPage(desc, stats, fields, m.recordsErr)
	if m.recordSet != nil && len(m.recordSet.Records) > 0 {
		page += "\n## Preview\n\n" + presentation.BuildRecordPreview(m.recordSet, m.recordPreview)
	}
	m.detailsPage = renderMarkdown(page, w, m.markdownStyle)
	m.syncViewport(&m.detailsViewport, m.detailsPage)
}

// syncViewport pushes rendered content into a persistent viewport so
// scroll keys act on current content and bounds. View re-applies the same
// content idempotently.
func (m *Model) syncViewport(vp *viewport.Model, content string) {
	vp.Width = max(m.contentWidth()-2, 1)
	vp.Height = max(m.paneHeight()-2, 1)
	vp.SetContent(content)
}

// wrapWidth is the wrap width inside the content pane's borders.
func (m Model) wrapWidth() int {
	return m.contentWidth() - 2
}

// renderMarkdown renders a markdown page at the given wrap width. Render
// failures degrade to the raw markdown source.
func renderMarkdown(page string, width int, style string) string {
	r, err := markdown.New(width, style)
	if err != nil {
		return page
	}
	out, err := r.Render(page)
	if err != nil {
		return page
	}
	return strings.TrimRight(out, "\n")
}

// refreshRecordsTable rebuilds the record table for the current field
// window and pane size.
func (m *Model) refreshRecordsTable() {
	if m.recordSet == nil {
		return
	}

	rows := make([]any, len(m.recordSet.Records))
	for i, rec := range m.recordSet.Records {
		rows[i] = rec
	}

	m.recordsTable = m.recordsTable.
		SetConfig(table.TableConfig{
			Columns:      recordColumns(m.visibleFields()),
			ShowHeader:   true,
			Scrollable:   true,
			EmptyMessage: "No records",
		}).
		SetRows(rows).
		SetSize(max(m.contentWidth()-2, 1), max(m.paneHeight()-2, 1)).
		EnsureVisible(m.recordsRow)
}

// refreshResultTable rebuilds the search result table.
func (m *Model) refreshResultTable() {
	if m.result == nil {
		return
	}

	recs := m.result.Records
	if m.maxResults > 0 && len(recs) > m.maxResults {
		recs = recs[:m.maxResults]
	}
	rows := make([]any, len(recs))
	for i, rec := range recs {
		rows[i] = rec
	}

	// The input row and its spacer sit above the table.
	m.resultTable = m.resultTable.
		SetConfig(table.TableConfig{
			Columns:      recordColumns(m.visibleFields()),
			ShowHeader:   true,
			Scrollable:   true,
			EmptyMessage: "No matches",
		}).
		SetRows(rows).
		SetSize(max(m.contentWidth()-2, 1), max(m.paneHeight()-4, 1)).
		EnsureVisible(m.resultRow)
}

// visibleFields returns the window of fields currently shown as columns.
func (m *Model) visibleFields() []string {
	if m.recordSet == nil || len(m.recordSet.Fields) == 0 {
		return nil
	}
	fields := m.recordSet.Fields
	count := m.visibleFieldCount()
	offset := min(m.fieldOffset, max(len(fields)-count, 0))
	m.fieldOffset = offset
	return fields[offset : offset+count]
}

// visibleFieldCount is how many columns fit at a readable width.
func (m *Model) visibleFieldCount() int {
	if m.recordSet == nil {
		return 0
	}
	width := max(m.contentWidth()-2, 1)
	count := max(width/(minColumnWidth+2), 1)
	return min(count, len(m.recordSet.Fields))
}

// fieldWindowHint describes the visible field window when the record set
// has more fields than fit.
func (m *Model) fieldWindowHint() string {
	if m.recordSet == nil || m.recordsErr != nil {
		return ""
	}
	total := len(m.recordSet.Fields)
	visible := m.visibleFieldCount()
	if total <= visible {
		return ""
	}
	return fmt.Sprintf("h/l fields %d-%d of %d", m.fieldOffset+1, m.fieldOffset+visible, total)
}

// recordColumns builds table columns for a window of record fields.
func recordColumns(fields []string) []table.ColumnConfig {
	cols := make([]table.ColumnConfig, len(fields))
	for i, field := range fields {
		cols[i] = table.ColumnConfig{
			Key:      field,
			Header:   presentation.FormatHeader(field),
			MinWidth: minColumnWidth,
			MaxWidth: maxColumnWidth,
			Render:   renderRecordCell,
		}
	}
	return cols
}

// renderRecordCell renders one field value of a record row. Fields the
// record never carried render as the null placeholder.
func renderRecordCell(row any, key string, width int, _ bool) string {
	rec, ok := row.(records.Record)
	if !ok {
		return ""
	}
	return presentation.TruncateCell(presentation.FormatCell(rec[key]), width)
}
