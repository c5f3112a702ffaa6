// Package keys contains keybinding definitions.
package keys

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// BrowseMap defines the keybindings for the standards browser.
type BrowseMap struct {
	// Navigation
	Up      key.Binding
	Down    key.Binding
	PrevTab key.Binding
	NextTab key.Binding

	// Actions
	Enter       key.Binding
	Refresh     key.Binding
	FocusSearch key.Binding

	// General
	Help      key.Binding
	DebugLogs key.Binding
	Escape    key.Binding
	Quit      key.Binding
}

// SearchMap defines the keybindings for the record search tab.
type SearchMap struct {
	// Navigation
	Up   key.Binding
	Down key.Binding

	// Search
	FocusSearch key.Binding
	Execute     key.Binding
	Blur        key.Binding

	// General
	Help key.Binding
	Quit key.Binding
}

// Browse holds the active browser keybindings. ApplyConfig rebinds the
// configurable entries at startup.
var Browse = defaultBrowseMap()

// Search holds the active search-tab keybindings.
var Search = defaultSearchMap()

func defaultBrowseMap() BrowseMap {
	return BrowseMap{
		// Navigation
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "move down"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("h", "left", "shift+tab"),
			key.WithHelp("h/←", "previous tab"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("l", "right", "tab"),
			key.WithHelp("l/→", "next tab"),
		),

		// Actions
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "view records"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload standards"),
		),
		FocusSearch: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search records"),
		),

		// General
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		DebugLogs: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "debug logs"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "go back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func defaultSearchMap() SearchMap {
	return SearchMap{
		// Navigation
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "previous result"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "next result"),
		),

		// Search
		FocusSearch: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "focus search"),
		),
		Execute: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run search"),
		),
		Blur: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "blur input"),
		),

		// General
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns keybindings for the short help view.
func (k BrowseMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k BrowseMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PrevTab, k.NextTab},    // Navigation
		{k.Enter, k.Refresh, k.FocusSearch},     // Actions
		{k.Help, k.DebugLogs, k.Escape, k.Quit}, // General
	}
}

// ShortHelp returns keybindings for the short help view.
func (k SearchMap) ShortHelp() []key.Binding {
	return []key.Binding{k.FocusSearch, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k SearchMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},                     // Navigation
		{k.FocusSearch, k.Execute, k.Blur}, // Search
		{k.Help, k.Quit},                   // General
	}
}

// ApplyConfig rebinds the configurable keys from the user's config.
// Empty strings leave the defaults in place.
func ApplyConfig(searchKey, debugLogsKey string) {
	if searchKey != "" {
		terminal := translateToTerminal(searchKey)
		display := translateToDisplay(terminal)
		Browse.FocusSearch = key.NewBinding(
			key.WithKeys(terminal),
			key.WithHelp(display, "search records"),
		)
		Search.FocusSearch = key.NewBinding(
			key.WithKeys(terminal),
			key.WithHelp(display, "focus search"),
		)
	}

	if debugLogsKey != "" {
		terminal := translateToTerminal(debugLogsKey)
		display := translateToDisplay(terminal)
		Browse.DebugLogs = key.NewBinding(
			key.WithKeys(terminal),
			key.WithHelp(display, "debug logs"),
		)
	}
}

// translateToTerminal converts a human-friendly key name from the config
// into the sequence bubbletea reports. Terminals send ctrl+space as the
// NUL byte, which bubbletea names "ctrl+@".
func translateToTerminal(k string) string {
	k = strings.ToLower(strings.TrimSpace(k))
	switch k {
	case "ctrl+space", "ctrl+ ":
		return "ctrl+@"
	default:
		return k
	}
}

// translateToDisplay converts a terminal key sequence back into the
// human-friendly form used in help text.
func translateToDisplay(k string) string {
	if k == "ctrl+@" {
		return "ctrl+space"
	}
	return k
}

// ResetForTesting restores all keybindings to their defaults.
func ResetForTesting() {
	Browse = defaultBrowseMap()
	Search = defaultSearchMap()
}
