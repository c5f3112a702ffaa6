package keys

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Browse Keybinding Tests
// ============================================================================

func TestBrowse_KeyAssignments(t *testing.T) {
	tests := []struct {
		name     string
		binding  key.Binding
		expected []string
	}{
		{
			name:     "Up uses k and up",
			binding:  Browse.Up,
			expected: []string{"k", "up"},
		},
		{
			name:     "Down uses j and down",
			binding:  Browse.Down,
			expected: []string{"j", "down"},
		},
		{
			name:     "PrevTab uses h, left, and shift+tab",
			binding:  Browse.PrevTab,
			expected: []string{"h", "left", "shift+tab"},
		},
		{
			name:     "NextTab uses l, right, and tab",
			binding:  Browse.NextTab,
			expected: []string{"l", "right", "tab"},
		},
		{
			name:     "Enter uses enter",
			binding:  Browse.Enter,
			expected: []string{"enter"},
		},
		{
			name:     "Refresh uses r",
			binding:  Browse.Refresh,
			expected: []string{"r"},
		},
		{
			name:     "FocusSearch uses slash",
			binding:  Browse.FocusSearch,
			expected: []string{"/"},
		},
		{
			name:     "DebugLogs uses ctrl+x",
			binding:  Browse.DebugLogs,
			expected: []string{"ctrl+x"},
		},
		{
			name:     "Quit uses q and ctrl+c",
			binding:  Browse.Quit,
			expected: []string{"q", "ctrl+c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.binding.Keys())
		})
	}
}

func TestBrowse_HelpTextDefined(t *testing.T) {
	bindings := []struct {
		name    string
		binding key.Binding
	}{
		{"Up", Browse.Up},
		{"Down", Browse.Down},
		{"PrevTab", Browse.PrevTab},
		{"NextTab", Browse.NextTab},
		{"Enter", Browse.Enter},
		{"Refresh", Browse.Refresh},
		{"FocusSearch", Browse.FocusSearch},
		{"Help", Browse.Help},
		{"DebugLogs", Browse.DebugLogs},
		{"Escape", Browse.Escape},
		{"Quit", Browse.Quit},
	}

	for _, b := range bindings {
		t.Run(b.name, func(t *testing.T) {
			help := b.binding.Help()
			require.NotEmpty(t, help.Key, "key help should not be empty")
			require.NotEmpty(t, help.Desc, "description help should not be empty")
		})
	}
}

func TestBrowseShortHelp(t *testing.T) {
	help := Browse.ShortHelp()
	require.Len(t, help, 2, "short help should contain 2 bindings")
	require.Equal(t, Browse.Help, help[0])
	require.Equal(t, Browse.Quit, help[1])
}

func TestBrowseFullHelp(t *testing.T) {
	help := Browse.FullHelp()
	require.Len(t, help, 3, "full help should contain 3 columns")

	// First column: navigation
	require.Contains(t, help[0], Browse.Up)
	require.Contains(t, help[0], Browse.Down)
	require.Contains(t, help[0], Browse.PrevTab)
	require.Contains(t, help[0], Browse.NextTab)

	// Second column: actions
	require.Contains(t, help[1], Browse.Enter)
	require.Contains(t, help[1], Browse.Refresh)
	require.Contains(t, help[1], Browse.FocusSearch)

	// Third column: general
	require.Contains(t, help[2], Browse.Help)
	require.Contains(t, help[2], Browse.DebugLogs)
	require.Contains(t, help[2], Browse.Quit)
}

// ============================================================================
// Search Keybinding Tests
// ============================================================================

func TestSearch_KeyAssignments(t *testing.T) {
	tests := []struct {
		name     string
		binding  key.Binding
		expected []string
	}{
		{
			name:     "FocusSearch uses slash",
			binding:  Search.FocusSearch,
			expected: []string{"/"},
		},
		{
			name:     "Execute uses enter",
			binding:  Search.Execute,
			expected: []string{"enter"},
		},
		{
			name:     "Blur uses esc",
			binding:  Search.Blur,
			expected: []string{"esc"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.binding.Keys())
		})
	}
}

func TestSearchShortHelp(t *testing.T) {
	help := Search.ShortHelp()
	require.Len(t, help, 2, "short help should contain 2 bindings")
	require.Equal(t, Search.FocusSearch, help[0])
	require.Equal(t, Search.Quit, help[1])
}

func TestSearchFullHelp(t *testing.T) {
	help := Search.FullHelp()
	require.Len(t, help, 3, "full help should contain 3 columns")
	require.Contains(t, help[1], Search.Execute)
	require.Contains(t, help[1], Search.Blur)
}

// ============================================================================
// Translation Function Tests
// ============================================================================

func TestTranslateToTerminal_CtrlSpace(t *testing.T) {
	result := translateToTerminal("ctrl+space")
	require.Equal(t, "ctrl+@", result, "ctrl+space should translate to ctrl+@")
}

func TestTranslateToTerminal_CtrlSpaceVariant(t *testing.T) {
	result := translateToTerminal("ctrl+ ")
	require.Equal(t, "ctrl+@", result, "ctrl+ (space) should translate to ctrl+@")
}

func TestTranslateToTerminal_Passthrough(t *testing.T) {
	result := translateToTerminal("ctrl+g")
	require.Equal(t, "ctrl+g", result, "ctrl+g should pass through unchanged")
}

func TestTranslateToTerminal_CaseNormalization(t *testing.T) {
	result := translateToTerminal("Ctrl+Space")
	require.Equal(t, "ctrl+@", result, "Ctrl+Space should normalize to ctrl+@")
}

func TestTranslateToTerminal_WhitespaceTrim(t *testing.T) {
	result := translateToTerminal(" ctrl+g ")
	require.Equal(t, "ctrl+g", result, "leading/trailing whitespace should be trimmed")
}

func TestTranslateToDisplay_CtrlAt(t *testing.T) {
	result := translateToDisplay("ctrl+@")
	require.Equal(t, "ctrl+space", result, "ctrl+@ should display as ctrl+space")
}

func TestTranslateToDisplay_Passthrough(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"f1", "f1"},
		{"alt+s", "alt+s"},
		{"enter", "enter"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := translateToDisplay(tt.input)
			require.Equal(t, tt.expected, result, "%s should pass through unchanged", tt.input)
		})
	}
}

// ============================================================================
// ApplyConfig Tests
// ============================================================================

func TestApplyConfig_ModifiesSearchBindings(t *testing.T) {
	ResetForTesting()
	defer ResetForTesting()

	ApplyConfig("ctrl+s", "")

	require.Equal(t, []string{"ctrl+s"}, Browse.FocusSearch.Keys(), "Browse.FocusSearch should be bound to ctrl+s")
	require.Equal(t, []string{"ctrl+s"}, Search.FocusSearch.Keys(), "Search.FocusSearch should be bound to ctrl+s")
}

func TestApplyConfig_ModifiesDebugLogsBinding(t *testing.T) {
	ResetForTesting()
	defer ResetForTesting()

	ApplyConfig("", "ctrl+g")

	require.Equal(t, []string{"ctrl+g"}, Browse.DebugLogs.Keys(), "Browse.DebugLogs should be bound to ctrl+g")
}

func TestApplyConfig_SetsHelpText(t *testing.T) {
	ResetForTesting()
	defer ResetForTesting()

	ApplyConfig("ctrl+space", "ctrl+g")

	browseHelp := Browse.FocusSearch.Help()
	require.Equal(t, "ctrl+space", browseHelp.Key, "Browse.FocusSearch help key should show ctrl+space")
	require.Equal(t, "search records", browseHelp.Desc)

	searchHelp := Search.FocusSearch.Help()
	require.Equal(t, "ctrl+space", searchHelp.Key, "Search.FocusSearch help key should show ctrl+space")
	require.Equal(t, "focus search", searchHelp.Desc)

	debugHelp := Browse.DebugLogs.Help()
	require.Equal(t, "ctrl+g", debugHelp.Key, "Browse.DebugLogs help key should show ctrl+g")
	require.Equal(t, "debug logs", debugHelp.Desc)
}

func TestApplyConfig_TranslatesCtrlSpace(t *testing.T) {
	ResetForTesting()
	defer ResetForTesting()

	ApplyConfig("ctrl+space", "")

	require.Equal(t, []string{"ctrl+@"}, Browse.FocusSearch.Keys(), "binding should use the terminal sequence")
}

func TestApplyConfig_EmptyString_NoChange(t *testing.T) {
	ResetForTesting()
	defer ResetForTesting()

	originalBrowseSearch := Browse.FocusSearch.Keys()
	originalSearchFocus := Search.FocusSearch.Keys()
	originalDebugLogs := Browse.DebugLogs.Keys()

	ApplyConfig("", "")

	require.Equal(t, originalBrowseSearch, Browse.FocusSearch.Keys(), "Browse.FocusSearch should be unchanged")
	require.Equal(t, originalSearchFocus, Search.FocusSearch.Keys(), "Search.FocusSearch should be unchanged")
	require.Equal(t, originalDebugLogs, Browse.DebugLogs.Keys(), "Browse.DebugLogs should be unchanged")
}

func TestResetForTesting_RestoresDefaults(t *testing.T) {
	ResetForTesting()
	ApplyConfig("ctrl+s", "ctrl+y")

	require.Equal(t, []string{"ctrl+s"}, Browse.FocusSearch.Keys())
	require.Equal(t, []string{"ctrl+y"}, Browse.DebugLogs.Keys())

	ResetForTesting()

	require.Equal(t, []string{"/"}, Browse.FocusSearch.Keys(), "Browse.FocusSearch should be restored to /")
	require.Equal(t, []string{"/"}, Search.FocusSearch.Keys(), "Search.FocusSearch should be restored to /")
	require.Equal(t, []string{"ctrl+x"}, Browse.DebugLogs.Keys(), "Browse.DebugLogs should be restored to ctrl+x")

	browseHelp := Browse.FocusSearch.Help()
	require.Equal(t, "/", browseHelp.Key, "Browse.FocusSearch help key should be restored to /")
}
