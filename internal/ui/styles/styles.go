// Package styles contains Lip Gloss style definitions.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Semantic color names - Text hierarchy
	TextPrimaryColor     = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#CCCCCC"} // Main/primary text
	TextSecondaryColor   = lipgloss.AdaptiveColor{Light: "#AAAAAA", Dark: "#BBBBBB"} // Standard IDs, secondary info
	TextMutedColor       = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#696969"} // Hints, help text, footers
	TextDescriptionColor = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"} // Description/body text
	TextPlaceholderColor = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#777777"} // Input placeholders

	// Semantic color names - Border
	BorderDefaultColor        = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#696969"} // Unfocused borders
	BorderHighlightFocusColor = lipgloss.AdaptiveColor{Light: "#54A0FF", Dark: "#54A0FF"} // Focused pane borders

	// Accent for active tabs, selected titles, spinner
	AccentColor = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}

	// Semantic color names - Status
	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"} // Success states
	StatusWarningColor = lipgloss.AdaptiveColor{Light: "#FECA57", Dark: "#FECA57"} // Warnings
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"} // Errors

	// Selection indicator color (used for ">" prefix in lists)
	SelectionIndicatorColor = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}

	// Selected row background in tables
	SelectionBackgroundColor = lipgloss.AdaptiveColor{Light: "#DDDDDD", Dark: "#3C3C3C"}

	// Format badge colors (what a standard's data file is encoded as)
	FormatXMLColor  = lipgloss.AdaptiveColor{Light: "#FF9F43", Dark: "#FF9F43"}
	FormatYAMLColor = lipgloss.AdaptiveColor{Light: "#54A0FF", Dark: "#54A0FF"}
	FormatJSONColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}

	// Overlay colors
	OverlayTitleColor  = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#C9C9C9"}
	OverlayBorderColor = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#8C8C8C"}

	// Toast notification colors
	ToastBorderSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	ToastBorderErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"}
	ToastBorderInfoColor    = lipgloss.AdaptiveColor{Light: "#54A0FF", Dark: "#54A0FF"}
	ToastBorderWarnColor    = lipgloss.AdaptiveColor{Light: "#FECA57", Dark: "#FECA57"}

	// Selection indicator style (used for ">" prefix in lists)
	SelectionIndicatorStyle = lipgloss.NewStyle().Bold(true).Foreground(SelectionIndicatorColor)

	// Status bar
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(TextSecondaryColor).
			Padding(0, 1)

	// Error display
	ErrorStyle = lipgloss.NewStyle().
			Foreground(StatusErrorColor).
			Bold(true).
			Padding(1, 2)

	// Loading spinner color
	SpinnerColor = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#FFF"}
)

// FormatColor returns the badge color for a data file format string
// ("xml", "yaml", "json"). Unknown formats fall back to the muted color.
func FormatColor(format string) lipgloss.AdaptiveColor {
	switch format {
	case "xml":
		return FormatXMLColor
	case "yaml":
		return FormatYAMLColor
	case "json":
		return FormatJSONColor
	default:
		return TextMutedColor
	}
}

// ApplyTheme applies custom theme colors from configuration.
// Empty strings are ignored, keeping the default values.
// Parameters use semantic names matching the color constants:
// - highlight: AccentColor + BorderHighlightFocusColor (tabs, focus, selection)
// - subtle: TextMutedColor + BorderDefaultColor (hints, help text, borders)
// - errorColor: StatusErrorColor (error indicators)
// - success: StatusSuccessColor (success indicators)
func ApplyTheme(highlight, subtle, errorColor, success string) {
	if highlight != "" {
		AccentColor = lipgloss.AdaptiveColor{Light: highlight, Dark: highlight}
		BorderHighlightFocusColor = lipgloss.AdaptiveColor{Light: highlight, Dark: highlight}
	}
	if subtle != "" {
		TextMutedColor = lipgloss.AdaptiveColor{Light: subtle, Dark: subtle}
		BorderDefaultColor = lipgloss.AdaptiveColor{Light: subtle, Dark: subtle}
	}
	if errorColor != "" {
		StatusErrorColor = lipgloss.AdaptiveColor{Light: errorColor, Dark: errorColor}
	}
	if success != "" {
		StatusSuccessColor = lipgloss.AdaptiveColor{Light: success, Dark: success}
	}
}
