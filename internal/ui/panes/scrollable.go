package panes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/wdgph/stdreg/internal/ui/styles"
)

// ScrollIndicatorStyle is the style for scroll position indicators ("↑50%").
var ScrollIndicatorStyle = lipgloss.NewStyle().
	Foreground(styles.TextMutedColor)

// ScrollableConfig holds the configuration for rendering a scrollable pane.
type ScrollableConfig struct {
	// Viewport must be a pointer so scroll state persists across renders.
	// ScrollablePane mutates its dimensions, content, and scroll position.
	Viewport *viewport.Model

	// LeftTitle is shown on the left side of the top border.
	LeftTitle string

	// Tabs renders a tab strip in the top border in place of LeftTitle.
	// See BorderConfig.Tabs.
	Tabs      []string
	ActiveTab int

	// RightTitle is shown on the right side of the top border, after the
	// scroll indicator when the indicator is not relocated to the bottom.
	RightTitle string

	// BottomLeft is optional text on the bottom border, useful for key hints.
	BottomLeft string

	// BottomRight is optional text on the bottom-right of the border.
	// If empty and ShowScrollIndicator is true, the scroll indicator is
	// shown here instead of in the top-right title.
	BottomRight string

	// ShowScrollIndicator moves the "↑XX%" indicator to the bottom-right.
	ShowScrollIndicator bool

	// BottomAligned pads short content so it sits at the bottom of the
	// viewport and follows new content when the user is at the bottom.
	// Record and detail panes leave this false; the log viewer sets it.
	BottomAligned bool

	TitleColor         lipgloss.AdaptiveColor
	BorderColor        lipgloss.AdaptiveColor
	Focused            bool
	FocusedBorderColor lipgloss.AdaptiveColor
}

// ScrollablePane handles the viewport setup, content padding, follow-scroll,
// and border rendering pattern shared by the scrolling panes. It composes
// with BorderedPane for the final output.
//
// Order of operations matters:
//  1. AtBottom must be captured BEFORE SetContent, otherwise the user is
//     forcibly scrolled to the bottom on every render.
//  2. Bottom-aligned padding is PREPENDED so content sits at the bottom.
//
// contentFn receives the available width and returns the rendered content.
func ScrollablePane(
	width, height int,
	cfg ScrollableConfig,
	contentFn func(wrapWidth int) string,
) string {
	vpWidth := max(width-2, 1)
	vpHeight := max(height-2, 1)

	content := contentFn(vpWidth)

	if cfg.BottomAligned {
		contentLines := strings.Split(content, "\n")
		if len(contentLines) < vpHeight {
			padding := make([]string, vpHeight-len(contentLines))
			contentLines = append(padding, contentLines...)
			content = strings.Join(contentLines, "\n")
		}
	}

	// Capture scroll state before any viewport mutation.
	wasAtBottom := cfg.Viewport.AtBottom()
	oldScrollPercent := cfg.Viewport.ScrollPercent()
	dimensionsChanged := cfg.Viewport.Width != vpWidth || cfg.Viewport.Height != vpHeight

	cfg.Viewport.Width = vpWidth
	cfg.Viewport.Height = vpHeight
	cfg.Viewport.SetContent(content)

	if cfg.BottomAligned {
		if wasAtBottom {
			cfg.Viewport.GotoBottom()
		} else if dimensionsChanged && oldScrollPercent > 0 {
			// Restore proportional scroll position after a resize.
			scrollableRange := cfg.Viewport.TotalLineCount() - cfg.Viewport.Height
			if scrollableRange > 0 {
				cfg.Viewport.SetYOffset(int(oldScrollPercent * float64(scrollableRange)))
			}
		}
	}

	// Right title must be built after SetContent so the indicator is accurate.
	rightTitle := buildRightTitle(*cfg.Viewport, cfg.RightTitle, cfg.ShowScrollIndicator)

	bottomRight := cfg.BottomRight
	if bottomRight == "" && cfg.ShowScrollIndicator {
		bottomRight = BuildScrollIndicator(*cfg.Viewport)
	}

	return BorderedPane(BorderConfig{
		Content:            cfg.Viewport.View(),
		Width:              width,
		Height:             height,
		TopLeft:            cfg.LeftTitle,
		TopRight:           rightTitle,
		Tabs:               cfg.Tabs,
		ActiveTab:          cfg.ActiveTab,
		BottomLeft:         cfg.BottomLeft,
		BottomRight:        bottomRight,
		Focused:            cfg.Focused,
		TitleColor:         cfg.TitleColor,
		BorderColor:        cfg.BorderColor,
		FocusedBorderColor: cfg.FocusedBorderColor,
	})
}

// buildRightTitle combines the scroll indicator (unless it is shown at the
// bottom instead) with the configured right title.
func buildRightTitle(vp viewport.Model, rightTitle string, indicatorAtBottom bool) string {
	var parts []string

	if !indicatorAtBottom {
		if indicator := BuildScrollIndicator(vp); indicator != "" {
			parts = append(parts, indicator)
		}
	}

	if rightTitle != "" {
		parts = append(parts, rightTitle)
	}

	return strings.Join(parts, " ")
}

// BuildScrollIndicator returns a styled "↑XX%" scroll position indicator.
// Returns empty string when the content fits or the viewport is at the
// bottom.
func BuildScrollIndicator(vp viewport.Model) string {
	if vp.TotalLineCount() <= vp.Height {
		return ""
	}
	if vp.AtBottom() {
		return ""
	}
	return ScrollIndicatorStyle.Render(fmt.Sprintf("↑%.0f%%", vp.ScrollPercent()*100))
}
