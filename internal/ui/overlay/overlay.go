// Package overlay composites foreground content on top of a background
// view without clearing the screen. The browse UI uses it for toast
// notifications and the debug log viewer.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Position specifies where to place the overlay content.
type Position int

const (
	// Center places the overlay in the center of the viewport.
	Center Position = iota
	// Top places the overlay at the top center of the viewport.
	Top
	// Bottom places the overlay at the bottom center of the viewport.
	Bottom
)

// Config controls overlay rendering behavior.
type Config struct {
	// Width is the total viewport width.
	Width int
	// Height is the total viewport height.
	Height int
	// Position specifies where to place the overlay.
	Position Position
	// PadY adds vertical padding from the edge for Top/Bottom positions.
	PadY int
}

// Place renders foreground content on top of background. Both strings may
// carry ANSI escape sequences; truncation is ANSI-aware so styling in the
// preserved background regions survives.
func Place(cfg Config, fg, bg string) string {
	fgLines := strings.Split(fg, "\n")
	bgLines := strings.Split(bg, "\n")

	// Pad background to full height
	for len(bgLines) < cfg.Height {
		bgLines = append(bgLines, strings.Repeat(" ", cfg.Width))
	}

	startX, startY := calculatePosition(cfg, lipgloss.Width(fg), len(fgLines))

	for i, fgLine := range fgLines {
		bgY := startY + i
		if bgY >= len(bgLines) {
			break
		}
		bgLines[bgY] = spliceLine(bgLines[bgY], fgLine, startX)
	}

	return strings.Join(bgLines, "\n")
}

// spliceLine overwrites the cells [startX, startX+width(fgLine)) of bgLine
// with fgLine, keeping the background on either side.
func spliceLine(bgLine, fgLine string, startX int) string {
	leftPart := ansi.Truncate(bgLine, startX, "")

	// Pad when the background line ends before the overlay starts.
	if leftWidth := ansi.StringWidth(leftPart); leftWidth < startX {
		leftPart += strings.Repeat(" ", startX-leftWidth)
	}

	endX := startX + ansi.StringWidth(fgLine)
	var rightPart string
	if endX < ansi.StringWidth(bgLine) {
		// TruncateLeft drops cells from the left, keeping the tail.
		rightPart = ansi.TruncateLeft(bgLine, endX, "")
	}

	return leftPart + fgLine + rightPart
}

// calculatePosition determines the x,y starting coordinates for the overlay.
func calculatePosition(cfg Config, fgWidth, fgHeight int) (x, y int) {
	switch cfg.Position {
	case Top:
		x = (cfg.Width - fgWidth) / 2
		y = cfg.PadY
	case Bottom:
		x = (cfg.Width - fgWidth) / 2
		y = cfg.Height - fgHeight - cfg.PadY
	default: // Center
		x = (cfg.Width - fgWidth) / 2
		y = (cfg.Height - fgHeight) / 2
	}

	return max(x, 0), max(y, 0)
}
