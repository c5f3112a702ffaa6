// Package markdown provides styled markdown rendering for the TUI.
// The browse view feeds it the overview and standard detail pages built by
// the presentation package.
package markdown

import (
	"github.com/charmbracelet/glamour"
)

// noMarginStyle is a JSON style that removes document margins so rendered
// pages sit flush inside their pane.
const noMarginStyle = `{
	"document": {
		"margin": 0,
		"block_prefix": "",
		"block_suffix": ""
	}
}`

// Renderer wraps glamour with the registry browser's configuration.
type Renderer struct {
	renderer *glamour.TermRenderer
	width    int
}

// New creates a markdown renderer with the given width and style.
// style should be "dark" or "light", defaulting to "dark" when empty.
// A fixed style is used instead of WithAutoStyle() because auto detection
// queries the terminal background, and the OSC responses leak into the
// input stream.
func New(width int, style string) (*Renderer, error) {
	if style == "" {
		style = "dark"
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithStylesFromJSONBytes([]byte(noMarginStyle)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	return &Renderer{renderer: r, width: width}, nil
}

// Width returns the configured word wrap width.
func (r *Renderer) Width() int {
	return r.width
}

// Render transforms markdown to styled terminal output.
func (r *Renderer) Render(markdown string) (string, error) {
	return r.renderer.Render(markdown)
}
