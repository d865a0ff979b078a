package report

import (
	"github.com/charmbracelet/glamour"
)

// Glamour style names.
const (
	StyleDark  = "dark"
	StyleLight = "light"
)

// DefaultWordWrap is used when a non-positive width is given.
const DefaultWordWrap = 80

// Renderer draws Markdown for the terminal.
type Renderer struct {
	style string
	wrap  int
	term  *glamour.TermRenderer
}

// NewRenderer builds a renderer for a glamour style and wrap width. If
// glamour cannot be set up the renderer still works and returns raw text.
func NewRenderer(style string, wrap int) *Renderer {
	if style != StyleLight {
		style = StyleDark
	}
	if wrap <= 0 {
		wrap = DefaultWordWrap
	}
	term, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		term = nil
	}
	return &Renderer{style: style, wrap: wrap, term: term}
}

// Style returns the glamour style in use.
func (r *Renderer) Style() string { return r.style }

// Wrap returns the word-wrap width.
func (r *Renderer) Wrap() int { return r.wrap }

// WithStyle returns a renderer with the same width and a new style.
func (r *Renderer) WithStyle(style string) *Renderer {
	return NewRenderer(style, r.wrap)
}

// WithWrap returns a renderer with the same style and a new width.
func (r *Renderer) WithWrap(wrap int) *Renderer {
	return NewRenderer(r.style, wrap)
}

// Render draws markdown, falling back to the raw text on any failure.
func (r *Renderer) Render(markdown string) (out string) {
	if r == nil || r.term == nil || markdown == "" {
		return markdown
	}
	defer func() {
		if rec := recover(); rec != nil {
			out = markdown
		}
	}()
	rendered, err := r.term.Render(markdown)
	if err != nil {
		return markdown
	}
	return rendered
}
