package topics

import (
	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
)

// GlamourRenderer renders markdown topics with glamour
type GlamourRenderer struct {
	Style   string // "dark", "light", "notty", "auto", or path to a custom style
	Width   int    // word wrap width (0 = glamour default)
	NoColor bool
}

// NewGlamourRenderer creates a markdown renderer. With color disabled it
// uses the notty style, which keeps the layout but emits no escape codes.
func NewGlamourRenderer(color bool) *GlamourRenderer {
	if !color {
		return &GlamourRenderer{Style: "notty", NoColor: true}
	}
	return &GlamourRenderer{Style: "auto"}
}

// Render converts markdown topics to terminal output. Other topics, and
// markdown glamour fails on, are printed plain.
func (r *GlamourRenderer) Render(topic *Topic) string {
	if !topic.IsMarkdown() {
		return PlainRenderer{}.Render(topic)
	}
	content := topic.Content

	var options []glamour.TermRendererOption
	switch r.Style {
	case "", "auto":
		options = append(options, glamour.WithAutoStyle())
	case "dark", "light", "notty", "dracula", "pink", "ascii":
		options = append(options, glamour.WithStandardStyle(r.Style))
	default:
		options = append(options, glamour.WithStylePath(r.Style))
	}
	if r.NoColor {
		options = append(options, glamour.WithColorProfile(termenv.Ascii))
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return PlainRenderer{}.Render(topic)
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return PlainRenderer{}.Render(topic)
	}
	return rendered
}
