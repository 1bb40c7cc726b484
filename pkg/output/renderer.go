package output

import (
	"fmt"
	"io"
)

// Renderer is the common interface for all output renderers.
type Renderer interface {
	// RenderResult renders a command result: a *relocate.Result, a
	// *summary.Summary or a *Report.
	RenderResult(result interface{}) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// Options configures NewRenderer.
type Options struct {
	Format  Format
	NoColor bool
}

// NewRenderer creates a new renderer writing to w.
func NewRenderer(w io.Writer, opts Options) (Renderer, error) {
	switch opts.Format {
	case FormatText:
		return NewTextRenderer(w, ColorProfile(w, opts.NoColor)), nil
	case FormatJSON:
		return NewJSONRenderer(w), nil
	case FormatYAML:
		return NewYAMLRenderer(w), nil
	default:
		return nil, fmt.Errorf("unknown format: %v", opts.Format)
	}
}
