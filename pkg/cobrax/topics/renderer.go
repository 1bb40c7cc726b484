package topics

import (
	"path"
	"strings"
)

// Renderer turns a topic into the text printed by `help <topic>`.
type Renderer interface {
	Render(topic *Topic) string
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(topic *Topic) string

// Render calls f.
func (f RendererFunc) Render(topic *Topic) string {
	return f(topic)
}

// PlainRenderer prints topics as stored, trimmed to end in one newline.
type PlainRenderer struct{}

// Render implements Renderer.
func (PlainRenderer) Render(topic *Topic) string {
	return strings.TrimRight(topic.Content, "\n") + "\n"
}

// IsMarkdown reports whether the topic file is markdown.
func (t *Topic) IsMarkdown() bool {
	return strings.EqualFold(path.Ext(t.FilePath), ".md")
}
