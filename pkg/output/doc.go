// Package output renders command results for the terminal or for machines.
//
// Three formats are supported. The text format is meant for people: messages
// are styled with lipgloss and summaries are laid out as pterm tables. Color
// is used only when the writer is a terminal that supports it and NO_COLOR is
// unset. The json and yaml formats encode the result values directly and
// never contain styling.
package output
