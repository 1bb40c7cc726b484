package testutil

import (
	"testing"

	"github.com/arthur-debert/dashkit/pkg/dashboard"
)

// RowTitles returns the titles of the rows of doc.
func RowTitles(doc *dashboard.Document) []string {
	titles := make([]string, len(doc.Rows))
	for i, r := range doc.Rows {
		titles[i] = r.Title
	}
	return titles
}

// PanelTitles returns the titles of the panels of the row at 1-based index.
func PanelTitles(t *testing.T, doc *dashboard.Document, row int) []string {
	t.Helper()
	if row < 1 || row > len(doc.Rows) {
		t.Fatalf("row %d out of range, dashboard has %d rows", row, len(doc.Rows))
	}
	panels := doc.Rows[row-1].Panels
	titles := make([]string, len(panels))
	for i, p := range panels {
		titles[i] = p.Title
	}
	return titles
}
