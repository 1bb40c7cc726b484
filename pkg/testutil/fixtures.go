package testutil

import (
	"encoding/json"
	"fmt"
)

// RowFixture describes a row of a fixture dashboard.
type RowFixture struct {
	Title  string
	Panels []string
}

// Row builds a RowFixture.
func Row(title string, panels ...string) RowFixture {
	return RowFixture{Title: title, Panels: panels}
}

// Dashboard renders a dashboard JSON document with the given rows. Panels get
// sequential ids and rows carry an extra "height" field so tests can check
// that unknown fields survive edits.
func Dashboard(title string, rows ...RowFixture) string {
	id := 0
	jsonRows := make([]map[string]interface{}, 0, len(rows))
	for _, r := range rows {
		panels := make([]map[string]interface{}, 0, len(r.Panels))
		for _, p := range r.Panels {
			id++
			panels = append(panels, map[string]interface{}{"id": id, "title": p, "type": "graph"})
		}
		jsonRows = append(jsonRows, map[string]interface{}{
			"title":  r.Title,
			"height": "250px",
			"panels": panels,
		})
	}

	doc := map[string]interface{}{
		"title":   title,
		"rows":    jsonRows,
		"version": 3,
	}
	data, err := json.Marshal(doc)
	if err != nil {
		panic(fmt.Sprintf("testutil: failed to build dashboard: %v", err))
	}
	return string(data)
}
