// Package dashboard models the Grafana dashboard JSON that dashkit edits.
//
// Only the structural fields are typed: a Document holds ordered Rows, a Row
// holds ordered Panels. Everything else in the file is kept as raw JSON in
// its original key order and written back unchanged, so editing a dashboard
// never loses fields dashkit does not know about.
package dashboard
