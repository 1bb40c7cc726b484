package datastore

import "github.com/arthur-debert/dashkit/pkg/dashboard"

// DataStore manages the dashboards directory.
type DataStore interface {
	// Load reads and validates the dashboard stored under slug.
	Load(slug string) (*dashboard.Document, error)

	// Save writes the dashboard under slug, replacing any previous content.
	// The server-assigned version is dropped before writing.
	Save(slug string, doc *dashboard.Document) error

	// Exists reports whether a dashboard is stored under slug.
	Exists(slug string) (bool, error)

	// List returns the slugs of all stored dashboards, sorted.
	List() ([]string, error)

	// Init creates the dashboards directory. created is false when it
	// already existed.
	Init() (created bool, err error)

	// Dir returns the dashboards directory and whether it exists.
	Dir() (path string, exists bool, err error)
}
