// Package datastore reads and writes dashboards on the filesystem. It hides
// the layout of the dashboards directory behind slugs: callers load and save
// a dashboard by name and never build file paths themselves.
package datastore
