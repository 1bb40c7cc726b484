// Package filesystem provides the types.FS implementation for dashkit.
//
// A single afero-backed type serves both production (OS filesystem) and
// tests (in-memory filesystem), so the datastore is exercised the same way
// in both.
package filesystem
