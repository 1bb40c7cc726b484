// Package testutil provides utilities for testing dashkit components.
//
// Key components:
//   - NewTestFS: in-memory afero filesystem behind types.FS
//   - MockDataStore: in-memory dashboard store that records every call
//   - MockContext: context resolver with a fixed context dashboard
//   - Dashboard/Row builders: inline dashboard fixtures
//
// All test data should be defined inline, not in external files.
package testutil
