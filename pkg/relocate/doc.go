// Package relocate moves and copies rows and panels of dashboards.
//
// A relocation names its source and destination with dotted addresses (see
// package address). The source always lives on the context dashboard; the
// destination may name another dashboard. The engine handles four cases:
//
//   - a row inside one dashboard
//   - a row across two dashboards
//   - a panel inside one dashboard, in the same row or another one
//   - a panel across two dashboards
//
// All validation happens before any dashboard is loaded, and every index is
// checked before the tree is touched. A destination position is read against
// the list as it is after the element left it, so the relocated element ends
// up at exactly the requested position. Copies are deep, so the duplicate
// shares nothing with the original.
//
// Cross-dashboard relocations are not transactional. The destination is saved
// first, so an interruption before the source is saved leaves the element on
// both dashboards instead of on neither.
package relocate
