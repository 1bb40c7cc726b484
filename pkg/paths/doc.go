// Package paths provides centralized path handling for dashkit: where the
// dashboards directory lives, where configuration is read from and where a
// dashboard slug maps to on disk. User-level locations follow the XDG Base
// Directory specification.
package paths
