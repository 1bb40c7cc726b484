// Package version holds the build information stamped into release binaries:
//
//	-X github.com/arthur-debert/dashkit/internal/version.Version=v1.2.0
//	-X github.com/arthur-debert/dashkit/internal/version.Commit=<sha>
//	-X github.com/arthur-debert/dashkit/internal/version.Date=<rfc3339>
package version

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Info is the build information of the running binary.
type Info struct {
	Version string `json:"version" yaml:"version"`
	Commit  string `json:"commit" yaml:"commit"`
	Date    string `json:"built" yaml:"built"`
}

// Get returns the build information.
func Get() Info {
	return Info{Version: Version, Commit: Commit, Date: Date}
}

// IsRelease reports whether the binary was built by the release pipeline.
func (i Info) IsRelease() bool {
	return i.Version != "dev"
}
