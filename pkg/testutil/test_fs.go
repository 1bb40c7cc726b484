package testutil

import (
	"github.com/arthur-debert/dashkit/pkg/filesystem"
	"github.com/arthur-debert/dashkit/pkg/types"
)

// NewTestFS creates a new in-memory filesystem for testing.
func NewTestFS() types.FS {
	return filesystem.NewMemory()
}
