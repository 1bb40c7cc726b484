package paths

import (
	"strings"

	"github.com/arthur-debert/dashkit/pkg/errors"
)

// ValidateSlug ensures a dashboard slug is valid for use as a file name.
// Slugs must:
// - Not be empty
// - Not contain path separators or the address separator
// - Not be reserved names (. or ..)
// - Not contain control or shell-hostile characters
func ValidateSlug(slug string) error {
	if slug == "" {
		return errors.New(errors.ErrInvalidInput, "dashboard slug cannot be empty")
	}

	if strings.ContainsAny(slug, "/\\") {
		return errors.Newf(errors.ErrInvalidInput, "dashboard slug %q cannot contain path separators", slug)
	}

	if slug == "." || slug == ".." {
		return errors.New(errors.ErrInvalidInput, "dashboard slug cannot be '.' or '..'")
	}

	// A dot would make the slug ambiguous in a dotted address.
	if strings.Contains(slug, ".") {
		return errors.Newf(errors.ErrInvalidInput, "dashboard slug %q cannot contain '.'", slug)
	}

	invalidChars := ":*?\"<>|"
	if strings.ContainsAny(slug, invalidChars) {
		return errors.Newf(errors.ErrInvalidInput,
			"dashboard slug contains invalid characters: %s", invalidChars)
	}

	for _, r := range slug {
		if r < 32 {
			return errors.New(errors.ErrInvalidInput,
				"dashboard slug contains control characters")
		}
	}

	return nil
}
