package config

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/dashkit/pkg/errors"
	"github.com/arthur-debert/dashkit/pkg/logging"
	"github.com/arthur-debert/dashkit/pkg/paths"
	"github.com/pelletier/go-toml/v2"
)

// ContextKeys lists the keys accepted by SetContext.
var ContextKeys = []string{"dashboard"}

// SetContext stores context.<key> = value in the project config file, creating
// the file if needed, and updates c. Other settings in the file are kept but
// its comments are not.
func (c *Config) SetContext(key, value string) error {
	logger := logging.GetLogger("config")

	if key != "dashboard" {
		return errors.Newf(errors.ErrInvalidInput, "unsupported context key %q", key).
			WithDetail("key", key)
	}
	if err := paths.ValidateSlug(value); err != nil {
		return err
	}
	if c.ProjectFile == "" {
		return errors.New(errors.ErrConfigWrite, "no project config file to write to")
	}

	doc := map[string]interface{}{}
	data, err := os.ReadFile(c.ProjectFile)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &doc); err != nil {
			return errors.Wrapf(err, errors.ErrConfigLoad, "failed to parse %s", c.ProjectFile)
		}
	case !os.IsNotExist(err):
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", c.ProjectFile)
	}

	section, ok := doc["context"].(map[string]interface{})
	if !ok {
		section = map[string]interface{}{}
		doc["context"] = section
	}
	section[key] = value

	out, err := toml.Marshal(doc)
	if err != nil {
		return errors.Wrap(err, errors.ErrConfigWrite, "failed to encode config")
	}
	if err := writeFileAtomic(c.ProjectFile, out); err != nil {
		return err
	}

	c.Context.Dashboard = value
	logger.Info().
		Str("key", key).
		Str("value", value).
		Str("path", c.ProjectFile).
		Msg("Context updated")
	return nil
}

func writeFileAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", filepath.Dir(path))
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrConfigWrite, "failed to write %s", path)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return errors.Wrapf(err, errors.ErrConfigWrite, "failed to write %s", path)
	}
	return nil
}
