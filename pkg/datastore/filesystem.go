package datastore

import (
	"encoding/json"
	"os"
	"sort"

	"github.com/arthur-debert/dashkit/pkg/dashboard"
	"github.com/arthur-debert/dashkit/pkg/errors"
	"github.com/arthur-debert/dashkit/pkg/logging"
	"github.com/arthur-debert/dashkit/pkg/paths"
	"github.com/arthur-debert/dashkit/pkg/types"
)

const (
	dirPerm  = 0755
	filePerm = 0644
	tmpExt   = ".tmp"
)

type filesystemDataStore struct {
	fs    types.FS
	paths *paths.Paths
}

// New creates a new DataStore instance that interacts with the filesystem.
func New(fs types.FS, paths *paths.Paths) DataStore {
	return &filesystemDataStore{
		fs:    fs,
		paths: paths,
	}
}

func (s *filesystemDataStore) Load(slug string) (*dashboard.Document, error) {
	logger := logging.GetLogger("datastore")

	if err := paths.ValidateSlug(slug); err != nil {
		return nil, err
	}

	file := s.paths.DashboardFile(slug)
	data, err := s.fs.ReadFile(file)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Newf(errors.ErrDocumentNotFound, "dashboard file %s does not exist", file).
				WithDetail("slug", slug)
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to read dashboard %s", slug)
	}

	doc, err := dashboard.Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDocumentInvalid, "%s is not a valid dashboard", file).
			WithDetail("slug", slug)
	}

	logger.Debug().
		Str("slug", slug).
		Int("rows", len(doc.Rows)).
		Msg("Loaded dashboard")
	return doc, nil
}

func (s *filesystemDataStore) Save(slug string, doc *dashboard.Document) error {
	logger := logging.GetLogger("datastore")

	if err := paths.ValidateSlug(slug); err != nil {
		return err
	}

	doc.StripVersion()
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrapf(err, errors.ErrInternal, "failed to encode dashboard %s", slug)
	}
	data = append(data, '\n')

	if err := s.fs.MkdirAll(s.paths.DashboardsDir(), dirPerm); err != nil {
		return errors.Wrap(err, errors.ErrDirCreate, "failed to create dashboards directory")
	}

	// Write next to the target and rename so a failed write never leaves a
	// truncated dashboard behind.
	file := s.paths.DashboardFile(slug)
	tmp := file + tmpExt
	if err := s.fs.WriteFile(tmp, data, filePerm); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write dashboard %s", slug)
	}
	if err := s.fs.Rename(tmp, file); err != nil {
		_ = s.fs.Remove(tmp)
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to replace dashboard %s", slug)
	}

	logger.Info().
		Str("slug", slug).
		Str("file", file).
		Msg("Saved dashboard")
	return nil
}

func (s *filesystemDataStore) Exists(slug string) (bool, error) {
	if err := paths.ValidateSlug(slug); err != nil {
		return false, err
	}
	_, err := s.fs.Stat(s.paths.DashboardFile(slug))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Wrapf(err, errors.ErrFileAccess, "failed to check dashboard %s", slug)
}

func (s *filesystemDataStore) List() ([]string, error) {
	entries, err := s.fs.ReadDir(s.paths.DashboardsDir())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Newf(errors.ErrFileAccess, "%s directory does not exist", s.paths.DashboardsDir())
		}
		return nil, errors.Wrap(err, errors.ErrFileAccess, "failed to read dashboards directory")
	}

	var slugs []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if slug, ok := paths.SlugFromFile(entry.Name()); ok {
			slugs = append(slugs, slug)
		}
	}
	sort.Strings(slugs)
	return slugs, nil
}

func (s *filesystemDataStore) Init() (bool, error) {
	dir, exists, err := s.Dir()
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}
	if err := s.fs.MkdirAll(dir, dirPerm); err != nil {
		return false, errors.Wrap(err, errors.ErrDirCreate, "failed to create dashboards directory")
	}
	return true, nil
}

func (s *filesystemDataStore) Dir() (string, bool, error) {
	dir := s.paths.DashboardsDir()
	info, err := s.fs.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return dir, false, nil
		}
		return dir, false, errors.Wrap(err, errors.ErrFileAccess, "failed to check dashboards directory")
	}
	if !info.IsDir() {
		return dir, false, errors.Newf(errors.ErrFileAccess, "%s exists but is not a directory", dir)
	}
	return dir, true, nil
}
