package testutil

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/arthur-debert/dashkit/pkg/dashboard"
	"github.com/arthur-debert/dashkit/pkg/errors"
)

// MockDataStore keeps dashboards as serialized JSON in memory, so every Load
// returns a fresh tree just like the filesystem store does.
type MockDataStore struct {
	mu            sync.RWMutex
	docs          map[string][]byte
	calls         []string
	dirExists     bool
	errorOn       string
	errorToReturn error
}

// NewMockDataStore creates a new mock DataStore seeded with raw dashboards.
func NewMockDataStore(dashboards map[string]string) *MockDataStore {
	m := &MockDataStore{
		docs:      make(map[string][]byte),
		calls:     []string{},
		dirExists: true,
	}
	for slug, data := range dashboards {
		m.docs[slug] = []byte(data)
	}
	return m
}

// WithError makes the named method fail with err.
func (m *MockDataStore) WithError(method string, err error) *MockDataStore {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorOn = method
	m.errorToReturn = err
	return m
}

// Load parses the stored dashboard.
func (m *MockDataStore) Load(slug string) (*dashboard.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, fmt.Sprintf("Load(%s)", slug))
	if m.errorOn == "Load" {
		return nil, m.errorToReturn
	}

	data, ok := m.docs[slug]
	if !ok {
		return nil, errors.Newf(errors.ErrDocumentNotFound, "dashboard %s does not exist", slug)
	}
	doc, err := dashboard.Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDocumentInvalid, "%s is not a valid dashboard", slug)
	}
	return doc, nil
}

// Save serializes the dashboard, dropping its version like the real store.
func (m *MockDataStore) Save(slug string, doc *dashboard.Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, fmt.Sprintf("Save(%s)", slug))
	if m.errorOn == "Save" || m.errorOn == "Save("+slug+")" {
		return m.errorToReturn
	}

	doc.StripVersion()
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	m.docs[slug] = data
	return nil
}

// Exists reports whether a dashboard is stored under slug.
func (m *MockDataStore) Exists(slug string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, fmt.Sprintf("Exists(%s)", slug))
	_, ok := m.docs[slug]
	return ok, nil
}

// List returns the stored slugs, sorted.
func (m *MockDataStore) List() ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, "List()")
	slugs := make([]string, 0, len(m.docs))
	for slug := range m.docs {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)
	return slugs, nil
}

// Init marks the dashboards directory as existing.
func (m *MockDataStore) Init() (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, "Init()")
	created := !m.dirExists
	m.dirExists = true
	return created, nil
}

// Dir reports a fixed in-memory dashboards directory.
func (m *MockDataStore) Dir() (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return "/mock/dashboards", m.dirExists, nil
}

// Raw returns the stored JSON of a dashboard.
func (m *MockDataStore) Raw(slug string) []byte {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.docs[slug]
}

// Document parses the stored dashboard without recording a call.
func (m *MockDataStore) Document(slug string) *dashboard.Document {
	m.mu.RLock()
	defer m.mu.RUnlock()
	doc, err := dashboard.Parse(m.docs[slug])
	if err != nil {
		panic(fmt.Sprintf("testutil: stored dashboard %s is invalid: %v", slug, err))
	}
	return doc
}

// Calls returns the recorded method calls in order.
func (m *MockDataStore) Calls() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string(nil), m.calls...)
}

// ResetCalls clears the call log.
func (m *MockDataStore) ResetCalls() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = []string{}
}
