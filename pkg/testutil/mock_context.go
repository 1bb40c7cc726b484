package testutil

// MockContext is a types.ContextResolver with a fixed context dashboard.
type MockContext struct {
	Dashboard string
}

// HasDefaultDocument reports whether a context dashboard is set.
func (m MockContext) HasDefaultDocument() bool {
	return m.Dashboard != ""
}

// DefaultDocument returns the context dashboard.
func (m MockContext) DefaultDocument() string {
	return m.Dashboard
}
