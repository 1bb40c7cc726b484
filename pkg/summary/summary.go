package summary

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/dashkit/pkg/dashboard"
	"github.com/arthur-debert/dashkit/pkg/errors"
	"github.com/arthur-debert/dashkit/pkg/logging"
	"github.com/arthur-debert/dashkit/pkg/types"
)

// ListSeparator joins panel titles and variable names.
const ListSeparator = ", "

// Summary is the overview of one dashboard.
type Summary struct {
	Slug     string       `json:"dashboard,omitempty" yaml:"dashboard,omitempty"`
	Title    string       `json:"title" yaml:"title"`
	RowCount int          `json:"rowCount" yaml:"rowCount"`
	Rows     []RowSummary `json:"rows" yaml:"rows"`

	// Variables is nil when the dashboard has no templating block, so the
	// count and names are left out of the output entirely.
	Variables *VariableSummary `json:"templating,omitempty" yaml:"templating,omitempty"`
	Time      TimeSummary      `json:"time" yaml:"time"`
}

// RowSummary describes a single row.
type RowSummary struct {
	Title       string `json:"title" yaml:"title"`
	PanelCount  int    `json:"panelCount" yaml:"panelCount"`
	PanelTitles string `json:"panelTitles" yaml:"panelTitles"`
}

// VariableSummary describes the templating variables.
type VariableSummary struct {
	Count int    `json:"templateVariableCount" yaml:"templateVariableCount"`
	Names string `json:"templateVariableNames" yaml:"templateVariableNames"`
}

// TimeSummary is the default time window.
type TimeSummary struct {
	From     string `json:"from,omitempty" yaml:"from,omitempty"`
	To       string `json:"to,omitempty" yaml:"to,omitempty"`
	Timezone string `json:"timezone,omitempty" yaml:"timezone,omitempty"`
}

// Summarize projects doc into a Summary.
func Summarize(doc *dashboard.Document) Summary {
	s := Summary{
		Title:    doc.Title,
		RowCount: len(doc.Rows),
		Rows:     make([]RowSummary, 0, len(doc.Rows)),
	}

	for _, row := range doc.Rows {
		s.Rows = append(s.Rows, RowSummary{
			Title:       row.Title,
			PanelCount:  len(row.Panels),
			PanelTitles: row.PanelTitles(),
		})
	}

	if doc.HasTemplating() {
		vars := doc.Variables()
		names := make([]string, len(vars))
		for i, v := range vars {
			names[i] = v.Name
		}
		s.Variables = &VariableSummary{
			Count: len(vars),
			Names: strings.Join(names, ListSeparator),
		}
	}

	if tr := doc.Time(); tr != nil {
		s.Time.From = tr.From
		s.Time.To = tr.To
	}
	s.Time.Timezone = doc.Timezone()

	return s
}

// Message is the confirmation shown after a summary was printed.
func (s *Summary) Message() string {
	return fmt.Sprintf("Showed dashboard %s summary successfully.", s.Slug)
}

// Loader reads a dashboard by slug.
type Loader interface {
	Load(slug string) (*dashboard.Document, error)
}

// Service summarizes stored dashboards.
type Service struct {
	store   Loader
	context types.ContextResolver
}

// NewService creates a Service. context supplies the dashboard used when no
// slug is given and may be nil.
func NewService(store Loader, context types.ContextResolver) *Service {
	return &Service{store: store, context: context}
}

// Summarize loads and summarizes the dashboard named by slug, or the context
// dashboard when slug is empty.
func (s *Service) Summarize(slug string) (*Summary, error) {
	logger := logging.GetLogger("summary")

	if slug == "" {
		if s.context == nil || !s.context.HasDefaultDocument() {
			return nil, errors.New(errors.ErrContextMissing,
				"either pass a dashboard or set one with `dashkit set context dashboard <slug>`")
		}
		slug = s.context.DefaultDocument()
		logger.Debug().Str("slug", slug).Msg("Using context dashboard")
	}

	doc, err := s.store.Load(slug)
	if err != nil {
		return nil, err
	}

	summary := Summarize(doc)
	summary.Slug = slug

	logger.Info().
		Str("slug", slug).
		Int("rows", summary.RowCount).
		Msg("Summarized dashboard")
	return &summary, nil
}
