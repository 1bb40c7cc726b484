package dashboard

import (
	"encoding/json"
	"fmt"
	"strings"

	clone "github.com/huandu/go-clone"
)

// Field names of the Grafana dashboard schema that dashkit interprets.
const (
	FieldTitle      = "title"
	FieldRows       = "rows"
	FieldPanels     = "panels"
	FieldTemplating = "templating"
	FieldList       = "list"
	FieldName       = "name"
	FieldTime       = "time"
	FieldTimezone   = "timezone"
	FieldVersion    = "version"
)

// Document is a dashboard: an ordered list of rows plus fields dashkit does
// not interpret, which are written back untouched.
type Document struct {
	Title string
	Rows  []*Row

	variables []Variable
	timeRange *TimeRange
	timezone  string
	raw       *object
}

// Row is an ordered container of panels.
type Row struct {
	Title  string
	Panels []*Panel

	raw *object
	// noPanels marks a row decoded without a "panels" key. It stays without
	// one on save until a panel is inserted.
	noPanels bool
}

// Panel is the smallest addressable element of a dashboard.
type Panel struct {
	Title string

	raw *object
}

// Variable is a templating variable of a dashboard.
type Variable struct {
	Name string `json:"name"`
}

// TimeRange is the default time window of a dashboard.
type TimeRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// New creates an empty document with the given title.
func New(title string, rows ...*Row) *Document {
	return &Document{Title: title, Rows: rows, raw: newObject()}
}

// NewRow creates a row with the given title and panels.
func NewRow(title string, panels ...*Panel) *Row {
	return &Row{Title: title, Panels: panels, raw: newObject()}
}

// NewPanel creates a panel with the given title.
func NewPanel(title string) *Panel {
	return &Panel{Title: title, raw: newObject()}
}

// Parse decodes a dashboard and checks the fields dashkit relies on: the
// document must be an object with a "rows" array of objects, and a row's
// "panels", when present, must be an array of objects. A row without
// "panels" has no panels.
func Parse(data []byte) (*Document, error) {
	doc := &Document{}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Document) UnmarshalJSON(data []byte) error {
	obj, err := decodeObject(data)
	if err != nil {
		return fmt.Errorf("dashboard: %w", err)
	}

	title, err := obj.decodeString(FieldTitle)
	if err != nil {
		return fmt.Errorf("dashboard: %w", err)
	}

	items, ok, err := obj.decodeArray(FieldRows)
	if err != nil {
		return fmt.Errorf("dashboard: %w", err)
	}
	if !ok {
		return fmt.Errorf("dashboard: missing required field %q", FieldRows)
	}

	rows := make([]*Row, 0, len(items))
	for i, item := range items {
		row := &Row{}
		if err := json.Unmarshal(item, row); err != nil {
			return fmt.Errorf("dashboard: row %d: %w", i+1, err)
		}
		rows = append(rows, row)
	}

	variables, err := decodeVariables(obj)
	if err != nil {
		return fmt.Errorf("dashboard: %w", err)
	}

	var timeRange *TimeRange
	if raw, ok := obj.get(FieldTime); ok && !isNull(raw) {
		timeRange = &TimeRange{}
		if err := json.Unmarshal(raw, timeRange); err != nil {
			return fmt.Errorf("dashboard: field %q must be an object with string from/to", FieldTime)
		}
	}

	timezone, err := obj.decodeString(FieldTimezone)
	if err != nil {
		return fmt.Errorf("dashboard: %w", err)
	}

	*d = Document{
		Title:     title,
		Rows:      rows,
		variables: variables,
		timeRange: timeRange,
		timezone:  timezone,
		raw:       obj,
	}
	return nil
}

func decodeVariables(obj *object) ([]Variable, error) {
	raw, ok := obj.get(FieldTemplating)
	if !ok || isNull(raw) {
		return nil, nil
	}
	templating, err := decodeObject(raw)
	if err != nil {
		return nil, fmt.Errorf("field %q: %w", FieldTemplating, err)
	}
	items, _, err := templating.decodeArray(FieldList)
	if err != nil {
		return nil, fmt.Errorf("field %q: %w", FieldTemplating, err)
	}
	variables := make([]Variable, 0, len(items))
	for _, item := range items {
		var v Variable
		if err := json.Unmarshal(item, &v); err != nil {
			return nil, fmt.Errorf("field %q: variable: %w", FieldTemplating, err)
		}
		variables = append(variables, v)
	}
	return variables, nil
}

// MarshalJSON implements json.Marshaler. Rows and title are written from the
// struct; every other field comes from the decoded source in its original order.
func (d *Document) MarshalJSON() ([]byte, error) {
	obj := copyObject(d.raw)
	if d.Title != "" || obj.has(FieldTitle) {
		if err := obj.set(FieldTitle, d.Title); err != nil {
			return nil, err
		}
	}
	rows := d.Rows
	if rows == nil {
		rows = []*Row{}
	}
	if err := obj.set(FieldRows, rows); err != nil {
		return nil, err
	}
	return obj.MarshalJSON()
}

// HasTemplating reports whether the dashboard has a templating block.
func (d *Document) HasTemplating() bool {
	return d.raw != nil && d.raw.has(FieldTemplating)
}

// Variables returns the templating variables in declaration order.
func (d *Document) Variables() []Variable {
	return d.variables
}

// Time returns the default time range, or nil when the dashboard has none.
func (d *Document) Time() *TimeRange {
	return d.timeRange
}

// Timezone returns the dashboard timezone.
func (d *Document) Timezone() string {
	return d.timezone
}

// HasVersion reports whether the dashboard carries a server-assigned version.
func (d *Document) HasVersion() bool {
	return d.raw != nil && d.raw.has(FieldVersion)
}

// StripVersion drops the server-assigned version; Grafana assigns a fresh one
// on import.
func (d *Document) StripVersion() {
	if d.raw != nil {
		d.raw.remove(FieldVersion)
	}
}

// Field returns the raw JSON of a field dashkit does not interpret.
func (d *Document) Field(key string) (json.RawMessage, bool) {
	if d.raw == nil {
		return nil, false
	}
	return d.raw.get(key)
}

// PanelCount returns the number of panels across all rows.
func (d *Document) PanelCount() int {
	n := 0
	for _, row := range d.Rows {
		n += len(row.Panels)
	}
	return n
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *Row) UnmarshalJSON(data []byte) error {
	obj, err := decodeObject(data)
	if err != nil {
		return err
	}
	title, err := obj.decodeString(FieldTitle)
	if err != nil {
		return err
	}
	items, ok, err := obj.decodeArray(FieldPanels)
	if err != nil {
		return err
	}
	panels := make([]*Panel, 0, len(items))
	for i, item := range items {
		panel := &Panel{}
		if err := json.Unmarshal(item, panel); err != nil {
			return fmt.Errorf("panel %d: %w", i+1, err)
		}
		panels = append(panels, panel)
	}

	*r = Row{Title: title, Panels: panels, raw: obj, noPanels: !ok}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (r *Row) MarshalJSON() ([]byte, error) {
	obj := copyObject(r.raw)
	if r.Title != "" || obj.has(FieldTitle) {
		if err := obj.set(FieldTitle, r.Title); err != nil {
			return nil, err
		}
	}
	if r.noPanels && len(r.Panels) == 0 {
		return obj.MarshalJSON()
	}
	panels := r.Panels
	if panels == nil {
		panels = []*Panel{}
	}
	if err := obj.set(FieldPanels, panels); err != nil {
		return nil, err
	}
	return obj.MarshalJSON()
}

// PanelTitles returns the panel titles joined by ", ".
func (r *Row) PanelTitles() string {
	titles := make([]string, len(r.Panels))
	for i, p := range r.Panels {
		titles[i] = p.Title
	}
	return strings.Join(titles, ", ")
}

// Clone returns a deep copy of the row that shares no memory with r.
func (r *Row) Clone() *Row {
	return clone.Clone(r).(*Row)
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Panel) UnmarshalJSON(data []byte) error {
	obj, err := decodeObject(data)
	if err != nil {
		return err
	}
	title, err := obj.decodeString(FieldTitle)
	if err != nil {
		return err
	}
	*p = Panel{Title: title, raw: obj}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (p *Panel) MarshalJSON() ([]byte, error) {
	obj := copyObject(p.raw)
	if p.Title != "" || obj.has(FieldTitle) {
		if err := obj.set(FieldTitle, p.Title); err != nil {
			return nil, err
		}
	}
	return obj.MarshalJSON()
}

// Field returns the raw JSON of a panel field dashkit does not interpret.
func (p *Panel) Field(key string) (json.RawMessage, bool) {
	if p.raw == nil {
		return nil, false
	}
	return p.raw.get(key)
}

// Clone returns a deep copy of the panel that shares no memory with p.
func (p *Panel) Clone() *Panel {
	return clone.Clone(p).(*Panel)
}

// copyObject returns a shallow copy of src so marshalling never mutates the
// decoded field set.
func copyObject(src *object) *object {
	obj := newObject()
	if src == nil {
		return obj
	}
	obj.keys = append(obj.keys, src.keys...)
	for k, v := range src.values {
		obj.values[k] = v
	}
	return obj
}
