package address

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arthur-debert/dashkit/pkg/errors"
	"github.com/arthur-debert/dashkit/pkg/types"
)

// Separator splits the tokens of an address.
const Separator = "."

// Role tells the parser whether it is reading a source or a destination.
// Only destinations may name a dashboard.
type Role int

const (
	// Source addresses always refer to the context dashboard.
	Source Role = iota
	// Destination addresses may start with a dashboard slug.
	Destination
)

func (r Role) String() string {
	if r == Destination {
		return "destination"
	}
	return "source"
}

// Location is a parsed address. Row and Panel are 1-based; Panel is 0 for row
// addresses and Document is empty when the address did not name a dashboard.
type Location struct {
	Document string `json:"dashboard,omitempty" yaml:"dashboard,omitempty"`
	Row      int    `json:"row" yaml:"row"`
	Panel    int    `json:"panel,omitempty" yaml:"panel,omitempty"`
}

// HasPanel reports whether the location addresses a panel.
func (l Location) HasPanel() bool {
	return l.Panel > 0
}

// String renders the location in address syntax.
func (l Location) String() string {
	var parts []string
	if l.Document != "" {
		parts = append(parts, l.Document)
	}
	parts = append(parts, strconv.Itoa(l.Row))
	if l.HasPanel() {
		parts = append(parts, strconv.Itoa(l.Panel))
	}
	return strings.Join(parts, Separator)
}

// Parse turns a dotted address into a Location. The number of tokens must
// match the kind and role:
//
//	row source:        <row>
//	row destination:   <row> | <dashboard>.<row>
//	panel source:      <row>.<panel>
//	panel destination: <row>.<panel> | <dashboard>.<row>.<panel>
func Parse(raw string, kind types.Kind, role Role) (Location, error) {
	tokens := strings.Split(strings.TrimSpace(raw), Separator)

	positional := 1
	if kind == types.KindPanel {
		positional = 2
	} else if kind != types.KindRow {
		return Location{}, errors.Newf(errors.ErrUnsupported, "unsupported entity type %q", kind)
	}

	var loc Location
	switch {
	case len(tokens) == positional:
	case role == Destination && len(tokens) == positional+1:
		loc.Document = tokens[0]
		if loc.Document == "" {
			return Location{}, shapeError(raw, kind, role, "empty dashboard name")
		}
		tokens = tokens[1:]
	default:
		return Location{}, shapeError(raw, kind, role, "wrong number of parts")
	}

	row, err := parseIndex(tokens[0])
	if err != nil {
		return Location{}, shapeError(raw, kind, role, err.Error())
	}
	loc.Row = row

	if kind == types.KindPanel {
		panel, err := parseIndex(tokens[1])
		if err != nil {
			return Location{}, shapeError(raw, kind, role, err.Error())
		}
		loc.Panel = panel
	}

	return loc, nil
}

// parseIndex accepts canonical positive integers only: digits, no sign and
// no leading zero.
func parseIndex(token string) (int, error) {
	if token == "" || token[0] < '1' || token[0] > '9' {
		return 0, fmt.Errorf("%q is not a positive number", token)
	}
	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("%q is not a positive number", token)
	}
	return n, nil
}

func shapeError(raw string, kind types.Kind, role Role, reason string) *errors.DashkitError {
	return errors.Newf(errors.ErrAddressShape, "unsupported source or destination %q for %s %s: %s", raw, kind, role, reason).
		WithDetail("address", raw).
		WithDetail("kind", string(kind)).
		WithDetail("role", role.String()).
		WithDetail("reason", reason)
}
