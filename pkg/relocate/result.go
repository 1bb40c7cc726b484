package relocate

import (
	"fmt"

	"github.com/arthur-debert/dashkit/pkg/address"
	"github.com/arthur-debert/dashkit/pkg/types"
)

// Result describes a completed relocation.
type Result struct {
	Operation   types.Operation  `json:"operation" yaml:"operation"`
	Kind        types.Kind       `json:"kind" yaml:"kind"`
	Source      address.Location `json:"source" yaml:"source"`
	Destination address.Location `json:"destination" yaml:"destination"`

	// Saved lists the dashboards written, in write order.
	Saved []string `json:"saved,omitempty" yaml:"saved,omitempty"`
	// Pending lists the dashboards a dry run would have written.
	Pending []string `json:"pending,omitempty" yaml:"pending,omitempty"`
	DryRun  bool     `json:"dryRun" yaml:"dryRun"`
}

// Message is the confirmation shown to the user.
func (r *Result) Message() string {
	msg := fmt.Sprintf("%s successfully %s.", r.Kind.Title(), r.Operation.PastTense())
	if r.DryRun {
		msg = fmt.Sprintf("%s would be %s (dry run, nothing saved).", r.Kind.Title(), r.Operation.PastTense())
	}
	return msg
}

// Details describes where the element went.
func (r *Result) Details() string {
	return fmt.Sprintf("%s %s -> %s", r.Kind, r.Source, r.Destination)
}
