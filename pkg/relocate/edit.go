package relocate

import (
	"slices"

	"github.com/arthur-debert/dashkit/pkg/address"
	"github.com/arthur-debert/dashkit/pkg/dashboard"
	"github.com/arthur-debert/dashkit/pkg/errors"
	"github.com/arthur-debert/dashkit/pkg/types"
)

// plan holds the trees loaded for one relocation.
type plan struct {
	src    address.Location
	dst    address.Location
	srcDoc *dashboard.Document
	dstDoc *dashboard.Document
}

type saveTarget struct {
	slug string
	doc  *dashboard.Document
}

func (p *plan) crossDocument() bool {
	return p.src.Document != p.dst.Document
}

// saveOrder lists the dashboards to persist. Across dashboards the
// destination is written before the source: an interruption between the two
// saves leaves a duplicate behind rather than losing the element.
func (p *plan) saveOrder(op types.Operation) []saveTarget {
	if !p.crossDocument() {
		return []saveTarget{{p.src.Document, p.srcDoc}}
	}
	targets := []saveTarget{{p.dst.Document, p.dstDoc}}
	if op == types.OperationMove {
		targets = append(targets, saveTarget{p.src.Document, p.srcDoc})
	}
	return targets
}

// editRows relocates a row. For a move inside one dashboard the destination
// position is read against the rows left after removal, so the row always
// ends up at exactly that position.
func editRows(p *plan, op types.Operation) error {
	if err := checkIndex(p.src.Row, len(p.srcDoc.Rows), "row", p.src); err != nil {
		return err
	}

	dstLen := len(p.dstDoc.Rows)
	if op == types.OperationMove && !p.crossDocument() {
		dstLen--
	}
	if err := checkPosition(p.dst.Row, dstLen, "row", p.dst); err != nil {
		return err
	}

	row := p.srcDoc.Rows[p.src.Row-1]
	if op == types.OperationMove {
		p.srcDoc.Rows = slices.Delete(p.srcDoc.Rows, p.src.Row-1, p.src.Row)
	} else {
		row = row.Clone()
	}
	p.dstDoc.Rows = slices.Insert(p.dstDoc.Rows, p.dst.Row-1, row)
	return nil
}

// editPanels relocates a panel. The destination row is looked up in the
// destination dashboard, which is the source dashboard itself unless the
// address named another one. Positions inside a shared panel list follow the
// same post-removal rule as rows.
func editPanels(p *plan, op types.Operation) error {
	if err := checkIndex(p.src.Row, len(p.srcDoc.Rows), "row", p.src); err != nil {
		return err
	}
	srcRow := p.srcDoc.Rows[p.src.Row-1]
	if err := checkIndex(p.src.Panel, len(srcRow.Panels), "panel", p.src); err != nil {
		return err
	}

	if err := checkIndex(p.dst.Row, len(p.dstDoc.Rows), "row", p.dst); err != nil {
		return err
	}
	dstRow := p.dstDoc.Rows[p.dst.Row-1]

	dstLen := len(dstRow.Panels)
	if op == types.OperationMove && dstRow == srcRow {
		dstLen--
	}
	if err := checkPosition(p.dst.Panel, dstLen, "panel", p.dst); err != nil {
		return err
	}

	panel := srcRow.Panels[p.src.Panel-1]
	if op == types.OperationMove {
		srcRow.Panels = slices.Delete(srcRow.Panels, p.src.Panel-1, p.src.Panel)
	} else {
		panel = panel.Clone()
	}
	dstRow.Panels = slices.Insert(dstRow.Panels, p.dst.Panel-1, panel)
	return nil
}

// checkIndex verifies that index points at an existing element.
func checkIndex(index, length int, what string, loc address.Location) error {
	if index >= 1 && index <= length {
		return nil
	}
	return errors.Newf(errors.ErrIndexOutOfRange,
		"%s %d does not exist on dashboard %s (it has %d)",
		what, index, loc.Document, length).
		WithDetail("index", index).
		WithDetail("length", length)
}

// checkPosition verifies that index is a valid insertion position, which
// includes one past the end.
func checkPosition(index, length int, what string, loc address.Location) error {
	if index >= 1 && index <= length+1 {
		return nil
	}
	return errors.Newf(errors.ErrIndexOutOfRange,
		"%s position %d is out of range on dashboard %s (valid 1-%d)",
		what, index, loc.Document, length+1).
		WithDetail("index", index).
		WithDetail("length", length)
}
