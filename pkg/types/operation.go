package types

import "strings"

// Operation is the kind of structural edit a relocation performs.
type Operation string

const (
	// OperationMove removes the element from its source before inserting it.
	OperationMove Operation = "move"
	// OperationCopy leaves the source untouched and inserts a duplicate.
	OperationCopy Operation = "copy"
)

// Kind is the type of element being relocated.
type Kind string

const (
	// KindRow addresses a row (a section of a dashboard).
	KindRow Kind = "row"
	// KindPanel addresses a panel inside a row.
	KindPanel Kind = "panel"
)

// NormalizeKind turns user input into a Kind. The result is not validated;
// callers check Valid.
func NormalizeKind(s string) Kind {
	return Kind(strings.ToLower(strings.TrimSpace(s)))
}

// Valid reports whether op is a known operation.
func (op Operation) Valid() bool {
	return op == OperationMove || op == OperationCopy
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return k == KindRow || k == KindPanel
}

// Title returns the capitalized kind name used in user messages.
func (k Kind) Title() string {
	if k == "" {
		return ""
	}
	return strings.ToUpper(string(k[:1])) + string(k[1:])
}

// PastTense returns the verb used in confirmation messages.
func (op Operation) PastTense() string {
	switch op {
	case OperationMove:
		return "moved"
	case OperationCopy:
		return "copied"
	default:
		return string(op)
	}
}

// ContextResolver supplies the dashboard assumed when an address does not
// name one.
type ContextResolver interface {
	HasDefaultDocument() bool
	DefaultDocument() string
}
