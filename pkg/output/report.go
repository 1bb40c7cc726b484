package output

// Field is one labelled value of a Report.
type Field struct {
	Label string
	Value string
}

// Report is a generic command result. The text renderer prints Title, Fields
// and Items; the machine renderers encode Data instead.
type Report struct {
	Title  string
	Fields []Field
	Items  []string
	// Empty is printed in place of Items when there are none.
	Empty string

	Data interface{}
}
