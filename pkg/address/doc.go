// Package address parses the dotted positional addresses used to point at a
// row or a panel, optionally on another dashboard ("2", "beta.2", "1.3",
// "beta.2.1").
package address
