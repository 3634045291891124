// Released under an MIT license. See LICENSE.

// Package literal defines the interface for stein types that can be expressed as literals.
package literal

import (
	"github.com/michaelmacinnis/stein/internal/common/interface/cell"
)

// I (literal) is any type that can be expressed as a literal.
type I interface {
	Literal() string
}

// String returns the literal representation for a cell, if there is one.
// Cells without a literal representation are printed as <name text>.
func String(c cell.I) string {
	if c == nil {
		return "null"
	}

	l, ok := c.(I)
	if !ok {
		return "<" + c.Name() + " " + c.String() + ">"
	}

	return l.Literal()
}
