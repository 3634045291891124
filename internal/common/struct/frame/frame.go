// Released under an MIT license. See LICENSE.

// Package frame provides the record kept for each expression an error
// unwinds through.
package frame

import (
	"github.com/michaelmacinnis/stein/internal/common/interface/cell"
	"github.com/michaelmacinnis/stein/internal/common/interface/literal"
	"github.com/michaelmacinnis/stein/internal/common/struct/loc"
)

// T (frame) is an expression that was being evaluated and where it came from.
type T struct {
	expr   cell.I
	source *loc.T
}

type frame = T

// New creates a new frame for the expression c created at source.
func New(c cell.I, source *loc.T) *frame {
	return &frame{expr: c, source: source}
}

// Expression returns the expression that was being evaluated.
func (f *frame) Expression() cell.I {
	return f.expr
}

// Loc returns the location where the expression was created.
func (f *frame) Loc() *loc.T {
	return f.source
}

// String returns a one line description of the frame.
func (f *frame) String() string {
	return f.source.String() + ": " + literal.String(f.expr)
}
