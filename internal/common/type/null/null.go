// Released under an MIT license. See LICENSE.

// Package null provides stein's null value.
package null

import (
	"github.com/michaelmacinnis/stein/internal/common"
	"github.com/michaelmacinnis/stein/internal/common/interface/cell"
	"github.com/michaelmacinnis/stein/internal/common/interface/literal"
)

const name = "null"

// T (null) is the type of the Null value. There is only one.
type T struct{}

type null = T

//nolint:gochecknoglobals
var (
	// Null is the absence of a value. It is false.
	Null cell.I = &null{}
)

// Bool returns false.
func (n *null) Bool() bool {
	return false
}

// Equal returns true if c is Null (or nil).
func (n *null) Equal(c cell.I) bool {
	return Is(c)
}

// Literal returns the literal representation of null.
func (n *null) Literal() string {
	return name
}

// Name returns the type name for null.
func (n *null) Name() string {
	return name
}

// String returns the text of null.
func (n *null) String() string {
	return name
}

// Is returns true if c is Null or nil.
func Is(c cell.I) bool {
	return c == nil || c == Null
}

// Or returns c, or Null if c is nil.
func Or(c cell.I) cell.I {
	if c == nil {
		return Null
	}

	return c
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t null

	// The null type is a cell.
	_ = cell.I(&t)

	// The null type has a literal representation.
	_ = literal.I(&t)

	// The null type is a stringer.
	_ = common.Stringer(&t)
}
