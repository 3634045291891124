// Released under an MIT license. See LICENSE.

// Package scope defines the interface for stein's chained environments.
package scope

import (
	"iter"

	"github.com/michaelmacinnis/stein/internal/common/interface/cell"
)

// I (scope) is the interface for stein's chained, mutable environments.
type I interface {
	cell.I

	Enumerate() iter.Seq2[string, cell.I]
	Label() string
	Lookup(k string, searchParents bool) (cell.I, bool)
	Parent() I
	Remove(k string, searchParents bool)
	Set(k string, v cell.I, searchParents bool) error
	SetConstant(k string, v cell.I) error
}

type scope = I

// Is returns true if c is a scope.
func Is(c cell.I) bool {
	_, ok := c.(scope)

	return ok
}
