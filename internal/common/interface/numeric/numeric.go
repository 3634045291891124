// Released under an MIT license. See LICENSE.

// Package numeric defines the interface for stein's numeric types.
package numeric

import (
	"github.com/michaelmacinnis/stein/internal/common/interface/cell"
	"github.com/michaelmacinnis/stein/internal/common/type/issue"
)

// I (numeric) is anything that can be treated as a number in stein.
type I interface {
	Float() float64
}

type numeric = I

// Value returns the float64 value for a cell, if possible.
func Value(c cell.I) (float64, error) {
	n, ok := c.(numeric)
	if !ok {
		return 0, issue.New(issue.Type, nil, "%s cannot be used in a numeric context", kind(c))
	}

	return n.Float(), nil
}

func kind(c cell.I) string {
	if c == nil {
		return "null"
	}

	return c.Name()
}
