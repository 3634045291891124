// Released under an MIT license. See LICENSE.

// Package integer converts a stein cell to an int64 value, if possible.
package integer

import (
	"math"

	"github.com/michaelmacinnis/stein/internal/common/interface/cell"
	"github.com/michaelmacinnis/stein/internal/common/interface/numeric"
	"github.com/michaelmacinnis/stein/internal/common/type/issue"
)

// Value returns the int64 value for a cell, if possible.
func Value(c cell.I) (int64, error) {
	f, err := numeric.Value(c)
	if err != nil {
		return 0, err
	}

	if f != math.Trunc(f) || f > math.MaxInt64 || f < math.MinInt64 {
		return 0, issue.New(issue.Type, nil, "%s does not have an integer value", c.String())
	}

	return int64(f), nil
}
