// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/stein/internal/common/interface/cell"
	"github.com/michaelmacinnis/stein/internal/common/interface/literal"
	"github.com/michaelmacinnis/stein/internal/common/interface/numeric"
	"github.com/michaelmacinnis/stein/internal/common/type/boolean"
	"github.com/michaelmacinnis/stein/internal/common/type/issue"
	"github.com/michaelmacinnis/stein/internal/common/type/str"
	"github.com/michaelmacinnis/stein/internal/engine/builtin"
)

func equal(c *builtin.Call) (cell.I, error) {
	return boolean.Bool(c.Args[0].Equal(c.Args[1])), nil
}

func ge(c *builtin.Call) (cell.I, error) {
	return compare(c.Args, func(n int) bool { return n >= 0 })
}

func gt(c *builtin.Call) (cell.I, error) {
	return compare(c.Args, func(n int) bool { return n > 0 })
}

func le(c *builtin.Call) (cell.I, error) {
	return compare(c.Args, func(n int) bool { return n <= 0 })
}

func lt(c *builtin.Call) (cell.I, error) {
	return compare(c.Args, func(n int) bool { return n < 0 })
}

func not(c *builtin.Call) (cell.I, error) {
	return boolean.Bool(!c.Args[0].Bool()), nil
}

func notEqual(c *builtin.Call) (cell.I, error) {
	return boolean.Bool(!c.Args[0].Equal(c.Args[1])), nil
}

// Helper functions.

// compare returns true if ok holds for each adjacent pair of values.
// Values are compared as numbers unless both are strings.
func compare(cs []cell.I, ok func(int) bool) (cell.I, error) {
	for i := 1; i < len(cs); i++ {
		n, err := order(cs[i-1], cs[i])
		if err != nil {
			return nil, err
		}

		if !ok(n) {
			return boolean.False, nil
		}
	}

	return boolean.True, nil
}

func order(a, b cell.I) (int, error) {
	if x, ok := a.(*str.T); ok {
		y, ok := b.(*str.T)
		if !ok {
			return 0, issue.New(
				issue.Type, nil, "cannot compare %s and %s", literal.String(a), literal.String(b),
			)
		}

		return sign(x.String(), y.String()), nil
	}

	x, err := numeric.Value(a)
	if err != nil {
		return 0, err
	}

	y, err := numeric.Value(b)
	if err != nil {
		return 0, err
	}

	return sign(x, y), nil
}

func sign[T float64 | string](x, y T) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}

	return 0
}
