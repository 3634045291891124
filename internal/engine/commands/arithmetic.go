// Released under an MIT license. See LICENSE.

package commands

import (
	"math"

	"github.com/michaelmacinnis/stein/internal/common/interface/cell"
	"github.com/michaelmacinnis/stein/internal/common/interface/numeric"
	"github.com/michaelmacinnis/stein/internal/common/type/issue"
	"github.com/michaelmacinnis/stein/internal/common/type/num"
	"github.com/michaelmacinnis/stein/internal/engine/builtin"
)

func add(c *builtin.Call) (cell.I, error) {
	return fold(0, c.Args, func(acc, v float64) (float64, error) {
		return acc + v, nil
	})
}

func div(c *builtin.Call) (cell.I, error) {
	if len(c.Args) == 1 {
		return fold(1, c.Args, quotient)
	}

	first, err := numeric.Value(c.Args[0])
	if err != nil {
		return nil, err
	}

	return fold(first, c.Args[1:], quotient)
}

func mod(c *builtin.Call) (cell.I, error) {
	fs, err := floats(c.Args)
	if err != nil {
		return nil, err
	}

	if fs[1] == 0 {
		return nil, issue.New(issue.Type, nil, "division by zero")
	}

	return num.New(math.Mod(fs[0], fs[1])), nil
}

func mul(c *builtin.Call) (cell.I, error) {
	return fold(1, c.Args, func(acc, v float64) (float64, error) {
		return acc * v, nil
	})
}

func sub(c *builtin.Call) (cell.I, error) {
	difference := func(acc, v float64) (float64, error) {
		return acc - v, nil
	}

	if len(c.Args) == 1 {
		return fold(0, c.Args, difference)
	}

	first, err := numeric.Value(c.Args[0])
	if err != nil {
		return nil, err
	}

	return fold(first, c.Args[1:], difference)
}

// Helper functions.

func floats(cs []cell.I) ([]float64, error) {
	fs := make([]float64, len(cs))

	for i, c := range cs {
		f, err := numeric.Value(c)
		if err != nil {
			return nil, err
		}

		fs[i] = f
	}

	return fs, nil
}

func fold(acc float64, cs []cell.I, f func(acc, v float64) (float64, error)) (cell.I, error) {
	fs, err := floats(cs)
	if err != nil {
		return nil, err
	}

	for _, v := range fs {
		acc, err = f(acc, v)
		if err != nil {
			return nil, err
		}
	}

	return num.New(acc), nil
}

func quotient(acc, v float64) (float64, error) {
	if v == 0 {
		return 0, issue.New(issue.Type, nil, "division by zero")
	}

	return acc / v, nil
}
