// Released under an MIT license. See LICENSE.

// Package iterate applies stein functions to sequences of values.
// Every function in this package stops on break and skips on continue.
package iterate

import (
	"github.com/michaelmacinnis/stein/internal/common/interface/callable"
	"github.com/michaelmacinnis/stein/internal/common/interface/cell"
	"github.com/michaelmacinnis/stein/internal/common/interface/scope"
	"github.com/michaelmacinnis/stein/internal/common/type/null"
	"github.com/michaelmacinnis/stein/internal/common/type/signal"
)

// Each calls f with each item in turn. Then, unless f signalled
// continue, it calls visit with the item and the value f returned.
func Each(
	e callable.Evaluator, f callable.I, items []cell.I, s scope.I,
	visit func(item, v cell.I),
) error {
	for _, item := range items {
		v, err := e.Call(f, []cell.I{item}, s)
		if err != nil {
			stop, err := signal.Loop(err)
			if err != nil {
				return err
			}

			if stop {
				break
			}

			continue
		}

		visit(item, null.Or(v))
	}

	return nil
}

// Filter returns the items for which f returns a true value.
func Filter(e callable.Evaluator, f callable.I, items []cell.I, s scope.I) ([]cell.I, error) {
	var kept []cell.I

	err := Each(e, f, items, s, func(item, v cell.I) {
		if v.Bool() {
			kept = append(kept, item)
		}
	})

	return kept, err
}

// Map returns the values f returns for each item.
func Map(e callable.Evaluator, f callable.I, items []cell.I, s scope.I) ([]cell.I, error) {
	var mapped []cell.I

	err := Each(e, f, items, s, func(_, v cell.I) {
		mapped = append(mapped, v)
	})

	return mapped, err
}

// While evaluates body as long as test returns a true value.
func While(test func() (bool, error), body func() error) error {
	for {
		ok, err := test()
		if err != nil {
			return err
		}

		if !ok {
			return nil
		}

		stop, err := signal.Loop(body())
		if err != nil {
			return err
		}

		if stop {
			return nil
		}
	}
}
