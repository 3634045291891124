// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/stein/internal/common"
	"github.com/michaelmacinnis/stein/internal/common/interface/cell"
	"github.com/michaelmacinnis/stein/internal/common/type/errsys"
	"github.com/michaelmacinnis/stein/internal/common/type/issue"
	"github.com/michaelmacinnis/stein/internal/common/type/list"
	"github.com/michaelmacinnis/stein/internal/common/type/signal"
	"github.com/michaelmacinnis/stein/internal/common/validate"
	"github.com/michaelmacinnis/stein/internal/engine/builtin"
	"github.com/michaelmacinnis/stein/internal/reader"
)

// (apply f l) calls f with the items of l as its arguments.
func apply(c *builtin.Call) (cell.I, error) {
	f, err := validate.Callable(c.Args[0])
	if err != nil {
		return nil, err
	}

	l, err := validate.List(c.Args[1])
	if err != nil {
		return nil, err
	}

	return c.Evaluator.Call(f, l.Items(), c.Caller)
}

func breakLoop(_ *builtin.Call) (cell.I, error) {
	return nil, signal.New(signal.Break, nil)
}

func continueLoop(_ *builtin.Call) (cell.I, error) {
	return nil, signal.New(signal.Continue, nil)
}

func eval(c *builtin.Call) (cell.I, error) {
	return c.Evaluator.Evaluate(c.Args[0], c.Caller)
}

// (parse text) returns the list of expressions in text.
func parse(c *builtin.Call) (cell.I, error) {
	text, err := validate.Text(c.Args[0])
	if err != nil {
		return nil, err
	}

	cs, err := reader.Parse(c.Evaluator.Symbols(), text, "<parse>")
	if err != nil {
		return nil, err
	}

	return list.New(cs...), nil
}

// (send receiver selector args...)
func send(c *builtin.Call) (cell.I, error) {
	selector, err := validate.Text(c.Args[1])
	if err != nil {
		return nil, err
	}

	return c.Evaluator.Send(c.Args[0], selector, c.Args[2:], c.Caller)
}

// (throw v) raises v. Errors caught by try are raised again unchanged.
func throw(c *builtin.Call) (cell.I, error) {
	if e, ok := c.Args[0].(*errsys.T); ok {
		return nil, e.Err()
	}

	return nil, issue.New(issue.User, nil, "%s", common.String(c.Args[0]))
}

// (try f handler) calls f. If f fails, handler is called with the error.
// Break and continue are not failures and pass through untouched.
func try(c *builtin.Call) (cell.I, error) {
	f, err := validate.Callable(c.Args[0])
	if err != nil {
		return nil, err
	}

	handler, err := validate.Callable(c.Args[1])
	if err != nil {
		return nil, err
	}

	v, err := c.Evaluator.Call(f, nil, c.Caller)
	if err == nil {
		return v, nil
	}

	if _, ok := signal.As(err); ok {
		return nil, err
	}

	return c.Evaluator.Call(handler, []cell.I{errsys.New(err)}, c.Caller)
}
