// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/stein/internal/common/interface/cell"
	"github.com/michaelmacinnis/stein/internal/common/interface/literal"
	"github.com/michaelmacinnis/stein/internal/common/type/boolean"
	"github.com/michaelmacinnis/stein/internal/common/type/issue"
	"github.com/michaelmacinnis/stein/internal/common/type/list"
	"github.com/michaelmacinnis/stein/internal/common/type/null"
	"github.com/michaelmacinnis/stein/internal/common/type/sym"
	"github.com/michaelmacinnis/stein/internal/engine/builtin"
	"github.com/michaelmacinnis/stein/internal/engine/closure"
	"github.com/michaelmacinnis/stein/internal/engine/iterate"
)

func and(c *builtin.Call) (cell.I, error) {
	var v cell.I = boolean.True

	for _, a := range c.Args {
		var err error

		v, err = c.Evaluator.Evaluate(a, c.Caller)
		if err != nil {
			return nil, err
		}

		if !v.Bool() {
			return v, nil
		}
	}

	return v, nil
}

// (if test then [else] [otherwise])
func conditional(c *builtin.Call) (cell.I, error) {
	args := c.Args
	if len(args) == 4 { //nolint:gomnd
		if !isSymbol(args[2], "else") {
			return nil, issue.New(issue.Syntax, nil, "if: expected else, got %s", literal.String(args[2]))
		}

		args = append(args[:2:2], args[3])
	}

	v, err := c.Evaluator.Evaluate(args[0], c.Caller)
	if err != nil {
		return nil, err
	}

	if v.Bool() {
		return c.Evaluator.Evaluate(args[1], c.Caller)
	}

	if len(args) > 2 { //nolint:gomnd
		return c.Evaluator.Evaluate(args[2], c.Caller)
	}

	return null.Null, nil
}

// (const name [=] value)
func constant(c *builtin.Call) (cell.I, error) {
	k, v, err := binding(c)
	if err != nil {
		return nil, err
	}

	return v, c.Caller.SetConstant(k, v)
}

func defined(c *builtin.Call) (cell.I, error) {
	k, err := name(c.Args[0])
	if err != nil {
		return nil, err
	}

	_, ok := c.Caller.Lookup(k, true)

	return boolean.Bool(ok), nil
}

// (func [name] (params...) body...)
func function(c *builtin.Call) (cell.I, error) {
	args := c.Args

	label := ""
	if s, ok := args[0].(*sym.T); ok {
		label = s.String()
		args = args[1:]
	}

	if len(args) == 0 {
		return nil, issue.New(issue.Syntax, nil, "func: expected a parameter list")
	}

	params, ok := args[0].(*list.T)
	if !ok {
		return nil, issue.New(
			issue.Syntax, nil, "func: expected a parameter list, got %s", literal.String(args[0]),
		)
	}

	names := make([]string, params.Len())

	for i, p := range params.Items() {
		k, err := name(p)
		if err != nil {
			return nil, err
		}

		names[i] = k
	}

	if !params.Has(list.DefinitionParameters) {
		params.SetFlag(list.DefinitionParameters, true)
	}

	f := closure.New(closure.Parameters(names), list.At(params.Loc(), 0, args[1:]...), c.Caller)

	if label != "" {
		f.SetLabel(label)

		err := c.Caller.Set(label, f, false)
		if err != nil {
			return nil, err
		}
	}

	return f, nil
}

// (let name [=] value)
func let(c *builtin.Call) (cell.I, error) {
	k, v, err := binding(c)
	if err != nil {
		return nil, err
	}

	return v, c.Caller.Set(k, v, false)
}

// (match value pattern result ... [_ default])
func match(c *builtin.Call) (cell.I, error) {
	v, err := c.Evaluator.Evaluate(c.Args[0], c.Caller)
	if err != nil {
		return nil, err
	}

	cases := c.Args[1:]
	if len(cases)%2 != 0 {
		return nil, issue.New(issue.Syntax, nil, "match: every pattern needs a result")
	}

	for i := 0; i < len(cases); i += 2 {
		if !isSymbol(cases[i], "_") {
			p, err := c.Evaluator.Evaluate(cases[i], c.Caller)
			if err != nil {
				return nil, err
			}

			if !p.Equal(v) {
				continue
			}
		}

		return c.Evaluator.Evaluate(cases[i+1], c.Caller)
	}

	return null.Null, nil
}

func or(c *builtin.Call) (cell.I, error) {
	var v cell.I = boolean.False

	for _, a := range c.Args {
		var err error

		v, err = c.Evaluator.Evaluate(a, c.Caller)
		if err != nil {
			return nil, err
		}

		if v.Bool() {
			return v, nil
		}
	}

	return v, nil
}

func quote(c *builtin.Call) (cell.I, error) {
	return c.Args[0], nil
}

// (set name [=] value)
func set(c *builtin.Call) (cell.I, error) {
	k, v, err := binding(c)
	if err != nil {
		return nil, err
	}

	return v, c.Caller.Set(k, v, true)
}

// (super selector: arg ...)
func super(c *builtin.Call) (cell.I, error) {
	self, ok := c.Caller.Lookup(closure.Self, true)
	if !ok {
		return nil, issue.New(issue.Dispatch, nil, "super used outside of a method")
	}

	class, ok := c.Caller.Lookup(closure.Superclass, true)
	if !ok {
		return nil, issue.New(issue.Dispatch, nil, "super used in a method without a superclass")
	}

	selector := ""
	args := []cell.I{}

	if len(c.Args) == 1 {
		k, err := name(c.Args[0])
		if err != nil {
			return nil, err
		}

		selector = k
	} else {
		if len(c.Args)%2 != 0 {
			return nil, issue.New(issue.Dispatch, nil, "super: every selector part needs an argument")
		}

		for i := 0; i < len(c.Args); i += 2 {
			k, err := name(c.Args[i])
			if err != nil {
				return nil, err
			}

			v, err := c.Evaluator.Evaluate(c.Args[i+1], c.Caller)
			if err != nil {
				return nil, err
			}

			selector += k
			args = append(args, v)
		}
	}

	return c.Evaluator.SendSuper(self, class, selector, args, c.Caller)
}

func unset(c *builtin.Call) (cell.I, error) {
	k, err := name(c.Args[0])
	if err != nil {
		return nil, err
	}

	c.Caller.Remove(k, true)

	return null.Null, nil
}

// (while test body...)
func while(c *builtin.Call) (cell.I, error) {
	test, body := c.Args[0], c.Args[1:]

	err := iterate.While(func() (bool, error) {
		v, err := c.Evaluator.Evaluate(test, c.Caller)
		if err != nil {
			return false, err
		}

		return v.Bool(), nil
	}, func() error {
		_, err := c.Evaluator.EvaluateAll(body, c.Caller)

		return err
	})
	if err != nil {
		return nil, err
	}

	return null.Null, nil
}

// Helper functions.

// binding handles the name [=] value forms used by let, set and const.
// A nameless closure is named after the binding.
func binding(c *builtin.Call) (string, cell.I, error) {
	args := c.Args
	if len(args) == 3 { //nolint:gomnd
		if !isSymbol(args[1], "=") {
			return "", nil, issue.New(issue.Syntax, nil, "expected =, got %s", literal.String(args[1]))
		}

		args = []cell.I{args[0], args[2]}
	}

	k, err := name(args[0])
	if err != nil {
		return "", nil, err
	}

	v, err := c.Evaluator.Evaluate(args[1], c.Caller)
	if err != nil {
		return "", nil, err
	}

	if f, ok := v.(*closure.T); ok && f.Label() == "" {
		f.SetLabel(k)
	}

	return k, v, nil
}

func isSymbol(c cell.I, text string) bool {
	s, ok := c.(*sym.T)

	return ok && s.String() == text
}

func name(c cell.I) (string, error) {
	s, ok := c.(*sym.T)
	if !ok {
		return "", issue.New(issue.Syntax, nil, "expected a name, got %s", literal.String(c))
	}

	return s.String(), nil
}
