// Released under an MIT license. See LICENSE.

package commands

import (
	"unicode/utf8"

	"github.com/michaelmacinnis/stein/internal/common/interface/callable"
	"github.com/michaelmacinnis/stein/internal/common/interface/cell"
	"github.com/michaelmacinnis/stein/internal/common/interface/integer"
	"github.com/michaelmacinnis/stein/internal/common/interface/literal"
	"github.com/michaelmacinnis/stein/internal/common/type/issue"
	"github.com/michaelmacinnis/stein/internal/common/type/list"
	"github.com/michaelmacinnis/stein/internal/common/type/null"
	"github.com/michaelmacinnis/stein/internal/common/type/num"
	"github.com/michaelmacinnis/stein/internal/common/type/str"
	"github.com/michaelmacinnis/stein/internal/common/validate"
	"github.com/michaelmacinnis/stein/internal/engine/builtin"
	"github.com/michaelmacinnis/stein/internal/engine/iterate"
)

// (append l v...) adds each v to the end of l and returns l.
func appendList(c *builtin.Call) (cell.I, error) {
	l, err := validate.List(c.Args[0])
	if err != nil {
		return nil, err
	}

	l.Append(c.Args[1:]...)

	return l, nil
}

func filter(c *builtin.Call) (cell.I, error) {
	l, f, err := sequence(c)
	if err != nil {
		return nil, err
	}

	kept, err := iterate.Filter(c.Evaluator, f, l.Items(), c.Caller)
	if err != nil {
		return nil, err
	}

	return list.New(kept...), nil
}

func foreach(c *builtin.Call) (cell.I, error) {
	l, f, err := sequence(c)
	if err != nil {
		return nil, err
	}

	var last cell.I = null.Null

	err = iterate.Each(c.Evaluator, f, l.Items(), c.Caller, func(_, v cell.I) {
		last = v
	})
	if err != nil {
		return nil, err
	}

	return last, nil
}

func length(c *builtin.Call) (cell.I, error) {
	switch t := c.Args[0].(type) {
	case *list.T:
		return num.Int(t.Len()), nil
	case *str.T:
		return num.Int(utf8.RuneCountInString(t.String())), nil
	}

	return nil, issue.New(
		issue.Type, nil, "expected list or string, got %s", literal.String(c.Args[0]),
	)
}

func makeList(c *builtin.Call) (cell.I, error) {
	return list.New(c.Args...), nil
}

// (range [start] end [step]) returns the numbers from start up to but not
// including end.
func makeRange(c *builtin.Call) (cell.I, error) {
	fs, err := floats(c.Args)
	if err != nil {
		return nil, err
	}

	start, end, step := 0.0, fs[0], 1.0

	switch len(fs) {
	case 3: //nolint:gomnd
		step = fs[2]

		fallthrough
	case 2: //nolint:gomnd
		start, end = fs[0], fs[1]
	}

	if step == 0 {
		return nil, issue.New(issue.Type, nil, "range: step cannot be zero")
	}

	l := list.New()

	for v := start; (step > 0 && v < end) || (step < 0 && v > end); v += step {
		l.Append(num.New(v))
	}

	return l, nil
}

func mapList(c *builtin.Call) (cell.I, error) {
	l, f, err := sequence(c)
	if err != nil {
		return nil, err
	}

	mapped, err := iterate.Map(c.Evaluator, f, l.Items(), c.Caller)
	if err != nil {
		return nil, err
	}

	return list.New(mapped...), nil
}

// (nth l i) returns the item at index i. Negative indices count from the end.
func nth(c *builtin.Call) (cell.I, error) {
	l, err := validate.List(c.Args[0])
	if err != nil {
		return nil, err
	}

	i, err := integer.Value(c.Args[1])
	if err != nil {
		return nil, err
	}

	n := int64(l.Len())

	j := i
	if j < 0 {
		j += n
	}

	v, ok := l.At(int(j))
	if !ok || j < 0 {
		return nil, issue.New(issue.Type, nil, "index %d out of range [%d:%d]", i, -n, n)
	}

	return v, nil
}

// Helper functions.

func sequence(c *builtin.Call) (*list.T, callable.I, error) {
	l, err := validate.List(c.Args[0])
	if err != nil {
		return nil, nil, err
	}

	f, err := validate.Callable(c.Args[1])
	if err != nil {
		return nil, nil, err
	}

	return l, f, nil
}
