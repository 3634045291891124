// Released under an MIT license. See LICENSE.

package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/michaelmacinnis/adapted"
	"github.com/michaelmacinnis/stein/internal/common"
	"github.com/michaelmacinnis/stein/internal/common/interface/cell"
	"github.com/michaelmacinnis/stein/internal/common/interface/literal"
	"github.com/michaelmacinnis/stein/internal/common/type/boolean"
	"github.com/michaelmacinnis/stein/internal/common/type/list"
	"github.com/michaelmacinnis/stein/internal/common/type/null"
	"github.com/michaelmacinnis/stein/internal/common/type/str"
	"github.com/michaelmacinnis/stein/internal/common/validate"
	"github.com/michaelmacinnis/stein/internal/engine/builtin"
)

// (bindings) returns a list of (name value) pairs for the caller's scope.
func bindings(c *builtin.Call) (cell.I, error) {
	l := list.New()

	for k, v := range c.Caller.Enumerate() {
		l.Append(list.New(str.New(k), v))
	}

	return l, nil
}

func concat(c *builtin.Call) (cell.I, error) {
	var b strings.Builder

	for _, v := range c.Args {
		b.WriteString(common.String(v))
	}

	return str.New(b.String()), nil
}

// debug writes the literal form of each argument to w.
func debug(w io.Writer) builtin.Function {
	return func(c *builtin.Call) (cell.I, error) {
		return write(w, c.Args, literal.String)
	}
}

// (gensym [prefix]) returns a symbol that has not been used before.
func gensym(c *builtin.Call) (cell.I, error) {
	prefix := "g"

	if len(c.Args) > 0 {
		s, err := validate.Text(c.Args[0])
		if err != nil {
			return nil, err
		}

		prefix = s
	}

	return c.Evaluator.Symbols().Intern(prefix + "-" + uuid.NewString()), nil
}

// (like text pattern) matches text against a glob pattern.
func like(c *builtin.Call) (cell.I, error) {
	text, err := validate.Text(c.Args[0])
	if err != nil {
		return nil, err
	}

	pattern, err := validate.Text(c.Args[1])
	if err != nil {
		return nil, err
	}

	ok, err := adapted.Match(pattern, text)
	if err != nil {
		return nil, err
	}

	return boolean.Bool(ok), nil
}

// printer writes the printed form of each argument to w.
func printer(w io.Writer) builtin.Function {
	return func(c *builtin.Call) (cell.I, error) {
		return write(w, c.Args, common.String)
	}
}

func toStr(c *builtin.Call) (cell.I, error) {
	if s, ok := c.Args[0].(*str.T); ok {
		return s, nil
	}

	return str.New(common.String(c.Args[0])), nil
}

func typeOf(c *builtin.Call) (cell.I, error) {
	if c.Args[0] == nil {
		return str.New("null"), nil
	}

	return str.New(c.Args[0].Name()), nil
}

// Helper functions.

func write(w io.Writer, cs []cell.I, form func(cell.I) string) (cell.I, error) {
	s := make([]string, len(cs))
	for i, c := range cs {
		s[i] = form(c)
	}

	_, err := fmt.Fprintln(w, strings.Join(s, " "))
	if err != nil {
		return nil, err
	}

	if len(cs) == 1 {
		return cs[0], nil
	}

	return null.Null, nil
}
