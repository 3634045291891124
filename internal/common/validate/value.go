// Released under an MIT license. See LICENSE.

package validate

import (
	"github.com/michaelmacinnis/stein/internal/common/interface/callable"
	"github.com/michaelmacinnis/stein/internal/common/interface/cell"
	"github.com/michaelmacinnis/stein/internal/common/interface/integer"
	"github.com/michaelmacinnis/stein/internal/common/interface/literal"
	"github.com/michaelmacinnis/stein/internal/common/type/issue"
	"github.com/michaelmacinnis/stein/internal/common/type/list"
	"github.com/michaelmacinnis/stein/internal/common/type/str"
	"github.com/michaelmacinnis/stein/internal/common/type/sym"
)

// Callable returns c as a callable or an error if it is not one.
func Callable(c cell.I) (callable.I, error) {
	f, ok := c.(callable.I)
	if !ok {
		return nil, wrong(c, "function")
	}

	return f, nil
}

// Index returns c as an index into a sequence of length n.
func Index(c cell.I, n int) (int, error) {
	i, err := integer.Value(c)
	if err != nil {
		return 0, err
	}

	if i < 0 || i >= int64(n) {
		return 0, issue.New(issue.Type, nil, "index %d out of range [0:%d]", i, n)
	}

	return int(i), nil
}

// List returns c as a list or an error if it is not one.
func List(c cell.I) (*list.T, error) {
	l, ok := c.(*list.T)
	if !ok {
		return nil, wrong(c, "list")
	}

	return l, nil
}

// Text returns the text of a string or symbol.
func Text(c cell.I) (string, error) {
	switch t := c.(type) {
	case *str.T:
		return t.String(), nil
	case *sym.T:
		return t.String(), nil
	}

	return "", wrong(c, "string or symbol")
}

func wrong(c cell.I, expected string) error {
	return issue.New(issue.Type, nil, "expected %s, got %s", expected, literal.String(c))
}
