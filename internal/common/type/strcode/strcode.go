// Released under an MIT license. See LICENSE.

// Package strcode provides stein's interpolated string type.
package strcode

import (
	"strings"

	"github.com/michaelmacinnis/stein/internal/common"
	"github.com/michaelmacinnis/stein/internal/common/interface/cell"
	"github.com/michaelmacinnis/stein/internal/common/interface/literal"
	"github.com/michaelmacinnis/stein/internal/common/interface/scope"
	"github.com/michaelmacinnis/stein/internal/common/type/str"
)

const name = "string-with-code"

// Code is an expression embedded in a string and the byte range, within
// the string's source text, that it was read from.
type Code struct {
	Expr  cell.I
	Start int
	End   int
}

// Evaluator evaluates embedded expressions.
type Evaluator interface {
	Evaluate(c cell.I, s scope.I) (cell.I, error)
}

// T (strcode) is a string with embedded expressions.
type T struct {
	code   []Code
	pieces []string
	raw    string
}

type strcode = T

// New creates a strcode from its source text raw, the decoded text around
// each expression, and the expressions. There must be one more piece than
// there are expressions.
func New(raw string, pieces []string, code []Code) *strcode {
	return &strcode{code: code, pieces: pieces, raw: raw}
}

// Apply evaluates each expression in s and splices in its printed form.
func (sc *strcode) Apply(e Evaluator, s scope.I) (cell.I, error) {
	var b strings.Builder

	for i, c := range sc.code {
		b.WriteString(sc.pieces[i])

		v, err := e.Evaluate(c.Expr, s)
		if err != nil {
			return nil, err
		}

		b.WriteString(common.String(v))
	}

	b.WriteString(sc.pieces[len(sc.code)])

	return str.New(b.String()), nil
}

// Bool returns true.
func (sc *strcode) Bool() bool {
	return true
}

// Code returns the embedded expressions.
func (sc *strcode) Code() []Code {
	return sc.code
}

// Equal returns true if c is a strcode read from the same text.
func (sc *strcode) Equal(c cell.I) bool {
	o, ok := c.(*strcode)

	return ok && sc.raw == o.raw
}

// Literal returns the literal representation of the strcode sc.
func (sc *strcode) Literal() string {
	return `"` + sc.raw + `"`
}

// Name returns the type name for the strcode sc.
func (sc *strcode) Name() string {
	return name
}

// String returns the source text of the strcode sc.
func (sc *strcode) String() string {
	return sc.raw
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t strcode

	// The strcode type is a cell.
	_ = cell.I(&t)

	// The strcode type has a literal representation.
	_ = literal.I(&t)

	// The strcode type is a stringer.
	_ = common.Stringer(&t)
}
