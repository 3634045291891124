// Released under an MIT license. See LICENSE.

// Package num provides stein's number type.
package num

import (
	"math"
	"strconv"
	"strings"

	"github.com/michaelmacinnis/stein/internal/common"
	"github.com/michaelmacinnis/stein/internal/common/interface/cell"
	"github.com/michaelmacinnis/stein/internal/common/interface/literal"
	"github.com/michaelmacinnis/stein/internal/common/interface/numeric"
)

const name = "number"

// T (num) wraps Go's float64 type.
type T float64

type num = T

// New creates a new num cell from the float64 f.
func New(f float64) cell.I {
	n := num(f)

	return &n
}

// Int creates a num from the integer i.
func Int(i int) cell.I {
	return New(float64(i))
}

// Parse creates a new num from a string.
func Parse(s string) (cell.I, error) {
	if strings.ContainsRune(s, '_') {
		return nil, &strconv.NumError{Func: "ParseFloat", Num: s, Err: strconv.ErrSyntax}
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}

	return New(f), nil
}

// Bool returns true unless the num n is zero or not a number.
func (n *num) Bool() bool {
	f := float64(*n)

	return f != 0 && !math.IsNaN(f)
}

// Equal returns true if c is the same number as the num n.
func (n *num) Equal(c cell.I) bool {
	o, ok := c.(*num)

	return ok && *n == *o
}

// Float returns the value of the num n as a float64.
func (n *num) Float() float64 {
	return float64(*n)
}

// Literal returns the literal representation of the num n.
func (n *num) Literal() string {
	return n.String()
}

// Name returns the type name for the num n.
func (n *num) Name() string {
	return name
}

// String returns the text of the num n.
func (n *num) String() string {
	return strconv.FormatFloat(float64(*n), 'g', -1, 64)
}

// Is returns true if c is a num.
func Is(c cell.I) bool {
	_, ok := c.(*num)

	return ok
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t num

	// The num type is a cell.
	_ = cell.I(&t)

	// The num type has a literal representation.
	_ = literal.I(&t)

	// The num type is numeric.
	_ = numeric.I(&t)

	// The num type is a stringer.
	_ = common.Stringer(&t)
}
