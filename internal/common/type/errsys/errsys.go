// Released under an MIT license. See LICENSE.

// Package errsys provides stein's error value type.
package errsys

import (
	"errors"

	"github.com/michaelmacinnis/stein/internal/common"
	"github.com/michaelmacinnis/stein/internal/common/interface/cell"
	"github.com/michaelmacinnis/stein/internal/common/type/issue"
	"github.com/michaelmacinnis/stein/internal/common/type/trace"
)

const name = "error"

// T (errsys) is used to pass an error where a cell is expected.
type T struct {
	error
}

type errsys = T

// New creates a new errsys to wrap the error err.
func New(err error) *errsys {
	return &errsys{err}
}

// Bool returns the boolean value of the errsys e.
func (e *errsys) Bool() bool {
	return false
}

// Equal returns true if the cell c is an errsys that wraps the same error.
func (e *errsys) Equal(c cell.I) bool {
	o, ok := c.(*errsys)

	return ok && (e == o || errors.Is(e.error, o.error))
}

// Name returns the name of the errsys type.
func (e *errsys) Name() string {
	return name
}

// String returns the text of the errsys e.
func (e *errsys) String() string {
	return e.Error()
}

// Methods specific to errsys.

// Backtrace returns the expressions the error unwound through, if known.
func (e *errsys) Backtrace() []string {
	var t *trace.T
	if errors.As(e.error, &t) {
		return t.Backtrace()
	}

	return nil
}

// Err returns the wrapped error.
func (e *errsys) Err() error {
	return e.error
}

// Message returns the error's message without its location.
func (e *errsys) Message() string {
	var i *issue.T
	if errors.As(e.error, &i) {
		return i.Message()
	}

	return e.Error()
}

// Is returns true if c is an errsys.
func Is(c cell.I) bool {
	_, ok := c.(*errsys)

	return ok
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t errsys

	// The errsys type is a cell.
	_ = cell.I(&t)

	// The errsys type is a stringer.
	_ = common.Stringer(&t)

	// The errsys type is an error.
	_ = error(&t)
}
