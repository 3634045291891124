// Released under an MIT license. See LICENSE.

// Package builtin provides stein's Go-implemented function type.
package builtin

import (
	"github.com/michaelmacinnis/stein/internal/common"
	"github.com/michaelmacinnis/stein/internal/common/interface/callable"
	"github.com/michaelmacinnis/stein/internal/common/interface/cell"
	"github.com/michaelmacinnis/stein/internal/common/interface/scope"
	"github.com/michaelmacinnis/stein/internal/common/struct/loc"
	"github.com/michaelmacinnis/stein/internal/common/type/env"
	"github.com/michaelmacinnis/stein/internal/common/type/list"
	"github.com/michaelmacinnis/stein/internal/common/validate"
)

const name = "builtin"

// Variadic is passed as the maximum arity when there is no upper bound.
const Variadic = validate.Variadic

// Call holds everything a built-in receives when it is applied.
type Call struct {
	// Args are values or, for built-ins that evaluate their own
	// arguments, the unevaluated expressions.
	Args []cell.I

	// Caller is the scope the built-in was applied in.
	Caller scope.I

	Evaluator callable.Evaluator

	// Scope is a fresh child of the root scope.
	Scope scope.I

	// Self is the receiver when the built-in is invoked as a method.
	Self cell.I

	// Source is where the call was written, if known.
	Source *loc.T
}

// Function is the Go signature of a built-in.
type Function func(c *Call) (cell.I, error)

// T (builtin) is a function implemented in Go.
type T struct {
	fn    Function
	label string
	max   int
	min   int
	own   bool
}

type builtin = T

// New creates a built-in that receives evaluated arguments.
func New(label string, min, max int, fn Function) *builtin {
	return &builtin{fn: fn, label: label, max: max, min: min}
}

// Syntax creates a built-in that receives its arguments unevaluated.
func Syntax(label string, min, max int, fn Function) *builtin {
	b := New(label, min, max, fn)
	b.own = true

	return b
}

// Apply calls the built-in with args.
func (b *builtin) Apply(e callable.Evaluator, args *list.T, caller scope.I) (cell.I, error) {
	return b.ApplyTo(e, nil, args, caller)
}

// ApplyTo calls the built-in with args and self bound to the receiver.
func (b *builtin) ApplyTo(e callable.Evaluator, self cell.I, args *list.T, caller scope.I) (cell.I, error) {
	err := validate.Arity(b.label, args.Len(), b.min, b.max)
	if err != nil {
		return nil, err
	}

	return b.fn(&Call{
		Args:      args.Items(),
		Caller:    caller,
		Evaluator: e,
		Scope:     env.New(e.Root()),
		Self:      self,
		Source:    args.Loc(),
	})
}

// Bool returns true.
func (b *builtin) Bool() bool {
	return true
}

// Equal returns true if the cell c is the same builtin as b.
func (b *builtin) Equal(c cell.I) bool {
	o, ok := c.(*builtin)

	return ok && b == o
}

// EvaluatesOwnArguments returns true if b receives unevaluated arguments.
func (b *builtin) EvaluatesOwnArguments() bool {
	return b.own
}

// Label returns the name of the built-in.
func (b *builtin) Label() string {
	return b.label
}

// Name returns the name of the builtin type.
func (b *builtin) Name() string {
	return name
}

// String returns a description of the builtin b.
func (b *builtin) String() string {
	return "<" + name + " " + b.label + ">"
}

// Superscope returns nil. Built-ins run in a child of the root scope.
func (b *builtin) Superscope() scope.I {
	return nil
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t builtin

	// The builtin type is a method.
	_ = callable.Method(&t)

	// The builtin type is a stringer.
	_ = common.Stringer(&t)
}
