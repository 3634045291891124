// Released under an MIT license. See LICENSE.

// Package callable defines the contract shared by closures and built-ins.
package callable

import (
	"github.com/michaelmacinnis/stein/internal/common/interface/cell"
	"github.com/michaelmacinnis/stein/internal/common/interface/scope"
	"github.com/michaelmacinnis/stein/internal/common/type/list"
	"github.com/michaelmacinnis/stein/internal/common/type/sym"
)

// I (callable) is anything that can be applied to a list of arguments.
//
// When EvaluatesOwnArguments is false, args holds values already
// evaluated in the caller's scope. Otherwise args is the raw argument list.
type I interface {
	cell.I

	Apply(e Evaluator, args *list.T, caller scope.I) (cell.I, error)
	EvaluatesOwnArguments() bool
	Superscope() scope.I
}

// Method is a callable that can be invoked with a receiver bound as self.
type Method interface {
	I

	ApplyTo(e Evaluator, self cell.I, args *list.T, caller scope.I) (cell.I, error)
}

// Evaluator is what a callable needs from the interpreter.
type Evaluator interface {
	// Apply follows the application protocol for the unevaluated args.
	Apply(f I, args *list.T, caller scope.I) (cell.I, error)

	// Call applies f to values that have already been evaluated.
	Call(f I, args []cell.I, caller scope.I) (cell.I, error)

	Evaluate(c cell.I, s scope.I) (cell.I, error)
	EvaluateAll(cs []cell.I, s scope.I) (cell.I, error)

	Root() scope.I

	Send(receiver cell.I, selector string, args []cell.I, s scope.I) (cell.I, error)
	SendSuper(receiver, class cell.I, selector string, args []cell.I, s scope.I) (cell.I, error)

	Symbols() *sym.Table
}

// Is returns true if c is a callable.
func Is(c cell.I) bool {
	_, ok := c.(I)

	return ok
}
