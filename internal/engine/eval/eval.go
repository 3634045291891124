// Released under an MIT license. See LICENSE.

// Package eval provides stein's tree-walking evaluator.
package eval

import (
	"strings"

	"github.com/michaelmacinnis/stein/internal/common/interface/callable"
	"github.com/michaelmacinnis/stein/internal/common/interface/cell"
	"github.com/michaelmacinnis/stein/internal/common/interface/literal"
	"github.com/michaelmacinnis/stein/internal/common/interface/scope"
	"github.com/michaelmacinnis/stein/internal/common/type/env"
	"github.com/michaelmacinnis/stein/internal/common/type/issue"
	"github.com/michaelmacinnis/stein/internal/common/type/list"
	"github.com/michaelmacinnis/stein/internal/common/type/null"
	"github.com/michaelmacinnis/stein/internal/common/type/signal"
	"github.com/michaelmacinnis/stein/internal/common/type/strcode"
	"github.com/michaelmacinnis/stein/internal/common/type/sym"
	"github.com/michaelmacinnis/stein/internal/common/type/trace"
)

// Bridge delivers messages to receivers.
type Bridge interface {
	Send(
		e callable.Evaluator, receiver cell.I,
		selector string, args []cell.I, s scope.I,
	) (cell.I, error)
	SendSuper(
		e callable.Evaluator, receiver, class cell.I,
		selector string, args []cell.I, s scope.I,
	) (cell.I, error)
}

// T (eval) evaluates expressions. It holds no per-evaluation state and
// may be used from multiple goroutines.
type T struct {
	bridge  Bridge
	root    scope.I
	symbols *sym.Table
}

type evaluator = T

// New creates a new evaluator. The bridge may be nil, in which case
// every message send fails.
func New(root scope.I, symbols *sym.Table, bridge Bridge) *evaluator {
	return &evaluator{bridge: bridge, root: root, symbols: symbols}
}

// Apply applies f to args. Unless f evaluates its own arguments, each
// argument is evaluated in the caller's scope first.
func (e *evaluator) Apply(f callable.I, args *list.T, caller scope.I) (cell.I, error) {
	if !f.EvaluatesOwnArguments() {
		values := make([]cell.I, args.Len())

		for i, a := range args.Items() {
			v, err := e.Evaluate(a, caller)
			if err != nil {
				return nil, err
			}

			values[i] = v
		}

		args = list.At(args.Loc(), 0, values...)
	}

	return f.Apply(e, args, caller)
}

// Call applies f to args, which have already been evaluated.
func (e *evaluator) Call(f callable.I, args []cell.I, caller scope.I) (cell.I, error) {
	return f.Apply(e, list.New(args...), caller)
}

// Evaluate evaluates the expression c in the scope s.
func (e *evaluator) Evaluate(c cell.I, s scope.I) (cell.I, error) {
	switch t := c.(type) {
	case *sym.T:
		if t.Quoted() {
			return t, nil
		}

		v, ok := s.Lookup(t.String(), true)
		if !ok {
			return nil, issue.New(issue.Unbound, t.Loc(), "%s is not defined", t.String())
		}

		return null.Or(v), nil
	case *list.T:
		if t.Has(list.Quoted) {
			return t, nil
		}

		v, err := e.list(t, s)
		if err != nil {
			err = signal.Locate(issue.Locate(err, t.Loc()), t.Loc())

			return nil, trace.Wrap(err, t, t.Loc())
		}

		return v, nil
	case *strcode.T:
		return t.Apply(e, s)
	}

	return null.Or(c), nil
}

// EvaluateAll evaluates each expression in cs, in order, in the scope s
// and returns the value of the last one. The value of no expressions is null.
func (e *evaluator) EvaluateAll(cs []cell.I, s scope.I) (cell.I, error) {
	var (
		err error
		v   = null.Null
	)

	for _, c := range cs {
		v, err = e.Evaluate(c, s)
		if err != nil {
			return nil, err
		}
	}

	return v, nil
}

// Root returns the scope that built-ins run under.
func (e *evaluator) Root() scope.I {
	return e.root
}

// Send delivers the message selector, with args, to receiver.
func (e *evaluator) Send(
	receiver cell.I, selector string, args []cell.I, s scope.I,
) (cell.I, error) {
	if e.bridge == nil {
		return nil, issue.New(
			issue.Dispatch, nil, "%s does not understand %s", literal.String(receiver), selector,
		)
	}

	return e.bridge.Send(e, receiver, selector, args, s)
}

// SendSuper delivers a message to receiver starting the method search at class.
func (e *evaluator) SendSuper(
	receiver, class cell.I, selector string, args []cell.I, s scope.I,
) (cell.I, error) {
	if e.bridge == nil {
		return nil, issue.New(
			issue.Dispatch, nil, "%s does not understand %s", literal.String(receiver), selector,
		)
	}

	return e.bridge.SendSuper(e, receiver, class, selector, args, s)
}

// Symbols returns the evaluator's symbol table.
func (e *evaluator) Symbols() *sym.Table {
	return e.symbols
}

func (e *evaluator) list(l *list.T, s scope.I) (cell.I, error) {
	if l.Has(list.Block) {
		return e.EvaluateAll(l.Items(), env.New(s))
	}

	if l.Len() == 0 {
		return null.Null, nil
	}

	head, err := e.Evaluate(l.Head(), s)
	if err != nil {
		return nil, err
	}

	if f, ok := head.(callable.I); ok {
		return e.Apply(f, list.At(l.Loc(), 0, l.Items()[1:]...), s)
	}

	if l.Len() == 1 {
		return head, nil
	}

	selector, args, err := e.message(l, s)
	if err != nil {
		return nil, err
	}

	return e.Send(head, selector, args, s)
}

// message splits (receiver part1: arg1 part2: arg2 ...) into the
// selector part1:part2: and the evaluated arguments.
func (e *evaluator) message(l *list.T, s scope.I) (string, []cell.I, error) {
	items := l.Items()

	if len(items) == 2 {
		p, ok := items[1].(*sym.T)
		if !ok {
			return "", nil, issue.New(
				issue.Dispatch, l.Loc(), "expected a selector, got %s", literal.String(items[1]),
			)
		}

		return p.String(), nil, nil
	}

	var (
		args     []cell.I
		selector strings.Builder
	)

	for i := 1; i < len(items); i += 2 {
		p, ok := items[i].(*sym.T)
		if !ok {
			return "", nil, issue.New(
				issue.Dispatch, l.Loc(), "expected a selector part, got %s", literal.String(items[i]),
			)
		}

		if i+1 >= len(items) {
			return "", nil, issue.New(
				issue.Dispatch, l.Loc(), "missing argument for %s", p.String(),
			)
		}

		v, err := e.Evaluate(items[i+1], s)
		if err != nil {
			return "", nil, err
		}

		selector.WriteString(p.String())

		args = append(args, v)
	}

	return selector.String(), args, nil
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t evaluator

	// The evaluator type is what callables expect.
	_ = callable.Evaluator(&t)

	// The evaluator type can be used to expand interpolated strings.
	_ = strcode.Evaluator(&t)
}
