// Released under an MIT license. See LICENSE.

// Package message delivers stein messages to classes, instances and
// host values.
package message

import (
	"strings"
	"sync"

	"github.com/google/btree"
	"github.com/michaelmacinnis/stein/internal/common/interface/callable"
	"github.com/michaelmacinnis/stein/internal/common/interface/cell"
	"github.com/michaelmacinnis/stein/internal/common/interface/handler"
	"github.com/michaelmacinnis/stein/internal/common/interface/literal"
	"github.com/michaelmacinnis/stein/internal/common/interface/scope"
	"github.com/michaelmacinnis/stein/internal/common/type/boolean"
	"github.com/michaelmacinnis/stein/internal/common/type/errsys"
	"github.com/michaelmacinnis/stein/internal/common/type/issue"
	"github.com/michaelmacinnis/stein/internal/common/type/list"
	"github.com/michaelmacinnis/stein/internal/common/type/null"
	"github.com/michaelmacinnis/stein/internal/common/type/num"
	"github.com/michaelmacinnis/stein/internal/common/type/str"
	"github.com/michaelmacinnis/stein/internal/common/type/strcode"
	"github.com/michaelmacinnis/stein/internal/common/type/sym"
	"github.com/michaelmacinnis/stein/internal/common/validate"
)

// Names of the core classes.
const (
	Boolean  = "Boolean"
	Error    = "Error"
	Function = "Function"
	List     = "List"
	Meta     = "Class"
	Null     = "Null"
	Number   = "Number"
	Object   = "Object"
	String   = "String"
	Symbol   = "Symbol"
)

// Forward is the selector sent when no method matches.
const Forward = "forwardMessage:arguments:"

const degree = 8

// T (message) is a message bridge: a registry of classes and the rules
// for finding the method that answers a message.
type T struct {
	sync.RWMutex

	classes *btree.BTreeG[*Class]
}

type bridge = T

// New creates a message bridge with the core classes defined.
func New() *bridge {
	b := &bridge{
		classes: btree.NewG[*Class](degree, func(a, b *Class) bool {
			return a.label < b.label
		}),
	}

	b.core()

	return b
}

// Class returns the class named label, if it exists.
func (b *bridge) Class(label string) (*Class, bool) {
	b.RLock()
	defer b.RUnlock()

	return b.classes.Get(&Class{label: label})
}

// ClassOf returns the class that answers messages sent to c.
func (b *bridge) ClassOf(c cell.I) *Class {
	label := Object

	switch t := c.(type) {
	case nil:
		label = Null
	case *Instance:
		return t.class
	case *Class:
		label = Meta
	case *boolean.T:
		label = Boolean
	case *errsys.T:
		label = Error
	case *list.T:
		label = List
	case *num.T:
		label = Number
	case *str.T, *strcode.T:
		label = String
	case *sym.T:
		label = Symbol
	case *null.T:
		label = Null
	case callable.I:
		label = Function
	}

	class, _ := b.Class(label)

	return class
}

// Classes returns every registered class in name order.
func (b *bridge) Classes() []*Class {
	b.RLock()
	defer b.RUnlock()

	classes := make([]*Class, 0, b.classes.Len())

	b.classes.Ascend(func(c *Class) bool {
		classes = append(classes, c)

		return true
	})

	return classes
}

// Define registers a new class named label.
func (b *bridge) Define(label string, super *Class) (*Class, error) {
	b.Lock()
	defer b.Unlock()

	c := newClass(label, super)

	if _, ok := b.classes.Get(c); ok {
		return nil, issue.New(issue.Constant, nil, "class %s already exists", label)
	}

	b.classes.ReplaceOrInsert(c)

	return c, nil
}

// Install binds every registered class, by name, as a constant in s.
func (b *bridge) Install(s scope.I) error {
	for _, c := range b.Classes() {
		err := s.SetConstant(c.label, c)
		if err != nil {
			return err
		}
	}

	return nil
}

// Send delivers the message selector, with args, to receiver.
// Messages sent to null answer null.
func (b *bridge) Send(
	e callable.Evaluator, receiver cell.I, selector string, args []cell.I, s scope.I,
) (cell.I, error) {
	if null.Is(receiver) {
		return null.Null, nil
	}

	return b.dispatch(e, receiver, b.ClassOf(receiver), selector, args, s, true)
}

// SendSuper delivers the message selector, with args, to receiver
// starting the method search at class. It never forwards.
func (b *bridge) SendSuper(
	e callable.Evaluator, receiver, class cell.I, selector string, args []cell.I, s scope.I,
) (cell.I, error) {
	if null.Is(receiver) {
		return null.Null, nil
	}

	c, ok := class.(*Class)
	if !ok {
		return nil, issue.New(issue.Type, nil, "%s is not a class", literal.String(class))
	}

	return b.dispatch(e, receiver, c, selector, args, s, false)
}

func (b *bridge) dispatch(
	e callable.Evaluator, receiver cell.I, class *Class,
	selector string, args []cell.I, s scope.I, forward bool,
) (cell.I, error) {
	for c := class; c != nil; c = c.super {
		if m, ok := c.Method(selector); ok {
			return result(m.ApplyTo(e, receiver, list.New(args...), s))
		}
	}

	for c := class; c != nil; c = c.super {
		if m, ok := c.Context(selector); ok {
			err := arity(selector, args)
			if err != nil {
				return nil, err
			}

			return result(m(e, receiver, args, s))
		}
	}

	if forward {
		if h, ok := receiver.(handler.I); ok && h.CanHandle(selector) {
			err := arity(selector, args)
			if err != nil {
				return nil, err
			}

			return result(h.Handle(selector, args, s))
		}

		if class.RespondsTo(Forward) {
			return b.dispatch(e, receiver, class, Forward, []cell.I{
				str.New(selector),
				list.New(args...),
			}, s, false)
		}
	}

	return nil, issue.New(
		issue.Dispatch, nil, "%s does not understand %s", literal.String(receiver), selector,
	)
}

// arity checks that there is one argument for each part of selector.
func arity(selector string, args []cell.I) error {
	n := strings.Count(selector, ":")

	return validate.Arity(selector, len(args), n, n)
}

func result(c cell.I, err error) (cell.I, error) {
	if err != nil {
		return nil, err
	}

	return null.Or(c), nil
}
