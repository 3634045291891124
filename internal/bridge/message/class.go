// Released under an MIT license. See LICENSE.

package message

import (
	"sync"

	"github.com/michaelmacinnis/stein/internal/common"
	"github.com/michaelmacinnis/stein/internal/common/interface/callable"
	"github.com/michaelmacinnis/stein/internal/common/interface/cell"
	"github.com/michaelmacinnis/stein/internal/common/interface/scope"
)

// Context is a method that needs the evaluator and the sender's scope.
type Context func(e callable.Evaluator, self cell.I, args []cell.I, s scope.I) (cell.I, error)

// Class is a named set of methods with an optional superclass.
type Class struct {
	sync.RWMutex

	contexts map[string]Context
	label    string
	methods  map[string]callable.Method
	super    *Class
}

func newClass(label string, super *Class) *Class {
	return &Class{
		contexts: map[string]Context{},
		label:    label,
		methods:  map[string]callable.Method{},
		super:    super,
	}
}

// Bool returns true.
func (c *Class) Bool() bool {
	return true
}

// Context returns the context method for selector defined directly on c.
func (c *Class) Context(selector string) (Context, bool) {
	c.RLock()
	defer c.RUnlock()

	m, ok := c.contexts[selector]

	return m, ok
}

// Define adds (or replaces) the method for selector.
func (c *Class) Define(selector string, m callable.Method) {
	c.Lock()
	defer c.Unlock()

	c.methods[selector] = m
}

// DefineContext adds (or replaces) the context method for selector.
func (c *Class) DefineContext(selector string, m Context) {
	c.Lock()
	defer c.Unlock()

	c.contexts[selector] = m
}

// Equal returns true if x is the same class as c.
func (c *Class) Equal(x cell.I) bool {
	o, ok := x.(*Class)

	return ok && c == o
}

// Inherits returns true if c, or a superclass, is named label.
func (c *Class) Inherits(label string) bool {
	for k := c; k != nil; k = k.super {
		if k.label == label {
			return true
		}
	}

	return false
}

// Label returns the class name.
func (c *Class) Label() string {
	return c.label
}

// Method returns the method for selector defined directly on c.
func (c *Class) Method(selector string) (callable.Method, bool) {
	c.RLock()
	defer c.RUnlock()

	m, ok := c.methods[selector]

	return m, ok
}

// Name returns the type name for c.
func (c *Class) Name() string {
	return "class"
}

// RespondsTo returns true if c, or a superclass, defines selector.
func (c *Class) RespondsTo(selector string) bool {
	for k := c; k != nil; k = k.super {
		if _, ok := k.Method(selector); ok {
			return true
		}

		if _, ok := k.Context(selector); ok {
			return true
		}
	}

	return false
}

// String returns the class name.
func (c *Class) String() string {
	return c.label
}

// Superclass returns the superclass of c or nil if c is a root class.
func (c *Class) Superclass() *Class {
	return c.super
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var c Class

	// The class type is a cell.
	_ = cell.I(&c)

	// The class type is a stringer.
	_ = common.Stringer(&c)

	var i Instance

	// The instance type is a cell.
	_ = cell.I(&i)
}
