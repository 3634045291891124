// Released under an MIT license. See LICENSE.

// Package closure provides stein's user-defined function type.
package closure

import (
	"strings"
	"sync"

	"github.com/michaelmacinnis/stein/internal/common"
	"github.com/michaelmacinnis/stein/internal/common/interface/callable"
	"github.com/michaelmacinnis/stein/internal/common/interface/cell"
	"github.com/michaelmacinnis/stein/internal/common/interface/literal"
	"github.com/michaelmacinnis/stein/internal/common/interface/scope"
	"github.com/michaelmacinnis/stein/internal/common/type/env"
	"github.com/michaelmacinnis/stein/internal/common/type/list"
	"github.com/michaelmacinnis/stein/internal/common/validate"
)

const name = "function"

// Reserved names bound when a closure is applied.
const (
	Self       = "self"
	Superclass = "_superclass_"
)

// Variadic is the suffix that marks a parameter as collecting any
// remaining arguments.
const Variadic = "..."

// Prototype describes a closure's parameters.
type Prototype struct {
	Params   []string
	Variadic bool
}

// T (closure) is a function written in stein.
type T struct {
	sync.RWMutex

	body       *list.T
	label      string
	prototype  Prototype
	superclass cell.I
	superscope scope.I
}

type closure = T

// New creates a new closure. The body is marked as a definition.
func New(p Prototype, body *list.T, superscope scope.I) *closure {
	if body == nil {
		body = list.New()
	}

	body.SetFlag(list.Definition, true)

	return &closure{
		body:       body,
		prototype:  p,
		superscope: superscope,
	}
}

// Parameters builds a prototype from a list of parameter names.
// A final name ending in "..." collects any remaining arguments.
func Parameters(names []string) Prototype {
	p := Prototype{Params: names}

	if n := len(names); n > 0 && strings.HasSuffix(names[n-1], Variadic) && names[n-1] != Variadic {
		p.Params = append([]string(nil), names...)
		p.Params[n-1] = strings.TrimSuffix(names[n-1], Variadic)
		p.Variadic = true
	}

	return p
}

// Apply binds args to the closure's parameters and evaluates its body.
func (c *closure) Apply(e callable.Evaluator, args *list.T, caller scope.I) (cell.I, error) {
	return c.ApplyTo(e, nil, args, caller)
}

// ApplyTo is like Apply but also binds self to the receiver of a message.
func (c *closure) ApplyTo(e callable.Evaluator, self cell.I, args *list.T, _ scope.I) (cell.I, error) {
	s, err := c.bind(e, self, args.Items())
	if err != nil {
		return nil, err
	}

	return e.EvaluateAll(c.body.Items(), s)
}

// Body returns the list of expressions evaluated when the closure is applied.
func (c *closure) Body() *list.T {
	return c.body
}

// Bool returns true.
func (c *closure) Bool() bool {
	return true
}

// Equal returns true if the cell x is the same closure as c.
func (c *closure) Equal(x cell.I) bool {
	o, ok := x.(*closure)

	return ok && c == o
}

// EvaluatesOwnArguments returns false. Closures receive values.
func (c *closure) EvaluatesOwnArguments() bool {
	return false
}

// Label returns the name given to the closure, if any.
func (c *closure) Label() string {
	c.RLock()
	defer c.RUnlock()

	return c.label
}

// Literal returns the source form of the closure c.
func (c *closure) Literal() string {
	var b strings.Builder

	b.WriteString("(func (")

	for i, p := range c.prototype.Params {
		if i > 0 {
			b.WriteByte(' ')
		}

		b.WriteString(p)

		if c.prototype.Variadic && i == len(c.prototype.Params)-1 {
			b.WriteString(Variadic)
		}
	}

	b.WriteByte(')')

	for _, e := range c.body.Items() {
		b.WriteByte(' ')
		b.WriteString(literal.String(e))
	}

	b.WriteByte(')')

	return b.String()
}

// Name returns the type name for the closure c.
func (c *closure) Name() string {
	return name
}

// Prototype returns the closure's parameters.
func (c *closure) Prototype() Prototype {
	return c.prototype
}

// SetLabel names the closure c.
func (c *closure) SetLabel(label string) {
	c.Lock()
	defer c.Unlock()

	c.label = label
}

// SetSuperclass records the class that the closure c is a method of.
func (c *closure) SetSuperclass(class cell.I) {
	c.Lock()
	defer c.Unlock()

	c.superclass = class
}

// String returns a description of the closure c.
func (c *closure) String() string {
	if l := c.Label(); l != "" {
		return "<" + name + " " + l + ">"
	}

	return "<" + name + ">"
}

// Superclass returns the class that the closure c is a method of, if any.
func (c *closure) Superclass() cell.I {
	c.RLock()
	defer c.RUnlock()

	return c.superclass
}

// Superscope returns the scope the closure was created in.
func (c *closure) Superscope() scope.I {
	return c.superscope
}

func (c *closure) bind(e callable.Evaluator, self cell.I, args []cell.I) (scope.I, error) {
	p := c.prototype
	n := len(p.Params)

	most := n
	if p.Variadic {
		n--
		most = validate.Variadic
	}

	err := validate.Arity(c.Label(), len(args), n, most)
	if err != nil {
		return nil, err
	}

	parent := c.superscope
	if parent == nil {
		parent = e.Root()
	}

	s := env.New(parent)

	for i, k := range p.Params[:n] {
		s.Put(k, args[i])
	}

	if p.Variadic {
		s.Put(p.Params[n], list.New(args[n:]...))
	}

	if sc := c.Superclass(); sc != nil {
		s.Put(Superclass, sc)
	}

	if self != nil {
		s.Put(Self, self)
	}

	return s, nil
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t closure

	// The closure type is a method.
	_ = callable.Method(&t)

	// The closure type has a literal representation.
	_ = literal.I(&t)

	// The closure type is a stringer.
	_ = common.Stringer(&t)
}
