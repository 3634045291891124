// Released under an MIT license. See LICENSE.

package message

import (
	"math"
	"sort"
	"strings"

	"github.com/michaelmacinnis/stein/internal/common"
	"github.com/michaelmacinnis/stein/internal/common/interface/callable"
	"github.com/michaelmacinnis/stein/internal/common/interface/cell"
	"github.com/michaelmacinnis/stein/internal/common/interface/handler"
	"github.com/michaelmacinnis/stein/internal/common/interface/literal"
	"github.com/michaelmacinnis/stein/internal/common/interface/numeric"
	"github.com/michaelmacinnis/stein/internal/common/interface/scope"
	"github.com/michaelmacinnis/stein/internal/common/type/boolean"
	"github.com/michaelmacinnis/stein/internal/common/type/errsys"
	"github.com/michaelmacinnis/stein/internal/common/type/issue"
	"github.com/michaelmacinnis/stein/internal/common/type/list"
	"github.com/michaelmacinnis/stein/internal/common/type/null"
	"github.com/michaelmacinnis/stein/internal/common/type/num"
	"github.com/michaelmacinnis/stein/internal/common/type/str"
	"github.com/michaelmacinnis/stein/internal/common/type/strcode"
	"github.com/michaelmacinnis/stein/internal/common/validate"
	"github.com/michaelmacinnis/stein/internal/engine/builtin"
	"github.com/michaelmacinnis/stein/internal/engine/iterate"
)

type method struct {
	args int
	fn   builtin.Function
}

func (b *bridge) core() {
	object := b.must(Object, nil)

	define(object, map[string]method{
		"class": {0, func(c *builtin.Call) (cell.I, error) {
			return b.ClassOf(c.Self), nil
		}},
		"copy": {0, func(c *builtin.Call) (cell.I, error) {
			switch t := c.Self.(type) {
			case *Instance:
				return t.Copy(), nil
			case *list.T:
				return t.Copy(), nil
			}

			return c.Self, nil
		}},
		"description": {0, func(c *builtin.Call) (cell.I, error) {
			return str.New(common.String(c.Self)), nil
		}},
		"isEqual:": {1, func(c *builtin.Call) (cell.I, error) {
			return boolean.Bool(c.Self.Equal(c.Args[0])), nil
		}},
		"isNull": {0, func(c *builtin.Call) (cell.I, error) {
			return boolean.False, nil
		}},
		"ivars": {0, func(c *builtin.Call) (cell.I, error) {
			i, ok := c.Self.(*Instance)
			if !ok {
				return list.New(), nil
			}

			keys, _ := i.ivars.Snapshot()

			cs := make([]cell.I, len(keys))
			for n, k := range keys {
				cs[n] = str.New(k)
			}

			return list.New(cs...), nil
		}},
		"respondsTo:": {1, func(c *builtin.Call) (cell.I, error) {
			selector, err := validate.Text(c.Args[0])
			if err != nil {
				return nil, err
			}

			if h, ok := c.Self.(handler.I); ok && h.CanHandle(selector) {
				return boolean.True, nil
			}

			return boolean.Bool(b.ClassOf(c.Self).RespondsTo(selector)), nil
		}},
		"setValue:forKey:": {2, func(c *builtin.Call) (cell.I, error) {
			i, k, err := ivar(c.Self, c.Args[1])
			if err != nil {
				return nil, err
			}

			i.Set(k, c.Args[0])

			return c.Self, nil
		}},
		"valueForKey:": {1, func(c *builtin.Call) (cell.I, error) {
			i, k, err := ivar(c.Self, c.Args[0])
			if err != nil {
				return nil, err
			}

			return i.Get(k), nil
		}},
	})

	b.metaclass(b.must(Meta, object))
	b.lists(b.must(List, object))
	b.strings(b.must(String, object))
	b.numbers(b.must(Number, object))

	define(b.must(Symbol, object), map[string]method{
		"name": {0, func(c *builtin.Call) (cell.I, error) {
			return str.New(c.Self.String()), nil
		}},
	})

	b.functions(b.must(Function, object))

	define(b.must(Error, object), map[string]method{
		"backtrace": {0, func(c *builtin.Call) (cell.I, error) {
			var lines []cell.I

			if e, ok := c.Self.(*errsys.T); ok {
				for _, l := range e.Backtrace() {
					lines = append(lines, str.New(l))
				}
			}

			return list.New(lines...), nil
		}},
		"message": {0, func(c *builtin.Call) (cell.I, error) {
			if e, ok := c.Self.(*errsys.T); ok {
				return str.New(e.Message()), nil
			}

			return str.New(c.Self.String()), nil
		}},
	})

	b.must(Boolean, object)
	b.must(Null, object)
}

func (b *bridge) functions(class *Class) {
	apply := func(e callable.Evaluator, self cell.I, args []cell.I, s scope.I) (cell.I, error) {
		f, err := validate.Callable(self)
		if err != nil {
			return nil, err
		}

		return e.Call(f, args, s)
	}

	define(class, map[string]method{
		"body": {0, func(c *builtin.Call) (cell.I, error) {
			if f, ok := c.Self.(interface{ Body() *list.T }); ok {
				return f.Body().Copy(), nil
			}

			return null.Null, nil
		}},
	})

	class.DefineContext("value", apply)
	class.DefineContext("value:", apply)
	class.DefineContext("value:value:", apply)
	class.DefineContext("apply:", func(e callable.Evaluator, self cell.I, args []cell.I, s scope.I) (cell.I, error) {
		l, err := validate.List(args[0])
		if err != nil {
			return nil, err
		}

		return apply(e, self, l.Items(), s)
	})
}

func (b *bridge) lists(class *Class) {
	define(class, map[string]method{
		"append:": {1, func(c *builtin.Call) (cell.I, error) {
			l, err := asList(c.Self)
			if err != nil {
				return nil, err
			}

			l.Append(c.Args[0])

			return c.Self, nil
		}},
		"at:": {1, func(c *builtin.Call) (cell.I, error) {
			l, err := asList(c.Self)
			if err != nil {
				return nil, err
			}

			i, err := validate.Index(c.Args[0], l.Len())
			if err != nil {
				return nil, err
			}

			v, _ := l.At(i)

			return v, nil
		}},
		"at:put:": {2, func(c *builtin.Call) (cell.I, error) {
			l, err := asList(c.Self)
			if err != nil {
				return nil, err
			}

			i, err := validate.Index(c.Args[0], l.Len())
			if err != nil {
				return nil, err
			}

			l.Set(i, c.Args[1])

			return c.Self, nil
		}},
		"contains:": {1, listed(func(l *list.T, args []cell.I) (cell.I, error) {
			for _, v := range l.Items() {
				if v.Equal(args[0]) {
					return boolean.True, nil
				}
			}

			return boolean.False, nil
		})},
		"count": {0, listed(func(l *list.T, _ []cell.I) (cell.I, error) {
			return num.Int(l.Len()), nil
		})},
		"head": {0, listed(func(l *list.T, _ []cell.I) (cell.I, error) {
			return null.Or(l.Head()), nil
		})},
		"insert:at:": {2, func(c *builtin.Call) (cell.I, error) {
			l, err := asList(c.Self)
			if err != nil {
				return nil, err
			}

			i, err := validate.Index(c.Args[1], l.Len()+1)
			if err != nil {
				return nil, err
			}

			l.Insert(i, c.Args[0])

			return c.Self, nil
		}},
		"isEmpty": {0, listed(func(l *list.T, _ []cell.I) (cell.I, error) {
			return boolean.Bool(l.Len() == 0), nil
		})},
		"removeAt:": {1, func(c *builtin.Call) (cell.I, error) {
			l, err := asList(c.Self)
			if err != nil {
				return nil, err
			}

			i, err := validate.Index(c.Args[0], l.Len())
			if err != nil {
				return nil, err
			}

			v, _ := l.At(i)
			l.Remove(i)

			return v, nil
		}},
		"tail": {0, listed(func(l *list.T, _ []cell.I) (cell.I, error) {
			return l.Tail(), nil
		})},
	})

	class.DefineContext("foreach:", func(e callable.Evaluator, self cell.I, args []cell.I, s scope.I) (cell.I, error) {
		l, f, err := sequence(self, args[0])
		if err != nil {
			return nil, err
		}

		var last cell.I = null.Null

		err = iterate.Each(e, f, l.Items(), s, func(_, v cell.I) {
			last = v
		})

		return last, err
	})

	class.DefineContext("filter:", func(e callable.Evaluator, self cell.I, args []cell.I, s scope.I) (cell.I, error) {
		l, f, err := sequence(self, args[0])
		if err != nil {
			return nil, err
		}

		kept, err := iterate.Filter(e, f, l.Items(), s)
		if err != nil {
			return nil, err
		}

		return list.New(kept...), nil
	})

	class.DefineContext("map:", func(e callable.Evaluator, self cell.I, args []cell.I, s scope.I) (cell.I, error) {
		l, f, err := sequence(self, args[0])
		if err != nil {
			return nil, err
		}

		mapped, err := iterate.Map(e, f, l.Items(), s)
		if err != nil {
			return nil, err
		}

		return list.New(mapped...), nil
	})
}

func (b *bridge) metaclass(class *Class) {
	define(class, map[string]method{
		"define:as:": {2, func(c *builtin.Call) (cell.I, error) {
			k, err := asClass(c.Self)
			if err != nil {
				return nil, err
			}

			selector, err := validate.Text(c.Args[0])
			if err != nil {
				return nil, err
			}

			m, ok := c.Args[1].(callable.Method)
			if !ok {
				return nil, issue.New(issue.Type, nil, "%s cannot be used as a method", c.Args[1].Name())
			}

			if n, ok := m.(interface{ SetLabel(string) }); ok {
				n.SetLabel(selector)
			}

			if n, ok := m.(interface{ SetSuperclass(cell.I) }); ok && k.super != nil {
				n.SetSuperclass(k.super)
			}

			k.Define(selector, m)

			return k, nil
		}},
		"instancesRespondTo:": {1, func(c *builtin.Call) (cell.I, error) {
			k, err := asClass(c.Self)
			if err != nil {
				return nil, err
			}

			selector, err := validate.Text(c.Args[0])
			if err != nil {
				return nil, err
			}

			return boolean.Bool(k.RespondsTo(selector)), nil
		}},
		"methods": {0, func(c *builtin.Call) (cell.I, error) {
			k, err := asClass(c.Self)
			if err != nil {
				return nil, err
			}

			k.RLock()
			selectors := make([]string, 0, len(k.methods)+len(k.contexts))

			for s := range k.methods {
				selectors = append(selectors, s)
			}

			for s := range k.contexts {
				selectors = append(selectors, s)
			}
			k.RUnlock()

			sort.Strings(selectors)

			cs := make([]cell.I, len(selectors))
			for i, s := range selectors {
				cs[i] = str.New(s)
			}

			return list.New(cs...), nil
		}},
		"name": {0, func(c *builtin.Call) (cell.I, error) {
			k, err := asClass(c.Self)
			if err != nil {
				return nil, err
			}

			return str.New(k.label), nil
		}},
		"subclass:": {1, func(c *builtin.Call) (cell.I, error) {
			super, err := asClass(c.Self)
			if err != nil {
				return nil, err
			}

			label, err := validate.Text(c.Args[0])
			if err != nil {
				return nil, err
			}

			k, err := b.Define(label, super)
			if err != nil {
				return nil, err
			}

			return k, nil
		}},
		"subclasses": {0, func(c *builtin.Call) (cell.I, error) {
			k, err := asClass(c.Self)
			if err != nil {
				return nil, err
			}

			var cs []cell.I

			for _, sub := range b.Classes() {
				if sub.super == k {
					cs = append(cs, sub)
				}
			}

			return list.New(cs...), nil
		}},
		"superclass": {0, func(c *builtin.Call) (cell.I, error) {
			k, err := asClass(c.Self)
			if err != nil {
				return nil, err
			}

			if k.super != nil {
				return k.super, nil
			}

			return null.Null, nil
		}},
		"synthesize:": {1, func(c *builtin.Call) (cell.I, error) {
			k, err := asClass(c.Self)
			if err != nil {
				return nil, err
			}

			key, err := validate.Text(c.Args[0])
			if err != nil {
				return nil, err
			}

			if key == "" {
				return nil, issue.New(issue.Type, nil, "synthesize: expected a name")
			}

			getter := str.New(key)
			setter := "set" + strings.ToUpper(key[:1]) + key[1:] + ":"

			k.Define(key, builtin.New(key, 0, 0, func(c *builtin.Call) (cell.I, error) {
				i, name, err := ivar(c.Self, getter)
				if err != nil {
					return nil, err
				}

				return i.Get(name), nil
			}))
			k.Define(setter, builtin.New(setter, 1, 1, func(c *builtin.Call) (cell.I, error) {
				i, name, err := ivar(c.Self, getter)
				if err != nil {
					return nil, err
				}

				i.Set(name, c.Args[0])

				return c.Self, nil
			}))

			return k, nil
		}},
	})

	// (Point extend: (func () (self synthesize: 'x))) runs the function
	// with self bound to the class.
	extend := func(e callable.Evaluator, k *Class, f cell.I, s scope.I) (cell.I, error) {
		m, ok := f.(callable.Method)
		if !ok {
			return nil, issue.New(issue.Type, nil, "%s cannot extend a class", f.Name())
		}

		_, err := m.ApplyTo(e, k, list.New(), s)
		if err != nil {
			return nil, err
		}

		return k, nil
	}

	class.DefineContext("extend:", func(e callable.Evaluator, self cell.I, args []cell.I, s scope.I) (cell.I, error) {
		k, err := asClass(self)
		if err != nil {
			return nil, err
		}

		return extend(e, k, args[0], s)
	})

	class.DefineContext("subclass:where:", func(e callable.Evaluator, self cell.I, args []cell.I, s scope.I) (cell.I, error) {
		super, err := asClass(self)
		if err != nil {
			return nil, err
		}

		label, err := validate.Text(args[0])
		if err != nil {
			return nil, err
		}

		k, err := b.Define(label, super)
		if err != nil {
			return nil, err
		}

		return extend(e, k, args[1], s)
	})

	instantiate := func(e callable.Evaluator, self cell.I, value cell.I, s scope.I) (cell.I, error) {
		k, err := asClass(self)
		if err != nil {
			return nil, err
		}

		if k.Inherits(Meta) {
			return nil, issue.New(issue.Type, nil, "cannot make an instance of %s, use subclass:", k.label)
		}

		i := NewInstance(k)

		if value != nil {
			if i.value == nil || i.value.Name() != value.Name() {
				return nil, issue.New(
					issue.Type, nil, "cannot make an instance of %s from %s", k.label, literal.String(value),
				)
			}

			i.value = value
		}

		if k.RespondsTo("init") {
			_, err := b.Send(e, i, "init", nil, s)
			if err != nil {
				return nil, err
			}
		}

		return i, nil
	}

	class.DefineContext("new", func(e callable.Evaluator, self cell.I, _ []cell.I, s scope.I) (cell.I, error) {
		return instantiate(e, self, nil, s)
	})

	// (Stack new: '(1 2)) wraps an existing list or string.
	class.DefineContext("new:", func(e callable.Evaluator, self cell.I, args []cell.I, s scope.I) (cell.I, error) {
		return instantiate(e, self, args[0], s)
	})
}

func (b *bridge) numbers(class *Class) {
	unary := func(f func(float64) float64) method {
		return method{0, func(c *builtin.Call) (cell.I, error) {
			v, err := numeric.Value(c.Self)
			if err != nil {
				return nil, err
			}

			return num.New(f(v)), nil
		}}
	}

	define(class, map[string]method{
		"abs":   unary(math.Abs),
		"ceil":  unary(math.Ceil),
		"floor": unary(math.Floor),
		"isInteger": {0, func(c *builtin.Call) (cell.I, error) {
			v, err := numeric.Value(c.Self)
			if err != nil {
				return nil, err
			}

			return boolean.Bool(v == math.Trunc(v)), nil
		}},
		"to:": {1, func(c *builtin.Call) (cell.I, error) {
			start, err := numeric.Value(c.Self)
			if err != nil {
				return nil, err
			}

			end, err := numeric.Value(c.Args[0])
			if err != nil {
				return nil, err
			}

			var cs []cell.I
			for f := start; f <= end; f++ {
				cs = append(cs, num.New(f))
			}

			return list.New(cs...), nil
		}},
	})
}

func (b *bridge) strings(class *Class) {
	text := func(f func(s string, args []string) cell.I) builtin.Function {
		return func(c *builtin.Call) (cell.I, error) {
			args := make([]string, len(c.Args))

			for i, a := range c.Args {
				s, err := validate.Text(a)
				if err != nil {
					return nil, err
				}

				args[i] = s
			}

			self, err := asText(c.Self)
			if err != nil {
				return nil, err
			}

			return f(self, args), nil
		}
	}

	define(class, map[string]method{
		"append:": {1, text(func(s string, args []string) cell.I {
			return str.New(s + args[0])
		})},
		"contains:": {1, text(func(s string, args []string) cell.I {
			return boolean.Bool(strings.Contains(s, args[0]))
		})},
		"hasPrefix:": {1, text(func(s string, args []string) cell.I {
			return boolean.Bool(strings.HasPrefix(s, args[0]))
		})},
		"length": {0, text(func(s string, _ []string) cell.I {
			return num.Int(len([]rune(s)))
		})},
		"lowercase": {0, text(func(s string, _ []string) cell.I {
			return str.New(strings.ToLower(s))
		})},
		"split:": {1, text(func(s string, args []string) cell.I {
			parts := strings.Split(s, args[0])

			cs := make([]cell.I, len(parts))
			for i, p := range parts {
				cs[i] = str.New(p)
			}

			return list.New(cs...)
		})},
		"uppercase": {0, text(func(s string, _ []string) cell.I {
			return str.New(strings.ToUpper(s))
		})},
	})
}

func (b *bridge) must(label string, super *Class) *Class {
	c, err := b.Define(label, super)
	if err != nil {
		panic(err.Error())
	}

	return c
}

func define(class *Class, methods map[string]method) {
	for selector, m := range methods {
		class.Define(selector, builtin.New(selector, m.args, m.args, m.fn))
	}
}

func asClass(c cell.I) (*Class, error) {
	k, ok := c.(*Class)
	if !ok {
		return nil, issue.New(issue.Type, nil, "expected a class, got %s", literal.String(c))
	}

	return k, nil
}

func asList(c cell.I) (*list.T, error) {
	v := c
	if i, ok := c.(*Instance); ok {
		v = i.value
	}

	l, ok := v.(*list.T)
	if !ok {
		return nil, issue.New(issue.Type, nil, "expected a list, got %s", literal.String(c))
	}

	return l, nil
}

func asText(c cell.I) (string, error) {
	v := c
	if i, ok := c.(*Instance); ok {
		v = i.value
	}

	switch t := v.(type) {
	case *str.T:
		return t.String(), nil
	case *strcode.T:
		return t.String(), nil
	}

	return "", issue.New(issue.Type, nil, "expected a string, got %s", literal.String(c))
}

func listed(f func(l *list.T, args []cell.I) (cell.I, error)) builtin.Function {
	return func(c *builtin.Call) (cell.I, error) {
		l, err := asList(c.Self)
		if err != nil {
			return nil, err
		}

		return f(l, c.Args)
	}
}

func sequence(self, arg cell.I) (*list.T, callable.I, error) {
	l, err := asList(self)
	if err != nil {
		return nil, nil, err
	}

	f, err := validate.Callable(arg)
	if err != nil {
		return nil, nil, err
	}

	return l, f, nil
}

func ivar(self, key cell.I) (*Instance, string, error) {
	i, ok := self.(*Instance)
	if !ok {
		return nil, "", issue.New(issue.Type, nil, "%s has no instance variables", self.Name())
	}

	k, err := validate.Text(key)
	if err != nil {
		return nil, "", err
	}

	return i, k, nil
}
