// Released under an MIT license. See LICENSE.

// Package env provides stein's scope type.
package env

import (
	"iter"

	"github.com/michaelmacinnis/stein/internal/common/interface/cell"
	"github.com/michaelmacinnis/stein/internal/common/interface/scope"
	"github.com/michaelmacinnis/stein/internal/common/struct/hash"
	"github.com/michaelmacinnis/stein/internal/common/type/issue"
	"github.com/michaelmacinnis/stein/internal/common/type/str"
)

const name = "scope"

// ModuleKey is the reserved name under which a module scope records its name.
const ModuleKey = "_module_"

// T (env) maps names to values and defers to its parent for anything else.
type T struct {
	parent scope.I
	*hash.T
}

type env = T

// New creates a new env whose parent is parent (which may be nil).
func New(parent scope.I) *env {
	return &env{
		parent: parent,
		T:      hash.New(),
	}
}

// NewModule creates a new env for the module called label.
func NewModule(label string, parent scope.I) *env {
	e := New(parent)
	e.PutConstant(ModuleKey, str.New(label))

	return e
}

// Bool returns true.
func (e *env) Bool() bool {
	return true
}

// Enumerate returns the names and values bound directly in e, in the
// order they were first bound, as they were when Enumerate was called.
func (e *env) Enumerate() iter.Seq2[string, cell.I] {
	keys, values := e.Snapshot()

	return func(yield func(string, cell.I) bool) {
		for i, k := range keys {
			if !yield(k, values[i]) {
				return
			}
		}
	}
}

// Equal returns true if c is the same env as e.
func (e *env) Equal(c cell.I) bool {
	o, ok := c.(*env)

	return ok && e == o
}

// Label returns the name of the module that owns e or "" if there is none.
func (e *env) Label() string {
	if v, ok := e.Lookup(ModuleKey, true); ok {
		return v.String()
	}

	return ""
}

// Lookup retrieves the value bound to the name k.
func (e *env) Lookup(k string, searchParents bool) (cell.I, bool) {
	if r := e.Get(k); r != nil {
		return r.Get(), true
	}

	if searchParents && e.parent != nil {
		return e.parent.Lookup(k, true)
	}

	return nil, false
}

// Name returns the type name for the env e.
func (e *env) Name() string {
	return name
}

// Parent returns the enclosing scope, if any.
func (e *env) Parent() scope.I {
	return e.parent
}

// Remove deletes the binding for k. It does nothing if there is none.
func (e *env) Remove(k string, searchParents bool) {
	if e.Del(k) || !searchParents || e.parent == nil {
		return
	}

	e.parent.Remove(k, true)
}

// Set binds k to v. When searching parents, an existing binding is updated
// wherever it is found; otherwise k is bound in e.
func (e *env) Set(k string, v cell.I, searchParents bool) error {
	if searchParents {
		for s := scope.I(e); s != nil; s = s.Parent() {
			if _, ok := s.Lookup(k, false); ok {
				if s == scope.I(e) {
					break
				}

				return s.Set(k, v, false)
			}
		}
	}

	if !e.Put(k, v) {
		return issue.New(issue.Constant, nil, "%s is constant", k)
	}

	return nil
}

// SetConstant binds k to v in e. The binding cannot be changed or removed
// by Set or SetConstant.
func (e *env) SetConstant(k string, v cell.I) error {
	if !e.PutConstant(k, v) {
		return issue.New(issue.Constant, nil, "%s is already constant", k)
	}

	return nil
}

// String returns a description of the env e.
func (e *env) String() string {
	if l := e.Label(); l != "" {
		return "<" + name + " " + l + ">"
	}

	return "<" + name + ">"
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t env

	// The env type is a cell.
	_ = cell.I(&t)

	// The env type is a scope.
	_ = scope.I(&t)
}
