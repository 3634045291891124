// Released under an MIT license. See LICENSE.

package message

import (
	"github.com/michaelmacinnis/stein/internal/common/interface/cell"
	"github.com/michaelmacinnis/stein/internal/common/struct/hash"
	"github.com/michaelmacinnis/stein/internal/common/type/list"
	"github.com/michaelmacinnis/stein/internal/common/type/null"
	"github.com/michaelmacinnis/stein/internal/common/type/str"
)

// Instance is an object created by sending new to a class. Instances of
// subclasses of List and String carry a list or string that the
// inherited methods operate on.
type Instance struct {
	class *Class
	ivars *hash.T
	value cell.I
}

// NewInstance creates an instance of class.
func NewInstance(class *Class) *Instance {
	return &Instance{class: class, ivars: hash.New(), value: backing(class)}
}

// Bool returns true.
func (i *Instance) Bool() bool {
	return true
}

// Class returns the class of i.
func (i *Instance) Class() *Class {
	return i.class
}

// Copy returns a shallow copy of i. A carried list is copied too.
func (i *Instance) Copy() *Instance {
	value := i.value
	if l, ok := value.(*list.T); ok {
		value = l.Copy()
	}

	return &Instance{class: i.class, ivars: i.ivars.Copy(), value: value}
}

// Equal returns true if c is the same instance as i.
func (i *Instance) Equal(c cell.I) bool {
	o, ok := c.(*Instance)

	return ok && i == o
}

// Get returns the value of the instance variable k, or null.
func (i *Instance) Get(k string) cell.I {
	if r := i.ivars.Get(k); r != nil {
		return r.Get()
	}

	return null.Null
}

// Name returns the name of the instance's class.
func (i *Instance) Name() string {
	return i.class.label
}

// Set sets the instance variable k to v.
func (i *Instance) Set(k string, v cell.I) {
	i.ivars.Put(k, v)
}

// String returns a description of i.
func (i *Instance) String() string {
	if i.value != nil {
		return i.value.String()
	}

	return "instance"
}

// Value returns the list or string carried by i, or nil.
func (i *Instance) Value() cell.I {
	return i.value
}

func backing(class *Class) cell.I {
	for k := class; k != nil; k = k.super {
		switch k.label {
		case List:
			return list.New()
		case String:
			return str.New("")
		}
	}

	return nil
}
